package person

import (
	"fmt"
	"io"
)

// Introvert relaxes with their favorite book
type Introvert struct {
	person
	favoriteBook string
}

// NewIntrovert creates a new introvert
func NewIntrovert(name, favoriteBook string) *Introvert {
	return &Introvert{
		person:       person{name: name},
		favoriteBook: favoriteBook,
	}
}

// Kind returns KindIntrovert
func (i *Introvert) Kind() Kind {
	return KindIntrovert
}

// FavoriteBook returns the book the introvert relaxes with
func (i *Introvert) FavoriteBook() string {
	return i.favoriteBook
}

// Relax writes where the introvert is off to
func (i *Introvert) Relax(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s is going to read %s\n", i.name, i.favoriteBook)
	return err
}
