package person

import (
	"fmt"
	"io"
)

// Extrovert relaxes by dancing at their favorite club
type Extrovert struct {
	person
	favoriteClub string
}

// NewExtrovert creates a new extrovert
func NewExtrovert(name, favoriteClub string) *Extrovert {
	return &Extrovert{
		person:       person{name: name},
		favoriteClub: favoriteClub,
	}
}

// Kind returns KindExtrovert
func (e *Extrovert) Kind() Kind {
	return KindExtrovert
}

// FavoriteClub returns the club the extrovert dances at
func (e *Extrovert) FavoriteClub() string {
	return e.favoriteClub
}

// Relax writes where the extrovert is off to
func (e *Extrovert) Relax(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s is going to go dance at %s\n", e.name, e.favoriteClub)
	return err
}

// ReallyExtrovert is an Extrovert that replaces the default greeting.
// Relaxing is delegated to the embedded Extrovert unchanged.
type ReallyExtrovert struct {
	*Extrovert
}

// NewReallyExtrovert creates a new really extroverted person
func NewReallyExtrovert(name, favoriteClub string) *ReallyExtrovert {
	return &ReallyExtrovert{
		Extrovert: NewExtrovert(name, favoriteClub),
	}
}

// Kind returns KindReallyExtrovert
func (r *ReallyExtrovert) Kind() Kind {
	return KindReallyExtrovert
}

// Greet writes the enthusiastic greeting instead of the default one
func (r *ReallyExtrovert) Greet(w io.Writer) error {
	_, err := fmt.Fprintf(w, "HI! MY NAME IS %s AND I'M REALLY EXCITED TO BE HERE.  HOW WE ALL DOING?  WOW, THAT'S A GREAT PAINTING.  WHO WANTS TO PLAY CHARADES?\n", r.name)
	return err
}

// Relax forwards to the embedded Extrovert
func (r *ReallyExtrovert) Relax(w io.Writer) error {
	return r.Extrovert.Relax(w)
}
