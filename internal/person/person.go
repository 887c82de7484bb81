package person

import (
	"fmt"
	"io"
)

// Kind identifies the concrete variant behind a Person
type Kind string

const (
	// KindIntrovert is a person who relaxes with a book
	KindIntrovert Kind = "introvert"

	// KindExtrovert is a person who relaxes at a club
	KindExtrovert Kind = "extrovert"

	// KindReallyExtrovert is an extrovert with a louder greeting
	KindReallyExtrovert Kind = "really_extrovert"
)

// Person is the capability every variant provides.
// Variants are only constructed by this package.
type Person interface {
	// Core identity methods
	Name() string
	Kind() Kind

	// Behaviour
	Greet(w io.Writer) error // Introduce yourself
	Relax(w io.Writer) error // Go do whatever relaxing means for this variant

	isPerson()
}

// person holds the state and default behaviour shared by all variants.
// It has no Relax, so on its own it never satisfies Person.
type person struct {
	name string
}

// Name returns the name given at construction
func (p person) Name() string {
	return p.name
}

// Greet writes the default greeting
func (p person) Greet(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Hi, I'm %s\n", p.name)
	return err
}

func (p person) isPerson() {}
