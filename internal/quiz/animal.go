package quiz

import (
	"fmt"
	"strings"
)

// Animal is one of the fixed result categories.
type Animal int

// Declaration order is the canonical order used for tie-breaking.
const (
	Cat Animal = iota
	Dog
	Fox
	Hamster
	Horse

	numAnimals = iota
)

var animalNames = [numAnimals]string{"cat", "dog", "fox", "hamster", "horse"}

// Animals returns every animal in canonical order.
func Animals() []Animal {
	out := make([]Animal, numAnimals)
	for i := range out {
		out[i] = Animal(i)
	}
	return out
}

// Valid reports whether a is one of the declared animals.
func (a Animal) Valid() bool {
	return a >= 0 && int(a) < numAnimals
}

func (a Animal) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Animal(%d)", int(a))
	}
	return animalNames[a]
}

// DisplayName returns the capitalized name, e.g. "Hamster".
func (a Animal) DisplayName() string {
	s := a.String()
	if !a.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseAnimal maps a case-insensitive name to an Animal.
func ParseAnimal(s string) (Animal, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range animalNames {
		if n == name {
			return Animal(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnimal, s)
}
