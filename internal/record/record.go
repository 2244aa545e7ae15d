// Package record defines the movie and actor records served by moviegraph
// and the YAML seed document they are loaded from.
package record

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSeed is returned when a seed document contains a record that
// cannot be served.
var ErrInvalidSeed = errors.New("invalid seed")

//go:embed seed.yaml
var defaultSeed []byte

// Movie is a single movie, linked to the actor starring in it.
type Movie struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`

	// ActorID references Actor.ID. It is never checked against the actor
	// collection, so it may dangle.
	ActorID int `yaml:"actorId" json:"actorId"`
}

// Actor is a single actor. Movies are looked up through the store.
type Actor struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Seed holds the initial contents of the store.
type Seed struct {
	Actors []*Actor `yaml:"actors"`
	Movies []*Movie `yaml:"movies"`
}

// ParseSeed reads a YAML seed document.
func ParseSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document is an empty seed
			return &Seed{}, nil
		}
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// LoadSeed reads the seed at path, or the embedded default seed when path
// is empty.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()

	return ParseSeed(f)
}

// DefaultSeed returns a fresh copy of the embedded seed data.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(bytes.NewReader(defaultSeed))
}

func (s *Seed) validate() error {
	for i, a := range s.Actors {
		if a == nil || a.ID <= 0 || a.Name == "" {
			return fmt.Errorf("%w: actor #%d needs a positive id and a name", ErrInvalidSeed, i+1)
		}
	}
	for i, m := range s.Movies {
		if m == nil || m.ID <= 0 || m.Name == "" {
			return fmt.Errorf("%w: movie #%d needs a positive id and a name", ErrInvalidSeed, i+1)
		}
	}
	return nil
}
