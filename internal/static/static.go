// Package static embeds the starter catalogue that is loaded into a new
// store
package static

import (
	"embed"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/yogi/internal/apperr"
	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/store"
)

const (
	starterFile = "files/starter.yml"
	seededKey   = "seeded"
)

//go:embed files/*
var embeddedFiles embed.FS

var errSeed = &apperr.Error{
	Message: "unable to load the starter catalogue",
}

// Catalogue is a set of cards to import.
type Catalogue struct {
	Exercises  []models.Exercise  `yaml:"exercises"`
	Stories    []models.Story     `yaml:"stories"`
	Practicals []models.Practical `yaml:"practicals"`
}

// Starter returns the embedded starter catalogue.
func Starter() (Catalogue, error) {
	var c Catalogue

	b, err := embeddedFiles.ReadFile(starterFile)
	if err != nil {
		return c, errSeed.Wrap(err)
	}

	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, errSeed.Wrap(err)
	}

	return c, nil
}

// Seed adds the starter catalogue to a store the first time it is opened.
// Stores that were seeded before are left alone, even if their cards have
// since been deleted.
func Seed(kv store.KV, repos *store.Repos) error {
	b, err := kv.Get(seededKey)
	if err != nil {
		return errSeed.Wrap(err)
	}

	if b != nil {
		return nil
	}

	c, err := Starter()
	if err != nil {
		return err
	}

	for _, e := range c.Exercises {
		if _, err := repos.Exercises.Create(e); err != nil {
			return errSeed.Wrap(err)
		}
	}

	for _, s := range c.Stories {
		if _, err := repos.Stories.Create(s); err != nil {
			return errSeed.Wrap(err)
		}
	}

	for _, p := range c.Practicals {
		if _, err := repos.Practicals.Create(p); err != nil {
			return errSeed.Wrap(err)
		}
	}

	return kv.Set(seededKey, []byte(time.Now().Format(time.RFC3339)))
}
