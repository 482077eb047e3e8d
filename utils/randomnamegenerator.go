package utils

import (
	"math/rand"

	"github.com/Pallinder/go-randomdata"
)

// RandomNameGenerator hands out unique silly names, same sequence on every run.
type RandomNameGenerator map[string]struct{}

func (rng *RandomNameGenerator) init() {
	if *rng == nil {
		*rng = make(map[string]struct{})
		randomdata.CustomRand(rand.New(rand.NewSource(0)))
	}
}

func (rng *RandomNameGenerator) RandomName(prefix string) string {
	rng.init()
	for {
		name := randomdata.SillyName()
		if prefix != "" {
			name = prefix + "_" + name
		}
		// avoid duplicate names
		if _, exists := (*rng)[name]; !exists {
			(*rng)[name] = struct{}{}
			return name
		}
	}
}

// Reserve marks an externally chosen name as taken.
func (rng *RandomNameGenerator) Reserve(name string) {
	rng.init()
	(*rng)[name] = struct{}{}
}
