// Package gazetteer holds the static list of Romanian counties and cities used
// to infer that a record is located in Romania
package gazetteer

import (
	_ "embed"
	"strings"
	"sync"

	"layoffs/internal/core/fold"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed places.yaml
var placesYAML []byte

// Gazetteer is an immutable set of place names
type Gazetteer struct {
	counties []string
	cities   []string
	all      []string
	folded   []string
}

type document struct {
	Counties []string `yaml:"counties"`
	Cities   []string `yaml:"cities"`
}

// Parse builds a Gazetteer from a YAML document with counties and cities lists
func Parse(b []byte) (*Gazetteer, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	g := &Gazetteer{
		counties: clean(doc.Counties),
		cities:   clean(doc.Cities),
	}

	seen := make(map[string]struct{}, len(g.counties)+len(g.cities))
	for _, name := range append(append([]string(nil), g.cities...), g.counties...) {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		g.all = append(g.all, name)
	}
	collate.New(language.Romanian).SortStrings(g.all)

	g.folded = make([]string, len(g.all))
	for i, name := range g.all {
		g.folded[i] = fold.Fold(name)
	}
	return g, nil
}

func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var (
	defOnce sync.Once
	def     *Gazetteer
)

// Default returns the embedded Romanian gazetteer
func Default() *Gazetteer {
	defOnce.Do(func() {
		g, err := Parse(placesYAML)
		if err != nil {
			panic("gazetteer: embedded places.yaml is invalid: " + err.Error())
		}
		def = g
	})
	return def
}

// Counties returns the county names in source order
func (g *Gazetteer) Counties() []string { return append([]string(nil), g.counties...) }

// Cities returns the city names in source order
func (g *Gazetteer) Cities() []string { return append([]string(nil), g.cities...) }

// All returns cities and counties without duplicates in Romanian collation order
func (g *Gazetteer) All() []string { return append([]string(nil), g.all...) }

// Matches reports whether location and any known place contain one another, ignoring case
// an empty location is contained in every name and therefore matches
func (g *Gazetteer) Matches(location string) bool {
	loc := fold.Fold(location)
	for _, name := range g.folded {
		if strings.Contains(loc, name) || strings.Contains(name, loc) {
			return true
		}
	}
	return false
}

// Matches checks location against the default gazetteer
func Matches(location string) bool { return Default().Matches(location) }
