// Package catalog contiene los catálogos de opciones y las tablas de puntajes.
// Un Catalog es inmutable una vez construido; se inyecta en los servicios.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"retire-explorer/internal/domain"
)

// Catalog agrupa opciones, tablas de puntajes y combinaciones curadas.
type Catalog struct {
	options              map[domain.Dimension][]domain.Option
	locationScores       map[string]domain.PartialScores
	familyAdjustments    map[string]domain.Adjustment
	lifestyleAdjustments map[string]domain.Adjustment
	considerations       map[string][]string
	familyPhrases        map[string]string
	curated              []domain.CuratedEntry
}

// Default construye el catálogo embebido.
func Default() *Catalog {
	return &Catalog{
		options: map[domain.Dimension][]domain.Option{
			domain.DimensionLocation:  defaultLocations(),
			domain.DimensionFamily:    defaultFamilyContexts(),
			domain.DimensionLifestyle: defaultLifestyles(),
		},
		locationScores:       defaultLocationScores(),
		familyAdjustments:    defaultFamilyAdjustments(),
		lifestyleAdjustments: defaultLifestyleAdjustments(),
		considerations:       defaultConsiderations(),
		familyPhrases:        defaultFamilyPhrases(),
		curated:              defaultCurated(),
	}
}

// WithOptions devuelve un catálogo nuevo con las opciones de una dimensión reemplazadas.
// Las tablas se comparten: nunca se mutan después de construir.
func (c *Catalog) WithOptions(dim domain.Dimension, opts []domain.Option) *Catalog {
	next := *c
	next.options = make(map[domain.Dimension][]domain.Option, len(c.options))
	for d, o := range c.options {
		next.options[d] = o
	}
	next.options[dim] = append([]domain.Option(nil), opts...)
	return &next
}

// Options devuelve una copia de las opciones de la dimensión.
func (c *Catalog) Options(dim domain.Dimension) []domain.Option {
	return append([]domain.Option(nil), c.options[dim]...)
}

// Option busca una opción por id.
func (c *Catalog) Option(dim domain.Dimension, id string) (domain.Option, bool) {
	for _, o := range c.options[dim] {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Option{}, false
}

// LocationScores devuelve una copia de los puntajes base de la ubicación.
func (c *Catalog) LocationScores(locationID string) (domain.PartialScores, bool) {
	base, ok := c.locationScores[locationID]
	if !ok {
		return nil, false
	}
	out := make(domain.PartialScores, len(base))
	for k, v := range base {
		out[k] = v
	}
	return out, true
}

func (c *Catalog) FamilyAdjustment(familyID string) (domain.Adjustment, bool) {
	adj, ok := c.familyAdjustments[familyID]
	return adj, ok
}

func (c *Catalog) LifestyleAdjustment(lifestyleID string) (domain.Adjustment, bool) {
	adj, ok := c.lifestyleAdjustments[lifestyleID]
	return adj, ok
}

// Considerations devuelve las consideraciones fijas de la ubicación (0 a 2).
func (c *Catalog) Considerations(locationID string) []string {
	return append([]string{}, c.considerations[locationID]...)
}

// FamilyPhrase devuelve la frase posesiva del contexto familiar.
func (c *Catalog) FamilyPhrase(familyID string) string {
	if phrase, ok := c.familyPhrases[familyID]; ok {
		return phrase
	}
	return DefaultFamilyPhrase
}

// Curated devuelve las ternas curadas en su orden original.
func (c *Catalog) Curated() []domain.CuratedEntry {
	return append([]domain.CuratedEntry(nil), c.curated...)
}

// Suggest devuelve ids de la dimensión cercanos al id dado, ordenados por distancia.
func (c *Catalog) Suggest(dim domain.Dimension, id string) []string {
	needle := strings.ToLower(strings.TrimSpace(id))
	if needle == "" {
		return nil
	}
	type cand struct {
		id   string
		dist int
	}
	var cands []cand
	for _, o := range c.options[dim] {
		dist := levenshtein.ComputeDistance(needle, o.ID)
		if dist > suggestLimit(len(o.ID)) {
			continue
		}
		cands = append(cands, cand{id: o.ID, dist: dist})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].id < cands[j].id
		}
		return cands[i].dist < cands[j].dist
	})
	out := make([]string, 0, len(cands))
	for _, cd := range cands {
		out = append(out, cd.id)
	}
	return out
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// UnknownOption arma el error tipado con sugerencias.
func (c *Catalog) UnknownOption(dim domain.Dimension, id string) error {
	return &domain.UnknownOptionError{
		Dimension:   dim,
		ID:          id,
		Suggestions: c.Suggest(dim, id),
	}
}

// Resolve busca una opción o devuelve UnknownOptionError.
func (c *Catalog) Resolve(dim domain.Dimension, id string) (domain.Option, error) {
	opt, ok := c.Option(dim, id)
	if !ok {
		return domain.Option{}, c.UnknownOption(dim, id)
	}
	return opt, nil
}

// Validate revisa la consistencia entre catálogos, tablas y ternas curadas.
// Devuelve un problema por línea; vacío significa catálogo consistente.
func (c *Catalog) Validate() []string {
	var problems []string

	for _, dim := range domain.Dimensions() {
		seen := make(map[string]bool)
		for _, o := range c.options[dim] {
			if strings.TrimSpace(o.ID) == "" {
				problems = append(problems, fmt.Sprintf("%s: option with empty id", dim))
				continue
			}
			if seen[o.ID] {
				problems = append(problems, fmt.Sprintf("%s: duplicate id %q", dim, o.ID))
			}
			seen[o.ID] = true
		}
	}

	for _, o := range c.options[domain.DimensionLocation] {
		if _, ok := c.locationScores[o.ID]; !ok {
			problems = append(problems, fmt.Sprintf("location %q has no base scores", o.ID))
		}
		if len(c.considerations[o.ID]) == 0 {
			problems = append(problems, fmt.Sprintf("location %q has no considerations", o.ID))
		}
	}
	for _, o := range c.options[domain.DimensionFamily] {
		if _, ok := c.familyAdjustments[o.ID]; !ok {
			problems = append(problems, fmt.Sprintf("family %q has no adjustment table", o.ID))
		}
	}
	for _, o := range c.options[domain.DimensionLifestyle] {
		if _, ok := c.lifestyleAdjustments[o.ID]; !ok {
			problems = append(problems, fmt.Sprintf("lifestyle %q has no adjustment table", o.ID))
		}
	}

	for i, e := range c.curated {
		if _, ok := c.Option(domain.DimensionLocation, e.LocationID); !ok {
			problems = append(problems, fmt.Sprintf("curated #%d (%s): unknown location %q", i+1, e.Country, e.LocationID))
		}
		if _, ok := c.Option(domain.DimensionFamily, e.FamilyID); !ok {
			problems = append(problems, fmt.Sprintf("curated #%d (%s): unknown family %q", i+1, e.Country, e.FamilyID))
		}
		if _, ok := c.Option(domain.DimensionLifestyle, e.LifestyleID); !ok {
			problems = append(problems, fmt.Sprintf("curated #%d (%s): unknown lifestyle %q", i+1, e.Country, e.LifestyleID))
		}
	}
	return problems
}
