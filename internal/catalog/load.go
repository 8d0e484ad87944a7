package catalog

import (
	"context"
	"fmt"

	"retire-explorer/internal/domain"
)

// OptionLoader obtiene las opciones de una dimensión desde una fuente externa.
type OptionLoader interface {
	LoadOptions(ctx context.Context, dim domain.Dimension) ([]domain.Option, error)
}

// Load superpone las opciones cargadas sobre el catálogo base.
// Una dimensión sin filas conserva las opciones embebidas.
func Load(ctx context.Context, loader OptionLoader, base *Catalog) (*Catalog, error) {
	if loader == nil {
		return base, nil
	}
	out := base
	for _, dim := range domain.Dimensions() {
		opts, err := loader.LoadOptions(ctx, dim)
		if err != nil {
			return nil, fmt.Errorf("load %s options: %w", dim, err)
		}
		if len(opts) == 0 {
			continue
		}
		out = out.WithOptions(dim, opts)
	}
	return out, nil
}
