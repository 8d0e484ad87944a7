package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"retire-explorer/internal/domain"
)

var ErrIncompleteSelection = errors.New("selection incomplete")

// ErrCatalogIncomplete indica una opción listada en el catálogo que no tiene tabla de puntajes.
var ErrCatalogIncomplete = errors.New("catalog incomplete")

// OptionCatalog expone los catálogos de solo lectura.
type OptionCatalog interface {
	Options(dim domain.Dimension) []domain.Option
	Resolve(dim domain.Dimension, id string) (domain.Option, error)
}

// ExplorerService es la fachada que usan el API y la CLI: resuelve ids, arma resultados
// y prepara las tarjetas de combinaciones.
type ExplorerService struct {
	catalog   OptionCatalog
	scores    *ScoreModel
	composer  *OutcomeComposer
	generator *CombinationGenerator
	logger    *zap.Logger
}

func NewExplorerService(
	catalog OptionCatalog,
	scores *ScoreModel,
	composer *OutcomeComposer,
	generator *CombinationGenerator,
	logger *zap.Logger,
) *ExplorerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExplorerService{
		catalog:   catalog,
		scores:    scores,
		composer:  composer,
		generator: generator,
		logger:    logger,
	}
}

// Options devuelve el catálogo de una dimensión.
func (s *ExplorerService) Options(dim domain.Dimension) []domain.Option {
	return s.catalog.Options(dim)
}

// AllOptions devuelve los tres catálogos.
func (s *ExplorerService) AllOptions() map[domain.Dimension][]domain.Option {
	out := make(map[domain.Dimension][]domain.Option, 3)
	for _, dim := range domain.Dimensions() {
		out[dim] = s.catalog.Options(dim)
	}
	return out
}

// Resolve busca una opción por id.
func (s *ExplorerService) Resolve(dim domain.Dimension, id string) (domain.Option, error) {
	return s.catalog.Resolve(dim, strings.TrimSpace(id))
}

// SelectionFromIDs arma una selección; un id vacío deja la dimensión sin elegir.
func (s *ExplorerService) SelectionFromIDs(locationID, familyID, lifestyleID string) (domain.Selection, error) {
	var sel domain.Selection
	ids := map[domain.Dimension]string{
		domain.DimensionLocation:  locationID,
		domain.DimensionFamily:    familyID,
		domain.DimensionLifestyle: lifestyleID,
	}
	for _, dim := range domain.Dimensions() {
		id := strings.TrimSpace(ids[dim])
		if id == "" {
			continue
		}
		opt, err := s.catalog.Resolve(dim, id)
		if err != nil {
			return domain.Selection{}, err
		}
		sel.Select(dim, opt)
	}
	return sel, nil
}

// Outcome calcula el resultado de la selección actual.
func (s *ExplorerService) Outcome(sel domain.Selection) (domain.Outcome, error) {
	outcome, err := s.composer.ComposeSelection(sel)
	if err != nil {
		return domain.Outcome{}, s.missingTable(err)
	}
	return outcome, nil
}

// Scores calcula el vector para una selección completa.
func (s *ExplorerService) Scores(sel domain.Selection) (domain.ScoreVector, error) {
	if !sel.Complete() {
		return domain.ScoreVector{}, ErrIncompleteSelection
	}
	scores, err := s.scores.ComputeScores(sel.Location.ID, sel.FamilyContext.ID, sel.Lifestyle.ID)
	if err != nil {
		return domain.ScoreVector{}, s.missingTable(err)
	}
	return scores, nil
}

// missingTable distingue un id que el catálogo sí lista de uno realmente desconocido.
func (s *ExplorerService) missingTable(err error) error {
	var uerr *domain.UnknownOptionError
	if !errors.As(err, &uerr) {
		return err
	}
	if _, rerr := s.catalog.Resolve(uerr.Dimension, uerr.ID); rerr != nil {
		return err
	}
	return fmt.Errorf("%w: %s %q has no score table", ErrCatalogIncomplete, uerr.Dimension, uerr.ID)
}

// Combinations genera las combinaciones curadas. Con shuffler nil usa el del generador.
func (s *ExplorerService) Combinations(shuffler Shuffler) []domain.Combination {
	gen := s.generator
	if shuffler != nil {
		gen = gen.WithShuffler(shuffler)
	}
	return gen.Generate()
}

// Previews arma las tarjetas con resultado y bandas. Una combinación cuyo puntaje
// no se puede calcular se omite.
func (s *ExplorerService) Previews(shuffler Shuffler) []domain.CombinationPreview {
	combos := s.Combinations(shuffler)
	out := make([]domain.CombinationPreview, 0, len(combos))
	for _, c := range combos {
		location, family, lifestyle := c.Location, c.FamilyContext, c.Lifestyle
		outcome, err := s.composer.ComposeOutcome(&location, &family, &lifestyle)
		if err != nil {
			s.logger.Warn("skipping combination preview", zap.String("combination_id", c.ID), zap.Error(err))
			continue
		}
		out = append(out, domain.CombinationPreview{
			Combination: c,
			LocationTag: domain.LocationTag(c.Location.ID),
			Outcome:     outcome,
			Bands:       outcome.Scores.Bands(),
			Levels:      outcome.Scores.Levels(),
		})
	}
	return out
}
