package service

import (
	"fmt"
	"strings"

	"retire-explorer/internal/domain"
)

const (
	PlaceholderTitle       = "Explore Your Options"
	PlaceholderDescription = "Select options from each dimension to see what your early retirement could look like."
)

// OutcomeTexts expone los textos fijos usados para armar el resultado.
type OutcomeTexts interface {
	Considerations(locationID string) []string
	FamilyPhrase(familyID string) string
}

// OutcomeComposer convierte una selección completa en título, descripción, puntajes y consideraciones.
type OutcomeComposer struct {
	scores *ScoreModel
	texts  OutcomeTexts
}

func NewOutcomeComposer(scores *ScoreModel, texts OutcomeTexts) *OutcomeComposer {
	return &OutcomeComposer{scores: scores, texts: texts}
}

// PlaceholderOutcome es el resultado mostrado mientras falta alguna dimensión.
func PlaceholderOutcome() domain.Outcome {
	return domain.Outcome{
		Title:          PlaceholderTitle,
		Description:    PlaceholderDescription,
		Scores:         domain.NeutralScores(),
		Considerations: []string{},
	}
}

// ComposeOutcome es una función pura de sus tres entradas; cualquier nil devuelve el placeholder.
func (c *OutcomeComposer) ComposeOutcome(location, family, lifestyle *domain.Option) (domain.Outcome, error) {
	if location == nil || family == nil || lifestyle == nil {
		return PlaceholderOutcome(), nil
	}

	scores, err := c.scores.ComputeScores(location.ID, family.ID, lifestyle.ID)
	if err != nil {
		return domain.Outcome{}, err
	}

	return domain.Outcome{
		Title:          fmt.Sprintf("Life in %s", location.Title),
		Description:    fmt.Sprintf("A %s lifestyle %s.", strings.ToLower(lifestyle.Title), c.texts.FamilyPhrase(family.ID)),
		Scores:         scores,
		Considerations: c.texts.Considerations(location.ID),
	}, nil
}

// ComposeSelection arma el resultado a partir de la selección actual.
func (c *OutcomeComposer) ComposeSelection(sel domain.Selection) (domain.Outcome, error) {
	return c.ComposeOutcome(sel.Location, sel.FamilyContext, sel.Lifestyle)
}
