package service

import (
	"errors"
	"testing"

	"retire-explorer/internal/catalog"
	"retire-explorer/internal/domain"
)

func newDefaultComposer() (*OutcomeComposer, *catalog.Catalog) {
	cat := catalog.Default()
	return NewOutcomeComposer(NewScoreModel(cat, true), cat), cat
}

func mustOption(t *testing.T, cat *catalog.Catalog, dim domain.Dimension, id string) *domain.Option {
	t.Helper()
	opt, err := cat.Resolve(dim, id)
	if err != nil {
		t.Fatalf("resolve %s %s: %v", dim, id, err)
	}
	return &opt
}

func TestComposeOutcome_PlaceholderWhenAnyInputMissing(t *testing.T) {
	composer, cat := newDefaultComposer()
	loc := mustOption(t, cat, domain.DimensionLocation, "overseas")
	fam := mustOption(t, cat, domain.DimensionFamily, "partner")
	life := mustOption(t, cat, domain.DimensionLifestyle, "creative")

	tests := []struct {
		name string
		loc  *domain.Option
		fam  *domain.Option
		life *domain.Option
	}{
		{name: "all missing"},
		{name: "missing location", fam: fam, life: life},
		{name: "missing family", loc: loc, life: life},
		{name: "missing lifestyle", loc: loc, fam: fam},
		{name: "only location", loc: loc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := composer.ComposeOutcome(tt.loc, tt.fam, tt.life)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Scores != domain.NeutralScores() {
				t.Fatalf("expected neutral scores, got %+v", got.Scores)
			}
			if got.Considerations == nil || len(got.Considerations) != 0 {
				t.Fatalf("expected empty considerations, got %#v", got.Considerations)
			}
			if got.Title != PlaceholderTitle || got.Description != PlaceholderDescription {
				t.Fatalf("unexpected placeholder text: %q / %q", got.Title, got.Description)
			}
		})
	}
}

func TestComposeOutcome_CoastalSoloSimple(t *testing.T) {
	composer, cat := newDefaultComposer()

	got, err := composer.ComposeOutcome(
		mustOption(t, cat, domain.DimensionLocation, "coastal-town"),
		mustOption(t, cat, domain.DimensionFamily, "solo"),
		mustOption(t, cat, domain.DimensionLifestyle, "simple-quiet"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Life in Coastal Town" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.Description != "A simple & quiet lifestyle on your own." {
		t.Fatalf("unexpected description %q", got.Description)
	}
	want := domain.ScoreVector{CostOfLiving: 2, PaceOfLife: 1, Pollution: 2, Infrastructure: 3, SocialLife: 1}
	if got.Scores != want {
		t.Fatalf("expected %+v, got %+v", want, got.Scores)
	}
	if len(got.Considerations) != 2 || got.Considerations[0] != "Access to water activities and coastal community events" {
		t.Fatalf("unexpected considerations %v", got.Considerations)
	}
}

func TestComposeOutcome_FamilyPhrases(t *testing.T) {
	composer, cat := newDefaultComposer()
	loc := mustOption(t, cat, domain.DimensionLocation, "small-city")
	life := mustOption(t, cat, domain.DimensionLifestyle, "travel-oriented")

	tests := map[string]string{
		"solo":            "A travel-oriented lifestyle on your own.",
		"partner":         "A travel-oriented lifestyle with your partner.",
		"children":        "A travel-oriented lifestyle with your children.",
		"extended-family": "A travel-oriented lifestyle with extended family.",
		"community":       "A travel-oriented lifestyle in community.",
	}
	for id, want := range tests {
		got, err := composer.ComposeOutcome(loc, mustOption(t, cat, domain.DimensionFamily, id), life)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", id, err)
		}
		if got.Description != want {
			t.Fatalf("family %s: expected %q, got %q", id, want, got.Description)
		}
	}
}

func TestComposeOutcome_UnmatchedLocationHasNoConsiderations(t *testing.T) {
	cat := catalog.Default()
	composer := NewOutcomeComposer(NewScoreModel(cat, false), cat)

	got, err := composer.ComposeOutcome(
		&domain.Option{ID: "lunar-colony", Title: "Lunar Colony"},
		&domain.Option{ID: "solo", Title: "Solo Living"},
		&domain.Option{ID: "mixed", Title: "Mixed Lifestyle"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Considerations) != 0 {
		t.Fatalf("expected no considerations, got %v", got.Considerations)
	}
	if got.Title != "Life in Lunar Colony" {
		t.Fatalf("unexpected title %q", got.Title)
	}
}

func TestComposeOutcome_StrictPropagatesUnknownOption(t *testing.T) {
	composer, _ := newDefaultComposer()

	_, err := composer.ComposeOutcome(
		&domain.Option{ID: "lunar-colony", Title: "Lunar Colony"},
		&domain.Option{ID: "solo", Title: "Solo Living"},
		&domain.Option{ID: "mixed", Title: "Mixed Lifestyle"},
	)
	if !errors.Is(err, domain.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestComposeSelection(t *testing.T) {
	composer, cat := newDefaultComposer()

	var sel domain.Selection
	got, _ := composer.ComposeSelection(sel)
	if got.Title != PlaceholderTitle {
		t.Fatalf("expected placeholder for empty selection")
	}

	sel.Select(domain.DimensionLocation, *mustOption(t, cat, domain.DimensionLocation, "rural-countryside"))
	sel.Select(domain.DimensionFamily, *mustOption(t, cat, domain.DimensionFamily, "community"))
	sel.Select(domain.DimensionLifestyle, *mustOption(t, cat, domain.DimensionLifestyle, "purpose-driven"))
	got, err := composer.ComposeSelection(sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.ScoreVector{CostOfLiving: 1, PaceOfLife: 1, Pollution: 1, Infrastructure: 2, SocialLife: 5}
	if got.Scores != want {
		t.Fatalf("expected %+v, got %+v", want, got.Scores)
	}
	if got.Description != "A purpose-driven lifestyle in community." {
		t.Fatalf("unexpected description %q", got.Description)
	}
}
