package domain

import (
	"errors"
	"testing"
)

func TestParseDimension(t *testing.T) {
	tests := map[string]Dimension{
		"location":       DimensionLocation,
		" Locations ":    DimensionLocation,
		"family":         DimensionFamily,
		"family-context": DimensionFamily,
		"lifestyle":      DimensionLifestyle,
	}
	for in, want := range tests {
		got, err := ParseDimension(in)
		if err != nil || got != want {
			t.Fatalf("ParseDimension(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseDimension("weather"); err == nil {
		t.Fatalf("expected error for unknown dimension")
	}
}

func TestSelectionLifecycle(t *testing.T) {
	var sel Selection
	if sel.Complete() {
		t.Fatalf("empty selection must not be complete")
	}

	opt := Option{ID: "overseas", Title: "Overseas"}
	sel.Select(DimensionLocation, opt)
	opt.Title = "mutated"
	if sel.Location.Title != "Overseas" {
		t.Fatalf("selection must hold its own copy, got %q", sel.Location.Title)
	}

	sel.Select(DimensionFamily, Option{ID: "solo"})
	sel.Select(DimensionLifestyle, Option{ID: "mixed"})
	if !sel.Complete() {
		t.Fatalf("expected complete selection")
	}
	if got := sel.Get(DimensionFamily); got == nil || got.ID != "solo" {
		t.Fatalf("unexpected family %+v", got)
	}

	sel.Select(DimensionFamily, Option{ID: "partner"})
	if sel.FamilyContext.ID != "partner" {
		t.Fatalf("expected family replaced, got %s", sel.FamilyContext.ID)
	}

	sel.Clear(DimensionLifestyle)
	if sel.Complete() || sel.Lifestyle != nil {
		t.Fatalf("expected lifestyle cleared")
	}
}

func TestScoreVectorAccessors(t *testing.T) {
	var v ScoreVector
	for i, f := range ScoreFields() {
		v.Set(f, i+1)
	}
	want := ScoreVector{CostOfLiving: 1, PaceOfLife: 2, Pollution: 3, Infrastructure: 4, SocialLife: 5}
	if v != want {
		t.Fatalf("expected %+v, got %+v", want, v)
	}
	if v.Get(ScoreField("unknown")) != 0 {
		t.Fatalf("unknown field should read as zero")
	}
	if NeutralScores() != (ScoreVector{3, 3, 3, 3, 3}) {
		t.Fatalf("unexpected neutral scores %+v", NeutralScores())
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		field ScoreField
		score int
		want  ScoreBand
	}{
		{FieldCostOfLiving, 1, BandFavorable},
		{FieldCostOfLiving, 2, BandFavorable},
		{FieldCostOfLiving, 3, BandNeutral},
		{FieldPollution, 4, BandUnfavorable},
		{FieldPaceOfLife, 5, BandUnfavorable},
		{FieldInfrastructure, 5, BandFavorable},
		{FieldInfrastructure, 3, BandNeutral},
		{FieldSocialLife, 2, BandUnfavorable},
		{FieldSocialLife, 4, BandFavorable},
	}
	for _, tt := range tests {
		if got := BandFor(tt.field, tt.score); got != tt.want {
			t.Fatalf("BandFor(%s, %d) = %s, want %s", tt.field, tt.score, got, tt.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	want := map[int]ScoreLevel{1: LevelLow, 2: LevelLow, 3: LevelMedium, 4: LevelHigh, 5: LevelHigh}
	for score, level := range want {
		if got := LevelFor(score); got != level {
			t.Fatalf("LevelFor(%d) = %s, want %s", score, got, level)
		}
	}

	v := ScoreVector{CostOfLiving: 1, PaceOfLife: 3, Pollution: 5, Infrastructure: 5, SocialLife: 2}
	levels := v.Levels()
	if levels[FieldInfrastructure] != LevelHigh || levels[FieldSocialLife] != LevelLow || levels[FieldPaceOfLife] != LevelMedium {
		t.Fatalf("unexpected levels %+v", levels)
	}
	bands := v.Bands()
	if bands[FieldInfrastructure] != BandFavorable || bands[FieldPollution] != BandUnfavorable {
		t.Fatalf("high level must keep direction-aware band, got %+v", bands)
	}
}

func TestLocationTag(t *testing.T) {
	if got := LocationTag("rural-countryside"); got != "Rural" {
		t.Fatalf("expected Rural, got %q", got)
	}
	if got := LocationTag("somewhere"); got != "Urban" {
		t.Fatalf("expected Urban fallback, got %q", got)
	}
}

func TestUnknownOptionError(t *testing.T) {
	err := error(&UnknownOptionError{Dimension: DimensionLifestyle, ID: "nomad"})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected errors.Is to match ErrUnknownOption")
	}
	if got := err.Error(); got != `unknown option lifestyle "nomad"` {
		t.Fatalf("unexpected message %q", got)
	}
}
