package service

import "retire-explorer/internal/domain"

// ScoreTables expone las tablas de puntajes base y de ajustes.
type ScoreTables interface {
	LocationScores(locationID string) (domain.PartialScores, bool)
	FamilyAdjustment(familyID string) (domain.Adjustment, bool)
	LifestyleAdjustment(lifestyleID string) (domain.Adjustment, bool)
}

// ScoreModel combina el puntaje base de la ubicación con los ajustes de familia y estilo de vida.
//
// Strict (por defecto) rechaza ids desconocidos con UnknownOptionError. En modo permisivo
// un id desconocido se trata como tabla vacía y los campos faltantes quedan en 3.
type ScoreModel struct {
	tables ScoreTables
	strict bool
}

func NewScoreModel(tables ScoreTables, strict bool) *ScoreModel {
	return &ScoreModel{tables: tables, strict: strict}
}

// Clamp acota x al rango [1,5].
func Clamp(x int) int {
	if x < domain.MinScore {
		return domain.MinScore
	}
	if x > domain.MaxScore {
		return domain.MaxScore
	}
	return x
}

// ApplyAdjustment suma cada delta presente al valor previo (3 si falta) y acota.
// Los campos sin delta se copian sin cambios.
func ApplyAdjustment(base domain.PartialScores, adj domain.Adjustment) domain.PartialScores {
	out := make(domain.PartialScores, len(base)+len(adj))
	for k, v := range base {
		out[k] = v
	}
	for field, delta := range adj {
		prev, ok := base[field]
		if !ok {
			prev = domain.NeutralScore
		}
		out[field] = Clamp(prev + delta)
	}
	return out
}

// Finalize completa los campos ausentes con el valor neutral.
func Finalize(partial domain.PartialScores) domain.ScoreVector {
	var v domain.ScoreVector
	for _, f := range domain.ScoreFields() {
		value, ok := partial[f]
		if !ok {
			value = domain.NeutralScore
		}
		v.Set(f, value)
	}
	return v
}

// ComputeScores aplica ubicación, luego familia, luego estilo de vida. El orden es fijo:
// cada etapa acota antes de pasar a la siguiente.
func (m *ScoreModel) ComputeScores(locationID, familyID, lifestyleID string) (domain.ScoreVector, error) {
	base, ok := m.tables.LocationScores(locationID)
	if !ok {
		if m.strict {
			return domain.ScoreVector{}, &domain.UnknownOptionError{Dimension: domain.DimensionLocation, ID: locationID}
		}
		base = domain.PartialScores{}
	}

	familyAdj, ok := m.tables.FamilyAdjustment(familyID)
	if !ok && m.strict {
		return domain.ScoreVector{}, &domain.UnknownOptionError{Dimension: domain.DimensionFamily, ID: familyID}
	}
	afterFamily := ApplyAdjustment(base, familyAdj)

	lifestyleAdj, ok := m.tables.LifestyleAdjustment(lifestyleID)
	if !ok && m.strict {
		return domain.ScoreVector{}, &domain.UnknownOptionError{Dimension: domain.DimensionLifestyle, ID: lifestyleID}
	}
	final := ApplyAdjustment(afterFamily, lifestyleAdj)

	return Finalize(final), nil
}
