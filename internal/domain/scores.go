package domain

const (
	MinScore     = 1
	MaxScore     = 5
	NeutralScore = 3
)

// ScoreField nombra uno de los cinco ejes del vector de puntajes.
type ScoreField string

const (
	FieldCostOfLiving   ScoreField = "costOfLiving"
	FieldPaceOfLife     ScoreField = "paceOfLife"
	FieldPollution      ScoreField = "pollution"
	FieldInfrastructure ScoreField = "infrastructure"
	FieldSocialLife     ScoreField = "socialLife"
)

// ScoreFields devuelve los campos en orden fijo.
func ScoreFields() []ScoreField {
	return []ScoreField{
		FieldCostOfLiving,
		FieldPaceOfLife,
		FieldPollution,
		FieldInfrastructure,
		FieldSocialLife,
	}
}

// ScoreVector agrupa los cinco puntajes, cada uno en [1,5].
type ScoreVector struct {
	CostOfLiving   int `json:"costOfLiving"`   // 1 barato, 5 caro
	PaceOfLife     int `json:"paceOfLife"`     // 1 calmo, 5 rápido
	Pollution      int `json:"pollution"`      // 1 limpio, 5 contaminado
	Infrastructure int `json:"infrastructure"` // 1 limitada, 5 excelente
	SocialLife     int `json:"socialLife"`     // 1 aislado, 5 social
}

// NeutralScores devuelve el vector con todos los campos en el punto medio.
func NeutralScores() ScoreVector {
	return ScoreVector{
		CostOfLiving:   NeutralScore,
		PaceOfLife:     NeutralScore,
		Pollution:      NeutralScore,
		Infrastructure: NeutralScore,
		SocialLife:     NeutralScore,
	}
}

func (v ScoreVector) Get(field ScoreField) int {
	switch field {
	case FieldCostOfLiving:
		return v.CostOfLiving
	case FieldPaceOfLife:
		return v.PaceOfLife
	case FieldPollution:
		return v.Pollution
	case FieldInfrastructure:
		return v.Infrastructure
	case FieldSocialLife:
		return v.SocialLife
	default:
		return 0
	}
}

func (v *ScoreVector) Set(field ScoreField, value int) {
	switch field {
	case FieldCostOfLiving:
		v.CostOfLiving = value
	case FieldPaceOfLife:
		v.PaceOfLife = value
	case FieldPollution:
		v.Pollution = value
	case FieldInfrastructure:
		v.Infrastructure = value
	case FieldSocialLife:
		v.SocialLife = value
	}
}

// PartialScores es un vector donde cada campo puede estar ausente.
type PartialScores map[ScoreField]int

// Adjustment es una tabla dispersa de deltas relativos por campo.
type Adjustment map[ScoreField]int

// ScoreBand clasifica un puntaje como favorable, neutral o desfavorable.
type ScoreBand string

const (
	BandFavorable   ScoreBand = "favorable"
	BandNeutral     ScoreBand = "neutral"
	BandUnfavorable ScoreBand = "unfavorable"
)

// higherIsBetter marca los campos cuya escala está invertida.
func higherIsBetter(field ScoreField) bool {
	return field == FieldInfrastructure || field == FieldSocialLife
}

// BandFor clasifica un puntaje según la dirección de su escala.
func BandFor(field ScoreField, score int) ScoreBand {
	if higherIsBetter(field) {
		switch {
		case score >= 4:
			return BandFavorable
		case score == NeutralScore:
			return BandNeutral
		default:
			return BandUnfavorable
		}
	}
	switch {
	case score <= 2:
		return BandFavorable
	case score == NeutralScore:
		return BandNeutral
	default:
		return BandUnfavorable
	}
}

// Bands clasifica todos los campos del vector.
func (v ScoreVector) Bands() map[ScoreField]ScoreBand {
	out := make(map[ScoreField]ScoreBand, len(ScoreFields()))
	for _, f := range ScoreFields() {
		out[f] = BandFor(f, v.Get(f))
	}
	return out
}

// ScoreLevel es la etiqueta corta que acompaña cada barra.
type ScoreLevel string

const (
	LevelLow    ScoreLevel = "Low"
	LevelMedium ScoreLevel = "Medium"
	LevelHigh   ScoreLevel = "High"
)

// LevelFor etiqueta el valor crudo. Las dos direcciones de escala dan la misma etiqueta;
// la dirección solo cambia la banda.
func LevelFor(score int) ScoreLevel {
	switch {
	case score <= 2:
		return LevelLow
	case score == NeutralScore:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Levels etiqueta todos los campos del vector.
func (v ScoreVector) Levels() map[ScoreField]ScoreLevel {
	out := make(map[ScoreField]ScoreLevel, len(ScoreFields()))
	for _, f := range ScoreFields() {
		out[f] = LevelFor(v.Get(f))
	}
	return out
}

// ScoreParameter describe cómo presentar un campo del vector.
type ScoreParameter struct {
	Field     ScoreField `json:"field"`
	Label     string     `json:"label"`
	LowLabel  string     `json:"low_label"`
	HighLabel string     `json:"high_label"`
}

// ScoreParameters devuelve la metadata de presentación en el orden de ScoreFields.
func ScoreParameters() []ScoreParameter {
	return []ScoreParameter{
		{Field: FieldCostOfLiving, Label: "Cost of Living", LowLabel: "Cheap", HighLabel: "Expensive"},
		{Field: FieldPaceOfLife, Label: "Pace of Life", LowLabel: "Calm", HighLabel: "Fast"},
		{Field: FieldPollution, Label: "Pollution", LowLabel: "Clean", HighLabel: "Polluted"},
		{Field: FieldInfrastructure, Label: "Infrastructure", LowLabel: "Limited", HighLabel: "Excellent"},
		{Field: FieldSocialLife, Label: "Social Life", LowLabel: "Isolated", HighLabel: "Social"},
	}
}
