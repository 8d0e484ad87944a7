package domain

// CuratedEntry es una terna curada todavía sin resolver contra los catálogos.
type CuratedEntry struct {
	Country     string
	CountryCode string
	ImageURL    string
	LocationID  string
	FamilyID    string
	LifestyleID string
}

type Combination struct {
	ID            string `json:"id"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code,omitempty"`
	ImageURL      string `json:"image_url"`
	Location      Option `json:"location"`
	FamilyContext Option `json:"family_context"`
	Lifestyle     Option `json:"lifestyle"`
}

// CombinationPreview es la vista "tarjeta" de una combinación con su resultado ya calculado.
type CombinationPreview struct {
	Combination
	LocationTag string                    `json:"location_tag"`
	Outcome     Outcome                   `json:"outcome"`
	Bands       map[ScoreField]ScoreBand  `json:"bands"`
	Levels      map[ScoreField]ScoreLevel `json:"levels"`
}
