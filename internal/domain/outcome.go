package domain

type Outcome struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Scores         ScoreVector `json:"scores"`
	Considerations []string    `json:"considerations"`
}
