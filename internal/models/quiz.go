package models

// QuizAnswer is the ephemeral input of the preference quiz; it is never
// persisted. Single-value fields are matched against the catalog's
// multi-value fields.
type QuizAnswer struct {
	Gender      string   `json:"gender"`
	Season      string   `json:"season"`
	Occasion    string   `json:"occasion"`
	Preferences []string `json:"preferences"`
}
