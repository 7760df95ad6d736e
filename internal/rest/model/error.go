package model

type Error struct {
	Error string `json:"error"`
	// Set for rejected keys and texts, e.g. "invalid_character".
	Kind string `json:"kind,omitempty"`
}
