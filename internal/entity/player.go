package entity

// Player - a named participant holding one of the two marks.
type Player struct {
	Name string `json:"name"`
	Mark string `json:"mark,omitempty"`
}
