package entity

// Player is a named participant bound to one mark for the whole session.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}

// Score is a player's win count within the current session.
type Score struct {
	Player Player `json:"player"`
	Wins   int    `json:"wins"`
}
