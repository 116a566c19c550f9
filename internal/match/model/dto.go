package model

// MatchRequest is the payload for creating or fully replacing a match.
// Edits are replace-as-a-whole; there is no partial update.
type MatchRequest struct {
	Sport  string `json:"sport"`
	League string `json:"league" binding:"required"`
	Team1  string `json:"team1" binding:"required"`
	Team2  string `json:"team2" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
}
