package model

// BandRequest is the payload for creating or fully replacing a performance.
type BandRequest struct {
	Name  string `json:"name" binding:"required"`
	Genre string `json:"genre" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
}
