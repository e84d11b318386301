package models

// MoveRequest defines the structure of a human move request. Coordinates
// are pointers so a missing field is told apart from zero.
type MoveRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}
