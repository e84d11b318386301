package response

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/hub"
	"errors"
	"net/http"
)

// StatusFor maps a domain error to the HTTP status reported to clients.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, hub.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrInvalidMove):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
