package controller

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GameHub is the part of hub.Hub the controller needs.
type GameHub interface {
	Create(ctx context.Context) *session.Session
	Get(id string) (*session.Session, error)
	Remove(ctx context.Context, id string) error
}

// GameController handles game-related HTTP requests.
type GameController struct {
	hub GameHub
}

// NewGameController creates a new GameController.
func NewGameController(hub GameHub) *GameController {
	return &GameController{
		hub: hub,
	}
}

// Create starts a new game and returns its initial state.
func (gc *GameController) Create(c *gin.Context) {
	s := gc.hub.Create(c.Request.Context())
	response.CreatedResponse(c, s.State())
}

// Get returns the current state of a game.
func (gc *GameController) Get(c *gin.Context) {
	s, err := gc.hub.Get(c.Param("id"))
	if err != nil {
		response.DomainErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, s.State())
}

// Move applies the human move and the computer's reply.
func (gc *GameController) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	s, err := gc.hub.Get(c.Param("id"))
	if err != nil {
		response.DomainErrorResponse(c, err)
		return
	}

	snap, err := s.ApplyHumanMove(c.Request.Context(), *req.Row, *req.Col)
	if err != nil {
		response.ErrorResponseWithState(c, response.StatusFor(err), err.Error(), snap)
		return
	}

	response.SuccessResponse(c, snap)
}

// Reset restarts a game.
func (gc *GameController) Reset(c *gin.Context) {
	s, err := gc.hub.Get(c.Param("id"))
	if err != nil {
		response.DomainErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, s.Reset(c.Request.Context()))
}

// Delete discards a game.
func (gc *GameController) Delete(c *gin.Context) {
	if err := gc.hub.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.DomainErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{"message": "Game deleted"})
}
