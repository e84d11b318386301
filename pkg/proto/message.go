package proto

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
)

// Client message types
const (
	TypeMove    = "move"
	TypeRestart = "restart"
)

// Server message types
const (
	TypeUpdate = "update"
	TypeError  = "error"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type     string `json:"type" validate:"required,oneof=move restart"`
	Position []int  `json:"position,omitempty"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type        string              `json:"type" validate:"required"`
	Reason      string              `json:"reason,omitempty"`
	GameID      string              `json:"gameId,omitempty"`
	Board       [][]game.PlayerMark `json:"board,omitempty"`
	Next        game.PlayerMark     `json:"next,omitempty"`
	Phase       game.Phase          `json:"phase,omitempty"`
	Winner      game.PlayerMark     `json:"winner,omitempty"`
	WinningLine []game.Cell         `json:"winningLine,omitempty"`
	Status      string              `json:"status,omitempty"`
}

// NewUpdateMessage renders a snapshot for the wire.
func NewUpdateMessage(snap session.Snapshot) *ServerToClientMessage {
	return &ServerToClientMessage{
		Type:        TypeUpdate,
		GameID:      snap.ID,
		Board:       snap.Board,
		Next:        snap.Next,
		Phase:       snap.Phase,
		Winner:      snap.Winner,
		WinningLine: snap.WinningLine,
		Status:      snap.Status,
	}
}

// NewErrorMessage reports a rejected request, carrying the unchanged state
// when there is one.
func NewErrorMessage(reason string, snap *session.Snapshot) *ServerToClientMessage {
	msg := &ServerToClientMessage{Type: TypeError}
	if snap != nil {
		msg = NewUpdateMessage(*snap)
		msg.Type = TypeError
	}
	msg.Reason = reason
	return msg
}
