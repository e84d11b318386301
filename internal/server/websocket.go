package server

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"ctchen222/Tic-Tac-Toe-Solo/internal/validator"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxMessageSize = 512

// Connection is the part of a websocket connection the game loop uses.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// handleWebSocket upgrades the connection for an existing game and serves
// it until the client goes away.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
		attribute.String("game.id", c.Param("id")),
	))
	defer span.End()

	sess, err := s.hub.Get(c.Param("id"))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Game not found")
		response.DomainErrorResponse(c, err)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}
	conn.SetReadLimit(maxMessageSize)

	serveConn(ctx, conn, sess)
}

// serveConn sends the current state, then answers every client message
// with the resulting state. Messages are handled one at a time, so input
// arriving during a move waits for it to complete.
func serveConn(ctx context.Context, conn Connection, sess *session.Session) {
	defer conn.Close()

	snap := sess.State()
	if err := writeJSON(conn, proto.NewUpdateMessage(snap)); err != nil {
		slog.WarnContext(ctx, "error writing initial state", "game.id", sess.ID, "error", err)
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "Player connection error", "game.id", sess.ID, "error", err)
			}
			return
		}

		reply := handleMessage(ctx, sess, raw)
		if err := writeJSON(conn, reply); err != nil {
			slog.WarnContext(ctx, "error writing message to player", "game.id", sess.ID, "error", err)
			return
		}
	}
}

// handleMessage dispatches one client message and builds the reply.
func handleMessage(ctx context.Context, sess *session.Session, raw []byte) *proto.ServerToClientMessage {
	ctx, span := tracer.Start(ctx, "server.handleMessage", trace.WithAttributes(
		attribute.String("game.id", sess.ID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(raw, &message); err != nil {
		slog.WarnContext(ctx, "error unmarshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		return proto.NewErrorMessage("malformed message", nil)
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "game.id", sess.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		return proto.NewErrorMessage("invalid message", nil)
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	switch message.Type {
	case proto.TypeMove:
		snap, err := sess.ApplyHumanMove(ctx, message.Position[0], message.Position[1])
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Move rejected")
			return proto.NewErrorMessage(err.Error(), &snap)
		}
		return proto.NewUpdateMessage(snap)
	case proto.TypeRestart:
		return proto.NewUpdateMessage(sess.Reset(ctx))
	}

	// oneof validation keeps other types out
	err := errors.New("unhandled message type " + message.Type)
	span.RecordError(err)
	return proto.NewErrorMessage(err.Error(), nil)
}

func writeJSON(conn Connection, msg *proto.ServerToClientMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
