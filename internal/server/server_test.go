package server

import (
	"bytes"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/hub"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// firstEmpty always takes the first empty cell in row-major order.
type firstEmpty struct{}

func (firstEmpty) ChooseMove(board game.Board) (int, int, error) {
	cells := game.EmptyCells(board)
	if len(cells) == 0 {
		return -1, -1, bot.ErrNoLegalMove
	}
	return cells[0].Row, cells[0].Col, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Extras  json.RawMessage `json:"extras"`
}

func newTestServer(t *testing.T) (*Server, *hub.Hub) {
	t.Helper()
	h := hub.NewHub(firstEmpty{}, time.Minute)
	return NewServer(h, controller.NewGameController(h)), h
}

func do(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Engine().ServeHTTP(rr, req)

	var env envelope
	if rr.Header().Get("Content-Type") != "" && rr.Body.Len() > 0 && rr.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func decodeSnapshot(t *testing.T, raw json.RawMessage) session.Snapshot {
	t.Helper()
	var snap session.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	return snap
}

func createGame(t *testing.T, s *Server) session.Snapshot {
	t.Helper()
	rr, env := do(t, s, http.MethodPost, "/api/games", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.True(t, env.Success)
	return decodeSnapshot(t, env.Extras)
}

func TestIndexPage(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	s.Engine().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Tic-Tac-Toe Game")
	assert.Contains(t, rr.Body.String(), "/ws/games/")
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	createGame(t, s)

	rr, _ := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","games":1}`, rr.Body.String())
}

func TestCreateAndGetGame(t *testing.T) {
	s, h := newTestServer(t)
	snap := createGame(t, s)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, game.PlayerX, snap.Next)
	assert.Equal(t, game.InProgress, snap.Phase)
	assert.Equal(t, "Player X's Turn", snap.Status)
	assert.Equal(t, 1, h.Len())

	rr, env := do(t, s, http.MethodGet, "/api/games/"+snap.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, snap, decodeSnapshot(t, env.Extras))
}

func TestMove(t *testing.T) {
	s, _ := newTestServer(t)
	id := createGame(t, s).ID

	rr, env := do(t, s, http.MethodPost, "/api/games/"+id+"/moves", gin.H{"row": 1, "col": 1})
	require.Equal(t, http.StatusOK, rr.Code)

	snap := decodeSnapshot(t, env.Extras)
	assert.Equal(t, game.PlayerX, snap.Board[1][1])
	assert.Equal(t, game.PlayerO, snap.Board[0][0], "computer takes the first empty cell")
	assert.Equal(t, game.PlayerX, snap.Next)
}

func TestMove_Errors(t *testing.T) {
	s, _ := newTestServer(t)
	id := createGame(t, s).ID
	_, _ = do(t, s, http.MethodPost, "/api/games/"+id+"/moves", gin.H{"row": 1, "col": 1})

	tests := []struct {
		name     string
		path     string
		body     any
		wantCode int
	}{
		{"occupied", "/api/games/" + id + "/moves", gin.H{"row": 1, "col": 1}, http.StatusConflict},
		{"out of range", "/api/games/" + id + "/moves", gin.H{"row": 3, "col": 0}, http.StatusBadRequest},
		{"missing col", "/api/games/" + id + "/moves", gin.H{"row": 0}, http.StatusBadRequest},
		{"unknown game", "/api/games/nope/moves", gin.H{"row": 0, "col": 0}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := do(t, s, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}

	// The rejected moves left the board as it was.
	_, env := do(t, s, http.MethodGet, "/api/games/"+id, nil)
	snap := decodeSnapshot(t, env.Extras)
	assert.Equal(t, 1, snap.Grid().Count(game.PlayerX))
	assert.Equal(t, 1, snap.Grid().Count(game.PlayerO))
}

func TestMove_AfterWin(t *testing.T) {
	s, _ := newTestServer(t)
	id := createGame(t, s).ID

	// The computer fills (0,0), (0,1), ...; X takes the bottom row.
	for _, col := range []int{0, 1} {
		rr, _ := do(t, s, http.MethodPost, "/api/games/"+id+"/moves", gin.H{"row": 2, "col": col})
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr, env := do(t, s, http.MethodPost, "/api/games/"+id+"/moves", gin.H{"row": 2, "col": 2})
	require.Equal(t, http.StatusOK, rr.Code)
	snap := decodeSnapshot(t, env.Extras)
	require.Equal(t, game.Won, snap.Phase)
	assert.Equal(t, game.PlayerX, snap.Winner)
	assert.Equal(t, []game.Cell{{2, 0}, {2, 1}, {2, 2}}, snap.WinningLine)

	rr, env = do(t, s, http.MethodPost, "/api/games/"+id+"/moves", gin.H{"row": 1, "col": 1})
	assert.Equal(t, http.StatusConflict, rr.Code)

	var extras struct {
		Message string           `json:"message"`
		State   session.Snapshot `json:"state"`
	}
	require.NoError(t, json.Unmarshal(env.Extras, &extras))
	assert.Contains(t, extras.Message, "game already finished")
	assert.Equal(t, snap, extras.State)
}

func TestResetAndDelete(t *testing.T) {
	s, h := newTestServer(t)
	id := createGame(t, s).ID
	_, _ = do(t, s, http.MethodPost, "/api/games/"+id+"/moves", gin.H{"row": 0, "col": 2})

	rr, env := do(t, s, http.MethodPost, "/api/games/"+id+"/reset", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	snap := decodeSnapshot(t, env.Extras)
	assert.Equal(t, game.Board{}, snap.Grid())
	assert.Equal(t, game.PlayerX, snap.Next)

	rr, _ = do(t, s, http.MethodDelete, "/api/games/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, h.Len())

	rr, _ = do(t, s, http.MethodGet, "/api/games/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr, _ = do(t, s, http.MethodPost, "/api/games/"+id+"/reset", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr, _ = do(t, s, http.MethodDelete, "/api/games/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
