package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/pkg/handlers"
)

type mockGameUseCase struct {
	mock.Mock
}

func (that *mockGameUseCase) CreateGame(ctx context.Context, specs []entity.PlayerSpec) (*entity.Game, error) {
	args := that.Called(ctx, specs)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameUseCase) StartGame(ctx context.Context, gameID string) (*entity.Game, error) {
	args := that.Called(ctx, gameID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameUseCase) GetState(ctx context.Context, gameID string) (*entity.Game, error) {
	args := that.Called(ctx, gameID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameUseCase) GetLegalActions(ctx context.Context, gameID string) (*entity.LegalActions, error) {
	args := that.Called(ctx, gameID)
	actions, _ := args.Get(0).(*entity.LegalActions)
	return actions, args.Error(1)
}

func (that *mockGameUseCase) ApplyAction(ctx context.Context, gameID, playerID string, action entity.Action) (*entity.ActionResult, error) {
	args := that.Called(ctx, gameID, playerID, action)
	result, _ := args.Get(0).(*entity.ActionResult)
	return result, args.Error(1)
}

func (that *mockGameUseCase) GetEvents(ctx context.Context, gameID string, limit int) ([]entity.Event, error) {
	args := that.Called(ctx, gameID, limit)
	events, _ := args.Get(0).([]entity.Event)
	return events, args.Error(1)
}

func (that *mockGameUseCase) ApplyDefaultAction(ctx context.Context, gameID string) (*entity.ActionResult, error) {
	args := that.Called(ctx, gameID)
	result, _ := args.Get(0).(*entity.ActionResult)
	return result, args.Error(1)
}

func (that *mockGameUseCase) GetEventsSince(ctx context.Context, gameID string, after int64, limit int) ([]entity.Event, error) {
	args := that.Called(ctx, gameID, after, limit)
	events, _ := args.Get(0).([]entity.Event)
	return events, args.Error(1)
}

func (that *mockGameUseCase) DeleteGame(ctx context.Context, gameID string) error {
	args := that.Called(ctx, gameID)
	return args.Error(0)
}

func (that *mockGameUseCase) Autoplay(ctx context.Context, gameID string, maxSteps int) (*entity.ActionResult, error) {
	args := that.Called(ctx, gameID, maxSteps)
	result, _ := args.Get(0).(*entity.ActionResult)
	return result, args.Error(1)
}

func newTestServer(t *testing.T) (*mockGameUseCase, http.Handler) {
	t.Helper()

	games := &mockGameUseCase{}
	t.Cleanup(func() { games.AssertExpectations(t) })

	return games, New(slog.New(slog.NewJSONHandler(io.Discard, nil)), games).Handler()
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, reader))

	return rec
}

func TestPing(t *testing.T) {
	_, handler := newTestServer(t)

	rec := serve(handler, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestCreateGame(t *testing.T) {
	t.Run("Created game is returned", func(t *testing.T) {
		// Given: a use case that creates the game
		games, handler := newTestServer(t)
		specs := []entity.PlayerSpec{{Name: "Alice"}, {Name: "Bob", Personality: "shark"}}
		games.On("CreateGame", mock.Anything, specs).Return(&entity.Game{ID: "g1", Status: entity.StatusWaiting}, nil).Once()

		// When: the roster is posted
		rec := serve(handler, http.MethodPost, "/games", `{"players":[{"name":"Alice"},{"name":"Bob","personality":"shark"}]}`)

		// Then: 201 with the game
		require.Equal(t, http.StatusCreated, rec.Code)
		var game entity.Game
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &game))
		assert.Equal(t, "g1", game.ID)
	})

	t.Run("Malformed body", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := serve(handler, http.MethodPost, "/games", `{"players":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApplyAction(t *testing.T) {
	action := entity.Action{Type: entity.ActionBuildHouse, PropertyID: "boardwalk"}
	body := `{"player_id":"p0","action":{"type":"build_house","property_id":"boardwalk"}}`

	t.Run("Applied action answers with the result", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("ApplyAction", mock.Anything, "g1", "p0", action).
			Return(&entity.ActionResult{Success: true, Message: "build_house applied"}, nil).Once()

		rec := serve(handler, http.MethodPost, "/games/g1/actions", body)

		require.Equal(t, http.StatusOK, rec.Code)
		var result entity.ActionResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Success)
	})

	t.Run("Rejected action answers with the unchanged state", func(t *testing.T) {
		// Given: the use case rejects the build
		games, handler := newTestServer(t)
		err := fmt.Errorf("action build_house rejected in phase post_roll: %w", apperror.ErrInsufficientFunds)
		games.On("ApplyAction", mock.Anything, "g1", "p0", action).
			Return(&entity.ActionResult{Message: err.Error(), State: &entity.Game{ID: "g1"}}, err).Once()

		// When: the action is posted
		rec := serve(handler, http.MethodPost, "/games/g1/actions", body)

		// Then: 400 carrying the structured result
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var result entity.ActionResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "post_roll")
		assert.Equal(t, "g1", result.State.ID)
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: fmt.Errorf("%w: g1", apperror.ErrGameNotFound), status: http.StatusNotFound},
		{name: "finished", err: apperror.ErrGameFinished, status: http.StatusConflict},
		{name: "not your turn", err: apperror.ErrNotYourTurn, status: http.StatusBadRequest},
		{name: "storage", err: assert.AnError, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, handler := newTestServer(t)
			games.On("StartGame", mock.Anything, "g1").Return(nil, tt.err).Once()

			rec := serve(handler, http.MethodPost, "/games/g1/start", "")

			require.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestReadRoutes(t *testing.T) {
	t.Run("State", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("GetState", mock.Anything, "g1").Return(&entity.Game{ID: "g1"}, nil).Once()

		rec := serve(handler, http.MethodGet, "/games/g1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Legal actions", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("GetLegalActions", mock.Anything, "g1").Return(&entity.LegalActions{
			GameID:   "g1",
			PlayerID: "p0",
			Phase:    entity.PhaseAwaitingRoll,
			Actions:  []entity.LegalAction{{Type: entity.ActionRollDice, Description: "Roll the dice"}},
		}, nil).Once()

		rec := serve(handler, http.MethodGet, "/games/g1/actions", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var legal entity.LegalActions
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &legal))
		assert.Equal(t, entity.PhaseAwaitingRoll, legal.Phase)
		assert.Len(t, legal.Actions, 1)
	})

	t.Run("Events with a limit", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("GetEvents", mock.Anything, "g1", 5).Return([]entity.Event{{Sequence: 9}}, nil).Once()

		rec := serve(handler, http.MethodGet, "/games/g1/events?limit=5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Events after a sequence", func(t *testing.T) {
		// Given: a client that already saw event 7
		games, handler := newTestServer(t)
		games.On("GetEventsSince", mock.Anything, "g1", int64(7), 0).
			Return([]entity.Event{{Sequence: 8}, {Sequence: 9}}, nil).Once()

		// When: it asks for the rest
		rec := serve(handler, http.MethodGet, "/games/g1/events?after=7", "")

		// Then: only the newer events come back
		require.Equal(t, http.StatusOK, rec.Code)
		var events []entity.Event
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
		require.Len(t, events, 2)
		assert.Equal(t, int64(8), events[0].Sequence)
	})

	t.Run("Events after zero still filters", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("GetEventsSince", mock.Anything, "g1", int64(0), 3).Return([]entity.Event{}, nil).Once()

		rec := serve(handler, http.MethodGet, "/games/g1/events?after=0&limit=3", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Events with a bad after", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := serve(handler, http.MethodGet, "/games/g1/events?after=x", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Events with a bad limit", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := serve(handler, http.MethodGet, "/games/g1/events?limit=-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWriteRoutes(t *testing.T) {
	t.Run("Delete", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("DeleteGame", mock.Anything, "g1").Return(nil).Once()

		rec := serve(handler, http.MethodDelete, "/games/g1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Default action", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("ApplyDefaultAction", mock.Anything, "g1").Return(&entity.ActionResult{
			Success: true,
			Message: "pass_property applied",
			State:   &entity.Game{ID: "g1"},
		}, nil).Once()

		rec := serve(handler, http.MethodPost, "/games/g1/actions/default", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var result entity.ActionResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, "pass_property applied", result.Message)
	})

	t.Run("Default action on a finished game", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("ApplyDefaultAction", mock.Anything, "g1").Return(nil, apperror.ErrGameFinished).Once()

		rec := serve(handler, http.MethodPost, "/games/g1/actions/default", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Autoplay", func(t *testing.T) {
		games, handler := newTestServer(t)
		games.On("Autoplay", mock.Anything, "g1", 50).Return(&entity.ActionResult{Success: true, GameOver: true, WinnerID: "p1"}, nil).Once()

		rec := serve(handler, http.MethodPost, "/games/g1/autoplay?steps=50", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var result entity.ActionResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "p1", result.WinnerID)
	})
}
