package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/pkg/handlers"
)

var errBadRequest = errors.New("bad request")

type createGameRequest struct {
	Players []entity.PlayerSpec `json:"players"`
}

type applyActionRequest struct {
	PlayerID string        `json:"player_id"`
	Action   entity.Action `json:"action"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.fail(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.games.CreateGame(r.Context(), req.Players)
	if err != nil {
		that.fail(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, game)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetState(r.Context(), r.PathValue("id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, game)
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) startGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.StartGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, game)
}

func (that *Server) getLegalActions(w http.ResponseWriter, r *http.Request) {
	actions, err := that.games.GetLegalActions(r.Context(), r.PathValue("id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, actions)
}

// applyAction - a rejected action still answers with the result so the caller sees the unchanged state.
func (that *Server) applyAction(w http.ResponseWriter, r *http.Request) {
	var req applyActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.fail(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	result, err := that.games.ApplyAction(r.Context(), r.PathValue("id"), req.PlayerID, req.Action)
	if err != nil && result != nil {
		handlers.WriteJSON(w, statusOf(err), result)
		return
	}
	if err != nil {
		that.fail(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// applyDefaultAction - plays the safe default for whoever is on turn.
func (that *Server) applyDefaultAction(w http.ResponseWriter, r *http.Request) {
	result, err := that.games.ApplyDefaultAction(r.Context(), r.PathValue("id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// getEvents - ?after=N returns only the events sequenced after N.
func (that *Server) getEvents(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		that.fail(w, r, err)
		return
	}

	after, err := queryInt(r, "after")
	if err != nil {
		that.fail(w, r, err)
		return
	}

	var events []entity.Event
	if r.URL.Query().Has("after") {
		events, err = that.games.GetEventsSince(r.Context(), r.PathValue("id"), int64(after), limit)
	} else {
		events, err = that.games.GetEvents(r.Context(), r.PathValue("id"), limit)
	}
	if err != nil {
		that.fail(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, events)
}

func (that *Server) autoplay(w http.ResponseWriter, r *http.Request) {
	steps, err := queryInt(r, "steps")
	if err != nil {
		that.fail(w, r, err)
		return
	}

	result, err := that.games.Autoplay(r.Context(), r.PathValue("id"), steps)
	if err != nil {
		that.fail(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

func (that *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	handlers.WriteError(w, status, err)
}

// queryInt - reads an optional non-negative integer query parameter; absent means 0.
func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, key)
	}

	return value, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrIllegalStateTransition):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidAction),
		errors.Is(err, apperror.ErrInsufficientFunds),
		errors.Is(err, apperror.ErrInvalidPlayers),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
