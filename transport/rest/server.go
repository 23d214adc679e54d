package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	CreateGame(ctx context.Context, specs []entity.PlayerSpec) (*entity.Game, error)
	StartGame(ctx context.Context, gameID string) (*entity.Game, error)
	GetState(ctx context.Context, gameID string) (*entity.Game, error)
	GetLegalActions(ctx context.Context, gameID string) (*entity.LegalActions, error)
	ApplyAction(ctx context.Context, gameID, playerID string, action entity.Action) (*entity.ActionResult, error)
	ApplyDefaultAction(ctx context.Context, gameID string) (*entity.ActionResult, error)
	GetEvents(ctx context.Context, gameID string, limit int) ([]entity.Event, error)
	GetEventsSince(ctx context.Context, gameID string, after int64, limit int) ([]entity.Event, error)
	DeleteGame(ctx context.Context, gameID string) error
	Autoplay(ctx context.Context, gameID string, maxSteps int) (*entity.ActionResult, error)
}

type Server struct {
	logger *slog.Logger
	games  gameUseCase
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

// Handler - routes of the game API.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handlers.PingHandler)

	mux.HandleFunc("POST /games", that.createGame)
	mux.HandleFunc("GET /games/{id}", that.getGame)
	mux.HandleFunc("DELETE /games/{id}", that.deleteGame)
	mux.HandleFunc("POST /games/{id}/start", that.startGame)
	mux.HandleFunc("GET /games/{id}/actions", that.getLegalActions)
	mux.HandleFunc("POST /games/{id}/actions", that.applyAction)
	mux.HandleFunc("POST /games/{id}/actions/default", that.applyDefaultAction)
	mux.HandleFunc("GET /games/{id}/events", that.getEvents)
	mux.HandleFunc("POST /games/{id}/autoplay", that.autoplay)

	return mux
}

// Start - serves the API until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
