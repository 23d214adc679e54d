package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/pkg/handlers"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMessageSize  = 64 * 1024
	shutdownTimeout = 5 * time.Second
)

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

type handlerFunc func(ctx context.Context, message *Message, conn *websocket.Conn) error

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["game:create"] = server.handleCreateGame
	server.handlers["game:start"] = server.handleStartGame
	server.handlers["game:state"] = server.handleGameState
	server.handlers["game:actions"] = server.handleLegalActions
	server.handlers["game:apply"] = server.handleApplyAction
	server.handlers["game:default"] = server.handleDefaultAction
	server.handlers["game:events"] = server.handleEvents
	server.handlers["game:delete"] = server.handleDeleteGame
	server.handlers["game:autoplay"] = server.handleAutoplay

	return server
}

// Handler - the upgrade endpoint plus a ping for health checks. Connections live until ctx is done.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", handlers.PingHandler)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
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

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go that.keepAlive(connCtx, conn)

	if err = that.handleMessages(connCtx, conn); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until it goes away.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		message, err := that.readMessage(conn)
		if errors.Is(err, errMalformedMessage) {
			log.Warn("failed to decode message", "error", err)
			if err = that.sendErrorResponse(conn, "", err.Error()); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			if err = that.sendErrorResponse(conn, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, message, conn); err != nil {
			return fmt.Errorf("failed to handle %s: %w", message.Action, err)
		}
	}
}

// keepAlive - pings the peer so the read deadline keeps moving while the client is idle.
func (that *Server) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), time.Now().Add(writeWait))
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
