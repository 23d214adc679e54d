package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// decodeRequest - unmarshals the request payload and answers the client itself when it can't.
func (that *Server) decodeRequest(msg *Message, conn *websocket.Conn) (*RequestPayload, bool, error) {
	var payloadReq RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return nil, false, that.sendErrorResponse(conn, msg.Action, fmt.Sprintf("invalid payload: %v", err))
		}
	}

	if msg.Action != "game:create" && payloadReq.GameID == "" {
		return nil, false, that.sendErrorResponse(conn, msg.Action, "game_id is required")
	}

	return &payloadReq, true, nil
}

func (that *Server) handleCreateGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleCreateGame")

	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	game, err := that.games.CreateGame(ctx, payloadReq.Players)
	if err != nil {
		log.Warn("failed to create game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleStartGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	game, err := that.games.StartGame(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	game, err := that.games.GetState(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleLegalActions(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	actions, err := that.games.GetLegalActions(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Actions: actions})
}

// handleApplyAction - a rejection is sent with its result so the client keeps the unchanged state.
func (that *Server) handleApplyAction(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	if payloadReq.Action == nil {
		return that.sendErrorResponse(conn, msg.Action, "action is required")
	}

	result, err := that.games.ApplyAction(ctx, payloadReq.GameID, payloadReq.PlayerID, *payloadReq.Action)
	if err != nil {
		return that.sendMessage(conn, msg.Action, ResponsePayload{Result: result, Error: err.Error()})
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Result: result})
}

func (that *Server) handleDefaultAction(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	result, err := that.games.ApplyDefaultAction(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Result: result})
}

// handleEvents - with "after" set only the events sequenced after it are sent.
func (that *Server) handleEvents(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	var events []entity.Event
	if payloadReq.After != nil {
		events, err = that.games.GetEventsSince(ctx, payloadReq.GameID, *payloadReq.After, payloadReq.Limit)
	} else {
		events, err = that.games.GetEvents(ctx, payloadReq.GameID, payloadReq.Limit)
	}
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Events: events})
}

func (that *Server) handleDeleteGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleDeleteGame")

	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	if err = that.games.DeleteGame(ctx, payloadReq.GameID); err != nil {
		log.Warn("failed to delete game", "game_id", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{GameID: payloadReq.GameID})
}

// handleAutoplay - the connection waits for the whole run; "steps" of zero means the configured budget.
func (that *Server) handleAutoplay(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodeRequest(msg, conn)
	if !ok {
		return err
	}

	if payloadReq.Steps < 0 {
		return that.sendErrorResponse(conn, msg.Action, "steps must be a non-negative integer")
	}

	result, err := that.games.Autoplay(ctx, payloadReq.GameID, payloadReq.Steps)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Result: result})
}
