package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

var errMalformedMessage = errors.New("malformed message")

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID   string              `json:"game_id,omitempty"`
	PlayerID string              `json:"player_id,omitempty"`
	Players  []entity.PlayerSpec `json:"players,omitempty"`
	Action   *entity.Action      `json:"action,omitempty"`
	Limit    int                 `json:"limit,omitempty"`
	After    *int64              `json:"after,omitempty"`
	Steps    int                 `json:"steps,omitempty"`
}

type ResponsePayload struct {
	GameID  string               `json:"game_id,omitempty"`
	Game    *entity.Game         `json:"game,omitempty"`
	Actions *entity.LegalActions `json:"actions,omitempty"`
	Result  *entity.ActionResult `json:"result,omitempty"`
	Events  []entity.Event       `json:"events,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// readMessage - reads one text frame and decodes the envelope. A frame that isn't an envelope
// fails with errMalformedMessage and leaves the connection usable.
func (that *Server) readMessage(conn *websocket.Conn) (*Message, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}

	var message Message
	if err = json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return &message, nil
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteMessage(websocket.TextMessage, response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, errorMsg string) error {
	if err := that.sendMessage(conn, action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
