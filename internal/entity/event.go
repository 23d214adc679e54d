package entity

import (
	"maps"
	"slices"
	"time"
)

type EventType string

const (
	EventGameCreated       EventType = "game_created"
	EventGameStarted       EventType = "game_started"
	EventGameEnded         EventType = "game_ended"
	EventTurnStarted       EventType = "turn_started"
	EventTurnEnded         EventType = "turn_ended"
	EventDiceRolled        EventType = "dice_rolled"
	EventPlayerMoved       EventType = "player_moved"
	EventPassedGo          EventType = "passed_go"
	EventPropertyPurchased EventType = "property_purchased"
	EventPropertyPassed    EventType = "property_passed"
	EventRentPaid          EventType = "rent_paid"
	EventTaxPaid           EventType = "tax_paid"
	EventHouseBuilt        EventType = "house_built"
	EventHotelBuilt        EventType = "hotel_built"
	EventCardDrawn         EventType = "card_drawn"
	EventSentToJail        EventType = "sent_to_jail"
	EventLeftJail          EventType = "left_jail"
	EventJailFinePaid      EventType = "jail_fine_paid"
	EventJailCardUsed      EventType = "jail_card_used"
	EventPlayerBankrupt    EventType = "player_bankrupt"
	EventPaymentMade       EventType = "payment_made"
	EventPaymentReceived   EventType = "payment_received"
)

// Event is one immutable entry of a game's history. Sequence and CreatedAt are assigned
// when the event is appended to the log.
type Event struct {
	GameID     string         `json:"game_id"`
	Sequence   int64          `json:"sequence"`
	TurnNumber int            `json:"turn_number"`
	PlayerID   string         `json:"player_id,omitempty"`
	Type       EventType      `json:"type"`
	Payload    map[string]any `json:"payload,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Clone - copies the event together with its payload so the copy can be changed freely.
func (that Event) Clone() Event {
	that.Payload = clonePayload(that.Payload)
	return that
}

func clonePayload(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}

	out := maps.Clone(payload)
	for key, value := range out {
		out[key] = cloneValue(value)
	}

	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return clonePayload(v)
	case []any:
		out := slices.Clone(v)
		for i := range out {
			out[i] = cloneValue(out[i])
		}
		return out
	case []string:
		return slices.Clone(v)
	case []int:
		return slices.Clone(v)
	default:
		return value
	}
}

// CloneEvents - deep copies a slice of events; the result is never nil.
func CloneEvents(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, event := range events {
		out = append(out, event.Clone())
	}

	return out
}
