package repository

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// propertiesKey - hash of property state JSON keyed by property id.
func propertiesKey(gameID string) string {
	return "game:" + gameID + ":properties"
}

func encodeProperties(properties []*entity.PropertyState) (map[string]any, error) {
	fields := make(map[string]any, len(properties))
	for _, state := range properties {
		stateJSON, err := json.Marshal(state)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal property state: %w", err)
		}

		fields[state.PropertyID] = stateJSON
	}

	return fields, nil
}

// decodeProperties - restores the states in board order.
func decodeProperties(fields map[string]string) ([]*entity.PropertyState, error) {
	properties := make([]*entity.PropertyState, 0, len(fields))
	for id, value := range fields {
		var state entity.PropertyState
		if err := json.Unmarshal([]byte(value), &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal property %s: %w", id, err)
		}

		properties = append(properties, &state)
	}

	sort.Slice(properties, func(i, j int) bool {
		return boardPosition(properties[i].PropertyID) < boardPosition(properties[j].PropertyID)
	})

	return properties, nil
}

func boardPosition(propertyID string) int {
	prop, _ := board.PropertyByID(propertyID)
	return prop.Position
}
