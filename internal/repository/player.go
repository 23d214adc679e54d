package repository

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// playersKey - hash of player JSON keyed by turn order.
func playersKey(gameID string) string {
	return "game:" + gameID + ":players"
}

func encodePlayers(players []*entity.Player) (map[string]any, error) {
	fields := make(map[string]any, len(players))
	for _, player := range players {
		playerJSON, err := json.Marshal(player)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal player: %w", err)
		}

		fields[strconv.Itoa(player.Order)] = playerJSON
	}

	return fields, nil
}

func decodePlayers(fields map[string]string) ([]*entity.Player, error) {
	players := make([]*entity.Player, 0, len(fields))
	for _, value := range fields {
		var player entity.Player
		if err := json.Unmarshal([]byte(value), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player: %w", err)
		}

		players = append(players, &player)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].Order < players[j].Order
	})

	return players, nil
}
