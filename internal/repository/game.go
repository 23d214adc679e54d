package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

// gameRow is the game:<id> value; players and properties live in their own hashes.
type gameRow struct {
	ID                 string           `json:"id"`
	Status             string           `json:"status"`
	Phase              entity.Phase     `json:"phase,omitempty"`
	CurrentPlayerIndex int              `json:"current_player_index"`
	TurnNumber         int              `json:"turn_number"`
	DoublesCount       int              `json:"doubles_count"`
	LastDiceRoll       *entity.DiceRoll `json:"last_dice_roll,omitempty"`
	PendingPurchase    string           `json:"pending_purchase,omitempty"`
	WinnerID           string           `json:"winner_id,omitempty"`
	ChanceDeck         *entity.Deck     `json:"chance_deck"`
	CommunityChestDeck *entity.Deck     `json:"community_chest_deck"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func gameKey(id string) string {
	return "game:" + id
}

// CreateOrUpdate - writes the game row, the players hash and the properties hash in one MULTI.
func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(toGameRow(game))
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	players, err := encodePlayers(game.Players)
	if err != nil {
		return err
	}

	properties, err := encodeProperties(game.Properties)
	if err != nil {
		return err
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
		pipe.HSet(ctx, playersKey(game.ID), players)
		pipe.HSet(ctx, propertiesKey(game.ID), properties)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	var (
		rowCmd        *redis.StringCmd
		playersCmd    *redis.MapStringStringCmd
		propertiesCmd *redis.MapStringStringCmd
	)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		rowCmd = pipe.Get(ctx, gameKey(id))
		playersCmd = pipe.HGetAll(ctx, playersKey(id))
		propertiesCmd = pipe.HGetAll(ctx, propertiesKey(id))
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var row gameRow
	if err = json.Unmarshal([]byte(rowCmd.Val()), &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	players, err := decodePlayers(playersCmd.Val())
	if err != nil {
		return nil, err
	}

	properties, err := decodeProperties(propertiesCmd.Val())
	if err != nil {
		return nil, err
	}

	return row.toGame(players, properties), nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	err := that.client.Del(ctx, gameKey(id), playersKey(id), propertiesKey(id)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	return nil
}

func toGameRow(game *entity.Game) gameRow {
	return gameRow{
		ID:                 game.ID,
		Status:             game.Status,
		Phase:              game.Phase,
		CurrentPlayerIndex: game.CurrentPlayerIndex,
		TurnNumber:         game.TurnNumber,
		DoublesCount:       game.DoublesCount,
		LastDiceRoll:       game.LastDiceRoll,
		PendingPurchase:    game.PendingPurchase,
		WinnerID:           game.WinnerID,
		ChanceDeck:         game.ChanceDeck,
		CommunityChestDeck: game.CommunityChestDeck,
		CreatedAt:          game.CreatedAt,
		UpdatedAt:          game.UpdatedAt,
	}
}

func (that gameRow) toGame(players []*entity.Player, properties []*entity.PropertyState) *entity.Game {
	return &entity.Game{
		ID:                 that.ID,
		Status:             that.Status,
		Phase:              that.Phase,
		CurrentPlayerIndex: that.CurrentPlayerIndex,
		TurnNumber:         that.TurnNumber,
		DoublesCount:       that.DoublesCount,
		LastDiceRoll:       that.LastDiceRoll,
		PendingPurchase:    that.PendingPurchase,
		WinnerID:           that.WinnerID,
		Players:            players,
		Properties:         properties,
		ChanceDeck:         that.ChanceDeck,
		CommunityChestDeck: that.CommunityChestDeck,
		CreatedAt:          that.CreatedAt,
		UpdatedAt:          that.UpdatedAt,
	}
}
