package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

type mockEventRepo struct {
	mock.Mock
}

func (that *mockEventRepo) Append(ctx context.Context, events []entity.Event) error {
	args := that.Called(ctx, events)
	return args.Error(0)
}

func (that *mockEventRepo) ListByGameID(ctx context.Context, gameID string, limit int) ([]entity.Event, error) {
	args := that.Called(ctx, gameID, limit)
	events, _ := args.Get(0).([]entity.Event)
	return events, args.Error(1)
}

func (that *mockEventRepo) DeleteByGameID(ctx context.Context, gameID string) error {
	args := that.Called(ctx, gameID)
	return args.Error(0)
}

type mockDecider struct {
	mock.Mock
}

func (that *mockDecider) ChooseAction(game *entity.Game) (entity.Action, error) {
	args := that.Called(game)
	action, _ := args.Get(0).(entity.Action)
	return action, args.Error(1)
}

func (that *mockDecider) FallbackAction(game *entity.Game) (entity.Action, error) {
	args := that.Called(game)
	action, _ := args.Get(0).(entity.Action)
	return action, args.Error(1)
}
