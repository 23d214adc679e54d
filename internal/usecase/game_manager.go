package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/eventlog"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type eventRepo interface {
	Append(ctx context.Context, events []entity.Event) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]entity.Event, error)
	DeleteByGameID(ctx context.Context, gameID string) error
}

type decider interface {
	ChooseAction(game *entity.Game) (entity.Action, error)
	FallbackAction(game *entity.Game) (entity.Action, error)
}

type Settings struct {
	StartingCash     int
	MinPlayers       int
	MaxPlayers       int
	MaxAutoplaySteps int
}

// GameManager - owns the live games and is the only path through which they change.
// Every operation on one game runs under that game's session lock.
type GameManager struct {
	logger *slog.Logger

	gameRepo  gameRepo
	eventRepo eventRepo

	registry   *Registry
	controller *monopoly.Controller
	shuffler   monopoly.Shuffler
	bot        decider
	settings   Settings
	now        func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	gameRepo gameRepo,
	eventRepo eventRepo,
	dice monopoly.Dice,
	shuffler monopoly.Shuffler,
	bot decider,
	settings Settings,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:  gameRepo,
		eventRepo: eventRepo,

		registry:   NewRegistry(),
		controller: monopoly.NewController(dice),
		shuffler:   shuffler,
		bot:        bot,
		settings:   settings,
		now:        time.Now,
	}
}

// CreateGame - seats the players in the given order and stores a waiting game.
func (that *GameManager) CreateGame(ctx context.Context, specs []entity.PlayerSpec) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	if len(specs) < that.settings.MinPlayers || len(specs) > that.settings.MaxPlayers {
		return nil, fmt.Errorf("%w: got %d players, need %d to %d",
			apperror.ErrInvalidPlayers, len(specs), that.settings.MinPlayers, that.settings.MaxPlayers)
	}

	players := make([]*entity.Player, 0, len(specs))
	for i, spec := range specs {
		spec.Name = strings.TrimSpace(spec.Name)
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: player %d has no name", apperror.ErrInvalidPlayers, i)
		}

		players = append(players, entity.NewPlayer(uuid.NewString(), i, spec, that.settings.StartingCash))
	}

	game, drafts, err := monopoly.NewGame(uuid.NewString(), players, that.shuffler, that.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s := &session{game: game, log: eventlog.New(game.ID)}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err = that.commit(ctx, s, game, drafts); err != nil {
		return nil, err
	}

	that.registry.add(game.ID, s)
	log.Info("game created", "game_id", game.ID, "players", len(players))

	return game.Clone(), nil
}

// StartGame - moves a waiting game into play.
func (that *GameManager) StartGame(ctx context.Context, gameID string) (*entity.Game, error) {
	log := that.logger.With("method", "StartGame", "game_id", gameID)

	s, err := that.lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	next := s.game.Clone()
	drafts, err := that.controller.Start(next)
	if err != nil {
		return nil, fmt.Errorf("failed to start game %s: %w", gameID, err)
	}

	if _, err = that.commit(ctx, s, next, drafts); err != nil {
		return nil, err
	}

	log.Info("game started")

	return next.Clone(), nil
}

// GetState - returns a copy of the game that the caller may keep.
func (that *GameManager) GetState(ctx context.Context, gameID string) (*entity.Game, error) {
	s, err := that.lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return s.game.Clone(), nil
}

func (that *GameManager) GetLegalActions(ctx context.Context, gameID string) (*entity.LegalActions, error) {
	s, err := that.lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return monopoly.LegalActions(s.game), nil
}

// ApplyAction - validates and applies one action of the player. A rejected action is reported
// in the result together with the error and the unchanged state.
func (that *GameManager) ApplyAction(ctx context.Context, gameID, playerID string, action entity.Action) (*entity.ActionResult, error) {
	s, err := that.lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return that.apply(ctx, s, playerID, action)
}

// ApplyDefaultAction - plays the safe default for the player on turn, e.g. when their time to
// decide ran out.
func (that *GameManager) ApplyDefaultAction(ctx context.Context, gameID string) (*entity.ActionResult, error) {
	log := that.logger.With("method", "ApplyDefaultAction", "game_id", gameID)

	s, err := that.lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if err = s.game.ConfirmInProgress(); err != nil {
		return nil, fmt.Errorf("no default action for game %s: %w", gameID, err)
	}

	action, err := that.bot.FallbackAction(s.game)
	if err != nil {
		return nil, fmt.Errorf("failed to choose a default action: %w", err)
	}

	playerID := s.game.CurrentPlayer().ID
	log.Info("default action applied", "player_id", playerID, "action", action.Type)

	return that.apply(ctx, s, playerID, action)
}

// GetEvents - returns the history oldest first; a positive limit keeps only the newest events.
func (that *GameManager) GetEvents(ctx context.Context, gameID string, limit int) ([]entity.Event, error) {
	s, err := that.lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return s.log.Events(limit), nil
}

// GetEventsSince - returns the events sequenced after the given one, oldest first, so a client
// can catch up from the last event it saw. A positive limit keeps only the newest of them.
func (that *GameManager) GetEventsSince(ctx context.Context, gameID string, after int64, limit int) ([]entity.Event, error) {
	s, err := that.lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return eventlog.Newest(s.log.Since(after), limit), nil
}

// DeleteGame - drops the game from memory and from both stores.
func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "DeleteGame", "game_id", gameID)

	s, err := that.lock(ctx, gameID)
	if err != nil {
		return err
	}
	defer s.mu.Unlock()

	if err = that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if err = that.eventRepo.DeleteByGameID(ctx, gameID); err != nil {
		log.Error("failed to delete events", "error", err)
	}

	s.deleted = true
	that.registry.remove(gameID)

	log.Info("game deleted")

	return nil
}

// Autoplay - lets the bot act for whoever is on turn until the game ends, the step budget runs
// out or ctx is done. The lock is released between steps so readers can follow along.
func (that *GameManager) Autoplay(ctx context.Context, gameID string, maxSteps int) (*entity.ActionResult, error) {
	log := that.logger.With("method", "Autoplay", "game_id", gameID)

	if maxSteps <= 0 || maxSteps > that.settings.MaxAutoplaySteps {
		maxSteps = that.settings.MaxAutoplaySteps
	}

	result := &entity.ActionResult{Success: true, Events: []entity.Event{}}

	steps := 0
	for ; steps < maxSteps; steps++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("autoplay interrupted after %d steps: %w", steps, err)
		}

		done, err := that.autoplayStep(ctx, gameID, result)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	result.Message = fmt.Sprintf("%d actions applied", steps)
	log.Info("autoplay finished", "steps", steps, "game_over", result.GameOver)

	return result, nil
}

func (that *GameManager) autoplayStep(ctx context.Context, gameID string, result *entity.ActionResult) (bool, error) {
	s, err := that.lock(ctx, gameID)
	if err != nil {
		return false, err
	}
	defer s.mu.Unlock()

	result.State = s.game.Clone()
	if !s.game.IsInProgress() {
		result.GameOver = s.game.IsCompleted()
		result.WinnerID = s.game.WinnerID
		return true, nil
	}

	action, err := that.bot.ChooseAction(s.game)
	if err != nil || !monopoly.IsLegal(s.game, action) {
		that.logger.With("method", "autoplayStep", "game_id", gameID).
			Warn("bot choice unusable, falling back to the default action", "action", action.Type, "error", err)

		action, err = that.bot.FallbackAction(s.game)
		if err != nil {
			return false, fmt.Errorf("bot failed to choose an action: %w", err)
		}
	}

	step, err := that.apply(ctx, s, s.game.CurrentPlayer().ID, action)
	if err != nil {
		return false, err
	}

	result.State = step.State
	result.Events = append(result.Events, step.Events...)
	result.GameOver = step.GameOver
	result.WinnerID = step.WinnerID

	return step.GameOver, nil
}

// apply - runs the action against a copy of the game and commits the copy. The caller holds s.mu.
func (that *GameManager) apply(ctx context.Context, s *session, playerID string, action entity.Action) (*entity.ActionResult, error) {
	log := that.logger.With("method", "apply", "game_id", s.game.ID)

	next := s.game.Clone()
	drafts, err := that.controller.Apply(next, playerID, action)
	if err != nil {
		log.Debug("action rejected", "player_id", playerID, "action", action.Type, "error", err)
		return &entity.ActionResult{
			Message: err.Error(),
			State:   s.game.Clone(),
			Events:  []entity.Event{},
		}, err
	}

	events, err := that.commit(ctx, s, next, drafts)
	if err != nil {
		return nil, err
	}

	if next.IsCompleted() {
		log.Info("game over", "winner_id", next.WinnerID)
	}

	return &entity.ActionResult{
		Success:  true,
		Message:  fmt.Sprintf("%s applied", action.Type),
		State:    next.Clone(),
		Events:   events,
		GameOver: next.IsCompleted(),
		WinnerID: next.WinnerID,
	}, nil
}

// commit - stores the snapshot first and only then makes it live and sequences its events.
// A failed snapshot leaves the session as it was. The caller holds s.mu.
func (that *GameManager) commit(ctx context.Context, s *session, next *entity.Game, drafts []entity.Event) ([]entity.Event, error) {
	log := that.logger.With("method", "commit", "game_id", next.ID)

	if err := that.gameRepo.CreateOrUpdate(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.game = next
	events := s.log.Append(drafts)

	if err := that.eventRepo.Append(ctx, events); err != nil {
		log.Error("failed to archive events", "error", err, "count", len(events))
	}

	return events, nil
}

// lock - finds the session, loading it from storage on a miss, and returns it locked.
func (that *GameManager) lock(ctx context.Context, gameID string) (*session, error) {
	s, ok := that.registry.get(gameID)
	if !ok {
		loaded, err := that.load(ctx, gameID)
		if err != nil {
			return nil, err
		}
		s = that.registry.add(gameID, loaded)
	}

	s.mu.Lock()
	if s.deleted {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	return s, nil
}

func (that *GameManager) load(ctx context.Context, gameID string) (*session, error) {
	log := that.logger.With("method", "load", "game_id", gameID)

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("stored game is corrupt: %w", err)
	}

	events, err := that.eventRepo.ListByGameID(ctx, gameID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	restored := eventlog.Restore(gameID, events)
	if missing := restored.Missing(); missing > 0 {
		log.Warn("event history has gaps", "missing", missing)
	}

	log.Info("game restored from storage", "events", restored.Len())

	return &session{game: game, log: restored}, nil
}
