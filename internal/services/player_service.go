package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/apperr"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
)

// Listing page sizes.
const (
	DefaultPageSize = 20  // used when a listing does not ask for a size
	MaxPageSize     = 100 // largest page a listing may ask for
)

// ErrPageSizeTooLarge is returned when a listing asks for more rows per
// page than the service allows.
var ErrPageSizeTooLarge = errors.New("page size too large")

// PlayerStore is the player store used by PlayerService.
type PlayerStore interface {
	List(ctx context.Context, filter models.PlayerFilter, limit, offset int) ([]models.Player, int, error)
	GetByID(ctx context.Context, id int64) (models.Player, error)
	Create(ctx context.Context, data map[string]any) (models.Player, error)
	Update(ctx context.Context, id int64, data map[string]any) (models.Player, error)
}

// PlayerServiceProvider defines the interface for player services.
type PlayerServiceProvider interface {
	List(ctx context.Context, filter models.PlayerFilter, page, pageSize int) (models.PlayerPage, error)
	GetByID(ctx context.Context, id int64) (models.Player, bool, error)
	Create(ctx context.Context, data map[string]any) (models.Player, error)
	Update(ctx context.Context, id int64, data map[string]any) (models.Player, error)
}

// PlayerService provides filtered listings and CRUD over player cards.
type PlayerService struct {
	store           PlayerStore
	defaultPageSize int
	maxPageSize     int
}

// NewPlayerService creates a new PlayerService. Non-positive sizes select
// DefaultPageSize and MaxPageSize; the maximum never drops below the default.
func NewPlayerService(store PlayerStore, defaultPageSize, maxPageSize int) *PlayerService {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = MaxPageSize
	}
	maxPageSize = max(maxPageSize, defaultPageSize)
	return &PlayerService{store: store, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

// List returns one page of matching players. page is 1-based; zero values
// for page and pageSize select the first page and the default size.
func (s *PlayerService) List(ctx context.Context, filter models.PlayerFilter, page, pageSize int) (models.PlayerPage, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = s.defaultPageSize
	}
	if page < 0 || pageSize < 0 {
		return models.PlayerPage{}, apperr.Validation("page and page size must be positive")
	}
	if pageSize > s.maxPageSize {
		return models.PlayerPage{}, apperr.Invalid(fmt.Errorf("%w: %d exceeds %d", ErrPageSizeTooLarge, pageSize, s.maxPageSize))
	}

	// Pages past the addressable range clamp to an offset no table reaches.
	offset := math.MaxInt
	if page-1 <= math.MaxInt/pageSize {
		offset = (page - 1) * pageSize
	}

	items, total, err := s.store.List(ctx, filter, pageSize, offset)
	if err != nil {
		return models.PlayerPage{}, apperr.Internal(err, "failed to list players")
	}
	return models.PlayerPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetByID looks up a player. A missing player is reported through the
// boolean, not the error.
func (s *PlayerService) GetByID(ctx context.Context, id int64) (models.Player, bool, error) {
	player, err := s.store.GetByID(ctx, id)
	if errors.Is(err, models.ErrPlayerNotFound) {
		return models.Player{}, false, nil
	}
	if err != nil {
		return models.Player{}, false, apperr.Internal(err, "failed to get player")
	}
	return player, true, nil
}

// Create stores a new player. Storage constraint failures surface as
// validation errors.
func (s *PlayerService) Create(ctx context.Context, data map[string]any) (models.Player, error) {
	player, err := s.store.Create(ctx, data)
	if err != nil {
		if apperr.Is(err, apperr.CodeValidation) {
			return models.Player{}, err
		}
		return models.Player{}, apperr.Internal(err, "failed to create player")
	}
	return player, nil
}

// Update merges data onto player id. data must already be restricted to
// the allow-listed fields.
func (s *PlayerService) Update(ctx context.Context, id int64, data map[string]any) (models.Player, error) {
	player, err := s.store.Update(ctx, id, data)
	switch {
	case err == nil:
		return player, nil
	case errors.Is(err, models.ErrPlayerNotFound):
		return models.Player{}, apperr.NotFound(err)
	case apperr.Is(err, apperr.CodeValidation):
		return models.Player{}, err
	default:
		return models.Player{}, apperr.Internal(err, "failed to update player")
	}
}
