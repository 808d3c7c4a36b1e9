package services_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/allowlist"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/apperr"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/repositories"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/services"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/testutil"
)

type PlayerServiceTestSuite struct {
	suite.Suite
	service *services.PlayerService
	ctx     context.Context
}

func (s *PlayerServiceTestSuite) SetupTest() {
	testutil.QuietLogs()
	s.ctx = context.Background()
	s.service = services.NewPlayerService(repositories.NewPlayerRepository(testutil.NewDB(s.T())), 0, 0)
}

func (s *PlayerServiceTestSuite) create(n int, club string, overall int) models.Player {
	p, err := s.service.Create(s.ctx, map[string]any{
		"player_id":    float64(n),
		"fifa_version": float64(23),
		"short_name":   fmt.Sprintf("P. %d", n),
		"long_name":    fmt.Sprintf("Player %d", n),
		"club_name":    club,
		"overall":      float64(overall),
	})
	s.Require().NoError(err)
	return p
}

func (s *PlayerServiceTestSuite) TestListSecondPageOfTwentyFive() {
	for i := 1; i <= 25; i++ {
		s.create(i, "Club", 60+i%10)
	}

	page, err := s.service.List(s.ctx, models.PlayerFilter{}, 2, 20)
	s.Require().NoError(err)
	s.Len(page.Items, 5)
	s.Equal(25, page.Total)
	s.Equal(2, page.Page)
	s.Equal(20, page.PageSize)
}

func (s *PlayerServiceTestSuite) TestListDefaults() {
	for i := 1; i <= 22; i++ {
		s.create(i, "Club", 70)
	}

	page, err := s.service.List(s.ctx, models.PlayerFilter{}, 0, 0)
	s.Require().NoError(err)
	s.Equal(1, page.Page)
	s.Equal(services.DefaultPageSize, page.PageSize)
	s.Len(page.Items, services.DefaultPageSize)
	s.Equal(22, page.Total)
}

func (s *PlayerServiceTestSuite) TestListPaginationCoversEveryRow() {
	const n, size = 23, 5
	for i := 1; i <= n; i++ {
		s.create(i, "Club", 50+i)
	}

	seen := map[int64]bool{}
	for page := 1; page <= 6; page++ {
		result, err := s.service.List(s.ctx, models.PlayerFilter{}, page, size)
		s.Require().NoError(err)
		s.Equal(n, result.Total)

		switch {
		case page < 5:
			s.Len(result.Items, size)
		case page == 5:
			s.Len(result.Items, n%size)
		default:
			s.Empty(result.Items)
		}

		for i, p := range result.Items {
			s.False(seen[p.ID], "player %d returned twice", p.ID)
			seen[p.ID] = true
			if i > 0 {
				s.GreaterOrEqual(*result.Items[i-1].Overall, *p.Overall)
			}
		}
	}
	s.Len(seen, n)
}

func (s *PlayerServiceTestSuite) TestListFiltersByClub() {
	s.create(1, "Real Madrid", 90)
	s.create(2, "Real Sociedad", 80)
	s.create(3, "Barcelona", 85)

	page, err := s.service.List(s.ctx, models.PlayerFilter{Club: "real"}, 1, 20)
	s.Require().NoError(err)
	s.Equal(2, page.Total)
	for _, p := range page.Items {
		s.Contains(*p.ClubName, "Real")
	}
}

func (s *PlayerServiceTestSuite) TestListRejectsNegativePaging() {
	_, err := s.service.List(s.ctx, models.PlayerFilter{}, -1, 10)
	s.Equal(http.StatusBadRequest, apperr.Status(err))
}

func (s *PlayerServiceTestSuite) TestListRejectsOversizedPage() {
	_, err := s.service.List(s.ctx, models.PlayerFilter{}, 1, 200_000_000)
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, apperr.Status(err))
	s.ErrorIs(err, services.ErrPageSizeTooLarge)

	_, err = s.service.List(s.ctx, models.PlayerFilter{}, 1, services.MaxPageSize)
	s.NoError(err)
}

func (s *PlayerServiceTestSuite) TestListPageBeyondAddressableRange() {
	for i := 1; i <= 3; i++ {
		s.create(i, "Club", 70)
	}

	page, err := s.service.List(s.ctx, models.PlayerFilter{}, math.MaxInt/2+2, 2)
	s.Require().NoError(err)
	s.Empty(page.Items)
	s.Equal(3, page.Total)
	s.Equal(math.MaxInt/2+2, page.Page)
}

func (s *PlayerServiceTestSuite) TestGetByID() {
	created := s.create(1, "Club", 80)

	got, found, err := s.service.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(created, got)

	_, found, err = s.service.GetByID(s.ctx, created.ID+100)
	s.NoError(err)
	s.False(found)
}

func (s *PlayerServiceTestSuite) TestCreateValidationError() {
	_, err := s.service.Create(s.ctx, map[string]any{"short_name": "Nobody"})
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, apperr.Status(err))
}

func (s *PlayerServiceTestSuite) TestUpdateLeavesOtherFieldsUnchanged() {
	created := s.create(1, "Club", 80)

	raw := map[string]any{"overall": float64(91), "id": float64(999), "password": "x"}
	updated, err := s.service.Update(s.ctx, created.ID, allowlist.FilterFields(raw, allowlist.PlayerFields))
	s.Require().NoError(err)

	s.Equal(created.ID, updated.ID)
	s.Equal(int64(91), *updated.Overall)
	created.Overall = updated.Overall
	s.Equal(created, updated)
}

func (s *PlayerServiceTestSuite) TestUpdateMissingPlayer() {
	_, err := s.service.Update(s.ctx, 404, map[string]any{"overall": float64(1)})
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrPlayerNotFound))
	s.Equal(http.StatusNotFound, apperr.Status(err))
}

func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}

type failingStore struct{ err error }

func (f failingStore) List(context.Context, models.PlayerFilter, int, int) ([]models.Player, int, error) {
	return nil, 0, f.err
}
func (f failingStore) GetByID(context.Context, int64) (models.Player, error) {
	return models.Player{}, f.err
}
func (f failingStore) Create(context.Context, map[string]any) (models.Player, error) {
	return models.Player{}, f.err
}
func (f failingStore) Update(context.Context, int64, map[string]any) (models.Player, error) {
	return models.Player{}, f.err
}

type offsetStore struct {
	failingStore
	limit, offset int
}

func (o *offsetStore) List(_ context.Context, _ models.PlayerFilter, limit, offset int) ([]models.Player, int, error) {
	o.limit, o.offset = limit, offset
	return []models.Player{}, 0, nil
}

func TestPlayerServiceListOffsets(t *testing.T) {
	tests := []struct {
		name           string
		page, pageSize int
		wantOffset     int
	}{
		{"first page", 1, 10, 0},
		{"third page", 3, 10, 20},
		{"largest exact page", math.MaxInt/10 + 1, 10, math.MaxInt / 10 * 10},
		{"overflowing page", math.MaxInt/10 + 2, 10, math.MaxInt},
		{"max page", math.MaxInt, 2, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &offsetStore{}
			_, err := services.NewPlayerService(store, 10, 0).List(context.Background(), models.PlayerFilter{}, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, tt.pageSize, store.limit)
			assert.Equal(t, tt.wantOffset, store.offset)
		})
	}
}

func TestNewPlayerServiceKeepsMaxAboveDefault(t *testing.T) {
	service := services.NewPlayerService(&offsetStore{}, 50, 10)

	_, err := service.List(context.Background(), models.PlayerFilter{}, 1, 50)
	assert.NoError(t, err)
	_, err = service.List(context.Background(), models.PlayerFilter{}, 1, 51)
	assert.ErrorIs(t, err, services.ErrPageSizeTooLarge)
}

func TestPlayerServiceStorageFailuresAreInternal(t *testing.T) {
	service := services.NewPlayerService(failingStore{err: errors.New("connection refused")}, 10, 0)
	ctx := context.Background()

	_, err := service.List(ctx, models.PlayerFilter{}, 1, 10)
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(err))

	_, found, err := service.GetByID(ctx, 1)
	require.Error(t, err)
	assert.False(t, found)
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(err))

	_, err = service.Create(ctx, map[string]any{})
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(err))

	_, err = service.Update(ctx, 1, map[string]any{})
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(err))
}
