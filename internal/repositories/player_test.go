package repositories_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/apperr"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/repositories"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/testutil"
)

func newPlayer(playerID int, longName string, overall any) map[string]any {
	return map[string]any{
		"player_id":        float64(playerID),
		"fifa_version":     float64(23),
		"short_name":       longName,
		"long_name":        longName,
		"overall":          overall,
		"club_name":        "Club Atlético",
		"player_positions": "ST, CF",
	}
}

func seedPlayers(t *testing.T, repo *repositories.PlayerRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := repo.Create(context.Background(), newPlayer(i, fmt.Sprintf("Player %02d", i), float64(50+i)))
		require.NoError(t, err)
	}
}

func TestPlayerCreateAndGet(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))
	ctx := context.Background()

	data := newPlayer(158023, "Lionel Andrés Messi Cuccittini", float64(91))
	data["value_eur"] = float64(54000000)
	data["height_cm"] = "169"
	data["unknown_key"] = "ignored"

	created, err := repo.Create(ctx, data)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	require.NotNil(t, got.LongName)
	assert.Equal(t, "Lionel Andrés Messi Cuccittini", *got.LongName)
	require.NotNil(t, got.HeightCM)
	assert.Equal(t, int64(169), *got.HeightCM)
	require.NotNil(t, got.ValueEUR)
	assert.InDelta(t, 54000000, *got.ValueEUR, 0.001)
	assert.Nil(t, got.Age)
}

func TestPlayerCreateWithExplicitID(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))

	data := newPlayer(1, "Explicit", float64(70))
	data["id"] = float64(500)

	created, err := repo.Create(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, int64(500), created.ID)

	next, err := repo.Create(context.Background(), newPlayer(2, "Generated", float64(71)))
	require.NoError(t, err)
	assert.Equal(t, int64(501), next.ID)
}

func TestPlayerCreateRejectsMissingRequiredColumn(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))

	data := newPlayer(1, "No Version", float64(70))
	delete(data, "fifa_version")

	_, err := repo.Create(context.Background(), data)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
	assert.Contains(t, err.Error(), "fifa_version")
}

func TestPlayerCreateRejectsWrongType(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))

	data := newPlayer(1, "Bad Overall", "very good")
	_, err := repo.Create(context.Background(), data)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestPlayerGetByIDNotFound(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, models.ErrPlayerNotFound)
}

func TestPlayerListPaginates(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))
	seedPlayers(t, repo, 25)
	ctx := context.Background()

	first, total, err := repo.List(ctx, models.PlayerFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, first, 10)

	last, total, err := repo.List(ctx, models.PlayerFilter{}, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, last, 5)

	beyond, total, err := repo.List(ctx, models.PlayerFilter{}, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Empty(t, beyond)
}

func TestPlayerListExtremeBounds(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))
	seedPlayers(t, repo, 3)
	ctx := context.Background()

	all, total, err := repo.List(ctx, models.PlayerFilter{}, math.MaxInt, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 3)

	none, total, err := repo.List(ctx, models.PlayerFilter{}, 2, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPlayerListOrdersByOverallThenID(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))
	ctx := context.Background()

	for i, overall := range []any{float64(80), nil, float64(90), float64(80)} {
		_, err := repo.Create(ctx, newPlayer(i+1, fmt.Sprintf("P%d", i+1), overall))
		require.NoError(t, err)
	}

	players, _, err := repo.List(ctx, models.PlayerFilter{}, 10, 0)
	require.NoError(t, err)
	require.Len(t, players, 4)

	assert.Equal(t, int64(90), *players[0].Overall)
	assert.Equal(t, int64(80), *players[1].Overall)
	assert.Equal(t, int64(80), *players[2].Overall)
	assert.Less(t, players[1].ID, players[2].ID)
	assert.Nil(t, players[3].Overall)
}

func TestPlayerListFilters(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))
	ctx := context.Background()

	messi := newPlayer(1, "Lionel Messi", float64(91))
	messi["club_name"] = "Inter Miami"
	messi["player_positions"] = "RW, CF"
	keeper := newPlayer(2, "Emiliano Martínez", float64(85))
	keeper["club_name"] = "Aston Villa"
	keeper["player_positions"] = "GK"
	odd := newPlayer(3, "100% Legend_X", float64(60))
	odd["club_name"] = "Inter Milan"

	for _, p := range []map[string]any{messi, keeper, odd} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter models.PlayerFilter
		want   []string
	}{
		{"name case insensitive", models.PlayerFilter{Name: "MESSI"}, []string{"Lionel Messi"}},
		{"club substring", models.PlayerFilter{Club: "inter"}, []string{"Lionel Messi", "100% Legend_X"}},
		{"position", models.PlayerFilter{Position: "gk"}, []string{"Emiliano Martínez"}},
		{"conjunction", models.PlayerFilter{Club: "inter", Position: "rw"}, []string{"Lionel Messi"}},
		{"percent is literal", models.PlayerFilter{Name: "%"}, []string{"100% Legend_X"}},
		{"underscore is literal", models.PlayerFilter{Name: "d_x"}, []string{"100% Legend_X"}},
		{"no match", models.PlayerFilter{Name: "zzz"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players, total, err := repo.List(ctx, tt.filter, 20, 0)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), total)

			var names []string
			for _, p := range players {
				names = append(names, *p.LongName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestPlayerUpdateMergesFields(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newPlayer(1, "Before", float64(70)))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, map[string]any{
		"overall":   float64(75),
		"club_name": nil,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(75), *updated.Overall)
	assert.Nil(t, updated.ClubName)
	assert.Equal(t, *created.LongName, *updated.LongName)
	assert.Equal(t, *created.PlayerPositions, *updated.PlayerPositions)
}

func TestPlayerUpdateWithNoFieldsReturnsUnchanged(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newPlayer(1, "Same", float64(70)))
	require.NoError(t, err)

	got, err := repo.Update(ctx, created.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestPlayerUpdateRejectsNullRequiredColumn(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newPlayer(1, "Keeper", float64(70)))
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.ID, map[string]any{"long_name": nil})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keeper", *got.LongName)
}

func TestPlayerUpdateMissing(t *testing.T) {
	repo := repositories.NewPlayerRepository(testutil.NewDB(t))

	_, err := repo.Update(context.Background(), 42, map[string]any{"overall": float64(1)})
	assert.ErrorIs(t, err, models.ErrPlayerNotFound)
}
