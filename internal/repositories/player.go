package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/apperr"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/database"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
)

// PlayerRepository persists player cards.
type PlayerRepository struct {
	db      *database.DB
	columns string
}

// NewPlayerRepository creates a new PlayerRepository.
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{
		db:      db,
		columns: strings.Join(models.PlayerColumnNames(), ", "),
	}
}

// likeEscaper neutralises LIKE wildcards in user input.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// playerWhere builds the conjunction of the filters that are set.
func playerWhere(filter models.PlayerFilter) (string, []any) {
	var clauses []string
	var args []any
	add := func(column, value string) {
		if value == "" {
			return
		}
		clauses = append(clauses, "LOWER("+column+`) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(value))+"%")
	}
	add("long_name", filter.Name)
	add("club_name", filter.Club)
	add("player_positions", filter.Position)

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// List returns one page of players matching filter, best overall first, and
// the number of matching rows before pagination.
func (r *PlayerRepository) List(ctx context.Context, filter models.PlayerFilter, limit, offset int) ([]models.Player, int, error) {
	where, args := playerWhere(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM players" + where
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(countQuery), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count players: %w", err)
	}

	query := "SELECT " + r.columns + " FROM players" + where +
		" ORDER BY overall DESC NULLS LAST, id ASC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(p.ScanTargets()...); err != nil {
			return nil, 0, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, total, nil
}

// GetByID retrieves a player by its id. A missing row yields
// models.ErrPlayerNotFound.
func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (models.Player, error) {
	query := "SELECT " + r.columns + " FROM players WHERE id = ?"

	var p models.Player
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), id).Scan(p.ScanTargets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Player{}, models.ErrPlayerNotFound
	}
	if err != nil {
		return models.Player{}, fmt.Errorf("failed to query player %d: %w", id, err)
	}
	return p, nil
}

// Create inserts a player from a decoded JSON object. Keys that are not
// columns are ignored; values are coerced to their column type.
func (r *PlayerRepository) Create(ctx context.Context, data map[string]any) (models.Player, error) {
	var names []string
	var args []any
	for _, c := range models.PlayerColumns() {
		raw, ok := data[c.Name]
		if !ok || (c.Name == "id" && raw == nil) {
			if c.Required {
				return models.Player{}, apperr.Validation("notNull violation: %s cannot be null", c.Name)
			}
			continue
		}
		value, err := c.Coerce(raw)
		if err != nil {
			return models.Player{}, apperr.Invalid(err)
		}
		names = append(names, c.Name)
		args = append(args, value)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := "INSERT INTO players (" + strings.Join(names, ", ") + ") VALUES (" + placeholders + ") RETURNING id"

	var id int64
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), args...).Scan(&id)
	if database.IsConstraintViolation(err) {
		return models.Player{}, apperr.Invalid(fmt.Errorf("player rejected by storage: %w", err))
	}
	if err != nil {
		return models.Player{}, fmt.Errorf("failed to insert player: %w", err)
	}
	if slices.Contains(names, "id") {
		if err := r.syncIDSequence(ctx); err != nil {
			return models.Player{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// syncIDSequence moves the Postgres id sequence past the largest stored id,
// so rows inserted with an explicit id don't collide with generated ones.
// SQLite already allocates past the largest rowid.
func (r *PlayerRepository) syncIDSequence(ctx context.Context) error {
	if r.db.Driver != database.DriverPostgres {
		return nil
	}
	const query = "SELECT setval(pg_get_serial_sequence('players', 'id'), (SELECT MAX(id) FROM players))"
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to sync player id sequence: %w", err)
	}
	return nil
}

// Update merges data onto an existing player. Only the columns present in
// data change; id is never written.
func (r *PlayerRepository) Update(ctx context.Context, id int64, data map[string]any) (models.Player, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Player{}, err
	}

	var sets []string
	var args []any
	for _, c := range models.PlayerColumns() {
		raw, ok := data[c.Name]
		if !ok || c.Name == "id" {
			continue
		}
		value, err := c.Coerce(raw)
		if err != nil {
			return models.Player{}, apperr.Invalid(err)
		}
		sets = append(sets, c.Name+" = ?")
		args = append(args, value)
	}
	if len(sets) == 0 {
		return existing, nil
	}

	query := "UPDATE players SET " + strings.Join(sets, ", ") + ", updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	_, err = r.db.ExecContext(ctx, r.db.Rebind(query), append(args, id)...)
	if database.IsConstraintViolation(err) {
		return models.Player{}, apperr.Invalid(fmt.Errorf("player rejected by storage: %w", err))
	}
	if err != nil {
		return models.Player{}, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return r.GetByID(ctx, id)
}
