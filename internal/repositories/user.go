package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/database"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
)

// UserRepository persists credentials.
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail retrieves a user, including the password hash, by exact email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE email = ?`

	var user models.User
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, timestamp{&user.CreatedAt})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// Create inserts a user. A duplicate email yields models.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (models.User, error) {
	const query = `INSERT INTO users (email, password_hash) VALUES (?, ?) RETURNING id, created_at`

	user := models.User{Email: email, PasswordHash: passwordHash}
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), email, passwordHash).Scan(&user.ID, timestamp{&user.CreatedAt})
	if database.IsUniqueViolation(err) {
		return models.User{}, models.ErrEmailTaken
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}
