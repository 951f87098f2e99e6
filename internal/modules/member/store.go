// README: Member store; account rows in PostgreSQL, refresh tokens in Redis with TTL.
package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "member:%d:refresh"

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

func (s *Store) Insert(ctx context.Context, m *Member) error {
	row := s.db.QueryRow(ctx, `
		INSERT INTO members (user_id, nickname, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		m.UserID, m.Nickname, m.PasswordHash, m.CreatedAt)
	return row.Scan(&m.ID)
}

func (s *Store) CountByUserID(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM members WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func (s *Store) GetByUserID(ctx context.Context, userID string) (*Member, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, nickname, password_hash, created_at, deleted_at
		FROM members
		WHERE user_id = $1 AND deleted_at IS NULL`, userID)

	var m Member
	err := row.Scan(&m.ID, &m.UserID, &m.Nickname, &m.PasswordHash, &m.CreatedAt, &m.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Member, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, nickname, password_hash, created_at, deleted_at
		FROM members
		WHERE id = $1 AND deleted_at IS NULL`, id)

	var m Member
	err := row.Scan(&m.ID, &m.UserID, &m.Nickname, &m.PasswordHash, &m.CreatedAt, &m.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) SoftDelete(ctx context.Context, memberID int64) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE members SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL`, memberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveRefreshToken replaces any prior refresh token for the member; the Redis
// TTL doubles as the expiry sweep, so no cleanup job is needed.
func (s *Store) SaveRefreshToken(ctx context.Context, memberID int64, token string, ttl time.Duration) error {
	return s.redis.Set(ctx, refreshKey(memberID), token, ttl).Err()
}

func (s *Store) GetRefreshToken(ctx context.Context, memberID int64) (string, error) {
	val, err := s.redis.Get(ctx, refreshKey(memberID)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return val, err
}

func (s *Store) DeleteRefreshToken(ctx context.Context, memberID int64) error {
	return s.redis.Del(ctx, refreshKey(memberID)).Err()
}

func refreshKey(memberID int64) string {
	return fmt.Sprintf(refreshKeyPrefix, memberID)
}
