// README: Member service; join/login/refresh/logout with bcrypt and rotating refresh tokens.
package member

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"daytrip/internal/config"
)

var (
	ErrDuplicateID  = errors.New("user id already exists")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNotFound     = errors.New("member not found")
	ErrBadRequest   = errors.New("bad request")
)

type Service struct {
	store  *Store
	issuer tokenIssuer
	cfg    config.AuthConfig
}

func NewService(store *Store, cfg config.AuthConfig) *Service {
	return &Service{
		store:  store,
		issuer: tokenIssuer{secret: []byte(cfg.JWTSecret), ttl: cfg.AccessTokenTTL},
		cfg:    cfg,
	}
}

func (s *Service) Join(ctx context.Context, cmd JoinCommand) (*Member, error) {
	if cmd.UserID == "" || cmd.Password == "" {
		return nil, ErrBadRequest
	}
	n, err := s.store.CountByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	m := &Member{
		UserID:       cmd.UserID,
		Nickname:     cmd.Nickname,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*Member, TokenPair, error) {
	m, err := s.store.GetByUserID(ctx, cmd.UserID)
	if errors.Is(err, ErrNotFound) {
		return nil, TokenPair{}, ErrUnauthorized
	}
	if err != nil {
		return nil, TokenPair{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(cmd.Password)) != nil {
		return nil, TokenPair{}, ErrUnauthorized
	}

	pair, err := s.issueTokens(ctx, m)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return m, pair, nil
}

// Refresh rotates the refresh token: a presented token must match the stored
// one exactly, and a new pair replaces it.
func (s *Service) Refresh(ctx context.Context, memberID int64, refreshToken string) (TokenPair, error) {
	stored, err := s.store.GetRefreshToken(ctx, memberID)
	if errors.Is(err, ErrNotFound) {
		return TokenPair{}, ErrUnauthorized
	}
	if err != nil {
		return TokenPair{}, err
	}
	if stored != refreshToken {
		return TokenPair{}, ErrUnauthorized
	}

	m, err := s.store.GetByID(ctx, memberID)
	if errors.Is(err, ErrNotFound) {
		return TokenPair{}, ErrUnauthorized
	}
	if err != nil {
		return TokenPair{}, err
	}
	return s.issueTokens(ctx, m)
}

func (s *Service) Logout(ctx context.Context, memberID int64) error {
	return s.store.DeleteRefreshToken(ctx, memberID)
}

// DeleteAccount soft-deletes the member row and revokes the refresh token.
func (s *Service) DeleteAccount(ctx context.Context, memberID int64) error {
	if err := s.store.DeleteRefreshToken(ctx, memberID); err != nil {
		return err
	}
	return s.store.SoftDelete(ctx, memberID)
}

func (s *Service) issueTokens(ctx context.Context, m *Member) (TokenPair, error) {
	access, err := s.issuer.issue(m, time.Now().UTC())
	if err != nil {
		return TokenPair{}, err
	}
	refresh := uuid.NewString()
	if err := s.store.SaveRefreshToken(ctx, m.ID, refresh, s.cfg.RefreshTokenTTL); err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
