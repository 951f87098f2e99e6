// README: Member account aggregate.
package member

import "time"

type Member struct {
	ID           int64
	UserID       string
	Nickname     string
	PasswordHash string
	CreatedAt    time.Time
	DeletedAt    *time.Time
}

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type JoinCommand struct {
	UserID   string
	Nickname string
	Password string
}

type LoginCommand struct {
	UserID   string
	Password string
}
