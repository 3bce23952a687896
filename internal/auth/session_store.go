package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymlog-session||"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type loginSession struct {
	UserID    string `json:"userId"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt int64  `json:"createdAt"`
}

// SessionStore keeps login sessions in redis, keyed by token.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
	// replaceable for deterministic tokens in tests
	RandTokenFunc func() string
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		redisClient:   redisClient,
		ttl:           ttl,
		now:           time.Now,
		RandTokenFunc: uuid.NewString,
	}
}

// Issue stores a new session for identity and returns its token.
func (s *SessionStore) Issue(ctx context.Context, identity Identity, createdAt time.Time) (string, error) {
	if identity.UserID == "" {
		return "", errors.New("empty user id")
	}

	sessionJson, err := json.Marshal(loginSession{
		UserID:    identity.UserID,
		IsAdmin:   identity.IsAdmin,
		CreatedAt: createdAt.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	token := s.RandTokenFunc()
	if err := s.redisClient.Set(ctx, sessionKeyPrefix+token, string(sessionJson), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve maps a token to the identity that owns it.
func (s *SessionStore) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrInvalidToken
	}

	cmd := s.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return Identity{}, ErrInvalidToken
		}
		return Identity{}, fmt.Errorf("get session: %w", err)
	}

	var session loginSession
	if err := json.Unmarshal([]byte(cmd.Val()), &session); err != nil {
		return Identity{}, fmt.Errorf("unmarshal session: %w", err)
	}

	if session.UserID == "" || s.now().Sub(time.Unix(session.CreatedAt, 0)) > s.ttl {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID:  session.UserID,
		IsAdmin: session.IsAdmin,
	}, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) (bool, error) {
	deleted, err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return deleted > 0, nil
}
