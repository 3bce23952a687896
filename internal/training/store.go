package training

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymlog/internal/plans"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrLogNotFound     = errors.New("logged exercise not found")
)

// Store runs each engine operation as one transaction.
type Store interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the set of reads and writes available inside a transaction.
type Tx interface {
	CreateSession(ctx context.Context, s *Session) (int, error)
	// GetSession returns the session without logs. forUpdate locks the row
	// until the transaction ends.
	GetSession(ctx context.Context, id int, forUpdate bool) (*Session, error)
	// ListSessions returns the user's sessions, newest first, without logs.
	// A limit <= 0 means all of them.
	ListSessions(ctx context.Context, userID string, limit int) ([]Session, error)
	LatestOpenSession(ctx context.Context, userID string, from, to time.Time) (*Session, error)
	CountSessionsBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
	CompleteSession(ctx context.Context, id int) error
	DeleteSession(ctx context.Context, id int) error
	// StaleSessions locks and returns open sessions dated before cutoff.
	StaleSessions(ctx context.Context, cutoff time.Time) ([]StaleSession, error)

	AddLog(ctx context.Context, l *LoggedExercise) (int, error)
	GetLog(ctx context.Context, id int) (*LoggedExercise, error)
	UpdateLog(ctx context.Context, l *LoggedExercise) error
	DeleteLog(ctx context.Context, id int) error
	// SessionLogs groups logs by session id, each group ordered by log id.
	SessionLogs(ctx context.Context, sessionIDs []int) (map[int][]LoggedExercise, error)
	// LastLogged is the latest non-skipped log of the exercise across the
	// user's sessions, by session date then log id.
	LastLogged(ctx context.Context, userID string, exerciseID int) (*LoggedExercise, error)

	Plan(ctx context.Context, planID int) (*plans.Plan, error)
}
