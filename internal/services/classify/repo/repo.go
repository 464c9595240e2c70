// Package repo persists the classification journal
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"voiceforce/internal/modkit/repokit"
)

type binder struct{}

// NewPG constructs a repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Entry is one journal row
type Entry struct {
	UserID     string
	Transcript string
	Action     string
	Object     string
	Confidence float64
	Source     string
	CreatedAt  time.Time
}

// Storage defines the journal repository
type Storage interface {
	Insert(ctx context.Context, e Entry) error
}

type pg struct{ q repokit.Queryer }

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, e Entry) error {
	const sql = `
		INSERT INTO classification_journal
			(id, created_at, user_id, transcript, action, object, confidence, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.q.Exec(ctx, sql,
		uuid.NewString(), e.CreatedAt, e.UserID, e.Transcript,
		e.Action, e.Object, e.Confidence, e.Source,
	)
	return err
}
