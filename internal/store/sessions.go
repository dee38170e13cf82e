// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-share/internal/logger"
)

// Session is a bounded unit of work against the data store, scoped to a
// single request. All repository calls made with the same Session see the
// same transaction; the session is committed or rolled back as a whole by
// [Sessions.Run]. A Session must never be shared across requests.
type Session struct {
	tx *sql.Tx
}

// Sessions hands out one persistence session per request and guarantees the
// session is released on every exit path, including handler panics.
type Sessions struct {
	db     *DB
	logger *logger.Logger
}

// NewSessions constructs the session manager over the given database handle.
func NewSessions(db *DB, log *logger.Logger) *Sessions {
	log.Debug().Msg("creating session manager")
	return &Sessions{
		db:     db,
		logger: log,
	}
}

// Run begins a transaction, invokes fn with the scoped session, and commits
// iff fn returns nil. Any error from fn rolls the transaction back and is
// returned unchanged so callers can match it with errors.Is. A panic inside
// fn also rolls back before being re-raised.
func (s *Sessions) Run(ctx context.Context, fn func(sess *Session) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*Sessions.Run").Msg("error beginning session")
		return fmt.Errorf("%w: %w", ErrBeginningSession, err)
	}

	sess := &Session{tx: tx}

	defer func() {
		if p := recover(); p != nil {
			s.rollback(ctx, tx)
			panic(p)
		}
	}()

	if err := fn(sess); err != nil {
		s.rollback(ctx, tx)
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*Sessions.Run").Msg("error committing session")
		return fmt.Errorf("%w: %w", ErrCommittingSession, err)
	}

	return nil
}

func (s *Sessions) rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).Str("func", "*Sessions.rollback").Msg("error rolling back session")
	}
}
