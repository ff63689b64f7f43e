package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
)

// SessionRepository holds the single login state object. It is UI session
// state, not part of the ledger core.
type SessionRepository interface {
	Get(ctx context.Context) (model.Session, error)
	Save(ctx context.Context, session model.Session) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store kv.Store
}

func NewSessionRepository(store kv.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r sessionRepository) Get(ctx context.Context) (model.Session, error) {
	raw, err := r.store.Get(ctx, sessionKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return model.Session{}, nil
	}
	if err != nil {
		return model.Session{}, apperr.PersistenceErr.WrapParent(fmt.Errorf("get session: %w", err))
	}

	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return model.Session{}, nil
	}

	return session, nil
}

func (r sessionRepository) Save(ctx context.Context, session model.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return apperr.PersistenceErr.WrapParent(fmt.Errorf("marshal session: %w", err))
	}

	if err := r.store.Put(ctx, sessionKey, raw); err != nil {
		return apperr.PersistenceErr.WrapParent(fmt.Errorf("put session: %w", err))
	}

	return nil
}

func (r sessionRepository) Clear(ctx context.Context) error {
	return r.Save(ctx, model.Session{})
}
