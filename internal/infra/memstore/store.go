// Package memstore is an in-process document store with optimistic
// transactions. A transaction records the version of every document it reads
// and stages its writes; commit validates the read set under the store lock
// and applies the writes only if nothing it read has changed since.
package memstore

import (
	"context"
	"log/slog"
	"sync"

	"estate-booking/internal/infra"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/pkg/metrics"
	"estate-booking/internal/usecase/shared"
)

const (
	collProjects        = "projects"
	collProjectManagers = "project_managers"
	collPlots           = "plots"
	collPlotNumbers     = "plot_numbers"
	collBookings        = "bookings"
	collPendingBookings = "pending_bookings"
	collUsers           = "users"
	collTasks           = "tasks"
	collActivity        = "activity_logs"
)

var errConflict = errs.New("memstore: write conflict")

type docKey struct {
	coll string
	id   string
}

type doc struct {
	version uint64
	value   any
}

type Store struct {
	mu   sync.RWMutex
	seq  uint64
	docs map[string]map[string]*doc
}

func NewStore() *Store {
	return &Store{docs: make(map[string]map[string]*doc)}
}

// read returns the committed value and version of key; version 0 means absent.
func (s *Store) read(key docKey) (any, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[key.coll][key.id]
	if !ok {
		return nil, 0
	}
	return d.value, d.version
}

// scan calls fn for every committed value of coll while holding the read lock.
func (s *Store) scan(coll string, fn func(value any)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.docs[coll] {
		fn(d.value)
	}
}

func (s *Store) commit(t *transaction) error {
	if len(t.writes) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if key, changed := s.changedLocked(t); changed {
		return conflictErr(key)
	}

	for _, key := range t.order {
		w := t.writes[key]
		coll := s.docs[key.coll]
		if w.deleted {
			delete(coll, key.id)
			continue
		}
		if coll == nil {
			coll = make(map[string]*doc)
			s.docs[key.coll] = coll
		}
		s.seq++
		coll[key.id] = &doc{version: s.seq, value: w.value}
	}
	return nil
}

// changedLocked reports the first document in t's read set whose committed
// version moved since t read it. The caller holds s.mu.
func (s *Store) changedLocked(t *transaction) (docKey, bool) {
	for key, seen := range t.reads {
		var current uint64
		if d, ok := s.docs[key.coll][key.id]; ok {
			current = d.version
		}
		if current != seen {
			return key, true
		}
	}
	return docKey{}, false
}

// stale is the read-set check of commit for a transaction that will not commit.
func (s *Store) stale(t *transaction) (docKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changedLocked(t)
}

func conflictErr(key docKey) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindConflict, "document changed: "+key.coll+"/"+key.id, errConflict)
}

// UoW runs transactions against a Store and re-runs them on write conflicts.
type UoW struct {
	store      *Store
	maxRetries int
}

func NewUoW(store *Store, cfg config.Config) *UoW {
	maxRetries := cfg.Store.MaxTxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &UoW{store: store, maxRetries: maxRetries}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		t := newTransaction(u.store)
		if err = fn(ctx, t); err != nil {
			// reads are not a snapshot: a failure over a stale read set is a conflict
			key, changed := u.store.stale(t)
			if !changed {
				return err
			}
			slog.Debug("memstore transaction failed on stale reads", "document", key.coll+"/"+key.id, "error", err)
			err = conflictErr(key)
		} else if err = u.store.commit(t); err == nil {
			return nil
		} else if !infra.IsKind(err, infra.KindConflict) {
			return err
		}

		metrics.RecordTxRetry("memory")
		slog.Debug("retrying memstore transaction", "attempt", attempt+1)
	}
	slog.Error("memstore transaction failed after max retries", "attempts", u.maxRetries+1)
	return err
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &CommandReads{store: u.store}
}
