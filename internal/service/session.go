package service

import (
	"context"
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/google/uuid"
)

// session is one open order form. All fields are guarded by mu.
type session struct {
	mu sync.Mutex

	id        uuid.UUID
	snapshot  entities.Snapshot
	draft     entities.OrderDraft
	state     entities.SubmissionState
	lastError string
	stale     map[int64]struct{}

	// cancel aborts the in-flight submission, nil otherwise.
	cancel context.CancelFunc
	closed bool
}

func newSession(id uuid.UUID, snapshot entities.Snapshot) *session {
	return &session{
		id:       id,
		snapshot: snapshot,
		draft:    entities.NewOrderDraft(),
		state:    entities.StateIdle,
		stale:    make(map[int64]struct{}),
	}
}

func (s *session) busy() bool {
	return s.state == entities.StateValidating || s.state == entities.StateSubmitting
}

// inFlight reports whether a submission is running. Such a form is never
// evicted, only Close or the submit timeout end it.
func (s *session) inFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy()
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
}

// markStale flags catalog products among productIDs. It reports whether
// anything new was flagged.
func (s *session) markStale(productIDs []int64) bool {
	changed := false
	for _, id := range productIDs {
		if _, ok := s.snapshot.Catalog.Lookup(id); !ok {
			continue
		}
		if _, ok := s.stale[id]; !ok {
			s.stale[id] = struct{}{}
			changed = true
		}
	}
	return changed
}

func (s *session) view(mode entities.CustomerMode) entities.FormView {
	catalog := s.snapshot.Catalog

	stale := make([]int64, 0, len(s.stale))
	for id := range s.stale {
		stale = append(stale, id)
	}
	slices.Sort(stale)

	return entities.FormView{
		SessionID:     s.id,
		State:         s.state,
		Mode:          mode,
		Customer:      s.draft.Customer,
		Lines:         entities.ResolveLines(s.draft.Lines, catalog),
		Discount:      s.draft.Discount,
		Totals:        entities.ComputeTotal(s.draft.Lines, catalog, s.draft.Discount),
		Products:      catalog.Entries(),
		Customers:     slices.Clone(s.snapshot.Customers),
		Notice:        s.snapshot.Notice,
		LastError:     s.lastError,
		StaleProducts: stale,
	}
}
