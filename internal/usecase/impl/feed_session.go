package impl

import (
	"context"
	"sync"
	"sync/atomic"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/usecase"
)

// FeedSession tracks the visible feed state for one client view. Rapid
// successive queries race their fetches, so each Compose cancels the
// previous in-flight one and only the most recently issued request may
// update the visible state. Superseded results are reported but never
// applied.
type FeedSession struct {
	uc         usecase.FeedUsecase
	generation atomic.Uint64

	mu      sync.Mutex
	current *entity.FeedResult
	cancel  context.CancelFunc
}

// NewFeedSession is the constructor for FeedSession.
func NewFeedSession(uc usecase.FeedUsecase) *FeedSession {
	return &FeedSession{uc: uc}
}

// Compose runs the query and applies the result to the session state when
// no newer query was issued meanwhile. The returned bool reports whether
// the result became the visible state.
func (s *FeedSession) Compose(ctx context.Context, query entity.FeedQuery) (*entity.FeedResult, bool, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	generation := s.generation.Add(1)
	s.mu.Unlock()

	defer cancel()

	result, err := s.uc.Compose(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation.Load() {
		return result, false, err
	}
	if err != nil {
		return nil, true, err
	}
	s.current = result

	return result, true, nil
}

// Current returns the visible feed state, nil before the first applied
// compose.
func (s *FeedSession) Current() *entity.FeedResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// SessionRegistry hands out one FeedSession per client key so concurrent
// requests from the same client share last-request-wins semantics while
// distinct clients never interfere.
type SessionRegistry struct {
	uc       usecase.FeedUsecase
	sessions sync.Map // client key -> *FeedSession
}

// NewSessionRegistry is the constructor for SessionRegistry.
func NewSessionRegistry(uc usecase.FeedUsecase) *SessionRegistry {
	return &SessionRegistry{uc: uc}
}

// For returns the session for the client key, creating it on first use.
func (r *SessionRegistry) For(key string) *FeedSession {
	if v, ok := r.sessions.Load(key); ok {
		return v.(*FeedSession)
	}

	actual, _ := r.sessions.LoadOrStore(key, NewFeedSession(r.uc))

	return actual.(*FeedSession)
}
