package services

import (
	"context"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"

	"github.com/campushq/placetrack/internal/client/api"
	"github.com/campushq/placetrack/internal/client/models"
)

// studentLister is the slice of the API client the searcher consumes.
type studentLister interface {
	List(ctx context.Context, params api.StudentListParams) ([]models.Student, error)
}

// SearchResult is one delivered outcome of a student search.
type SearchResult struct {
	Params   api.StudentListParams
	Students []models.Student
	Err      error
}

// StudentSearcher bounds request volume for search-as-you-type list fetches.
//
// Each Search call restarts a quiet-interval debounce timer, so only the
// last of a rapid burst issues a request. Every issued request carries an
// identity; a response whose identity is no longer the latest is discarded,
// so a slow earlier response cannot clobber a newer result. Results reach
// the caller through the sink callback, which runs on the fetch goroutine.
type StudentSearcher struct {
	api      studentLister
	debounce func(func())
	sink     func(SearchResult)

	mu     sync.Mutex
	latest uuid.UUID
}

// NewStudentSearcher builds a searcher with the given quiet interval.
func NewStudentSearcher(lister studentLister, quiet time.Duration, sink func(SearchResult)) *StudentSearcher {
	return &StudentSearcher{
		api:      lister,
		debounce: debounce.New(quiet),
		sink:     sink,
	}
}

// Search schedules a list fetch for params after the quiet interval.
func (s *StudentSearcher) Search(ctx context.Context, params api.StudentListParams) {
	id := uuid.New()

	s.mu.Lock()
	s.latest = id
	s.mu.Unlock()

	s.debounce(func() {
		if s.isStale(id) {
			return
		}
		students, err := s.api.List(ctx, params)
		if s.isStale(id) {
			return
		}
		s.sink(SearchResult{Params: params, Students: students, Err: err})
	})
}

func (s *StudentSearcher) isStale(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest != id
}
