package api

import (
	"context"

	"github.com/campushq/placetrack/internal/client/models"
)

// StatsAPI covers the read-only /stats aggregate.
type StatsAPI struct {
	client *Client
}

// Get fetches the aggregate. The backend recomputes it on every request;
// the client never caches it.
func (s *StatsAPI) Get(ctx context.Context) (*models.Stats, error) {
	var out models.Stats
	if err := s.client.do(ctx, "GET", "/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
