package provider

import (
	"sync"

	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/location"
)

// stream is the single owned watch. Deliveries hold mu and check alive, so
// once stop returns no callback of this stream runs. Callbacks must not call
// StopStream or StartStream synchronously.
type stream struct {
	id       uint64
	onUpdate func(models.Position)
	onError  func(error)
	remember func(models.Position)

	mu    sync.Mutex
	alive bool
	watch location.Watch
}

func (s *stream) deliverUpdate(p models.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alive {
		return
	}
	s.remember(p)
	if s.onUpdate != nil {
		s.onUpdate(p)
	}
}

func (s *stream) deliverError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alive || s.onError == nil {
		return
	}
	s.onError(err)
}

func (s *stream) stop() {
	s.mu.Lock()
	s.alive = false
	w := s.watch
	s.watch = nil
	s.mu.Unlock()

	if w != nil {
		w.Clear()
	}
}
