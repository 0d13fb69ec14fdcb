package poller

import (
	"context"
	"sort"
	"sync"

	"github.com/piresc/saferoute/internal/pkg/logger"
)

// Group owns a set of named loops bound to one view or session
type Group struct {
	ctx      context.Context
	observer Observer

	mu     sync.Mutex
	loops  map[string]*Loop
	closed bool
}

// NewGroup creates a group whose loops all derive from ctx
func NewGroup(ctx context.Context, observer Observer) *Group {
	return &Group{
		ctx:      ctx,
		observer: observer,
		loops:    make(map[string]*Loop),
	}
}

// Start launches task. An existing loop with the same name is stopped
// first. After StopAll the group refuses new loops.
func (g *Group) Start(task Task) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	old := g.loops[task.Name]
	delete(g.loops, task.Name)
	g.mu.Unlock()

	if old != nil {
		old.Stop()
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	// a concurrent Start may have registered the name while the lock was released
	stale := g.loops[task.Name]
	g.loops[task.Name] = Start(g.ctx, task, g.observer)
	g.mu.Unlock()

	if stale != nil {
		stale.Stop()
	}

	logger.Debug("Polling task started",
		logger.String("task", task.Name),
		logger.Duration("interval", task.Interval))
}

// Rebind replaces the loop under task.Name, used when the watched entity's
// identity changes
func (g *Group) Rebind(task Task) {
	logger.Debug("Rebinding polling task", logger.String("task", task.Name))
	g.Start(task)
}

// Stop stops the named loop if it runs
func (g *Group) Stop(name string) {
	g.mu.Lock()
	l := g.loops[name]
	delete(g.loops, name)
	g.mu.Unlock()

	if l != nil {
		l.Stop()
		logger.Debug("Polling task stopped", logger.String("task", name))
	}
}

// Running reports whether a loop with this name is active
func (g *Group) Running(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.loops[name]
	return ok
}

// StopAll stops every loop in the group and closes it
func (g *Group) StopAll() {
	g.mu.Lock()
	g.closed = true
	loops := g.loops
	g.loops = make(map[string]*Loop)
	g.mu.Unlock()

	for _, l := range loops {
		l.Stop()
	}
}

// Stats returns per-loop counters ordered by name
func (g *Group) Stats() []Stats {
	g.mu.Lock()
	out := make([]Stats, 0, len(g.loops))
	for _, l := range g.loops {
		out = append(out, l.Stats())
	}
	g.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
