// Package runtime holds the real-time session layer: who is online, who is
// typing to whom, and how events reach a connection.
// It contains no persistence and no business rules about messages.
package runtime

import (
	"chat-live/contract"
	"chat-live/observability"
	"chat-live/runtime/workers"
	"context"
	"log/slog"
	"sync"
	"time"
)

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   *Registry
	typing     *TypingTracker
	router     *Router
	sessions   *SessionManager
	monitor    *observability.Monitor
	heartbeat  time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	monitor *observability.Monitor, heartbeat time.Duration) *Orchestrator {
	registry := NewRegistry()
	typing := NewTypingTracker()
	router := NewRouter(log, registry, monitor)
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		typing:     typing,
		router:     router,
		sessions:   NewSessionManager(log, registry, typing, router, monitor),
		monitor:    monitor,
		heartbeat:  heartbeat,
	}
}

func (o *Orchestrator) Sessions() *SessionManager { return o.sessions }
func (o *Orchestrator) Router() *Router           { return o.router }
func (o *Orchestrator) Registry() *Registry       { return o.registry }
func (o *Orchestrator) Typing() *TypingTracker    { return o.typing }

func (o *Orchestrator) Stats() observability.Stats {
	return o.monitor.Snapshot(len(o.registry.AllOnline()))
}

// Add registers background workers to be supervised once started.
func (o *Orchestrator) Add(w ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.supervisor.Add(w...)
}

// Start runs the heartbeat and every added worker under supervision.
// It blocks until the context is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	if o.heartbeat > 0 {
		o.supervisor.Add(workers.NewHeartbeatWorker(o.log, o.monitor, o.registry, o.heartbeat))
	}
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
}

// Stop closes every live connection, replaced ones included, then stops the workers.
// Closing a handle makes its transport goroutines exit and run their disconnect.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	closed := o.sessions.CloseAll()
	o.log.Debug("Connections closed", "count", closed)
	o.supervisor.Stop()
}
