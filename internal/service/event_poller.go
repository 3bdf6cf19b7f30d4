package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"digiplay-sdk/config"
	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/internal/core/ports"
	"digiplay-sdk/pkg/apperror"

	"github.com/rs/zerolog"
)

// PollerState is the lifecycle state of an EventPoller.
type PollerState string

const (
	PollerStateIdle    PollerState = "IDLE"
	PollerStateRunning PollerState = "RUNNING"
	PollerStateStopped PollerState = "STOPPED"
)

// ErrPollerRunning is returned by Start when the poller is already running.
var ErrPollerRunning = errors.New("event poller is already running")

// EventPoller periodically fetches chain events and dispatches them, in
// order, to the registered handler. Fetch and handler errors are contained
// per cycle: they are logged and the loop continues. The poll cursor is
// persisted after each dispatched batch so a restarted poller resumes
// instead of reprocessing (at-least-once delivery).
type EventPoller struct {
	source   ports.EventSource
	cursors  ports.CursorStore
	handler  ports.EventHandler
	interval time.Duration
	stream   string
	log      zerolog.Logger

	mu     sync.Mutex
	state  PollerState
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewEventPoller creates an EventPoller in the Idle state.
func NewEventPoller(
	source ports.EventSource,
	cursors ports.CursorStore,
	handler ports.EventHandler,
	cfg config.EventsConfig,
	log zerolog.Logger,
) *EventPoller {
	return &EventPoller{
		source:   source,
		cursors:  cursors,
		handler:  handler,
		interval: cfg.PollInterval,
		stream:   cfg.Stream,
		log:      log,
		state:    PollerStateIdle,
	}
}

// State returns the current lifecycle state.
func (p *EventPoller) State() PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start transitions Idle/Stopped -> Running and launches the poll loop.
// Returns ErrPollerRunning if the poller is already running.
func (p *EventPoller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == PollerStateRunning {
		return ErrPollerRunning
	}

	p.state = PollerStateRunning
	p.stopCh = make(chan struct{})
	p.doneCh = make(chan struct{})

	go p.run(ctx, p.stopCh, p.doneCh)
	p.log.Info().Str("stream", p.stream).Dur("interval", p.interval).Msg("event poller started")
	return nil
}

// Stop transitions Running -> Stopped. Safe to call from any goroutine and
// idempotent. The in-flight cycle completes; no further fetch begins.
func (p *EventPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != PollerStateRunning {
		return
	}
	p.state = PollerStateStopped
	close(p.stopCh)
	p.log.Info().Str("stream", p.stream).Msg("event poller stopped")
}

// Done returns a channel closed when the poll loop has fully exited. Before
// the first Start there is no loop to wait for, so the channel is already
// closed.
func (p *EventPoller) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doneCh == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return p.doneCh
}

func (p *EventPoller) run(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	cursor, err := p.cursors.Get(ctx, p.stream)
	if err != nil {
		p.log.Warn().Err(err).Str("stream", p.stream).Msg("loading poll cursor failed, starting from beginning")
		cursor = ""
	}

	for {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			p.markStopped(stopCh)
			return
		default:
		}

		cursor = p.pollOnce(ctx, cursor)

		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			p.markStopped(stopCh)
			return
		case <-time.After(p.interval):
		}
	}
}

// pollOnce runs a single fetch-dispatch-persist cycle and returns the cursor
// to resume from. Any error leaves the cursor unchanged so the cycle is
// retried on the next tick.
func (p *EventPoller) pollOnce(ctx context.Context, cursor string) string {
	events, next, err := p.source.FetchEvents(ctx, cursor)
	if err != nil {
		p.log.Warn().Err(apperror.ErrEventFetch(err)).Str("stream", p.stream).Msg("event fetch failed, will retry next cycle")
		return cursor
	}

	for _, ev := range events {
		p.dispatch(ctx, ev)
	}

	if next != cursor {
		if err := p.cursors.Set(ctx, p.stream, next); err != nil {
			p.log.Warn().Err(err).Str("stream", p.stream).Msg("persisting poll cursor failed")
		}
	}

	if len(events) > 0 {
		p.log.Debug().Int("count", len(events)).Str("cursor", next).Msg("events dispatched")
	}
	return next
}

// dispatch invokes the handler for one event, containing errors and panics.
func (p *EventPoller) dispatch(ctx context.Context, ev domain.BlockchainEvent) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Str("event_id", ev.ID).Interface("panic", r).Msg("event handler panicked")
		}
	}()

	if err := p.handler(ctx, ev); err != nil {
		p.log.Warn().Err(err).Str("event_id", ev.ID).Str("event_type", ev.Type).Msg("event handler returned error")
	}
}

// markStopped records a loop exit caused by context cancellation. The
// channel identity check keeps a stale loop from touching a restarted poller.
func (p *EventPoller) markStopped(stopCh chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == PollerStateRunning && p.stopCh == stopCh {
		p.state = PollerStateStopped
	}
}
