package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// State is the session lifecycle state.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateAuthenticated
	StateJoiningRooms
	StateActive
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateAuthenticated:
		return "authenticated"
	case StateJoiningRooms:
		return "joining_rooms"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// JoinTarget is one desired room membership.
type JoinTarget struct {
	Room string
	Nick string
}

// Manager drives the reconnect state machine:
//
//	Disconnected -> Connecting -> Authenticated -> JoiningRooms -> Active
//
// with Active -> Disconnected on any transport error. Every disconnect is
// treated as transient and retried forever; only the retry interval is
// bounded. This is a deliberate long-running-daemon property.
type Manager struct {
	transport Transport
	rooms     []JoinTarget
	backoff   *Backoff
	log       *zap.Logger

	events chan Event

	sendMu sync.Mutex
	state  atomic.Int32

	connectAttempts atomic.Int64
}

// NewManager creates a session manager for the desired room set.
func NewManager(t Transport, rooms []JoinTarget, backoff *Backoff, log *zap.Logger) *Manager {
	return &Manager{
		transport: t,
		rooms:     rooms,
		backoff:   backoff,
		log:       log,
		events:    make(chan Event, 128),
	}
}

// Events returns the inbound event stream. Events are delivered in the
// order received from the transport, with no reordering across reconnects.
// The channel closes when Run returns.
func (m *Manager) Events() <-chan Event { return m.events }

// State returns the current lifecycle state.
func (m *Manager) State() State { return State(m.state.Load()) }

func (m *Manager) setState(s State) {
	old := State(m.state.Swap(int32(s)))
	if old != s {
		m.log.Debug("session state change",
			zap.String("from", old.String()),
			zap.String("to", s.String()))
	}
}

// ConnectAttempts reports how many connect calls have been made. Exposed
// for tests and diagnostics.
func (m *Manager) ConnectAttempts() int64 { return m.connectAttempts.Load() }

// Send hands one message to the transport. Sends share the connection with
// the receive stream, so they are serialized here to avoid interleaved
// partial writes. Best-effort: returns ErrNotConnected while reconnecting.
func (m *Manager) Send(out Outbound) error {
	if m.State() != StateActive {
		return ErrNotConnected
	}
	m.sendMu.Lock()
	defer m.sendMu.Unlock()
	return m.transport.Send(out)
}

// Run operates the session until ctx is canceled. It returns ctx.Err() on
// shutdown; transport failures never terminate it.
func (m *Manager) Run(ctx context.Context) error {
	defer close(m.events)
	defer m.setState(StateDisconnected)

	for {
		if err := m.connect(ctx); err != nil {
			return err
		}

		m.setState(StateJoiningRooms)
		if err := m.joinRooms(); err != nil {
			m.log.Warn("room join failed, reconnecting", zap.Error(err))
			m.disconnect()
			if werr := m.wait(ctx); werr != nil {
				return werr
			}
			continue
		}

		m.setState(StateActive)
		m.log.Info("session active", zap.Int("rooms", len(m.rooms)))

		err := m.pump(ctx)
		m.disconnect()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.log.Warn("transport error, reconnecting", zap.Error(err))
		if werr := m.wait(ctx); werr != nil {
			return werr
		}
	}
}

// connect retries until the transport is connected and authenticated, or
// ctx is canceled. Each failure waits out the next backoff interval.
func (m *Manager) connect(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		m.setState(StateConnecting)
		m.connectAttempts.Add(1)
		err := m.transport.Connect(ctx)
		if err == nil {
			m.setState(StateAuthenticated)
			return nil
		}

		var authErr *AuthError
		if errors.As(err, &authErr) {
			// Persistent rejection needs to reach an operator.
			m.log.Error("authentication rejected, will retry", zap.Error(err))
		} else {
			m.log.Warn("connect failed", zap.Error(err))
		}

		if werr := m.wait(ctx); werr != nil {
			return werr
		}
		m.setState(StateDisconnected)
	}
}

// wait sleeps out the next backoff interval. Every path back to Connecting
// goes through here, so a server that accepts the connection and then drops
// the stream (or rejects the join) is retried at the backoff cadence, never
// in a hot loop.
func (m *Manager) wait(ctx context.Context) error {
	delay := m.backoff.Next()
	m.log.Info("reconnect scheduled", zap.Duration("delay", delay))

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// joinRooms reconciles the desired membership set. Join presences request
// no history so the bot never trains on replayed messages.
func (m *Manager) joinRooms() error {
	for _, r := range m.rooms {
		if err := m.transport.JoinRoom(r.Room, r.Nick); err != nil {
			return err
		}
		m.log.Info("joined room", zap.String("room", r.Room), zap.String("nick", r.Nick))
	}
	return nil
}

// pump forwards transport events until a transport error or shutdown. A
// watcher goroutine closes the transport on ctx cancellation to unblock a
// pending Recv. The backoff sequence restarts only after the first
// successful read: a connection that authenticates but dies immediately
// must not reset the retry cadence.
func (m *Manager) pump(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = m.transport.Close()
		case <-done:
		}
	}()

	healthy := false
	for {
		ev, err := m.transport.Recv()
		if err != nil {
			return err
		}
		if !healthy {
			m.backoff.Reset()
			healthy = true
		}
		select {
		case m.events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// disconnect tears the transport down after a failure.
func (m *Manager) disconnect() {
	m.setState(StateDisconnected)
	if err := m.transport.Close(); err != nil {
		m.log.Debug("transport close", zap.Error(err))
	}
}
