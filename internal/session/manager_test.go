package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeTransport scripts connect failures and feeds inbound events.
type fakeTransport struct {
	mu           sync.Mutex
	failConnects int
	failJoins    int
	recvFail     error // every Recv fails with this
	connects     int
	joins        []JoinTarget
	sends        []Outbound

	recvCh  chan Event
	errCh   chan error
	closeCh chan struct{}
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		recvCh: make(chan Event, 16),
		errCh:  make(chan error, 1),
	}
}

func (f *fakeTransport) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	if f.failConnects > 0 {
		f.failConnects--
		return &TransportError{Err: errors.New("connection refused")}
	}
	f.closeCh = make(chan struct{})
	return nil
}

func (f *fakeTransport) JoinRoom(room, nick string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failJoins > 0 {
		f.failJoins--
		return &TransportError{Err: errors.New("join rejected")}
	}
	f.joins = append(f.joins, JoinTarget{Room: room, Nick: nick})
	return nil
}

func (f *fakeTransport) Recv() (Event, error) {
	f.mu.Lock()
	ch := f.closeCh
	recvFail := f.recvFail
	f.mu.Unlock()
	if ch == nil {
		return Event{}, &TransportError{Err: errors.New("not connected")}
	}
	if recvFail != nil {
		return Event{}, recvFail
	}
	select {
	case ev := <-f.recvCh:
		return ev, nil
	case err := <-f.errCh:
		return Event{}, err
	case <-ch:
		return Event{}, &TransportError{Err: errors.New("connection closed")}
	}
}

func (f *fakeTransport) Send(out Outbound) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, out)
	return nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closeCh != nil {
		close(f.closeCh)
		f.closeCh = nil
	}
	return nil
}

func (f *fakeTransport) connectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connects
}

func (f *fakeTransport) joinCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.joins)
}

func (f *fakeTransport) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

func testManager(t *testing.T, ft *fakeTransport, rooms []JoinTarget) (*Manager, context.CancelFunc, chan error) {
	t.Helper()
	m := NewManager(ft, rooms, NewBackoff(time.Millisecond, 4*time.Millisecond), zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("Run did not return after cancel")
		}
	})
	return m, cancel, done
}

func waitActive(t *testing.T, m *Manager) {
	t.Helper()
	require.Eventually(t, func() bool {
		return m.State() == StateActive
	}, 5*time.Second, time.Millisecond)
}

func TestManagerReachesActive(t *testing.T) {
	ft := newFakeTransport()
	rooms := []JoinTarget{{Room: "den@muc.example.org", Nick: "parrot"}}
	m, _, _ := testManager(t, ft, rooms)

	waitActive(t, m)
	require.Equal(t, 1, ft.connectCount())
	require.Equal(t, 1, ft.joinCount())
}

func TestManagerRetriesConnectWithBackoff(t *testing.T) {
	ft := newFakeTransport()
	ft.failConnects = 3
	m, _, _ := testManager(t, ft, []JoinTarget{{Room: "den@muc.example.org", Nick: "parrot"}})

	waitActive(t, m)
	require.Equal(t, int64(4), m.ConnectAttempts())
}

func TestManagerReconnectsAfterJoinFailure(t *testing.T) {
	ft := newFakeTransport()
	ft.failJoins = 1
	m, _, _ := testManager(t, ft, []JoinTarget{{Room: "den@muc.example.org", Nick: "parrot"}})

	waitActive(t, m)
	require.Equal(t, 2, ft.connectCount())
	require.Equal(t, 1, ft.joinCount())
}

func TestManagerReconnectsAfterTransportError(t *testing.T) {
	ft := newFakeTransport()
	m, _, _ := testManager(t, ft, []JoinTarget{{Room: "den@muc.example.org", Nick: "parrot"}})
	waitActive(t, m)

	ft.errCh <- &TransportError{Err: errors.New("stream reset")}

	require.Eventually(t, func() bool {
		return ft.joinCount() == 2 && m.State() == StateActive
	}, 5*time.Second, time.Millisecond)
	require.GreaterOrEqual(t, ft.connectCount(), 2)
}

func TestManagerForwardsEventsInOrder(t *testing.T) {
	ft := newFakeTransport()
	m, _, _ := testManager(t, ft, nil)
	waitActive(t, m)

	want := []string{"first", "second", "third"}
	for _, text := range want {
		ft.recvCh <- Event{Kind: KindMessage, Room: "den@muc.example.org", Nick: "alice", Text: text}
	}

	for _, text := range want {
		select {
		case ev := <-m.Events():
			require.Equal(t, text, ev.Text)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestSendRequiresActiveSession(t *testing.T) {
	ft := newFakeTransport()
	m := NewManager(ft, nil, NewBackoff(time.Millisecond, time.Millisecond), zap.NewNop())

	err := m.Send(Outbound{To: "den@muc.example.org", Text: "hello"})
	require.ErrorIs(t, err, ErrNotConnected)
	require.Equal(t, 0, ft.sentCount())
}

func TestSendWhileActive(t *testing.T) {
	ft := newFakeTransport()
	m, _, _ := testManager(t, ft, nil)
	waitActive(t, m)

	require.NoError(t, m.Send(Outbound{To: "den@muc.example.org", Text: "hello"}))
	require.Equal(t, 1, ft.sentCount())
}

func TestRunReturnsOnCancelAndClosesEvents(t *testing.T) {
	ft := newFakeTransport()
	m, cancel, done := testManager(t, ft, nil)
	waitActive(t, m)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
		done <- err // keep Cleanup's drain happy
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}

	require.Eventually(t, func() bool {
		_, open := <-m.Events()
		return !open
	}, 5*time.Second, time.Millisecond)
	require.Equal(t, StateDisconnected, m.State())
}

func TestPostConnectStreamFailureBacksOff(t *testing.T) {
	// Connect always succeeds but the stream dies on the first read. The
	// reconnect loop must still pace itself by the backoff sequence
	// instead of hammering the server with zero-delay attempts.
	ft := newFakeTransport()
	ft.recvFail = &TransportError{Err: errors.New("stream reset")}
	m := NewManager(ft, nil, NewBackoff(50*time.Millisecond, 400*time.Millisecond), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	time.Sleep(300 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// 50+100+200ms of waits fit only a handful of attempts in 300ms.
	attempts := m.ConnectAttempts()
	require.GreaterOrEqual(t, attempts, int64(2))
	require.LessOrEqual(t, attempts, int64(6),
		"reconnects after a post-connect failure must honor backoff")
}

func TestBackoffResetRequiresHealthyStream(t *testing.T) {
	// A connection that joins and then delivers traffic restarts the
	// backoff sequence; the next disconnect waits the initial delay again.
	// The failed connects first advance the sequence past its start.
	b := NewBackoff(time.Millisecond, 4*time.Millisecond)
	ft := newFakeTransport()
	ft.failConnects = 2
	m := NewManager(ft, nil, b, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()
	defer func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("Run did not return after cancel")
		}
	}()

	waitActive(t, m)
	ft.recvCh <- Event{Kind: KindMessage, Room: "den@muc.example.org", Nick: "alice", Text: "hi"}
	select {
	case <-m.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	// The reset is ordered before the event delivery, so a copy of the
	// sequence must be back at the initial delay.
	b2 := *b
	require.Equal(t, time.Millisecond, b2.Next(), "backoff not reset after healthy traffic")
}

func TestBackoffSequence(t *testing.T) {
	b := NewBackoff(time.Second, 8*time.Second)

	var got []time.Duration
	for i := 0; i < 6; i++ {
		got = append(got, b.Next())
	}
	want := []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second,
		8 * time.Second, 8 * time.Second, 8 * time.Second,
	}
	require.Equal(t, want, got)

	b.Reset()
	require.Equal(t, time.Second, b.Next())
}

func TestBackoffDefaults(t *testing.T) {
	b := NewBackoff(0, 0)
	require.Equal(t, time.Second, b.Next())
	require.Equal(t, time.Second, b.Next())
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateDisconnected, "disconnected"},
		{StateConnecting, "connecting"},
		{StateAuthenticated, "authenticated"},
		{StateJoiningRooms, "joining_rooms"},
		{StateActive, "active"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.state.String())
	}
}
