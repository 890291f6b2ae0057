// Package session owns the protocol connection lifecycle: connect,
// authenticate, join rooms, pump inbound events, and recover from
// disconnects. The wire protocol itself lives behind the Transport
// interface; this package only sees parsed events and outbound tuples.
package session

import (
	"context"
	"errors"
)

// Kind classifies an inbound event.
type Kind int

const (
	// KindMessage is a chat message (room or direct).
	KindMessage Kind = iota
	// KindPresence is a room occupant joining or leaving.
	KindPresence
	// KindError is an error stanza from the server or a peer.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindPresence:
		return "presence"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one parsed inbound stanza, reduced to the tuple the bot cares
// about. For room traffic, Room is the bare room JID and Nick the sender's
// room nick. For direct messages, From is the sender's bare JID and Direct
// is set.
type Event struct {
	Kind    Kind
	Room    string
	Nick    string
	From    string
	Text    string
	Direct  bool
	History bool // replayed room history, never fresh input
	Left    bool // presence only: occupant left
}

// Outbound is one message to hand to the transport. Success means "handed
// to the transport", not "received by a peer" — the protocol carries no
// acknowledgments for chat messages.
type Outbound struct {
	To     string // bare room JID, or bare peer JID when Direct
	Text   string
	Direct bool
}

// Transport is the protocol client boundary. Implementations are not
// required to be safe for concurrent Send; the Manager serializes sends.
type Transport interface {
	// Connect establishes the secure transport, authenticates, and binds
	// a resource. Errors are classified as *AuthError or *TransportError;
	// both are retryable.
	Connect(ctx context.Context) error

	// JoinRoom sends a join presence for the room under the given nick.
	// Idempotent: re-joining an already-joined room only produces a
	// duplicate presence echo, which the router deduplicates.
	JoinRoom(room, nick string) error

	// Recv blocks for the next inbound event. Returns an error on any
	// transport failure; Close unblocks a pending Recv.
	Recv() (Event, error)

	// Send delivers one outbound message, best-effort.
	Send(out Outbound) error

	Close() error
}

// AuthError is a credential rejection. Retryable: servers transiently
// reject during maintenance, and persistent rejection must surface via
// logging rather than crash a long-running daemon.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "authentication failed: " + e.Err.Error() }
func (e *AuthError) Unwrap() error { return e.Err }

// TransportError is a network or TLS failure. Retryable; drives the
// reconnect state machine.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport failure: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ErrNotConnected is returned by Send while the session is not Active.
var ErrNotConnected = errors.New("session: not connected")
