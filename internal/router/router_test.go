package router

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parrot/internal/session"
	"parrot/internal/store"
)

const (
	testRoom = "den@muc.example.org"
	selfJID  = "parrot@example.org"
)

func newTestRouter() *Router {
	return New(selfJID, map[string]string{testRoom: "parrot"}, zap.NewNop())
}

func roomMsg(nick, text string) session.Event {
	return session.Event{Kind: session.KindMessage, Room: testRoom, Nick: nick, Text: text}
}

func TestRouteRoomMessage(t *testing.T) {
	r := newTestRouter()

	in, ok := r.Route(roomMsg("alice", "hello everyone"))
	require.True(t, ok)
	require.Equal(t, testRoom, in.Scope)
	require.Equal(t, testRoom, in.Room)
	require.Equal(t, "alice", in.Sender)
	require.Equal(t, "hello everyone", in.Text)
	require.Equal(t, "parrot", in.Nick)
	require.False(t, in.Direct)
	require.False(t, in.Directed)
	require.False(t, in.Mention)
}

func TestRouteFiltersOwnMessages(t *testing.T) {
	r := newTestRouter()

	_, ok := r.Route(roomMsg("parrot", "something I said earlier"))
	require.False(t, ok, "own messages must never reach training")
}

func TestRouteFiltersHistoryReplay(t *testing.T) {
	r := newTestRouter()

	ev := roomMsg("alice", "old message")
	ev.History = true
	_, ok := r.Route(ev)
	require.False(t, ok)
}

func TestRouteFiltersBlankAndBareRoomMessages(t *testing.T) {
	r := newTestRouter()

	_, ok := r.Route(roomMsg("alice", "   "))
	require.False(t, ok)

	// Subject changes and other room-level stanzas carry no nick.
	_, ok = r.Route(roomMsg("", "room subject"))
	require.False(t, ok)
}

func TestRouteIgnoresUnconfiguredRoom(t *testing.T) {
	r := newTestRouter()

	ev := session.Event{Kind: session.KindMessage, Room: "other@muc.example.org", Nick: "alice", Text: "hi"}
	_, ok := r.Route(ev)
	require.False(t, ok)
}

func TestRouteDirectedMessage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Colon", "parrot: say something", "say something"},
		{"Comma", "parrot, say something", "say something"},
		{"Space", "parrot say something", "say something"},
		{"BareNick", "parrot", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()
			in, ok := r.Route(roomMsg("alice", tt.text))
			require.True(t, ok)
			require.True(t, in.Directed)
			require.True(t, in.Mention)
			require.Equal(t, tt.want, in.Text)
		})
	}
}

func TestRouteNickShapedWordIsNotDirected(t *testing.T) {
	r := newTestRouter()

	in, ok := r.Route(roomMsg("alice", "parrots are great"))
	require.True(t, ok)
	require.False(t, in.Directed)
	require.False(t, in.Mention)
	require.Equal(t, "parrots are great", in.Text)
}

func TestRouteMidSentenceMention(t *testing.T) {
	r := newTestRouter()

	in, ok := r.Route(roomMsg("alice", "I was talking to parrot, yesterday"))
	require.True(t, ok)
	require.True(t, in.Mention)
	require.False(t, in.Directed)
	require.Equal(t, "I was talking to parrot, yesterday", in.Text)
}

func TestRouteDirectMessage(t *testing.T) {
	r := newTestRouter()

	ev := session.Event{Kind: session.KindMessage, Direct: true, From: "bob@example.org", Text: "hi there"}
	in, ok := r.Route(ev)
	require.True(t, ok)
	require.True(t, in.Direct)
	require.Equal(t, store.GlobalScope, in.Scope)
	require.Equal(t, "bob@example.org", in.Sender)
	require.Equal(t, "hi there", in.Text)
}

func TestRouteDirectFromSelf(t *testing.T) {
	r := newTestRouter()

	ev := session.Event{Kind: session.KindMessage, Direct: true, From: selfJID, Text: "carbon copy"}
	_, ok := r.Route(ev)
	require.False(t, ok)
}

func TestRouteErrorStanza(t *testing.T) {
	r := newTestRouter()

	ev := session.Event{Kind: session.KindError, From: "muc.example.org", Text: "service unavailable"}
	_, ok := r.Route(ev)
	require.False(t, ok)
}

func TestPresenceTracking(t *testing.T) {
	r := newTestRouter()

	join := session.Event{Kind: session.KindPresence, Room: testRoom, Nick: "alice"}
	_, ok := r.Route(join)
	require.False(t, ok)
	require.Equal(t, []string{"alice"}, r.Occupants(testRoom))

	// A duplicate join echo changes nothing.
	r.Route(join)
	require.Equal(t, []string{"alice"}, r.Occupants(testRoom))

	leave := join
	leave.Left = true
	r.Route(leave)
	require.Empty(t, r.Occupants(testRoom))
}

func TestStripNickPrefix(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		nick     string
		want     string
		stripped bool
	}{
		{"ColonSpace", "ash: hello", "ash", "hello", true},
		{"CommaOnly", "ash,hello", "ash", "hello", true},
		{"TabAfter", "ash\thello", "ash", "hello", true},
		{"Exact", "ash", "ash", "", true},
		{"LongerWord", "ashes everywhere", "ash", "ashes everywhere", false},
		{"NoMatch", "hello ash", "ash", "hello ash", false},
		{"EmptyNick", "hello", "", "hello", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stripNickPrefix(tt.text, tt.nick)
			require.Equal(t, tt.stripped, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
