// Package router classifies inbound session events and normalizes them
// for the training and reply paths. It is the choke point that keeps the
// bot from training on or replying to itself.
package router

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"parrot/internal/session"
	"parrot/internal/store"
)

// Inbound is one normalized message ready for policy and training.
type Inbound struct {
	// Scope is the model scope: the bare room JID, or the global scope
	// for direct messages.
	Scope string

	// Room is the bare room JID ("" for direct messages).
	Room string

	// Sender is the room nick, or the bare JID for direct messages.
	Sender string

	// Text is the message body. For directed messages the bot-nick
	// prefix has been stripped.
	Text string

	// Nick is the bot's own nick in this conversation.
	Nick string

	Direct   bool // 1:1 chat
	Directed bool // room message prefixed with the bot's nick
	Mention  bool // bot's nick appears anywhere in the body
}

// Router filters and normalizes session events.
type Router struct {
	selfJID string
	nicks   map[string]string // bare room JID -> our nick there
	log     *zap.Logger

	mu       sync.Mutex
	presence map[string]map[string]bool // room -> nick -> joined
}

// New creates a router. nicks maps each configured room to the nick the
// bot uses there; selfJID is the account's bare JID.
func New(selfJID string, nicks map[string]string, log *zap.Logger) *Router {
	return &Router{
		selfJID:  selfJID,
		nicks:    nicks,
		log:      log,
		presence: make(map[string]map[string]bool),
	}
}

// Route classifies one event. The boolean reports whether the event
// produced a message for the training/reply paths; presence changes,
// errors, history replays, empty bodies, and the bot's own messages all
// return false.
func (r *Router) Route(ev session.Event) (Inbound, bool) {
	switch ev.Kind {
	case session.KindError:
		r.log.Warn("error stanza",
			zap.String("from", ev.From),
			zap.String("text", ev.Text))
		return Inbound{}, false

	case session.KindPresence:
		r.trackPresence(ev)
		return Inbound{}, false

	case session.KindMessage:
		if ev.Direct {
			return r.routeDirect(ev)
		}
		return r.routeRoom(ev)
	}
	return Inbound{}, false
}

// trackPresence maintains the per-room occupancy view and deduplicates
// the presence echoes produced by redundant joins.
func (r *Router) trackPresence(ev session.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	occupants, ok := r.presence[ev.Room]
	if !ok {
		occupants = make(map[string]bool)
		r.presence[ev.Room] = occupants
	}

	joined := !ev.Left
	if occupants[ev.Nick] == joined {
		// Duplicate echo, e.g. from an idempotent re-join.
		return
	}
	occupants[ev.Nick] = joined
	r.log.Debug("presence change",
		zap.String("room", ev.Room),
		zap.String("nick", ev.Nick),
		zap.Bool("joined", joined))
}

// Occupants reports the currently joined nicks for a room.
func (r *Router) Occupants(room string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for nick, joined := range r.presence[room] {
		if joined {
			out = append(out, nick)
		}
	}
	return out
}

func (r *Router) routeRoom(ev session.Event) (Inbound, bool) {
	nick, ok := r.nicks[ev.Room]
	if !ok {
		r.log.Debug("ignoring message from unconfigured room",
			zap.String("room", ev.Room))
		return Inbound{}, false
	}
	if ev.History || ev.Nick == "" || ev.Nick == nick {
		return Inbound{}, false
	}
	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return Inbound{}, false
	}

	in := Inbound{
		Scope:  ev.Room,
		Room:   ev.Room,
		Sender: ev.Nick,
		Text:   text,
		Nick:   nick,
	}
	if stripped, ok := stripNickPrefix(text, nick); ok {
		in.Directed = true
		in.Mention = true
		in.Text = stripped
	} else if containsWord(text, nick) {
		in.Mention = true
	}
	return in, true
}

func (r *Router) routeDirect(ev session.Event) (Inbound, bool) {
	if ev.From == "" || ev.From == r.selfJID {
		return Inbound{}, false
	}
	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return Inbound{}, false
	}
	return Inbound{
		Scope:  store.GlobalScope,
		Sender: ev.From,
		Text:   text,
		Direct: true,
	}, true
}

// stripNickPrefix removes a leading "nick", "nick:", "nick," and following
// whitespace. Reports whether the text was actually nick-prefixed.
func stripNickPrefix(text, nick string) (string, bool) {
	if nick == "" || !strings.HasPrefix(text, nick) {
		return text, false
	}
	rest := strings.TrimPrefix(text, nick)
	if rest != "" && !strings.ContainsAny(rest[:1], ",: \t") {
		// Just a nick-shaped word, e.g. "parrots are great".
		return text, false
	}
	return strings.TrimLeft(rest, ",: \t"), true
}

// containsWord reports whether w appears in text as a standalone token.
func containsWord(text, w string) bool {
	if w == "" {
		return false
	}
	for _, tok := range strings.Fields(text) {
		if strings.Trim(tok, ",.:;!?") == w {
			return true
		}
	}
	return false
}
