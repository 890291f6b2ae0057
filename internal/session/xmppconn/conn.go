// Package xmppconn implements session.Transport over the go-xmpp client
// library. All XML and stanza parsing is the library's problem; this
// adapter reduces stanzas to the (room, nick, text) tuples the session
// layer consumes and builds outbound groupchat/chat messages.
package xmppconn

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"sync"
	"time"

	xmpp "github.com/xmppo/go-xmpp"

	"parrot/internal/session"
)

// Options configures the XMPP connection.
type Options struct {
	Server   string // host:port
	JID      string // bare account JID
	Password string
	Resource string

	// DirectTLS dials TLS immediately instead of STARTTLS on 5222.
	DirectTLS bool
	Debug     bool

	// TLSConfig overrides the default TLS settings (tests only).
	TLSConfig *tls.Config
}

// Conn is a session.Transport backed by one go-xmpp client.
type Conn struct {
	opts Options

	mu     sync.Mutex
	client *xmpp.Client
}

var _ session.Transport = (*Conn)(nil)

// New creates an unconnected transport.
func New(opts Options) *Conn {
	if opts.Resource == "" {
		opts.Resource = "parrot"
	}
	return &Conn{opts: opts}
}

// Connect dials, negotiates TLS, and authenticates. Auth rejections are
// wrapped as *session.AuthError, everything else as *session.TransportError.
func (c *Conn) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &session.TransportError{Err: err}
	}

	o := xmpp.Options{
		Host:        c.opts.Server,
		User:        c.opts.JID,
		Password:    c.opts.Password,
		Resource:    c.opts.Resource,
		NoTLS:       !c.opts.DirectTLS,
		StartTLS:    !c.opts.DirectTLS,
		Debug:       c.opts.Debug,
		Session:     true,
		DialTimeout: 30 * time.Second,
		TLSConfig:   c.opts.TLSConfig,
	}

	// NewClient dials and negotiates without taking a context, so run it
	// on the side and abandon it on cancellation; the straggler is closed
	// once the dial resolves.
	type dialResult struct {
		client *xmpp.Client
		err    error
	}
	dialed := make(chan dialResult, 1)
	go func() {
		client, err := o.NewClient()
		dialed <- dialResult{client: client, err: err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			if r := <-dialed; r.client != nil {
				r.client.Close()
			}
		}()
		return &session.TransportError{Err: ctx.Err()}
	case r := <-dialed:
		if r.err != nil {
			return classify(r.err)
		}
		c.mu.Lock()
		c.client = r.client
		c.mu.Unlock()
		return nil
	}
}

// classify sorts connection errors into the retryable taxonomy. The
// library reports SASL failures as plain errors, so this is a string
// match; misclassification only changes the log level, not the retry.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "auth") || strings.Contains(msg, "not-authorized") ||
		strings.Contains(msg, "credentials") {
		return &session.AuthError{Err: err}
	}
	return &session.TransportError{Err: err}
}

func (c *Conn) current() (*xmpp.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil, &session.TransportError{Err: fmt.Errorf("not connected")}
	}
	return c.client, nil
}

// JoinRoom enters a MUC with no history: replayed backlog must never reach
// the training path.
func (c *Conn) JoinRoom(room, nick string) error {
	client, err := c.current()
	if err != nil {
		return err
	}
	if _, err := client.JoinMUCNoHistory(room, nick); err != nil {
		return &session.TransportError{Err: err}
	}
	return nil
}

// Recv blocks for the next mappable stanza. IQ and other stanza types are
// consumed silently.
func (c *Conn) Recv() (session.Event, error) {
	client, err := c.current()
	if err != nil {
		return session.Event{}, err
	}

	for {
		stanza, err := client.Recv()
		if err != nil {
			return session.Event{}, &session.TransportError{Err: err}
		}

		switch v := stanza.(type) {
		case xmpp.Chat:
			if ev, ok := mapChat(v); ok {
				return ev, nil
			}
		case xmpp.Presence:
			if ev, ok := mapPresence(v); ok {
				return ev, nil
			}
		}
	}
}

// mapChat reduces a chat stanza to an Event.
func mapChat(v xmpp.Chat) (session.Event, bool) {
	bare, nick := splitJID(v.Remote)

	switch v.Type {
	case "groupchat":
		return session.Event{
			Kind:    session.KindMessage,
			Room:    bare,
			Nick:    nick,
			Text:    v.Text,
			History: !v.Stamp.IsZero(),
		}, true
	case "chat", "":
		if v.Text == "" {
			return session.Event{}, false
		}
		return session.Event{
			Kind:   session.KindMessage,
			From:   bare,
			Nick:   nick,
			Text:   v.Text,
			Direct: true,
		}, true
	case "error":
		return session.Event{
			Kind: session.KindError,
			Room: bare,
			From: bare,
			Text: v.Text,
		}, true
	}
	return session.Event{}, false
}

// mapPresence reduces a presence stanza to an Event. Presences without a
// resource (bare server presences) are dropped.
func mapPresence(v xmpp.Presence) (session.Event, bool) {
	bare, nick := splitJID(v.From)
	if nick == "" {
		return session.Event{}, false
	}
	return session.Event{
		Kind: session.KindPresence,
		Room: bare,
		Nick: nick,
		Left: v.Type == "unavailable",
	}, true
}

// Send delivers one outbound message. The session layer serializes calls.
func (c *Conn) Send(out session.Outbound) error {
	client, err := c.current()
	if err != nil {
		return err
	}
	typ := "groupchat"
	if out.Direct {
		typ = "chat"
	}
	if _, err := client.Send(xmpp.Chat{Remote: out.To, Type: typ, Text: out.Text}); err != nil {
		return &session.TransportError{Err: err}
	}
	return nil
}

// Close tears down the client. Safe to call while Recv is blocked; the
// pending Recv returns an error.
func (c *Conn) Close() error {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.mu.Unlock()
	if client == nil {
		return nil
	}
	return client.Close()
}

// splitJID splits "node@domain/resource" into bare JID and resource.
func splitJID(jid string) (bare, resource string) {
	if i := strings.Index(jid, "/"); i >= 0 {
		return jid[:i], jid[i+1:]
	}
	return jid, ""
}
