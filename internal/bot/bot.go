// Package bot wires the session, router, policy, and model store into the
// running automaton. The receive loop only classifies and enqueues;
// training and generation run on worker goroutines so a slow model never
// stalls delivery of subsequent inbound events.
package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"parrot/internal/chain"
	"parrot/internal/config"
	"parrot/internal/policy"
	"parrot/internal/router"
	"parrot/internal/session"
	"parrot/internal/store"
)

// Session is the slice of the session manager the bot depends on.
type Session interface {
	Run(ctx context.Context) error
	Events() <-chan session.Event
	Send(out session.Outbound) error
}

// defaultWorkers bounds concurrent train/generate work.
const defaultWorkers = 4

// job is one classified message handed to the worker pool.
type job struct {
	id  string
	in  router.Inbound
	dec policy.Decision
}

// Bot is the top-level automaton.
type Bot struct {
	cfg     *config.Config
	sess    Session
	store   *store.Store
	rt      *router.Router
	pol     *policy.Policy
	log     *zap.Logger
	jobs    chan job
	workers int
}

// New wires a bot from its components.
func New(cfg *config.Config, sess Session, st *store.Store, rt *router.Router, pol *policy.Policy, log *zap.Logger) *Bot {
	return &Bot{
		cfg:     cfg,
		sess:    sess,
		store:   st,
		rt:      rt,
		pol:     pol,
		log:     log,
		jobs:    make(chan job, 256),
		workers: defaultWorkers,
	}
}

// Run operates the bot until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return b.sess.Run(ctx) })
	g.Go(func() error { return b.consume(ctx) })
	for i := 0; i < b.workers; i++ {
		g.Go(func() error { return b.work(ctx) })
	}
	g.Go(func() error { return b.snapshotLoop(ctx) })

	return g.Wait()
}

// consume drains the session event stream. It never does model work
// itself; messages are enqueued for the workers, and when the queue is
// full the message is dropped rather than blocking the receive path.
func (b *Bot) consume(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-b.sess.Events():
			if !ok {
				return nil
			}
			in, ok := b.rt.Route(ev)
			if !ok {
				continue
			}
			j := job{id: uuid.NewString(), in: in, dec: b.pol.Decide(in)}
			select {
			case b.jobs <- j:
			default:
				b.log.Warn("worker queue full, dropping message",
					zap.String("scope", in.Scope))
			}
		}
	}
}

// work runs queued jobs until shutdown.
func (b *Bot) work(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case j := <-b.jobs:
			b.handle(ctx, j)
		}
	}
}

// handle trains on the message and, when the policy asked for it, sends a
// reply. Both halves degrade on failure; nothing here may crash or stall
// the process.
func (b *Bot) handle(ctx context.Context, j job) {
	log := b.log.With(
		zap.String("job", j.id),
		zap.String("scope", j.in.Scope))

	if err := b.store.Train(ctx, j.in.Scope, j.in.Sender, j.in.Text); err != nil {
		// Dropped training data is acceptable; say so loudly and move on.
		log.Error("training write failed, message not recorded", zap.Error(err))
	}

	switch j.dec.Action {
	case policy.ActionNone:
		return
	case policy.ActionCanned:
		b.reply(log, j.in, j.dec.Text)
	case policy.ActionStats:
		b.reply(log, j.in, fmt.Sprintf("I know %d words!", b.store.Tokens(j.in.Scope)))
	case policy.ActionGenerate:
		text, err := b.store.Generate(j.in.Scope, j.dec.Seed)
		switch {
		case errors.Is(err, chain.ErrEmptyModel), errors.Is(err, chain.ErrNoOutput):
			log.Debug("nothing to say yet", zap.Error(err))
		case err != nil:
			log.Warn("generation failed", zap.Error(err))
		default:
			b.reply(log, j.in, text)
		}
	}
}

// reply sends one message back where the trigger came from. Best-effort:
// a send during a reconnect window is dropped, not retried.
func (b *Bot) reply(log *zap.Logger, in router.Inbound, text string) {
	if text == "" {
		return
	}
	out := session.Outbound{To: in.Room, Text: text}
	if in.Direct {
		out.To = in.Sender
		out.Direct = true
	}
	if err := b.sess.Send(out); err != nil {
		if errors.Is(err, session.ErrNotConnected) {
			log.Debug("reply dropped, session reconnecting")
			return
		}
		log.Warn("reply send failed", zap.Error(err))
		return
	}
	log.Info("replied", zap.String("to", out.To), zap.Int("chars", len(text)))
}

// snapshotLoop periodically persists the chain cache so cold starts skip
// most of the corpus replay.
func (b *Bot) snapshotLoop(ctx context.Context) error {
	interval := b.cfg.SnapshotInterval()
	if interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := b.store.Snapshot(ctx); err != nil {
				b.log.Warn("chain cache snapshot failed", zap.Error(err))
			}
		}
	}
}
