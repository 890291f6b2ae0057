// Package policy decides whether and how the bot speaks. The decision
// function itself holds no protocol or model state; its only inputs are
// the normalized message, configuration, an injected random source, and a
// clock (for the per-room cooldown windows).
package policy

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"parrot/internal/config"
	"parrot/internal/router"
)

// Action says what the bot should do with a message.
type Action int

const (
	// ActionNone suppresses any reply.
	ActionNone Action = iota
	// ActionCanned replies with Decision.Text verbatim.
	ActionCanned
	// ActionGenerate asks the model for text seeded by Decision.Seed.
	ActionGenerate
	// ActionStats replies with the scope's trained word count.
	ActionStats
)

// Decision is the outcome for one message. Training happens regardless of
// the decision; this only controls the reply path.
type Decision struct {
	Action Action
	Text   string // canned reply body
	Seed   string // generation seed
}

// Policy evaluates the reply rules. Safe for concurrent use.
type Policy struct {
	cfg *config.Config
	now func() time.Time

	mu        sync.Mutex
	rng       *rand.Rand
	lastFired map[string]map[string]time.Time // scope -> trigger -> last fire
}

// New creates a policy. rng and now are injectable for deterministic
// tests; pass nil to use real randomness and the wall clock.
func New(cfg *config.Config, rng *rand.Rand, now func() time.Time) *Policy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Policy{
		cfg:       cfg,
		now:       now,
		rng:       rng,
		lastFired: make(map[string]map[string]time.Time),
	}
}

// Decide maps one inbound message to a reply decision. Priority order:
// directed/direct messages always get a reply attempt; then keyword quips
// under their cooldowns; then the configured low-probability interjection.
// The router has already dropped self-originated messages.
func (p *Policy) Decide(in router.Inbound) Decision {
	if in.Directed || in.Direct {
		return p.command(in.Text)
	}
	if in.Mention {
		return Decision{Action: ActionGenerate, Seed: in.Text}
	}

	body := strings.ToLower(in.Text)

	if p.shouldSend(in.Scope, "jabber", body, "jabber",
		p.cfg.JabberQuipCooldown(), p.cfg.Reply.QuipProbability) {
		return Decision{Action: ActionCanned, Text: XMPPNotJabber}
	}
	if p.shouldSend(in.Scope, "dad", body, "dad",
		p.cfg.DadQuipCooldown(), p.cfg.Reply.QuipProbability) {
		return Decision{Action: ActionCanned, Text: p.randomJoke()}
	}
	if p.shouldSend(in.Scope, "random", body, "",
		p.cfg.ReplyCooldown(), p.cfg.Reply.Probability) {
		// Coin flip between a joke and the model.
		if p.chance(0.5) {
			return Decision{Action: ActionCanned, Text: p.randomJoke()}
		}
		return Decision{Action: ActionGenerate, Seed: in.Text}
	}
	return Decision{Action: ActionNone}
}

// command handles a message addressed to the bot directly.
func (p *Policy) command(text string) Decision {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "jabber":
		return Decision{Action: ActionCanned, Text: XMPPNotJabber}
	case "dad":
		return Decision{Action: ActionCanned, Text: p.randomJoke()}
	case "repo", "code":
		return Decision{Action: ActionCanned, Text: p.cfg.Reply.RepoURL}
	case "words":
		return Decision{Action: ActionStats}
	default:
		return Decision{Action: ActionGenerate, Seed: text}
	}
}

// shouldSend gates a trigger on its cooldown window, an optional keyword,
// and a probability draw. Firing consumes the window.
func (p *Policy) shouldSend(scope, trigger, body, keyword string, cooldown time.Duration, pct float64) bool {
	if keyword != "" && !strings.Contains(body, keyword) {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	windows, ok := p.lastFired[scope]
	if !ok {
		windows = make(map[string]time.Time)
		p.lastFired[scope] = windows
	}
	if last, ok := windows[trigger]; ok && now.Sub(last) < cooldown {
		return false
	}
	if pct <= p.rng.Float64() {
		return false
	}
	windows[trigger] = now
	return true
}

// chance draws against pct under the policy lock.
func (p *Policy) chance(pct float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return pct > p.rng.Float64()
}

// randomJoke picks a dad joke under the policy lock.
func (p *Policy) randomJoke() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return dadJokes[p.rng.Intn(len(dadJokes))]
}
