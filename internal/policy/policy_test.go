package policy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"parrot/internal/config"
	"parrot/internal/router"
)

const testScope = "den@muc.example.org"

// testPolicy builds a policy with a fixed rng and a controllable clock.
// Probabilities are pinned to 1 so trigger tests only exercise keywords
// and cooldowns; individual tests dial them back down as needed.
func testPolicy(mutate func(*config.Config)) (*Policy, *time.Time) {
	cfg := config.Default()
	cfg.Reply.Probability = 1
	cfg.Reply.QuipProbability = 1
	if mutate != nil {
		mutate(cfg)
	}
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := New(cfg, rand.New(rand.NewSource(1)), func() time.Time { return clock })
	return p, &clock
}

func roomMsg(text string) router.Inbound {
	return router.Inbound{Scope: testScope, Room: testScope, Sender: "alice", Text: text, Nick: "parrot"}
}

func TestDirectedCommands(t *testing.T) {
	p, _ := testPolicy(func(cfg *config.Config) {
		cfg.Reply.RepoURL = "https://example.org/parrot"
	})

	tests := []struct {
		name string
		text string
		want Action
	}{
		{"Jabber", "jabber", ActionCanned},
		{"Dad", "dad", ActionCanned},
		{"Repo", "repo", ActionCanned},
		{"Code", "code", ActionCanned},
		{"Words", "words", ActionStats},
		{"CaseInsensitive", "  WORDS  ", ActionStats},
		{"Freeform", "tell me about cats", ActionGenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := roomMsg(tt.text)
			in.Directed = true
			dec := p.Decide(in)
			require.Equal(t, tt.want, dec.Action)
		})
	}
}

func TestDirectedJabberText(t *testing.T) {
	p, _ := testPolicy(nil)
	in := roomMsg("jabber")
	in.Directed = true
	require.Equal(t, XMPPNotJabber, p.Decide(in).Text)
}

func TestDirectedRepoText(t *testing.T) {
	p, _ := testPolicy(func(cfg *config.Config) {
		cfg.Reply.RepoURL = "https://example.org/parrot"
	})
	in := roomMsg("repo")
	in.Directed = true
	require.Equal(t, "https://example.org/parrot", p.Decide(in).Text)
}

func TestDirectedFreeformSeedsGeneration(t *testing.T) {
	p, _ := testPolicy(nil)
	in := roomMsg("tell me about cats")
	in.Directed = true
	dec := p.Decide(in)
	require.Equal(t, ActionGenerate, dec.Action)
	require.Equal(t, "tell me about cats", dec.Seed)
}

func TestDirectMessagesUseCommands(t *testing.T) {
	p, _ := testPolicy(nil)
	in := router.Inbound{Scope: "global", Sender: "bob@example.org", Text: "words", Direct: true}
	require.Equal(t, ActionStats, p.Decide(in).Action)
}

func TestMentionAlwaysGenerates(t *testing.T) {
	p, _ := testPolicy(func(cfg *config.Config) {
		// Even with every probabilistic trigger off, a mention replies.
		cfg.Reply.Probability = 0
		cfg.Reply.QuipProbability = 0
	})
	in := roomMsg("someone ask parrot about it")
	in.Mention = true
	dec := p.Decide(in)
	require.Equal(t, ActionGenerate, dec.Action)
	require.Equal(t, "someone ask parrot about it", dec.Seed)
}

func TestJabberQuipCooldown(t *testing.T) {
	p, clock := testPolicy(func(cfg *config.Config) {
		cfg.Reply.Probability = 0 // isolate the keyword trigger
	})

	dec := p.Decide(roomMsg("I still use Jabber at work"))
	require.Equal(t, ActionCanned, dec.Action)
	require.Equal(t, XMPPNotJabber, dec.Text)

	// Inside the window the trigger stays quiet.
	*clock = clock.Add(30 * time.Second)
	require.Equal(t, ActionNone, p.Decide(roomMsg("jabber again")).Action)

	// Past the window it fires again.
	*clock = clock.Add(2 * time.Minute)
	require.Equal(t, ActionCanned, p.Decide(roomMsg("jabber once more")).Action)
}

func TestDadQuipTrigger(t *testing.T) {
	p, _ := testPolicy(func(cfg *config.Config) {
		cfg.Reply.Probability = 0
	})

	dec := p.Decide(roomMsg("my dad used to say that"))
	require.Equal(t, ActionCanned, dec.Action)
	require.Contains(t, dadJokes, dec.Text)
}

func TestQuipCooldownsArePerScope(t *testing.T) {
	p, _ := testPolicy(func(cfg *config.Config) {
		cfg.Reply.Probability = 0
	})

	require.Equal(t, ActionCanned, p.Decide(roomMsg("jabber")).Action)
	require.Equal(t, ActionNone, p.Decide(roomMsg("jabber")).Action)

	other := roomMsg("jabber")
	other.Scope = "lounge@muc.example.org"
	other.Room = other.Scope
	require.Equal(t, ActionCanned, p.Decide(other).Action)
}

func TestQuipProbabilityZeroNeverFires(t *testing.T) {
	p, _ := testPolicy(func(cfg *config.Config) {
		cfg.Reply.Probability = 0
		cfg.Reply.QuipProbability = 0
	})

	for i := 0; i < 100; i++ {
		require.Equal(t, ActionNone, p.Decide(roomMsg("jabber dad jabber")).Action)
	}
}

func TestRandomInterjectionSplitsJokeAndModel(t *testing.T) {
	p, clock := testPolicy(func(cfg *config.Config) {
		cfg.Reply.Cooldown = "0s"
	})

	seen := make(map[Action]int)
	for i := 0; i < 200; i++ {
		*clock = clock.Add(time.Second)
		dec := p.Decide(roomMsg("just ordinary chatter"))
		seen[dec.Action]++
	}
	require.Positive(t, seen[ActionCanned], "joke half of the coin flip never fired")
	require.Positive(t, seen[ActionGenerate], "model half of the coin flip never fired")
	require.Zero(t, seen[ActionNone])
}

func TestRandomInterjectionHonorsCooldown(t *testing.T) {
	p, clock := testPolicy(nil)

	first := p.Decide(roomMsg("ordinary chatter"))
	require.NotEqual(t, ActionNone, first.Action)

	*clock = clock.Add(time.Minute)
	require.Equal(t, ActionNone, p.Decide(roomMsg("more chatter")).Action)

	*clock = clock.Add(5 * time.Minute)
	require.NotEqual(t, ActionNone, p.Decide(roomMsg("later chatter")).Action)
}

func TestKeywordMatchingIsCaseInsensitive(t *testing.T) {
	p, _ := testPolicy(func(cfg *config.Config) {
		cfg.Reply.Probability = 0
	})

	dec := p.Decide(roomMsg("JABBER was the old name"))
	require.Equal(t, ActionCanned, dec.Action)
	require.Equal(t, XMPPNotJabber, dec.Text)
}
