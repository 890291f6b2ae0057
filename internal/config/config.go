// Package config loads and validates parrot configuration.
// Configuration is read once at startup from a YAML file; there is no
// hot-reload. Secrets may be supplied via environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all parrot configuration.
type Config struct {
	// XMPP account settings
	Account AccountConfig `yaml:"account"`

	// Rooms to join
	Rooms []RoomConfig `yaml:"rooms"`

	// Embedded database
	Database DatabaseConfig `yaml:"database"`

	// Markov chain engine
	Chain ChainConfig `yaml:"chain"`

	// Reply policy
	Reply ReplyConfig `yaml:"reply"`

	// Session reconnect behavior
	Session SessionConfig `yaml:"session"`
}

// AccountConfig configures the XMPP account and server connection.
type AccountConfig struct {
	JID      string `yaml:"jid"`
	Password string `yaml:"password"`
	Server   string `yaml:"server"` // host:port, defaults to the JID domain on 5222
	Nick     string `yaml:"nick"`   // default nick for rooms that do not set one

	// DirectTLS dials TLS immediately (port 5223 style) instead of STARTTLS.
	DirectTLS bool `yaml:"direct_tls"`
	Debug     bool `yaml:"debug"` // raw stanza logging from the XMPP library
}

// RoomConfig configures one MUC room.
type RoomConfig struct {
	Room string `yaml:"room"` // bare JID, e.g. chat@conference.example.org
	Nick string `yaml:"nick"` // per-room nick override
}

// DatabaseConfig configures the embedded SQLite store.
type DatabaseConfig struct {
	Path             string `yaml:"path"`
	SnapshotInterval string `yaml:"snapshot_interval"` // chain cache snapshot cadence
}

// ChainConfig configures the Markov chain engine.
type ChainConfig struct {
	Order     int `yaml:"order"`      // ngram order of the chain
	MaxTokens int `yaml:"max_tokens"` // hard cap on generated tokens
}

// ReplyConfig configures when and how the bot speaks up.
type ReplyConfig struct {
	// Probability of replying to an arbitrary eligible room message.
	Probability float64 `yaml:"probability"`

	// Cooldown between unprompted replies in one room.
	Cooldown string `yaml:"cooldown"`

	// Keyword quips ("jabber", "dad") fire with this probability.
	QuipProbability float64 `yaml:"quip_probability"`
	JabberCooldown  string  `yaml:"jabber_cooldown"`
	DadCooldown     string  `yaml:"dad_cooldown"`

	// RepoURL is the answer to the directed "repo"/"code" command.
	RepoURL string `yaml:"repo_url"`
}

// SessionConfig configures the reconnect backoff.
// Reconnect attempts are unbounded; only the interval is capped.
type SessionConfig struct {
	BackoffInitial string `yaml:"backoff_initial"`
	BackoffMax     string `yaml:"backoff_max"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:             "parrot.db",
			SnapshotInterval: "5m",
		},
		Chain: ChainConfig{
			Order:     2,
			MaxTokens: 64,
		},
		Reply: ReplyConfig{
			Probability:     0.01,
			Cooldown:        "300s",
			QuipProbability: 0.5,
			JabberCooldown:  "120s",
			DadCooldown:     "300s",
			RepoURL:         "https://github.com/moparisthebest/ash",
		},
		Session: SessionConfig{
			BackoffInitial: "2s",
			BackoffMax:     "5m",
		},
	}
}

// Load reads the config file at path, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets secrets come from the environment instead of the
// config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PARROT_JID"); v != "" {
		c.Account.JID = v
	}
	if v := os.Getenv("PARROT_PASSWORD"); v != "" {
		c.Account.Password = v
	}
}

// Validate checks the configuration for startup-fatal problems.
func (c *Config) Validate() error {
	if c.Account.JID == "" {
		return fmt.Errorf("account.jid is required")
	}
	if !strings.Contains(c.Account.JID, "@") {
		return fmt.Errorf("account.jid %q is not a bare JID", c.Account.JID)
	}
	if c.Account.Password == "" {
		return fmt.Errorf("account.password is required (or set PARROT_PASSWORD)")
	}
	if len(c.Rooms) == 0 {
		return fmt.Errorf("no rooms specified")
	}
	for i, r := range c.Rooms {
		if !strings.Contains(r.Room, "@") {
			return fmt.Errorf("rooms[%d].room %q is not a bare JID", i, r.Room)
		}
	}
	if c.Reply.Probability < 0 || c.Reply.Probability > 1 {
		return fmt.Errorf("reply.probability must be in [0,1], got %v", c.Reply.Probability)
	}
	if c.Reply.QuipProbability < 0 || c.Reply.QuipProbability > 1 {
		return fmt.Errorf("reply.quip_probability must be in [0,1], got %v", c.Reply.QuipProbability)
	}
	if c.Chain.Order < 1 {
		return fmt.Errorf("chain.order must be >= 1, got %d", c.Chain.Order)
	}
	if c.Chain.MaxTokens < 1 {
		return fmt.Errorf("chain.max_tokens must be >= 1, got %d", c.Chain.MaxTokens)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	for _, d := range []struct{ name, val string }{
		{"database.snapshot_interval", c.Database.SnapshotInterval},
		{"reply.cooldown", c.Reply.Cooldown},
		{"reply.jabber_cooldown", c.Reply.JabberCooldown},
		{"reply.dad_cooldown", c.Reply.DadCooldown},
		{"session.backoff_initial", c.Session.BackoffInitial},
		{"session.backoff_max", c.Session.BackoffMax},
	} {
		if d.val == "" {
			continue
		}
		if _, err := time.ParseDuration(d.val); err != nil {
			return fmt.Errorf("%s: invalid duration %q", d.name, d.val)
		}
	}
	return nil
}

// Localpart returns the node part of the account JID.
func (c *Config) Localpart() string {
	if i := strings.Index(c.Account.JID, "@"); i > 0 {
		return c.Account.JID[:i]
	}
	return ""
}

// Domain returns the domain part of the account JID.
func (c *Config) Domain() string {
	if i := strings.Index(c.Account.JID, "@"); i >= 0 {
		return c.Account.JID[i+1:]
	}
	return c.Account.JID
}

// ServerAddr returns the XMPP server address, defaulting to the JID domain
// on the standard client port.
func (c *Config) ServerAddr() string {
	if c.Account.Server != "" {
		return c.Account.Server
	}
	return c.Domain() + ":5222"
}

// NickFor resolves the nick to use in a room: per-room override, then the
// account-level nick, then the JID localpart, then "parrot".
func (c *Config) NickFor(room RoomConfig) string {
	if room.Nick != "" {
		return room.Nick
	}
	if c.Account.Nick != "" {
		return c.Account.Nick
	}
	if lp := c.Localpart(); lp != "" {
		return lp
	}
	return "parrot"
}

// duration parses a duration string, falling back to def when the string is
// empty. Validate rejects malformed values at startup.
func duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

// SnapshotInterval returns the chain cache snapshot cadence.
func (c *Config) SnapshotInterval() time.Duration {
	return duration(c.Database.SnapshotInterval, 5*time.Minute)
}

// ReplyCooldown returns the unprompted-reply cooldown per room.
func (c *Config) ReplyCooldown() time.Duration {
	return duration(c.Reply.Cooldown, 300*time.Second)
}

// JabberQuipCooldown returns the "jabber" quip cooldown per room.
func (c *Config) JabberQuipCooldown() time.Duration {
	return duration(c.Reply.JabberCooldown, 120*time.Second)
}

// DadQuipCooldown returns the "dad" quip cooldown per room.
func (c *Config) DadQuipCooldown() time.Duration {
	return duration(c.Reply.DadCooldown, 300*time.Second)
}

// BackoffInitial returns the first reconnect delay.
func (c *Config) BackoffInitial() time.Duration {
	return duration(c.Session.BackoffInitial, 2*time.Second)
}

// BackoffMax returns the reconnect delay ceiling.
func (c *Config) BackoffMax() time.Duration {
	return duration(c.Session.BackoffMax, 5*time.Minute)
}
