// Command parrot is an XMPP chat bot that learns a Markov model from room
// traffic and occasionally talks back.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"parrot/internal/bot"
	"parrot/internal/chain"
	"parrot/internal/config"
	"parrot/internal/policy"
	"parrot/internal/router"
	"parrot/internal/session"
	"parrot/internal/session/xmppconn"
	"parrot/internal/store"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "parrot",
	Short: "parrot - a markov chain XMPP chat bot",
	Long: `parrot joins XMPP multi-user chat rooms, learns a statistical
language model from everything said there, and occasionally replies with
generated text. Address it by nick for a guaranteed response.

State lives in a single SQLite database; deleting it resets the bot's
vocabulary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "parrot.yml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// run wires the components and serves until a shutdown signal. Startup
// failures (bad config, database open failure) exit non-zero; transport
// failures are retried forever and never reach this level.
func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	engine := chain.NewEngine(cfg.Chain.Order, cfg.Chain.MaxTokens, chain.Whitespace)

	st, err := store.New(cfg.Database.Path, engine, logger.Named("store"))
	if err != nil {
		return fmt.Errorf("failed to open model store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := st.Load(ctx); err != nil {
		return fmt.Errorf("failed to load model store: %w", err)
	}

	transport := xmppconn.New(xmppconn.Options{
		Server:    cfg.ServerAddr(),
		JID:       cfg.Account.JID,
		Password:  cfg.Account.Password,
		DirectTLS: cfg.Account.DirectTLS,
		Debug:     cfg.Account.Debug,
	})

	targets := make([]session.JoinTarget, 0, len(cfg.Rooms))
	nicks := make(map[string]string, len(cfg.Rooms))
	for _, r := range cfg.Rooms {
		nick := cfg.NickFor(r)
		targets = append(targets, session.JoinTarget{Room: r.Room, Nick: nick})
		nicks[r.Room] = nick
	}

	backoff := session.NewBackoff(cfg.BackoffInitial(), cfg.BackoffMax())
	sess := session.NewManager(transport, targets, backoff, logger.Named("session"))
	rt := router.New(cfg.Account.JID, nicks, logger.Named("router"))
	pol := policy.New(cfg, nil, nil)

	b := bot.New(cfg, sess, st, rt, pol, logger.Named("bot"))

	logger.Info("parrot starting",
		zap.String("jid", cfg.Account.JID),
		zap.Int("rooms", len(cfg.Rooms)),
		zap.String("db", cfg.Database.Path))

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("parrot shut down cleanly")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
