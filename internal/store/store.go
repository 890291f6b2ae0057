// Package store owns the per-scope language models and their durable
// backing. A scope is one conversational context (a room JID, or the
// reserved global scope every room also feeds). The corpus table is the
// single source of truth; in-memory chain states are a rebuildable view,
// optionally warmed from a serialized cache for faster cold start.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"parrot/internal/chain"
)

// GlobalScope pools training input from every room. Room scopes also fold
// into it, so sparsely trained rooms still have something to say.
const GlobalScope = "global"

// PersistenceError wraps a database failure during training. Callers log
// it loudly and keep serving; dropped training data is acceptable
// degradation, a crashed process is not.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store mediates all access to chain states. Chain states are never handed
// out by reference; train and generate run under per-scope locks so a
// generate always observes a consistent structure.
type Store struct {
	db     *sql.DB
	dbPath string
	engine *chain.Engine
	log    *zap.Logger

	mu     sync.RWMutex
	scopes map[string]*scopeState
}

// scopeState pairs one scope's chain with its own lock so training in one
// scope never blocks reads in another.
type scopeState struct {
	mu          sync.RWMutex
	state       *chain.State
	lastEntryID int64 // highest corpus row folded into state
}

// New opens (or creates) the SQLite database at path and prepares the
// schema. Load must be called before serving to warm the chain states.
func New(path string, engine *chain.Engine, log *zap.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{
		db:     db,
		dbPath: path,
		engine: engine,
		log:    log,
		scopes: make(map[string]*scopeState),
	}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	if err := RunMigrations(db, log); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	corpusTable := `
	CREATE TABLE IF NOT EXISTS corpus (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scope TEXT NOT NULL,
		nick TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		inserted_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_corpus_scope ON corpus(scope);
	`

	cacheTable := `
	CREATE TABLE IF NOT EXISTS chain_cache (
		scope TEXT PRIMARY KEY,
		state BLOB NOT NULL,
		entries INTEGER NOT NULL DEFAULT 0,
		tokens INTEGER NOT NULL DEFAULT 0,
		last_entry_id INTEGER NOT NULL DEFAULT 0,
		trained_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	for _, table := range []string{corpusTable, cacheTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Close snapshots the chain cache and closes the database.
func (s *Store) Close() error {
	if err := s.Snapshot(context.Background()); err != nil {
		s.log.Warn("chain cache snapshot on close failed", zap.Error(err))
	}
	return s.db.Close()
}

// DB exposes the underlying handle for diagnostics and tests.
func (s *Store) DB() *sql.DB { return s.db }

// scope returns the state holder for a scope, creating it on first use.
func (s *Store) scope(name string) *scopeState {
	s.mu.RLock()
	sc, ok := s.scopes[name]
	s.mu.RUnlock()
	if ok {
		return sc
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sc, ok = s.scopes[name]; ok {
		return sc
	}
	sc = &scopeState{state: s.engine.NewState()}
	s.scopes[name] = sc
	return sc
}

// Train durably records one message and folds it into the scope's chain.
// Room scopes additionally fold into the global scope. The corpus insert is
// write-through: if it fails, nothing is folded and a PersistenceError is
// returned so the caller can degrade without crashing.
func (s *Store) Train(ctx context.Context, scope, nick, text string) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO corpus (scope, nick, text) VALUES (?, ?, ?)`,
		scope, nick, text)
	if err != nil {
		return &PersistenceError{Op: "corpus insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return &PersistenceError{Op: "corpus insert id", Err: err}
	}

	s.fold(scope, id, text)
	if scope != GlobalScope {
		s.fold(GlobalScope, id, text)
	}
	return nil
}

// fold applies one text to a scope's chain under its write lock.
func (s *Store) fold(scope string, entryID int64, text string) {
	sc := s.scope(scope)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	s.engine.Train(sc.state, text)
	if entryID > sc.lastEntryID {
		sc.lastEntryID = entryID
	}
}

// Generate produces text from the scope's current chain state. Returns
// chain.ErrEmptyModel when the scope has no trained data.
func (s *Store) Generate(scope, seed string) (string, error) {
	sc := s.scope(scope)
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return s.engine.Generate(sc.state, seed)
}

// Tokens reports how many tokens a scope has been trained on.
func (s *Store) Tokens(scope string) int64 {
	sc := s.scope(scope)
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.state.Tokens()
}

// Entries reports how many corpus entries a scope has folded.
func (s *Store) Entries(scope string) int64 {
	sc := s.scope(scope)
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.state.Entries()
}

// Load reconstructs all chain states from the database: cached snapshots
// first, then a replay of any corpus rows newer than each snapshot. Called
// once at startup before the session goes live.
func (s *Store) Load(ctx context.Context) error {
	if err := s.loadCache(ctx); err != nil {
		// A broken cache is not fatal; the corpus replay below covers it.
		s.log.Warn("chain cache load failed, replaying full corpus", zap.Error(err))
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scope, text FROM corpus ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}
	defer rows.Close()

	var replayed int
	for rows.Next() {
		var (
			id    int64
			scope string
			text  string
		)
		if err := rows.Scan(&id, &scope, &text); err != nil {
			return fmt.Errorf("failed to scan corpus row: %w", err)
		}
		if s.replay(scope, id, text) {
			replayed++
		}
		if scope != GlobalScope && s.replay(GlobalScope, id, text) {
			replayed++
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("corpus replay: %w", err)
	}

	s.mu.RLock()
	scopes := len(s.scopes)
	s.mu.RUnlock()
	s.log.Info("model store loaded",
		zap.Int("scopes", scopes),
		zap.Int("replayed_entries", replayed))
	return nil
}

// replay folds a corpus row unless the scope's cached snapshot already
// covers it. Reports whether the row was folded.
func (s *Store) replay(scope string, id int64, text string) bool {
	sc := s.scope(scope)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if id <= sc.lastEntryID {
		return false
	}
	s.engine.Train(sc.state, text)
	sc.lastEntryID = id
	return true
}

// loadCache restores serialized chain states written by Snapshot.
func (s *Store) loadCache(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT scope, state, entries, tokens, last_entry_id FROM chain_cache`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			scope       string
			blob        []byte
			entries     int64
			tokens      int64
			lastEntryID int64
		)
		if err := rows.Scan(&scope, &blob, &entries, &tokens, &lastEntryID); err != nil {
			return err
		}
		state, err := s.engine.UnmarshalState(blob, entries, tokens)
		if err != nil {
			s.log.Warn("discarding undecodable chain cache entry",
				zap.String("scope", scope), zap.Error(err))
			continue
		}
		s.mu.Lock()
		s.scopes[scope] = &scopeState{state: state, lastEntryID: lastEntryID}
		s.mu.Unlock()
	}
	return rows.Err()
}

// Snapshot persists every scope's chain state to the cache table. Failures
// are surfaced but never fatal; the corpus remains the source of truth.
func (s *Store) Snapshot(ctx context.Context) error {
	s.mu.RLock()
	names := make([]string, 0, len(s.scopes))
	for name := range s.scopes {
		names = append(names, name)
	}
	s.mu.RUnlock()

	for _, name := range names {
		sc := s.scope(name)

		sc.mu.RLock()
		blob, err := chain.MarshalState(sc.state)
		entries := sc.state.Entries()
		tokens := sc.state.Tokens()
		lastID := sc.lastEntryID
		sc.mu.RUnlock()
		if err != nil {
			return fmt.Errorf("failed to serialize chain state for %s: %w", name, err)
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO chain_cache (scope, state, entries, tokens, last_entry_id, trained_at)
			VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(scope) DO UPDATE SET
				state = excluded.state,
				entries = excluded.entries,
				tokens = excluded.tokens,
				last_entry_id = excluded.last_entry_id,
				trained_at = CURRENT_TIMESTAMP`,
			name, blob, entries, tokens, lastID)
		if err != nil {
			return &PersistenceError{Op: "chain cache upsert", Err: err}
		}
	}
	return nil
}
