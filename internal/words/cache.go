// internal/words/cache.go
//
// SQLite-backed cache for downloaded word lists.
// Responsibilities:
//   - Opening the cache database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Storing a word list with its BLAKE2b-256 digest, source and fetch time.
//   - Loading the list back and verifying the digest.

package words

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"

	"github.com/varshneyabhi/wordle/assets"
)

const cacheFile = "words.db"

var (
	// ErrCacheMiss means the cache holds no word list yet.
	ErrCacheMiss = errors.New("words: cache is empty")
	// ErrCacheCorrupt means the stored words do not match the recorded digest.
	ErrCacheCorrupt = errors.New("words: cache digest mismatch")
)

// Cache persists one word list in a SQLite database.
type Cache struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenCache opens (and creates if missing) <dir>/words.db and applies migrations.
func OpenCache(dir string, logger zerolog.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	dsn := filepath.Join(dir, cacheFile)
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	c := &Cache{db: db, log: logger.With().Str("cache", dsn).Logger()}
	if err := c.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the database handle.
func (c *Cache) Close() error { return c.db.Close() }

// migrate applies embedded migrations in lexical order, skipping those
// already recorded in _migrations. Each runs in its own transaction.
func (c *Cache) migrate() error {
	if _, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	migrations, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := c.db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.Name).Scan(&done)
		if err == nil {
			c.log.Debug().Str("migration", m.Name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := c.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.Name, err)
		}
		c.log.Debug().Str("migration", m.Name).Msg("applied")
	}
	return nil
}

// Words returns the cached list in sorted order.
// Returns ErrCacheMiss when nothing was stored and ErrCacheCorrupt when the
// words no longer match the recorded digest.
func (c *Cache) Words(ctx context.Context) ([]string, error) {
	var want string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key='digest'`).Scan(&want)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read digest: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, `SELECT word FROM words ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if digest(out) != want {
		return nil, ErrCacheCorrupt
	}
	return out, nil
}

// Store replaces the cached list. list must be sorted and free of duplicates.
func (c *Cache) Store(ctx context.Context, list []string, source string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM meta`); err != nil {
		return fmt.Errorf("clear meta: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words(word) VALUES (?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, w := range list {
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("insert %q: %w", w, err)
		}
	}

	meta := map[string]string{
		"digest":     digest(list),
		"source":     source,
		"fetched_at": time.Now().UTC().Format(time.RFC3339),
		"count":      strconv.Itoa(len(list)),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta(key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("insert meta %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit words: %w", err)
	}
	c.log.Info().Int("count", len(list)).Str("source", source).Msg("word list cached")
	return nil
}

// digest is the hex BLAKE2b-256 of the newline-joined list.
func digest(list []string) string {
	sum := blake2b.Sum256([]byte(strings.Join(list, "\n")))
	return hex.EncodeToString(sum[:])
}
