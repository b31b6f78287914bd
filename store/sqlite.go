package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sevenuz/cake/models"
	"github.com/sevenuz/cake/types"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	children TEXT NOT NULL,             -- JSON array of ids
	parents TEXT NOT NULL,              -- JSON array of ids
	tags TEXT NOT NULL,                 -- JSON array
	timetrack TEXT NOT NULL,            -- JSON array of unix seconds
	content TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	last_modified INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);
`

const metaLastWrite = "last_write"

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}

func loadSQLite(path string) (*Store, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query(`SELECT id, children, parents, tags, timetrack, content, timestamp, last_modified FROM items`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	doc := &Document{Items: make(map[string]*models.Item)}
	for rows.Next() {
		var item models.Item
		var children, parents, tags, timetrack string
		if err := rows.Scan(&item.ID, &children, &parents, &tags, &timetrack, &item.Content, &item.Timestamp, &item.LastModified); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		for _, col := range []struct {
			name string
			raw  string
			dst  any
		}{
			{"children", children, &item.Children},
			{"parents", parents, &item.Parents},
			{"tags", tags, &item.Tags},
			{"timetrack", timetrack, &item.Timetrack},
		} {
			if err := json.Unmarshal([]byte(col.raw), col.dst); err != nil {
				return nil, types.NewParseError(item.ID, "malformed "+col.name+" column", err)
			}
		}
		doc.Items[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	err = db.QueryRow(`SELECT value FROM meta WHERE key = ?`, metaLastWrite).Scan(&doc.LastWrite)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query last write: %w", err)
	}
	return fromDocument(doc), nil
}

func saveSQLite(path string, s *Store) (err error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO items (id, children, parents, tags, timetrack, content, timestamp, last_modified) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, id := range s.IDs() {
		item := s.items[id]
		cols := make([]string, 0, 4)
		for _, v := range []any{item.Children, item.Parents, item.Tags, item.Timetrack} {
			raw, mErr := json.Marshal(v)
			if mErr != nil {
				err = fmt.Errorf("marshal columns of %s: %w", id, mErr)
				return err
			}
			cols = append(cols, string(raw))
		}
		if _, err = stmt.Exec(id, cols[0], cols[1], cols[2], cols[3], item.Content, item.Timestamp, item.LastModified); err != nil {
			return fmt.Errorf("insert %s: %w", id, err)
		}
	}

	if _, err = tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, metaLastWrite, s.lastWrite); err != nil {
		return fmt.Errorf("store last write: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
