package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"funknotes/internal/application"
	"funknotes/internal/domain"
	"funknotes/internal/ports"

	_ "modernc.org/sqlite"
)

// FormatName is the settings value selecting this codec
const FormatName = "sqlite"

const schemaVersion = "1"

const schema = `
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS project (
		name TEXT NOT NULL,
		idx INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS objects (
		id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL UNIQUE
	);
	CREATE TABLE IF NOT EXISTS items (
		object_id INTEGER NOT NULL REFERENCES objects(id),
		position INTEGER NOT NULL,
		timestamp TEXT NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (object_id, position)
	);
	CREATE TABLE IF NOT EXISTS history (
		object_id INTEGER NOT NULL REFERENCES objects(id),
		position INTEGER NOT NULL,
		action TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (object_id, position)
	);
`

// Codec implements ports.ProjectCodec with one SQLite database per project
type Codec struct{}

// Ensure Codec implements ProjectCodec
var _ ports.ProjectCodec = (*Codec)(nil)

// NewCodec creates a new SQLite codec
func NewCodec() *Codec {
	return &Codec{}
}

// Extension returns ".db"
func (c *Codec) Extension() string { return ".db" }

// Format returns "sqlite"
func (c *Codec) Format() string { return FormatName }

// Load reads a project database
func (c *Codec) Load(path string) (*domain.Project, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &application.NotFoundError{Kind: "project file", Name: path}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	p, err := readProject(db)
	if err != nil {
		return nil, &application.CorruptError{Path: path, Reason: err.Error()}
	}
	return p, nil
}

// Save builds a fresh database next to path and renames it into place
func (c *Codec) Save(path string, p *domain.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp database: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := writeDatabase(tmpName, p); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func writeDatabase(path string, p *domain.Project) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to setup database: %w", err)
	}

	sqlTx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	tx := &projectTx{tx: sqlTx}

	if err := tx.writeProject(p); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to write project: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project: %w", err)
	}
	return db.Close()
}

func readProject(db *sql.DB) (*domain.Project, error) {
	var version string
	if err := db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version); err != nil {
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return nil, fmt.Errorf("unsupported schema version %q", version)
	}

	p := &domain.Project{}
	if err := db.QueryRow(`SELECT name, idx FROM project LIMIT 1`).Scan(&p.Name, &p.Index); err != nil {
		return nil, fmt.Errorf("read project header: %w", err)
	}

	rows, err := db.Query(`SELECT id, name FROM objects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("read objects: %w", err)
	}
	byID := make(map[int64]*domain.Object)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return nil, err
		}
		obj, err := p.AddObject(name)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("duplicate object '%s'", name)
		}
		byID[id] = obj
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := readItems(db, byID); err != nil {
		return nil, err
	}
	if err := readHistory(db, byID); err != nil {
		return nil, err
	}
	return p, nil
}

func readItems(db *sql.DB, byID map[int64]*domain.Object) error {
	rows, err := db.Query(`SELECT object_id, timestamp, text FROM items ORDER BY object_id, position`)
	if err != nil {
		return fmt.Errorf("read items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			objectID int64
			item     domain.Item
		)
		if err := rows.Scan(&objectID, &item.Timestamp, &item.Text); err != nil {
			return err
		}
		obj, ok := byID[objectID]
		if !ok {
			return fmt.Errorf("item refers to unknown object %d", objectID)
		}
		obj.Items = append(obj.Items, item)
	}
	return rows.Err()
}

func readHistory(db *sql.DB, byID map[int64]*domain.Object) error {
	rows, err := db.Query(`SELECT object_id, action, timestamp, text FROM history ORDER BY object_id, position`)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			objectID int64
			action   string
			entry    domain.HistoryEntry
		)
		if err := rows.Scan(&objectID, &action, &entry.Timestamp, &entry.Text); err != nil {
			return err
		}
		entry.Action = domain.Action(strings.TrimSpace(action))
		if !entry.Action.Valid() {
			return fmt.Errorf("unknown history action %q", action)
		}
		obj, ok := byID[objectID]
		if !ok {
			return fmt.Errorf("history refers to unknown object %d", objectID)
		}
		obj.History = append(obj.History, entry)
	}
	return rows.Err()
}
