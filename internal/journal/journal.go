// Package journal provides SQLite-based persistence for release gate
// runs. It is an append-only record: the journal observes releases, it
// never gates them.
package journal

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/relgate/relgate/internal/errors"
	"github.com/relgate/relgate/internal/fs"
)

// Outcome values recorded for a gate run.
const (
	OutcomeTagged        = "tagged"         // gate passed and a tag was created
	OutcomeAlreadyTagged = "already-tagged" // gate passed, version was tagged before
	OutcomeWouldTag      = "would-tag"      // dry run, tagging skipped on purpose
	OutcomeBlocked       = "blocked"        // a precondition failed
	OutcomeFailed        = "failed"         // tagging was attempted and failed
)

// Entry is one recorded gate run.
type Entry struct {
	ID        int64
	Timestamp time.Time
	Project   string
	Branch    string
	Version   string
	Tag       string
	Commit    string
	Outcome   string
	Detail    string // failure reason or modified-file summary, free form
}

// Journal is the SQLite-backed release journal.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if necessary) the journal database at dbPath.
func Open(dbPath string) (*Journal, error) {
	if err := fs.CreateDirectory(filepath.Dir(dbPath), fs.DirStrict); err != nil {
		return nil, errors.ErrJournal("open", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.ErrJournal("open", fmt.Errorf("failed to open database: %w", err))
	}

	j := &Journal{db: db}
	if err := j.initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	return j.db.Close()
}

// initialize creates the database schema
func (j *Journal) initialize() error {
	schema := `
	-- Gate runs (append-only)
	CREATE TABLE IF NOT EXISTS releases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		project TEXT NOT NULL,
		branch TEXT NOT NULL,
		version TEXT NOT NULL,
		tag TEXT NOT NULL,
		commit_hash TEXT,
		outcome TEXT NOT NULL,
		detail TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_releases_tag ON releases(tag);
	`

	if _, err := j.db.Exec(schema); err != nil {
		return errors.ErrJournal("initialize", err)
	}
	return nil
}

// Record appends one gate run to the journal.
func (j *Journal) Record(e Entry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := j.db.Exec(`
		INSERT INTO releases (timestamp, project, branch, version, tag, commit_hash, outcome, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), e.Project, e.Branch, e.Version, e.Tag, e.Commit, e.Outcome, e.Detail,
	)
	if err != nil {
		return errors.ErrJournal("record", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(`
		SELECT id, timestamp, project, branch, version, tag, commit_hash, outcome, detail
		FROM releases
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.ErrJournal("recent", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Project, &e.Branch, &e.Version, &e.Tag, &e.Commit, &e.Outcome, &e.Detail); err != nil {
			return nil, errors.ErrJournal("recent", err)
		}
		if parsed, perr := time.Parse(time.RFC3339, ts); perr == nil {
			e.Timestamp = parsed
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrJournal("recent", err)
	}

	return entries, nil
}

// LastForTag returns the most recent entry for a tag, or nil if the tag
// has never been through the gate.
func (j *Journal) LastForTag(tag string) (*Entry, error) {
	row := j.db.QueryRow(`
		SELECT id, timestamp, project, branch, version, tag, commit_hash, outcome, detail
		FROM releases
		WHERE tag = ?
		ORDER BY id DESC
		LIMIT 1`, tag)

	var e Entry
	var ts string
	err := row.Scan(&e.ID, &ts, &e.Project, &e.Branch, &e.Version, &e.Tag, &e.Commit, &e.Outcome, &e.Detail)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.ErrJournal("lookup", err)
	}
	if parsed, perr := time.Parse(time.RFC3339, ts); perr == nil {
		e.Timestamp = parsed
	}
	return &e, nil
}
