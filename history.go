package anisotropy

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
)

// History is a SQLite database recording every conversion performed
type History struct {
	db *sql.DB
}

// Entry is a single recorded conversion
type Entry struct {
	ID     int64
	SHA1   string
	Input  string
	From   Encoding
	To     Encoding
	Output string
	Width  int
	Height int
}

// NewHistory opens, creating if necessary, the history database in file
func NewHistory(file string) (*History, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, input TEXT NOT NULL, from_encoding TEXT NOT NULL, to_encoding TEXT NOT NULL, output TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &History{
		db: db,
	}, nil
}

// Close closes the database
func (h *History) Close() error {
	return h.db.Close()
}

// Record adds e to the database and returns its ID
func (h *History) Record(e Entry) (int64, error) {
	result, err := h.db.Exec("INSERT INTO conversion (sha1, input, from_encoding, to_encoding, output, width, height) VALUES (?, ?, ?, ?, ?, ?, ?)", e.SHA1, e.Input, e.From.String(), e.To.String(), e.Output, e.Width, e.Height)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Entries returns every recorded conversion, oldest first
func (h *History) Entries() ([]Entry, error) {
	rows, err := h.db.Query("SELECT id, sha1, input, from_encoding, to_encoding, output, width, height FROM conversion ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var from, to string
		if err := rows.Scan(&e.ID, &e.SHA1, &e.Input, &from, &to, &e.Output, &e.Width, &e.Height); err != nil {
			return nil, err
		}
		if e.From, err = ParseEncoding(from); err != nil {
			return nil, err
		}
		if e.To, err = ParseEncoding(to); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// FindBySHA1 returns the most recent conversion of an input with the given
// hash to the given encoding, or nil if there isn't one
func (h *History) FindBySHA1(sha string, to Encoding) (*Entry, error) {
	var e Entry
	var from string
	switch err := h.db.QueryRow("SELECT id, sha1, input, from_encoding, output, width, height FROM conversion WHERE sha1 = ? AND to_encoding = ? ORDER BY id DESC LIMIT 1", sha, to.String()).Scan(&e.ID, &e.SHA1, &e.Input, &from, &e.Output, &e.Width, &e.Height); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		e.To = to
		if e.From, err = ParseEncoding(from); err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, err
	}
}
