// Package state persists the demo's pane setup between runs.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "rowdemo"
	dbFileName   = "rowdemo.db"
	saveDebounce = 500 * time.Millisecond
)

// PaneState is the saved form of one pane.
type PaneState struct {
	Title    string
	Fraction *float64 // nil means no declared fraction
	Color    string
}

// LayoutState is the saved form of the whole row.
type LayoutState struct {
	Spacing int
	Panes   []PaneState
}

// Manager owns the state database. Saves are debounced so fraction
// nudges held down on a key don't hammer the disk.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *LayoutState
}

func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveLayout(m.db, *pending)
	}
	return m.db.Close()
}

// GetLayout returns the saved layout, or nil on first run.
func (m *Manager) GetLayout() (*LayoutState, error) {
	return getLayout(m.db)
}

// SaveLayout records the layout, writing after a short debounce.
func (m *Manager) SaveLayout(layout LayoutState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &layout

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveLayout(m.db, *pending)
		}
	})
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS layout_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			spacing INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS panes (
			position INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			fraction REAL,
			color TEXT
		);
	`)
	return err
}

func getLayout(db *sql.DB) (*LayoutState, error) {
	var layout LayoutState
	err := db.QueryRow(`SELECT spacing FROM layout_state WHERE id = 1`).Scan(&layout.Spacing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT title, fraction, color FROM panes ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pane PaneState
		var fraction sql.NullFloat64
		var color sql.NullString
		if err := rows.Scan(&pane.Title, &fraction, &color); err != nil {
			return nil, err
		}
		if fraction.Valid {
			f := fraction.Float64
			pane.Fraction = &f
		}
		pane.Color = color.String
		layout.Panes = append(layout.Panes, pane)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &layout, nil
}

func saveLayout(db *sql.DB, layout LayoutState) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO layout_state (id, spacing) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET spacing = excluded.spacing
	`, layout.Spacing)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM panes`); err != nil {
		return err
	}
	for i, pane := range layout.Panes {
		var fraction any
		if pane.Fraction != nil {
			fraction = *pane.Fraction
		}
		_, err := tx.Exec(`INSERT INTO panes (position, title, fraction, color) VALUES (?, ?, ?, ?)`,
			i, pane.Title, fraction, pane.Color)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
