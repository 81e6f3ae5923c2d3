// Package index persists analysis runs into a SQLite database so editors
// and tools can query symbols and diagnostics from past runs without
// re-analyzing the source.
package index

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/symbols"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	file        TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	error_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS symbols (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	scope   TEXT NOT NULL,
	kind    TEXT NOT NULL,
	name    TEXT NOT NULL,
	type    TEXT NOT NULL,
	line    INTEGER NOT NULL,
	col     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS diagnostics (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	line    INTEGER NOT NULL,
	col     INTEGER NOT NULL,
	code    TEXT NOT NULL,
	message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_symbols_run ON symbols(run_id);
CREATE INDEX IF NOT EXISTS idx_diagnostics_run ON diagnostics(run_id);
`

// Store is a handle to the symbol index database.
type Store struct {
	db *sql.DB
}

// Run is one recorded analysis.
type Run struct {
	ID         string
	File       string
	CreatedAt  string
	ErrorCount int
}

// SymbolRow is a flattened symbol as stored.
type SymbolRow struct {
	Scope string
	Kind  string
	Name  string
	Type  string
	Line  int
	Col   int
}

// DiagnosticRow is a stored diagnostic.
type DiagnosticRow struct {
	Line    int
	Col     int
	Code    string
	Message string
}

// Open opens (creating if needed) the index database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("index: creando esquema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records one analysis: the flattened scope tree and every
// diagnostic, under a fresh run id.
func (s *Store) SaveRun(file string, root *symbols.Scope, errs []*diagnostics.DiagnosticError) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs (id, file, created_at, error_count) VALUES (?, ?, ?, ?)`,
		runID, file, time.Now().UTC().Format(time.RFC3339), len(errs))
	if err != nil {
		return "", err
	}

	symStmt, err := tx.Prepare(`INSERT INTO symbols (run_id, scope, kind, name, type, line, col) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer symStmt.Close()

	if err := insertScope(symStmt, runID, root, scopeLabel(root)); err != nil {
		return "", err
	}

	diagStmt, err := tx.Prepare(`INSERT INTO diagnostics (run_id, line, col, code, message) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer diagStmt.Close()

	for _, e := range errs {
		if _, err := diagStmt.Exec(runID, e.Token.Line, e.Token.Column, string(e.Code), e.Message()); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

func scopeLabel(scope *symbols.Scope) string {
	if scope == nil {
		return ""
	}
	if scope.Name != "" {
		return fmt.Sprintf("%s %s", scope.Kind, scope.Name)
	}
	return scope.Kind.String()
}

func insertScope(stmt *sql.Stmt, runID string, scope *symbols.Scope, path string) error {
	if scope == nil {
		return nil
	}
	for _, sym := range scope.Symbols() {
		line, col := sym.Position()
		_, err := stmt.Exec(runID, path, sym.Category(), sym.SymbolName(), sym.SymbolType().String(), line, col)
		if err != nil {
			return err
		}
	}
	for _, child := range scope.Children {
		childPath := path + "/" + scopeLabel(child)
		if err := insertScope(stmt, runID, child, childPath); err != nil {
			return err
		}
	}
	return nil
}

// Runs lists recorded runs for a file, newest first.
func (s *Store) Runs(file string) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, file, created_at, error_count FROM runs WHERE file = ? ORDER BY created_at DESC`, file)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.File, &r.CreatedAt, &r.ErrorCount); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Symbols returns the stored symbols of a run in insertion order.
func (s *Store) Symbols(runID string) ([]SymbolRow, error) {
	rows, err := s.db.Query(
		`SELECT scope, kind, name, type, line, col FROM symbols WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var syms []SymbolRow
	for rows.Next() {
		var sr SymbolRow
		if err := rows.Scan(&sr.Scope, &sr.Kind, &sr.Name, &sr.Type, &sr.Line, &sr.Col); err != nil {
			return nil, err
		}
		syms = append(syms, sr)
	}
	return syms, rows.Err()
}

// Diagnostics returns the stored diagnostics of a run in insertion order.
func (s *Store) Diagnostics(runID string) ([]DiagnosticRow, error) {
	rows, err := s.db.Query(
		`SELECT line, col, code, message FROM diagnostics WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diags []DiagnosticRow
	for rows.Next() {
		var dr DiagnosticRow
		if err := rows.Scan(&dr.Line, &dr.Col, &dr.Code, &dr.Message); err != nil {
			return nil, err
		}
		diags = append(diags, dr)
	}
	return diags, rows.Err()
}
