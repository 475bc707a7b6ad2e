package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Run records one generation invocation: the options snapshot and the
// outcome. The generated words themselves are not stored.
type Run struct {
	ID          int64
	CreatedAt   time.Time
	Inputs      []string
	Years       []string
	Separators  []string
	Leet        bool
	Case        bool
	Suffixes    bool
	MaxPerCombo int
	MaxWords    int
	WordCount   int
	Truncated   bool
	OutputPath  string
}

// Analysis records one strength analysis. Only the SHA-256 digest of the
// password is persisted.
type Analysis struct {
	ID             int64
	CreatedAt      time.Time
	PasswordSHA256 string
	Score          int
	EntropyBits    float64
	Warning        string
}

// Store persists runs and analyses in a SQLite database.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (or creates) the history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with single writer
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// HashPassword returns the hex SHA-256 digest used to record analyses.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// RecordRun inserts a run and returns its ID. A zero CreatedAt is set to
// the current time.
func (s *Store) RecordRun(ctx context.Context, run Run) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	inputs, err := json.Marshal(run.Inputs)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal inputs: %w", err)
	}
	years, err := json.Marshal(run.Years)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal years: %w", err)
	}
	separators, err := json.Marshal(run.Separators)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal separators: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			created_at, inputs, years, separators,
			leet, case_enabled, suffixes,
			max_per_combo, max_words,
			word_count, truncated, output_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.Format(time.RFC3339),
		string(inputs), string(years), string(separators),
		boolToInt(run.Leet), boolToInt(run.Case), boolToInt(run.Suffixes),
		run.MaxPerCombo, run.MaxWords,
		run.WordCount, boolToInt(run.Truncated), run.OutputPath,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first. A limit of 0 or
// less returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT id, created_at, inputs, years, separators,
		       leet, case_enabled, suffixes,
		       max_per_combo, max_words,
		       word_count, truncated, output_path
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run                       Run
			createdAt                 string
			inputs, years, separators string
			leet, caseEnabled         int
			suffixes, truncated       int
		)
		if err := rows.Scan(&run.ID, &createdAt, &inputs, &years, &separators,
			&leet, &caseEnabled, &suffixes,
			&run.MaxPerCombo, &run.MaxWords,
			&run.WordCount, &truncated, &run.OutputPath); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		run.Leet = leet != 0
		run.Case = caseEnabled != 0
		run.Suffixes = suffixes != 0
		run.Truncated = truncated != 0
		if err := json.Unmarshal([]byte(inputs), &run.Inputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inputs: %w", err)
		}
		if err := json.Unmarshal([]byte(years), &run.Years); err != nil {
			return nil, fmt.Errorf("failed to unmarshal years: %w", err)
		}
		if err := json.Unmarshal([]byte(separators), &run.Separators); err != nil {
			return nil, fmt.Errorf("failed to unmarshal separators: %w", err)
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// RecordAnalysis inserts an analysis record and returns its ID. A zero
// CreatedAt is set to the current time.
func (s *Store) RecordAnalysis(ctx context.Context, a Analysis) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (created_at, password_sha256, score, entropy_bits, warning)
		VALUES (?, ?, ?, ?, ?)`,
		a.CreatedAt.Format(time.RFC3339),
		a.PasswordSHA256, a.Score, a.EntropyBits, a.Warning,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	return res.LastInsertId()
}

// ListAnalyses returns the most recent analyses, newest first. A limit of
// 0 or less returns everything.
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT id, created_at, password_sha256, score, entropy_bits, warning
		FROM analyses ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var (
			a         Analysis
			createdAt string
		)
		if err := rows.Scan(&a.ID, &createdAt, &a.PasswordSHA256,
			&a.Score, &a.EntropyBits, &a.Warning); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
