package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run statuses.
const (
	RunStatusOK     = "ok"
	RunStatusFailed = "failed"
)

// Run is one recorded analysis request.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	Model        string
	Topic        string
	URLCount     int
	ProductCount int
	QACount      int
	Status       string
	ErrorMessage string
	ArtifactPath string
}

// RecordRun inserts a run row and returns its ID.
func (db *DB) RecordRun(run Run) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO runs (model, topic, url_count, product_count, qa_count, status, error_message, artifact_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Model, run.Topic, run.URLCount, run.ProductCount, run.QACount,
		run.Status, run.ErrorMessage, run.ArtifactPath,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means
// all runs.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, model, topic, url_count, product_count,
		       qa_count, status, error_message, artifact_path
		FROM runs ORDER BY run_id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// GetRunByID returns a single run.
func (db *DB) GetRunByID(id int64) (Run, error) {
	rows, err := db.Query(`
		SELECT run_id, created_at, model, topic, url_count, product_count,
		       qa_count, status, error_message, artifact_path
		FROM runs WHERE run_id = ?`, id)
	if err != nil {
		return Run{}, fmt.Errorf("failed to get run %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return Run{}, fmt.Errorf("run %d not found", id)
	}
	return scanRun(rows)
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var topic, errMsg, artifact sql.NullString
	if err := rows.Scan(
		&run.RunID, &run.CreatedAt, &run.Model, &topic, &run.URLCount,
		&run.ProductCount, &run.QACount, &run.Status, &errMsg, &artifact,
	); err != nil {
		return Run{}, fmt.Errorf("failed to scan run row: %w", err)
	}
	run.Topic = topic.String
	run.ErrorMessage = errMsg.String
	run.ArtifactPath = artifact.String
	return run, nil
}
