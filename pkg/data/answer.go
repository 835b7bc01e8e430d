package data

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
)

const (
	insertAnswerSQL = `INSERT INTO answer (day, half, input_path, input_hash, result, solved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(day, half, input_hash) DO UPDATE SET
			input_path = excluded.input_path,
			result = excluded.result,
			solved_at = excluded.solved_at
	`

	selectAnswerSQL = `SELECT day, half, input_path, input_hash, result, solved_at
		FROM answer
		WHERE (? = 0 OR day = ?)
		ORDER BY solved_at DESC, day, half
		LIMIT ?
	`

	// fixed width so that solved_at sorts lexically
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// Answer is one journaled solution.
type Answer struct {
	Day       int       `json:"day" yaml:"day"`
	Half      int       `json:"half" yaml:"half"`
	InputPath string    `json:"input_path" yaml:"input_path"`
	InputHash string    `json:"input_hash" yaml:"input_hash"`
	Result    int       `json:"result" yaml:"result"`
	SolvedAt  time.Time `json:"solved_at" yaml:"solved_at"`
}

// HashInput returns the hex encoded SHA-256 of the puzzle input.
func HashInput(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// SaveAnswer records a; answers for the same day, half and input replace each other.
func SaveAnswer(db *sql.DB, a *Answer) error {
	if db == nil {
		return errDBNotInitialized
	}
	if a == nil {
		return errors.New("answer required")
	}
	if a.Day < 1 || (a.Half != 1 && a.Half != 2) {
		return errors.Errorf("invalid answer day: %d, half: %d", a.Day, a.Half)
	}
	if a.InputHash == "" {
		return errors.New("input hash required")
	}
	if a.SolvedAt.IsZero() {
		a.SolvedAt = time.Now()
	}

	stmt, err := db.Prepare(insertAnswerSQL)
	if err != nil {
		return errors.Wrap(err, "failed to prepare answer insert statement")
	}
	defer stmt.Close()

	if _, err = stmt.Exec(a.Day, a.Half, a.InputPath, a.InputHash, a.Result, a.SolvedAt.UTC().Format(timeLayout)); err != nil {
		return errors.Wrapf(err, "failed to insert answer for day %d", a.Day)
	}
	return nil
}

// QueryAnswers lists answers newest first. Day 0 matches every day.
func QueryAnswers(db *sql.DB, day, limit int) ([]*Answer, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if limit <= 0 {
		limit = QueryLimitDefault
	}

	rows, err := db.Query(selectAnswerSQL, day, day, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query answers")
	}
	defer rows.Close()

	list := make([]*Answer, 0)
	for rows.Next() {
		a := &Answer{}
		var solvedAt string
		if err := rows.Scan(&a.Day, &a.Half, &a.InputPath, &a.InputHash, &a.Result, &solvedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan answer row")
		}
		if a.SolvedAt, err = time.Parse(timeLayout, solvedAt); err != nil {
			return nil, errors.Wrapf(err, "invalid solved_at value: %s", solvedAt)
		}
		list = append(list, a)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate answer rows")
	}
	return list, nil
}
