package data

import (
	"database/sql"

	"github.com/pkg/errors"
)

const QueryLimitDefault = 100

var stateQueries = map[string]string{
	"answers": "SELECT COUNT(*) FROM answer",
	"days":    "SELECT COUNT(DISTINCT day) FROM answer",
	"inputs":  "SELECT COUNT(DISTINCT input_hash) FROM answer",
}

// GetDataState returns the current state of the database.
func GetDataState(db *sql.DB) (map[string]int64, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	state := make(map[string]int64)
	for k, q := range stateQueries {
		var count int64
		if err := db.QueryRow(q).Scan(&count); err != nil {
			return nil, errors.Wrapf(err, "error getting %s count", k)
		}
		state[k] = count
	}

	return state, nil
}
