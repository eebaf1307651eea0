package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

func (db *DB) UpsertCycle(c model.Cycle) error {
	_, err := db.Exec(
		`INSERT INTO cycles (id, type, name, start_date, end_date, parent_cycle_id, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			type = excluded.type, name = excluded.name,
			start_date = excluded.start_date, end_date = excluded.end_date,
			parent_cycle_id = excluded.parent_cycle_id, status = excluded.status`,
		c.ID, string(c.Type), c.Name,
		c.StartDate.UTC().Format(time.RFC3339),
		c.EndDate.UTC().Format(time.RFC3339),
		nullable(c.ParentCycleID), string(c.Status),
	)
	if err != nil {
		return fmt.Errorf("upserting cycle: %w", err)
	}
	return nil
}

func (db *DB) ListCycles() ([]model.Cycle, error) {
	return db.queryCycles("SELECT id, type, name, start_date, end_date, parent_cycle_id, status FROM cycles ORDER BY start_date ASC")
}

// GetCycle returns the cycle with the given id, or nil when absent.
func (db *DB) GetCycle(id string) (*model.Cycle, error) {
	cycles, err := db.queryCycles(
		"SELECT id, type, name, start_date, end_date, parent_cycle_id, status FROM cycles WHERE id = ?",
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(cycles) == 0 {
		return nil, nil
	}
	return &cycles[0], nil
}

func (db *DB) queryCycles(query string, args ...interface{}) ([]model.Cycle, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cycles: %w", err)
	}
	defer rows.Close()

	var cycles []model.Cycle
	for rows.Next() {
		var c model.Cycle
		var cycleType, status, startStr, endStr string
		var parentID sql.NullString

		if err := rows.Scan(&c.ID, &cycleType, &c.Name, &startStr, &endStr, &parentID, &status); err != nil {
			return nil, fmt.Errorf("scanning cycle: %w", err)
		}

		c.Type = model.CycleType(cycleType)
		c.Status = model.CycleStatus(status)
		c.ParentCycleID = parentID.String

		if t, err := time.Parse(time.RFC3339, startStr); err == nil {
			c.StartDate = t
		}
		if t, err := time.Parse(time.RFC3339, endStr); err == nil {
			c.EndDate = t
		}

		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}
