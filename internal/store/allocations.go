package store

import (
	"database/sql"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

func (db *DB) UpsertAllocation(a model.Allocation) error {
	_, err := db.Exec(
		`INSERT INTO allocations (id, team_id, cycle_id, iteration_number, percentage, epic_id, run_work_category_id, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			team_id = excluded.team_id, cycle_id = excluded.cycle_id,
			iteration_number = excluded.iteration_number, percentage = excluded.percentage,
			epic_id = excluded.epic_id, run_work_category_id = excluded.run_work_category_id,
			notes = excluded.notes`,
		a.ID, a.TeamID, a.CycleID, a.IterationNumber, a.Percentage,
		nullable(a.EpicID), nullable(a.RunWorkCategoryID), nullable(a.Notes),
	)
	if err != nil {
		return fmt.Errorf("upserting allocation: %w", err)
	}
	return nil
}

func (db *DB) DeleteAllocation(id string) error {
	_, err := db.Exec("DELETE FROM allocations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting allocation: %w", err)
	}
	return nil
}

func (db *DB) ListAllocations() ([]model.Allocation, error) {
	return db.queryAllocations(
		`SELECT id, team_id, cycle_id, iteration_number, percentage, epic_id, run_work_category_id, notes
		 FROM allocations
		 ORDER BY cycle_id, iteration_number, team_id ASC`,
	)
}

func (db *DB) ListAllocationsForCycle(cycleID string) ([]model.Allocation, error) {
	return db.queryAllocations(
		`SELECT id, team_id, cycle_id, iteration_number, percentage, epic_id, run_work_category_id, notes
		 FROM allocations
		 WHERE cycle_id = ?
		 ORDER BY iteration_number, team_id ASC`,
		cycleID,
	)
}

func (db *DB) queryAllocations(query string, args ...interface{}) ([]model.Allocation, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying allocations: %w", err)
	}
	defer rows.Close()

	var allocations []model.Allocation
	for rows.Next() {
		var a model.Allocation
		var epicID, runWorkID, notes sql.NullString

		if err := rows.Scan(
			&a.ID, &a.TeamID, &a.CycleID, &a.IterationNumber, &a.Percentage,
			&epicID, &runWorkID, &notes,
		); err != nil {
			return nil, fmt.Errorf("scanning allocation: %w", err)
		}

		a.EpicID = epicID.String
		a.RunWorkCategoryID = runWorkID.String
		a.Notes = notes.String
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}

func (db *DB) UpsertRunWorkCategory(c model.RunWorkCategory) error {
	_, err := db.Exec(
		`INSERT INTO run_work_categories (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		c.ID, c.Name,
	)
	if err != nil {
		return fmt.Errorf("upserting run work category: %w", err)
	}
	return nil
}

func (db *DB) ListRunWorkCategories() ([]model.RunWorkCategory, error) {
	rows, err := db.Query("SELECT id, name FROM run_work_categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("querying run work categories: %w", err)
	}
	defer rows.Close()

	var categories []model.RunWorkCategory
	for rows.Next() {
		var c model.RunWorkCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning run work category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
