package store

import (
	"database/sql"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

func (db *DB) UpsertProject(p model.Project) error {
	_, err := db.Exec(
		`INSERT INTO projects (id, name, status) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, status = excluded.status`,
		p.ID, p.Name, string(p.Status),
	)
	if err != nil {
		return fmt.Errorf("upserting project: %w", err)
	}
	return nil
}

func (db *DB) ListProjects() ([]model.Project, error) {
	rows, err := db.Query("SELECT id, name, status FROM projects ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var status string
		if err := rows.Scan(&p.ID, &p.Name, &status); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p.Status = model.ProjectStatus(status)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (db *DB) UpsertEpic(e model.Epic) error {
	_, err := db.Exec(
		`INSERT INTO epics (id, project_id, name, assigned_team_id, estimated_effort)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			project_id = excluded.project_id, name = excluded.name,
			assigned_team_id = excluded.assigned_team_id, estimated_effort = excluded.estimated_effort`,
		e.ID, nullable(e.ProjectID), e.Name, nullable(e.AssignedTeamID), e.EstimatedEffort,
	)
	if err != nil {
		return fmt.Errorf("upserting epic: %w", err)
	}
	return nil
}

func (db *DB) ListEpics() ([]model.Epic, error) {
	rows, err := db.Query(
		"SELECT id, project_id, name, assigned_team_id, estimated_effort FROM epics ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying epics: %w", err)
	}
	defer rows.Close()

	var epics []model.Epic
	for rows.Next() {
		var e model.Epic
		var projectID, teamID sql.NullString
		if err := rows.Scan(&e.ID, &projectID, &e.Name, &teamID, &e.EstimatedEffort); err != nil {
			return nil, fmt.Errorf("scanning epic: %w", err)
		}
		e.ProjectID = projectID.String
		e.AssignedTeamID = teamID.String
		epics = append(epics, e)
	}
	return epics, rows.Err()
}
