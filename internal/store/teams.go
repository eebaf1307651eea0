package store

import (
	"database/sql"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

func (db *DB) UpsertTeam(t model.Team) error {
	_, err := db.Exec(
		`INSERT INTO teams (id, name, capacity) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, capacity = excluded.capacity`,
		t.ID, t.Name, t.Capacity,
	)
	if err != nil {
		return fmt.Errorf("upserting team: %w", err)
	}
	return nil
}

func (db *DB) ListTeams() ([]model.Team, error) {
	rows, err := db.Query("SELECT id, name, capacity FROM teams ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (db *DB) UpsertPerson(p model.Person) error {
	_, err := db.Exec(
		`INSERT INTO people (id, name, team_id, role_id, employment_type, is_active)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, team_id = excluded.team_id, role_id = excluded.role_id,
			employment_type = excluded.employment_type, is_active = excluded.is_active`,
		p.ID, p.Name, nullable(p.TeamID), nullable(p.RoleID), string(p.EmploymentType), p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upserting person: %w", err)
	}
	return nil
}

func (db *DB) ListPeople() ([]model.Person, error) {
	rows, err := db.Query(
		"SELECT id, name, team_id, role_id, employment_type, is_active FROM people ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		var p model.Person
		var teamID, roleID sql.NullString
		var employment string
		if err := rows.Scan(&p.ID, &p.Name, &teamID, &roleID, &employment, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		p.TeamID = teamID.String
		p.RoleID = roleID.String
		p.EmploymentType = model.EmploymentType(employment)
		people = append(people, p)
	}
	return people, rows.Err()
}

func (db *DB) UpsertRole(r model.Role) error {
	_, err := db.Exec(
		`INSERT INTO roles (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		r.ID, r.Name,
	)
	if err != nil {
		return fmt.Errorf("upserting role: %w", err)
	}
	return nil
}

func (db *DB) ListRoles() ([]model.Role, error) {
	rows, err := db.Query("SELECT id, name FROM roles ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("querying roles: %w", err)
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		var r model.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

// nullable turns the empty string into NULL so optional references stay
// unset in the schema.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
