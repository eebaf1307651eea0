package store

import (
	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// Snapshot is an immutable read of every entity collection, the shape
// the conflict engine and exporters consume.
type Snapshot struct {
	Teams             []model.Team
	People            []model.Person
	Roles             []model.Role
	Projects          []model.Project
	Epics             []model.Epic
	Cycles            []model.Cycle
	RunWorkCategories []model.RunWorkCategory
	Allocations       []model.Allocation
}

// LoadSnapshot reads all collections in one pass.
func (db *DB) LoadSnapshot() (*Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)

	if snap.Teams, err = db.ListTeams(); err != nil {
		return nil, err
	}
	if snap.People, err = db.ListPeople(); err != nil {
		return nil, err
	}
	if snap.Roles, err = db.ListRoles(); err != nil {
		return nil, err
	}
	if snap.Projects, err = db.ListProjects(); err != nil {
		return nil, err
	}
	if snap.Epics, err = db.ListEpics(); err != nil {
		return nil, err
	}
	if snap.Cycles, err = db.ListCycles(); err != nil {
		return nil, err
	}
	if snap.RunWorkCategories, err = db.ListRunWorkCategories(); err != nil {
		return nil, err
	}
	if snap.Allocations, err = db.ListAllocations(); err != nil {
		return nil, err
	}

	return &snap, nil
}
