package model

import "time"

// CycleType distinguishes quarters from the iterations nested inside them.
type CycleType string

const (
	CycleQuarterly CycleType = "quarterly"
	CycleIteration CycleType = "iteration"
)

type CycleStatus string

const (
	CycleStatusPlanning CycleStatus = "planning"
	CycleStatusActive   CycleStatus = "active"
	CycleStatusClosed   CycleStatus = "closed"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

type EmploymentType string

const (
	EmploymentPermanent  EmploymentType = "permanent"
	EmploymentContractor EmploymentType = "contractor"
)

type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"` // hours per week
}

type Person struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	TeamID         string         `json:"teamId,omitempty"`
	RoleID         string         `json:"roleId,omitempty"`
	EmploymentType EmploymentType `json:"employmentType"`
	IsActive       bool           `json:"isActive"`
}

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Project struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Status ProjectStatus `json:"status"`
}

// Epic is a unit of project work. ProjectID is empty for run work;
// AssignedTeamID is empty until a team picks the epic up.
type Epic struct {
	ID              string  `json:"id"`
	ProjectID       string  `json:"projectId,omitempty"`
	Name            string  `json:"name"`
	AssignedTeamID  string  `json:"assignedTeamId,omitempty"`
	EstimatedEffort float64 `json:"estimatedEffort"`
}

// Cycle is a planning period. Quarterly cycles contain iteration cycles
// that point back via ParentCycleID; iterations are addressed by their
// 1-based position within the quarter, not by their own id.
type Cycle struct {
	ID            string      `json:"id"`
	Type          CycleType   `json:"type"`
	Name          string      `json:"name"`
	StartDate     time.Time   `json:"startDate"`
	EndDate       time.Time   `json:"endDate"`
	ParentCycleID string      `json:"parentCycleId,omitempty"`
	Status        CycleStatus `json:"status"`
}

type RunWorkCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Allocation assigns a percentage of a team's capacity to an epic or a
// run-work category for one iteration of a quarter. Exactly one of
// EpicID and RunWorkCategoryID is set.
type Allocation struct {
	ID                string  `json:"id"`
	TeamID            string  `json:"teamId"`
	CycleID           string  `json:"cycleId"` // quarter id
	IterationNumber   int     `json:"iterationNumber"`
	Percentage        float64 `json:"percentage"`
	EpicID            string  `json:"epicId,omitempty"`
	RunWorkCategoryID string  `json:"runWorkCategoryId,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// IsRunWork reports whether the allocation targets a run-work category
// rather than a project epic.
func (a Allocation) IsRunWork() bool {
	return a.EpicID == "" && a.RunWorkCategoryID != ""
}

func (t CycleType) IsValid() bool {
	switch t {
	case CycleQuarterly, CycleIteration:
		return true
	default:
		return false
	}
}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectCompleted, ProjectCancelled:
		return true
	default:
		return false
	}
}
