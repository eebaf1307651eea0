// Package csvio moves planning data in and out of CSV files, the
// exchange format the surrounding spreadsheets use. Imports are
// header-addressed so column order in the file does not matter.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

var allocationHeader = []string{
	"id", "team_id", "cycle_id", "iteration_number", "percentage",
	"epic_id", "run_work_category_id", "notes",
}

var teamHeader = []string{"id", "name", "capacity"}

// ReadAllocations parses allocation rows. Rows without an id get a
// fresh one so re-exports stay addressable.
func ReadAllocations(r io.Reader) ([]model.Allocation, error) {
	rows, err := readRows(r, "iteration_number", "percentage", "team_id", "cycle_id")
	if err != nil {
		return nil, err
	}

	allocations := make([]model.Allocation, 0, len(rows))
	for i, row := range rows {
		iteration, err := strconv.Atoi(row["iteration_number"])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing iteration_number: %w", i+2, err)
		}
		percentage, err := strconv.ParseFloat(row["percentage"], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing percentage: %w", i+2, err)
		}

		a := model.Allocation{
			ID:                row["id"],
			TeamID:            row["team_id"],
			CycleID:           row["cycle_id"],
			IterationNumber:   iteration,
			Percentage:        percentage,
			EpicID:            row["epic_id"],
			RunWorkCategoryID: row["run_work_category_id"],
			Notes:             row["notes"],
		}
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if a.EpicID != "" && a.RunWorkCategoryID != "" {
			return nil, fmt.Errorf("row %d: allocation has both epic_id and run_work_category_id", i+2)
		}
		allocations = append(allocations, a)
	}
	return allocations, nil
}

// WriteAllocations writes allocations using the import header, so an
// export round-trips through ReadAllocations unchanged.
func WriteAllocations(w io.Writer, allocations []model.Allocation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(allocationHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, a := range allocations {
		record := []string{
			a.ID, a.TeamID, a.CycleID,
			strconv.Itoa(a.IterationNumber),
			strconv.FormatFloat(a.Percentage, 'f', -1, 64),
			a.EpicID, a.RunWorkCategoryID, a.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing allocation %s: %w", a.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTeams parses team rows.
func ReadTeams(r io.Reader) ([]model.Team, error) {
	rows, err := readRows(r, "name")
	if err != nil {
		return nil, err
	}

	teams := make([]model.Team, 0, len(rows))
	for i, row := range rows {
		capacity := 0
		if raw := row["capacity"]; raw != "" {
			capacity, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing capacity: %w", i+2, err)
			}
		}
		team := model.Team{ID: row["id"], Name: row["name"], Capacity: capacity}
		if team.ID == "" {
			team.ID = uuid.NewString()
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// WriteTeams writes team rows with the import header.
func WriteTeams(w io.Writer, teams []model.Team) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(teamHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, t := range teams {
		if err := cw.Write([]string{t.ID, t.Name, strconv.Itoa(t.Capacity)}); err != nil {
			return fmt.Errorf("writing team %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteConflicts flattens a detection report into one row per conflict
// for spreadsheet review.
func WriteConflicts(w io.Writer, result model.ConflictDetectionResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "type", "severity", "title", "description",
		"affected_teams", "affected_epics", "delay_risk", "quality_risk", "resource_waste",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range result.Conflicts {
		record := []string{
			c.ID, string(c.Type), string(c.Severity), c.Title, c.Description,
			strings.Join(c.AffectedTeams, ";"),
			strings.Join(c.AffectedEpics, ";"),
			strconv.FormatFloat(c.Impact.DelayRisk, 'f', -1, 64),
			strconv.FormatFloat(c.Impact.QualityRisk, 'f', -1, 64),
			strconv.FormatFloat(c.Impact.ResourceWaste, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing conflict %s: %w", c.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// readRows reads a header-addressed CSV into maps and verifies the
// required columns are present.
func readRows(r io.Reader, required ...string) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		row := make(map[string]string, len(header))
		for name, i := range index {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
