package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	naturaldate "github.com/tj/go-naturaldate"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/ai"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/config"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/conflict"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/csvio"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/notify"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/planning"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/store"
	"github.com/heymishy/plan-pulse-compass-sub009/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "planpulse",
	Short: "Resource-planning assistant with allocation conflict detection",
	Long:  "planpulse keeps teams, epics and quarterly allocations in a local database and statically analyzes each planning cycle for overallocation, sequencing, contention and timeline risks.",
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect allocation conflicts for a planning cycle",
	RunE:  runDetect,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse conflicts interactively",
	RunE:  runBrowse,
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Ask the configured AI model for a remediation plan",
	RunE:  runExplain,
}

var importCmd = &cobra.Command{
	Use:   "import {teams|allocations} <file.csv>",
	Short: "Import teams or allocations from CSV",
	Args:  cobra.ExactArgs(2),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export {allocations|conflicts|calendar} <file>",
	Short: "Export allocations or conflicts as CSV, or cycles as iCalendar",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport,
}

var cyclesCmd = &cobra.Command{
	Use:   "cycles",
	Short: "Manage planning cycles",
}

var cyclesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quarters and their iterations",
	RunE:  runCyclesList,
}

var cyclesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create a quarter and slice it into iterations",
	RunE:  runCyclesGenerate,
}

var cyclesSelectCmd = &cobra.Command{
	Use:   "select <cycle-id>",
	Short: "Set the default cycle for detect/browse/export",
	Args:  cobra.ExactArgs(1),
	RunE:  runCyclesSelect,
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams",
	RunE:  runTeams,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open config file in your editor",
	RunE:  runConfig,
}

func init() {
	detectCmd.Flags().String("cycle", "", "Cycle id to analyze (defaults to the selected cycle)")
	detectCmd.Flags().Bool("json", false, "Print the full report as JSON")
	detectCmd.Flags().Bool("notify", false, "Send a desktop notification when severe conflicts exist")

	browseCmd.Flags().String("cycle", "", "Cycle id to analyze (defaults to the selected cycle)")
	explainCmd.Flags().String("cycle", "", "Cycle id to analyze (defaults to the selected cycle)")
	exportCmd.Flags().String("cycle", "", "Cycle id to export (defaults to the selected cycle)")

	cyclesGenerateCmd.Flags().String("id", "", "Quarter id (derived from the name when empty)")
	cyclesGenerateCmd.Flags().String("name", "", "Quarter name, e.g. \"Q3 2026\"")
	cyclesGenerateCmd.Flags().String("start", "", "Start date: 2026-07-06 or natural language like \"first monday of july\"")
	cyclesGenerateCmd.Flags().Int("iterations", 0, "Iteration count (config default when 0)")
	cyclesGenerateCmd.Flags().Int("weeks", 0, "Iteration length in weeks (config default when 0)")
	cyclesGenerateCmd.MarkFlagRequired("name")
	cyclesGenerateCmd.MarkFlagRequired("start")

	cyclesCmd.AddCommand(cyclesListCmd)
	cyclesCmd.AddCommand(cyclesGenerateCmd)
	cyclesCmd.AddCommand(cyclesSelectCmd)

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveQuarter picks the cycle to analyze: the --cycle flag, then the
// selected cycle, then the only active quarter.
func resolveQuarter(db *store.DB, cycleID string) (*model.Cycle, error) {
	if cycleID == "" {
		selected, err := db.GetState("selected_cycle")
		if err != nil {
			return nil, err
		}
		cycleID = selected
	}
	if cycleID != "" {
		c, err := db.GetCycle(cycleID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("cycle %q not found — run 'planpulse cycles list'", cycleID)
		}
		return c, nil
	}

	cycles, err := db.ListCycles()
	if err != nil {
		return nil, err
	}
	var active []model.Cycle
	for _, c := range planning.Quarters(cycles) {
		if c.Status == model.CycleStatusActive {
			active = append(active, c)
		}
	}
	if len(active) == 1 {
		return &active[0], nil
	}
	return nil, fmt.Errorf("no cycle selected — pass --cycle or run 'planpulse cycles select'")
}

func detectForCycle(db *store.DB, cycleID string) (*model.Cycle, model.ConflictDetectionResult, error) {
	quarter, err := resolveQuarter(db, cycleID)
	if err != nil {
		return nil, model.ConflictDetectionResult{}, err
	}

	snap, err := db.LoadSnapshot()
	if err != nil {
		return nil, model.ConflictDetectionResult{}, err
	}

	iterations := planning.IterationsOf(snap.Cycles, quarter.ID)
	result := conflict.DetectAllocationConflicts(
		snap.Allocations, snap.Teams, snap.Epics, snap.Projects, snap.People,
		iterations, quarter.ID,
	)
	return quarter, result, nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	cycleID, _ := cmd.Flags().GetString("cycle")
	asJSON, _ := cmd.Flags().GetBool("json")
	doNotify, _ := cmd.Flags().GetBool("notify")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	quarter, result, err := detectForCycle(db, cycleID)
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printReport(quarter, result)
	}

	if doNotify {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cfg.Notifications.Enabled {
			minSeverity := model.ConflictSeverity(cfg.Notifications.MinSeverity)
			if !minSeverity.IsValid() {
				minSeverity = model.SeverityCritical
			}
			if err := notify.ConflictsFound(result, minSeverity); err != nil {
				fmt.Printf("Warning: %v\n", err)
			}
		}
	}

	return nil
}

func printReport(quarter *model.Cycle, result model.ConflictDetectionResult) {
	fmt.Printf("Conflicts for %s: %d total (critical %d, high %d, medium %d, low %d)\n",
		quarter.Name, result.Summary.Total,
		result.Summary.Critical, result.Summary.High,
		result.Summary.Medium, result.Summary.Low,
	)
	fmt.Printf("Risk score %d/100 · %d teams · %d epics affected\n\n",
		result.OverallRiskScore, result.AffectedTeamsCount, result.AffectedEpicsCount)

	if result.Summary.Total == 0 {
		fmt.Println("No conflicts detected.")
		return
	}

	for _, c := range result.Conflicts {
		fmt.Printf("  %s %-8s %-22s %s\n", conflict.TypeIcon(c.Type), c.Severity, c.Type, c.Title)
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cycleID, _ := cmd.Flags().GetString("cycle")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	quarter, result, err := detectForCycle(db, cycleID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewBrowser(quarter.Name, result))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	cycleID, _ := cmd.Flags().GetString("cycle")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.AI.APIKey == "" {
		return fmt.Errorf("no AI API key configured — set OPENAI_API_KEY or run 'planpulse config'")
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	quarter, result, err := detectForCycle(db, cycleID)
	if err != nil {
		return err
	}
	if result.Summary.Total == 0 {
		fmt.Printf("No conflicts in %s — nothing to explain.\n", quarter.Name)
		return nil
	}

	provider := ai.NewOpenAI(cfg.AI.APIKey, cfg.AI.Model, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	plan, err := provider.SuggestRemediation(ctx, result)
	if err != nil {
		return fmt.Errorf("getting remediation plan: %w", err)
	}

	fmt.Printf("%s\n\n", plan.Summary)
	for _, action := range plan.Actions {
		fmt.Printf("  %d. [%s] %s\n     %s\n", action.Priority, action.ConflictID, action.Action, action.Rationale)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	kind, path := args[0], args[1]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	switch kind {
	case "teams":
		teams, err := csvio.ReadTeams(f)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, t := range teams {
			if err := db.UpsertTeam(t); err != nil {
				return err
			}
		}
		fmt.Printf("Imported %d teams.\n", len(teams))
	case "allocations":
		allocations, err := csvio.ReadAllocations(f)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, a := range allocations {
			if err := db.UpsertAllocation(a); err != nil {
				return err
			}
		}
		fmt.Printf("Imported %d allocations.\n", len(allocations))
	default:
		return fmt.Errorf("unknown import kind %q (want teams or allocations)", kind)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	kind, path := args[0], args[1]
	cycleID, _ := cmd.Flags().GetString("cycle")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch kind {
	case "allocations":
		quarter, err := resolveQuarter(db, cycleID)
		if err != nil {
			return err
		}
		allocations, err := db.ListAllocationsForCycle(quarter.ID)
		if err != nil {
			return err
		}
		if err := csvio.WriteAllocations(f, allocations); err != nil {
			return err
		}
		fmt.Printf("Exported %d allocations for %s to %s.\n", len(allocations), quarter.Name, path)
	case "conflicts":
		quarter, result, err := detectForCycle(db, cycleID)
		if err != nil {
			return err
		}
		if err := csvio.WriteConflicts(f, result); err != nil {
			return err
		}
		fmt.Printf("Exported %d conflicts for %s to %s.\n", result.Summary.Total, quarter.Name, path)
	case "calendar":
		quarter, err := resolveQuarter(db, cycleID)
		if err != nil {
			return err
		}
		cycles, err := db.ListCycles()
		if err != nil {
			return err
		}
		iterations := planning.IterationsOf(cycles, quarter.ID)
		if err := planning.WriteCalendar(f, *quarter, iterations); err != nil {
			return err
		}
		fmt.Printf("Exported %s with %d iterations to %s.\n", quarter.Name, len(iterations), path)
	default:
		return fmt.Errorf("unknown export kind %q (want allocations, conflicts or calendar)", kind)
	}
	return nil
}

func runCyclesList(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	cycles, err := db.ListCycles()
	if err != nil {
		return err
	}
	quarters := planning.Quarters(cycles)
	if len(quarters) == 0 {
		fmt.Println("No cycles yet — run 'planpulse cycles generate'.")
		return nil
	}

	selected, err := db.GetState("selected_cycle")
	if err != nil {
		return err
	}

	for _, q := range quarters {
		marker := " "
		if q.ID == selected {
			marker = "*"
		}
		fmt.Printf("%s %s  %s  %s – %s  [%s]\n",
			marker, q.ID, q.Name,
			q.StartDate.Format("2006-01-02"), q.EndDate.Format("2006-01-02"), q.Status)
		for i, iteration := range planning.IterationsOf(cycles, q.ID) {
			fmt.Printf("    %d. %s  %s – %s\n",
				i+1, iteration.Name,
				iteration.StartDate.Format("2006-01-02"), iteration.EndDate.Format("2006-01-02"))
		}
	}
	return nil
}

// parseStartDate accepts ISO dates first, then natural language like
// "first monday of october".
func parseStartDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := naturaldate.Parse(s, time.Now(), naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing start date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func runCyclesGenerate(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")
	startRaw, _ := cmd.Flags().GetString("start")
	count, _ := cmd.Flags().GetInt("iterations")
	weeks, _ := cmd.Flags().GetInt("weeks")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if count == 0 {
		count = cfg.Planning.IterationsPerQuarter
	}
	if weeks == 0 {
		weeks = cfg.Planning.IterationWeeks
	}

	start, err := parseStartDate(startRaw)
	if err != nil {
		return err
	}
	if id == "" {
		id = slugify(name)
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	quarter := planning.NewQuarter(id, name, start)
	if err := db.UpsertCycle(quarter); err != nil {
		return err
	}
	iterations := planning.GenerateIterations(quarter, count, weeks)
	for _, iteration := range iterations {
		if err := db.UpsertCycle(iteration); err != nil {
			return err
		}
	}

	fmt.Printf("Created %s (%s) with %d iterations of %d weeks.\n", name, id, len(iterations), weeks)
	return nil
}

func runCyclesSelect(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	c, err := db.GetCycle(args[0])
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("cycle %q not found — run 'planpulse cycles list'", args[0])
	}

	if err := db.SetState("selected_cycle", c.ID); err != nil {
		return err
	}
	fmt.Printf("Selected %s (%s).\n", c.Name, c.ID)
	return nil
}

func runTeams(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	teams, err := db.ListTeams()
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		fmt.Println("No teams yet — run 'planpulse import teams <file.csv>'.")
		return nil
	}

	fmt.Printf("Found %d teams:\n\n", len(teams))
	for _, t := range teams {
		fmt.Printf("  %s  %-24s %dh/week\n", t.ID, t.Name, t.Capacity)
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	fmt.Printf("Opening %s with %s...\n", configPath, editor)

	proc := os.ProcAttr{
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}
	process, err := os.StartProcess(editor, []string{editor, configPath}, &proc)
	if err != nil {
		fmt.Printf("Could not open editor. Config file is at: %s\n", configPath)
		return nil
	}
	_, err = process.Wait()
	return err
}

// slugify lowercases and dashes a cycle name into an id, e.g.
// "Q3 2026" -> "q3-2026".
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	lastDash := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
			lastDash = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastDash = false
		default:
			if !lastDash {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
