package services

import "strings"

// Phase is a coarse production stage. The French labels are the wire and
// export values used throughout the dashboard.
type Phase string

const (
	PhaseCadrage       Phase = "Cadrage"
	PhasePreproduction Phase = "Préproduction"
	PhaseProduction    Phase = "Production"
	PhaseStabilisation Phase = "Stabilisation"
	PhaseLivraison     Phase = "Livraison"
)

// DefaultTaskColor is used for roles missing from the color table.
const DefaultTaskColor = "#94a3b8"

// PlanningTask is one bar of the production timeline, projected from a quote
// line. Tasks are regenerated from the quote on every view and never stored.
type PlanningTask struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Phase        Phase    `json:"phase"`
	StartDay     float64  `json:"start_day"`
	Duration     float64  `json:"duration"`
	Dependencies []string `json:"dependencies"`
	Deliverable  string   `json:"deliverable"`
	Color        string   `json:"color"`
}

// ClassifyPhase maps a role designation to its production phase by substring
// matching, first match wins. Unrecognized roles fall into Production;
// Livraison is reserved and never auto-assigned.
func ClassifyPhase(role string) Phase {
	switch {
	case strings.Contains(role, "Chef de projet"),
		strings.Contains(role, "Scénariste"),
		strings.Contains(role, "Directeur artistique"):
		return PhaseCadrage
	case strings.Contains(role, "3D"), strings.Contains(role, "Cadreur"):
		return PhasePreproduction
	case strings.Contains(role, "QA"):
		return PhaseStabilisation
	default:
		return PhaseProduction
	}
}

// GeneratePlanning projects the ordered quote onto a sequential timeline.
// Lines with zero days produce no task; the remaining lines keep the quote's
// order and are stacked back to back from day 0, so the emitted intervals
// never overlap and leave no gaps.
func GeneratePlanning(lines []QuoteLine) []PlanningTask {
	tasks := make([]PlanningTask, 0, len(lines))

	var accumulated float64
	for _, l := range lines {
		if l.Days <= 0 {
			continue
		}
		tasks = append(tasks, PlanningTask{
			ID:           "task-" + l.ID,
			Name:         l.Role,
			Role:         l.Role,
			Phase:        ClassifyPhase(l.Role),
			StartDay:     accumulated,
			Duration:     l.Days,
			Dependencies: []string{},
			Deliverable:  "Livrable étape",
			Color:        RoleColor(l.Role),
		})
		accumulated += l.Days
	}
	return tasks
}

// PlanningTotalDays sums the task durations. Because the timeline is strictly
// sequential this also equals the end day of the last task.
func PlanningTotalDays(tasks []PlanningTask) float64 {
	var total float64
	for _, t := range tasks {
		total += t.Duration
	}
	return total
}
