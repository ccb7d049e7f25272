package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// printJSON writes the value as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printScheduleTable renders allocated tasks in a fixed-width table.
func printScheduleTable(tasks []domain.ScheduledTask) {
	if len(tasks) == 0 {
		fmt.Println("  (nothing scheduled)")
		return
	}
	fmt.Printf("  %-3s %-36s %-8s %6s %6s\n", "#", "TASK", "PRIORITY", "ALLOC", "PCT")
	for _, st := range tasks {
		marker := ""
		if st.Partial {
			marker = " (partial)"
		}
		fmt.Printf("  %-3d %-36s %-8s %5dm %5.0f%%%s\n",
			st.ScheduleOrder,
			truncate(st.Title, 36),
			st.Priority.String(),
			st.AllocatedTime,
			st.CompletionPercentage,
			marker,
		)
	}
}

// printUnscheduled lists the tasks that did not fit.
func printUnscheduled(tasks []domain.Task) {
	if len(tasks) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  Unscheduled (%d):\n", len(tasks))
	for _, t := range tasks {
		fmt.Printf("    - %s (%dm, %s)\n", t.Title, t.EstimatedTime, t.Priority.String())
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
