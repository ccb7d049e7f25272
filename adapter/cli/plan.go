package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

var planSlots []string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan your day across time slots",
	Long: `Distribute active tasks across named time slots in order.

Without flags the default day shape is used: Morning Focus (120m),
Afternoon Work (90m), Evening Tasks (60m). Tasks that fit nowhere land
in the Unscheduled bucket.

Examples:
  taskflow plan
  taskflow plan --slot "Deep Work=180" --slot "Admin=45"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		tasks, err := app.ActivePlannerTasks(cmd.Context())
		if err != nil {
			return err
		}

		slots, err := parseSlots(planSlots)
		if err != nil {
			return err
		}

		plan := app.Planner.PlanDay(tasks, slots)

		if jsonOutput {
			return printJSON(plan)
		}

		fmt.Println()
		for _, slot := range plan.Slots {
			fmt.Printf("  %s (%dm)\n", slot.Slot.Name, slot.Slot.Minutes)
			fmt.Println("  " + strings.Repeat("-", 56))
			printScheduleTable(slot.Schedule.Tasks)
			fmt.Println()
		}
		if len(plan.Unscheduled) > 0 {
			fmt.Printf("  %s: %s\n\n", domain.UnscheduledSlotName,
				strings.Join(unscheduledTitles(plan.Unscheduled), ", "))
		}
		return nil
	},
}

// parseSlots converts repeated "Name=minutes" flags into slots. An empty
// list selects the default day shape.
func parseSlots(raw []string) ([]domain.Slot, error) {
	if len(raw) == 0 {
		return domain.DefaultSlots(), nil
	}

	slots := make([]domain.Slot, 0, len(raw))
	for _, r := range raw {
		name, minutesStr, found := strings.Cut(r, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid slot %q (use Name=minutes)", r)
		}
		minutes, err := strconv.Atoi(minutesStr)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid slot duration in %q (use Name=minutes)", r)
		}
		slots = append(slots, domain.Slot{Name: name, Minutes: minutes})
	}
	return slots, nil
}

func init() {
	planCmd.Flags().StringArrayVar(&planSlots, "slot", nil, `time slot as "Name=minutes" (repeatable)`)
	AddCommand(planCmd)
}
