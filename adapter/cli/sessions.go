package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

var (
	sessionLength int
	breakLength   int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Plan focus sessions with breaks",
	Long: `Break active tasks into fixed-length focus sessions with breaks.

Every fourth focus session is followed by a long break (three times the
short break). The plan never ends on a break.

Examples:
  taskflow sessions
  taskflow sessions --session-length 50 --break-length 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		tasks, err := app.ActivePlannerTasks(cmd.Context())
		if err != nil {
			return err
		}

		session, brk := sessionLength, breakLength
		if session == 0 {
			session = app.Config.SessionMinutes
		}
		if brk == 0 {
			brk = app.Config.BreakMinutes
		}

		sessions := app.Planner.PlanSessions(tasks, session, brk)

		if jsonOutput {
			return printJSON(map[string]any{"sessions": sessions})
		}

		if len(sessions) == 0 {
			fmt.Println("No active tasks to plan sessions for.")
			return nil
		}

		fmt.Println()
		focus := 0
		for _, s := range sessions {
			switch s.Kind {
			case domain.SessionFocus:
				focus++
				fmt.Printf("  %2d. focus %3dm  %s (%d/%d)\n",
					focus, s.Duration, s.TaskTitle, s.SessionIndex, s.SessionCount)
			case domain.SessionLongBreak:
				fmt.Printf("      long break %dm\n", s.Duration)
			default:
				fmt.Printf("      break %dm\n", s.Duration)
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionLength, "session-length", 0, "focus session length in minutes (default: configured)")
	sessionsCmd.Flags().IntVar(&breakLength, "break-length", 0, "short break length in minutes (default: configured)")
	AddCommand(sessionsCmd)
}
