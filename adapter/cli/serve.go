package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Start the TaskFlow HTTP API and serve until interrupted.

The listen address comes from TASKFLOW_HTTP_ADDR (default 0.0.0.0:8080).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.StartServer == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}
		return app.StartServer(cmd.Context())
	},
}

func init() {
	AddCommand(serveCmd)
}
