package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ayahgrab/ayah-grabber/internal/app"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP front end",
		Long: `Starts a small web server with a form for picking a verse range and
a reciter. Submitting the form downloads the range and returns the
merged audio file. One download job runs at a time.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteServeCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	serveCmd.Flags().StringP(
		"listen",
		"l",
		"",
		"address to listen on, for example: ':8080'.")

	rootCmd.AddCommand(serveCmd)
}
