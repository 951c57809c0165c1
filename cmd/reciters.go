package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ayahgrab/ayah-grabber/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	saveDefaultReciterID string

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	recitersCmd = &cobra.Command{
		Use:   "reciters",
		Short: "List the available reciters",
		Long: `Lists the reciter directory from the remote service.

When the directory cannot be fetched, a built-in list of 5 well-known
reciters is shown instead. The configured default reciter is marked
with an asterisk.

Use '--save-default' to persist a reciter into the configuration file:

ayah-grabber reciters --save-default 4`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteRecitersCommand(cmd.Context(), appConfig, saveDefaultReciterID)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	recitersCmd.Flags().StringVar(
		&saveDefaultReciterID,
		"save-default",
		"",
		"save the given reciter ID as the default in the configuration file.")

	rootCmd.AddCommand(recitersCmd)
}
