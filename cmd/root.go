package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ayahgrab/ayah-grabber/internal/app"
	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	"github.com/ayahgrab/ayah-grabber/internal/version"
)

// rootCommandArgsCount is the number of positional arguments of the root
// command: the start and end verse references.
const rootCommandArgsCount = 2

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "ayah-grabber [flags] {start} {end}",
		Short: "Download a range of verse recitations as a single audio file.",
		Long: `Ayah Grabber is a CLI tool that downloads per-verse audio recitations
and merges a contiguous range of them into one MP3 file.

References use the form 'chapter:verse', e.g. '2:255'. Ranges may cross
chapter boundaries:

ayah-grabber 1:5 3:2

downloads the tail of chapter 1, all of chapter 2 and the head of chapter 3.`,
		Version:          version.Full(),
		Args:             cobra.ExactArgs(rootCommandArgsCount),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"reciter",
		"r",
		"",
		"reciter ID to download from (see the 'reciters' command).")

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save the merged file (the path will be created if it doesn't exist).")

	rootCmdFlags.String(
		"cache",
		"",
		"directory for the per-verse download cache.")

	rootCmdFlags.StringP(
		"name",
		"n",
		"",
		"override the output filename (the deterministic name is used by default).")

	rootCmdFlags.Bool(
		"replace",
		false,
		"re-download verses even when a cached copy exists.")

	rootCmdFlags.StringP(
		"speed-limit",
		"s",
		"",
		"set download speed limit, for example: 500 kbps, 1 mbps, 1.5 mbps.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = config.ValidateConfig(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Invalid configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("reciter"); flag != nil && flag.Changed {
		cfg.ReciterID, _ = flags.GetString("reciter")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("cache"); flag != nil && flag.Changed {
		cfg.CachePath, _ = flags.GetString("cache")
	}

	if flag := flags.Lookup("name"); flag != nil && flag.Changed {
		cfg.OutputFilename, _ = flags.GetString("name")
	}

	if flag := flags.Lookup("replace"); flag != nil && flag.Changed {
		cfg.ReplaceVerses, _ = flags.GetBool("replace")
	}

	if flag := flags.Lookup("speed-limit"); flag != nil && flag.Changed {
		cfg.DownloadSpeedLimit, _ = flags.GetString("speed-limit")
	}

	if flag := flags.Lookup("listen"); flag != nil && flag.Changed {
		cfg.ListenAddress, _ = flags.GetString("listen")
	}

	return config.ValidateConfig(cfg)
}
