package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/alertkit/internal/config"
	"github.com/marcus/alertkit/internal/logging"
	"github.com/marcus/alertkit/internal/output"
	"github.com/marcus/alertkit/internal/workdir"
)

var (
	version string
	project workdir.Project

	appConfig *config.Config
	logger    = slog.Default()
	closeLog  = func() error { return nil }
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "alertkit",
	Short: "Animated modal alerts for the terminal",
	Long: `alertkit - present SCLAlertView-style modal alerts in the terminal.

Alerts have a category icon, title, subtitle, optional inputs and buttons,
an entrance animation and an optional auto-dismiss countdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		output.Stdout = cmd.OutOrStdout()
		output.Stderr = cmd.ErrOrStderr()

		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		appConfig = cfg

		logFile, _ := cmd.Flags().GetString("log-file")
		if logFile == "" {
			logFile = projectPaths().Log
		}
		debug, _ := cmd.Flags().GetBool("debug")

		l, closeFn, err := logging.Setup(logging.Options{Path: logFile, Debug: debug})
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		logger, closeLog = l, closeFn
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		if strings.HasPrefix(err.Error(), "unknown command") {
			if name := firstNonFlagArg(os.Args[1:]); name != "" {
				if s := rootCmd.SuggestionsFor(name); len(s) > 0 {
					fmt.Fprintf(os.Stderr, "Did you mean %q?\n", s[0])
				}
			}
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().String("log-file", "", "log file (default .alertkit/alertkit.log, \"-\" for stderr)")
	rootCmd.PersistentFlags().Bool("debug", false, "log at debug level")
}

func initBaseDir() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	project = workdir.Find(cwd)
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return project.Root
}

// projectPaths resolves the loaded config against the project root.
func projectPaths() workdir.Paths {
	return project.Paths(appConfig)
}

// firstNonFlagArg returns the first argument that is not a flag
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}
