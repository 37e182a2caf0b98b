package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marcus/alertkit/internal/config"
	"github.com/marcus/alertkit/internal/output"
	"github.com/marcus/alertkit/pkg/alert"
)

const defaultThemeFile = ".alertkit/theme.toml"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage defaults and themes",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.JSON(map[string]interface{}{
			"project": project,
			"config":  appConfig,
			"paths":   projectPaths(),
		})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change saved defaults",
	Example: `  alertkit config set --category warning --duration 4
  alertkit config set --theme ""`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *appConfig
		flags := cmd.Flags()

		if flags.Changed("category") {
			v, _ := flags.GetString("category")
			if _, err := alert.ParseCategory(v); v != "" && err != nil {
				output.Error("%v", err)
				return err
			}
			cfg.Category = v
		}
		if flags.Changed("animation") {
			v, _ := flags.GetString("animation")
			if _, err := alert.ParseAnimationStyle(v); v != "" && err != nil {
				output.Error("%v", err)
				return err
			}
			cfg.Animation = v
		}
		if flags.Changed("duration") {
			v, _ := flags.GetInt("duration")
			if v < 0 {
				err := fmt.Errorf("duration must not be negative: %d", v)
				output.Error("%v", err)
				return err
			}
			cfg.DurationSeconds = v
		}
		if flags.Changed("theme") {
			cfg.ThemeFile, _ = flags.GetString("theme")
		}
		if flags.Changed("journal") {
			cfg.JournalPath, _ = flags.GetString("journal")
		}

		if err := config.Save(getBaseDir(), &cfg); err != nil {
			output.Error("failed to save config: %v", err)
			return err
		}
		*appConfig = cfg
		output.Success("SAVED %s", config.File(getBaseDir()))
		return nil
	},
}

var configInitThemeCmd = &cobra.Command{
	Use:   "init-theme [path]",
	Short: "Write a theme file with every default spelled out",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := getBaseDir()
		path := defaultThemeFile
		if len(args) == 1 {
			path = args[0]
		}
		abs := path
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(base, path)
		}

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(abs); err == nil && !force {
			err := fmt.Errorf("%s already exists (use --force to overwrite)", path)
			output.Error("%v", err)
			return err
		}

		if err := config.SaveTheme(abs, config.DefaultTheme()); err != nil {
			output.Error("failed to write theme: %v", err)
			return err
		}

		if noSet, _ := cmd.Flags().GetBool("no-set"); !noSet {
			cfg := *appConfig
			cfg.ThemeFile = path
			if err := config.Save(base, &cfg); err != nil {
				output.Error("failed to save config: %v", err)
				return err
			}
			*appConfig = cfg
		}

		output.Success("WROTE %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitThemeCmd)

	configSetCmd.Flags().String("category", "", "default category")
	configSetCmd.Flags().String("animation", "", "default entrance animation")
	configSetCmd.Flags().Int("duration", 0, "default auto-dismiss seconds (0 = never)")
	configSetCmd.Flags().String("theme", "", "theme file")
	configSetCmd.Flags().String("journal", "", "journal database path")

	configInitThemeCmd.Flags().Bool("force", false, "overwrite an existing file")
	configInitThemeCmd.Flags().Bool("no-set", false, "do not make it the configured theme")
}
