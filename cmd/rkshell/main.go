package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rkshell/internal/config"
	"rkshell/internal/logging"
	"rkshell/internal/shell"
)

type flags struct {
	configPath string
	theme      string
	noColor    bool
	logLevel   string
	logFile    string
	helpFile   string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "rkshell",
		Short: "RK Shell, a themed interactive shell with a fixed command set",
		Long: `rkshell reads commands from the terminal and prints each result in a
bordered, colored block. Type 'help' inside the shell to list the commands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(cmd, f)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "path to config.toml (default $XDG_CONFIG_HOME/rkshell/config.toml)")
	fl.StringVar(&f.theme, "theme", "", "theme name: classic, modern, bold or random")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fl.StringVar(&f.logFile, "log-file", "", "path of the session log file")
	fl.StringVar(&f.helpFile, "help-file", "", "path of the JSON help data")

	return cmd
}

func run(cmd *cobra.Command, f flags) (int, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return 1, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = f.theme
	}
	if f.noColor {
		cfg.Color = "never"
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if f.helpFile != "" {
		cfg.HelpFile = f.helpFile
	}
	if err := cfg.Validate(); err != nil {
		return 1, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logging.Init(logging.Options{
		Path:  cfg.LogFile,
		Level: cfg.LogLevel,
		Dev:   logging.DetectDev(),
	}); err != nil {
		return 1, fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	sh, err := shell.NewShell(cfg)
	if err != nil {
		logging.L().DPanicw("shell initialization failed", "error", err)
		return 1, err
	}

	code, err := sh.Start()
	if err != nil {
		logging.L().Errorw("session aborted", "error", err)
	}
	return code, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ rkshell: %v\n", err)
		os.Exit(1)
	}
}
