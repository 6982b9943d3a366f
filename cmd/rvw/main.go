package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kardolus/reviewer/command"
	"github.com/kardolus/reviewer/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	GitCommit  string
	GitVersion string
)

var (
	rawMode   bool
	jsonMode  bool
	debugMode bool
)

func main() {
	rootCmd := newRootCommand(viper.New())

	if err := rootCmd.Execute(); err != nil {
		var exit *exitStatusError
		if errors.As(err, &exit) {
			os.Exit(exit.status)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rvw",
		Short:         "Run your project's linters, formatters and test suites",
		Long:          "rvw runs the review, format, install and prepare commands configured in .reviewer.yml for each of your tools.",
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyConfig, "", "Path to the tool configuration file")
	flags.String(config.KeyHistory, "", "Path to the history file")
	flags.String(config.KeyWorkDir, "", "Directory the tools run in")
	flags.Duration(config.KeyTimeout, 0, "Kill any single command running longer than this")
	flags.Duration("prepare-window", 6*time.Hour, "How long a prepare step stays fresh")
	flags.String(config.KeyStrategy, "", "Execution strategy: silent, passthrough or verbose")
	flags.BoolVar(&rawMode, "raw", false, "Stream tool output without any decoration")
	flags.BoolVar(&jsonMode, "json", false, "Print the run report as JSON")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")

	for _, key := range []string{config.KeyConfig, config.KeyHistory, config.KeyWorkDir, config.KeyTimeout, config.KeyStrategy} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	_ = v.BindPFlag(config.KeyPrepareWindow, flags.Lookup("prepare-window"))

	for _, ct := range command.Types {
		rootCmd.AddCommand(newRunCommand(v, ct))
	}
	rootCmd.AddCommand(newToolsCommand(v))

	return rootCmd
}

func newRunCommand(v *viper.Viper, ct command.Type) *cobra.Command {
	return &cobra.Command{
		Use:   string(ct) + " [tool|tag|failed]...",
		Short: runDescriptions[ct],
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(v, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return app.run(cmd.Context(), ct, args)
		},
	}
}

func newToolsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the configured tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(v, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app.printer.Tools(app.tools)
			return nil
		},
	}
}

var runDescriptions = map[command.Type]string{
	command.Install: "Install the selected tools",
	command.Prepare: "Run the prepare step of the selected tools",
	command.Review:  "Review the project with the selected tools",
	command.Format:  "Format the project with the selected tools",
}

func version() string {
	if GitVersion == "" {
		return "dev"
	}
	if GitCommit == "" {
		return GitVersion
	}
	return fmt.Sprintf("%s (%s)", GitVersion, GitCommit)
}

// exitStatusError carries the process exit status of a completed run.
type exitStatusError struct {
	status int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.status)
}
