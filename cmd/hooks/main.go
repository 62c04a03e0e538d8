package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clawbridge/regexhooks/internal/config"
	"github.com/clawbridge/regexhooks/internal/diag"
	"github.com/clawbridge/regexhooks/internal/hooks"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-regex-hooks",
		Short: "Regex-based permission hook for Claude Code tool invocations",
		Long:  `A PreToolUse hook that matches tool invocations against regex permission rules from Claude settings and answers deny, ask or allow. Without a matching rule it defers to Claude Code's own permission flow.`,
	}

	rootCmd.AddCommand(newPreToolUseCmd(nil))

	return rootCmd
}

type preToolUseOptions struct {
	projectSettings string
	globalSettings  string
	logFile         string
	verbose         bool
}

// newPreToolUseCmd builds the pre-tool-use subcommand. A nil loader means
// the file-backed one; tests inject their own.
func newPreToolUseCmd(loader config.Loader) *cobra.Command {
	opts := &preToolUseOptions{}

	cmd := &cobra.Command{
		Use:   "pre-tool-use",
		Short: "Decide whether a tool invocation is permitted",
		Long:  `Reads a PreToolUse payload from stdin, evaluates it against the regex permission rules of the project and global Claude settings, and writes the permission decision to stdout. Without a matching rule the output is an empty object and Claude Code falls back to its own permission flow.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreToolUse(cmd, opts, loader)
		},
	}

	cmd.Flags().StringVar(&opts.projectSettings, "project-settings", "", "path to the project settings file (default .claude/settings.json)")
	cmd.Flags().StringVar(&opts.globalSettings, "global-settings", "", "path to the global settings file (default ~/.claude/settings.json)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "append diagnostics to this file instead of stderr")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log per-category rule counts and other debug output")

	return cmd
}

func runPreToolUse(cmd *cobra.Command, opts *preToolUseOptions, loader config.Loader) error {
	var sink io.Writer = cmd.ErrOrStderr()
	if opts.logFile != "" {
		sink = diag.NewFileSink(opts.logFile)
	}
	logger := diag.NewLogger(sink, opts.verbose)

	input, err := hooks.ParseToolInput(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to parse tool input: %w", err)
	}

	if loader == nil {
		loader = config.NewLoader(logger)
	}

	projectPath := opts.projectSettings
	if projectPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		projectPath = config.ProjectSettingsPath(cwd)
	}

	globalPath := opts.globalSettings
	if globalPath == "" {
		globalPath, err = config.GlobalSettingsPath()
		if err != nil {
			return err
		}
	}

	project := loadScope(loader, projectPath, "project", logger)
	global := loadScope(loader, globalPath, "global", logger)

	ruleSet := hooks.Prepare(hooks.Merge(project, global), hooks.NewPatternCache(), logger)
	decision := hooks.NewEngine(ruleSet).Evaluate(input)

	out, err := decision.MarshalHookOutput()
	if err != nil {
		return fmt.Errorf("failed to encode decision: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}

// loadScope reads one settings scope. An unreadable file only costs that
// scope its rules; the hook still renders a decision.
func loadScope(loader config.Loader, path, scope string, logger zerolog.Logger) *hooks.RawConfig {
	cfg, err := loader.Load(path)
	if err != nil {
		logger.Warn().Err(err).Str("scope", scope).Str("file", path).Msg("ignoring unreadable settings file")
		return nil
	}
	return cfg
}
