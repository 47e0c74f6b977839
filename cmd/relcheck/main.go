package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/relcheck/internal/app"
	"github.com/wahlandcase/relcheck/internal/config"
	"github.com/wahlandcase/relcheck/internal/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "relcheck <repo-path-or-project-url> <first> <last> <jira-project> <release>",
		Short: "Compare a Jira release with the commits between two revisions",
		Long: `relcheck lists the issues of a Jira release next to the newest commit
that mentions each of them, then the issues referenced by commits that are
not part of the release.

The repository is a local path or a GitLab project URL. Settings are read
from $RELCHECK_CONFIG, ./settings.toml, ./settings.ini or the user config
directory.`,
		Args:          cobra.ExactArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := app.OptionsFromArgs(args)
	if err != nil {
		return err
	}

	log := logger.FromEnv()

	cfg, err := config.Load()
	if err != nil {
		return &app.StepError{Step: app.StepLoadSettings, Err: err}
	}
	log.Debug().Str("path", cfg.Path()).Msg("settings loaded")

	a, err := app.Connect(cmd.Context(), cfg, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}

	return a.Run(cmd.Context(), opts)
}
