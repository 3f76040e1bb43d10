package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quests/internal/config"
)

// newRootCmd builds the quests command with its flags.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		inputDir   string
		logLevel   string
		cfg        *config.Config
	)

	validArgs := []string{"all"}
	for _, q := range quests {
		validArgs = append(validArgs, strconv.Itoa(q.number))
	}

	cmd := &cobra.Command{
		Use:   "quests [all|12|13|14|18]",
		Short: "Solve the grid and graph quests",
		Long: `quests reads every part's input file, runs the matching solver
and prints the answers. Inputs default to <inputs>/quest_NN/part_K.txt.`,
		Args:          cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     validArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
			if cmd.Flags().Changed("inputs") {
				cfg.InputDir = inputDir
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(cfg.Level())
			log.WithField("config", configPath).Debug("configuration loaded")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectQuests(args)
			if err != nil {
				return err
			}
			r := &runner{cfg: cfg, out: cmd.OutOrStdout()}

			return r.run(cmd.Context(), selected)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "YAML configuration file")
	cmd.PersistentFlags().StringVar(&inputDir, "inputs", "inputs", "root directory of the quest inputs")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", log.InfoLevel.String(), "log level (debug, info, warn, error)")

	return cmd
}

// selectQuests resolves the positional argument to the quests to run.
func selectQuests(args []string) ([]quest, error) {
	if len(args) == 0 || args[0] == "all" {
		return quests, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("quest %q: %w", args[0], err)
	}
	for _, q := range quests {
		if q.number == n {
			return []quest{q}, nil
		}
	}

	return nil, fmt.Errorf("quest %d: %w", n, errUnknownQuest)
}
