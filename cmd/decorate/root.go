package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/decorate/internal/version"
	"github.com/arthur-debert/decorate/pkg/config"
	"github.com/arthur-debert/decorate/pkg/decorator"
	decorerr "github.com/arthur-debert/decorate/pkg/errors"
	"github.com/arthur-debert/decorate/pkg/filesystem"
	"github.com/arthur-debert/decorate/pkg/logging"
	"github.com/arthur-debert/decorate/pkg/paths"
	"github.com/arthur-debert/decorate/pkg/runlock"
	"github.com/arthur-debert/decorate/pkg/types"
	"github.com/arthur-debert/decorate/pkg/ui/prompt"
	"github.com/arthur-debert/decorate/pkg/ui/report"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// The defaults file only seeds flag defaults; a load failure must not
	// block flag parsing, so it is logged after logging is set up.
	cfg, cfgErr := config.Load(config.Path())

	var (
		verbosity int
		relative  bool
		modeFlag  string
		onExists  string
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:     "decorate <source_root> <destination_root> [search_string] [replace_string]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.RangeArgs(2, 4),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			if cfgErr != nil {
				log.Warn().Err(cfgErr).Str("path", config.Path()).Msg("Ignoring unreadable defaults file")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecorate(cmd, args, relative, modeFlag, onExists, noColor)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&relative, "relative", cfg.Relative, MsgFlagRelative)
	rootCmd.Flags().StringVar(&modeFlag, "mode", cfg.Mode, MsgFlagMode)
	rootCmd.Flags().StringVar(&onExists, "on-exists", cfg.OnExists, MsgFlagOnExists)
	rootCmd.Flags().BoolVar(&noColor, "no-color", cfg.NoColor, MsgFlagNoColor)

	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runDecorate wires the CLI input into a decorator run.
func runDecorate(cmd *cobra.Command, args []string, relative bool, modeFlag, onExists string, noColor bool) error {
	logger := logging.GetLogger("cmd")

	mode, err := types.ParseMode(modeFlag)
	if err != nil {
		return decorerr.Wrap(err, decorerr.ErrInvalidInput, "bad --mode")
	}
	policy, err := types.ParsePolicy(onExists)
	if err != nil {
		return decorerr.Wrap(err, decorerr.ErrInvalidInput, "bad --on-exists")
	}

	var rule paths.Rule
	if len(args) > 2 {
		rule.Search = args[2]
	}
	if len(args) > 3 {
		rule.Replace = args[3]
	}

	var decider types.ConflictDecider
	if policy == types.PolicyAsk {
		decider, err = prompt.NewStdin()
		if err != nil {
			return err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return decorerr.Wrap(err, decorerr.ErrInternal, "cannot determine working directory")
	}

	lock, err := runlock.Acquire(args[1])
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn().Err(err).Msg("Failed to release run lock")
		}
	}()

	logger.Info().
		Str("sourceRoot", args[0]).
		Str("destRoot", args[1]).
		Str("mode", string(mode)).
		Str("policy", string(policy)).
		Bool("relative", relative).
		Msg("Starting run")

	reporter := report.New(cmd.OutOrStdout(), noColor)
	dec := decorator.New(filesystem.NewOS(), reporter)

	result, runErr := dec.Run(decorator.Options{
		SourceRoot: args[0],
		DestRoot:   args[1],
		Rule:       rule,
		Relative:   relative,
		Mode:       mode,
		Policy:     policy,
		Decider:    decider,
		Cwd:        cwd,
	})
	if runErr != nil {
		if decorerr.IsErrorCode(runErr, decorerr.ErrConflict) {
			reporter.Failure(MsgIncomplete)
		}
		return runErr
	}

	logger.Info().
		Int("created", result.Created).
		Int("replaced", result.Replaced).
		Int("deleted", result.Deleted).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Msg("Run completed")

	reporter.Success(MsgComplete)
	return nil
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
