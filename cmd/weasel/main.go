// Command weasel runs the Weasel genetic algorithm against a target phrase,
// printing the best candidate of each generation.
//
//	$ weasel -p "Hello!" -m 10
//	Start: pqeIJu
//	Gen 0: pqeIJu
//	Gen 1: peeIJu
//	-- snip --
//	Gen 10: Helle!
//	Gen 11: Hello!
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baldhumanity/weasel-go/weasel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := weasel.DefaultConfig()
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "weasel",
		Short: "Run the Weasel genetic algorithm on a given phrase",
		Long: `weasel starts from a random string and repeatedly mutates and selects
candidates until they converge on the target phrase, printing the best
candidate per generation.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := mergeConfigFile(cmd, configPath, cfg); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			run, err := weasel.NewRun(cfg)
			if err != nil {
				return err
			}
			run.AddReporter(&weasel.TextReporter{Out: cmd.OutOrStdout()})
			if verbose {
				run.AddReporter(&weasel.StatsReporter{Out: cmd.ErrOrStderr()})
			}

			if !weasel.NewCharSet(cfg.Weasel.CharSet).ContainsAll(cfg.Weasel.Phrase) {
				fmt.Fprintln(cmd.ErrOrStderr(),
					"WARN: char-set does not contain every phrase character; the run cannot converge")
			}

			return run.Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Weasel.Phrase, "phrase", "p", cfg.Weasel.Phrase,
		"the phrase to run the algorithm on (required unless set in --config)")
	flags.StringVarP(&cfg.Weasel.CharSet, "char-set", "c", cfg.Weasel.CharSet,
		"the approved character set")
	flags.IntVarP(&cfg.Weasel.Iterations, "iterations", "i", cfg.Weasel.Iterations,
		"the number of variations to produce per generation, >= 1")
	flags.IntVarP(&cfg.Weasel.MutationRate, "mutation-rate", "m", cfg.Weasel.MutationRate,
		"the mutation rate for each string, from 1-100")
	flags.IntVar(&cfg.Runtime.Workers, "workers", cfg.Runtime.Workers,
		"goroutines evaluating trial mutations (1 = serial)")
	flags.Int64Var(&cfg.Runtime.Seed, "seed", cfg.Runtime.Seed,
		"random seed (0 = random)")
	flags.StringVar(&configPath, "config", "",
		"path to an INI config file; explicit flags override it")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"print per-generation batch statistics to stderr")

	return cmd
}

// mergeConfigFile loads the INI file at path into cfg, keeping any value the
// user set explicitly on the command line.
func mergeConfigFile(cmd *cobra.Command, path string, cfg *weasel.Config) error {
	fileCfg, err := weasel.LoadConfig(path)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("phrase") {
		cfg.Weasel.Phrase = fileCfg.Weasel.Phrase
	}
	if !cmd.Flags().Changed("char-set") {
		cfg.Weasel.CharSet = fileCfg.Weasel.CharSet
	}
	if !cmd.Flags().Changed("iterations") {
		cfg.Weasel.Iterations = fileCfg.Weasel.Iterations
	}
	if !cmd.Flags().Changed("mutation-rate") {
		cfg.Weasel.MutationRate = fileCfg.Weasel.MutationRate
	}
	if !cmd.Flags().Changed("workers") {
		cfg.Runtime.Workers = fileCfg.Runtime.Workers
	}
	if !cmd.Flags().Changed("seed") {
		cfg.Runtime.Seed = fileCfg.Runtime.Seed
	}
	return nil
}
