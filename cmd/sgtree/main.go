// Command sgtree drives scapegoat trees from the command line.
//
// sgtree repl opens an interactive console on two trees, A and B.
// sgtree bench compares insertion, search and deletion times with
// a B-tree and a left-leaning red-black tree.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/npillmayer/scapegoat/render"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// tracer traces to the core tracer installed by setup.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func main() {
	var configPath string
	var alpha float64
	var config *Config

	// setup loads the config file and installs tracing; flags override the file.
	setup := func(cmd *cobra.Command, args []string) error {
		var err error
		if config, err = LoadConfig(configPath); err != nil {
			return err
		}
		if cmd.Flags().Changed("alpha") {
			config.Alpha = alpha
		}
		level, err := config.Level()
		if err != nil {
			return err
		}
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(level)
		return nil
	}

	printer := func() *render.Printer {
		pc := render.ConfigFromTerminal()
		if config.Color != nil {
			pc.Color = *config.Color
		}
		return render.NewPrinter(os.Stdout, pc)
	}

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Interactive console on two scapegoat trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl, err := NewREPL(config.Alpha, printer(), os.Stdout)
			if err != nil {
				return err
			}
			return repl.Run(bufio.NewReader(os.Stdin))
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Compare scapegoat tree, B-tree and LLRB tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			seed, _ := cmd.Flags().GetInt64("seed")
			quiet, _ := cmd.Flags().GetBool("quiet")
			results, err := Bench(BenchOptions{
				N:        n,
				Seed:     seed,
				Alpha:    config.Alpha,
				Progress: !quiet,
			})
			if err != nil {
				return err
			}
			PrintResults(printer(), results)
			return nil
		},
	}
	cmdBench.Flags().Int("n", 50000, "number of values")
	cmdBench.Flags().Int64("seed", 1, "seed for shuffling the values")
	cmdBench.Flags().Bool("quiet", false, "do not show a progress bar")

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print sgtree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:               "sgtree",
		Version:           version,
		Short:             "Scapegoat tree console and benchmarks",
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.sgtree.yaml)")
	rootCmd.PersistentFlags().Float64Var(&alpha, "alpha", 0, "balance factor α, 0.5 < α < 1")
	rootCmd.AddCommand(cmdRepl, cmdBench, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
