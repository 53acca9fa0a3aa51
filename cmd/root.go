package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/drawsim/drawsim/sim"
	"github.com/drawsim/drawsim/sim/trace"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "drawsim",
	Short: "Monte-Carlo frequency simulator for numbered ball draws",
}

// runCmd executes the simulation using parameters from flags, env and config
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the drawing simulation",
	Long: `Draws balls with replacement from one or more pools until one ball per pool
reaches a random draw budget, then reports the most-drawn balls per pool.

Pools come from --pool flags, a --pools file, or are asked for on the console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		// Set up logging
		level, _ := logrus.ParseLevel(cfg.Log)
		logrus.SetLevel(level)

		startTime := time.Now()
		if err := runSimulation(cmd.InOrStdin(), cmd.OutOrStdout(), cfg); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
		return nil
	},
}

// runSimulation resolves the pool definitions and repetition count, runs
// every repetition and writes progress, per-repetition reports and the
// final summary to out.
func runSimulation(in io.Reader, out io.Writer, cfg Config) error {
	defs, repetitions, err := resolveInput(in, out, cfg)
	if err != nil {
		return err
	}

	composite, pools, traces, err := buildComposite(defs, cfg)
	if err != nil {
		return err
	}
	logrus.Infof("Starting simulation with %d pools, %d repetitions", len(pools), repetitions)

	var summary strings.Builder
	summary.WriteString("\n\n=============================\n\nFinal results, summarized:\n")
	for i := 1; i <= repetitions; i++ {
		report := composite.Run()
		writeProgress(out, pools, traces)
		fmt.Fprintln(out, report)
		logTraceSummaries(i, pools, traces)
		if cfg.Stats {
			writeStats(out, pools, traces)
		}

		fmt.Fprintf(&summary, "Drawing %d:\n%s\n", i, report)

		composite.Reset()
		for _, rt := range traces {
			rt.Reset()
		}
	}
	fmt.Fprintln(out, summary.String())
	return nil
}

// resolveInput picks pool definitions from flags, a pools file or the
// console, and the repetition count from config, the file or the console.
func resolveInput(in io.Reader, out io.Writer, cfg Config) ([]PoolDefinition, int, error) {
	repetitions := cfg.Repetitions

	if !cfg.Interactive() {
		defs, fileReps, err := definedPools(cfg)
		if err != nil {
			return nil, 0, err
		}
		if repetitions == 0 {
			repetitions = fileReps
		}
		return defs, max(repetitions, 1), nil
	}

	p := newPrompter(in, out)
	defs, err := p.readPools()
	if err != nil {
		return nil, 0, err
	}
	if repetitions == 0 {
		if repetitions, err = p.readRepetitions(); err != nil {
			return nil, 0, err
		}
	}
	return defs, repetitions, nil
}

// definedPools reads pool definitions from --pool flags or the pools file,
// along with the file's repetition count.
func definedPools(cfg Config) ([]PoolDefinition, int, error) {
	if cfg.PoolsFile != "" {
		pf, err := loadPoolsFile(cfg.PoolsFile)
		if err != nil {
			return nil, 0, err
		}
		return pf.Pools, pf.Repetitions, nil
	}
	defs := make([]PoolDefinition, 0, len(cfg.Pools))
	for _, spec := range cfg.Pools {
		d, err := parsePoolSpec(spec)
		if err != nil {
			return nil, 0, err
		}
		defs = append(defs, d)
	}
	return defs, 0, nil
}

// buildComposite creates one pool per definition, each with its own source
// and trace, in definition order.
func buildComposite(defs []PoolDefinition, cfg Config) (*sim.CompositeSimulation, []*sim.Pool, []*trace.RunTrace, error) {
	composite := sim.NewCompositeSimulation()
	pools := make([]*sim.Pool, 0, len(defs))
	traces := make([]*trace.RunTrace, 0, len(defs))
	for i, d := range defs {
		rt := trace.NewRunTrace(trace.TraceLevel(cfg.TraceLevel))
		p, err := sim.NewPool(d.Smallest, d.Biggest, d.Count,
			sim.WithSource(newSource(cfg.SecureRNG)),
			sim.WithTrace(rt),
			sim.WithDrawBudget(cfg.MinDraws, sim.MinExtraDraws, cfg.MaxExtraDraws),
			sim.WithPrints(cfg.Prints),
		)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("drawing %d (%s): %w", i+1, d, err)
		}
		logrus.WithField("trace", rt.ID).Debugf("Defined %s", p.Description())
		composite.Append(p)
		pools = append(pools, p)
		traces = append(traces, rt)
	}
	return composite, pools, traces, nil
}

func newSource(secure bool) sim.Source {
	if secure {
		return sim.NewSecureSource()
	}
	return sim.NewSource()
}

func writeProgress(out io.Writer, pools []*sim.Pool, traces []*trace.RunTrace) {
	for i, p := range pools {
		if !traces[i].Enabled() {
			continue
		}
		fmt.Fprintln(out, p.Description())
		fmt.Fprintf(out, "Increment: %d\n", traces[i].Increment)
		for _, s := range traces[i].Snapshots {
			fmt.Fprintln(out, s)
		}
	}
}

func writeStats(out io.Writer, pools []*sim.Pool, traces []*trace.RunTrace) {
	fmt.Fprintln(out, "Statistics:")
	for i, p := range pools {
		fmt.Fprintf(out, "  %s: %s\n", p.Label(), p.Stats())
		if traces[i].Enabled() {
			ts := trace.Summarize(traces[i])
			fmt.Fprintf(out, "  %s: snapshots=%d peak=%d\n", p.Label(), ts.TotalSnapshots, ts.PeakMaxCount[p.Label()])
		}
	}
	fmt.Fprintln(out)
}

func logTraceSummaries(repetition int, pools []*sim.Pool, traces []*trace.RunTrace) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for i, p := range pools {
		ts := trace.Summarize(traces[i])
		logrus.WithField("trace", traces[i].ID).Debugf("[repetition %d] pool %s: %d snapshots, peak max count %d",
			repetition, p.Label(), ts.TotalSnapshots, ts.PeakMaxCount[p.Label()])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd.Flags())

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
