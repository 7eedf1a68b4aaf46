package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wellsim/wellsim/drill"
	"github.com/wellsim/wellsim/drill/catalog"
	"github.com/wellsim/wellsim/drill/mech"
	"github.com/wellsim/wellsim/drill/rss"
	"github.com/wellsim/wellsim/drill/selection"
	"github.com/wellsim/wellsim/drill/trace"
)

var (
	scenarioPath string // Path to the scenario YAML
	logLevel     string // Log verbosity level
	pipesPath    string // Drill-pipe catalog (CSV or YAML)
	collarsPath  string // Drill-collar catalog (CSV or YAML)
	topK         int    // Number of best/worst candidates to report
	seed         int64  // Seed for RPM jitter
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "wellsim",
	Short: "Directional well planner, drill-string selector and RSS simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// planCmd prints the planned trajectory and target table
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Interpolate the well trajectory for a scenario",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPlan(cmd.OutOrStdout(), scenarioPath); err != nil {
			logrus.Fatalf("plan failed: %v", err)
		}
	},
}

// selectCmd ranks catalog components against the planned trajectory
var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Rank drill pipe and drill collars for a scenario",
	Run: func(cmd *cobra.Command, args []string) {
		if pipesPath == "" && collarsPath == "" {
			logrus.Fatalf("select needs --pipes, --collars or both")
		}
		if err := runSelect(cmd.OutOrStdout(), scenarioPath, pipesPath, collarsPath, topK); err != nil {
			logrus.Fatalf("select failed: %v", err)
		}
	},
}

// simulateCmd drives the RSS simulator along the planned trajectory
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate an RSS bit following the planned trajectory",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimulate(cmd.Context(), cmd.OutOrStdout(), scenarioPath, pipesPath, collarsPath, seed); err != nil {
			logrus.Fatalf("simulate failed: %v", err)
		}
	},
}

// loadPlan reads the scenario and materializes its trajectory.
func loadPlan(path string) (*Scenario, drill.WellPlan, *drill.Trajectory, []drill.Point3D, error) {
	if path == "" {
		return nil, drill.WellPlan{}, nil, nil, fmt.Errorf("--scenario is required")
	}
	sc, err := LoadScenario(path)
	if err != nil {
		return nil, drill.WellPlan{}, nil, nil, err
	}
	plan, err := sc.Plan()
	if err != nil {
		return nil, drill.WellPlan{}, nil, nil, err
	}
	traj, targets, err := plan.Output()
	if err != nil {
		return nil, drill.WellPlan{}, nil, nil, err
	}
	logrus.Infof("Planned %d stations to %d targets (KOP %.1f, %s)", traj.Len(), len(targets), plan.KOP, plan.Method)
	return sc, plan, traj, targets, nil
}

func runPlan(w io.Writer, path string) error {
	_, plan, traj, targets, err := loadPlan(path)
	if err != nil {
		return err
	}
	printTrajectory(w, traj)
	printTargets(w, targets)
	return printJSON(w, summarizePlan(plan, traj))
}

func runSelect(w io.Writer, path, pipes, collars string, k int) error {
	sc, _, traj, _, err := loadPlan(path)
	if err != nil {
		return err
	}
	summary := SelectionSummary{}
	if pipes != "" {
		set, err := selectPipes(sc, traj, pipes)
		if err != nil {
			return err
		}
		printCandidates(w, "Drill Pipe", set.GetOptimum(k))
		summary.Pipes = summarizeSet(set)
	}
	if collars != "" {
		set, err := selectCollars(sc, traj, collars)
		if err != nil {
			return err
		}
		printCandidates(w, "Drill Collars", set.GetOptimum(k))
		summary.Collars = summarizeSet(set)
	}
	return printJSON(w, summary)
}

func selectPipes(sc *Scenario, traj *drill.Trajectory, path string) (*selection.CandidateSet, error) {
	entries, err := catalog.LoadPipes(path)
	if err != nil {
		return nil, err
	}
	pipes, err := catalog.Pipes(entries, sc.FluidConfig(), sc.PipeLoadConfig(), nil)
	if err != nil {
		return nil, err
	}
	candidates := make([]selection.Pipe, len(pipes))
	for i, p := range pipes {
		candidates[i] = p
	}
	return selection.NewPipeSelection(candidates, traj, sc.SelectionConfig())
}

func selectCollars(sc *Scenario, traj *drill.Trajectory, path string) (*selection.CandidateSet, error) {
	entries, err := catalog.LoadCollars(path)
	if err != nil {
		return nil, err
	}
	collars, err := catalog.Collars(entries, sc.FluidConfig())
	if err != nil {
		return nil, err
	}
	candidates := make([]selection.Collar, len(collars))
	for i, c := range collars {
		candidates[i] = c
	}
	return selection.NewCollarSelection(candidates, traj, sc.SelectionConfig())
}

// runSimulate runs the RSS along the plan. When catalogs are given, the best-ranked pipe
// supplies side force and the best-ranked collar the buckling check.
func runSimulate(ctx context.Context, w io.Writer, path, pipes, collars string, seed int64) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sc, plan, traj, _, err := loadPlan(path)
	if err != nil {
		return err
	}
	rssCfg, err := sc.RSSConfig()
	if err != nil {
		return err
	}

	params := rss.ParamsFromPlan(plan, traj)
	params.Bit = sc.BitConfig()
	params.RSS = rssCfg
	params.BucklingLength = sc.SelectionConfig().CollarBucklingLength
	params.RPM = drill.NewSimulationKey(seed).RPMSource()

	if pipes != "" {
		set, err := selectPipes(sc, traj, pipes)
		if err != nil {
			return err
		}
		best := set.GetOptimum(1).Best[0].Component.(*mech.DrillPipe)
		logrus.Infof("Simulating with drill pipe %q", best.Name)
		params.Pipe = best
	}
	if collars != "" {
		set, err := selectCollars(sc, traj, collars)
		if err != nil {
			return err
		}
		best := set.GetOptimum(1).Best[0].Component.(*mech.DrillCollar)
		logrus.Infof("Simulating with drill collar %q", best.Name)
		params.Collar = best
	}

	sim, err := rss.NewSimulator(params)
	if err != nil {
		return err
	}
	st, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printStations(w, st)
	return printJSON(w, trace.Summarize(st, rssCfg.TimeDelta))
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	selectCmd.Flags().StringVar(&pipesPath, "pipes", "", "Drill-pipe catalog (.csv, .yaml)")
	selectCmd.Flags().StringVar(&collarsPath, "collars", "", "Drill-collar catalog (.csv, .yaml)")
	selectCmd.Flags().IntVar(&topK, "top", 5, "Number of best and worst candidates to report")

	simulateCmd.Flags().StringVar(&pipesPath, "pipes", "", "Drill-pipe catalog used to pick the simulated string")
	simulateCmd.Flags().StringVar(&collarsPath, "collars", "", "Drill-collar catalog used to pick the simulated collar")
	simulateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for RPM jitter")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(simulateCmd)
}
