// Command sopsat decides satisfiability of boolean functions given in
// sum-of-products notation (.sop files) or DIMACS CNF (.cnf files).
// It is a thin shell around the sop and solver packages.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sopsat/sopsat/solver"
	"github.com/sopsat/sopsat/sop"
)

var log = logrus.New()

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "sopsat",
		Short:         "decide satisfiability of SoP functions and DIMACS CNF formulas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solving statistics")
	root.AddCommand(solveCmd(), countCmd(), xorCmd(), convertCmd())
	return root
}

func solveCmd() *cobra.Command {
	var (
		all     bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "find one (or all) satisfying assignments of a .sop or .cnf file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, f, err := load(args[0])
			if err != nil {
				return err
			}
			if f != nil && all {
				models, err := sop.SolveAll(f)
				if err != nil {
					return err
				}
				printFunctionModels(f, models)
				return nil
			}
			s := solver.New(pb)
			if timeout > 0 {
				deadline := time.Now().Add(timeout)
				s.Limit = func(solver.Stats) bool { return time.Now().After(deadline) }
			}
			if f != nil {
				status := s.Solve()
				logStats(s.Stats)
				if status == solver.Sat {
					printFunctionModel(f, s.Model()[:f.NbVars])
				} else if status == solver.Unsat {
					printFunctionModel(f, nil)
				} else {
					fmt.Println("INDETERMINATE")
					log.Warnf("search aborted after %v", timeout)
				}
				return nil
			}
			if all {
				models, err := s.SolveAll()
				if err != nil {
					return err
				}
				logStats(s.Stats)
				printModels(models)
				return nil
			}
			status := s.Solve()
			logStats(s.Stats)
			switch status {
			case solver.Sat:
				fmt.Println("s SATISFIABLE")
				fmt.Printf("v %s 0\n", strings.Join(modelInts(s.Model()), " "))
			case solver.Unsat:
				fmt.Println("s UNSATISFIABLE")
			default:
				fmt.Println("s INDETERMINATE")
				log.Warnf("search aborted after %v", timeout)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "enumerate every satisfying assignment")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this duration")
	return cmd
}

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count FILE",
		Short: "count the models of a .sop or .cnf file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, f, err := load(args[0])
			if err != nil {
				return err
			}
			if f != nil {
				// Count over the function's own variables, not the
				// auxiliaries introduced by conversion.
				models, err := sop.SolveAll(f)
				if err != nil {
					return err
				}
				fmt.Println(len(models))
				return nil
			}
			s := solver.New(pb)
			nb, err := s.CountModels()
			if err != nil {
				return err
			}
			logStats(s.Stats)
			fmt.Println(nb)
			return nil
		},
	}
}

func xorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xor FILE1 FILE2",
		Short: "decide whether two SoP functions differ on some assignment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f1, err := loadFunction(args[0])
			if err != nil {
				return err
			}
			f2, err := loadFunction(args[1])
			if err != nil {
				return err
			}
			pb, err := sop.Xor(f1, f2)
			if err != nil {
				return err
			}
			s := solver.New(pb)
			if s.Solve() != solver.Sat {
				fmt.Println("EQUIVALENT")
				return nil
			}
			logStats(s.Stats)
			fmt.Println("DIFFERENT")
			printFunctionModel(f1, s.Model()[:f1.NbVars])
			return nil
		},
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert FILE",
		Short: "convert a SoP function to DIMACS CNF on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFunction(args[0])
			if err != nil {
				return err
			}
			return sop.Convert(f).ToDIMACS(os.Stdout)
		},
	}
}

// load reads a problem from path. DIMACS files yield only a Problem; SoP
// files yield the parsed Function along with its CNF conversion.
func load(path string) (*solver.Problem, *sop.Function, error) {
	if strings.HasSuffix(path, ".cnf") {
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not open %q", path)
		}
		defer file.Close()
		pb, err := solver.ParseCNF(file)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not parse DIMACS file %q", path)
		}
		log.Debugf("parsed %q: %d vars, %d clauses", path, pb.NbVars, len(pb.Clauses))
		return pb, nil, nil
	}
	f, err := loadFunction(path)
	if err != nil {
		return nil, nil, err
	}
	return sop.Convert(f), f, nil
}

func loadFunction(path string) (*sop.Function, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer file.Close()
	f, err := sop.Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse function in %q", path)
	}
	log.Debugf("parsed %q: %s (%d vars, %d terms)", path, f, f.NbVars, len(f.Terms))
	return f, nil
}

func logStats(st solver.Stats) {
	log.WithFields(logrus.Fields{
		"decisions":    st.NbDecisions,
		"propagations": st.NbPropagations,
		"conflicts":    st.NbConflicts,
	}).Debug("search finished")
}

func modelInts(model []bool) []string {
	return lo.Map(model, func(b bool, i int) string {
		if b {
			return fmt.Sprint(i + 1)
		}
		return fmt.Sprint(-i - 1)
	})
}

func printModels(models [][]bool) {
	if len(models) == 0 {
		fmt.Println("s UNSATISFIABLE")
		return
	}
	fmt.Println("s SATISFIABLE")
	for _, m := range models {
		fmt.Printf("v %s 0\n", strings.Join(modelInts(m), " "))
	}
}

func printFunctionModel(f *sop.Function, model []bool) {
	if model == nil {
		fmt.Println("UNSATISFIABLE")
		return
	}
	fmt.Println("SATISFIABLE")
	fmt.Println(bindings(f, model))
}

func printFunctionModels(f *sop.Function, models [][]bool) {
	if len(models) == 0 {
		fmt.Println("UNSATISFIABLE")
		return
	}
	fmt.Println("SATISFIABLE")
	for _, m := range models {
		fmt.Println(bindings(f, m))
	}
}

func bindings(f *sop.Function, model []bool) string {
	parts := lo.Map(model, func(b bool, i int) string {
		val := 0
		if b {
			val = 1
		}
		return fmt.Sprintf("%s=%d", f.Name(i+1), val)
	})
	return strings.Join(parts, " ")
}
