// SPDX-License-Identifier: MIT
//
// File: discover.go
// Role: "isaforge discover" — parse each program, saturate, extract
// candidate ISA instructions, validate them against the oracle, and report
// a colored summary per file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sorawee/isaforge/config"
	"github.com/sorawee/isaforge/egraph"
	"github.com/sorawee/isaforge/isa"
	"github.com/sorawee/isaforge/oracle"
	"github.com/sorawee/isaforge/rewrite"
	"github.com/sorawee/isaforge/rules"
	"github.com/sorawee/isaforge/sexpr"
)

func newRootCmd() *cobra.Command {
	var (
		iterationLimit int
		nodeLimit      int
		parallelism    int
		ruleSetName    string
		oracleCommand  []string
	)

	root := &cobra.Command{
		Use:   "isaforge",
		Short: "Discover ISA instructions from saturated term rewrites",
	}

	discover := &cobra.Command{
		Use:   "discover <file> [file...]",
		Short: "Saturate each program and validate its discovered instructions against an oracle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New(oracleCommand,
				config.WithIterationLimit(iterationLimit),
				config.WithNodeLimit(nodeLimit),
				config.WithRuleSet(rules.Set(ruleSetName)))
			if parallelism > 0 {
				cfg.Parallelism = parallelism
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runDiscover(cmd.Context(), cfg, args)
		},
	}

	discover.Flags().IntVar(&iterationLimit, "iteration-limit", config.DefaultIterationLimit, "maximum saturation passes")
	discover.Flags().IntVar(&nodeLimit, "node-limit", config.DefaultNodeLimit, "maximum live eclasses")
	discover.Flags().IntVar(&parallelism, "parallelism", 0, "concurrent oracle tasks (0 = number of CPUs)")
	discover.Flags().StringVar(&ruleSetName, "rule-set", string(config.DefaultRuleSet), "named rule set to saturate with")
	discover.Flags().StringSliceVar(&oracleCommand, "oracle-command", nil, "oracle command line: program followed by its arguments")
	_ = discover.MarkFlagRequired("oracle-command")

	root.AddCommand(discover)
	return root
}

func runDiscover(ctx context.Context, cfg *config.Config, files []string) error {
	ruleList, err := rules.Lookup(cfg.RuleSet)
	if err != nil {
		return err
	}
	driver, err := oracle.NewDriver(cfg.OracleCommand)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := discoverOne(ctx, cfg, ruleList, driver, file); err != nil {
			color.Red("✗ %s: %s", file, err)
			return err
		}
	}
	return nil
}

func discoverOne(ctx context.Context, cfg *config.Config, ruleList []rewrite.Rule, driver oracle.Driver, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("isaforge: reading %s: %w", file, err)
	}

	eg := egraph.New()
	if _, err := sexpr.Term(eg, string(src)); err != nil {
		return fmt.Errorf("isaforge: parsing %s: %w", file, err)
	}

	result, err := rewrite.Run(eg, ruleList, cfg.IterationLimit, cfg.NodeLimit)
	if err != nil {
		return fmt.Errorf("isaforge: saturating %s: %w", file, err)
	}

	instrs, err := isa.FindISAInstructions(eg)
	if err != nil {
		return fmt.Errorf("isaforge: extracting instructions from %s: %w", file, err)
	}

	candidates := make(map[egraph.Id]*isa.Expr, len(instrs))
	for _, instr := range instrs {
		candidates[instr.EClass] = instr.AST
	}

	results, err := oracle.ValidateAll(ctx, driver, candidates, cfg.Parallelism)
	if err != nil {
		return fmt.Errorf("isaforge: validating instructions from %s: %w", file, err)
	}

	accepted := 0
	for _, r := range results {
		if r.Err != nil {
			color.Red("  ✗ eclass %d: oracle transport failure: %s", r.EClass, r.Err)
			continue
		}
		if r.Verdict.Accepted {
			accepted++
		}
	}

	fmt.Printf("%s: %d instruction(s), %d accepted, saturation bound=%q (%d iterations)\n",
		file, len(instrs), accepted, string(result.Bound), result.Iterations)
	color.Green("✓ %s", file)
	return nil
}
