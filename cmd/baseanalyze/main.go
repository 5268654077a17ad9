// Package main provides baseanalyze, the semantic analyzer's driver.
//
// baseanalyze loads a scenario (a tiny Base-subset program described as
// YAML data, standing in for the parser's output — see internal/fixture)
// and runs the two-pass pipeline over it: name resolution followed by
// type checking. It reports every diagnostic from both passes in AST
// walk order, then exits nonzero if any were produced.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baselang/semantic/internal/ast"
	"github.com/baselang/semantic/internal/diag"
	"github.com/baselang/semantic/internal/fixture"
	"github.com/baselang/semantic/internal/resolver"
	"github.com/baselang/semantic/internal/symtab"
	"github.com/baselang/semantic/internal/typecheck"
)

var (
	scenarioPath string
	dumpAST      bool
)

func main() {
	root := &cobra.Command{
		Use:   "baseanalyze",
		Short: "Name resolution and type checking for Base scenarios",
	}
	root.PersistentFlags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a scenario YAML file (required)")
	root.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "dump the loaded AST before analysis")

	root.AddCommand(checkCmd(), symbolsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "baseanalyze: %v\n", err)
		os.Exit(1)
	}
}

// checkCmd runs both passes and prints every diagnostic, exiting 1 if
// any were reported.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run name resolution and type checking, printing diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadScenario()
			if err != nil {
				return err
			}

			var fatal *symtab.Error
			collector := diag.NewCollector()
			func() {
				defer func() {
					if r := recover(); r != nil {
						if e, ok := r.(*symtab.Error); ok {
							fatal = e
							return
						}
						panic(r)
					}
				}()
				resolver.New(collector.Sink()).Resolve(prog)
				typecheck.New(collector.Sink()).Check(prog)
			}()

			if fatal != nil {
				fmt.Fprintf(os.Stderr, "internal error: %s\n", fatal.Message)
				os.Exit(2)
			}

			diags := collector.Diagnostics()
			if len(diags) == 0 {
				fmt.Println("0 errors.")
				return nil
			}
			for _, d := range diags {
				fmt.Printf("%d:%d: %s\n", d.Line, d.Column, d.Message)
			}
			os.Exit(1)
			return nil
		},
	}
}

// symbolsCmd runs name resolution only and prints the resulting global
// scope in SymTable.DebugString's bit-exact format.
func symbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "Run name resolution and print the resulting symbol table",
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadScenario()
			if err != nil {
				return err
			}

			collector := diag.NewCollector()
			table := resolver.New(collector.Sink()).Resolve(prog)
			fmt.Println(table.DebugString())
			return nil
		},
	}
}

func loadScenario() (*ast.Program, error) {
	if scenarioPath == "" {
		return nil, fmt.Errorf("--scenario is required")
	}
	s, err := fixture.LoadScenarioFile(scenarioPath)
	if err != nil {
		return nil, err
	}
	prog := s.Build()
	if dumpAST {
		diag.DumpAST(prog)
	}
	return prog, nil
}
