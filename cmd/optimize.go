/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/chemdb/internal/iodb"
	"github.com/gnames/chemdb/internal/iooptimize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getOptimizeCmd returns the optimize command.
func getOptimizeCmd() *cobra.Command {
	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Build compounds view and structural index",
		Long: `Prepare the populated database for structure queries.

This command rebuilds the compounds materialized view, which joins
substances with catalog ids and CAS registry numbers, creates the
structural index over it and updates statistics.

The view reflects tables at the time of the build, run optimize again
after any change to the tables.

Prerequisites:
  - Database must be created (run 'chemdb create' first)
  - Database must be populated (run 'chemdb populate' first)

Examples:
  chemdb optimize
  chemdb optimize --collapse-catalog`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOptimize(cmd)
		},
	}

	optimizeCmd.Flags().Bool(
		"collapse-catalog", false,
		"keep only the lowest catalog id per substance",
	)

	return optimizeCmd
}

func runOptimize(cmd *cobra.Command) error {
	ctx := cmd.Context()

	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, &cfg.Database)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !hasTables {
		gn.Warn(`Warning: Database appears to be empty.
Run 'chemdb create' and 'chemdb populate' first.`)
		return nil
	}

	optimizer := iooptimize.NewOptimizer(op)
	if err = optimizer.Optimize(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(`Database optimization is complete!

You can re-run 'chemdb optimize' anytime to rebuild the compounds view.`)
	return nil
}
