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
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/chemdb/internal/iodb"
	"github.com/gnames/chemdb/internal/iopopulate"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate database with structures and identifier mappings",
		Long: `Import DSSTox structures, CAS registry numbers and PubChem
compound ids into an empty database.

This command:
  1. Checks that the schema exists and has no data or load runs
  2. Streams the structures dump in chunks, converting every InChI
     into a molfile with Open Babel
  3. Converts molfiles into the native structure column and makes it
     mandatory
  4. Loads CAS registry numbers and catalog ids, keeping only rows
     that refer to stored substances
  5. Reports counts of created, failed and rejected records

Sources are set in ~/.config/chemdb/config.yaml or with flags.
The structures dump is required, mapping sources are optional.

Population is one-shot. To load new dumps run 'chemdb create --force'
first.

Examples:
  chemdb populate
  chemdb populate --structures dsstox.tsv --registry casrn.xlsx \
    --catalog pubchem.tsv
  chemdb populate -s dsstox.tsv -n 50000`,
		Aliases: []string{"add"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runPopulate(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().StringP(
		"structures", "s", "",
		"tab-separated structures dump (key, InChI, InChIKey)",
	)
	populateCmd.Flags().StringP(
		"registry", "r", "",
		"xlsx file with CAS registry numbers",
	)
	populateCmd.Flags().StringP(
		"catalog", "c", "",
		"tab-separated file with PubChem SID, CID and key",
	)
	populateCmd.Flags().IntP(
		"chunk-size", "n", 0,
		"number of structure records kept in memory at once",
	)
	populateCmd.Flags().Bool(
		"journal", true,
		"save dropped and rejected records to a SQLite journal",
	)

	return populateCmd
}

func runPopulate(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	p := iopopulate.NewPopulator(op)
	if err := p.Populate(ctx, cfg); err != nil {
		return err
	}

	gn.Info(`Database population is complete!

Next step:
  - Run 'chemdb optimize' to build the compounds view`)
	return nil
}
