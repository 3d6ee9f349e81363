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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnames/chemdb/internal/iodb"
	"github.com/gnames/chemdb/internal/ioschema"
	"github.com/gnames/chemdb/pkg/db"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the chemdb database schema from scratch.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks for existing tables and prompts for confirmation
  3. Installs the chemistry cartridge for the structure column type
  4. Creates all base tables using GORM AutoMigrate
  5. Adds foreign keys from mapping tables to substances

Population is one-shot, to load new dumps recreate the schema first.
Use --force to skip confirmation and drop existing tables.

Examples:
  chemdb create
  chemdb create --force
  chemdb create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(
	cmd *cobra.Command,
	_ []string,
	force bool,
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
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

	if hasTables && !force {
		gn.Warn("Database <em>%s</em> is not empty, recreating the " +
			"schema drops ALL tables, loaded structures included.",
			cfg.Database.Database)
		ok, err := confirm(os.Stdin, os.Stdout)
		if err != nil {
			gn.Warn("Failed to read user input")
			return err
		}
		if !ok {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	if hasTables {
		gn.Info("Dropping the compounds view and all tables...")
		if err := dropAll(ctx, op); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	gn.Info("Creating schema...")
	if err := ioschema.NewManager(op).Create(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Schema is ready at stage <em>RAW</em>. " +
		"Next: <em>chemdb populate</em>, then <em>chemdb optimize</em>")
	return nil
}

// confirm asks to continue and accepts "y" or "yes" in any case.
func confirm(r io.Reader, w io.Writer) (bool, error) {
	fmt.Fprint(w, "\nDo you want to continue? (yes/no): ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// dropAll removes the compounds view and all tables.
func dropAll(ctx context.Context, op db.Operator) error {
	if err := op.DropMaterializedViews(ctx); err != nil {
		return err
	}
	return op.DropAllTables(ctx)
}
