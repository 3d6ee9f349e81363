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
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/chemdb/internal/ioconfig"
	"github.com/gnames/chemdb/internal/iofs"
	"github.com/gnames/chemdb/internal/iologger"
	app "github.com/gnames/chemdb/pkg"
	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "chemdb",
		Short:   "Builds a chemical structures database in PostgreSQL",
		Long: `chemdb bootstraps a queryable chemical structures database from
DSSTox and PubChem dumps.

Commands:
  - create:   create the database schema
  - populate: ingest structures, CAS registry numbers and catalog ids
  - optimize: build the compounds view and its structural index

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (CHEMDB_*)
  3. Config file (~/.config/chemdb/config.yaml)
  4. Built-in defaults

Nested fields use underscores
(database.host becomes CHEMDB_DATABASE_HOST).`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "chemdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for chemdb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getPopulateCmd(),
		getOptimizeCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// It is reconfigured later with user's settings.
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = applyFlags(cmd, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))
	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	res, err := ioconfig.Dump(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(res))
	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once.
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
