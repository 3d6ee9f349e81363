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
	"github.com/gnames/chemdb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// stringFlags map CLI flags to config options.
var stringFlags = map[string]func(string) config.Option{
	"structures": config.OptSourcesStructures,
	"registry":   config.OptSourcesRegistry,
	"catalog":    config.OptSourcesCatalog,
}

var intFlags = map[string]func(int) config.Option{
	"chunk-size": config.OptImportChunkSize,
}

var boolFlags = map[string]func(*bool) config.Option{
	"collapse-catalog": config.OptViewCollapseCatalog,
	"journal":          config.OptImportJournal,
}

// applyFlags updates cfg with flags set by the user. Flags that were not
// given leave config.yaml and environment settings intact.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	var opts []config.Option
	var err error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		var opt config.Option
		opt, err = flagOption(cmd, f.Name)
		if opt != nil {
			opts = append(opts, opt)
		}
	})
	if err != nil {
		return err
	}
	cfg.Update(opts)
	return nil
}

func flagOption(cmd *cobra.Command, name string) (config.Option, error) {
	if fn, ok := stringFlags[name]; ok {
		s, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, err
		}
		return fn(s), nil
	}
	if fn, ok := intFlags[name]; ok {
		i, err := cmd.Flags().GetInt(name)
		if err != nil {
			return nil, err
		}
		return fn(i), nil
	}
	if fn, ok := boolFlags[name]; ok {
		b, err := cmd.Flags().GetBool(name)
		if err != nil {
			return nil, err
		}
		return fn(&b), nil
	}
	return nil, nil
}
