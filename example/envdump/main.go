// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/z5labs/envir"
	"github.com/z5labs/envir/value"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cmd := buildCmd()
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envdump [key ...]",
		Short: "Print a typed view of the current environment as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []envir.Option{
				envir.Parallelism(4),
			}

			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync()
				opts = append(opts, envir.Logger(logger))
			}

			snap := envir.Build(opts...)

			keys := args
			if len(keys) == 0 {
				keys = snap.Keys()
				sort.Strings(keys)
			}

			out := make(map[string]value.Value, len(keys))
			for _, k := range keys {
				v, ok := snap.Get(k)
				if !ok {
					continue
				}
				out[k] = v
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().Bool("verbose", false, "log snapshot capture details")
	return cmd
}
