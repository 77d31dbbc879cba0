// Command bytedict decodes a dictionary encoded byte-array column chunk
// described by a TOML job file and prints the decoded rows.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hexbee-net/bytedict/dictionary"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand(out io.Writer) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "bytedict",
		Short:        "Byte-array dictionary decoder",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development logging")
	cmd.AddCommand(decodeCommand(out, &verbose))

	return cmd
}

func decodeCommand(out io.Writer, verbose *bool) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "decode <job.toml>",
		Short: "Decode the column described by a job file",
		Long:  "Read the dictionary page and the data page named in the job file, decode the indexes and print one row per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()

			j := &job{
				cfg:     cfg,
				logger:  logger,
				metrics: dictionary.NewMetrics(reg),
				out:     out,
			}

			if err := j.run(); err != nil {
				logger.Error("decode failed", zap.Error(err))
				return err
			}

			if stats {
				return printStats(out, reg)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print decoder counters after the rows")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func printStats(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, l := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", l.GetName(), l.GetValue())
			}

			if _, err := fmt.Fprintf(out, "# %s %g\n", name, m.GetCounter().GetValue()); err != nil {
				return err
			}
		}
	}

	return nil
}
