package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/poolcheck/corpus"
)

func newGenerateCmd(a *app) *cobra.Command {
	gen := corpus.DefaultGenConfig()
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a deterministic random corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cases, err := corpus.Generate(gen)
			if err != nil {
				return err
			}
			a.logger.Info("corpus generated", "cases", len(cases), "seed", gen.Seed)
			if output == "" || output == "-" {
				return corpus.Encode(cmd.OutOrStdout(), cases)
			}

			return corpus.Save(output, cases)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&gen.Cases, "cases", "n", gen.Cases, "number of cases")
	fl.IntVar(&gen.MinLen, "min-len", gen.MinLen, "minimum items per case")
	fl.IntVar(&gen.MaxLen, "max-len", gen.MaxLen, "maximum items per case")
	fl.Int64Var(&gen.Seed, "seed", gen.Seed, "random seed; 0 uses a fixed default")
	fl.Float64Var(&gen.WideBias, "wide-bias", gen.WideBias, "probability that an item holds two or more codes")
	fl.StringVarP(&output, "output", "o", "", "output file; stdout when empty or -")

	return cmd
}
