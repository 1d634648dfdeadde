package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dogeorg/wifiscan/pkg/scan"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		format  string
	)

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse captured scan output from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("reading scan output: %w", err)
			}

			cells, err := scan.Filter(string(raw), filters.predicate(cmd),
				scan.SkipMalformedIf(a.config.SkipMalformed), scan.WithLogger(a.log))
			if err != nil {
				return err
			}
			a.log.WithField("cells", len(cells)).Debug("Parsed scan output")

			return writeCells(cmd.OutOrStdout(), format, cells)
		},
	}

	filters.register(cmd)
	registerOutput(cmd, &format)
	return cmd
}
