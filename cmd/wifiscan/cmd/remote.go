package cmd

import (
	"os"
	"time"

	"github.com/dogeorg/wifiscan/pkg/client"
	"github.com/spf13/cobra"
)

func newRemoteCmd(a *app) *cobra.Command {
	var (
		format  string
		timeout time.Duration
		parse   string
	)

	cmd := &cobra.Command{
		Use:   "remote <url> [interface]",
		Short: "Fetch scan results from a wifiscan server",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(args[0], timeout)

			if parse != "" {
				raw, err := os.ReadFile(parse)
				if err != nil {
					return err
				}
				cells, err := c.Parse(cmd.Context(), string(raw), a.config.SkipMalformed)
				if err != nil {
					return err
				}
				return writeCells(cmd.OutOrStdout(), format, cells)
			}

			if len(args) == 2 {
				cells, err := c.InterfaceNetworks(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				return writeCells(cmd.OutOrStdout(), format, cells)
			}

			scans, err := c.Networks(cmd.Context())
			if err != nil {
				return err
			}
			return writeScans(cmd.OutOrStdout(), format, scans)
		},
	}

	registerOutput(cmd, &format)
	cmd.Flags().DurationVar(&timeout, "http-timeout", 30*time.Second, "Request timeout")
	cmd.Flags().StringVar(&parse, "parse", "", "Send this captured scan file to the server for parsing")
	return cmd
}
