package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dogeorg/wifiscan/pkg/scan"
	"github.com/dogeorg/wifiscan/pkg/system/network"
	"github.com/spf13/cobra"
)

type filterFlags struct {
	ssid      string
	minSignal int
	encrypted bool
	named     bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ssid, "ssid", "", "Only show cells with this SSID")
	cmd.Flags().IntVar(&f.minSignal, "min-signal", -100, "Only show cells at or above this signal (dBm)")
	cmd.Flags().BoolVar(&f.encrypted, "encrypted", false, "Only show encrypted cells")
	cmd.Flags().BoolVar(&f.named, "named", false, "Hide cells without an SSID")
}

func (f *filterFlags) predicate(cmd *cobra.Command) scan.Predicate {
	preds := []scan.Predicate{}
	if f.ssid != "" {
		preds = append(preds, scan.SSIDEquals(f.ssid))
	}
	if cmd.Flags().Changed("min-signal") {
		preds = append(preds, scan.MinSignal(f.minSignal))
	}
	if f.encrypted {
		preds = append(preds, scan.Encrypted)
	}
	if f.named {
		preds = append(preds, scan.HasSSID)
	}
	return scan.All(preds...)
}

func registerOutput(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "output", "o", "table", "Output format: table or json")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCells(w io.Writer, format string, cells []scan.Cell) error {
	switch format {
	case "json":
		return writeJSON(w, cells)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SSID\tADDRESS\tCHANNEL\tFREQUENCY\tSIGNAL\tQUALITY\tENCRYPTION")
		for _, c := range cells {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				orDash(c.SSID), orDash(c.Address), optInt(c.Channel, ""), orDash(c.Frequency),
				optInt(c.Signal, " dBm"), orDash(c.Quality), encryption(c))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeScans(w io.Writer, format string, scans []network.InterfaceScan) error {
	if format == "json" {
		return writeJSON(w, scans)
	}
	for _, s := range scans {
		fmt.Fprintf(w, "%s:\n", s.Interface)
		if s.Error != "" {
			fmt.Fprintf(w, "  error: %s\n", s.Error)
			continue
		}
		if err := writeCells(w, format, s.Cells); err != nil {
			return err
		}
	}
	return nil
}

func encryption(c scan.Cell) string {
	if !c.Encrypted {
		return "open"
	}
	return strings.ToUpper(string(c.EncryptionType))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func optInt(v *int, suffix string) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v) + suffix
}
