package cmd

import (
	"fmt"

	"github.com/dogeorg/wifiscan/pkg/scan"
	"github.com/dogeorg/wifiscan/pkg/system/network"
	network_wifi "github.com/dogeorg/wifiscan/pkg/system/network/wifi"
	"github.com/spf13/cobra"
)

func (a *app) scanner() (network_wifi.WifiScanner, error) {
	return network_wifi.NewWifiScanner(network_wifi.ScannerConfig{
		Backend:       a.config.Backend,
		APForce:       a.config.APForce,
		Timeout:       a.config.Timeout,
		SkipMalformed: a.config.SkipMalformed,
		Logger:        a.log,
	})
}

func (a *app) networkManager() (*network.NetworkManagerLinux, error) {
	s, err := a.scanner()
	if err != nil {
		return nil, err
	}
	return network.NewNetworkManager(s, a.log), nil
}

func newScanCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		format  string
	)

	cmd := &cobra.Command{
		Use:   "scan [interface]",
		Short: "Scan for access points on an interface, or on every wifi interface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iface := a.config.Interface
			if len(args) == 1 {
				iface = args[0]
			}

			if iface != "" {
				s, err := a.scanner()
				if err != nil {
					return err
				}
				cells, err := network_wifi.Where(cmd.Context(), s, iface, filters.predicate(cmd))
				if err != nil {
					return err
				}
				scan.SortBySignal(cells)
				return writeCells(cmd.OutOrStdout(), format, cells)
			}

			nm, err := a.networkManager()
			if err != nil {
				return err
			}
			scans, err := nm.GetAvailableNetworks(cmd.Context())
			if err != nil {
				return err
			}
			keep := filters.predicate(cmd)
			for i := range scans {
				scans[i].Cells = scan.Select(scans[i].Cells, keep)
			}
			return writeScans(cmd.OutOrStdout(), format, scans)
		},
	}

	cmd.Flags().StringVarP(&a.flags.Interface, "interface", "i", "", "Interface to scan (default: all wifi interfaces)")
	filters.register(cmd)
	registerOutput(cmd, &format)
	return cmd
}

func newInterfacesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "List wifi interfaces found through nl80211",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nm, err := a.networkManager()
			if err != nil {
				return err
			}
			ifaces, err := nm.Interfaces(cmd.Context())
			if err != nil {
				return err
			}
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), ifaces)
			}
			for _, i := range ifaces {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", i.Index, i.Name, i.HardwareAddr, i.Type)
			}
			return nil
		},
	}

	registerOutput(cmd, &format)
	return cmd
}
