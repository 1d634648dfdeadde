package network

import (
	"context"
	"fmt"

	"github.com/dogeorg/wifiscan/pkg/scan"
	network_wifi "github.com/dogeorg/wifiscan/pkg/system/network/wifi"
	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

var _ InterfaceLister = nl80211Lister{}

// nl80211Lister finds station interfaces through the kernel's nl80211
// netlink family.
type nl80211Lister struct{}

func (nl80211Lister) Interfaces(ctx context.Context) ([]WifiInterface, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi interface client: %w", err)
	}
	defer client.Close()

	ifis, err := client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %w", err)
	}

	out := []WifiInterface{}
	for _, ifi := range ifis {
		// Ignore anything without a netdev, eg. P2P devices.
		if ifi.Name == "" || ifi.Type != wifi.InterfaceTypeStation {
			continue
		}
		out = append(out, WifiInterface{
			Name:         ifi.Name,
			Index:        ifi.Index,
			HardwareAddr: ifi.HardwareAddr.String(),
			Type:         ifi.Type.String(),
		})
	}
	return out, nil
}

type NetworkManagerLinux struct {
	Lister      InterfaceLister
	WifiScanner network_wifi.WifiScanner
	log         logrus.FieldLogger
}

type InterfaceScan struct {
	Interface string      `json:"interface"`
	Cells     []scan.Cell `json:"cells"`
	Error     string      `json:"error,omitempty"`
}

func (t NetworkManagerLinux) Interfaces(ctx context.Context) ([]WifiInterface, error) {
	return t.Lister.Interfaces(ctx)
}

// ScanInterface scans one interface, drops cells without an SSID and
// orders the rest strongest first.
func (t NetworkManagerLinux) ScanInterface(ctx context.Context, iface string) ([]scan.Cell, error) {
	cells, err := network_wifi.Where(ctx, t.WifiScanner, iface, scan.HasSSID)
	if err != nil {
		return nil, err
	}
	scan.SortBySignal(cells)
	return cells, nil
}

// GetAvailableNetworks scans every wifi interface. A failing interface is
// reported in its InterfaceScan and does not stop the others.
func (t NetworkManagerLinux) GetAvailableNetworks(ctx context.Context) ([]InterfaceScan, error) {
	ifaces, err := t.Lister.Interfaces(ctx)
	if err != nil {
		return nil, err
	}

	out := []InterfaceScan{}
	for _, iface := range ifaces {
		log := t.log.WithField("interface", iface.Name)

		cells, err := t.ScanInterface(ctx, iface.Name)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.WithError(err).Warn("Failed to scan for wifi networks")
			out = append(out, InterfaceScan{Interface: iface.Name, Cells: []scan.Cell{}, Error: err.Error()})
			continue
		}

		log.WithField("cells", len(cells)).Debug("Scanned interface")
		out = append(out, InterfaceScan{Interface: iface.Name, Cells: cells})
	}
	return out, nil
}
