package network

import (
	"context"

	network_wifi "github.com/dogeorg/wifiscan/pkg/system/network/wifi"
	"github.com/sirupsen/logrus"
)

func NewNetworkManager(scanner network_wifi.WifiScanner, log logrus.FieldLogger) *NetworkManagerLinux {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &NetworkManagerLinux{
		Lister:      nl80211Lister{},
		WifiScanner: scanner,
		log:         log,
	}
}

type WifiInterface struct {
	Name         string `json:"name"`
	Index        int    `json:"index"`
	HardwareAddr string `json:"hardwareAddr,omitempty"`
	Type         string `json:"type"`
}

type InterfaceLister interface {
	Interfaces(ctx context.Context) ([]WifiInterface, error)
}
