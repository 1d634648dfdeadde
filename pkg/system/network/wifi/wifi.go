package network_wifi

import (
	"context"
	"fmt"
	"time"

	"github.com/dogeorg/wifiscan/pkg/scan"
	"github.com/sirupsen/logrus"
)

const DefaultScanTimeout = 15 * time.Second

type WifiScanner interface {
	Scan(ctx context.Context, networkInterface string) ([]scan.Cell, error)
}

type ScannerConfig struct {
	Backend       string // "iw" or "iwlist"
	APForce       bool
	Timeout       time.Duration
	SkipMalformed bool
	Executor      CommandExecutor
	Logger        logrus.FieldLogger
}

func NewWifiScanner(config ScannerConfig) (WifiScanner, error) {
	base := commandScanner{
		timeout:       config.Timeout,
		skipMalformed: config.SkipMalformed,
		executor:      config.Executor,
		log:           config.Logger,
	}
	if base.timeout <= 0 {
		base.timeout = DefaultScanTimeout
	}
	if base.executor == nil {
		base.executor = execExecutor{}
	}
	if base.log == nil {
		base.log = logrus.StandardLogger()
	}

	switch config.Backend {
	case "", "iw":
		return IWScanner{commandScanner: base, APForce: config.APForce}, nil
	case "iwlist":
		return IWListScanner{commandScanner: base}, nil
	default:
		return nil, fmt.Errorf("unknown scan backend %q", config.Backend)
	}
}

// Where scans networkInterface and keeps the cells for which keep is true.
func Where(ctx context.Context, s WifiScanner, networkInterface string, keep func(scan.Cell) bool) ([]scan.Cell, error) {
	cells, err := s.Scan(ctx, networkInterface)
	if err != nil {
		return nil, err
	}
	return scan.Select(cells, keep), nil
}
