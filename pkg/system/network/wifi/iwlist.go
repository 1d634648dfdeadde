package network_wifi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dogeorg/wifiscan/pkg/scan"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
)

var _ WifiScanner = IWScanner{}
var _ WifiScanner = IWListScanner{}

// IWScanner runs `iw dev <iface> scan [ap-force]`.
type IWScanner struct {
	commandScanner
	APForce bool
}

func (s IWScanner) Scan(ctx context.Context, interfaceName string) ([]scan.Cell, error) {
	args := []string{"dev", interfaceName, "scan"}
	if s.APForce {
		args = append(args, "ap-force")
	}
	return s.run(ctx, interfaceName, "iw", args...)
}

// IWListScanner runs `iwlist <iface> scan` for drivers that only speak
// wireless extensions.
type IWListScanner struct {
	commandScanner
}

func (s IWListScanner) Scan(ctx context.Context, interfaceName string) ([]scan.Cell, error) {
	return s.run(ctx, interfaceName, "iwlist", interfaceName, "scan")
}

type commandScanner struct {
	timeout       time.Duration
	skipMalformed bool
	executor      CommandExecutor
	log           logrus.FieldLogger
}

func (s commandScanner) run(ctx context.Context, interfaceName string, name string, args ...string) ([]scan.Cell, error) {
	log := s.log.WithFields(logrus.Fields{"interface": interfaceName, "command": name})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	out, err := s.executor.Execute(ctx, name, args...)
	if err != nil {
		var ee *ExitError
		if errors.As(err, &ee) {
			return nil, &InterfaceError{Interface: interfaceName, Output: strings.TrimSpace(decode(ee.Output)), Err: err}
		}
		return nil, err
	}

	cells, err := scan.ParseAll(decode(out), scan.SkipMalformedIf(s.skipMalformed), scan.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"cells": len(cells), "took": time.Since(start)}).Debug("scan complete")
	return cells, nil
}

// decode reads tool output as UTF-8, replacing invalid bytes.
func decode(b []byte) string {
	s, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}
