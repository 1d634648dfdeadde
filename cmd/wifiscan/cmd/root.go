package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the resolved configuration and logger between the root
// command and its subcommands.
type app struct {
	configFile string
	flags      wifiscan.ScanConfig
	config     wifiscan.ScanConfig
	log        *logrus.Logger
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	a := &app{flags: wifiscan.DefaultScanConfig()}

	rootCmd := &cobra.Command{
		Use:          "wifiscan",
		Short:        "wifiscan parses wireless scan output into access point records",
		Long:         `wifiscan runs or reads the output of "iw dev <iface> scan" / "iwlist <iface> scan" and turns it into structured access point records.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "Be verbose")
	pf.BoolVar(&a.flags.JSONLogs, "json-logs", false, "Log as JSON")
	pf.StringVar(&a.flags.Backend, "backend", a.flags.Backend, "Scan command to run: iw or iwlist")
	pf.BoolVar(&a.flags.APForce, "ap-force", a.flags.APForce, "Pass ap-force to iw")
	pf.DurationVar(&a.flags.Timeout, "timeout", a.flags.Timeout, "Scan command timeout")
	pf.BoolVar(&a.flags.SkipMalformed, "skip-malformed", false, "Skip cells that fail to parse instead of failing")

	rootCmd.AddCommand(
		newParseCmd(a),
		newScanCmd(a),
		newInterfacesCmd(a),
		newServeCmd(a),
		newRemoteCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// load resolves configuration: defaults, then the config file, then
// WIFISCAN_* variables, then flags given on the command line.
func (a *app) load(cmd *cobra.Command) error {
	config := wifiscan.DefaultScanConfig()
	if a.configFile != "" {
		if err := wifiscan.LoadConfigFile(a.configFile, &config); err != nil {
			return err
		}
	}
	if err := wifiscan.ApplyEnv(&config, os.Getenv); err != nil {
		return err
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		a.overlay(f.Name, &config)
	})
	if err := config.Validate(); err != nil {
		return err
	}

	a.config = config
	a.log = wifiscan.NewLogger(config, cmd.ErrOrStderr())
	return nil
}

func (a *app) overlay(flag string, dst *wifiscan.ScanConfig) {
	switch flag {
	case "verbose":
		dst.Verbose = a.flags.Verbose
	case "json-logs":
		dst.JSONLogs = a.flags.JSONLogs
	case "backend":
		dst.Backend = a.flags.Backend
	case "ap-force":
		dst.APForce = a.flags.APForce
	case "timeout":
		dst.Timeout = a.flags.Timeout
	case "skip-malformed":
		dst.SkipMalformed = a.flags.SkipMalformed
	case "interface":
		dst.Interface = a.flags.Interface
	case "addr":
		dst.Bind = a.flags.Bind
	case "port":
		dst.Port = a.flags.Port
	case "interval":
		dst.Interval = a.flags.Interval
	}
}
