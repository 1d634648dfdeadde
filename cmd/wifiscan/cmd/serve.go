package cmd

import (
	"context"
	"time"

	"github.com/dogeorg/wifiscan/pkg/web"
	"github.com/spf13/cobra"
)

// service is the started/stopped/stop lifecycle shared by the API and
// the websocket relay.
type service interface {
	Run(started, stopped chan bool, stop chan context.Context) error
}

func newServeCmd(a *app) *cobra.Command {
	var noUpdates bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scan results over HTTP and websockets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nm, err := a.networkManager()
			if err != nil {
				return err
			}

			var relay *web.WSRelay
			services := []service{}
			if !noUpdates {
				relay = web.NewWSRelay(nm, a.config.Interval, a.log.WithField("service", "ws"))
				services = append(services, relay)
			}
			services = append(services, web.RESTAPI(a.config, nm, relay, a.log.WithField("service", "rest")))

			type running struct {
				stopped chan bool
				stop    chan context.Context
			}
			all := []running{}
			for _, s := range services {
				r := running{stopped: make(chan bool), stop: make(chan context.Context)}
				started := make(chan bool)
				if err := s.Run(started, r.stopped, r.stop); err != nil {
					return err
				}
				<-started
				all = append(all, r)
			}

			<-cmd.Context().Done()
			a.log.Info("Shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			for i := len(all) - 1; i >= 0; i-- {
				all[i].stop <- ctx
				<-all[i].stopped
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&a.flags.Bind, "addr", a.flags.Bind, "Address to bind to")
	cmd.Flags().IntVar(&a.flags.Port, "port", a.flags.Port, "REST API port")
	cmd.Flags().DurationVar(&a.flags.Interval, "interval", a.flags.Interval, "How often to push fresh scans to websocket clients")
	cmd.Flags().BoolVar(&noUpdates, "no-updates", false, "Disable the websocket scan relay")
	return cmd
}
