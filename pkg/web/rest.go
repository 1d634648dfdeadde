package web

import (
	"context"
	"fmt"
	"net/http"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/scan"
	"github.com/dogeorg/wifiscan/pkg/system/network"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// NetworkManager is the part of network.NetworkManagerLinux the API uses.
type NetworkManager interface {
	Interfaces(ctx context.Context) ([]network.WifiInterface, error)
	ScanInterface(ctx context.Context, iface string) ([]scan.Cell, error)
	GetAvailableNetworks(ctx context.Context) ([]network.InterfaceScan, error)
}

func RESTAPI(config wifiscan.ScanConfig, nm NetworkManager, ws *WSRelay, log logrus.FieldLogger) api {
	a := api{
		mux:    http.NewServeMux(),
		config: config,
		nm:     nm,
		ws:     ws,
		log:    log,
	}

	routes := map[string]http.HandlerFunc{
		"GET /interfaces":       a.getInterfaces,
		"GET /networks":         a.getNetworks,
		"GET /networks/{iface}": a.getInterfaceNetworks,
		"POST /parse":           a.parseScan,
		"GET /ws/networks":      a.getNetworkSocket,
	}

	for p, h := range routes {
		a.mux.HandleFunc(p, h)
	}
	log.Debugf("Loaded %d API routes", len(routes))

	return a
}

type api struct {
	mux    *http.ServeMux
	config wifiscan.ScanConfig
	nm     NetworkManager
	ws     *WSRelay
	log    logrus.FieldLogger
}

func (t api) Handler() http.Handler {
	return cors.AllowAll().Handler(t.mux)
}

func (t api) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		srv := &http.Server{Addr: fmt.Sprintf("%s:%d", t.config.Bind, t.config.Port), Handler: t.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				t.log.Fatalf("HTTP server ListenAndServe: %v", err)
			}
		}()

		t.log.Infof("Listening on %s", srv.Addr)
		started <- true
		ctx := <-stop
		srv.Shutdown(ctx)
		stopped <- true
	}()
	return nil
}
