package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"
)

// Change is what the relay pushes to websocket clients.
type Change struct {
	Type   string `json:"type"`
	Update any    `json:"update,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Represents a websocket connection from a client
type WSCONN struct {
	WS   *websocket.Conn
	Stop chan bool
	once *sync.Once
}

func newWSConn(ws *websocket.Conn) *WSCONN {
	return &WSCONN{WS: ws, Stop: make(chan bool), once: &sync.Once{}}
}

func (t *WSCONN) IsClosed() bool {
	select {
	case <-t.Stop:
		return true
	default:
		return false
	}
}

func (t *WSCONN) Close() {
	t.once.Do(func() {
		close(t.Stop)
		t.WS.Close()
	})
}

/* WSRelay
 *
 * WSRelay rescans every wifi interface each interval and
 * pushes the result to every connected websocket. Sockets
 * are only touched from the relay's own loop; handlers hand
 * new connections over on newWs.
 */
type WSRelay struct {
	nm       NetworkManager
	interval time.Duration
	log      logrus.FieldLogger
	socks    []*WSCONN
	newWs    chan *WSCONN
	done     chan struct{}
}

func NewWSRelay(nm NetworkManager, interval time.Duration, log logrus.FieldLogger) *WSRelay {
	return &WSRelay{
		nm:       nm,
		interval: interval,
		log:      log,
		socks:    []*WSCONN{},
		newWs:    make(chan *WSCONN),
		done:     make(chan struct{}),
	}
}

func (t *WSRelay) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			defer close(t.done)
			ticker := time.NewTicker(t.interval)
			defer ticker.Stop()
		mainloop:
			for {
				select {
				case <-ctx.Done():
					break mainloop
				case ws := <-t.newWs:
					t.AddSock(ws)
				case <-ticker.C:
					t.prune()
					if len(t.socks) == 0 {
						continue mainloop
					}
					t.Broadcast(t.snapshot(ctx))
				}
			}
			for _, sock := range t.socks {
				sock.Close()
			}
		}()

		started <- true
		<-stop
		cancel()
		<-t.done
		stopped <- true
	}()
	return nil
}

func (t *WSRelay) snapshot(ctx context.Context) Change {
	scans, err := t.nm.GetAvailableNetworks(ctx)
	if err != nil {
		return Change{Type: "networks", Error: err.Error()}
	}
	return Change{Type: "networks", Update: scans}
}

func (t *WSRelay) Broadcast(v any) {
	for _, ws := range t.socks {
		if ws.IsClosed() {
			continue
		}
		if err := websocket.JSON.Send(ws.WS, v); err != nil {
			t.log.WithError(err).Debug("Dropping websocket")
			ws.Close()
		}
	}
	t.prune()
}

func (t *WSRelay) AddSock(ws *WSCONN) {
	t.socks = append(t.socks, ws)
	t.log.WithField("sockets", len(t.socks)).Debug("Accepted websocket")
}

func (t *WSRelay) prune() {
	open := t.socks[:0]
	for _, ws := range t.socks {
		if !ws.IsClosed() {
			open = append(open, ws)
		}
	}
	t.socks = open
}

func (t *WSRelay) GetWSHandler(initialPayloader func() any) *websocket.Server {
	return &websocket.Server{
		// CORS is wide open on the REST side too.
		Handshake: func(*websocket.Config, *http.Request) error { return nil },
		Handler: func(ws *websocket.Conn) {
			conn := newWSConn(ws)

			if err := websocket.JSON.Send(ws, initialPayloader()); err != nil {
				t.log.WithError(err).Debug("failed to send initial payload")
				conn.Close()
				return
			}

			select {
			case t.newWs <- conn:
			case <-t.done:
				conn.Close()
				return
			}

			// Clients never send anything; a read error means they went away.
			go func() {
				var msg string
				for websocket.Message.Receive(ws, &msg) == nil {
				}
				conn.Close()
			}()

			<-conn.Stop // hold the connection until stopper closes
		},
	}
}

func (t api) getNetworkSocket(w http.ResponseWriter, r *http.Request) {
	if t.ws == nil {
		t.sendErrorResponse(w, http.StatusServiceUnavailable, "Network updates are disabled")
		return
	}
	initialPayload := func() any {
		return t.ws.snapshot(r.Context())
	}
	t.ws.GetWSHandler(initialPayload).ServeHTTP(w, r)
}
