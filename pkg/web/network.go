package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dogeorg/wifiscan/pkg/scan"
	network_wifi "github.com/dogeorg/wifiscan/pkg/system/network/wifi"
)

// Scan output for a busy area is a few hundred KB at most.
const maxParseBody = 4 << 20

func (t api) getInterfaces(w http.ResponseWriter, r *http.Request) {
	ifaces, err := t.nm.Interfaces(r.Context())
	if err != nil {
		t.sendErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	t.sendResponse(w, map[string]any{
		"success":    true,
		"interfaces": ifaces,
	})
}

func (t api) getNetworks(w http.ResponseWriter, r *http.Request) {
	scans, err := t.nm.GetAvailableNetworks(r.Context())
	if err != nil {
		t.sendErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	t.sendResponse(w, map[string]any{
		"success":  true,
		"networks": scans,
	})
}

func (t api) getInterfaceNetworks(w http.ResponseWriter, r *http.Request) {
	iface := r.PathValue("iface")

	cells, err := t.nm.ScanInterface(r.Context(), iface)
	if err != nil {
		t.sendScanError(w, err)
		return
	}
	t.sendResponse(w, map[string]any{
		"success":   true,
		"interface": iface,
		"cells":     cells,
	})
}

// parseScan parses scan output captured elsewhere and posted as the body.
// ?skip=true drops malformed cells instead of failing the request.
func (t api) parseScan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxParseBody))
	if err != nil {
		t.sendErrorResponse(w, http.StatusBadRequest, "Error reading request body")
		return
	}
	defer r.Body.Close()

	skip := t.config.SkipMalformed
	if v := r.URL.Query().Get("skip"); v != "" {
		skip, err = strconv.ParseBool(v)
		if err != nil {
			t.sendErrorResponse(w, http.StatusBadRequest, "Invalid skip parameter")
			return
		}
	}

	cells, err := scan.ParseAll(string(body), scan.SkipMalformedIf(skip), scan.WithLogger(t.log))
	if err != nil {
		t.sendScanError(w, err)
		return
	}
	t.sendResponse(w, map[string]any{
		"success": true,
		"cells":   cells,
	})
}

func (t api) sendScanError(w http.ResponseWriter, err error) {
	var ie *network_wifi.InterfaceError
	var be *scan.BlockError
	switch {
	case errors.As(err, &ie):
		t.sendErrorResponse(w, http.StatusBadGateway, err.Error())
	case errors.As(err, &be):
		t.sendErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		t.sendErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
