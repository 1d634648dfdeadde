package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dogeorg/wifiscan/pkg/scan"
	"github.com/dogeorg/wifiscan/pkg/system/network"
	"github.com/go-resty/resty/v2"
)

// Client talks to a remote `wifiscan serve`.
type Client struct {
	client *resty.Client
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wifiscan api: %d: %s", e.Status, e.Message)
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type networksResponse struct {
	Success  bool                    `json:"success"`
	Networks []network.InterfaceScan `json:"networks"`
}

type cellsResponse struct {
	Success bool        `json:"success"`
	Cells   []scan.Cell `json:"cells"`
}

type interfacesResponse struct {
	Success    bool                    `json:"success"`
	Interfaces []network.WifiInterface `json:"interfaces"`
}

func New(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(timeout)

	return &Client{client: client}
}

func (t *Client) Networks(ctx context.Context) ([]network.InterfaceScan, error) {
	var result networksResponse
	if err := t.get(ctx, "/networks", &result); err != nil {
		return nil, err
	}
	return result.Networks, nil
}

func (t *Client) InterfaceNetworks(ctx context.Context, iface string) ([]scan.Cell, error) {
	var result cellsResponse
	if err := t.get(ctx, "/networks/"+iface, &result); err != nil {
		return nil, err
	}
	return result.Cells, nil
}

func (t *Client) Interfaces(ctx context.Context) ([]network.WifiInterface, error) {
	var result interfacesResponse
	if err := t.get(ctx, "/interfaces", &result); err != nil {
		return nil, err
	}
	return result.Interfaces, nil
}

// Parse sends captured scan output to the server for parsing.
func (t *Client) Parse(ctx context.Context, raw string, skipMalformed bool) ([]scan.Cell, error) {
	var result cellsResponse
	var failure errorResponse

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		SetQueryParam("skip", fmt.Sprint(skipMalformed)).
		SetBody(raw).
		SetResult(&result).
		SetError(&failure).
		Post("/parse")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp, failure)
	}
	return result.Cells, nil
}

func (t *Client) get(ctx context.Context, path string, result any) error {
	var failure errorResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&failure).
		Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp, failure)
	}
	return nil
}

func apiError(resp *resty.Response, failure errorResponse) error {
	msg := failure.Error.Message
	if msg == "" {
		msg = resp.Status()
	}
	return &APIError{Status: resp.StatusCode(), Message: msg}
}
