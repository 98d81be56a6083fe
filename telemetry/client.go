// Package telemetry uploads startup reports to the fleet endpoint. It
// dials with the trust store installed at bootstrap, so a degraded
// trust store surfaces here first.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/roadhud/roadhud-go/certs"
	"github.com/roadhud/roadhud-go/diag"
)

const (
	startupEndpoint = "/api/v1/startup"
	userAgent       = "roadhud/1.0"
	defaultTimeout  = 10 * time.Second
)

// Client posts reports to a telemetry base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given base URL. The TLS
// configuration is whatever certs installed; on boards without a
// trust-store override the platform default applies.
func NewClient(baseURL string) *Client {
	transport := http.DefaultTransport
	if cfg := certs.Default(); cfg != nil {
		t := &http.Transport{TLSClientConfig: cfg}
		transport = t
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}
}

// PostStartupReport uploads a bootstrap report. Callers treat errors as
// non-fatal; the dashboard runs fine without telemetry.
func (c *Client) PostStartupReport(ctx context.Context, report diag.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	url := c.baseURL + startupEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Device-ID", report.DeviceID)
	req.Header.Set("Board", report.Board)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telemetry returned status %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}
