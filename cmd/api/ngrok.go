package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAttempts = 10
	ngrokBackoff  = 3 * time.Second
)

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL asks the local ngrok API for a public tunnel, preferring HTTPS.
// ngrok may still be starting, so unreachable or empty answers are retried.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		url, err := fetchTunnel(ctx, client, apiBase+"/api/tunnels")
		if err == nil && url != "" {
			return url, nil
		}
		lastErr = err
		if lastErr == nil {
			lastErr = fmt.Errorf("no active tunnels")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokBackoff):
		}
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnel(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode ngrok response: %w", err)
	}
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
