package metrics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sample is one fabricated utilization datapoint for a server.
type Sample struct {
	ServerID  string  `json:"server_id"`
	Timestamp string  `json:"timestamp"`
	CPUUsage  float64 `json:"cpu_usage"`
	MemUsage  float64 `json:"mem_usage"`
	DiskUsage float64 `json:"disk_usage"`
}

// RandomSample fabricates a plausible utilization reading:
// CPU 10-90%, memory 20-90%, disk 30-80%.
func RandomSample(rnd *rand.Rand, serverID string) Sample {
	return Sample{
		ServerID:  serverID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		CPUUsage:  10 + rnd.Float64()*80,
		MemUsage:  20 + rnd.Float64()*70,
		DiskUsage: 30 + rnd.Float64()*50,
	}
}

// Agent impersonates the monitoring agents of a set of fake servers,
// pushing random samples to a collection endpoint.
type Agent struct {
	Endpoint string
	Client   *http.Client
	Log      *zap.SugaredLogger
}

// Push sends one sample as JSON. A non-2xx reply is an error.
func (a *Agent) Push(ctx context.Context, s Sample) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode sample: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Client.Do(req)
	if err != nil {
		return fmt.Errorf("push to %s failed: %w", a.Endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push to %s rejected: %s", a.Endpoint, resp.Status)
	}
	return nil
}

// Run pushes a sample for serverID every interval until ctx is done.
// Push failures are logged and the loop keeps going.
func (a *Agent) Run(ctx context.Context, serverID string, interval time.Duration) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := RandomSample(rnd, serverID)
			if err := a.Push(ctx, s); err != nil {
				a.Log.Warnw("push failed", "server", serverID, "error", err)
				continue
			}
			a.Log.Infow("pushed sample",
				"server", serverID,
				"cpu", fmt.Sprintf("%.1f", s.CPUUsage),
				"mem", fmt.Sprintf("%.1f", s.MemUsage),
				"disk", fmt.Sprintf("%.1f", s.DiskUsage))
		}
	}
}
