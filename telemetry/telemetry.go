// Package telemetry provides opt-in telemetry collection for rowset-go.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"
)

// QueryEvent represents one executed statement.
type QueryEvent struct {
	EventType    string         `json:"event_type"`
	Provider     string         `json:"provider,omitempty"`
	Duration     *time.Duration `json:"duration,omitempty"`
	ErrorKind    string         `json:"error_kind,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	Version      string         `json:"version"`
	OS           string         `json:"os"`
	Architecture string         `json:"architecture"`
}

// Collector manages telemetry collection.
type Collector struct {
	enabled       bool
	endpoint      string
	events        []QueryEvent
	mu            sync.Mutex
	httpClient    *http.Client
	version       string
	batchSize     int
	flushInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

var (
	globalCollector *Collector
	once            sync.Once
)

// Init initializes the global telemetry collector. Telemetry is off
// unless explicitly enabled, and the ROWSET_GO_TELEMETRY_DISABLED and
// DO_NOT_TRACK environment variables always win.
func Init(version string, enabled bool) {
	once.Do(func() {
		globalCollector = &Collector{
			enabled:       enabled && !isDisabled(),
			endpoint:      endpoint(),
			events:        make([]QueryEvent, 0, 100),
			httpClient:    &http.Client{Timeout: 5 * time.Second},
			version:       version,
			batchSize:     10,
			flushInterval: 30 * time.Second,
			stopChan:      make(chan struct{}),
		}

		if globalCollector.enabled {
			globalCollector.startBackgroundFlush()
		}
	})
}

// RecordQuery records one statement execution. ErrorKind is a coarse
// classification only; no SQL text or data values ever leave the
// process.
func RecordQuery(provider string, duration time.Duration, err error) {
	if globalCollector == nil || !globalCollector.enabled {
		return
	}

	event := QueryEvent{
		EventType:    "query",
		Provider:     provider,
		Duration:     &duration,
		Timestamp:    time.Now(),
		Version:      globalCollector.version,
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
	if err != nil {
		event.ErrorKind = errorKind(err)
	}

	globalCollector.recordEvent(event)
}

// errorKind maps an error to its coarse telemetry label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

// recordEvent adds an event to the collector.
func (c *Collector) recordEvent(event QueryEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = append(c.events, event)

	// Flush if batch size reached
	if len(c.events) >= c.batchSize {
		go c.flush()
	}
}

// flush sends collected events to the telemetry endpoint.
func (c *Collector) flush() {
	c.mu.Lock()
	if len(c.events) == 0 {
		c.mu.Unlock()
		return
	}

	events := make([]QueryEvent, len(c.events))
	copy(events, c.events)
	c.events = c.events[:0]
	c.mu.Unlock()

	go c.sendEvents(events)
}

// sendEvents sends events to the telemetry endpoint.
func (c *Collector) sendEvents(events []QueryEvent) {
	if len(events) == 0 {
		return
	}

	payload := map[string]interface{}{
		"events": events,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		// Silently fail - telemetry should never break the application
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("rowset-go/%s", c.version))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)
}

// startBackgroundFlush starts a background goroutine to flush events periodically.
func (c *Collector) startBackgroundFlush() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(c.flushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.flush()
			case <-c.stopChan:
				c.flush()
				return
			}
		}
	}()
}

// Shutdown flushes pending events and stops the collector.
func Shutdown() {
	if globalCollector == nil || !globalCollector.enabled {
		return
	}
	close(globalCollector.stopChan)
	globalCollector.wg.Wait()
}

// isDisabled reports whether the user opted out via the environment.
func isDisabled() bool {
	if os.Getenv("ROWSET_GO_TELEMETRY_DISABLED") != "" {
		return true
	}
	if os.Getenv("DO_NOT_TRACK") != "" {
		return true
	}
	return false
}

// endpoint resolves the telemetry endpoint, overridable for testing.
func endpoint() string {
	if ep := os.Getenv("ROWSET_GO_TELEMETRY_ENDPOINT"); ep != "" {
		return ep
	}
	return "https://telemetry.rowset-go.dev/v1/events"
}
