// Package metrics submits bot usage counters to InfluxDB. Metrics are
// optional: a nil *Client is valid and turns every method into a no-op.
package metrics

import (
	"context"
	"runtime"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
)

// Config holds the InfluxDB connection settings.
type Config struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// Client collects usage counters and flushes them to InfluxDB once a
// minute.
type Client struct {
	write api.WriteAPI
	log   *zap.SugaredLogger

	mu       sync.Mutex
	commands map[string]uint32
	lookups  uint32
	resolves uint32
}

// New creates a metrics client. It returns nil when the config carries no
// URL or token, which disables metrics for the whole process.
func New(cfg Config, log *zap.SugaredLogger) *Client {
	if cfg.URL == "" || cfg.Token == "" {
		return nil
	}

	c := &Client{
		log:      log,
		commands: make(map[string]uint32),
	}
	c.write = influxdb2.NewClientWithOptions(cfg.URL, cfg.Token,
		influxdb2.DefaultOptions().SetBatchSize(20)).WriteAPI(cfg.Org, cfg.Bucket)
	return c
}

// IncCommand counts one handled slash command.
func (c *Client) IncCommand(name string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.commands[name]++
	c.mu.Unlock()
}

// IncLookup counts one Hypixel player fetch.
func (c *Client) IncLookup() {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.lookups++
	c.mu.Unlock()
}

// IncResolve counts one stat query resolution.
func (c *Client) IncResolve() {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.resolves++
	c.mu.Unlock()
}

// Run submits counters on a fixed interval until ctx is cancelled, then
// flushes whatever is buffered.
func (c *Client) Run(ctx context.Context) {
	if c == nil {
		return
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			go c.submit()
		case <-ctx.Done():
			c.write.Flush()
			return
		}
	}
}

func (c *Client) submit() {
	c.log.Debug("submitting metrics")

	c.mu.Lock()
	fields := make(map[string]interface{}, len(c.commands))
	var totalCommands uint32
	for name, count := range c.commands {
		totalCommands += count
		fields[name] = count
		c.commands[name] = 0
	}
	lookups := c.lookups
	c.lookups = 0
	resolves := c.resolves
	c.resolves = 0
	c.mu.Unlock()

	now := time.Now()
	if len(fields) > 0 {
		c.write.WritePoint(influxdb2.NewPoint("commands", nil, fields, now))
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	data := map[string]interface{}{
		"commands":    totalCommands,
		"lookups":     lookups,
		"resolves":    resolves,
		"alloc":       stats.Alloc,
		"sys":         stats.Sys,
		"total_alloc": stats.TotalAlloc,
		"goroutines":  runtime.NumGoroutine(),
	}

	sysMem, err := mem.VirtualMemory()
	if err != nil {
		c.log.Warnw("reading system memory", "error", err)
	} else {
		data["total_sys"] = sysMem.Used
		data["total_sys_percent"] = sysMem.UsedPercent
	}

	cpuData, err := cpu.Percent(0, false)
	if err != nil {
		c.log.Warnw("reading cpu usage", "error", err)
	} else if len(cpuData) > 0 {
		data["cpu_percent"] = cpuData[0]
	}

	c.write.WritePoint(influxdb2.NewPoint("statistics", nil, data, now))
}
