package workers

import (
	"chat-live/contract"
	"chat-live/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker periodically logs the health of the process
// together with the session layer counters.
type HeartbeatWorker struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	registry contract.IRegistry
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitor *observability.Monitor,
	registry contract.IRegistry, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, monitor: monitor, registry: registry, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	stats := w.monitor.Snapshot(len(w.registry.AllOnline()))
	rss, cpu, err := selfStats(p)
	if err != nil {
		w.log.Error("Failed to collect self stats", "err", err)
	}
	w.log.Info("Heartbeat",
		"online_users", stats.OnlineUsers,
		"connects", stats.Connects,
		"disconnects", stats.Disconnects,
		"routed", stats.Routed,
		"dropped", stats.Dropped,
		"uptime", stats.Uptime,
		"rss_bytes", rss,
		"cpu_percent", cpu,
	)
}

// selfStats retrieves memory and CPU usage of the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
