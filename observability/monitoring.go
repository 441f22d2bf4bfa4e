package observability

import (
	"sync/atomic"
	"time"
)

// Stats is a point in time view of the session layer counters.
type Stats struct {
	OnlineUsers int    `json:"online_users"`
	Connects    uint64 `json:"connects"`
	Disconnects uint64 `json:"disconnects"`
	Routed      uint64 `json:"routed"`
	Dropped     uint64 `json:"dropped"`
	Uptime      string `json:"uptime"`
}

// Monitor counts what happens in the session layer.
// All methods are safe for concurrent use.
type Monitor struct {
	startedAt   time.Time
	connects    atomic.Uint64
	disconnects atomic.Uint64
	routed      atomic.Uint64
	dropped     atomic.Uint64
}

func NewMonitor() *Monitor {
	return &Monitor{startedAt: time.Now()}
}

func (m *Monitor) Connected()    { m.connects.Add(1) }
func (m *Monitor) Disconnected() { m.disconnects.Add(1) }
func (m *Monitor) Routed()       { m.routed.Add(1) }
func (m *Monitor) Dropped()      { m.dropped.Add(1) }

// Snapshot reads every counter; onlineUsers comes from the registry.
func (m *Monitor) Snapshot(onlineUsers int) Stats {
	return Stats{
		OnlineUsers: onlineUsers,
		Connects:    m.connects.Load(),
		Disconnects: m.disconnects.Load(),
		Routed:      m.routed.Load(),
		Dropped:     m.dropped.Load(),
		Uptime:      time.Since(m.startedAt).Truncate(time.Second).String(),
	}
}
