package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitor_Snapshot_CountsConcurrentUpdates(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			monitor.Connected()
			monitor.Routed()
			monitor.Routed()
			monitor.Dropped()
			monitor.Disconnected()
		}()
	}
	wg.Wait()

	stats := monitor.Snapshot(3)
	req.Equal(3, stats.OnlineUsers)
	req.Equal(uint64(50), stats.Connects)
	req.Equal(uint64(50), stats.Disconnects)
	req.Equal(uint64(100), stats.Routed)
	req.Equal(uint64(50), stats.Dropped)
	req.NotEmpty(stats.Uptime)
}
