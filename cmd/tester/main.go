package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/kelseyhightower/envconfig"
)

// Config of the load tester. Sessions connect without a cookie, the server must
// run with WS_REQUIRE_AUTH=false.
type Config struct {
	Addr     string        `envconfig:"TESTER_ADDR" default:"localhost:8080"`
	Sessions int           `envconfig:"TESTER_SESSIONS" default:"50"`
	Duration time.Duration `envconfig:"TESTER_DURATION" default:"30s"`
	Interval time.Duration `envconfig:"TESTER_INTERVAL" default:"200ms"`
	Colours  bool          `envconfig:"TESTER_COLOURS" default:"true"`
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type counters struct {
	mu       sync.Mutex
	received map[string]int
	sent     atomic.Int64
	failed   atomic.Int64
}

func (c *counters) receive(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.received[event]++
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if cfg.Sessions < 2 {
		log.Fatalf("TESTER_SESSIONS must be at least 2, got %d", cfg.Sessions)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	stats := &counters{received: make(map[string]int)}
	title(cfg, fmt.Sprintf("Opening %d sessions on %s for %s", cfg.Sessions, cfg.Addr, cfg.Duration))

	var wg sync.WaitGroup
	for i := 0; i < cfg.Sessions; i++ {
		userID := fmt.Sprintf("load-%04d", i)
		peerID := fmt.Sprintf("load-%04d", (i+1)%cfg.Sessions)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := session(ctx, cfg, userID, peerID, stats); err != nil {
				stats.failed.Add(1)
				log.Printf("session %s: %v", userID, err)
			}
		}()
	}
	wg.Wait()

	report(cfg, stats)
}

// session talks to its peer in a ring: typing on and off, plus receipts for fake messages.
func session(ctx context.Context, cfg Config, userID, peerID string, stats *counters) error {
	u := url.URL{Scheme: "ws", Host: cfg.Addr, Path: "/ws", RawQuery: "userId=" + userID}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			var f frame
			if err := conn.ReadJSON(&f); err != nil {
				return
			}
			stats.receive(f.Event)
		}
	}()

	signals := []frame{
		{Event: "start-typing", Data: mustJSON(map[string]string{"recipientId": peerID})},
		{Event: "stop-typing", Data: mustJSON(map[string]string{"recipientId": peerID})},
	}
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			<-readDone
			return nil
		case <-ticker.C:
		}
		out := signals[i%len(signals)]
		if i%5 == 4 {
			out = frame{Event: "message-delivered", Data: mustJSON(map[string]string{
				"messageId":  fmt.Sprintf("%s-%d", userID, i),
				"senderId":   userID,
				"receiverId": peerID,
			})}
		}
		if err := conn.WriteJSON(out); err != nil {
			if ctx.Err() != nil {
				<-readDone
				return nil
			}
			return err
		}
		stats.sent.Add(1)
	}
}

func report(cfg Config, stats *counters) {
	title(cfg, "Result")
	fmt.Printf("frames sent     : %d\n", stats.sent.Load())
	failed := fmt.Sprintf("sessions failed : %d", stats.failed.Load())
	if cfg.Colours && stats.failed.Load() > 0 {
		failed = color.FgRed.Render(failed)
	}
	fmt.Println(failed)

	stats.mu.Lock()
	defer stats.mu.Unlock()
	events := make([]string, 0, len(stats.received))
	for event := range stats.received {
		events = append(events, event)
	}
	sort.Strings(events)
	for _, event := range events {
		fmt.Printf("received %-17s: %d\n", event, stats.received[event])
	}
}

func title(cfg Config, s string) {
	header := fmt.Sprintf("  ====== %s ======", s)
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
