package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// Frame mirrors what the server writes on the socket.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ChatAddr == "" {
		s.T().Skip("CHAT_ADDR not set, no server to talk to")
	}
}

func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Client is a browser-like HTTP client keeping its session cookie.
type Client struct {
	http *http.Client
	base string
}

func (s *BaseSuite) NewClient() *Client {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	return &Client{
		http: &http.Client{Jar: jar, Timeout: 10 * time.Second},
		base: "http://" + s.Config.ChatAddr,
	}
}

// Do sends body as JSON and decodes the response into out when it is not nil.
func (c *Client) Do(method, path string, body, out any) (int, error) {
	var reader bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reader).Encode(body); err != nil {
			return 0, err
		}
	}
	r, err := http.NewRequest(method, c.base+path, &reader)
	if err != nil {
		return 0, err
	}
	r.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(r)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// Dial opens the socket of userID, sending the session cookie of the client.
func (s *BaseSuite) Dial(c *Client, userID string) *websocket.Conn {
	u := url.URL{Scheme: "ws", Host: s.Config.ChatAddr, Path: "/ws", RawQuery: "userId=" + url.QueryEscape(userID)}
	header := http.Header{}
	cookies := c.http.Jar.Cookies(&url.URL{Scheme: "http", Host: s.Config.ChatAddr})
	for _, cookie := range cookies {
		header.Add("Cookie", cookie.String())
	}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
	s.Require().NoError(err, "Failed to open websocket at "+u.String())
	return conn
}

// Await reads frames until one named event arrives or the timeout expires.
func (s *BaseSuite) Await(conn *websocket.Conn, event string, timeout time.Duration) Frame {
	deadline := time.Now().Add(timeout)
	for {
		s.Require().NoError(conn.SetReadDeadline(deadline))
		var f Frame
		s.Require().NoError(conn.ReadJSON(&f), "waiting for "+event)
		if f.Event == event {
			return f
		}
	}
}

// Absent reads frames for the whole window and fails if one named event arrives.
// The connection cannot be read from afterwards.
func (s *BaseSuite) Absent(conn *websocket.Conn, event string, window time.Duration) {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(window)))
	for {
		var f Frame
		err := conn.ReadJSON(&f)
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return
		}
		s.Require().NoError(err, "reading while checking "+event+" is absent")
		s.Require().NotEqual(event, f.Event, "unexpected "+event)
	}
}

// AdminConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseSuite) AdminConn(t *testing.T) *grpc.ClientConn {
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(s.Config.AdminAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.AdminAddr)
	return conn
}
