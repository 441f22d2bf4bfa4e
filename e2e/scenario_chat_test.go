package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type testChatSuite struct {
	BaseSuite
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, &testChatSuite{})
}

type user struct {
	ID string `json:"_id"`
}

type message struct {
	ID         string `json:"_id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
	Read       bool   `json:"read"`
}

func (s *testChatSuite) signup(c *Client, name string) user {
	var u user
	code, err := c.Do(http.MethodPost, "/api/auth/signup", map[string]string{
		"fullName": name,
		"email":    name + "-" + uuid.NewString()[:8] + "@example.com",
		"password": "secret-password",
	}, &u)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, code)
	return u
}

func (s *testChatSuite) TestMessageFlow() {
	alice, bob := s.NewClient(), s.NewClient()
	var aliceUser, bobUser user

	s.Run("Step 1: Sign up two users", func() {
		s.Step("Signup")
		aliceUser = s.signup(alice, "alice")
		bobUser = s.signup(bob, "bob")
	})

	aliceWS := s.Dial(alice, aliceUser.ID)
	defer aliceWS.Close()
	bobWS := s.Dial(bob, bobUser.ID)
	defer bobWS.Close()

	var sent message
	s.Run("Step 2: A message is pushed to the online receiver", func() {
		s.Step("Send")
		code, err := alice.Do(http.MethodPost, "/api/messages/send/"+bobUser.ID, map[string]string{"text": "hello bob"}, &sent)
		s.Require().NoError(err)
		s.Require().Equal(http.StatusCreated, code)

		f := s.Await(bobWS, "newMessage", 5*time.Second)
		var pushed message
		s.Require().NoError(json.Unmarshal(f.Data, &pushed))
		s.Equal(sent.ID, pushed.ID)
		s.Equal("hello bob", pushed.Text)
	})

	s.Run("Step 3: Typing reaches the other side", func() {
		s.Step("Typing")
		s.Require().NoError(bobWS.WriteJSON(map[string]any{
			"event": "start-typing",
			"data":  map[string]string{"recipientId": aliceUser.ID},
		}))
		f := s.Await(aliceWS, "typing", 5*time.Second)
		s.JSONEq(`{"userId":"`+bobUser.ID+`"}`, string(f.Data))
	})

	s.Run("Step 4: The receiver marks the message as read", func() {
		s.Step("Read")
		var read message
		code, err := bob.Do(http.MethodPut, "/api/messages/read/"+sent.ID, nil, &read)
		s.Require().NoError(err)
		s.Require().Equal(http.StatusOK, code)
		s.True(read.Read)

		f := s.Await(aliceWS, "message-read", 5*time.Second)
		s.Contains(string(f.Data), `"readStatus":"seen"`)
	})

	s.Run("Step 5: History is shared by both sides", func() {
		s.Step("History")
		var history []message
		code, err := bob.Do(http.MethodGet, "/api/messages/"+aliceUser.ID, nil, &history)
		s.Require().NoError(err)
		s.Require().Equal(http.StatusOK, code)
		s.Require().NotEmpty(history)
		s.Equal(sent.ID, history[len(history)-1].ID)
	})
}

func (s *testChatSuite) TestOfflineMessageNotReplayed() {
	alice, bob := s.NewClient(), s.NewClient()
	aliceUser := s.signup(alice, "alice")
	bobUser := s.signup(bob, "bob")

	aliceWS := s.Dial(alice, aliceUser.ID)
	defer aliceWS.Close()

	s.Run("Step 1: Alice writes while Bob is offline", func() {
		s.Step("Send offline")
		var sent message
		code, err := alice.Do(http.MethodPost, "/api/messages/send/"+bobUser.ID, map[string]string{"text": "are you there?"}, &sent)
		s.Require().NoError(err)
		s.Require().Equal(http.StatusCreated, code)
	})

	s.Run("Step 2: Bob connects and gets no backlog on the socket", func() {
		s.Step("Reconnect")
		bobWS := s.Dial(bob, bobUser.ID)
		defer bobWS.Close()
		s.Await(bobWS, "getOnlineUsers", 5*time.Second)
		s.Absent(bobWS, "newMessage", time.Second)
	})

	s.Run("Step 3: The message is only found in the history", func() {
		s.Step("History")
		var history []message
		code, err := bob.Do(http.MethodGet, "/api/messages/"+aliceUser.ID, nil, &history)
		s.Require().NoError(err)
		s.Require().Equal(http.StatusOK, code)
		s.Require().Len(history, 1)
		s.Equal("are you there?", history[0].Text)
	})
}

func (s *testChatSuite) TestAdmin() {
	if s.Config.AdminAddr == "" {
		s.T().Skip("ADMIN_ADDR not set")
	}
	conn := s.AdminConn(s.T())
	defer conn.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	s.Require().NoError(err)
	s.Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	stats := &structpb.Struct{}
	s.Require().NoError(conn.Invoke(ctx, "/chatlive.admin.v1.Admin/Stats", &emptypb.Empty{}, stats))
	s.Contains(stats.AsMap(), "online_users")
}
