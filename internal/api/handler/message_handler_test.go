package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skillx/skillx-api/internal/core/domain"
)

type stubMessageService struct {
	sendFn         func(ctx context.Context, senderID, receiverID, content string) error
	conversationFn func(ctx context.Context, userID, otherID string) ([]domain.Message, error)
}

func (s *stubMessageService) Send(ctx context.Context, senderID, receiverID, content string) error {
	return s.sendFn(ctx, senderID, receiverID, content)
}

func (s *stubMessageService) Conversation(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	return s.conversationFn(ctx, userID, otherID)
}

func TestMessageHandler_Send(t *testing.T) {
	var gotSender, gotReceiver, gotContent string
	h := NewMessageHandler(&stubMessageService{
		sendFn: func(ctx context.Context, senderID, receiverID, content string) error {
			gotSender, gotReceiver, gotContent = senderID, receiverID, content
			return nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPost, "/api/messages",
		`{"receiver_id":"u2","content":"hola"}`)
	c.Set("user_id", "u1")

	if err := h.Send(c); err != nil {
		t.Fatalf("send: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotSender != "u1" || gotReceiver != "u2" || gotContent != "hola" {
		t.Fatalf("unexpected call %s %s %q", gotSender, gotReceiver, gotContent)
	}
}

func TestMessageHandler_Send_MissingContent(t *testing.T) {
	h := NewMessageHandler(&stubMessageService{
		sendFn: func(ctx context.Context, senderID, receiverID, content string) error {
			t.Fatalf("service should not be called on invalid input")
			return nil
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/messages", `{"receiver_id":"u2"}`)
	c.Set("user_id", "u1")

	err := h.Send(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestMessageHandler_Conversation(t *testing.T) {
	sent := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	h := NewMessageHandler(&stubMessageService{
		conversationFn: func(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
			if userID != "u1" || otherID != "u2" {
				t.Fatalf("unexpected pair %s %s", userID, otherID)
			}
			return []domain.Message{
				{ID: "m1", SenderID: "u1", ReceiverID: "u2", Content: "hola", SentAt: sent},
				{ID: "m2", SenderID: "u2", ReceiverID: "u1", Content: "hey", SentAt: sent.Add(time.Minute)},
			}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/messages/u2", "")
	c.SetParamNames("otherId")
	c.SetParamValues("u2")
	c.Set("user_id", "u1")

	if err := h.Conversation(c); err != nil {
		t.Fatalf("conversation: %v", err)
	}

	var body []struct {
		ID      string `json:"id"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 2 || body[0].ID != "m1" || body[1].Content != "hey" {
		t.Fatalf("unexpected body %+v", body)
	}
}
