package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"
)

func newTestClient(t *testing.T, srv *httptest.Server, retries int) IDiscord {
	t.Helper()
	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.RetryCount = retries
	cfg.RetryDelay = time.Millisecond
	d, err := NewWithConfig(nil, DiscordWebhook{ID: "123", Token: "abc"}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func TestNew_RequiresWebhook(t *testing.T) {
	if _, err := New(nil, DiscordWebhook{}); err == nil {
		t.Fatal("expected error when webhook id/token missing")
	}
	if _, err := New(nil, DiscordWebhook{ID: "1"}); err == nil {
		t.Fatal("expected error when webhook token missing")
	}
}

func TestSendError_PostsEmbed(t *testing.T) {
	var got WebhookPayload
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := newTestClient(t, srv, 0)
	err := d.SendError(context.Background(), "Alert dispatch failed", "contact +1555000111", errors.New("invalid To number"))
	if err != nil {
		t.Fatalf("SendError() error = %v", err)
	}

	if path != "/123/abc" {
		t.Errorf("path = %q, want /123/abc", path)
	}
	if len(got.Embeds) != 1 {
		t.Fatalf("expected 1 embed, got %d", len(got.Embeds))
	}
	embed := got.Embeds[0]
	if embed.Color != ColorError {
		t.Errorf("Color = %d, want %d", embed.Color, ColorError)
	}
	if len(embed.Fields) != 1 || embed.Fields[0].Value != "invalid To number" {
		t.Errorf("unexpected fields: %+v", embed.Fields)
	}
	if got.Username != DefaultUsername {
		t.Errorf("Username = %q, want %q", got.Username, DefaultUsername)
	}
}

func TestSendWithRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := newTestClient(t, srv, 2)
	if err := d.SendError(context.Background(), "Alert dispatch failed", "", nil); err != nil {
		t.Fatalf("SendError() error = %v", err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestSendWithRetry_GivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := newTestClient(t, srv, 1)
	err := d.ReportBug(context.Background(), "panic: boom")
	if err == nil || !strings.Contains(err.Error(), "failed after 2 attempts") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReportBug_LongMessageStaysValidUTF8(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := newTestClient(t, srv, 0)
	if err := d.ReportBug(context.Background(), strings.Repeat("🚨", MaxDescriptionLen)); err != nil {
		t.Fatalf("ReportBug() error = %v", err)
	}

	desc := got.Embeds[0].Description
	if len(desc) > MaxDescriptionLen {
		t.Errorf("description length %d exceeds %d", len(desc), MaxDescriptionLen)
	}
	if !utf8.ValidString(desc) || strings.ContainsRune(desc, utf8.RuneError) {
		t.Errorf("description is not valid UTF-8")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"long", "abcdefghij", 6, "abc..."},
		{"multi-byte not split", "ab🚨cdef", 8, "ab..."},
		{"multi-byte kept whole", "ab🚨cdefgh", 10, "ab🚨c..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestCutAtRune(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"ascii", "hello", 3, "hel"},
		{"longer than input", "hi", 10, "hi"},
		{"inside emoji backs off", "a🚨b", 3, "a"},
		{"after emoji", "a🚨b", 5, "a🚨"},
		{"zero", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cutAtRune(tt.in, tt.n); got != tt.want {
				t.Errorf("cutAtRune(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
