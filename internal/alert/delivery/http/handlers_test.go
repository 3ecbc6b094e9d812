package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safespace-srv/internal/alert"
	"safespace-srv/internal/alert/usecase"
	"safespace-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type sentItem struct {
	kind string
	to   string
	text string
}

type fakeNotifier struct {
	sent []sentItem
	err  error
}

func (f *fakeNotifier) SendMessage(_ context.Context, to, _, body string) error {
	f.sent = append(f.sent, sentItem{"sms", to, body})
	return f.err
}

func (f *fakeNotifier) PlaceCall(_ context.Context, to, _, twiml string) error {
	f.sent = append(f.sent, sentItem{"call", to, twiml})
	return f.err
}

func newRouter(n alert.Notifier, contacts []string) *gin.Engine {
	uc := usecase.New(log.NewNop(), n, nil, usecase.Config{FromNumber: "+15550009999", Contacts: contacts})
	r := gin.New()
	New(uc, log.NewNop()).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestDetectDanger(t *testing.T) {
	r := newRouter(&fakeNotifier{}, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		want       map[string]any
	}{
		{"danger", `{"signal":"danger"}`, http.StatusOK, map[string]any{"status": "Danger detected", "alert": true}},
		{"safe", `{"signal":"walking home"}`, http.StatusOK, map[string]any{"status": "Safe", "alert": false}},
		{"missing signal", `{}`, http.StatusOK, map[string]any{"status": "Safe", "alert": false}},
		{"null signal", `{"signal":null}`, http.StatusOK, map[string]any{"status": "Safe", "alert": false}},
		{"number signal", `{"signal":123}`, http.StatusOK, map[string]any{"status": "Safe", "alert": false}},
		{"bool signal", `{"signal":true}`, http.StatusOK, map[string]any{"status": "Safe", "alert": false}},
		{"array signal", `{"signal":["danger"]}`, http.StatusOK, map[string]any{"status": "Safe", "alert": false}},
		{"object signal", `{"signal":{"type":"danger"}}`, http.StatusOK, map[string]any{"status": "Safe", "alert": false}},
		{"escaped danger string", `{"signal":"d\u0061nger"}`, http.StatusOK, map[string]any{"status": "Danger detected", "alert": true}},
		{"empty body", ``, http.StatusOK, map[string]any{"status": "Safe", "alert": false}},
		{"malformed", `{"signal":`, http.StatusBadRequest, map[string]any{"error": "malformed JSON body"}},
		{"not an object", `"danger"`, http.StatusBadRequest, map[string]any{"error": "malformed JSON body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/detect-danger", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.want, decodeMap(t, w))
		})
	}
}

func TestSendAlert_Success(t *testing.T) {
	n := &fakeNotifier{}
	r := newRouter(n, []string{"+1555000111", "+1555000222"})

	w := do(r, http.MethodPost, "/send-alert", `{"location":"Main St"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"SMS + Calls sent successfully"}`, w.Body.String())

	require.Len(t, n.sent, 4)
	wantOrder := []struct{ kind, to string }{
		{"sms", "+1555000111"}, {"call", "+1555000111"},
		{"sms", "+1555000222"}, {"call", "+1555000222"},
	}
	for i, want := range wantOrder {
		assert.Equal(t, want.kind, n.sent[i].kind)
		assert.Equal(t, want.to, n.sent[i].to)
		assert.Contains(t, n.sent[i].text, "Main St")
	}
}

func TestSendAlert_NoContacts(t *testing.T) {
	n := &fakeNotifier{}
	r := newRouter(n, nil)

	w := do(r, http.MethodPost, "/send-alert", `{"location":"anywhere"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"SMS + Calls sent successfully"}`, w.Body.String())
	assert.Empty(t, n.sent)
}

func TestSendAlert_ProviderFailure(t *testing.T) {
	n := &fakeNotifier{err: errors.New("The 'From' number +15550009999 is not a valid phone number")}
	r := newRouter(n, []string{"+1555000111", "+1555000222"})

	w := do(r, http.MethodPost, "/send-alert", `{"location":"Main St"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"The 'From' number +15550009999 is not a valid phone number"}`, w.Body.String())
	assert.Len(t, n.sent, 1)
}

func TestSendAlert_Validation(t *testing.T) {
	n := &fakeNotifier{}
	r := newRouter(n, []string{"+1555000111"})

	for _, body := range []string{``, `{}`, `{"location":""}`, `{"location":null}`} {
		w := do(r, http.MethodPost, "/send-alert", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"location: is required"}`, w.Body.String())
	}
	assert.Empty(t, n.sent)
}

func TestSendAlert_WhitespaceLocationIsForwarded(t *testing.T) {
	n := &fakeNotifier{}
	r := newRouter(n, []string{"+1555000111"})

	w := do(r, http.MethodPost, "/send-alert", `{"location":"   "}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, n.sent, 2)
	assert.Equal(t, "🚨 SafeSpace Alert! Possible danger detected at    .", n.sent[0].text)
}

func TestSafePath(t *testing.T) {
	r := newRouter(&fakeNotifier{}, nil)

	first := do(r, http.MethodGet, "/safe-path", "")
	second := do(r, http.MethodGet, "/safe-path", "")

	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{
		"currentLocation": "User Location",
		"suggestedPath": ["Main Street (well-lit)", "Police Station nearby", "Avoid Dark Alley"]
	}`, first.Body.String())
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestOfflineAlert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		n := &fakeNotifier{}
		r := newRouter(n, []string{"+1555000111", "+1555000222"})

		w := do(r, http.MethodPost, "/offline-alert", `{"message":"no signal, at the library"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"Offline alerts sent"}`, w.Body.String())
		require.Len(t, n.sent, 2)
		for _, s := range n.sent {
			assert.Equal(t, "sms", s.kind)
			assert.Equal(t, "SafeSpace Offline Alert: no signal, at the library", s.text)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		n := &fakeNotifier{err: errors.New("Account suspended")}
		r := newRouter(n, []string{"+1555000111", "+1555000222"})

		w := do(r, http.MethodPost, "/offline-alert", `{"message":"help"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Account suspended"}`, w.Body.String())
		assert.Len(t, n.sent, 1)
	})

	t.Run("whitespace message is forwarded", func(t *testing.T) {
		n := &fakeNotifier{}
		r := newRouter(n, []string{"+1555000111"})
		w := do(r, http.MethodPost, "/offline-alert", `{"message":" "}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, n.sent, 1)
		assert.Equal(t, "SafeSpace Offline Alert:  ", n.sent[0].text)
	})

	t.Run("missing message", func(t *testing.T) {
		r := newRouter(&fakeNotifier{}, nil)
		w := do(r, http.MethodPost, "/offline-alert", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"message: is required"}`, w.Body.String())
	})
}

func TestMapError_UnknownPanics(t *testing.T) {
	h := New(nil, log.NewNop())
	assert.Panics(t, func() { h.mapError(errors.New("unexpected")) })

	status, msg := h.mapError(context.DeadlineExceeded)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, context.DeadlineExceeded.Error(), msg)
}
