package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/notekeeper/notekeeper/internal/auth"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/model"
)

// stubVerifier accepts exactly one token.
type stubVerifier struct {
	token    string
	identity model.Identity
}

func (s stubVerifier) Verify(token string) (model.Identity, error) {
	if token != s.token {
		return model.Identity{}, errors.New("invalid")
	}
	return s.identity, nil
}

func newAuthHandler(t *testing.T, buf *bytes.Buffer, recorder metrics.Recorder) (http.Handler, *model.Identity) {
	t.Helper()

	var seen model.Identity
	verifier := stubVerifier{
		token:    "good-token",
		identity: model.Identity{UserID: "user-1", Email: "a@x.com"},
	}
	mw := Auth(AuthConfig{
		Logger:  slog.New(slog.NewJSONHandler(buf, nil)),
		Tokens:  verifier,
		Metrics: recorder,
	})
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			t.Error("identity missing from context")
		}
		seen = id
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seen
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"valid token", "Bearer good-token", http.StatusOK, ""},
		{"lowercase scheme", "bearer good-token", http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, MsgNoToken},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, MsgNoToken},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, MsgNoToken},
		{"bad token", "Bearer forged-token", http.StatusUnauthorized, MsgInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, seen := newAuthHandler(t, &buf, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				if seen.UserID != "user-1" {
					t.Errorf("identity user = %q, want user-1", seen.UserID)
				}
				return
			}

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success {
				t.Error("success = true on auth failure")
			}
			if body.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}

func TestAuth_LogsWithoutToken(t *testing.T) {
	var buf bytes.Buffer
	recorder := metrics.NewInMemory()
	h, _ := newAuthHandler(t, &buf, recorder)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer forged-secret-value")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "forged-secret-value") {
		t.Errorf("log output contains the token: %s", out)
	}
	if !strings.Contains(out, `"reason":"invalid_token"`) {
		t.Errorf("log output missing reason: %s", out)
	}
	if got := recorder.Snapshot().AuthRejected; got != 1 {
		t.Errorf("AuthRejected = %d, want 1", got)
	}
}
