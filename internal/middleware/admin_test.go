package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumina-reserve/backend/internal/auth"
)

func TestRequireAdmin(t *testing.T) {
	sessions := auth.NewSessions(auth.NewGate(auth.Digest("admin123")))

	unlocked, err := sessions.Login("admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	locked, err := sessions.Login("admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	session, _ := sessions.Get(locked)
	session.Lock()

	// Create a test handler that returns 200 OK
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})

	// Wrap with admin middleware
	adminHandler := RequireAdmin(sessions)(testHandler)

	tests := []struct {
		name           string
		header         string
		value          string
		expectedStatus int
	}{
		{
			name:           "unlocked session",
			header:         AdminTokenHeader,
			value:          unlocked,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bearer token",
			header:         "Authorization",
			value:          "Bearer " + unlocked,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown token",
			header:         AdminTokenHeader,
			value:          "not-a-session",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "locked session",
			header:         AdminTokenHeader,
			value:          locked,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			w := httptest.NewRecorder()
			adminHandler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				if w.Body.String() != "success" {
					t.Errorf("body = %s, want success", w.Body.String())
				}
			}
		})
	}
}

func TestAdminToken_PrefersHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(AdminTokenHeader, " abc ")
	req.Header.Set("Authorization", "Bearer xyz")

	if got := AdminToken(req); got != "abc" {
		t.Errorf("AdminToken() = %q, want abc", got)
	}
}
