package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bowelBuddiesAPI/middleware"
)

func authedRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(r.Context(), middleware.ClerkIDKey, "user_test123")
	return r.WithContext(ctx)
}

func TestLogMovementUnauthorized(t *testing.T) {
	h := NewMovementHandler(nil)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/movements", strings.NewReader(`{"bristol_type": 4}`))
	w := httptest.NewRecorder()

	h.LogMovement(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLogMovementInvalidBody(t *testing.T) {
	h := NewMovementHandler(nil)

	r := authedRequest(http.MethodPost, "/api/v1/movements", `not json`)
	w := httptest.NewRecorder()

	h.LogMovement(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestLogMovementBristolTypeOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero", `{"bristol_type": 0}`},
		{"too high", `{"bristol_type": 8}`},
		{"negative", `{"bristol_type": -1}`},
		{"missing", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMovementHandler(nil)

			r := authedRequest(http.MethodPost, "/api/v1/movements", tt.body)
			w := httptest.NewRecorder()

			h.LogMovement(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestDeleteLogInvalidID(t *testing.T) {
	h := NewMovementHandler(nil)

	r := authedRequest(http.MethodDelete, "/api/v1/movements/not-a-uuid", "")
	w := httptest.NewRecorder()

	h.DeleteLog(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetLogsUnauthorized(t *testing.T) {
	h := NewMovementHandler(nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/movements", nil)
	w := httptest.NewRecorder()

	h.GetLogs(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
