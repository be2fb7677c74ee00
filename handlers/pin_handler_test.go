package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreatePinUnauthorized(t *testing.T) {
	h := NewPinHandler(nil)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/pins", nil)
	w := httptest.NewRecorder()

	h.CreatePin(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCreatePinMissingTitle(t *testing.T) {
	h := NewPinHandler(nil)

	r := authedRequest(http.MethodPost, "/api/v1/pins", `{"latitude": 42.7, "longitude": 23.3}`)
	w := httptest.NewRecorder()

	h.CreatePin(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreatePinInvalidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"latitude too high", `{"title": "Gas station", "latitude": 91, "longitude": 0}`},
		{"latitude too low", `{"title": "Gas station", "latitude": -91, "longitude": 0}`},
		{"longitude too high", `{"title": "Gas station", "latitude": 0, "longitude": 181}`},
		{"longitude too low", `{"title": "Gas station", "latitude": 0, "longitude": -181}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPinHandler(nil)

			r := authedRequest(http.MethodPost, "/api/v1/pins", tt.body)
			w := httptest.NewRecorder()

			h.CreatePin(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestDeletePinInvalidID(t *testing.T) {
	h := NewPinHandler(nil)

	r := authedRequest(http.MethodDelete, "/api/v1/pins/42", "")
	w := httptest.NewRecorder()

	h.DeletePin(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
