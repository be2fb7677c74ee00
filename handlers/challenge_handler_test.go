package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateChallengeUnauthorized(t *testing.T) {
	h := NewChallengeHandler(nil)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/challenges", nil)
	w := httptest.NewRecorder()

	h.CreateChallenge(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCreateChallengeMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"no title", `{"challenge_type": "most_logs", "start_date": "2025-06-01", "end_date": "2025-06-07"}`},
		{"no type", `{"title": "June showdown", "start_date": "2025-06-01", "end_date": "2025-06-07"}`},
		{"no start date", `{"title": "June showdown", "challenge_type": "most_logs", "end_date": "2025-06-07"}`},
		{"no end date", `{"title": "June showdown", "challenge_type": "most_logs", "start_date": "2025-06-01"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewChallengeHandler(nil)

			r := authedRequest(http.MethodPost, "/api/v1/challenges", tt.body)
			w := httptest.NewRecorder()

			h.CreateChallenge(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestRespondToInviteInvalidChallengeID(t *testing.T) {
	h := NewChallengeHandler(nil)

	r := authedRequest(http.MethodPost, "/api/v1/challenges/respond", `{"challenge_id": "nope", "accept": true}`)
	w := httptest.NewRecorder()

	h.RespondToInvite(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetChallengesUnauthorized(t *testing.T) {
	h := NewChallengeHandler(nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)
	w := httptest.NewRecorder()

	h.GetChallenges(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
