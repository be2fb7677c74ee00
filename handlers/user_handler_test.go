package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetProfileUnauthorized(t *testing.T) {
	h := NewUserHandler(nil, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	w := httptest.NewRecorder()

	h.GetProfile(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestSearchUsersMissingQuery(t *testing.T) {
	h := NewUserHandler(nil, nil)

	r := authedRequest(http.MethodGet, "/api/v1/user/search", "")
	w := httptest.NewRecorder()

	h.SearchUsers(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAddFriendMissingFriendID(t *testing.T) {
	h := NewUserHandler(nil, nil)

	r := authedRequest(http.MethodPost, "/api/v1/user/friends", `{}`)
	w := httptest.NewRecorder()

	h.AddFriend(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRemoveFriendMissingFriendID(t *testing.T) {
	h := NewUserHandler(nil, nil)

	r := authedRequest(http.MethodDelete, "/api/v1/user/friends", "")
	w := httptest.NewRecorder()

	h.RemoveFriend(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetCalendarInvalidMonth(t *testing.T) {
	h := NewUserHandler(nil, nil)

	r := authedRequest(http.MethodGet, "/api/v1/user/calendar?year=2025&month=13", "")
	w := httptest.NewRecorder()

	h.GetCalendar(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
