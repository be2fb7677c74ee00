package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bowelBuddiesAPI/internal/types/challenge"
	"bowelBuddiesAPI/middleware"
	"bowelBuddiesAPI/services"

	"github.com/google/uuid"
)

type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
	}
}

func (h *ChallengeHandler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	challenges, err := h.challengeService.GetChallenges(ctx, clerkID)
	if err != nil {
		log.Printf("GetChallenges Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get challenges")
		return
	}

	respondWithJSON(w, http.StatusOK, challenges)
}

func (h *ChallengeHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req challenge.CreateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateChallenge Handler: Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.ChallengeType == "" || req.StartDate == "" || req.EndDate == "" {
		respondWithError(w, http.StatusBadRequest, "title, challenge_type, start_date and end_date are required")
		return
	}

	created, err := h.challengeService.CreateChallenge(ctx, clerkID, &req)
	if err != nil {
		log.Printf("CreateChallenge Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create challenge")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *ChallengeHandler) RespondToInvite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req challenge.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	challengeID, err := uuid.Parse(req.ChallengeID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid challenge_id")
		return
	}

	if err := h.challengeService.RespondToInvite(ctx, clerkID, challengeID, req.Accept); err != nil {
		log.Printf("RespondToInvite Handler: Service error: %v", err)
		errMsg := err.Error()
		if errMsg == "invite not found" || errMsg == "challenge not found" {
			respondWithError(w, http.StatusNotFound, errMsg)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to respond to invite")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Response recorded"})
}
