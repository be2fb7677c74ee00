package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"bowelBuddiesAPI/internal/types/movement"
	"bowelBuddiesAPI/middleware"
	"bowelBuddiesAPI/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MovementHandler struct {
	movementService *services.MovementService
}

func NewMovementHandler(movementService *services.MovementService) *MovementHandler {
	return &MovementHandler{
		movementService: movementService,
	}
}

func (h *MovementHandler) LogMovement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req movement.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("LogMovement Handler: Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.BristolType < movement.BristolMin || req.BristolType > movement.BristolMax {
		respondWithError(w, http.StatusBadRequest, "bristol_type must be between 1 and 7")
		return
	}

	resp, err := h.movementService.LogMovement(ctx, clerkID, &req)
	if err != nil {
		log.Printf("LogMovement Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log movement")
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

func (h *MovementHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	logs, err := h.movementService.GetLogs(ctx, clerkID, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get logs")
		return
	}

	respondWithJSON(w, http.StatusOK, logs)
}

func (h *MovementHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	logID, err := uuid.Parse(vars["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid log id")
		return
	}

	if err := h.movementService.DeleteLog(ctx, clerkID, logID); err != nil {
		log.Printf("DeleteLog Handler: Service error: %v", err)
		if err.Error() == "log not found" {
			respondWithError(w, http.StatusNotFound, "Log not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete log")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Log deleted successfully"})
}
