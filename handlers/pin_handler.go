package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bowelBuddiesAPI/internal/types/pin"
	"bowelBuddiesAPI/middleware"
	"bowelBuddiesAPI/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PinHandler struct {
	pinService *services.PinService
}

func NewPinHandler(pinService *services.PinService) *PinHandler {
	return &PinHandler{
		pinService: pinService,
	}
}

func (h *PinHandler) GetPins(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	pins, err := h.pinService.GetPins(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get pins")
		return
	}

	respondWithJSON(w, http.StatusOK, pins)
}

func (h *PinHandler) CreatePin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req pin.CreatePinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" {
		respondWithError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		respondWithError(w, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	created, err := h.pinService.CreatePin(ctx, clerkID, &req)
	if err != nil {
		log.Printf("CreatePin Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create pin")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *PinHandler) DeletePin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	pinID, err := uuid.Parse(vars["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid pin id")
		return
	}

	if err := h.pinService.DeletePin(ctx, clerkID, pinID); err != nil {
		if err.Error() == "pin not found" {
			respondWithError(w, http.StatusNotFound, "Pin not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete pin")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Pin deleted successfully"})
}
