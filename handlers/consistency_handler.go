package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/middleware"
	"innerCalmAPI/services"
)

type ConsistencyHandler struct {
	consistencyService *services.ConsistencyService
}

func NewConsistencyHandler(consistencyService *services.ConsistencyService) *ConsistencyHandler {
	return &ConsistencyHandler{
		consistencyService: consistencyService,
	}
}

func (h *ConsistencyHandler) GetRange(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	today, err := dateutil.Parse(r.URL.Query().Get("today"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "today query parameter required (YYYY-MM-DD)")
		return
	}

	rng, err := h.consistencyService.GetRange(ctx, clerkID, today)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch consistency range")
		return
	}

	respondWithJSON(w, http.StatusOK, rng)
}

func (h *ConsistencyHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")
	if yearParam == "" || monthParam == "" {
		respondWithError(w, http.StatusBadRequest, "year and month query parameters are required")
		return
	}

	var year, month int
	if _, err := fmt.Sscanf(yearParam, "%d", &year); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid year format")
		return
	}
	if _, err := fmt.Sscanf(monthParam, "%d", &month); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid month format")
		return
	}
	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		respondWithError(w, http.StatusBadRequest, "invalid year or month")
		return
	}

	monthData, err := h.consistencyService.GetMonth(ctx, clerkID, year, month)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch consistency data")
		return
	}

	respondWithJSON(w, http.StatusOK, monthData)
}
