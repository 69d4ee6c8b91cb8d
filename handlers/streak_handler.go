package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"innerCalmAPI/internal/dateutil"
	"innerCalmAPI/internal/types/streak"
	"innerCalmAPI/middleware"
	"innerCalmAPI/services"
)

type StreakHandler struct {
	streakService *services.StreakService
}

func NewStreakHandler(streakService *services.StreakService) *StreakHandler {
	return &StreakHandler{
		streakService: streakService,
	}
}

func (h *StreakHandler) MarkToday(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req streak.MarkTodayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := dateutil.Parse(req.Date)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	recorded, err := h.streakService.MarkToday(ctx, clerkID, date)
	if err != nil {
		log.Printf("MarkToday Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to mark activity")
		return
	}

	middleware.CountStreakMark()
	respondWithJSON(w, http.StatusOK, streak.MarkTodayResponse{Success: true, Date: recorded})
}

func (h *StreakHandler) GetLastSevenDays(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	base := dateutil.FromTime(time.Now().UTC())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := dateutil.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		base = parsed
	}

	days, err := h.streakService.LastSevenDays(ctx, clerkID, base)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch streak data")
		return
	}

	respondWithJSON(w, http.StatusOK, days)
}
