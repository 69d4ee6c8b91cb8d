package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"innerCalmAPI/internal/types/activity"
	"innerCalmAPI/middleware"
	"innerCalmAPI/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

func (h *ActivityHandler) LogActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req activity.LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.LessonID == "" || !req.FeatureType.Valid() {
		respondWithError(w, http.StatusBadRequest, "lessonId and a valid featureType are required")
		return
	}

	logged, date, err := h.activityService.LogActivity(ctx, clerkID, &req)
	if err != nil {
		log.Printf("LogActivity Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log activity")
		return
	}

	respondWithJSON(w, http.StatusOK, activity.LogResponse{Logged: logged, Date: date.String()})
}

func (h *ActivityHandler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	month := r.URL.Query().Get("month")

	stats, err := h.activityService.MonthlyStats(ctx, clerkID, month)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch monthly stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
