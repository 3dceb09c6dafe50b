package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviseapp/revise/internal/usecase"
)

// SettingsHandler serves the user's study schedule settings.
type SettingsHandler struct {
	users usecase.UserUsecase
}

// NewSettingsHandler wires the handler.
func NewSettingsHandler(users usecase.UserUsecase) *SettingsHandler {
	return &SettingsHandler{users: users}
}

type updateSettingsRequest struct {
	StudyHoursPerDay  *float64 `json:"study_hours_per_day"`
	WeekendStudyHours *float64 `json:"weekend_study_hours"`
}

// Get returns the authenticated user's profile and settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), authedUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": mapUser(user)})
}

// Update applies the provided study-hour settings; omitted fields are left
// untouched and out-of-band values are clamped.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	user, err := h.users.UpdateStudyHours(c.Request.Context(), authedUserID(c), req.StudyHoursPerDay, req.WeekendStudyHours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": mapUser(user)})
}
