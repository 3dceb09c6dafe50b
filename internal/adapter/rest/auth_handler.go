package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/usecase"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	users  usecase.UserUsecase
	tokens *TokenManager
}

// NewAuthHandler wires the handler.
func NewAuthHandler(users usecase.UserUsecase, tokens *TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID                int64   `json:"id"`
	Email             string  `json:"email"`
	Username          string  `json:"username"`
	StudyHoursPerDay  float64 `json:"study_hours_per_day"`
	WeekendStudyHours float64 `json:"weekend_study_hours"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{Token: token, User: mapUser(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: mapUser(user)})
}

func mapUser(user *entity.User) userResponse {
	return userResponse{
		ID:                user.ID,
		Email:             user.Email,
		Username:          user.Username,
		StudyHoursPerDay:  user.StudyHoursPerDay,
		WeekendStudyHours: user.WeekendStudyHours,
	}
}
