package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/usecase"
)

// ConfidenceHandler serves confidence ratings and priority flags.
type ConfidenceHandler struct {
	confidence usecase.ConfidenceUsecase
}

// NewConfidenceHandler wires the handler.
func NewConfidenceHandler(confidence usecase.ConfidenceUsecase) *ConfidenceHandler {
	return &ConfidenceHandler{confidence: confidence}
}

type updateConfidenceRequest struct {
	Level int `json:"level"`
}

type subtopicConfidenceResponse struct {
	SubtopicID    int64      `json:"subtopic_id"`
	Level         int        `json:"level"`
	Priority      bool       `json:"priority"`
	LastUpdated   time.Time  `json:"last_updated"`
	LastAddressed *time.Time `json:"last_addressed,omitempty"`
}

type topicConfidenceResponse struct {
	TopicID     int64     `json:"topic_id"`
	Percent     int       `json:"percent"`
	Priority    bool      `json:"priority"`
	LastUpdated time.Time `json:"last_updated"`
}

// UpdateSubtopic sets a subtopic's confidence level and returns both the
// record and the recomputed topic aggregate.
func (h *ConfidenceHandler) UpdateSubtopic(c *gin.Context) {
	subtopicID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateConfidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	update, err := h.confidence.UpdateSubtopicConfidence(c.Request.Context(), authedUserID(c), subtopicID, req.Level)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"subtopic": mapSubtopicConfidence(update.Subtopic)}
	if update.Topic != nil {
		resp["topic"] = mapTopicConfidence(*update.Topic)
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleSubtopicPriority flips a subtopic's priority flag.
func (h *ConfidenceHandler) ToggleSubtopicPriority(c *gin.Context) {
	subtopicID, ok := pathID(c, "id")
	if !ok {
		return
	}
	priority, err := h.confidence.ToggleSubtopicPriority(c.Request.Context(), authedUserID(c), subtopicID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subtopic_id": subtopicID, "priority": priority})
}

// ToggleTopicPriority flips a topic's priority flag. Unrated topics cannot
// be flagged; the error mapping reports that as a 400.
func (h *ConfidenceHandler) ToggleTopicPriority(c *gin.Context) {
	topicID, ok := pathID(c, "id")
	if !ok {
		return
	}
	priority, err := h.confidence.ToggleTopicPriority(c.Request.Context(), authedUserID(c), topicID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic_id": topicID, "priority": priority})
}

func mapSubtopicConfidence(conf entity.SubtopicConfidence) subtopicConfidenceResponse {
	return subtopicConfidenceResponse{
		SubtopicID:    conf.SubtopicID,
		Level:         conf.Level,
		Priority:      conf.Priority,
		LastUpdated:   conf.LastUpdated,
		LastAddressed: conf.LastAddressed,
	}
}

func mapTopicConfidence(conf entity.TopicConfidence) topicConfidenceResponse {
	return topicConfidenceResponse{
		TopicID:     conf.TopicID,
		Percent:     conf.Percent,
		Priority:    conf.Priority,
		LastUpdated: conf.LastUpdated,
	}
}
