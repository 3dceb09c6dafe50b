package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/usecase"
)

// CurriculumHandler serves the browse views of the imported curriculum.
type CurriculumHandler struct {
	curriculum usecase.CurriculumUsecase
}

// NewCurriculumHandler wires the handler.
func NewCurriculumHandler(curriculum usecase.CurriculumUsecase) *CurriculumHandler {
	return &CurriculumHandler{curriculum: curriculum}
}

type subjectResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Group       string `json:"group,omitempty"`
}

type topicOverviewResponse struct {
	ID            int64                    `json:"id"`
	SubjectID     int64                    `json:"subject_id"`
	ParentTopicID *int64                   `json:"parent_topic_id,omitempty"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description,omitempty"`
	Confidence    *topicConfidenceResponse `json:"confidence,omitempty"`
}

type subtopicOverviewResponse struct {
	ID                int64                      `json:"id"`
	TopicID           int64                      `json:"topic_id"`
	Title             string                     `json:"title"`
	Description       string                     `json:"description,omitempty"`
	EstimatedDuration int                        `json:"estimated_duration"`
	Confidence        subtopicConfidenceResponse `json:"confidence"`
	NeedsAttention    bool                       `json:"needs_attention"`
}

// ListSubjects returns every imported subject.
func (h *CurriculumHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.curriculum.ListSubjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": lo.Map(subjects, func(s entity.Subject, _ int) subjectResponse {
		return subjectResponse{ID: s.ID, Title: s.Title, Description: s.Description, Group: s.Group}
	})})
}

// ListTopics returns a subject's topics with the user's confidence overlaid.
func (h *CurriculumHandler) ListTopics(c *gin.Context) {
	subjectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	topics, err := h.curriculum.ListTopics(c.Request.Context(), authedUserID(c), subjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": lo.Map(topics, func(t usecase.TopicOverview, _ int) topicOverviewResponse {
		resp := topicOverviewResponse{
			ID:            t.Topic.ID,
			SubjectID:     t.Topic.SubjectID,
			ParentTopicID: t.Topic.ParentTopicID,
			Title:         t.Topic.Title,
			Description:   t.Topic.Description,
		}
		if t.Confidence != nil {
			conf := mapTopicConfidence(*t.Confidence)
			resp.Confidence = &conf
		}
		return resp
	})})
}

// ListSubtopics returns a topic's subtopics with the user's confidence
// overlaid; unrated subtopics carry the default level.
func (h *CurriculumHandler) ListSubtopics(c *gin.Context) {
	topicID, ok := pathID(c, "id")
	if !ok {
		return
	}
	subtopics, err := h.curriculum.ListSubtopics(c.Request.Context(), authedUserID(c), topicID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subtopics": lo.Map(subtopics, func(s usecase.SubtopicOverview, _ int) subtopicOverviewResponse {
		return subtopicOverviewResponse{
			ID:                s.Subtopic.ID,
			TopicID:           s.Subtopic.TopicID,
			Title:             s.Subtopic.Title,
			Description:       s.Subtopic.Description,
			EstimatedDuration: s.Subtopic.EstimatedDuration,
			Confidence:        mapSubtopicConfidence(s.Confidence),
			NeedsAttention:    s.NeedsAttention,
		}
	})})
}
