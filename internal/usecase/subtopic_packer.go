package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

// priorityBoost multiplies the sort weight of subtopics the user flagged
// but addressed recently enough to not need attention.
const priorityBoost = 1.5

// SubtopicPacker fills a task's time budget with subtopics: flagged items
// needing attention first, then a confidence-weighted greedy fill. The fill
// is deliberately greedy without backtracking.
type SubtopicPacker interface {
	// Pack attaches subtopics of task.TopicID to the (unsaved) task until
	// the budget is spent. A topic without subtopics leaves the task
	// unmodified.
	Pack(ctx context.Context, task *entity.Task, budgetMinutes int) error
}

// NewSubtopicPacker wires the packer. staleness matches the needs-attention
// window used elsewhere.
func NewSubtopicPacker(
	subtopics repository.SubtopicRepository,
	conf repository.ConfidenceRepository,
	staleness time.Duration,
	logger logrus.FieldLogger,
) SubtopicPacker {
	return &subtopicPacker{
		subtopics: subtopics,
		conf:      conf,
		staleness: staleness,
		logger:    logger,
		clock:     time.Now,
	}
}

type subtopicPacker struct {
	subtopics repository.SubtopicRepository
	conf      repository.ConfidenceRepository
	staleness time.Duration
	logger    logrus.FieldLogger
	clock     func() time.Time
}

func (p *subtopicPacker) Pack(ctx context.Context, task *entity.Task, budgetMinutes int) error {
	subtopics, err := p.subtopics.ListByTopic(ctx, task.TopicID)
	if err != nil {
		return fmt.Errorf("list subtopics: %w", err)
	}
	if len(subtopics) == 0 {
		return nil
	}

	records := p.confidenceIndex(ctx, task.UserID, subtopics)
	now := p.clock()

	prioritized, normal := partitionByAttention(subtopics, records, now, p.staleness)

	remaining := budgetMinutes
	var packedTitles, priorityTitles []string

	// Flagged-and-stale subtopics jump the queue in store order.
	for _, st := range prioritized {
		if remaining < entity.MinSubtopicMinutes {
			break
		}
		if remaining < st.EstimatedDuration || task.HasSubtopic(st.ID) {
			continue
		}
		task.AttachSubtopic(st)
		priorityTitles = append(priorityTitles, st.Title)
		remaining -= st.EstimatedDuration
	}

	// Remaining budget goes to the weighted fill, lowest confidence first.
	sortByWeightDesc(normal, records)
	for _, st := range normal {
		if remaining < entity.MinSubtopicMinutes {
			break
		}
		if remaining < st.EstimatedDuration || task.HasSubtopic(st.ID) {
			continue
		}
		task.AttachSubtopic(st)
		packedTitles = append(packedTitles, st.Title)
		remaining -= st.EstimatedDuration
	}

	task.AppendSubtopicSummary(packedTitles, priorityTitles)
	return nil
}

// confidenceIndex loads the user's confidence records for the subtopics. A
// lookup failure degrades to defaults (everything level 3, unflagged) so
// packing still proceeds.
func (p *subtopicPacker) confidenceIndex(ctx context.Context, userID int64, subtopics []entity.Subtopic) map[int64]entity.SubtopicConfidence {
	ids := lo.Map(subtopics, func(s entity.Subtopic, _ int) int64 { return s.ID })
	records, err := p.conf.ListSubtopics(ctx, userID, ids)
	if err != nil {
		p.logger.WithError(err).Warn("subtopic confidence lookup failed, packing with defaults")
		return map[int64]entity.SubtopicConfidence{}
	}
	return lo.KeyBy(records, func(r entity.SubtopicConfidence) int64 { return r.SubtopicID })
}

func partitionByAttention(
	subtopics []entity.Subtopic,
	records map[int64]entity.SubtopicConfidence,
	now time.Time,
	staleness time.Duration,
) (prioritized, normal []entity.Subtopic) {
	for _, st := range subtopics {
		if rec, ok := records[st.ID]; ok && rec.NeedsAttention(now, staleness) {
			prioritized = append(prioritized, st)
		} else {
			normal = append(normal, st)
		}
	}
	return prioritized, normal
}

// sortByWeightDesc orders subtopics by packing weight, highest first. The
// weight is (7 - level)^2, boosted for flagged-but-recently-addressed
// items. Stable sort keeps store order for ties.
func sortByWeightDesc(subtopics []entity.Subtopic, records map[int64]entity.SubtopicConfidence) {
	weightOf := func(st entity.Subtopic) float64 {
		level := float64(entity.DefaultConfidenceLevel)
		boost := 1.0
		if rec, ok := records[st.ID]; ok {
			level = float64(rec.Level)
			if rec.Priority {
				boost = priorityBoost
			}
		}
		return entity.SelectionWeight(level) * boost
	}
	sort.SliceStable(subtopics, func(i, j int) bool {
		return weightOf(subtopics[i]) > weightOf(subtopics[j])
	})
}
