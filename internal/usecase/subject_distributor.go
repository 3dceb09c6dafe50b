package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
	"github.com/reviseapp/revise/pkg/roulette"
)

// SubjectDistributor computes a fairness-weighted probability distribution
// over subjects for the trailing week and draws subjects from it. Subjects
// sharing a group (split curriculum entries of one real subject) are pooled
// for frequency accounting and their pooled weight is subdivided by topic
// count.
type SubjectDistributor interface {
	DistributionForWeek(ctx context.Context, userID int64) (map[int64]float64, error)
	// SelectSubject performs a weighted draw over the week's distribution.
	// Returns nil when no subjects exist.
	SelectSubject(ctx context.Context, userID int64) (*entity.Subject, error)
}

// NewSubjectDistributor wires the distributor with a randomness source; rng
// is injected so draws are reproducible under test.
func NewSubjectDistributor(
	subjects repository.SubjectRepository,
	topics repository.TopicRepository,
	tasks repository.TaskRepository,
	rng roulette.Rand,
	logger logrus.FieldLogger,
) SubjectDistributor {
	return &subjectDistributor{
		subjects: subjects,
		topics:   topics,
		tasks:    tasks,
		rng:      rng,
		logger:   logger,
		clock:    time.Now,
	}
}

type subjectDistributor struct {
	subjects repository.SubjectRepository
	topics   repository.TopicRepository
	tasks    repository.TaskRepository
	rng      roulette.Rand
	logger   logrus.FieldLogger
	clock    func() time.Time
}

// bucket is one accounting unit of the distribution: either a standalone
// subject or all subjects of one group pooled together.
type bucket struct {
	subjects []entity.Subject
}

func (d *subjectDistributor) DistributionForWeek(ctx context.Context, userID int64) (map[int64]float64, error) {
	subjects, err := d.subjects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	if len(subjects) == 0 {
		return map[int64]float64{}, nil
	}

	buckets := groupIntoBuckets(subjects)

	weekAgo := d.clock().AddDate(0, 0, -7)
	counts, err := d.tasks.CountBySubjectSince(ctx, userID, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("count weekly tasks: %w", err)
	}
	totalTasks := lo.Sum(lo.Values(counts))

	weights := make(map[int64]float64, len(subjects))
	if totalTasks == 0 {
		// Nothing studied yet: every bucket gets an equal share.
		share := 1.0 / float64(len(buckets))
		for _, b := range buckets {
			if err := d.spreadAcrossBucket(ctx, b, share, weights); err != nil {
				return nil, err
			}
		}
		return weights, nil
	}

	// Inverse-frequency weighting: the smaller a bucket's observed share
	// of the week, the closer its weight is to 1.
	for _, b := range buckets {
		observed := 0
		for _, s := range b.subjects {
			observed += counts[s.ID]
		}
		inverse := 1.0
		if observed > 0 {
			inverse = 1.0 - float64(observed)/float64(totalTasks)
		}
		if err := d.spreadAcrossBucket(ctx, b, inverse, weights); err != nil {
			return nil, err
		}
	}

	total := lo.Sum(lo.Values(weights))
	if total <= 0 {
		// Degenerate week (a single bucket absorbed every task): fall
		// back to the equal split.
		share := 1.0 / float64(len(buckets))
		weights = make(map[int64]float64, len(subjects))
		for _, b := range buckets {
			if err := d.spreadAcrossBucket(ctx, b, share, weights); err != nil {
				return nil, err
			}
		}
		return weights, nil
	}
	for id, w := range weights {
		weights[id] = w / total
	}
	return weights, nil
}

// spreadAcrossBucket assigns the bucket's weight to its subjects: a
// standalone subject takes it whole, a pooled group subdivides it in
// proportion to topic counts (equal split when no topics are known).
func (d *subjectDistributor) spreadAcrossBucket(ctx context.Context, b bucket, weight float64, out map[int64]float64) error {
	if len(b.subjects) == 1 {
		out[b.subjects[0].ID] = weight
		return nil
	}

	ids := lo.Map(b.subjects, func(s entity.Subject, _ int) int64 { return s.ID })
	topicCounts, err := d.topics.CountBySubject(ctx, ids)
	if err != nil {
		return fmt.Errorf("count topics for group: %w", err)
	}
	total := 0
	for _, id := range ids {
		total += topicCounts[id]
	}
	if total == 0 {
		for _, s := range b.subjects {
			out[s.ID] = weight / float64(len(b.subjects))
		}
		return nil
	}
	for _, s := range b.subjects {
		out[s.ID] = weight * float64(topicCounts[s.ID]) / float64(total)
	}
	return nil
}

func (d *subjectDistributor) SelectSubject(ctx context.Context, userID int64) (*entity.Subject, error) {
	subjects, err := d.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, nil
	}

	dist, err := d.DistributionForWeek(ctx, userID)
	if err != nil {
		// Weighting is advisory: degrade to a uniform draw rather than
		// refusing to schedule anything.
		d.logger.WithError(err).Warn("subject distribution failed, falling back to uniform draw")
		dist = map[int64]float64{}
	}

	candidates := lo.Filter(subjects, func(s entity.Subject, _ int) bool { return dist[s.ID] > 0 })
	if len(candidates) == 0 {
		candidates = subjects
	}
	picked, ok := roulette.Pick(d.rng, candidates, func(s entity.Subject) float64 { return dist[s.ID] })
	if !ok {
		return nil, nil
	}
	return &picked, nil
}

func groupIntoBuckets(subjects []entity.Subject) []bucket {
	var buckets []bucket
	grouped := map[string]int{}
	for _, s := range subjects {
		if s.Group == "" {
			buckets = append(buckets, bucket{subjects: []entity.Subject{s}})
			continue
		}
		if idx, ok := grouped[s.Group]; ok {
			buckets[idx].subjects = append(buckets[idx].subjects, s)
			continue
		}
		grouped[s.Group] = len(buckets)
		buckets = append(buckets, bucket{subjects: []entity.Subject{s}})
	}
	return buckets
}
