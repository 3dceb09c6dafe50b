package entity

import (
	"math"
	"time"
)

// Subtopic confidence is self-rated on a 1-5 scale; topic confidence is a
// derived percentage on a 1-100 scale. One subtopic level corresponds to
// PercentPerLevel points of topic confidence.
const (
	MinConfidenceLevel     = 1
	MaxConfidenceLevel     = 5
	DefaultConfidenceLevel = 3

	MinTopicPercent = 1
	MaxTopicPercent = 100
	PercentPerLevel = 20
)

// ValidConfidenceLevel reports whether level is on the accepted 1-5 scale.
func ValidConfidenceLevel(level int) bool {
	return level >= MinConfidenceLevel && level <= MaxConfidenceLevel
}

// SubtopicConfidence tracks a user's self-reported mastery of one subtopic.
type SubtopicConfidence struct {
	UserID        int64
	SubtopicID    int64
	Level         int
	Priority      bool
	LastUpdated   time.Time
	LastAddressed *time.Time
}

// DefaultSubtopicConfidence returns the ephemeral default used when a user
// has never rated a subtopic. It is not persisted; records are created on
// first write only.
func DefaultSubtopicConfidence(userID, subtopicID int64) SubtopicConfidence {
	return SubtopicConfidence{
		UserID:     userID,
		SubtopicID: subtopicID,
		Level:      DefaultConfidenceLevel,
	}
}

// UpdateLevel sets a new confidence level, rejecting out-of-range values.
func (c *SubtopicConfidence) UpdateLevel(level int, now time.Time) error {
	if !ValidConfidenceLevel(level) {
		return ErrInvalidConfidenceLevel
	}
	c.Level = level
	c.LastUpdated = now
	return nil
}

// TogglePriority flips the priority flag.
func (c *SubtopicConfidence) TogglePriority(now time.Time) {
	c.Priority = !c.Priority
	c.LastUpdated = now
}

// SetPriority sets the priority flag to an explicit value.
func (c *SubtopicConfidence) SetPriority(priority bool, now time.Time) {
	c.Priority = priority
	c.LastUpdated = now
}

// MarkAddressed records that the subtopic was just studied.
func (c *SubtopicConfidence) MarkAddressed(now time.Time) {
	t := now
	c.LastAddressed = &t
}

// NeedsAttention reports whether the subtopic is flagged priority and has
// either never been addressed or not been addressed within staleness.
func (c SubtopicConfidence) NeedsAttention(now time.Time, staleness time.Duration) bool {
	if !c.Priority {
		return false
	}
	if c.LastAddressed == nil {
		return true
	}
	return now.Sub(*c.LastAddressed) > staleness
}

// TopicConfidence is the derived aggregate of a topic's subtopic confidences.
// It exists only once at least one subtopic confidence record exists.
type TopicConfidence struct {
	UserID      int64
	TopicID     int64
	Percent     int
	Priority    bool
	LastUpdated time.Time
}

// TogglePriority flips the priority flag. Topic priority never cascades to
// subtopics.
func (c *TopicConfidence) TogglePriority(now time.Time) {
	c.Priority = !c.Priority
	c.LastUpdated = now
}

// Level converts the stored percentage back onto the 1-5 scale used by the
// selection weighting formula.
func (c TopicConfidence) Level() float64 {
	return float64(c.Percent) / PercentPerLevel
}

// TopicPercentFromMean converts a mean subtopic level (1-5) onto the 1-100
// topic scale, rounding half away from zero and clamping to the valid range.
// A mean of 3.333 becomes 67.
func TopicPercentFromMean(mean float64) int {
	percent := int(math.Round(mean / MaxConfidenceLevel * MaxTopicPercent))
	if percent < MinTopicPercent {
		return MinTopicPercent
	}
	if percent > MaxTopicPercent {
		return MaxTopicPercent
	}
	return percent
}

// SelectionWeight implements the (7 - level)^2 bias toward low-confidence
// material: level 1 weighs 36, level 5 weighs 4. Levels are on the 1-5
// scale; topic percentages must be divided by PercentPerLevel first.
func SelectionWeight(level float64) float64 {
	d := 7 - level
	return d * d
}
