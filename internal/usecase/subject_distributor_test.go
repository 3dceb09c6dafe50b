package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/reviseapp/revise/internal/entity"
)

func newDistributorFixture(subjects []entity.Subject, topics []entity.Topic) (*subjectDistributor, *fakeTaskRepo) {
	tasks := newFakeTaskRepo()
	d := NewSubjectDistributor(
		&fakeSubjectRepo{subjects: subjects},
		&fakeTopicRepo{topics: topics},
		tasks,
		testRand(1),
		testLogger(),
	).(*subjectDistributor)
	d.clock = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return d, tasks
}

func seedTasks(t *testing.T, tasks *fakeTaskRepo, userID, subjectID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := tasks.Create(context.Background(), &entity.Task{
			UserID:    userID,
			SubjectID: subjectID,
			DueDate:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("seed task: %v", err)
		}
	}
}

func assertSumsToOne(t *testing.T, dist map[int64]float64) {
	t.Helper()
	sum := 0.0
	for _, w := range dist {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("distribution sums to %v, want 1.0: %v", sum, dist)
	}
}

func TestDistributionEmptyCurriculum(t *testing.T) {
	d, _ := newDistributorFixture(nil, nil)
	dist, err := d.DistributionForWeek(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(dist) != 0 {
		t.Fatalf("want empty distribution, got %v", dist)
	}
}

func TestDistributionEqualWhenNoTasks(t *testing.T) {
	subjects := []entity.Subject{
		{ID: 1, Title: "Maths"},
		{ID: 2, Title: "Physics"},
		{ID: 3, Title: "Chemistry"},
		{ID: 4, Title: "Biology Y12", Group: "biology"},
		{ID: 5, Title: "Biology Y13", Group: "biology"},
	}
	topics := []entity.Topic{
		{ID: 40, SubjectID: 4}, {ID: 41, SubjectID: 4}, {ID: 42, SubjectID: 4},
		{ID: 50, SubjectID: 5},
	}
	d, _ := newDistributorFixture(subjects, topics)

	dist, err := d.DistributionForWeek(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	assertSumsToOne(t, dist)

	// Four buckets share equally; the pooled group subdivides its quarter
	// by topic count (3:1).
	want := map[int64]float64{1: 0.25, 2: 0.25, 3: 0.25, 4: 0.1875, 5: 0.0625}
	for id, w := range want {
		if math.Abs(dist[id]-w) > 1e-9 {
			t.Errorf("subject %d: weight = %v, want %v", id, dist[id], w)
		}
	}
}

func TestDistributionInverseFrequency(t *testing.T) {
	subjects := []entity.Subject{{ID: 1, Title: "Maths"}, {ID: 2, Title: "Physics"}}
	d, tasks := newDistributorFixture(subjects, nil)
	seedTasks(t, tasks, 1, 1, 3)
	seedTasks(t, tasks, 1, 2, 1)

	dist, err := d.DistributionForWeek(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	assertSumsToOne(t, dist)
	if math.Abs(dist[1]-0.25) > 1e-9 || math.Abs(dist[2]-0.75) > 1e-9 {
		t.Fatalf("dist = %v, want maths 0.25 / physics 0.75", dist)
	}
}

func TestDistributionUntouchedSubjectDominates(t *testing.T) {
	subjects := []entity.Subject{{ID: 1, Title: "Maths"}, {ID: 2, Title: "Physics"}}
	d, tasks := newDistributorFixture(subjects, nil)
	seedTasks(t, tasks, 1, 1, 4)

	dist, err := d.DistributionForWeek(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	assertSumsToOne(t, dist)
	if dist[1] != 0 || math.Abs(dist[2]-1.0) > 1e-9 {
		t.Fatalf("dist = %v, want physics to take the whole weight", dist)
	}

	// The draw must then never pick the saturated subject.
	for i := 0; i < 50; i++ {
		picked, err := d.SelectSubject(context.Background(), 1)
		if err != nil {
			t.Fatal(err)
		}
		if picked == nil || picked.ID != 2 {
			t.Fatalf("draw %d picked %+v, want subject 2", i, picked)
		}
	}
}

func TestDistributionSingleSubjectDegenerate(t *testing.T) {
	subjects := []entity.Subject{{ID: 1, Title: "Maths"}}
	d, tasks := newDistributorFixture(subjects, nil)
	seedTasks(t, tasks, 1, 1, 5)

	// The only subject absorbed every task; the equal-split fallback keeps
	// the distribution usable.
	dist, err := d.DistributionForWeek(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(dist[1]-1.0) > 1e-9 {
		t.Fatalf("dist = %v, want the single subject at weight 1", dist)
	}
}

func TestDistributionPoolsGroupedSubjects(t *testing.T) {
	subjects := []entity.Subject{
		{ID: 1, Title: "Maths"},
		{ID: 4, Title: "Biology Y12", Group: "biology"},
		{ID: 5, Title: "Biology Y13", Group: "biology"},
	}
	topics := []entity.Topic{
		{ID: 40, SubjectID: 4}, {ID: 41, SubjectID: 4}, {ID: 42, SubjectID: 4},
		{ID: 50, SubjectID: 5},
	}
	d, tasks := newDistributorFixture(subjects, topics)
	seedTasks(t, tasks, 1, 1, 2)
	seedTasks(t, tasks, 1, 4, 2) // counted against the whole biology pool

	dist, err := d.DistributionForWeek(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	assertSumsToOne(t, dist)
	want := map[int64]float64{1: 0.5, 4: 0.375, 5: 0.125}
	for id, w := range want {
		if math.Abs(dist[id]-w) > 1e-9 {
			t.Errorf("subject %d: weight = %v, want %v", id, dist[id], w)
		}
	}
}

func TestSelectSubjectEmptyCurriculum(t *testing.T) {
	d, _ := newDistributorFixture(nil, nil)
	picked, err := d.SelectSubject(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if picked != nil {
		t.Fatalf("want nil, got %+v", picked)
	}
}

func TestSelectSubjectFallsBackToUniformOnError(t *testing.T) {
	subjects := []entity.Subject{{ID: 1, Title: "Maths"}, {ID: 2, Title: "Physics"}}
	d, tasks := newDistributorFixture(subjects, nil)
	tasks.countErr = errors.New("stats offline")

	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		picked, err := d.SelectSubject(context.Background(), 1)
		if err != nil {
			t.Fatal(err)
		}
		if picked == nil {
			t.Fatal("uniform fallback should still pick a subject")
		}
		seen[picked.ID] = true
	}
	if !seen[1] || !seen[2] {
		t.Fatalf("uniform fallback should reach every subject, saw %v", seen)
	}
}
