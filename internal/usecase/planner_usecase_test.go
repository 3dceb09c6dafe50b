package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reviseapp/revise/internal/entity"
)

type plannerFixture struct {
	planner *plannerUsecase
	users   *fakeUserRepo
	tasks   *fakeTaskRepo
	conf    *fakeConfidenceRepo
	userID  int64
}

func newPlannerFixture(t *testing.T) *plannerFixture {
	t.Helper()
	subjects, topics, subtopics := physicsCurriculum()
	subjectRepo := &fakeSubjectRepo{subjects: subjects}
	topicRepo := &fakeTopicRepo{topics: topics}
	subtopicRepo := &fakeSubtopicRepo{subtopics: subtopics}
	conf := newFakeConfidenceRepo()
	tasks := newFakeTaskRepo()
	users := newFakeUserRepo()
	taskTypes := &fakeTaskTypeRepo{
		types:   []entity.TaskType{{ID: 1, Name: "revision"}},
		enabled: map[int64][]int64{},
	}
	logger := testLogger()
	staleness := 14 * 24 * time.Hour

	user, err := users.Create(context.Background(), testUser())
	if err != nil {
		t.Fatal(err)
	}

	distributor := NewSubjectDistributor(subjectRepo, topicRepo, tasks, testRand(5), logger).(*subjectDistributor)
	distributor.clock = func() time.Time { return testNow }
	selector := NewTopicSelector(topicRepo, conf, testRand(5), logger)
	packer := NewSubtopicPacker(subtopicRepo, conf, staleness, logger).(*subtopicPacker)
	packer.clock = func() time.Time { return testNow }
	generator := NewTaskGenerator(subjectRepo, taskTypes, tasks, distributor, selector, packer, 0.5, testRand(5), logger).(*taskGenerator)
	generator.clock = func() time.Time { return testNow }
	confidence := NewConfidenceUsecase(conf, topicRepo, subtopicRepo, staleness).(*confidenceUsecase)
	confidence.clock = func() time.Time { return testNow }

	planner := NewPlannerUsecase(users, tasks, generator, confidence, logger).(*plannerUsecase)
	planner.clock = func() time.Time { return testNow }

	return &plannerFixture{planner: planner, users: users, tasks: tasks, conf: conf, userID: user.ID}
}

func TestEnsureTodaysTasksGeneratesOnce(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	plan, err := f.planner.EnsureTodaysTasks(ctx, f.userID)
	if err != nil {
		t.Fatal(err)
	}
	// 2 weekday study hours yield 4 tasks.
	if len(plan.Active) != 4 || len(plan.Completed) != 0 {
		t.Fatalf("first call: %d active / %d completed, want 4/0", len(plan.Active), len(plan.Completed))
	}

	creates := f.tasks.createAttempt
	again, err := f.planner.EnsureTodaysTasks(ctx, f.userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Active) != 4 {
		t.Fatalf("second call: %d active, want the same 4", len(again.Active))
	}
	if f.tasks.createAttempt != creates {
		t.Fatal("second call must not generate new tasks")
	}
}

func TestEnsureTodaysTasksKeepsFinishedDay(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	plan, err := f.planner.EnsureTodaysTasks(ctx, f.userID)
	if err != nil {
		t.Fatal(err)
	}
	for _, task := range plan.Active {
		if _, err := f.planner.CompleteTask(ctx, f.userID, task.ID); err != nil {
			t.Fatal(err)
		}
	}

	creates := f.tasks.createAttempt
	done, err := f.planner.EnsureTodaysTasks(ctx, f.userID)
	if err != nil {
		t.Fatal(err)
	}
	// A fully completed day stays completed; no regeneration.
	if len(done.Active) != 0 || len(done.Completed) != 4 {
		t.Fatalf("got %d active / %d completed, want 0/4", len(done.Active), len(done.Completed))
	}
	if f.tasks.createAttempt != creates {
		t.Fatal("a finished day must not be refilled")
	}
}

func TestEnsureTodaysTasksUnknownUser(t *testing.T) {
	f := newPlannerFixture(t)
	if _, err := f.planner.EnsureTodaysTasks(context.Background(), 99); !errors.Is(err, entity.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

func TestCompleteTaskMarksSubtopicsAddressed(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	plan, err := f.planner.EnsureTodaysTasks(ctx, f.userID)
	if err != nil {
		t.Fatal(err)
	}
	task := plan.Active[0]
	if len(task.Subtopics) == 0 {
		t.Fatal("fixture task should have packed subtopics")
	}

	completed, err := f.planner.CompleteTask(ctx, f.userID, task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if completed.CompletedAt == nil {
		t.Fatal("task should be marked completed")
	}

	for _, ts := range task.Subtopics {
		rec, err := f.conf.GetSubtopic(ctx, f.userID, ts.SubtopicID)
		if err != nil {
			t.Fatal(err)
		}
		if rec == nil || rec.LastAddressed == nil {
			t.Fatalf("subtopic %d should be marked addressed, got %+v", ts.SubtopicID, rec)
		}
	}

	// Completing again is a no-op, not an error.
	again, err := f.planner.CompleteTask(ctx, f.userID, task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !again.CompletedAt.Equal(*completed.CompletedAt) {
		t.Fatal("repeat completion should keep the original timestamp")
	}
}

func TestCompleteTaskUnknown(t *testing.T) {
	f := newPlannerFixture(t)
	if _, err := f.planner.CompleteTask(context.Background(), f.userID, 999); !errors.Is(err, entity.ErrTaskNotFound) {
		t.Fatalf("want ErrTaskNotFound, got %v", err)
	}
}

func TestSkipTaskGeneratesReplacement(t *testing.T) {
	f := newPlannerFixture(t)
	ctx := context.Background()

	plan, err := f.planner.EnsureTodaysTasks(ctx, f.userID)
	if err != nil {
		t.Fatal(err)
	}
	task := plan.Active[0]

	skipped, replacement, err := f.planner.SkipTask(ctx, f.userID, task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if skipped.SkippedAt == nil {
		t.Fatal("task should be marked skipped")
	}
	if replacement == nil || replacement.ID == skipped.ID {
		t.Fatalf("want a fresh replacement task, got %+v", replacement)
	}
	if replacement.SubjectID != 1 {
		t.Errorf("replacement subject = %d, want 1", replacement.SubjectID)
	}

	// Skipping again returns the already-skipped task without another
	// replacement.
	creates := f.tasks.createAttempt
	_, replacement, err = f.planner.SkipTask(ctx, f.userID, task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if replacement != nil || f.tasks.createAttempt != creates {
		t.Fatal("repeat skip must not generate again")
	}
}
