package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reviseapp/revise/internal/entity"
)

type generatorFixture struct {
	generator *taskGenerator
	tasks     *fakeTaskRepo
	taskTypes *fakeTaskTypeRepo
	conf      *fakeConfidenceRepo
}

// Monday, so weekday study hours apply.
var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newGeneratorFixture(subjects []entity.Subject, topics []entity.Topic, subtopics []entity.Subtopic) *generatorFixture {
	subjectRepo := &fakeSubjectRepo{subjects: subjects}
	topicRepo := &fakeTopicRepo{topics: topics}
	subtopicRepo := &fakeSubtopicRepo{subtopics: subtopics}
	conf := newFakeConfidenceRepo()
	tasks := newFakeTaskRepo()
	taskTypes := &fakeTaskTypeRepo{
		types:     []entity.TaskType{{ID: 1, Name: "revision"}, {ID: 2, Name: "practice"}},
		enabled:   map[int64][]int64{},
		exclusive: map[[2]int64]int64{},
	}
	logger := testLogger()
	staleness := 14 * 24 * time.Hour

	distributor := NewSubjectDistributor(subjectRepo, topicRepo, tasks, testRand(3), logger).(*subjectDistributor)
	distributor.clock = func() time.Time { return testNow }
	selector := NewTopicSelector(topicRepo, conf, testRand(3), logger)
	packer := NewSubtopicPacker(subtopicRepo, conf, staleness, logger).(*subtopicPacker)
	packer.clock = func() time.Time { return testNow }

	g := NewTaskGenerator(subjectRepo, taskTypes, tasks, distributor, selector, packer, 0.5, testRand(3), logger).(*taskGenerator)
	g.clock = func() time.Time { return testNow }
	return &generatorFixture{generator: g, tasks: tasks, taskTypes: taskTypes, conf: conf}
}

func testUser() *entity.User {
	return &entity.User{ID: 1, Email: "amy@example.com", StudyHoursPerDay: 2.0, WeekendStudyHours: 3.0}
}

func physicsCurriculum() ([]entity.Subject, []entity.Topic, []entity.Subtopic) {
	subjects := []entity.Subject{{ID: 1, Title: "Physics"}}
	topics := []entity.Topic{{ID: 10, SubjectID: 1, Title: "Mechanics", Description: "Forces and motion"}}
	subtopics := []entity.Subtopic{
		{ID: 101, TopicID: 10, Title: "Forces", EstimatedDuration: 25},
		{ID: 102, TopicID: 10, Title: "Momentum", EstimatedDuration: 20},
	}
	return subjects, topics, subtopics
}

func TestGenerateForSubjectCreatesPackedTask(t *testing.T) {
	f := newGeneratorFixture(physicsCurriculum())

	task, err := f.generator.GenerateForSubject(context.Background(), testUser(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if task == nil || task.ID == 0 {
		t.Fatalf("want a persisted task, got %+v", task)
	}
	if task.SubjectID != 1 || task.TopicID != 10 {
		t.Errorf("task bound to subject %d topic %d, want 1/10", task.SubjectID, task.TopicID)
	}
	if task.Title != "Revision: Mechanics" && task.Title != "Practice: Mechanics" {
		t.Errorf("title = %q, want '<Type>: Mechanics'", task.Title)
	}
	if !task.DueDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("due date = %v, want start of today", task.DueDate)
	}
	// 2 study hours at packing fraction 0.5 leave a 60-minute budget; both
	// subtopics (25 + 20) fit.
	if task.TotalDuration != 45 || len(task.Subtopics) != 2 {
		t.Errorf("packed %d minutes over %d subtopics, want 45 over 2", task.TotalDuration, len(task.Subtopics))
	}
}

func TestGenerateForSubjectUnknownSubject(t *testing.T) {
	f := newGeneratorFixture(physicsCurriculum())
	if _, err := f.generator.GenerateForSubject(context.Background(), testUser(), 99); !errors.Is(err, entity.ErrSubjectNotFound) {
		t.Fatalf("want ErrSubjectNotFound, got %v", err)
	}
}

func TestGenerateForSubjectNoTopics(t *testing.T) {
	f := newGeneratorFixture([]entity.Subject{{ID: 1, Title: "Physics"}}, nil, nil)
	task, err := f.generator.GenerateForSubject(context.Background(), testUser(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if task != nil {
		t.Fatalf("subject without topics should generate nothing, got %+v", task)
	}
	if len(f.tasks.tasks) != 0 {
		t.Fatal("nothing should have been persisted")
	}
}

func TestGenerateForSubjectHonoursExclusiveTaskType(t *testing.T) {
	f := newGeneratorFixture(physicsCurriculum())
	f.taskTypes.exclusive[[2]int64{1, 1}] = 2

	for i := 0; i < 10; i++ {
		task, err := f.generator.GenerateForSubject(context.Background(), testUser(), 1)
		if err != nil {
			t.Fatal(err)
		}
		if task.TaskTypeID != 2 {
			t.Fatalf("task type = %d, want the pinned type 2", task.TaskTypeID)
		}
	}
}

func TestGenerateForSubjectUsesEnabledTypes(t *testing.T) {
	f := newGeneratorFixture(physicsCurriculum())
	f.taskTypes.enabled[1] = []int64{1}

	for i := 0; i < 10; i++ {
		task, err := f.generator.GenerateForSubject(context.Background(), testUser(), 1)
		if err != nil {
			t.Fatal(err)
		}
		if task.TaskTypeID != 1 {
			t.Fatalf("task type = %d, want the only enabled type 1", task.TaskTypeID)
		}
	}
}

func TestGenerateForSubjectVanishedPinnedTypeFallsBack(t *testing.T) {
	f := newGeneratorFixture(physicsCurriculum())
	f.taskTypes.exclusive[[2]int64{1, 1}] = 99 // no such type

	task, err := f.generator.GenerateForSubject(context.Background(), testUser(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if task == nil || (task.TaskTypeID != 1 && task.TaskTypeID != 2) {
		t.Fatalf("want a task from the regular pool, got %+v", task)
	}
}

func TestGenerateReplacementDrawsFromDistribution(t *testing.T) {
	f := newGeneratorFixture(physicsCurriculum())
	task, err := f.generator.GenerateReplacement(context.Background(), testUser(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if task == nil || task.SubjectID != 1 {
		t.Fatalf("want a task for the only subject, got %+v", task)
	}
}

func TestGenerateDailyBatchSurvivesFailedAttempts(t *testing.T) {
	f := newGeneratorFixture(physicsCurriculum())
	f.tasks.failCreateOn = 2

	tasks, err := f.generator.GenerateDailyBatch(context.Background(), testUser(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("batch returned %d tasks, want 2 (one attempt failed)", len(tasks))
	}
}

func TestTimeBudgetClamps(t *testing.T) {
	f := newGeneratorFixture(physicsCurriculum())
	cases := []struct {
		hours float64
		want  int
	}{
		{2.0, 60},
		{0.2, entity.MinSubtopicMinutes},
		{10.0, entity.MaxTaskMinutes},
		{4.0, 120},
	}
	for _, c := range cases {
		user := &entity.User{ID: 1, StudyHoursPerDay: c.hours}
		if got := f.generator.timeBudget(user, testNow); got != c.want {
			t.Errorf("timeBudget(%v hours) = %d, want %d", c.hours, got, c.want)
		}
	}
}
