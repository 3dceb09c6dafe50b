package usecase

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// --- subjects ---

type fakeSubjectRepo struct {
	subjects []entity.Subject
}

func (r *fakeSubjectRepo) List(ctx context.Context) ([]entity.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.Subject(nil), r.subjects...), nil
}

func (r *fakeSubjectRepo) GetByID(ctx context.Context, id int64) (*entity.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, s := range r.subjects {
		if s.ID == id {
			copy := s
			return &copy, nil
		}
	}
	return nil, nil
}

// --- topics ---

type fakeTopicRepo struct {
	topics []entity.Topic
}

func (r *fakeTopicRepo) GetByID(ctx context.Context, id int64) (*entity.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, t := range r.topics {
		if t.ID == id {
			copy := t
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeTopicRepo) ListBySubject(ctx context.Context, subjectID int64) ([]entity.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []entity.Topic
	for _, t := range r.topics {
		if t.SubjectID == subjectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTopicRepo) ListPapers(ctx context.Context, subjectID int64) ([]entity.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []entity.Topic
	for _, t := range r.topics {
		if t.SubjectID == subjectID && t.ParentTopicID == nil {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTopicRepo) ListChildren(ctx context.Context, parentTopicID int64) ([]entity.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []entity.Topic
	for _, t := range r.topics {
		if t.ParentTopicID != nil && *t.ParentTopicID == parentTopicID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTopicRepo) CountBySubject(ctx context.Context, subjectIDs []int64) (map[int64]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	counts := make(map[int64]int, len(subjectIDs))
	for _, id := range subjectIDs {
		for _, t := range r.topics {
			if t.SubjectID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

// --- subtopics ---

type fakeSubtopicRepo struct {
	subtopics []entity.Subtopic
}

func (r *fakeSubtopicRepo) GetByID(ctx context.Context, id int64) (*entity.Subtopic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, s := range r.subtopics {
		if s.ID == id {
			copy := s
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeSubtopicRepo) ListByTopic(ctx context.Context, topicID int64) ([]entity.Subtopic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []entity.Subtopic
	for _, s := range r.subtopics {
		if s.TopicID == topicID {
			out = append(out, s)
		}
	}
	return out, nil
}

// --- confidence ---

type subKey struct{ userID, subtopicID int64 }
type topKey struct{ userID, topicID int64 }

type fakeConfidenceRepo struct {
	mu       sync.RWMutex
	subs     map[subKey]entity.SubtopicConfidence
	tops     map[topKey]entity.TopicConfidence
	cascades int

	listSubsErr error
	listTopsErr error
}

func newFakeConfidenceRepo() *fakeConfidenceRepo {
	return &fakeConfidenceRepo{
		subs: make(map[subKey]entity.SubtopicConfidence),
		tops: make(map[topKey]entity.TopicConfidence),
	}
}

func (r *fakeConfidenceRepo) GetSubtopic(ctx context.Context, userID, subtopicID int64) (*entity.SubtopicConfidence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rec, ok := r.subs[subKey{userID, subtopicID}]; ok {
		copy := rec
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeConfidenceRepo) ListSubtopics(ctx context.Context, userID int64, subtopicIDs []int64) ([]entity.SubtopicConfidence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.listSubsErr != nil {
		return nil, r.listSubsErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.SubtopicConfidence
	for _, id := range subtopicIDs {
		if rec, ok := r.subs[subKey{userID, id}]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeConfidenceRepo) SaveSubtopic(ctx context.Context, conf *entity.SubtopicConfidence) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[subKey{conf.UserID, conf.SubtopicID}] = *conf
	return nil
}

func (r *fakeConfidenceRepo) GetTopic(ctx context.Context, userID, topicID int64) (*entity.TopicConfidence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rec, ok := r.tops[topKey{userID, topicID}]; ok {
		copy := rec
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeConfidenceRepo) ListTopics(ctx context.Context, userID int64, topicIDs []int64) ([]entity.TopicConfidence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.listTopsErr != nil {
		return nil, r.listTopsErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.TopicConfidence
	for _, id := range topicIDs {
		if rec, ok := r.tops[topKey{userID, id}]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeConfidenceRepo) SaveTopic(ctx context.Context, conf *entity.TopicConfidence) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tops[topKey{conf.UserID, conf.TopicID}] = *conf
	return nil
}

func (r *fakeConfidenceRepo) SaveSubtopicCascade(ctx context.Context, sub *entity.SubtopicConfidence, topic *entity.TopicConfidence) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[subKey{sub.UserID, sub.SubtopicID}] = *sub
	r.tops[topKey{topic.UserID, topic.TopicID}] = *topic
	r.cascades++
	return nil
}

// --- tasks ---

type fakeTaskRepo struct {
	mu    sync.RWMutex
	seq   int64
	tasks map[int64]*entity.Task

	createErr     error
	failCreateOn  int // fail the nth create (1-based) when > 0
	createAttempt int
	countErr      error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*entity.Task)}
}

func cloneTask(t *entity.Task) *entity.Task {
	copy := *t
	copy.Subtopics = append([]entity.TaskSubtopic(nil), t.Subtopics...)
	return &copy
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createAttempt++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.failCreateOn > 0 && r.createAttempt == r.failCreateOn {
		return nil, context.DeadlineExceeded
	}
	r.seq++
	copy := cloneTask(task)
	copy.ID = r.seq
	for i := range copy.Subtopics {
		copy.Subtopics[i].TaskID = copy.ID
	}
	r.tasks[copy.ID] = copy
	return cloneTask(copy), nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, userID, id int64) (*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, nil
	}
	return cloneTask(task), nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return nil, entity.ErrTaskNotFound
	}
	r.tasks[task.ID] = cloneTask(task)
	return cloneTask(task), nil
}

func (r *fakeTaskRepo) ListForDate(ctx context.Context, userID int64, day time.Time) ([]entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Task
	for _, t := range r.tasks {
		if t.UserID == userID && sameDay(t.DueDate, day) {
			out = append(out, *cloneTask(t))
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) CountBySubjectSince(ctx context.Context, userID int64, since time.Time) (map[int64]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.countErr != nil {
		return nil, r.countErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := map[int64]int{}
	for _, t := range r.tasks {
		if t.UserID == userID && !t.CreatedAt.Before(since) {
			counts[t.SubjectID]++
		}
	}
	return counts, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// --- task types ---

type fakeTaskTypeRepo struct {
	types     []entity.TaskType
	enabled   map[int64][]int64 // user id -> enabled type ids
	exclusive map[[2]int64]int64
}

func (r *fakeTaskTypeRepo) List(ctx context.Context) ([]entity.TaskType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.TaskType(nil), r.types...), nil
}

func (r *fakeTaskTypeRepo) GetByID(ctx context.Context, id int64) (*entity.TaskType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, tt := range r.types {
		if tt.ID == id {
			copy := tt
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskTypeRepo) ListEnabled(ctx context.Context, userID int64) ([]entity.TaskType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []entity.TaskType
	for _, id := range r.enabled[userID] {
		for _, tt := range r.types {
			if tt.ID == id {
				out = append(out, tt)
			}
		}
	}
	return out, nil
}

func (r *fakeTaskTypeRepo) ExclusiveForSubject(ctx context.Context, userID, subjectID int64) (*int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id, ok := r.exclusive[[2]int64{userID, subjectID}]; ok {
		copy := id
		return &copy, nil
	}
	return nil, nil
}

// --- users ---

type fakeUserRepo struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, entity.ErrDuplicateUser
		}
	}
	r.seq++
	copy := *user
	copy.ID = r.seq
	r.users[copy.ID] = copy
	return &copy, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		copy := u
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, entity.ErrUserNotFound
	}
	r.users[user.ID] = *user
	copy := *user
	return &copy, nil
}

// --- stats ---

type fakeStatsRepo struct {
	subjects    []repository.SubjectConfidenceStat
	completions []repository.DailyCompletionStat
}

func (r *fakeStatsRepo) SubjectConfidence(ctx context.Context, userID int64) ([]repository.SubjectConfidenceStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.subjects, nil
}

func (r *fakeStatsRepo) DailyCompletions(ctx context.Context, userID int64, days int) ([]repository.DailyCompletionStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.completions, nil
}

// --- curriculum import ---

type fakeCurriculumRepo struct {
	imported []repository.SubjectImport
}

func (r *fakeCurriculumRepo) Import(ctx context.Context, subjects []repository.SubjectImport) (repository.ImportStats, error) {
	if err := ctx.Err(); err != nil {
		return repository.ImportStats{}, err
	}
	r.imported = append(r.imported, subjects...)

	stats := repository.ImportStats{Subjects: len(subjects)}
	var countTopics func(topics []repository.TopicImport)
	countTopics = func(topics []repository.TopicImport) {
		for _, t := range topics {
			stats.Topics++
			stats.Subtopics += len(t.Subtopics)
			countTopics(t.Categories)
		}
	}
	for _, s := range subjects {
		countTopics(s.Topics)
	}
	return stats, nil
}
