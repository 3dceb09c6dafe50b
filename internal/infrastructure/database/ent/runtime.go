// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subject"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/task"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktype"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topicconfidence"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/user"
	"github.com/reviseapp/revise/internal/infrastructure/database/entschema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	subjectFields := entschema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescTitle is the schema descriptor for title field.
	subjectDescTitle := subjectFields[0].Descriptor()
	// subject.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	subject.TitleValidator = subjectDescTitle.Validators[0].(func(string) error)
	// subjectDescDescription is the schema descriptor for description field.
	subjectDescDescription := subjectFields[1].Descriptor()
	// subject.DefaultDescription holds the default value on creation for the description field.
	subject.DefaultDescription = subjectDescDescription.Default.(string)
	// subjectDescGroupName is the schema descriptor for group_name field.
	subjectDescGroupName := subjectFields[2].Descriptor()
	// subject.DefaultGroupName holds the default value on creation for the group_name field.
	subject.DefaultGroupName = subjectDescGroupName.Default.(string)
	subtopicFields := entschema.Subtopic{}.Fields()
	_ = subtopicFields
	// subtopicDescTitle is the schema descriptor for title field.
	subtopicDescTitle := subtopicFields[1].Descriptor()
	// subtopic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	subtopic.TitleValidator = subtopicDescTitle.Validators[0].(func(string) error)
	// subtopicDescDescription is the schema descriptor for description field.
	subtopicDescDescription := subtopicFields[2].Descriptor()
	// subtopic.DefaultDescription holds the default value on creation for the description field.
	subtopic.DefaultDescription = subtopicDescDescription.Default.(string)
	// subtopicDescEstimatedDuration is the schema descriptor for estimated_duration field.
	subtopicDescEstimatedDuration := subtopicFields[3].Descriptor()
	// subtopic.DefaultEstimatedDuration holds the default value on creation for the estimated_duration field.
	subtopic.DefaultEstimatedDuration = subtopicDescEstimatedDuration.Default.(int)
	subtopicconfidenceFields := entschema.SubtopicConfidence{}.Fields()
	_ = subtopicconfidenceFields
	// subtopicconfidenceDescLevel is the schema descriptor for level field.
	subtopicconfidenceDescLevel := subtopicconfidenceFields[2].Descriptor()
	// subtopicconfidence.DefaultLevel holds the default value on creation for the level field.
	subtopicconfidence.DefaultLevel = subtopicconfidenceDescLevel.Default.(int)
	// subtopicconfidenceDescPriority is the schema descriptor for priority field.
	subtopicconfidenceDescPriority := subtopicconfidenceFields[3].Descriptor()
	// subtopicconfidence.DefaultPriority holds the default value on creation for the priority field.
	subtopicconfidence.DefaultPriority = subtopicconfidenceDescPriority.Default.(bool)
	// subtopicconfidenceDescLastUpdated is the schema descriptor for last_updated field.
	subtopicconfidenceDescLastUpdated := subtopicconfidenceFields[4].Descriptor()
	// subtopicconfidence.DefaultLastUpdated holds the default value on creation for the last_updated field.
	subtopicconfidence.DefaultLastUpdated = subtopicconfidenceDescLastUpdated.Default.(func() time.Time)
	// subtopicconfidence.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	subtopicconfidence.UpdateDefaultLastUpdated = subtopicconfidenceDescLastUpdated.UpdateDefault.(func() time.Time)
	taskFields := entschema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[4].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescDescription is the schema descriptor for description field.
	taskDescDescription := taskFields[5].Descriptor()
	// task.DefaultDescription holds the default value on creation for the description field.
	task.DefaultDescription = taskDescDescription.Default.(string)
	// taskDescTotalDuration is the schema descriptor for total_duration field.
	taskDescTotalDuration := taskFields[9].Descriptor()
	// task.DefaultTotalDuration holds the default value on creation for the total_duration field.
	task.DefaultTotalDuration = taskDescTotalDuration.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[10].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	tasksubtopicFields := entschema.TaskSubtopic{}.Fields()
	_ = tasksubtopicFields
	// tasksubtopicDescDuration is the schema descriptor for duration field.
	tasksubtopicDescDuration := tasksubtopicFields[2].Descriptor()
	// tasksubtopic.DefaultDuration holds the default value on creation for the duration field.
	tasksubtopic.DefaultDuration = tasksubtopicDescDuration.Default.(int)
	tasktypeFields := entschema.TaskType{}.Fields()
	_ = tasktypeFields
	// tasktypeDescName is the schema descriptor for name field.
	tasktypeDescName := tasktypeFields[0].Descriptor()
	// tasktype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tasktype.NameValidator = tasktypeDescName.Validators[0].(func(string) error)
	// tasktypeDescDescription is the schema descriptor for description field.
	tasktypeDescDescription := tasktypeFields[1].Descriptor()
	// tasktype.DefaultDescription holds the default value on creation for the description field.
	tasktype.DefaultDescription = tasktypeDescDescription.Default.(string)
	tasktypepreferenceFields := entschema.TaskTypePreference{}.Fields()
	_ = tasktypepreferenceFields
	// tasktypepreferenceDescEnabled is the schema descriptor for enabled field.
	tasktypepreferenceDescEnabled := tasktypepreferenceFields[2].Descriptor()
	// tasktypepreference.DefaultEnabled holds the default value on creation for the enabled field.
	tasktypepreference.DefaultEnabled = tasktypepreferenceDescEnabled.Default.(bool)
	topicFields := entschema.Topic{}.Fields()
	_ = topicFields
	// topicDescTitle is the schema descriptor for title field.
	topicDescTitle := topicFields[2].Descriptor()
	// topic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	topic.TitleValidator = topicDescTitle.Validators[0].(func(string) error)
	// topicDescDescription is the schema descriptor for description field.
	topicDescDescription := topicFields[3].Descriptor()
	// topic.DefaultDescription holds the default value on creation for the description field.
	topic.DefaultDescription = topicDescDescription.Default.(string)
	topicconfidenceFields := entschema.TopicConfidence{}.Fields()
	_ = topicconfidenceFields
	// topicconfidenceDescPercent is the schema descriptor for percent field.
	topicconfidenceDescPercent := topicconfidenceFields[2].Descriptor()
	// topicconfidence.DefaultPercent holds the default value on creation for the percent field.
	topicconfidence.DefaultPercent = topicconfidenceDescPercent.Default.(int)
	// topicconfidenceDescPriority is the schema descriptor for priority field.
	topicconfidenceDescPriority := topicconfidenceFields[3].Descriptor()
	// topicconfidence.DefaultPriority holds the default value on creation for the priority field.
	topicconfidence.DefaultPriority = topicconfidenceDescPriority.Default.(bool)
	// topicconfidenceDescLastUpdated is the schema descriptor for last_updated field.
	topicconfidenceDescLastUpdated := topicconfidenceFields[4].Descriptor()
	// topicconfidence.DefaultLastUpdated holds the default value on creation for the last_updated field.
	topicconfidence.DefaultLastUpdated = topicconfidenceDescLastUpdated.Default.(func() time.Time)
	// topicconfidence.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	topicconfidence.UpdateDefaultLastUpdated = topicconfidenceDescLastUpdated.UpdateDefault.(func() time.Time)
	userFields := entschema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescStudyHoursPerDay is the schema descriptor for study_hours_per_day field.
	userDescStudyHoursPerDay := userFields[3].Descriptor()
	// user.DefaultStudyHoursPerDay holds the default value on creation for the study_hours_per_day field.
	user.DefaultStudyHoursPerDay = userDescStudyHoursPerDay.Default.(float64)
	// userDescWeekendStudyHours is the schema descriptor for weekend_study_hours field.
	userDescWeekendStudyHours := userFields[4].Descriptor()
	// user.DefaultWeekendStudyHours holds the default value on creation for the weekend_study_hours field.
	user.DefaultWeekendStudyHours = userDescWeekendStudyHours.Default.(float64)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
