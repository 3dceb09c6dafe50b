// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "group_name", Type: field.TypeString, Default: ""},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_title",
				Unique:  true,
				Columns: []*schema.Column{SubjectsColumns[1]},
			},
			{
				Name:    "subject_group_name",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[3]},
			},
		},
	}
	// SubjectPreferencesColumns holds the columns for the "subject_preferences" table.
	SubjectPreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "subject_id", Type: field.TypeInt64},
		{Name: "exclusive_task_type_id", Type: field.TypeInt64, Nullable: true},
	}
	// SubjectPreferencesTable holds the schema information for the "subject_preferences" table.
	SubjectPreferencesTable = &schema.Table{
		Name:       "subject_preferences",
		Columns:    SubjectPreferencesColumns,
		PrimaryKey: []*schema.Column{SubjectPreferencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subjectpreference_user_id_subject_id",
				Unique:  true,
				Columns: []*schema.Column{SubjectPreferencesColumns[1], SubjectPreferencesColumns[2]},
			},
		},
	}
	// SubtopicsColumns holds the columns for the "subtopics" table.
	SubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeInt64},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "estimated_duration", Type: field.TypeInt, Default: 30},
	}
	// SubtopicsTable holds the schema information for the "subtopics" table.
	SubtopicsTable = &schema.Table{
		Name:       "subtopics",
		Columns:    SubtopicsColumns,
		PrimaryKey: []*schema.Column{SubtopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopic_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SubtopicsColumns[1]},
			},
		},
	}
	// SubtopicConfidencesColumns holds the columns for the "subtopic_confidences" table.
	SubtopicConfidencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "subtopic_id", Type: field.TypeInt64},
		{Name: "level", Type: field.TypeInt, Default: 3},
		{Name: "priority", Type: field.TypeBool, Default: false},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "last_addressed", Type: field.TypeTime, Nullable: true},
	}
	// SubtopicConfidencesTable holds the schema information for the "subtopic_confidences" table.
	SubtopicConfidencesTable = &schema.Table{
		Name:       "subtopic_confidences",
		Columns:    SubtopicConfidencesColumns,
		PrimaryKey: []*schema.Column{SubtopicConfidencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopicconfidence_user_id_subtopic_id",
				Unique:  true,
				Columns: []*schema.Column{SubtopicConfidencesColumns[1], SubtopicConfidencesColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "subject_id", Type: field.TypeInt64},
		{Name: "topic_id", Type: field.TypeInt64},
		{Name: "task_type_id", Type: field.TypeInt64},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "skipped_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_duration", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_user_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[7]},
			},
			{
				Name:    "task_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[11]},
			},
			{
				Name:    "task_user_id_subject_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2], TasksColumns[11]},
			},
		},
	}
	// TaskSubtopicsColumns holds the columns for the "task_subtopics" table.
	TaskSubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeInt64},
		{Name: "subtopic_id", Type: field.TypeInt64},
		{Name: "duration", Type: field.TypeInt, Default: 0},
	}
	// TaskSubtopicsTable holds the schema information for the "task_subtopics" table.
	TaskSubtopicsTable = &schema.Table{
		Name:       "task_subtopics",
		Columns:    TaskSubtopicsColumns,
		PrimaryKey: []*schema.Column{TaskSubtopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tasksubtopic_task_id_subtopic_id",
				Unique:  true,
				Columns: []*schema.Column{TaskSubtopicsColumns[1], TaskSubtopicsColumns[2]},
			},
		},
	}
	// TaskTypesColumns holds the columns for the "task_types" table.
	TaskTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
	}
	// TaskTypesTable holds the schema information for the "task_types" table.
	TaskTypesTable = &schema.Table{
		Name:       "task_types",
		Columns:    TaskTypesColumns,
		PrimaryKey: []*schema.Column{TaskTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tasktype_name",
				Unique:  true,
				Columns: []*schema.Column{TaskTypesColumns[1]},
			},
		},
	}
	// TaskTypePreferencesColumns holds the columns for the "task_type_preferences" table.
	TaskTypePreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "task_type_id", Type: field.TypeInt64},
		{Name: "enabled", Type: field.TypeBool, Default: true},
	}
	// TaskTypePreferencesTable holds the schema information for the "task_type_preferences" table.
	TaskTypePreferencesTable = &schema.Table{
		Name:       "task_type_preferences",
		Columns:    TaskTypePreferencesColumns,
		PrimaryKey: []*schema.Column{TaskTypePreferencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tasktypepreference_user_id_task_type_id",
				Unique:  true,
				Columns: []*schema.Column{TaskTypePreferencesColumns[1], TaskTypePreferencesColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_id", Type: field.TypeInt64},
		{Name: "parent_topic_id", Type: field.TypeInt64, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_subject_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1]},
			},
			{
				Name:    "topic_parent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[2]},
			},
		},
	}
	// TopicConfidencesColumns holds the columns for the "topic_confidences" table.
	TopicConfidencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "topic_id", Type: field.TypeInt64},
		{Name: "percent", Type: field.TypeInt, Default: 1},
		{Name: "priority", Type: field.TypeBool, Default: false},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// TopicConfidencesTable holds the schema information for the "topic_confidences" table.
	TopicConfidencesTable = &schema.Table{
		Name:       "topic_confidences",
		Columns:    TopicConfidencesColumns,
		PrimaryKey: []*schema.Column{TopicConfidencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicconfidence_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{TopicConfidencesColumns[1], TopicConfidencesColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "username", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "study_hours_per_day", Type: field.TypeFloat64, Default: 2},
		{Name: "weekend_study_hours", Type: field.TypeFloat64, Default: 3},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SubjectsTable,
		SubjectPreferencesTable,
		SubtopicsTable,
		SubtopicConfidencesTable,
		TasksTable,
		TaskSubtopicsTable,
		TaskTypesTable,
		TaskTypePreferencesTable,
		TopicsTable,
		TopicConfidencesTable,
		UsersTable,
	}
)

func init() {
	SubjectsTable.Annotation = &entsql.Annotation{
		Table: "subjects",
	}
	SubjectPreferencesTable.Annotation = &entsql.Annotation{
		Table: "subject_preferences",
	}
	SubtopicsTable.Annotation = &entsql.Annotation{
		Table: "subtopics",
	}
	SubtopicConfidencesTable.Annotation = &entsql.Annotation{
		Table: "subtopic_confidences",
	}
	TasksTable.Annotation = &entsql.Annotation{
		Table: "tasks",
	}
	TaskSubtopicsTable.Annotation = &entsql.Annotation{
		Table: "task_subtopics",
	}
	TaskTypesTable.Annotation = &entsql.Annotation{
		Table: "task_types",
	}
	TaskTypePreferencesTable.Annotation = &entsql.Annotation{
		Table: "task_type_preferences",
	}
	TopicsTable.Annotation = &entsql.Annotation{
		Table: "topics",
	}
	TopicConfidencesTable.Annotation = &entsql.Annotation{
		Table: "topic_confidences",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
