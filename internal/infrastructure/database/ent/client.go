// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/reviseapp/revise/internal/infrastructure/database/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subject"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subjectpreference"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/task"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktype"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topicconfidence"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Subject is the client for interacting with the Subject builders.
	Subject *SubjectClient
	// SubjectPreference is the client for interacting with the SubjectPreference builders.
	SubjectPreference *SubjectPreferenceClient
	// Subtopic is the client for interacting with the Subtopic builders.
	Subtopic *SubtopicClient
	// SubtopicConfidence is the client for interacting with the SubtopicConfidence builders.
	SubtopicConfidence *SubtopicConfidenceClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskSubtopic is the client for interacting with the TaskSubtopic builders.
	TaskSubtopic *TaskSubtopicClient
	// TaskType is the client for interacting with the TaskType builders.
	TaskType *TaskTypeClient
	// TaskTypePreference is the client for interacting with the TaskTypePreference builders.
	TaskTypePreference *TaskTypePreferenceClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
	// TopicConfidence is the client for interacting with the TopicConfidence builders.
	TopicConfidence *TopicConfidenceClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Subject = NewSubjectClient(c.config)
	c.SubjectPreference = NewSubjectPreferenceClient(c.config)
	c.Subtopic = NewSubtopicClient(c.config)
	c.SubtopicConfidence = NewSubtopicConfidenceClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskSubtopic = NewTaskSubtopicClient(c.config)
	c.TaskType = NewTaskTypeClient(c.config)
	c.TaskTypePreference = NewTaskTypePreferenceClient(c.config)
	c.Topic = NewTopicClient(c.config)
	c.TopicConfidence = NewTopicConfidenceClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Subject:            NewSubjectClient(cfg),
		SubjectPreference:  NewSubjectPreferenceClient(cfg),
		Subtopic:           NewSubtopicClient(cfg),
		SubtopicConfidence: NewSubtopicConfidenceClient(cfg),
		Task:               NewTaskClient(cfg),
		TaskSubtopic:       NewTaskSubtopicClient(cfg),
		TaskType:           NewTaskTypeClient(cfg),
		TaskTypePreference: NewTaskTypePreferenceClient(cfg),
		Topic:              NewTopicClient(cfg),
		TopicConfidence:    NewTopicConfidenceClient(cfg),
		User:               NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Subject:            NewSubjectClient(cfg),
		SubjectPreference:  NewSubjectPreferenceClient(cfg),
		Subtopic:           NewSubtopicClient(cfg),
		SubtopicConfidence: NewSubtopicConfidenceClient(cfg),
		Task:               NewTaskClient(cfg),
		TaskSubtopic:       NewTaskSubtopicClient(cfg),
		TaskType:           NewTaskTypeClient(cfg),
		TaskTypePreference: NewTaskTypePreferenceClient(cfg),
		Topic:              NewTopicClient(cfg),
		TopicConfidence:    NewTopicConfidenceClient(cfg),
		User:               NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Subject.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Subject, c.SubjectPreference, c.Subtopic, c.SubtopicConfidence, c.Task,
		c.TaskSubtopic, c.TaskType, c.TaskTypePreference, c.Topic, c.TopicConfidence,
		c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Subject, c.SubjectPreference, c.Subtopic, c.SubtopicConfidence, c.Task,
		c.TaskSubtopic, c.TaskType, c.TaskTypePreference, c.Topic, c.TopicConfidence,
		c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SubjectMutation:
		return c.Subject.mutate(ctx, m)
	case *SubjectPreferenceMutation:
		return c.SubjectPreference.mutate(ctx, m)
	case *SubtopicMutation:
		return c.Subtopic.mutate(ctx, m)
	case *SubtopicConfidenceMutation:
		return c.SubtopicConfidence.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskSubtopicMutation:
		return c.TaskSubtopic.mutate(ctx, m)
	case *TaskTypeMutation:
		return c.TaskType.mutate(ctx, m)
	case *TaskTypePreferenceMutation:
		return c.TaskTypePreference.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	case *TopicConfidenceMutation:
		return c.TopicConfidence.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// SubjectClient is a client for the Subject schema.
type SubjectClient struct {
	config
}

// NewSubjectClient returns a client for the Subject from the given config.
func NewSubjectClient(c config) *SubjectClient {
	return &SubjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subject.Hooks(f(g(h())))`.
func (c *SubjectClient) Use(hooks ...Hook) {
	c.hooks.Subject = append(c.hooks.Subject, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subject.Intercept(f(g(h())))`.
func (c *SubjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subject = append(c.inters.Subject, interceptors...)
}

// Create returns a builder for creating a Subject entity.
func (c *SubjectClient) Create() *SubjectCreate {
	mutation := newSubjectMutation(c.config, OpCreate)
	return &SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subject entities.
func (c *SubjectClient) CreateBulk(builders ...*SubjectCreate) *SubjectCreateBulk {
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectClient) MapCreateBulk(slice any, setFunc func(*SubjectCreate, int)) *SubjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectCreateBulk{err: fmt.Errorf("calling to SubjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subject.
func (c *SubjectClient) Update() *SubjectUpdate {
	mutation := newSubjectMutation(c.config, OpUpdate)
	return &SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectClient) UpdateOne(s *Subject) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubject(s))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectClient) UpdateOneID(id int) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubjectID(id))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subject.
func (c *SubjectClient) Delete() *SubjectDelete {
	mutation := newSubjectMutation(c.config, OpDelete)
	return &SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectClient) DeleteOne(s *Subject) *SubjectDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectClient) DeleteOneID(id int) *SubjectDeleteOne {
	builder := c.Delete().Where(subject.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectDeleteOne{builder}
}

// Query returns a query builder for Subject.
func (c *SubjectClient) Query() *SubjectQuery {
	return &SubjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubject},
		inters: c.Interceptors(),
	}
}

// Get returns a Subject entity by its id.
func (c *SubjectClient) Get(ctx context.Context, id int) (*Subject, error) {
	return c.Query().Where(subject.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectClient) GetX(ctx context.Context, id int) *Subject {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubjectClient) Hooks() []Hook {
	return c.hooks.Subject
}

// Interceptors returns the client interceptors.
func (c *SubjectClient) Interceptors() []Interceptor {
	return c.inters.Subject
}

func (c *SubjectClient) mutate(ctx context.Context, m *SubjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subject mutation op: %q", m.Op())
	}
}

// SubjectPreferenceClient is a client for the SubjectPreference schema.
type SubjectPreferenceClient struct {
	config
}

// NewSubjectPreferenceClient returns a client for the SubjectPreference from the given config.
func NewSubjectPreferenceClient(c config) *SubjectPreferenceClient {
	return &SubjectPreferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subjectpreference.Hooks(f(g(h())))`.
func (c *SubjectPreferenceClient) Use(hooks ...Hook) {
	c.hooks.SubjectPreference = append(c.hooks.SubjectPreference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subjectpreference.Intercept(f(g(h())))`.
func (c *SubjectPreferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubjectPreference = append(c.inters.SubjectPreference, interceptors...)
}

// Create returns a builder for creating a SubjectPreference entity.
func (c *SubjectPreferenceClient) Create() *SubjectPreferenceCreate {
	mutation := newSubjectPreferenceMutation(c.config, OpCreate)
	return &SubjectPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubjectPreference entities.
func (c *SubjectPreferenceClient) CreateBulk(builders ...*SubjectPreferenceCreate) *SubjectPreferenceCreateBulk {
	return &SubjectPreferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectPreferenceClient) MapCreateBulk(slice any, setFunc func(*SubjectPreferenceCreate, int)) *SubjectPreferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectPreferenceCreateBulk{err: fmt.Errorf("calling to SubjectPreferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectPreferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectPreferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubjectPreference.
func (c *SubjectPreferenceClient) Update() *SubjectPreferenceUpdate {
	mutation := newSubjectPreferenceMutation(c.config, OpUpdate)
	return &SubjectPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectPreferenceClient) UpdateOne(sp *SubjectPreference) *SubjectPreferenceUpdateOne {
	mutation := newSubjectPreferenceMutation(c.config, OpUpdateOne, withSubjectPreference(sp))
	return &SubjectPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectPreferenceClient) UpdateOneID(id int) *SubjectPreferenceUpdateOne {
	mutation := newSubjectPreferenceMutation(c.config, OpUpdateOne, withSubjectPreferenceID(id))
	return &SubjectPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubjectPreference.
func (c *SubjectPreferenceClient) Delete() *SubjectPreferenceDelete {
	mutation := newSubjectPreferenceMutation(c.config, OpDelete)
	return &SubjectPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectPreferenceClient) DeleteOne(sp *SubjectPreference) *SubjectPreferenceDeleteOne {
	return c.DeleteOneID(sp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectPreferenceClient) DeleteOneID(id int) *SubjectPreferenceDeleteOne {
	builder := c.Delete().Where(subjectpreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectPreferenceDeleteOne{builder}
}

// Query returns a query builder for SubjectPreference.
func (c *SubjectPreferenceClient) Query() *SubjectPreferenceQuery {
	return &SubjectPreferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubjectPreference},
		inters: c.Interceptors(),
	}
}

// Get returns a SubjectPreference entity by its id.
func (c *SubjectPreferenceClient) Get(ctx context.Context, id int) (*SubjectPreference, error) {
	return c.Query().Where(subjectpreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectPreferenceClient) GetX(ctx context.Context, id int) *SubjectPreference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubjectPreferenceClient) Hooks() []Hook {
	return c.hooks.SubjectPreference
}

// Interceptors returns the client interceptors.
func (c *SubjectPreferenceClient) Interceptors() []Interceptor {
	return c.inters.SubjectPreference
}

func (c *SubjectPreferenceClient) mutate(ctx context.Context, m *SubjectPreferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubjectPreference mutation op: %q", m.Op())
	}
}

// SubtopicClient is a client for the Subtopic schema.
type SubtopicClient struct {
	config
}

// NewSubtopicClient returns a client for the Subtopic from the given config.
func NewSubtopicClient(c config) *SubtopicClient {
	return &SubtopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtopic.Hooks(f(g(h())))`.
func (c *SubtopicClient) Use(hooks ...Hook) {
	c.hooks.Subtopic = append(c.hooks.Subtopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtopic.Intercept(f(g(h())))`.
func (c *SubtopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subtopic = append(c.inters.Subtopic, interceptors...)
}

// Create returns a builder for creating a Subtopic entity.
func (c *SubtopicClient) Create() *SubtopicCreate {
	mutation := newSubtopicMutation(c.config, OpCreate)
	return &SubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subtopic entities.
func (c *SubtopicClient) CreateBulk(builders ...*SubtopicCreate) *SubtopicCreateBulk {
	return &SubtopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubtopicClient) MapCreateBulk(slice any, setFunc func(*SubtopicCreate, int)) *SubtopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubtopicCreateBulk{err: fmt.Errorf("calling to SubtopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubtopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubtopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subtopic.
func (c *SubtopicClient) Update() *SubtopicUpdate {
	mutation := newSubtopicMutation(c.config, OpUpdate)
	return &SubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubtopicClient) UpdateOne(s *Subtopic) *SubtopicUpdateOne {
	mutation := newSubtopicMutation(c.config, OpUpdateOne, withSubtopic(s))
	return &SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubtopicClient) UpdateOneID(id int) *SubtopicUpdateOne {
	mutation := newSubtopicMutation(c.config, OpUpdateOne, withSubtopicID(id))
	return &SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subtopic.
func (c *SubtopicClient) Delete() *SubtopicDelete {
	mutation := newSubtopicMutation(c.config, OpDelete)
	return &SubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubtopicClient) DeleteOne(s *Subtopic) *SubtopicDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubtopicClient) DeleteOneID(id int) *SubtopicDeleteOne {
	builder := c.Delete().Where(subtopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubtopicDeleteOne{builder}
}

// Query returns a query builder for Subtopic.
func (c *SubtopicClient) Query() *SubtopicQuery {
	return &SubtopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubtopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Subtopic entity by its id.
func (c *SubtopicClient) Get(ctx context.Context, id int) (*Subtopic, error) {
	return c.Query().Where(subtopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubtopicClient) GetX(ctx context.Context, id int) *Subtopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubtopicClient) Hooks() []Hook {
	return c.hooks.Subtopic
}

// Interceptors returns the client interceptors.
func (c *SubtopicClient) Interceptors() []Interceptor {
	return c.inters.Subtopic
}

func (c *SubtopicClient) mutate(ctx context.Context, m *SubtopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subtopic mutation op: %q", m.Op())
	}
}

// SubtopicConfidenceClient is a client for the SubtopicConfidence schema.
type SubtopicConfidenceClient struct {
	config
}

// NewSubtopicConfidenceClient returns a client for the SubtopicConfidence from the given config.
func NewSubtopicConfidenceClient(c config) *SubtopicConfidenceClient {
	return &SubtopicConfidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtopicconfidence.Hooks(f(g(h())))`.
func (c *SubtopicConfidenceClient) Use(hooks ...Hook) {
	c.hooks.SubtopicConfidence = append(c.hooks.SubtopicConfidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtopicconfidence.Intercept(f(g(h())))`.
func (c *SubtopicConfidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubtopicConfidence = append(c.inters.SubtopicConfidence, interceptors...)
}

// Create returns a builder for creating a SubtopicConfidence entity.
func (c *SubtopicConfidenceClient) Create() *SubtopicConfidenceCreate {
	mutation := newSubtopicConfidenceMutation(c.config, OpCreate)
	return &SubtopicConfidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubtopicConfidence entities.
func (c *SubtopicConfidenceClient) CreateBulk(builders ...*SubtopicConfidenceCreate) *SubtopicConfidenceCreateBulk {
	return &SubtopicConfidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubtopicConfidenceClient) MapCreateBulk(slice any, setFunc func(*SubtopicConfidenceCreate, int)) *SubtopicConfidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubtopicConfidenceCreateBulk{err: fmt.Errorf("calling to SubtopicConfidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubtopicConfidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubtopicConfidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubtopicConfidence.
func (c *SubtopicConfidenceClient) Update() *SubtopicConfidenceUpdate {
	mutation := newSubtopicConfidenceMutation(c.config, OpUpdate)
	return &SubtopicConfidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubtopicConfidenceClient) UpdateOne(sc *SubtopicConfidence) *SubtopicConfidenceUpdateOne {
	mutation := newSubtopicConfidenceMutation(c.config, OpUpdateOne, withSubtopicConfidence(sc))
	return &SubtopicConfidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubtopicConfidenceClient) UpdateOneID(id int) *SubtopicConfidenceUpdateOne {
	mutation := newSubtopicConfidenceMutation(c.config, OpUpdateOne, withSubtopicConfidenceID(id))
	return &SubtopicConfidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubtopicConfidence.
func (c *SubtopicConfidenceClient) Delete() *SubtopicConfidenceDelete {
	mutation := newSubtopicConfidenceMutation(c.config, OpDelete)
	return &SubtopicConfidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubtopicConfidenceClient) DeleteOne(sc *SubtopicConfidence) *SubtopicConfidenceDeleteOne {
	return c.DeleteOneID(sc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubtopicConfidenceClient) DeleteOneID(id int) *SubtopicConfidenceDeleteOne {
	builder := c.Delete().Where(subtopicconfidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubtopicConfidenceDeleteOne{builder}
}

// Query returns a query builder for SubtopicConfidence.
func (c *SubtopicConfidenceClient) Query() *SubtopicConfidenceQuery {
	return &SubtopicConfidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubtopicConfidence},
		inters: c.Interceptors(),
	}
}

// Get returns a SubtopicConfidence entity by its id.
func (c *SubtopicConfidenceClient) Get(ctx context.Context, id int) (*SubtopicConfidence, error) {
	return c.Query().Where(subtopicconfidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubtopicConfidenceClient) GetX(ctx context.Context, id int) *SubtopicConfidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubtopicConfidenceClient) Hooks() []Hook {
	return c.hooks.SubtopicConfidence
}

// Interceptors returns the client interceptors.
func (c *SubtopicConfidenceClient) Interceptors() []Interceptor {
	return c.inters.SubtopicConfidence
}

func (c *SubtopicConfidenceClient) mutate(ctx context.Context, m *SubtopicConfidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubtopicConfidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubtopicConfidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubtopicConfidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubtopicConfidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubtopicConfidence mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(t *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(t))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id int) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(t *Task) *TaskDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id int) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id int) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id int) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskSubtopicClient is a client for the TaskSubtopic schema.
type TaskSubtopicClient struct {
	config
}

// NewTaskSubtopicClient returns a client for the TaskSubtopic from the given config.
func NewTaskSubtopicClient(c config) *TaskSubtopicClient {
	return &TaskSubtopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tasksubtopic.Hooks(f(g(h())))`.
func (c *TaskSubtopicClient) Use(hooks ...Hook) {
	c.hooks.TaskSubtopic = append(c.hooks.TaskSubtopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tasksubtopic.Intercept(f(g(h())))`.
func (c *TaskSubtopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskSubtopic = append(c.inters.TaskSubtopic, interceptors...)
}

// Create returns a builder for creating a TaskSubtopic entity.
func (c *TaskSubtopicClient) Create() *TaskSubtopicCreate {
	mutation := newTaskSubtopicMutation(c.config, OpCreate)
	return &TaskSubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskSubtopic entities.
func (c *TaskSubtopicClient) CreateBulk(builders ...*TaskSubtopicCreate) *TaskSubtopicCreateBulk {
	return &TaskSubtopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskSubtopicClient) MapCreateBulk(slice any, setFunc func(*TaskSubtopicCreate, int)) *TaskSubtopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskSubtopicCreateBulk{err: fmt.Errorf("calling to TaskSubtopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskSubtopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskSubtopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskSubtopic.
func (c *TaskSubtopicClient) Update() *TaskSubtopicUpdate {
	mutation := newTaskSubtopicMutation(c.config, OpUpdate)
	return &TaskSubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskSubtopicClient) UpdateOne(ts *TaskSubtopic) *TaskSubtopicUpdateOne {
	mutation := newTaskSubtopicMutation(c.config, OpUpdateOne, withTaskSubtopic(ts))
	return &TaskSubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskSubtopicClient) UpdateOneID(id int) *TaskSubtopicUpdateOne {
	mutation := newTaskSubtopicMutation(c.config, OpUpdateOne, withTaskSubtopicID(id))
	return &TaskSubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskSubtopic.
func (c *TaskSubtopicClient) Delete() *TaskSubtopicDelete {
	mutation := newTaskSubtopicMutation(c.config, OpDelete)
	return &TaskSubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskSubtopicClient) DeleteOne(ts *TaskSubtopic) *TaskSubtopicDeleteOne {
	return c.DeleteOneID(ts.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskSubtopicClient) DeleteOneID(id int) *TaskSubtopicDeleteOne {
	builder := c.Delete().Where(tasksubtopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskSubtopicDeleteOne{builder}
}

// Query returns a query builder for TaskSubtopic.
func (c *TaskSubtopicClient) Query() *TaskSubtopicQuery {
	return &TaskSubtopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskSubtopic},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskSubtopic entity by its id.
func (c *TaskSubtopicClient) Get(ctx context.Context, id int) (*TaskSubtopic, error) {
	return c.Query().Where(tasksubtopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskSubtopicClient) GetX(ctx context.Context, id int) *TaskSubtopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskSubtopicClient) Hooks() []Hook {
	return c.hooks.TaskSubtopic
}

// Interceptors returns the client interceptors.
func (c *TaskSubtopicClient) Interceptors() []Interceptor {
	return c.inters.TaskSubtopic
}

func (c *TaskSubtopicClient) mutate(ctx context.Context, m *TaskSubtopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskSubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskSubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskSubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskSubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskSubtopic mutation op: %q", m.Op())
	}
}

// TaskTypeClient is a client for the TaskType schema.
type TaskTypeClient struct {
	config
}

// NewTaskTypeClient returns a client for the TaskType from the given config.
func NewTaskTypeClient(c config) *TaskTypeClient {
	return &TaskTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tasktype.Hooks(f(g(h())))`.
func (c *TaskTypeClient) Use(hooks ...Hook) {
	c.hooks.TaskType = append(c.hooks.TaskType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tasktype.Intercept(f(g(h())))`.
func (c *TaskTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskType = append(c.inters.TaskType, interceptors...)
}

// Create returns a builder for creating a TaskType entity.
func (c *TaskTypeClient) Create() *TaskTypeCreate {
	mutation := newTaskTypeMutation(c.config, OpCreate)
	return &TaskTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskType entities.
func (c *TaskTypeClient) CreateBulk(builders ...*TaskTypeCreate) *TaskTypeCreateBulk {
	return &TaskTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskTypeClient) MapCreateBulk(slice any, setFunc func(*TaskTypeCreate, int)) *TaskTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskTypeCreateBulk{err: fmt.Errorf("calling to TaskTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskType.
func (c *TaskTypeClient) Update() *TaskTypeUpdate {
	mutation := newTaskTypeMutation(c.config, OpUpdate)
	return &TaskTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskTypeClient) UpdateOne(tt *TaskType) *TaskTypeUpdateOne {
	mutation := newTaskTypeMutation(c.config, OpUpdateOne, withTaskType(tt))
	return &TaskTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskTypeClient) UpdateOneID(id int) *TaskTypeUpdateOne {
	mutation := newTaskTypeMutation(c.config, OpUpdateOne, withTaskTypeID(id))
	return &TaskTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskType.
func (c *TaskTypeClient) Delete() *TaskTypeDelete {
	mutation := newTaskTypeMutation(c.config, OpDelete)
	return &TaskTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskTypeClient) DeleteOne(tt *TaskType) *TaskTypeDeleteOne {
	return c.DeleteOneID(tt.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskTypeClient) DeleteOneID(id int) *TaskTypeDeleteOne {
	builder := c.Delete().Where(tasktype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskTypeDeleteOne{builder}
}

// Query returns a query builder for TaskType.
func (c *TaskTypeClient) Query() *TaskTypeQuery {
	return &TaskTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskType},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskType entity by its id.
func (c *TaskTypeClient) Get(ctx context.Context, id int) (*TaskType, error) {
	return c.Query().Where(tasktype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskTypeClient) GetX(ctx context.Context, id int) *TaskType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskTypeClient) Hooks() []Hook {
	return c.hooks.TaskType
}

// Interceptors returns the client interceptors.
func (c *TaskTypeClient) Interceptors() []Interceptor {
	return c.inters.TaskType
}

func (c *TaskTypeClient) mutate(ctx context.Context, m *TaskTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskType mutation op: %q", m.Op())
	}
}

// TaskTypePreferenceClient is a client for the TaskTypePreference schema.
type TaskTypePreferenceClient struct {
	config
}

// NewTaskTypePreferenceClient returns a client for the TaskTypePreference from the given config.
func NewTaskTypePreferenceClient(c config) *TaskTypePreferenceClient {
	return &TaskTypePreferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tasktypepreference.Hooks(f(g(h())))`.
func (c *TaskTypePreferenceClient) Use(hooks ...Hook) {
	c.hooks.TaskTypePreference = append(c.hooks.TaskTypePreference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tasktypepreference.Intercept(f(g(h())))`.
func (c *TaskTypePreferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskTypePreference = append(c.inters.TaskTypePreference, interceptors...)
}

// Create returns a builder for creating a TaskTypePreference entity.
func (c *TaskTypePreferenceClient) Create() *TaskTypePreferenceCreate {
	mutation := newTaskTypePreferenceMutation(c.config, OpCreate)
	return &TaskTypePreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskTypePreference entities.
func (c *TaskTypePreferenceClient) CreateBulk(builders ...*TaskTypePreferenceCreate) *TaskTypePreferenceCreateBulk {
	return &TaskTypePreferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskTypePreferenceClient) MapCreateBulk(slice any, setFunc func(*TaskTypePreferenceCreate, int)) *TaskTypePreferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskTypePreferenceCreateBulk{err: fmt.Errorf("calling to TaskTypePreferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskTypePreferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskTypePreferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskTypePreference.
func (c *TaskTypePreferenceClient) Update() *TaskTypePreferenceUpdate {
	mutation := newTaskTypePreferenceMutation(c.config, OpUpdate)
	return &TaskTypePreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskTypePreferenceClient) UpdateOne(ttp *TaskTypePreference) *TaskTypePreferenceUpdateOne {
	mutation := newTaskTypePreferenceMutation(c.config, OpUpdateOne, withTaskTypePreference(ttp))
	return &TaskTypePreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskTypePreferenceClient) UpdateOneID(id int) *TaskTypePreferenceUpdateOne {
	mutation := newTaskTypePreferenceMutation(c.config, OpUpdateOne, withTaskTypePreferenceID(id))
	return &TaskTypePreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskTypePreference.
func (c *TaskTypePreferenceClient) Delete() *TaskTypePreferenceDelete {
	mutation := newTaskTypePreferenceMutation(c.config, OpDelete)
	return &TaskTypePreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskTypePreferenceClient) DeleteOne(ttp *TaskTypePreference) *TaskTypePreferenceDeleteOne {
	return c.DeleteOneID(ttp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskTypePreferenceClient) DeleteOneID(id int) *TaskTypePreferenceDeleteOne {
	builder := c.Delete().Where(tasktypepreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskTypePreferenceDeleteOne{builder}
}

// Query returns a query builder for TaskTypePreference.
func (c *TaskTypePreferenceClient) Query() *TaskTypePreferenceQuery {
	return &TaskTypePreferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskTypePreference},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskTypePreference entity by its id.
func (c *TaskTypePreferenceClient) Get(ctx context.Context, id int) (*TaskTypePreference, error) {
	return c.Query().Where(tasktypepreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskTypePreferenceClient) GetX(ctx context.Context, id int) *TaskTypePreference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskTypePreferenceClient) Hooks() []Hook {
	return c.hooks.TaskTypePreference
}

// Interceptors returns the client interceptors.
func (c *TaskTypePreferenceClient) Interceptors() []Interceptor {
	return c.inters.TaskTypePreference
}

func (c *TaskTypePreferenceClient) mutate(ctx context.Context, m *TaskTypePreferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskTypePreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskTypePreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskTypePreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskTypePreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskTypePreference mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(t *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(t))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id int) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(t *Topic) *TopicDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id int) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id int) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id int) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// TopicConfidenceClient is a client for the TopicConfidence schema.
type TopicConfidenceClient struct {
	config
}

// NewTopicConfidenceClient returns a client for the TopicConfidence from the given config.
func NewTopicConfidenceClient(c config) *TopicConfidenceClient {
	return &TopicConfidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicconfidence.Hooks(f(g(h())))`.
func (c *TopicConfidenceClient) Use(hooks ...Hook) {
	c.hooks.TopicConfidence = append(c.hooks.TopicConfidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicconfidence.Intercept(f(g(h())))`.
func (c *TopicConfidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicConfidence = append(c.inters.TopicConfidence, interceptors...)
}

// Create returns a builder for creating a TopicConfidence entity.
func (c *TopicConfidenceClient) Create() *TopicConfidenceCreate {
	mutation := newTopicConfidenceMutation(c.config, OpCreate)
	return &TopicConfidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicConfidence entities.
func (c *TopicConfidenceClient) CreateBulk(builders ...*TopicConfidenceCreate) *TopicConfidenceCreateBulk {
	return &TopicConfidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicConfidenceClient) MapCreateBulk(slice any, setFunc func(*TopicConfidenceCreate, int)) *TopicConfidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicConfidenceCreateBulk{err: fmt.Errorf("calling to TopicConfidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicConfidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicConfidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicConfidence.
func (c *TopicConfidenceClient) Update() *TopicConfidenceUpdate {
	mutation := newTopicConfidenceMutation(c.config, OpUpdate)
	return &TopicConfidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicConfidenceClient) UpdateOne(tc *TopicConfidence) *TopicConfidenceUpdateOne {
	mutation := newTopicConfidenceMutation(c.config, OpUpdateOne, withTopicConfidence(tc))
	return &TopicConfidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicConfidenceClient) UpdateOneID(id int) *TopicConfidenceUpdateOne {
	mutation := newTopicConfidenceMutation(c.config, OpUpdateOne, withTopicConfidenceID(id))
	return &TopicConfidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicConfidence.
func (c *TopicConfidenceClient) Delete() *TopicConfidenceDelete {
	mutation := newTopicConfidenceMutation(c.config, OpDelete)
	return &TopicConfidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicConfidenceClient) DeleteOne(tc *TopicConfidence) *TopicConfidenceDeleteOne {
	return c.DeleteOneID(tc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicConfidenceClient) DeleteOneID(id int) *TopicConfidenceDeleteOne {
	builder := c.Delete().Where(topicconfidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicConfidenceDeleteOne{builder}
}

// Query returns a query builder for TopicConfidence.
func (c *TopicConfidenceClient) Query() *TopicConfidenceQuery {
	return &TopicConfidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicConfidence},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicConfidence entity by its id.
func (c *TopicConfidenceClient) Get(ctx context.Context, id int) (*TopicConfidence, error) {
	return c.Query().Where(topicconfidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicConfidenceClient) GetX(ctx context.Context, id int) *TopicConfidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicConfidenceClient) Hooks() []Hook {
	return c.hooks.TopicConfidence
}

// Interceptors returns the client interceptors.
func (c *TopicConfidenceClient) Interceptors() []Interceptor {
	return c.inters.TopicConfidence
}

func (c *TopicConfidenceClient) mutate(ctx context.Context, m *TopicConfidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicConfidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicConfidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicConfidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicConfidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicConfidence mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Subject, SubjectPreference, Subtopic, SubtopicConfidence, Task, TaskSubtopic,
		TaskType, TaskTypePreference, Topic, TopicConfidence, User []ent.Hook
	}
	inters struct {
		Subject, SubjectPreference, Subtopic, SubtopicConfidence, Task, TaskSubtopic,
		TaskType, TaskTypePreference, Topic, TopicConfidence, User []ent.Interceptor
	}
)
