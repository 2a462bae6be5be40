// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/scoreprep/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/llmrequestevent"
	"github.com/abhisek/scoreprep/ent/questionset"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GeneratedQuestion is the client for interacting with the GeneratedQuestion builders.
	GeneratedQuestion *GeneratedQuestionClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuestionSet is the client for interacting with the QuestionSet builders.
	QuestionSet *QuestionSetClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GeneratedQuestion = NewGeneratedQuestionClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuestionSet = NewQuestionSetClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		GeneratedQuestion: NewGeneratedQuestionClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		QuestionSet:       NewQuestionSetClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		GeneratedQuestion: NewGeneratedQuestionClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		QuestionSet:       NewQuestionSetClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GeneratedQuestion.
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
	c.GeneratedQuestion.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.QuestionSet.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GeneratedQuestion.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.QuestionSet.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GeneratedQuestionMutation:
		return c.GeneratedQuestion.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuestionSetMutation:
		return c.QuestionSet.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GeneratedQuestionClient is a client for the GeneratedQuestion schema.
type GeneratedQuestionClient struct {
	config
}

// NewGeneratedQuestionClient returns a client for the GeneratedQuestion from the given config.
func NewGeneratedQuestionClient(c config) *GeneratedQuestionClient {
	return &GeneratedQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generatedquestion.Hooks(f(g(h())))`.
func (c *GeneratedQuestionClient) Use(hooks ...Hook) {
	c.hooks.GeneratedQuestion = append(c.hooks.GeneratedQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generatedquestion.Intercept(f(g(h())))`.
func (c *GeneratedQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneratedQuestion = append(c.inters.GeneratedQuestion, interceptors...)
}

// Create returns a builder for creating a GeneratedQuestion entity.
func (c *GeneratedQuestionClient) Create() *GeneratedQuestionCreate {
	mutation := newGeneratedQuestionMutation(c.config, OpCreate)
	return &GeneratedQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneratedQuestion entities.
func (c *GeneratedQuestionClient) CreateBulk(builders ...*GeneratedQuestionCreate) *GeneratedQuestionCreateBulk {
	return &GeneratedQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneratedQuestionClient) MapCreateBulk(slice any, setFunc func(*GeneratedQuestionCreate, int)) *GeneratedQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneratedQuestionCreateBulk{err: fmt.Errorf("calling to GeneratedQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneratedQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneratedQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneratedQuestion.
func (c *GeneratedQuestionClient) Update() *GeneratedQuestionUpdate {
	mutation := newGeneratedQuestionMutation(c.config, OpUpdate)
	return &GeneratedQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneratedQuestionClient) UpdateOne(_m *GeneratedQuestion) *GeneratedQuestionUpdateOne {
	mutation := newGeneratedQuestionMutation(c.config, OpUpdateOne, withGeneratedQuestion(_m))
	return &GeneratedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneratedQuestionClient) UpdateOneID(id int) *GeneratedQuestionUpdateOne {
	mutation := newGeneratedQuestionMutation(c.config, OpUpdateOne, withGeneratedQuestionID(id))
	return &GeneratedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneratedQuestion.
func (c *GeneratedQuestionClient) Delete() *GeneratedQuestionDelete {
	mutation := newGeneratedQuestionMutation(c.config, OpDelete)
	return &GeneratedQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneratedQuestionClient) DeleteOne(_m *GeneratedQuestion) *GeneratedQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneratedQuestionClient) DeleteOneID(id int) *GeneratedQuestionDeleteOne {
	builder := c.Delete().Where(generatedquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneratedQuestionDeleteOne{builder}
}

// Query returns a query builder for GeneratedQuestion.
func (c *GeneratedQuestionClient) Query() *GeneratedQuestionQuery {
	return &GeneratedQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneratedQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneratedQuestion entity by its id.
func (c *GeneratedQuestionClient) Get(ctx context.Context, id int) (*GeneratedQuestion, error) {
	return c.Query().Where(generatedquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneratedQuestionClient) GetX(ctx context.Context, id int) *GeneratedQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestionSet queries the question_set edge of a GeneratedQuestion.
func (c *GeneratedQuestionClient) QueryQuestionSet(_m *GeneratedQuestion) *QuestionSetQuery {
	query := (&QuestionSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedquestion.Table, generatedquestion.FieldID, id),
			sqlgraph.To(questionset.Table, questionset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedquestion.QuestionSetTable, generatedquestion.QuestionSetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GeneratedQuestionClient) Hooks() []Hook {
	return c.hooks.GeneratedQuestion
}

// Interceptors returns the client interceptors.
func (c *GeneratedQuestionClient) Interceptors() []Interceptor {
	return c.inters.GeneratedQuestion
}

func (c *GeneratedQuestionClient) mutate(ctx context.Context, m *GeneratedQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneratedQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneratedQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneratedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneratedQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneratedQuestion mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuestionSetClient is a client for the QuestionSet schema.
type QuestionSetClient struct {
	config
}

// NewQuestionSetClient returns a client for the QuestionSet from the given config.
func NewQuestionSetClient(c config) *QuestionSetClient {
	return &QuestionSetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionset.Hooks(f(g(h())))`.
func (c *QuestionSetClient) Use(hooks ...Hook) {
	c.hooks.QuestionSet = append(c.hooks.QuestionSet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionset.Intercept(f(g(h())))`.
func (c *QuestionSetClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionSet = append(c.inters.QuestionSet, interceptors...)
}

// Create returns a builder for creating a QuestionSet entity.
func (c *QuestionSetClient) Create() *QuestionSetCreate {
	mutation := newQuestionSetMutation(c.config, OpCreate)
	return &QuestionSetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionSet entities.
func (c *QuestionSetClient) CreateBulk(builders ...*QuestionSetCreate) *QuestionSetCreateBulk {
	return &QuestionSetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionSetClient) MapCreateBulk(slice any, setFunc func(*QuestionSetCreate, int)) *QuestionSetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionSetCreateBulk{err: fmt.Errorf("calling to QuestionSetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionSetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionSetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionSet.
func (c *QuestionSetClient) Update() *QuestionSetUpdate {
	mutation := newQuestionSetMutation(c.config, OpUpdate)
	return &QuestionSetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionSetClient) UpdateOne(_m *QuestionSet) *QuestionSetUpdateOne {
	mutation := newQuestionSetMutation(c.config, OpUpdateOne, withQuestionSet(_m))
	return &QuestionSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionSetClient) UpdateOneID(id string) *QuestionSetUpdateOne {
	mutation := newQuestionSetMutation(c.config, OpUpdateOne, withQuestionSetID(id))
	return &QuestionSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionSet.
func (c *QuestionSetClient) Delete() *QuestionSetDelete {
	mutation := newQuestionSetMutation(c.config, OpDelete)
	return &QuestionSetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionSetClient) DeleteOne(_m *QuestionSet) *QuestionSetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionSetClient) DeleteOneID(id string) *QuestionSetDeleteOne {
	builder := c.Delete().Where(questionset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionSetDeleteOne{builder}
}

// Query returns a query builder for QuestionSet.
func (c *QuestionSetClient) Query() *QuestionSetQuery {
	return &QuestionSetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionSet},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionSet entity by its id.
func (c *QuestionSetClient) Get(ctx context.Context, id string) (*QuestionSet, error) {
	return c.Query().Where(questionset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionSetClient) GetX(ctx context.Context, id string) *QuestionSet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestions queries the questions edge of a QuestionSet.
func (c *QuestionSetClient) QueryQuestions(_m *QuestionSet) *GeneratedQuestionQuery {
	query := (&GeneratedQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionset.Table, questionset.FieldID, id),
			sqlgraph.To(generatedquestion.Table, generatedquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionset.QuestionsTable, questionset.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionSetClient) Hooks() []Hook {
	return c.hooks.QuestionSet
}

// Interceptors returns the client interceptors.
func (c *QuestionSetClient) Interceptors() []Interceptor {
	return c.inters.QuestionSet
}

func (c *QuestionSetClient) mutate(ctx context.Context, m *QuestionSetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionSetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionSetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionSetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionSet mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GeneratedQuestion, LLMRequestEvent, QuestionSet []ent.Hook
	}
	inters struct {
		GeneratedQuestion, LLMRequestEvent, QuestionSet []ent.Interceptor
	}
)
