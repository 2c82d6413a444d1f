// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/padhai/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/padhai/ent/doubt"
	"github.com/abhisek/padhai/ent/llmrequestlog"
	"github.com/abhisek/padhai/ent/parameterset"
	"github.com/abhisek/padhai/ent/progressmark"
	"github.com/abhisek/padhai/ent/studyplan"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Doubt is the client for interacting with the Doubt builders.
	Doubt *DoubtClient
	// LLMRequestLog is the client for interacting with the LLMRequestLog builders.
	LLMRequestLog *LLMRequestLogClient
	// ParameterSet is the client for interacting with the ParameterSet builders.
	ParameterSet *ParameterSetClient
	// ProgressMark is the client for interacting with the ProgressMark builders.
	ProgressMark *ProgressMarkClient
	// StudyPlan is the client for interacting with the StudyPlan builders.
	StudyPlan *StudyPlanClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Doubt = NewDoubtClient(c.config)
	c.LLMRequestLog = NewLLMRequestLogClient(c.config)
	c.ParameterSet = NewParameterSetClient(c.config)
	c.ProgressMark = NewProgressMarkClient(c.config)
	c.StudyPlan = NewStudyPlanClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		Doubt:         NewDoubtClient(cfg),
		LLMRequestLog: NewLLMRequestLogClient(cfg),
		ParameterSet:  NewParameterSetClient(cfg),
		ProgressMark:  NewProgressMarkClient(cfg),
		StudyPlan:     NewStudyPlanClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		Doubt:         NewDoubtClient(cfg),
		LLMRequestLog: NewLLMRequestLogClient(cfg),
		ParameterSet:  NewParameterSetClient(cfg),
		ProgressMark:  NewProgressMarkClient(cfg),
		StudyPlan:     NewStudyPlanClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Doubt.
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
	c.Doubt.Use(hooks...)
	c.LLMRequestLog.Use(hooks...)
	c.ParameterSet.Use(hooks...)
	c.ProgressMark.Use(hooks...)
	c.StudyPlan.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Doubt.Intercept(interceptors...)
	c.LLMRequestLog.Intercept(interceptors...)
	c.ParameterSet.Intercept(interceptors...)
	c.ProgressMark.Intercept(interceptors...)
	c.StudyPlan.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DoubtMutation:
		return c.Doubt.mutate(ctx, m)
	case *LLMRequestLogMutation:
		return c.LLMRequestLog.mutate(ctx, m)
	case *ParameterSetMutation:
		return c.ParameterSet.mutate(ctx, m)
	case *ProgressMarkMutation:
		return c.ProgressMark.mutate(ctx, m)
	case *StudyPlanMutation:
		return c.StudyPlan.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DoubtClient is a client for the Doubt schema.
type DoubtClient struct {
	config
}

// NewDoubtClient returns a client for the Doubt from the given config.
func NewDoubtClient(c config) *DoubtClient {
	return &DoubtClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doubt.Hooks(f(g(h())))`.
func (c *DoubtClient) Use(hooks ...Hook) {
	c.hooks.Doubt = append(c.hooks.Doubt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doubt.Intercept(f(g(h())))`.
func (c *DoubtClient) Intercept(interceptors ...Interceptor) {
	c.inters.Doubt = append(c.inters.Doubt, interceptors...)
}

// Create returns a builder for creating a Doubt entity.
func (c *DoubtClient) Create() *DoubtCreate {
	mutation := newDoubtMutation(c.config, OpCreate)
	return &DoubtCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Doubt entities.
func (c *DoubtClient) CreateBulk(builders ...*DoubtCreate) *DoubtCreateBulk {
	return &DoubtCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoubtClient) MapCreateBulk(slice any, setFunc func(*DoubtCreate, int)) *DoubtCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoubtCreateBulk{err: fmt.Errorf("calling to DoubtClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoubtCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoubtCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Doubt.
func (c *DoubtClient) Update() *DoubtUpdate {
	mutation := newDoubtMutation(c.config, OpUpdate)
	return &DoubtUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoubtClient) UpdateOne(_m *Doubt) *DoubtUpdateOne {
	mutation := newDoubtMutation(c.config, OpUpdateOne, withDoubt(_m))
	return &DoubtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoubtClient) UpdateOneID(id int) *DoubtUpdateOne {
	mutation := newDoubtMutation(c.config, OpUpdateOne, withDoubtID(id))
	return &DoubtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Doubt.
func (c *DoubtClient) Delete() *DoubtDelete {
	mutation := newDoubtMutation(c.config, OpDelete)
	return &DoubtDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoubtClient) DeleteOne(_m *Doubt) *DoubtDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoubtClient) DeleteOneID(id int) *DoubtDeleteOne {
	builder := c.Delete().Where(doubt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoubtDeleteOne{builder}
}

// Query returns a query builder for Doubt.
func (c *DoubtClient) Query() *DoubtQuery {
	return &DoubtQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoubt},
		inters: c.Interceptors(),
	}
}

// Get returns a Doubt entity by its id.
func (c *DoubtClient) Get(ctx context.Context, id int) (*Doubt, error) {
	return c.Query().Where(doubt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoubtClient) GetX(ctx context.Context, id int) *Doubt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoubtClient) Hooks() []Hook {
	return c.hooks.Doubt
}

// Interceptors returns the client interceptors.
func (c *DoubtClient) Interceptors() []Interceptor {
	return c.inters.Doubt
}

func (c *DoubtClient) mutate(ctx context.Context, m *DoubtMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoubtCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoubtUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoubtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoubtDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Doubt mutation op: %q", m.Op())
	}
}

// LLMRequestLogClient is a client for the LLMRequestLog schema.
type LLMRequestLogClient struct {
	config
}

// NewLLMRequestLogClient returns a client for the LLMRequestLog from the given config.
func NewLLMRequestLogClient(c config) *LLMRequestLogClient {
	return &LLMRequestLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestlog.Hooks(f(g(h())))`.
func (c *LLMRequestLogClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestLog = append(c.hooks.LLMRequestLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestlog.Intercept(f(g(h())))`.
func (c *LLMRequestLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestLog = append(c.inters.LLMRequestLog, interceptors...)
}

// Create returns a builder for creating a LLMRequestLog entity.
func (c *LLMRequestLogClient) Create() *LLMRequestLogCreate {
	mutation := newLLMRequestLogMutation(c.config, OpCreate)
	return &LLMRequestLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestLog entities.
func (c *LLMRequestLogClient) CreateBulk(builders ...*LLMRequestLogCreate) *LLMRequestLogCreateBulk {
	return &LLMRequestLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestLogClient) MapCreateBulk(slice any, setFunc func(*LLMRequestLogCreate, int)) *LLMRequestLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestLogCreateBulk{err: fmt.Errorf("calling to LLMRequestLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestLog.
func (c *LLMRequestLogClient) Update() *LLMRequestLogUpdate {
	mutation := newLLMRequestLogMutation(c.config, OpUpdate)
	return &LLMRequestLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestLogClient) UpdateOne(_m *LLMRequestLog) *LLMRequestLogUpdateOne {
	mutation := newLLMRequestLogMutation(c.config, OpUpdateOne, withLLMRequestLog(_m))
	return &LLMRequestLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestLogClient) UpdateOneID(id int) *LLMRequestLogUpdateOne {
	mutation := newLLMRequestLogMutation(c.config, OpUpdateOne, withLLMRequestLogID(id))
	return &LLMRequestLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestLog.
func (c *LLMRequestLogClient) Delete() *LLMRequestLogDelete {
	mutation := newLLMRequestLogMutation(c.config, OpDelete)
	return &LLMRequestLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestLogClient) DeleteOne(_m *LLMRequestLog) *LLMRequestLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestLogClient) DeleteOneID(id int) *LLMRequestLogDeleteOne {
	builder := c.Delete().Where(llmrequestlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestLogDeleteOne{builder}
}

// Query returns a query builder for LLMRequestLog.
func (c *LLMRequestLogClient) Query() *LLMRequestLogQuery {
	return &LLMRequestLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestLog},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestLog entity by its id.
func (c *LLMRequestLogClient) Get(ctx context.Context, id int) (*LLMRequestLog, error) {
	return c.Query().Where(llmrequestlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestLogClient) GetX(ctx context.Context, id int) *LLMRequestLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestLogClient) Hooks() []Hook {
	return c.hooks.LLMRequestLog
}

// Interceptors returns the client interceptors.
func (c *LLMRequestLogClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestLog
}

func (c *LLMRequestLogClient) mutate(ctx context.Context, m *LLMRequestLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestLog mutation op: %q", m.Op())
	}
}

// ParameterSetClient is a client for the ParameterSet schema.
type ParameterSetClient struct {
	config
}

// NewParameterSetClient returns a client for the ParameterSet from the given config.
func NewParameterSetClient(c config) *ParameterSetClient {
	return &ParameterSetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parameterset.Hooks(f(g(h())))`.
func (c *ParameterSetClient) Use(hooks ...Hook) {
	c.hooks.ParameterSet = append(c.hooks.ParameterSet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parameterset.Intercept(f(g(h())))`.
func (c *ParameterSetClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParameterSet = append(c.inters.ParameterSet, interceptors...)
}

// Create returns a builder for creating a ParameterSet entity.
func (c *ParameterSetClient) Create() *ParameterSetCreate {
	mutation := newParameterSetMutation(c.config, OpCreate)
	return &ParameterSetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParameterSet entities.
func (c *ParameterSetClient) CreateBulk(builders ...*ParameterSetCreate) *ParameterSetCreateBulk {
	return &ParameterSetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParameterSetClient) MapCreateBulk(slice any, setFunc func(*ParameterSetCreate, int)) *ParameterSetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParameterSetCreateBulk{err: fmt.Errorf("calling to ParameterSetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParameterSetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParameterSetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParameterSet.
func (c *ParameterSetClient) Update() *ParameterSetUpdate {
	mutation := newParameterSetMutation(c.config, OpUpdate)
	return &ParameterSetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParameterSetClient) UpdateOne(_m *ParameterSet) *ParameterSetUpdateOne {
	mutation := newParameterSetMutation(c.config, OpUpdateOne, withParameterSet(_m))
	return &ParameterSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParameterSetClient) UpdateOneID(id int) *ParameterSetUpdateOne {
	mutation := newParameterSetMutation(c.config, OpUpdateOne, withParameterSetID(id))
	return &ParameterSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParameterSet.
func (c *ParameterSetClient) Delete() *ParameterSetDelete {
	mutation := newParameterSetMutation(c.config, OpDelete)
	return &ParameterSetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParameterSetClient) DeleteOne(_m *ParameterSet) *ParameterSetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParameterSetClient) DeleteOneID(id int) *ParameterSetDeleteOne {
	builder := c.Delete().Where(parameterset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParameterSetDeleteOne{builder}
}

// Query returns a query builder for ParameterSet.
func (c *ParameterSetClient) Query() *ParameterSetQuery {
	return &ParameterSetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParameterSet},
		inters: c.Interceptors(),
	}
}

// Get returns a ParameterSet entity by its id.
func (c *ParameterSetClient) Get(ctx context.Context, id int) (*ParameterSet, error) {
	return c.Query().Where(parameterset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParameterSetClient) GetX(ctx context.Context, id int) *ParameterSet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ParameterSetClient) Hooks() []Hook {
	return c.hooks.ParameterSet
}

// Interceptors returns the client interceptors.
func (c *ParameterSetClient) Interceptors() []Interceptor {
	return c.inters.ParameterSet
}

func (c *ParameterSetClient) mutate(ctx context.Context, m *ParameterSetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParameterSetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParameterSetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParameterSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParameterSetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParameterSet mutation op: %q", m.Op())
	}
}

// ProgressMarkClient is a client for the ProgressMark schema.
type ProgressMarkClient struct {
	config
}

// NewProgressMarkClient returns a client for the ProgressMark from the given config.
func NewProgressMarkClient(c config) *ProgressMarkClient {
	return &ProgressMarkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressmark.Hooks(f(g(h())))`.
func (c *ProgressMarkClient) Use(hooks ...Hook) {
	c.hooks.ProgressMark = append(c.hooks.ProgressMark, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressmark.Intercept(f(g(h())))`.
func (c *ProgressMarkClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressMark = append(c.inters.ProgressMark, interceptors...)
}

// Create returns a builder for creating a ProgressMark entity.
func (c *ProgressMarkClient) Create() *ProgressMarkCreate {
	mutation := newProgressMarkMutation(c.config, OpCreate)
	return &ProgressMarkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressMark entities.
func (c *ProgressMarkClient) CreateBulk(builders ...*ProgressMarkCreate) *ProgressMarkCreateBulk {
	return &ProgressMarkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressMarkClient) MapCreateBulk(slice any, setFunc func(*ProgressMarkCreate, int)) *ProgressMarkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressMarkCreateBulk{err: fmt.Errorf("calling to ProgressMarkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressMarkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressMarkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressMark.
func (c *ProgressMarkClient) Update() *ProgressMarkUpdate {
	mutation := newProgressMarkMutation(c.config, OpUpdate)
	return &ProgressMarkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressMarkClient) UpdateOne(_m *ProgressMark) *ProgressMarkUpdateOne {
	mutation := newProgressMarkMutation(c.config, OpUpdateOne, withProgressMark(_m))
	return &ProgressMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressMarkClient) UpdateOneID(id int) *ProgressMarkUpdateOne {
	mutation := newProgressMarkMutation(c.config, OpUpdateOne, withProgressMarkID(id))
	return &ProgressMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressMark.
func (c *ProgressMarkClient) Delete() *ProgressMarkDelete {
	mutation := newProgressMarkMutation(c.config, OpDelete)
	return &ProgressMarkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressMarkClient) DeleteOne(_m *ProgressMark) *ProgressMarkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressMarkClient) DeleteOneID(id int) *ProgressMarkDeleteOne {
	builder := c.Delete().Where(progressmark.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressMarkDeleteOne{builder}
}

// Query returns a query builder for ProgressMark.
func (c *ProgressMarkClient) Query() *ProgressMarkQuery {
	return &ProgressMarkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressMark},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressMark entity by its id.
func (c *ProgressMarkClient) Get(ctx context.Context, id int) (*ProgressMark, error) {
	return c.Query().Where(progressmark.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressMarkClient) GetX(ctx context.Context, id int) *ProgressMark {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressMarkClient) Hooks() []Hook {
	return c.hooks.ProgressMark
}

// Interceptors returns the client interceptors.
func (c *ProgressMarkClient) Interceptors() []Interceptor {
	return c.inters.ProgressMark
}

func (c *ProgressMarkClient) mutate(ctx context.Context, m *ProgressMarkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressMarkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressMarkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressMarkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressMark mutation op: %q", m.Op())
	}
}

// StudyPlanClient is a client for the StudyPlan schema.
type StudyPlanClient struct {
	config
}

// NewStudyPlanClient returns a client for the StudyPlan from the given config.
func NewStudyPlanClient(c config) *StudyPlanClient {
	return &StudyPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studyplan.Hooks(f(g(h())))`.
func (c *StudyPlanClient) Use(hooks ...Hook) {
	c.hooks.StudyPlan = append(c.hooks.StudyPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studyplan.Intercept(f(g(h())))`.
func (c *StudyPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyPlan = append(c.inters.StudyPlan, interceptors...)
}

// Create returns a builder for creating a StudyPlan entity.
func (c *StudyPlanClient) Create() *StudyPlanCreate {
	mutation := newStudyPlanMutation(c.config, OpCreate)
	return &StudyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyPlan entities.
func (c *StudyPlanClient) CreateBulk(builders ...*StudyPlanCreate) *StudyPlanCreateBulk {
	return &StudyPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyPlanClient) MapCreateBulk(slice any, setFunc func(*StudyPlanCreate, int)) *StudyPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyPlanCreateBulk{err: fmt.Errorf("calling to StudyPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyPlan.
func (c *StudyPlanClient) Update() *StudyPlanUpdate {
	mutation := newStudyPlanMutation(c.config, OpUpdate)
	return &StudyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyPlanClient) UpdateOne(_m *StudyPlan) *StudyPlanUpdateOne {
	mutation := newStudyPlanMutation(c.config, OpUpdateOne, withStudyPlan(_m))
	return &StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyPlanClient) UpdateOneID(id int) *StudyPlanUpdateOne {
	mutation := newStudyPlanMutation(c.config, OpUpdateOne, withStudyPlanID(id))
	return &StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyPlan.
func (c *StudyPlanClient) Delete() *StudyPlanDelete {
	mutation := newStudyPlanMutation(c.config, OpDelete)
	return &StudyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyPlanClient) DeleteOne(_m *StudyPlan) *StudyPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyPlanClient) DeleteOneID(id int) *StudyPlanDeleteOne {
	builder := c.Delete().Where(studyplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyPlanDeleteOne{builder}
}

// Query returns a query builder for StudyPlan.
func (c *StudyPlanClient) Query() *StudyPlanQuery {
	return &StudyPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyPlan entity by its id.
func (c *StudyPlanClient) Get(ctx context.Context, id int) (*StudyPlan, error) {
	return c.Query().Where(studyplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyPlanClient) GetX(ctx context.Context, id int) *StudyPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyPlanClient) Hooks() []Hook {
	return c.hooks.StudyPlan
}

// Interceptors returns the client interceptors.
func (c *StudyPlanClient) Interceptors() []Interceptor {
	return c.inters.StudyPlan
}

func (c *StudyPlanClient) mutate(ctx context.Context, m *StudyPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyPlan mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Doubt, LLMRequestLog, ParameterSet, ProgressMark, StudyPlan []ent.Hook
	}
	inters struct {
		Doubt, LLMRequestLog, ParameterSet, ProgressMark, StudyPlan []ent.Interceptor
	}
)
