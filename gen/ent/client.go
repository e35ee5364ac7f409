// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lacriee/prices-tracker/gen/ent/importjob"
	"github.com/lacriee/prices-tracker/gen/ent/pricerecord"
	"github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ImportJob is the client for interacting with the ImportJob builders.
	ImportJob *ImportJobClient
	// PriceRecord is the client for interacting with the PriceRecord builders.
	PriceRecord *PriceRecordClient
	// SourceFile is the client for interacting with the SourceFile builders.
	SourceFile *SourceFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ImportJob = NewImportJobClient(c.config)
	c.PriceRecord = NewPriceRecordClient(c.config)
	c.SourceFile = NewSourceFileClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		ImportJob:   NewImportJobClient(cfg),
		PriceRecord: NewPriceRecordClient(cfg),
		SourceFile:  NewSourceFileClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		ImportJob:   NewImportJobClient(cfg),
		PriceRecord: NewPriceRecordClient(cfg),
		SourceFile:  NewSourceFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ImportJob.
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
	c.ImportJob.Use(hooks...)
	c.PriceRecord.Use(hooks...)
	c.SourceFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ImportJob.Intercept(interceptors...)
	c.PriceRecord.Intercept(interceptors...)
	c.SourceFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ImportJobMutation:
		return c.ImportJob.mutate(ctx, m)
	case *PriceRecordMutation:
		return c.PriceRecord.mutate(ctx, m)
	case *SourceFileMutation:
		return c.SourceFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ImportJobClient is a client for the ImportJob schema.
type ImportJobClient struct {
	config
}

// NewImportJobClient returns a client for the ImportJob from the given config.
func NewImportJobClient(c config) *ImportJobClient {
	return &ImportJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importjob.Hooks(f(g(h())))`.
func (c *ImportJobClient) Use(hooks ...Hook) {
	c.hooks.ImportJob = append(c.hooks.ImportJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importjob.Intercept(f(g(h())))`.
func (c *ImportJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportJob = append(c.inters.ImportJob, interceptors...)
}

// Create returns a builder for creating a ImportJob entity.
func (c *ImportJobClient) Create() *ImportJobCreate {
	mutation := newImportJobMutation(c.config, OpCreate)
	return &ImportJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportJob entities.
func (c *ImportJobClient) CreateBulk(builders ...*ImportJobCreate) *ImportJobCreateBulk {
	return &ImportJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportJobClient) MapCreateBulk(slice any, setFunc func(*ImportJobCreate, int)) *ImportJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportJobCreateBulk{err: fmt.Errorf("calling to ImportJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportJob.
func (c *ImportJobClient) Update() *ImportJobUpdate {
	mutation := newImportJobMutation(c.config, OpUpdate)
	return &ImportJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportJobClient) UpdateOne(_m *ImportJob) *ImportJobUpdateOne {
	mutation := newImportJobMutation(c.config, OpUpdateOne, withImportJob(_m))
	return &ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportJobClient) UpdateOneID(id uuid.UUID) *ImportJobUpdateOne {
	mutation := newImportJobMutation(c.config, OpUpdateOne, withImportJobID(id))
	return &ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportJob.
func (c *ImportJobClient) Delete() *ImportJobDelete {
	mutation := newImportJobMutation(c.config, OpDelete)
	return &ImportJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportJobClient) DeleteOne(_m *ImportJob) *ImportJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportJobClient) DeleteOneID(id uuid.UUID) *ImportJobDeleteOne {
	builder := c.Delete().Where(importjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportJobDeleteOne{builder}
}

// Query returns a query builder for ImportJob.
func (c *ImportJobClient) Query() *ImportJobQuery {
	return &ImportJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportJob entity by its id.
func (c *ImportJobClient) Get(ctx context.Context, id uuid.UUID) (*ImportJob, error) {
	return c.Query().Where(importjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportJobClient) GetX(ctx context.Context, id uuid.UUID) *ImportJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ImportJob.
func (c *ImportJobClient) QueryFile(_m *ImportJob) *SourceFileQuery {
	query := (&SourceFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(importjob.Table, importjob.FieldID, id),
			sqlgraph.To(sourcefile.Table, sourcefile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, importjob.FileTable, importjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecords queries the records edge of a ImportJob.
func (c *ImportJobClient) QueryRecords(_m *ImportJob) *PriceRecordQuery {
	query := (&PriceRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(importjob.Table, importjob.FieldID, id),
			sqlgraph.To(pricerecord.Table, pricerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, importjob.RecordsTable, importjob.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ImportJobClient) Hooks() []Hook {
	return c.hooks.ImportJob
}

// Interceptors returns the client interceptors.
func (c *ImportJobClient) Interceptors() []Interceptor {
	return c.inters.ImportJob
}

func (c *ImportJobClient) mutate(ctx context.Context, m *ImportJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportJob mutation op: %q", m.Op())
	}
}

// PriceRecordClient is a client for the PriceRecord schema.
type PriceRecordClient struct {
	config
}

// NewPriceRecordClient returns a client for the PriceRecord from the given config.
func NewPriceRecordClient(c config) *PriceRecordClient {
	return &PriceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pricerecord.Hooks(f(g(h())))`.
func (c *PriceRecordClient) Use(hooks ...Hook) {
	c.hooks.PriceRecord = append(c.hooks.PriceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pricerecord.Intercept(f(g(h())))`.
func (c *PriceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PriceRecord = append(c.inters.PriceRecord, interceptors...)
}

// Create returns a builder for creating a PriceRecord entity.
func (c *PriceRecordClient) Create() *PriceRecordCreate {
	mutation := newPriceRecordMutation(c.config, OpCreate)
	return &PriceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PriceRecord entities.
func (c *PriceRecordClient) CreateBulk(builders ...*PriceRecordCreate) *PriceRecordCreateBulk {
	return &PriceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PriceRecordClient) MapCreateBulk(slice any, setFunc func(*PriceRecordCreate, int)) *PriceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PriceRecordCreateBulk{err: fmt.Errorf("calling to PriceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PriceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PriceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PriceRecord.
func (c *PriceRecordClient) Update() *PriceRecordUpdate {
	mutation := newPriceRecordMutation(c.config, OpUpdate)
	return &PriceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PriceRecordClient) UpdateOne(_m *PriceRecord) *PriceRecordUpdateOne {
	mutation := newPriceRecordMutation(c.config, OpUpdateOne, withPriceRecord(_m))
	return &PriceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PriceRecordClient) UpdateOneID(id uuid.UUID) *PriceRecordUpdateOne {
	mutation := newPriceRecordMutation(c.config, OpUpdateOne, withPriceRecordID(id))
	return &PriceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PriceRecord.
func (c *PriceRecordClient) Delete() *PriceRecordDelete {
	mutation := newPriceRecordMutation(c.config, OpDelete)
	return &PriceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PriceRecordClient) DeleteOne(_m *PriceRecord) *PriceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PriceRecordClient) DeleteOneID(id uuid.UUID) *PriceRecordDeleteOne {
	builder := c.Delete().Where(pricerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PriceRecordDeleteOne{builder}
}

// Query returns a query builder for PriceRecord.
func (c *PriceRecordClient) Query() *PriceRecordQuery {
	return &PriceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePriceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PriceRecord entity by its id.
func (c *PriceRecordClient) Get(ctx context.Context, id uuid.UUID) (*PriceRecord, error) {
	return c.Query().Where(pricerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PriceRecordClient) GetX(ctx context.Context, id uuid.UUID) *PriceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a PriceRecord.
func (c *PriceRecordClient) QueryJob(_m *PriceRecord) *ImportJobQuery {
	query := (&ImportJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pricerecord.Table, pricerecord.FieldID, id),
			sqlgraph.To(importjob.Table, importjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pricerecord.JobTable, pricerecord.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PriceRecordClient) Hooks() []Hook {
	return c.hooks.PriceRecord
}

// Interceptors returns the client interceptors.
func (c *PriceRecordClient) Interceptors() []Interceptor {
	return c.inters.PriceRecord
}

func (c *PriceRecordClient) mutate(ctx context.Context, m *PriceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PriceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PriceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PriceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PriceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PriceRecord mutation op: %q", m.Op())
	}
}

// SourceFileClient is a client for the SourceFile schema.
type SourceFileClient struct {
	config
}

// NewSourceFileClient returns a client for the SourceFile from the given config.
func NewSourceFileClient(c config) *SourceFileClient {
	return &SourceFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcefile.Hooks(f(g(h())))`.
func (c *SourceFileClient) Use(hooks ...Hook) {
	c.hooks.SourceFile = append(c.hooks.SourceFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcefile.Intercept(f(g(h())))`.
func (c *SourceFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceFile = append(c.inters.SourceFile, interceptors...)
}

// Create returns a builder for creating a SourceFile entity.
func (c *SourceFileClient) Create() *SourceFileCreate {
	mutation := newSourceFileMutation(c.config, OpCreate)
	return &SourceFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceFile entities.
func (c *SourceFileClient) CreateBulk(builders ...*SourceFileCreate) *SourceFileCreateBulk {
	return &SourceFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceFileClient) MapCreateBulk(slice any, setFunc func(*SourceFileCreate, int)) *SourceFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceFileCreateBulk{err: fmt.Errorf("calling to SourceFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceFile.
func (c *SourceFileClient) Update() *SourceFileUpdate {
	mutation := newSourceFileMutation(c.config, OpUpdate)
	return &SourceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceFileClient) UpdateOne(_m *SourceFile) *SourceFileUpdateOne {
	mutation := newSourceFileMutation(c.config, OpUpdateOne, withSourceFile(_m))
	return &SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceFileClient) UpdateOneID(id uuid.UUID) *SourceFileUpdateOne {
	mutation := newSourceFileMutation(c.config, OpUpdateOne, withSourceFileID(id))
	return &SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceFile.
func (c *SourceFileClient) Delete() *SourceFileDelete {
	mutation := newSourceFileMutation(c.config, OpDelete)
	return &SourceFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceFileClient) DeleteOne(_m *SourceFile) *SourceFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceFileClient) DeleteOneID(id uuid.UUID) *SourceFileDeleteOne {
	builder := c.Delete().Where(sourcefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceFileDeleteOne{builder}
}

// Query returns a query builder for SourceFile.
func (c *SourceFileClient) Query() *SourceFileQuery {
	return &SourceFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceFile},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceFile entity by its id.
func (c *SourceFileClient) Get(ctx context.Context, id uuid.UUID) (*SourceFile, error) {
	return c.Query().Where(sourcefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceFileClient) GetX(ctx context.Context, id uuid.UUID) *SourceFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a SourceFile.
func (c *SourceFileClient) QueryJobs(_m *SourceFile) *ImportJobQuery {
	query := (&ImportJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcefile.Table, sourcefile.FieldID, id),
			sqlgraph.To(importjob.Table, importjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sourcefile.JobsTable, sourcefile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceFileClient) Hooks() []Hook {
	return c.hooks.SourceFile
}

// Interceptors returns the client interceptors.
func (c *SourceFileClient) Interceptors() []Interceptor {
	return c.inters.SourceFile
}

func (c *SourceFileClient) mutate(ctx context.Context, m *SourceFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ImportJob, PriceRecord, SourceFile []ent.Hook
	}
	inters struct {
		ImportJob, PriceRecord, SourceFile []ent.Interceptor
	}
)
