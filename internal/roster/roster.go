package roster

import (
	"fmt"
	"io"
	"time"

	"persondemo/internal/logging"
	"persondemo/internal/person"
	"persondemo/internal/tracing"

	"github.com/google/uuid"
)

// Member is a registered person together with its roster ID
type Member struct {
	ID     string // UUID, used for log and trace correlation only
	Person person.Person
}

// Roster is a fixed, ordered sequence of persons
type Roster struct {
	members []Member
	logger  *logging.Logger
	tracer  tracing.Tracer
}

// Option configures a Roster
type Option func(*Roster)

// WithLogger sets the logger used for dispatch logging
func WithLogger(logger *logging.Logger) Option {
	return func(r *Roster) {
		r.logger = logger
	}
}

// WithTracer sets the tracer that receives create, greet and relax events
func WithTracer(tracer tracing.Tracer) Option {
	return func(r *Roster) {
		r.tracer = tracer
	}
}

// New registers people in the given order
func New(people []person.Person, opts ...Option) *Roster {
	r := &Roster{
		members: make([]Member, 0, len(people)),
		logger:  logging.Get(),
		tracer:  tracing.NewNoopTracer(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for i, p := range people {
		m := Member{ID: uuid.New().String(), Person: p}
		r.members = append(r.members, m)

		_ = r.tracer.Trace(tracing.Event{
			Timestamp: time.Now(),
			Component: tracing.ComponentPerson,
			Operation: tracing.OperationCreate,
			Level:     tracing.LevelDebug,
			SourceID:  m.ID,
			Message:   "Person registered",
			Metadata:  memberMetadata(i, m),
		})
	}

	r.logger.Debug("Roster created", "size", len(r.members))
	return r
}

// Default returns the demo roster
func Default(opts ...Option) *Roster {
	return New([]person.Person{
		person.NewIntrovert("Alice", "Travels with Charley"),
		person.NewExtrovert("Bob", "Freddie's Freakout Palace"),
		person.NewIntrovert("Carol", "To Say Nothing of the Dog"),
		person.NewExtrovert("David", "Club 54"),
		person.NewReallyExtrovert("Giles", "The Slide"),
	}, opts...)
}

// Len returns the number of members
func (r *Roster) Len() int {
	return len(r.members)
}

// Members returns a copy of the members in registration order
func (r *Roster) Members() []Member {
	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out
}

// Run asks every member, in order, to greet and then relax, writing to w.
// It stops at the first write error.
func (r *Roster) Run(w io.Writer) error {
	r.logger.Debug("Roster run started", "size", len(r.members))

	for i, m := range r.members {
		if err := r.dispatch(i, m, tracing.OperationGreet, m.Person.Greet, w); err != nil {
			return err
		}
		if err := r.dispatch(i, m, tracing.OperationRelax, m.Person.Relax, w); err != nil {
			return err
		}
	}

	r.logger.Debug("Roster run finished", "size", len(r.members))
	return nil
}

func (r *Roster) dispatch(i int, m Member, op tracing.Operation, call func(io.Writer) error, w io.Writer) error {
	r.logger.Debug("Dispatching",
		"operation", string(op),
		"member_id", m.ID,
		"name", m.Person.Name(),
		"kind", string(m.Person.Kind()))

	if err := call(w); err != nil {
		r.logger.Error("Dispatch failed",
			"operation", string(op),
			"member_id", m.ID,
			"error", err)

		_ = r.tracer.Trace(tracing.Event{
			Timestamp: time.Now(),
			Component: tracing.ComponentRoster,
			Operation: op,
			Level:     tracing.LevelError,
			SourceID:  m.ID,
			Message:   fmt.Sprintf("Dispatch failed: %v", err),
			Metadata:  memberMetadata(i, m),
		})
		return fmt.Errorf("%s %s: %w", op, m.Person.Name(), err)
	}

	_ = r.tracer.Trace(tracing.Event{
		Timestamp: time.Now(),
		Component: tracing.ComponentRoster,
		Operation: op,
		Level:     tracing.LevelInfo,
		SourceID:  m.ID,
		Message:   "Dispatched",
		Metadata:  memberMetadata(i, m),
	})
	return nil
}

func memberMetadata(i int, m Member) map[string]interface{} {
	return map[string]interface{}{
		"index": i,
		"name":  m.Person.Name(),
		"kind":  string(m.Person.Kind()),
	}
}
