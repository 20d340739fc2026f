package contactform

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// State is the form's position relative to its last successful submission.
type State int

const (
	// StateEditing covers a fresh form and any form edited after submitting.
	StateEditing State = iota
	// StateSubmitted means the last Submit passed every rule.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateSubmitted:
		return "submitted"
	default:
		return "editing"
	}
}

// Submission is the snapshot taken by a successful Submit. Values are
// trimmed; Message is only populated when HasMessage is true.
type Submission struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Message    string `json:"message,omitempty"`
	HasMessage bool   `json:"-"`
}

// Result is the outcome of a Submit call. Exactly one of Submission or Errors
// is set.
type Result struct {
	Submission *Submission
	Errors     ValidationErrors
}

// Valid reports whether the submit passed validation.
func (r Result) Valid() bool {
	return r.Submission != nil
}

// Snapshot is an immutable copy of the engine state handed to listeners.
type Snapshot struct {
	Values     FieldSet
	Errors     ValidationErrors
	State      State
	Submission *Submission
}

// Listener is notified after every SetField and Submit.
type Listener func(Snapshot)

// Option configures an Engine.
type Option func(*Engine)

// WithRules replaces the default rule set. Rules run in the order given.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) {
		if len(rules) > 0 {
			e.rules = append([]Rule(nil), rules...)
		}
	}
}

// WithValidator injects the validator instance used by rule checks.
func WithValidator(v *validator.Validate) Option {
	return func(e *Engine) {
		if v != nil {
			e.validate = v
		}
	}
}

// WithValues seeds field values without triggering validation. Unknown keys
// are dropped.
func WithValues(values FieldSet) Option {
	return func(e *Engine) {
		for field, value := range values {
			if knownField(field) {
				e.values[field] = value
			}
		}
	}
}

type subscription struct {
	id       int
	listener Listener
}

// Engine holds the values of one rendered contact form.
type Engine struct {
	rules      []Rule
	validate   *validator.Validate
	values     FieldSet
	failing    map[int]ValidationError // keyed by rule index
	state      State
	submission *Submission

	listeners []subscription
	nextID    int
}

// New constructs an empty engine in the editing state.
func New(options ...Option) *Engine {
	e := &Engine{
		rules:   DefaultRules(),
		values:  make(FieldSet, len(declaredFields)),
		failing: make(map[int]ValidationError),
		state:   StateEditing,
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.validate == nil {
		e.validate = NewValidator()
	}
	return e
}

// SetField stores value for name and revalidates the rules attached to that
// field so live feedback stays current. Errors for other fields are left as
// they were. Any edit moves the form back to StateEditing; the last
// submission is kept.
func (e *Engine) SetField(name Field, value string) error {
	if !knownField(name) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	e.values[name] = value
	for idx, rule := range e.rules {
		if rule.Field != name {
			continue
		}
		if failed, verr := evaluate(e.validate, rule, e.values); failed {
			e.failing[idx] = verr
		} else {
			delete(e.failing, idx)
		}
	}
	e.state = StateEditing
	e.notify()
	return nil
}

// Submit runs every rule against the current values. On failure the error
// list is replaced with all violations and no submission is produced. On
// success errors are cleared and a new Submission replaces the previous one.
func (e *Engine) Submit() Result {
	e.failing = make(map[int]ValidationError)
	for idx, rule := range e.rules {
		if failed, verr := evaluate(e.validate, rule, e.values); failed {
			e.failing[idx] = verr
		}
	}

	if len(e.failing) > 0 {
		result := Result{Errors: e.ValidationErrors()}
		e.notify()
		return result
	}

	sub := newSubmission(e.values)
	e.submission = &sub
	e.state = StateSubmitted
	e.notify()

	out := sub
	return Result{Submission: &out}
}

func newSubmission(values FieldSet) Submission {
	trimmed := values.Trimmed()
	sub := Submission{
		FirstName: trimmed.Get(FieldFirstName),
		LastName:  trimmed.Get(FieldLastName),
		Email:     trimmed.Get(FieldEmail),
	}
	if msg := trimmed.Get(FieldMessage); msg != "" {
		sub.Message = msg
		sub.HasMessage = true
	}
	return sub
}

// ValidationErrors returns the current violations in rule order.
func (e *Engine) ValidationErrors() ValidationErrors {
	out := make(ValidationErrors, 0, len(e.failing))
	for idx := range e.rules {
		if verr, ok := e.failing[idx]; ok {
			out = append(out, verr)
		}
	}
	return out
}

// Errors returns the current error messages in rule order, or an empty slice.
func (e *Engine) Errors() []string {
	return e.ValidationErrors().Messages()
}

// Submission returns a copy of the last successful submission.
func (e *Engine) Submission() (Submission, bool) {
	if e.submission == nil {
		return Submission{}, false
	}
	return *e.submission, true
}

// Value returns the raw value currently held for field.
func (e *Engine) Value(field Field) string {
	return e.values.Get(field)
}

// Values returns a copy of the current field values.
func (e *Engine) Values() FieldSet {
	return e.values.Clone()
}

// State reports whether the form is being edited or was just submitted.
func (e *Engine) State() State {
	return e.state
}

// Snapshot copies the full engine state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Values: e.values.Clone(),
		Errors: e.ValidationErrors(),
		State:  e.state,
	}
	if e.submission != nil {
		sub := *e.submission
		snap.Submission = &sub
	}
	return snap
}

// Subscribe registers listener and returns a function that removes it.
func (e *Engine) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, subscription{id: id, listener: listener})
	return func() {
		for i, sub := range e.listeners {
			if sub.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notify() {
	if len(e.listeners) == 0 {
		return
	}
	snap := e.Snapshot()
	subs := append([]subscription(nil), e.listeners...)
	for _, sub := range subs {
		sub.listener(snap)
	}
}

// SetValues applies each entry through SetField in declared field order.
func (e *Engine) SetValues(values map[string]string) error {
	resolved := make(FieldSet, len(values))
	for raw, value := range values {
		field, err := ParseField(raw)
		if err != nil {
			return err
		}
		resolved[field] = value
	}
	for _, field := range declaredFields {
		value, ok := resolved[field]
		if !ok {
			continue
		}
		if err := e.SetField(field, value); err != nil {
			return err
		}
	}
	return nil
}

// Describe renders a short single-line summary, mostly for logs.
func (s Submission) Describe() string {
	parts := []string{s.FirstName, s.LastName, "<" + s.Email + ">"}
	if s.HasMessage {
		parts = append(parts, fmt.Sprintf("%q", s.Message))
	}
	return strings.Join(parts, " ")
}
