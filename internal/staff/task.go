// Package staff models units of staff work: their lifecycle, attribute
// requirements, scoring weights and recorded results.
package staff

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/venue-sim/internal/common"
)

// Status is the lifecycle state of a task.
type Status string

// Task lifecycle states. Completed and Failed are terminal.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

const (
	// DefaultDuration applies when a task is built without an explicit duration.
	DefaultDuration = 60 * time.Minute
	// Continuous marks a task with no planned end, such as a patrol.
	Continuous time.Duration = -1
	// ContinuousProgress is the pinned progress value of a running continuous task.
	ContinuousProgress = 0.1
	// DefaultWeight is the scoring weight given to an attribute registered
	// only through a requirement.
	DefaultWeight = 1.0
)

// Task is a single unit of staff work. A task is owned by whoever created it
// and is not safe for concurrent use.
type Task struct {
	startTime     time.Time
	endTime       time.Time
	requirements  map[string]float64
	weights       map[string]float64
	results       map[string]any
	id            string
	name          string
	taskType      string
	description   string
	location      string
	target        string
	failureReason string
	status        Status
	relevant      []string
	duration      time.Duration
	progress      float64
}

// Option configures a task at construction time.
type Option func(*Task)

// WithDuration sets the planned duration. Zero or negative values make the
// task continuous.
func WithDuration(d time.Duration) Option {
	return func(t *Task) {
		t.duration = d
	}
}

// WithDescription sets the free-text description.
func WithDescription(description string) Option {
	return func(t *Task) {
		t.description = description
	}
}

// WithLocation sets where in the venue the work happens.
func WithLocation(location string) Option {
	return func(t *Task) {
		t.location = location
	}
}

// WithTarget sets an opaque handle to the entity the task acts on, such as a
// customer id. The task never resolves or owns it.
func WithTarget(target string) Option {
	return func(t *Task) {
		t.target = target
	}
}

// New creates a pending task with zero progress.
func New(name, taskType string, opts ...Option) *Task {
	t := &Task{
		id:           uuid.NewString(),
		name:         name,
		taskType:     taskType,
		duration:     DefaultDuration,
		status:       StatusPending,
		requirements: make(map[string]float64),
		weights:      make(map[string]float64),
		results:      make(map[string]any),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the unique task identifier.
func (t *Task) ID() string { return t.id }

// Name returns the display name.
func (t *Task) Name() string { return t.name }

// Type returns the task family tag.
func (t *Task) Type() string { return t.taskType }

// Description returns the free-text description.
func (t *Task) Description() string { return t.description }

// Location returns the target location.
func (t *Task) Location() string { return t.location }

// Target returns the opaque target handle, empty when there is none.
func (t *Task) Target() string { return t.target }

// Duration returns the planned duration, or a non-positive value for
// continuous tasks.
func (t *Task) Duration() time.Duration { return t.duration }

// Status returns the lifecycle state.
func (t *Task) Status() Status { return t.status }

// Progress returns the completion fraction in [0, 1].
func (t *Task) Progress() float64 { return t.progress }

// StartTime returns the sim time the task was last started.
func (t *Task) StartTime() time.Time { return t.startTime }

// EndTime returns the planned end. It is the zero time for continuous tasks.
func (t *Task) EndTime() time.Time { return t.endTime }

// FailureReason returns the reason passed to Fail, if any.
func (t *Task) FailureReason() string { return t.failureReason }

// HasDeadline reports whether the task completes on its own once time runs out.
func (t *Task) HasDeadline() bool {
	return t.duration > 0
}

// IsTerminal reports whether the task is Completed or Failed.
func (t *Task) IsTerminal() bool {
	return t.status == StatusCompleted || t.status == StatusFailed
}

// Remaining returns the planned time left at now. It is zero for tasks that
// are not in progress or have no deadline.
func (t *Task) Remaining(now time.Time) time.Duration {
	if t.status != StatusInProgress || !t.HasDeadline() {
		return 0
	}
	return max(t.endTime.Sub(now), 0)
}

// AddRequiredAttribute records a minimum value for name. The attribute also
// becomes relevant with DefaultWeight unless it already has a weight.
func (t *Task) AddRequiredAttribute(name string, minValue float64) {
	t.requirements[name] = minValue
	if _, ok := t.weights[name]; !ok {
		t.AddRelevantAttribute(name, DefaultWeight)
	}
}

// AddRelevantAttribute sets the scoring weight of name, registering it as
// relevant on first use.
func (t *Task) AddRelevantAttribute(name string, weight float64) {
	if _, ok := t.weights[name]; !ok {
		t.relevant = append(t.relevant, name)
	}
	t.weights[name] = weight
}

// AttributeWeight returns the weight of name, or 0 when it was never registered.
func (t *Task) AttributeWeight(name string) float64 {
	return t.weights[name]
}

// RequiredValue returns the minimum value recorded for name.
func (t *Task) RequiredValue(name string) (float64, bool) {
	v, ok := t.requirements[name]
	return v, ok
}

// Requirements returns a copy of the attribute minimums.
func (t *Task) Requirements() map[string]float64 {
	return maps.Clone(t.requirements)
}

// RelevantAttributes returns attribute names in first-registration order.
func (t *Task) RelevantAttributes() []string {
	return slices.Clone(t.relevant)
}

// Start moves the task to InProgress at now. Calling it again restarts the timers.
func (t *Task) Start(now time.Time) {
	t.status = StatusInProgress
	t.startTime = now
	t.progress = 0
	if t.HasDeadline() {
		t.endTime = now.Add(t.duration)
	} else {
		t.endTime = time.Time{}
	}
}

// Advance recomputes progress at now and completes the task once its
// planned duration has elapsed. It does nothing unless the task is in progress.
func (t *Task) Advance(now time.Time) {
	if t.status != StatusInProgress {
		return
	}
	if !t.HasDeadline() {
		t.progress = ContinuousProgress
		return
	}

	span := t.endTime.Sub(t.startTime)
	progress := float64(now.Sub(t.startTime)) / float64(span)
	t.progress = min(max(progress, 0), 1)
	if t.progress >= 1 {
		t.Complete()
	}
}

// Complete forces the task to Completed with full progress from any state.
func (t *Task) Complete() {
	t.status = StatusCompleted
	t.progress = 1
}

// Fail forces the task to Failed. The reason is logged and retained.
func (t *Task) Fail(reason string) {
	t.status = StatusFailed
	t.failureReason = reason
	common.LogDebug("task failed", common.Fields{
		"task":   t.name,
		"type":   t.taskType,
		"id":     t.id,
		"reason": reason,
	})
}

// SetResult records an outcome for later pickup by the resolver.
func (t *Task) SetResult(key string, value any) {
	t.results[key] = value
}

// Result returns a single recorded outcome.
func (t *Task) Result(key string) (any, bool) {
	v, ok := t.results[key]
	return v, ok
}

// Results returns a copy of all recorded outcomes.
func (t *Task) Results() map[string]any {
	return maps.Clone(t.results)
}
