// Package scoring rates how well a staff member suits a task, using the
// requirements and weights the task exposes.
package scoring

import (
	"github.com/Veraticus/venue-sim/internal/staff"
)

// Attributes maps attribute names to a staff member's values. Missing
// attributes count as zero.
type Attributes map[string]float64

// Requirements is the subset of a task the scorer reads.
type Requirements interface {
	RelevantAttributes() []string
	AttributeWeight(name string) float64
	RequiredValue(name string) (float64, bool)
}

var _ Requirements = (*staff.Task)(nil)

// Eligible reports whether attrs meet every minimum of the task. Unmet
// attributes are returned in relevance order.
func Eligible(task Requirements, attrs Attributes) (bool, []string) {
	var unmet []string
	for _, name := range task.RelevantAttributes() {
		minValue, ok := task.RequiredValue(name)
		if !ok {
			continue
		}
		if attrs[name] < minValue {
			unmet = append(unmet, name)
		}
	}
	return len(unmet) == 0, unmet
}

// Score returns the weighted mean of attrs over the task's relevant
// attributes, or 0 when the weights sum to zero.
func Score(task Requirements, attrs Attributes) float64 {
	var weighted, total float64
	for _, name := range task.RelevantAttributes() {
		w := task.AttributeWeight(name)
		weighted += w * attrs[name]
		total += w
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
