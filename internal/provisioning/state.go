package provisioning

import (
	"sync"

	"github.com/nxthat/nanocl/internal/metrics"
)

// Actions recorded in State. They double as metric label values.
const (
	ActionCreated = metrics.ActionCreated
	ActionExists  = metrics.ActionExists
	ActionLinked  = metrics.ActionLinked
	ActionJoined  = metrics.ActionJoined
	ActionStarted = metrics.ActionStarted
	ActionSkipped = metrics.ActionSkipped
)

// Result is the action taken for one resource.
type Result struct {
	Kind   string
	Name   string
	Action string
}

// State collects the results of all phases of one run.
// It is safe for concurrent use by sibling tasks.
type State struct {
	mu      sync.Mutex
	results []Result
}

// NewState creates an empty reconciliation state.
func NewState() *State {
	return &State{}
}

// Record appends a result and counts it in the apply metrics.
func (s *State) Record(kind, name, action string) {
	metrics.RecordResource(kind, action)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, Result{Kind: kind, Name: name, Action: action})
}

// Results returns a copy of the recorded results in recording order.
func (s *State) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Count returns how many results carry the given action.
func (s *State) Count(action string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.results {
		if r.Action == action {
			n++
		}
	}
	return n
}
