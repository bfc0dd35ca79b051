package testing

import (
	"fmt"
	"maps"
	"sync"

	"github.com/nxthat/nanocl/internal/provisioning"
)

// RecordingObserver is a provisioning.Observer that keeps every event.
// It is safe for concurrent use. Observers derived with WithFields share the
// same record.
type RecordingObserver struct {
	rec    *record
	fields map[string]string
}

type record struct {
	mu       sync.Mutex
	events   []provisioning.Event
	messages []string
}

var _ provisioning.Observer = (*RecordingObserver)(nil)

// NewRecordingObserver creates an empty recording observer.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{rec: &record{}}
}

// Printf implements provisioning.Logger.
func (o *RecordingObserver) Printf(format string, v ...interface{}) {
	o.rec.mu.Lock()
	defer o.rec.mu.Unlock()
	o.rec.messages = append(o.rec.messages, fmt.Sprintf(format, v...))
}

// Event implements provisioning.Observer.
func (o *RecordingObserver) Event(event provisioning.Event) {
	fields := maps.Clone(o.fields)
	if fields == nil {
		fields = make(map[string]string)
	}
	maps.Copy(fields, event.Fields)
	event.Fields = fields

	o.rec.mu.Lock()
	defer o.rec.mu.Unlock()
	o.rec.events = append(o.rec.events, event)
}

// Progress implements provisioning.Observer.
func (o *RecordingObserver) Progress(phase string, current, total int) {
	o.Event(provisioning.Event{
		Type:  provisioning.EventProgress,
		Phase: phase,
		Fields: map[string]string{
			"current": fmt.Sprint(current),
			"total":   fmt.Sprint(total),
		},
	})
}

// WithFields implements provisioning.Observer.
func (o *RecordingObserver) WithFields(fields map[string]string) provisioning.Observer {
	merged := maps.Clone(o.fields)
	if merged == nil {
		merged = make(map[string]string)
	}
	maps.Copy(merged, fields)
	return &RecordingObserver{rec: o.rec, fields: merged}
}

// Events returns the recorded events.
func (o *RecordingObserver) Events() []provisioning.Event {
	o.rec.mu.Lock()
	defer o.rec.mu.Unlock()
	return append([]provisioning.Event(nil), o.rec.events...)
}

// EventsOf returns the recorded events of one type.
func (o *RecordingObserver) EventsOf(t provisioning.EventType) []provisioning.Event {
	var out []provisioning.Event
	for _, e := range o.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Messages returns the formatted Printf lines.
func (o *RecordingObserver) Messages() []string {
	o.rec.mu.Lock()
	defer o.rec.mu.Unlock()
	return append([]string(nil), o.rec.messages...)
}
