package provisioning

import (
	"bytes"
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockObserver is a test implementation of Observer that records events.
type MockObserver struct {
	mu       sync.Mutex
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		fields: make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, format)
}

func (m *MockObserver) Event(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockObserver) Progress(phase string, _, _ int) {
	m.Event(Event{Type: EventProgress, Phase: phase, Message: "progress"})
}

func (m *MockObserver) WithFields(map[string]string) Observer {
	return m
}

func (m *MockObserver) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

func (m *MockObserver) eventTypes() []EventType {
	var types []EventType
	for _, e := range m.Events() {
		types = append(types, e.Type)
	}
	return types
}

func newTestContext(observer Observer) *Context {
	return &Context{
		Context:  context.Background(),
		State:    NewState(),
		Observer: observer,
	}
}

func newBufferedConsoleObserver() (*ConsoleObserver, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewConsoleObserverWithLogger(log.New(&buf, "", 0)), &buf
}

func TestConsoleObserver_Event(t *testing.T) {
	observer, buf := newBufferedConsoleObserver()

	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    "clusters",
		Resource: "c1",
		Message:  "cluster created",
		Fields: map[string]string{
			"type": "cluster",
			"ns":   "n1",
		},
	})

	assert.Equal(t, "resource.created [clusters] resource=c1 cluster created (ns=n1, type=cluster)\n", buf.String())
}

func TestConsoleObserver_Progress(t *testing.T) {
	observer, buf := newBufferedConsoleObserver()

	observer.Progress("pull", 5, 10)
	observer.Progress("pull", 0, 0)

	assert.Contains(t, buf.String(), "[pull] Progress: 5/10 (50%)")
	assert.Contains(t, buf.String(), "[pull] Progress: 0/0\n")
}

func TestConsoleObserver_WithFields(t *testing.T) {
	observer, buf := newBufferedConsoleObserver()

	contextual := observer.WithFields(map[string]string{"namespace": "n1"})
	contextual.Event(Event{Type: EventResourceExists, Message: "cluster already exists", Fields: map[string]string{"type": "cluster"}})

	assert.Contains(t, buf.String(), "(namespace=n1, type=cluster)")
	assert.Empty(t, observer.contextFields, "parent observer must not be modified")
}

func TestConsoleObserver_EventFieldsWinOverContext(t *testing.T) {
	observer, buf := newBufferedConsoleObserver()

	observer.WithFields(map[string]string{"type": "ctx"}).Event(Event{
		Type:   EventResourceCreated,
		Fields: map[string]string{"type": "event"},
	})

	assert.Contains(t, buf.String(), "type=event")
	assert.NotContains(t, buf.String(), "type=ctx")
}

func TestLogHelpers(t *testing.T) {
	observer := NewMockObserver()

	LogPhaseStart(observer, "clusters")
	LogPhaseComplete(observer, "clusters", time.Second)
	LogPhaseFailed(observer, "cargoes", assert.AnError)
	LogResourceCreating(observer, "clusters", "cluster", "c1")
	LogResourceCreated(observer, "clusters", "cluster", "c1")
	LogResourceExists(observer, "clusters", "cluster", "c1")
	LogResourceFailed(observer, "clusters", "cluster", "c1", assert.AnError)
	LogTemplateLinked(observer, "clusters", "c1", "t1")
	LogCargoJoined(observer, "joins", "c1", "net1/w1", false)
	LogCargoJoined(observer, "joins", "c1", "net1/w1", true)
	LogClusterStarted(observer, "joins", "c1")
	LogResourceSkipped(observer, "joins", "cluster", "c1", "auto_start disabled")

	assert.Equal(t, []EventType{
		EventPhaseStarted,
		EventPhaseCompleted,
		EventPhaseFailed,
		EventResourceCreating,
		EventResourceCreated,
		EventResourceExists,
		EventResourceFailed,
		EventResourceLinked,
		EventResourceJoined,
		EventResourceJoined,
		EventResourceStarted,
		EventResourceSkipped,
	}, observer.eventTypes())

	events := observer.Events()
	assert.Equal(t, "t1", events[7].Fields["template"])
	assert.Equal(t, "cargo net1/w1 joined", events[8].Message)
	assert.Equal(t, "cargo net1/w1 already joined", events[9].Message)
}

func TestObserver_ImplementsLogger(t *testing.T) {
	var observer Observer = NewConsoleObserver()
	var logger Logger = observer

	require.NotNil(t, logger)
}
