package provisioning

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var obj map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &obj), line)
		out = append(out, obj)
	}
	return out
}

func TestJSONObserver_Event(t *testing.T) {
	var buf bytes.Buffer
	observer := NewJSONObserver(&buf)

	observer.WithFields(map[string]string{"namespace": "n1"}).Event(Event{
		Type:     EventResourceCreated,
		Phase:    "clusters",
		Resource: "c1",
		Message:  "cluster created",
		Fields:   map[string]string{"type": "cluster"},
	})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "cluster created", lines[0]["msg"])
	assert.Equal(t, "resource.created", lines[0]["event"])
	assert.Equal(t, "clusters", lines[0]["phase"])
	assert.Equal(t, "c1", lines[0]["resource"])
	assert.Equal(t, "cluster", lines[0]["type"])
	assert.Equal(t, "n1", lines[0]["namespace"])
	assert.Equal(t, "nanocl", lines[0]["logger"])
}

func TestJSONObserver_FailedEventIsError(t *testing.T) {
	var buf bytes.Buffer
	observer := NewJSONObserver(&buf)

	LogPhaseFailed(observer, "joins", assert.AnError)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "error")
}

func TestJSONObserver_PrintfAndProgress(t *testing.T) {
	var buf bytes.Buffer
	observer := NewJSONObserver(&buf)

	observer.Printf("pulling %s", "nginx")
	observer.Progress("pull", 1, 4)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "pulling nginx", lines[0]["msg"])
	assert.Equal(t, "progress", lines[1]["msg"])
	assert.EqualValues(t, 25, lines[1]["percent"])
}
