package audit

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
}

func (w *recordingWriter) Write(_ context.Context, ev Event) error {
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, ev)
	return nil
}

func (w *recordingWriter) actions() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.events))
	for _, ev := range w.events {
		out = append(out, ev.Action)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_DeliversInOrderAndDrainsOnClose(t *testing.T) {
	w := &recordingWriter{}
	d := NewDispatcher(w, discardLogger())

	d.Dispatch(Event{Action: "appointment_created"})
	d.Dispatch(Event{Action: "appointment_conflict"})
	d.Dispatch(Event{Action: "appointment_cancelled"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, []string{
		"appointment_created",
		"appointment_conflict",
		"appointment_cancelled",
	}, w.actions())

	// segundo Close não entra em pânico
	require.NoError(t, d.Close(ctx))
}

func TestDispatcher_DropsWhenQueueIsFull(t *testing.T) {
	w := &recordingWriter{block: make(chan struct{})}
	d := NewDispatcher(w, discardLogger())

	// worker preso no primeiro evento; a fila comporta mais 100
	for i := 0; i < 150; i++ {
		d.Dispatch(Event{Action: "x"})
	}

	close(w.block)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	n := len(w.actions())
	assert.Less(t, n, 150)
	assert.GreaterOrEqual(t, n, 100)
}

func TestQuery_Normalize(t *testing.T) {
	q := Query{Page: 0, Limit: 1000}.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, 0, q.Offset())

	q = Query{Page: 3, Limit: 20}.Normalize()
	assert.Equal(t, 40, q.Offset())
}

func TestSlogWriter(t *testing.T) {
	id := uint(7)
	w := NewSlogWriter(discardLogger())
	assert.NoError(t, w.Write(context.Background(), Event{
		Action:   "appointment_created",
		EntityID: &id,
		Metadata: map[string]any{"total": 55.0},
	}))
}
