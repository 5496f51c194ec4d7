package diag

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func waitForLogs(t *testing.T, logs *observer.ObservedLogs, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for logs.Len() < want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d log entries, got %d", want, logs.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDispatch_LogsEventFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	d := NewDispatcher(zap.New(core))
	defer d.Close()

	id := uint(10)
	d.Dispatch(Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &id,
	})

	waitForLogs(t, logs, 1)
	entry := logs.All()[0]
	ctx := entry.ContextMap()
	if ctx["action"] != "appointment_created" || ctx["entity"] != "appointment" {
		t.Fatalf("event fields lost: %v", ctx)
	}
	if got, ok := ctx["entity_id"].(uint64); !ok || got != 10 {
		t.Fatalf("entity_id lost: %v", ctx["entity_id"])
	}
}

// Con la cola llena los eventos se descartan en vez de bloquear al que
// despacha.
func TestDispatch_NeverBlocks(t *testing.T) {
	d := NewDispatcher(zap.NewNop())
	defer d.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10_000; i++ {
			d.Dispatch(Event{Action: "flood", Entity: "test"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}
