package pdfsync

import (
	"testing"
)

// captureObserver records everything sent to it; accept=false simulates a
// stale connection that refuses delivery.
type captureObserver struct {
	msgs   []Message
	accept bool
}

func (o *captureObserver) Send(msg Message) bool {
	if !o.accept {
		return false
	}
	o.msgs = append(o.msgs, msg)
	return true
}

func TestBroadcastReachesAllObservers(t *testing.T) {
	reg := NewRegistry()
	first := &captureObserver{accept: true}
	second := &captureObserver{accept: true}
	reg.Register(first)
	reg.Register(second)

	msg := FileChanged("report.pdf")
	reg.Broadcast(msg)

	for i, obs := range []*captureObserver{first, second} {
		if len(obs.msgs) != 1 {
			t.Fatalf("observer %d received %d messages, want 1", i, len(obs.msgs))
		}
		if obs.msgs[0].Type != MsgPDFChanged || obs.msgs[0].Name != "report.pdf" {
			t.Errorf("observer %d received %+v, want %+v", i, obs.msgs[0], msg)
		}
	}
}

func TestBroadcastIsolatesRefusingObserver(t *testing.T) {
	reg := NewRegistry()
	stale := &captureObserver{accept: false}
	healthy := &captureObserver{accept: true}
	reg.Register(stale)
	reg.Register(healthy)

	reg.Broadcast(FileChanged("a.pdf"))
	reg.Broadcast(FileChanged("b.pdf"))

	if len(stale.msgs) != 0 {
		t.Errorf("stale observer recorded %d messages, want 0", len(stale.msgs))
	}
	if len(healthy.msgs) != 2 {
		t.Errorf("healthy observer received %d messages, want 2", len(healthy.msgs))
	}
	// The stale observer stays registered; its own connection handler is
	// responsible for cleanup
	if reg.Count() != 2 {
		t.Errorf("registry count = %d, want 2", reg.Count())
	}
}

func TestUnregisterNeverRegisteredIsNoOp(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&captureObserver{accept: true})

	reg.Unregister(&captureObserver{accept: true})

	if reg.Count() != 1 {
		t.Errorf("registry count = %d after no-op unregister, want 1", reg.Count())
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	reg := NewRegistry()
	obs := &captureObserver{accept: true}
	reg.Register(obs)
	reg.Broadcast(FileChanged("a.pdf"))
	reg.Unregister(obs)
	reg.Broadcast(FileChanged("b.pdf"))

	if len(obs.msgs) != 1 {
		t.Fatalf("observer received %d messages, want 1", len(obs.msgs))
	}
	if obs.msgs[0].Name != "a.pdf" {
		t.Errorf("observer received %q, want a.pdf", obs.msgs[0].Name)
	}
}

func TestNoHistoryForLateObserver(t *testing.T) {
	reg := NewRegistry()
	reg.Broadcast(ListChanged(nil))

	late := &captureObserver{accept: true}
	reg.Register(late)

	if len(late.msgs) != 0 {
		t.Errorf("late observer received %d messages, want 0", len(late.msgs))
	}
}
