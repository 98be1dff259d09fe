package bus

import (
	"testing"

	"go.uber.org/zap"
)

func TestFeedDispatch(t *testing.T) {
	e := NewEmitter()
	sub := e.Subscribe("students")
	defer sub.Close()

	f := &Feed{emitter: e, origin: "local", log: zap.NewNop()}

	// remote signal comes through
	f.dispatch("remote|students")
	if got := recv(t, sub.C); got != "students" {
		t.Fatalf("got %q", got)
	}

	// own publications are suppressed
	f.dispatch("local|students")
	assertEmpty(t, sub.C)

	// malformed payloads are dropped
	f.dispatch("students")
	assertEmpty(t, sub.C)
}

func TestFeedDispatchDoesNotEcho(t *testing.T) {
	e := NewEmitter()
	var relayed []string
	e.AttachRelay(func(topic string) { relayed = append(relayed, topic) })

	f := &Feed{emitter: e, origin: "local", log: zap.NewNop()}
	f.dispatch("remote|students")
	if len(relayed) != 0 {
		t.Fatalf("remote signal must not re-enter the relay, got %v", relayed)
	}
}
