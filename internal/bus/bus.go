// Package bus carries change notifications between collection stores. Two
// paths exist: the in-process emitter, which a store broadcasts on after
// every successful persist, and an optional Redis feed that relays those
// broadcasts to other processes sharing the same keyspace. Signals carry no
// payload; the contract is "something changed, go re-read".
package bus

import "sync"

// TopicAll is the wildcard topic. A broadcast on TopicAll reaches every
// subscriber; a subscriber of TopicAll receives every broadcast.
const TopicAll = "*"

// Subscription is one registered listener. Receive on C; the delivered
// string is the topic that changed. Close when done, or the emitter keeps a
// reference forever.
type Subscription struct {
	C chan string

	emitter *Emitter
	topic   string
	once    sync.Once
}

// Close deregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.emitter.remove(s)
	})
}

// Emitter is an in-process publish/subscribe channel with named topics.
type Emitter struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	relays []func(topic string)
}

// NewEmitter constructs an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers a listener for topic (TopicAll for everything).
// Delivery is non-blocking: when a subscriber's buffer is full the signal is
// dropped, which is safe because signals are payload-free and one queued
// signal already forces a reload.
func (e *Emitter) Subscribe(topic string) *Subscription {
	sub := &Subscription{C: make(chan string, 16), emitter: e, topic: topic}
	e.mu.Lock()
	if e.subs[topic] == nil {
		e.subs[topic] = make(map[*Subscription]struct{})
	}
	e.subs[topic][sub] = struct{}{}
	e.mu.Unlock()
	return sub
}

// Broadcast notifies subscribers of topic and of TopicAll, then invokes any
// attached relays. Callers must broadcast only after their persist call has
// returned, so a subscriber that reloads observes the new value.
func (e *Emitter) Broadcast(topic string) {
	e.emit(topic)
	e.mu.RLock()
	relays := e.relays
	e.mu.RUnlock()
	for _, relay := range relays {
		relay(topic)
	}
}

// AttachRelay registers a hook invoked after local delivery of every
// broadcast. The Redis feed uses this to forward signals to other processes.
func (e *Emitter) AttachRelay(relay func(topic string)) {
	e.mu.Lock()
	e.relays = append(e.relays, relay)
	e.mu.Unlock()
}

// emit delivers locally without touching relays. Remote-originated signals
// come in through here so they are not echoed back out.
func (e *Emitter) emit(topic string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	deliver := func(set map[*Subscription]struct{}) {
		for sub := range set {
			select {
			case sub.C <- topic:
			default:
			}
		}
	}
	deliver(e.subs[topic])
	if topic != TopicAll {
		deliver(e.subs[TopicAll])
	} else {
		// A wildcard broadcast reaches every topic's subscribers.
		for t, set := range e.subs {
			if t != TopicAll {
				deliver(set)
			}
		}
	}
}

func (e *Emitter) remove(sub *Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if set, ok := e.subs[sub.topic]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(e.subs, sub.topic)
		}
	}
}
