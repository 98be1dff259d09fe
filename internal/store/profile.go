package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/internal/metrics"
	"coachcore/pkg/domain"
)

// Profile manages the singleton trainer record. Unlike the array-backed
// stores it holds one object, created lazily on first save and overwritten
// in place thereafter.
type Profile struct {
	guard *codec.Guard
	bus   *bus.Emitter
	log   *zap.Logger
	rec   metrics.Recorder

	mu     sync.RWMutex
	value  domain.TrainerProfile
	exists bool
}

// NewProfile constructs the profile store and loads any persisted record.
func NewProfile(ctx context.Context, guard *codec.Guard, emitter *bus.Emitter, log *zap.Logger, rec metrics.Recorder) *Profile {
	p := &Profile{guard: guard, bus: emitter, log: log, rec: rec}
	p.reload(ctx)
	return p
}

// Get returns the profile and whether one has been saved yet.
func (p *Profile) Get() (domain.TrainerProfile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value, p.exists
}

// Save overwrites the profile. On persist failure the previous in-memory
// value is kept and no broadcast fires.
func (p *Profile) Save(ctx context.Context, profile domain.TrainerProfile) error {
	p.mu.Lock()
	start := time.Now()
	err := codec.Write(ctx, p.guard, string(domain.KeyTrainerProfile), profile)
	if p.rec != nil {
		p.rec.Observe(ctx, "trainerProfile.save", err == nil, time.Since(start))
	}
	if err == nil {
		p.value = profile
		p.exists = true
	} else {
		p.log.Error("profile persist failed", zap.Error(err))
	}
	p.mu.Unlock()
	if err != nil {
		return err
	}
	p.bus.Broadcast(string(domain.KeyTrainerProfile))
	return nil
}

func (p *Profile) reload(ctx context.Context) {
	raw, ok := p.guard.ReadRaw(ctx, string(domain.KeyTrainerProfile))
	p.mu.Lock()
	defer p.mu.Unlock()
	if !ok {
		p.value, p.exists = domain.TrainerProfile{}, false
		return
	}
	// An object is required here; an undecodable slot reads as "no profile"
	// rather than a saved-but-empty one.
	var value domain.TrainerProfile
	if err := json.Unmarshal(raw, &value); err != nil {
		p.log.Warn("stored profile malformed, treating as absent", zap.Error(err))
		p.value, p.exists = domain.TrainerProfile{}, false
		return
	}
	p.value, p.exists = value, true
}

// Watch reloads on profile signals until ctx is cancelled.
func (p *Profile) Watch(ctx context.Context, poll time.Duration) {
	sub := p.bus.Subscribe(string(domain.KeyTrainerProfile))
	all := p.bus.Subscribe(bus.TopicAll)
	defer sub.Close()
	defer all.Close()

	var tick <-chan time.Time
	if poll > 0 {
		t := time.NewTicker(poll)
		defer t.Stop()
		tick = t.C
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.C:
			p.reload(ctx)
		case <-all.C:
			p.reload(ctx)
		case <-tick:
			p.reload(ctx)
		}
	}
}
