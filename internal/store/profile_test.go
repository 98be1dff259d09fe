package store

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"coachcore/internal/metrics"
	"coachcore/pkg/domain"
)

func newProfileStore(env testEnv) *Profile {
	return NewProfile(context.Background(), env.guard, env.emitter, zap.NewNop(), metrics.Nop{})
}

func TestProfileLazyCreation(t *testing.T) {
	env := newTestEnv()
	p := newProfileStore(env)

	if _, ok := p.Get(); ok {
		t.Fatalf("profile should not exist before first save")
	}

	ctx := context.Background()
	sub := env.emitter.Subscribe(string(domain.KeyTrainerProfile))
	defer sub.Close()

	want := domain.TrainerProfile{Name: "Reza", GymName: "Iron Temple", Phone: "0912"}
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	recv(t, sub.C)

	got, ok := p.Get()
	if !ok || got != want {
		t.Fatalf("get after save: %+v %v", got, ok)
	}

	// a fresh store over the same keyspace sees the saved profile
	fresh := newProfileStore(env)
	got, ok = fresh.Get()
	if !ok || got.GymName != "Iron Temple" {
		t.Fatalf("fresh load: %+v %v", got, ok)
	}
}

func TestProfileMalformedSlotReadsAsAbsent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	if err := env.ks.Set(ctx, string(domain.KeyTrainerProfile), []byte(`{broken`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := newProfileStore(env)
	if got, ok := p.Get(); ok {
		t.Fatalf("undecodable slot reported as saved profile: %+v", got)
	}

	// a save replaces the corrupt slot and the profile exists again
	if err := p.Save(ctx, domain.TrainerProfile{Name: "Reza", GymName: "Iron Temple"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, ok := p.Get(); !ok || got.Name != "Reza" {
		t.Fatalf("get after save: %+v %v", got, ok)
	}
}

func TestProfileOverwrite(t *testing.T) {
	env := newTestEnv()
	p := newProfileStore(env)
	ctx := context.Background()

	if err := p.Save(ctx, domain.TrainerProfile{Name: "Reza", GymName: "Iron Temple"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.Save(ctx, domain.TrainerProfile{Name: "Reza", GymName: "Iron Temple II"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := p.Get()
	if got.GymName != "Iron Temple II" {
		t.Fatalf("overwrite not applied: %+v", got)
	}
}

func TestProfileSaveFailureKeepsPreviousValue(t *testing.T) {
	env := newTestEnv()
	p := newProfileStore(env)
	ctx := context.Background()

	if err := p.Save(ctx, domain.TrainerProfile{Name: "Reza", GymName: "Iron Temple"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	sub := env.emitter.Subscribe(string(domain.KeyTrainerProfile))
	defer sub.Close()

	env.ks.setFailure(errors.New("disk full"))
	if err := p.Save(ctx, domain.TrainerProfile{Name: "Other"}); err == nil {
		t.Fatalf("expected persist error")
	}
	got, ok := p.Get()
	if !ok || got.Name != "Reza" {
		t.Fatalf("previous value lost: %+v %v", got, ok)
	}
	assertEmpty(t, sub.C)
}
