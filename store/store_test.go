package store

import (
	"context"
	"path/filepath"
	"testing"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := NewStorage(filepath.Join(t.TempDir(), "machines.db"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Open(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := s.Close(context.Background()); err != nil {
			t.Fatal(err)
		}
	})
	return s
}

func TestStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := testStorage(t)

	if err := s.EnsureSwitch(ctx, "guard-brain"); err != nil {
		t.Fatal(err)
	}

	mss := []*MachineState{
		{Mid: "m1", SwitchName: "guard-brain", Value: "attack"},
		{Mid: "m2", SwitchName: "guard-brain", Value: float64(7)},
	}
	if err := s.WriteState(ctx, "guard-brain", mss); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMachines(ctx, "guard-brain")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 machines but got %d", len(got))
	}

	m1, err := s.GetMachine(ctx, "guard-brain", "m1")
	if err != nil {
		t.Fatal(err)
	}
	if m1 == nil {
		t.Fatal("m1 wasn't stored")
	}
	if m1.Value != "attack" {
		t.Fatalf("expected attack but got %#v", m1.Value)
	}
}

func TestStorageDelete(t *testing.T) {
	ctx := context.Background()
	s := testStorage(t)

	if err := s.WriteState(ctx, "doors", []*MachineState{
		{Mid: "m1", Value: "open"},
	}); err != nil {
		t.Fatal(err)
	}

	if err := s.WriteState(ctx, "doors", []*MachineState{
		{Mid: "m1", Deleted: true},
	}); err != nil {
		t.Fatal(err)
	}

	m1, err := s.GetMachine(ctx, "doors", "m1")
	if err != nil {
		t.Fatal(err)
	}
	if m1 != nil {
		t.Fatalf("m1 should be gone but is %#v", m1)
	}
}

func TestStorageMissing(t *testing.T) {
	ctx := context.Background()
	s := testStorage(t)

	mss, err := s.GetMachines(ctx, "nonesuch")
	if err != nil {
		t.Fatal(err)
	}
	if mss != nil {
		t.Fatalf("expected nil for an unknown switch but got %#v", mss)
	}
}
