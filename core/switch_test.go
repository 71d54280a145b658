package core

import (
	"context"
	"strings"
	"testing"
)

func constHandler(result interface{}) *FuncHandler {
	return &FuncHandler{
		F: func(_ context.Context, value interface{}, _ Props) (interface{}, error) {
			return result, nil
		},
	}
}

func TestCompileHoistsMarkerDefault(t *testing.T) {
	ctx := context.Background()

	s := &Switch{
		Name: "doors",
		Cases: []*Case{
			{When: "open", Handler: constHandler("opened")},
			{When: DefaultMarker, Handler: constHandler("dunno")},
			{When: "close", Handler: constHandler("closed")},
		},
	}

	if err := s.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}

	if s.Default == nil {
		t.Fatal("marker case wasn't hoisted into the default slot")
	}
	if len(s.Cases) != 2 {
		t.Fatalf("expected 2 cases after hoisting but have %d", len(s.Cases))
	}
	for _, c := range s.Cases {
		if Equal(c.When, DefaultMarker) {
			t.Fatal("marker still present as a matchable case")
		}
	}

	got, err := s.Dispatch(ctx, "anything else", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "dunno" {
		t.Fatalf("expected default handler result but got %#v", got)
	}
}

func TestCompileDuplicateDefaults(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		description string
		s           *Switch
	}{
		{
			description: "two marker cases",
			s: &Switch{
				Name: "twins",
				Cases: []*Case{
					{When: DefaultMarker, Handler: constHandler(1)},
					{When: DefaultMarker, Handler: constHandler(2)},
				},
			},
		},
		{
			description: "marker case and explicit default",
			s: NewSwitch("mixed").
				On("x", constHandler("y")).
				On(DefaultMarker, constHandler("marker")).
				Else(constHandler("else")),
		},
		{
			description: "Else claimed twice",
			s: NewSwitch("greedy").
				Else(constHandler(1)).
				Else(constHandler(2)),
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			err := tc.s.Compile(ctx, nil, false)
			if err == nil {
				t.Fatal("expected a compile error")
			}
			if _, is := err.(*DuplicateDefaultError); !is {
				t.Fatalf("expected a *DuplicateDefaultError but got %T: %v", err, err)
			}
			if tc.s.Compiled() {
				t.Fatal("a bad switch shouldn't be marked compiled")
			}
		})
	}
}

func TestCompileNoHandler(t *testing.T) {
	s := &Switch{
		Name: "empty-handed",
		Cases: []*Case{
			{When: "x"},
		},
	}
	err := s.Compile(context.Background(), nil, false)
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if !strings.Contains(err.Error(), NoHandler.Error()) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompileIdempotent(t *testing.T) {
	ctx := context.Background()

	build := func() *Switch {
		return NewSwitch("again").
			On(1, constHandler("one")).
			On(2, constHandler("two")).
			Else(constHandler("other"))
	}

	a, b := build(), build()
	if err := a.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}
	if err := b.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}
	// Compiling the survivor again shouldn't change anything
	// either.
	if err := b.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}

	for _, v := range []interface{}{1, 2, 3, "1", nil} {
		x, xerr := a.Dispatch(ctx, v, v, nil)
		y, yerr := b.Dispatch(ctx, v, v, nil)
		if (xerr == nil) != (yerr == nil) {
			t.Fatalf("dispatch of %#v diverged: %v vs %v", v, xerr, yerr)
		}
		if x != y {
			t.Fatalf("dispatch of %#v diverged: %#v vs %#v", v, x, y)
		}
	}
}

func TestCompileCanonicalizesCaseValues(t *testing.T) {
	ctx := context.Background()

	s := NewSwitch("numbers").
		On(int64(7), constHandler("seven"))

	if err := s.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}

	// A float64 7 (say from JSON input) should hit the case
	// declared with an int64.
	got, err := s.Dispatch(ctx, float64(7), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "seven" {
		t.Fatalf("expected \"seven\" but got %#v", got)
	}
}

func TestSwitchCopy(t *testing.T) {
	ctx := context.Background()

	s := NewSwitch("orig").
		On("a", constHandler(1)).
		Else(constHandler(0))
	s.Version = "1.0"

	if err := s.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}

	c := s.Copy("2.0")
	if c.Compiled() {
		t.Fatal("a copy shouldn't be compiled")
	}
	if c.Version != "2.0" {
		t.Fatalf("expected version 2.0 but got %s", c.Version)
	}
	if len(c.Cases) != len(s.Cases) {
		t.Fatalf("expected %d cases but got %d", len(s.Cases), len(c.Cases))
	}

	if err := c.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}
	got, err := c.Dispatch(ctx, "a", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, 1) {
		t.Fatalf("expected 1 but got %#v", got)
	}
}

func TestUpdatableSwitch(t *testing.T) {
	ctx := context.Background()

	old := NewSwitch("v1").On("ping", constHandler("pong"))
	if err := old.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}

	u := NewUpdatableSwitch(old)

	var _ Switcher = u
	var _ Switcher = old

	newer := NewSwitch("v2").On("ping", constHandler("PONG"))
	if err := newer.Compile(ctx, nil, false); err != nil {
		t.Fatal(err)
	}
	if err := u.SetSwitch(newer); err != nil {
		t.Fatal(err)
	}

	got, err := u.Switch().Dispatch(ctx, "ping", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "PONG" {
		t.Fatalf("expected the swapped-in switch but got %#v", got)
	}
}
