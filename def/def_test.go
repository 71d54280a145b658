package def

import (
	"context"
	"testing"
	"time"

	"github.com/tablewalk/swtch/core"
	"github.com/tablewalk/swtch/interpreters"
)

var guardBrainYAML = `
name: guard-brain
doc: |
  A tiny mob brain.
cases:
- when: idle
  doc: Look around.
  run:
    interpreter: ecmascript
    source: |
      return "attack";
- when: attack
  run:
    interpreter: ecmascript
    source: |
      return "sleep";
- when: sleep
  run:
    interpreter: ecmascript
    source: |
      return "__finish__";
`

func TestFromYAML(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s, err := FromYAML([]byte(guardBrainYAML))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "guard-brain" {
		t.Fatalf("expected guard-brain but got %q", s.Name)
	}
	if len(s.Cases) != 3 {
		t.Fatalf("expected 3 cases but got %d", len(s.Cases))
	}
	if s.Cases[0].When != "idle" {
		t.Fatalf("declaration order wasn't preserved: %#v", s.Cases[0].When)
	}

	if err := s.Compile(ctx, interpreters.Standard(), true); err != nil {
		t.Fatal(err)
	}

	ran, err := s.Run(ctx, "idle", "__finish__", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ran.Strides) != 3 {
		t.Fatalf("expected 3 strides but took %d", len(ran.Strides))
	}
}

func TestFromYAMLMarkerDefault(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	yml := `
name: doors
cases:
- when: open
  run:
    interpreter: ecmascript
    source: |
      return "opened";
- when: "__default__"
  run:
    interpreter: ecmascript
    source: |
      return "dunno";
`
	s, err := FromYAML([]byte(yml))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Compile(ctx, interpreters.Standard(), true); err != nil {
		t.Fatal(err)
	}

	got, err := s.Dispatch(ctx, "slam", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "dunno" {
		t.Fatalf("expected the default handler but got %#v", got)
	}
}

func TestFromYAMLDuplicateDefault(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	yml := `
name: greedy
cases:
- when: "__default__"
  run:
    interpreter: noop
    source: ""
- when: "__default__"
  run:
    interpreter: noop
    source: ""
`
	s, err := FromYAML([]byte(yml))
	if err != nil {
		t.Fatal(err)
	}

	err = s.Compile(ctx, interpreters.Standard(), true)
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if _, is := err.(*core.DuplicateDefaultError); !is {
		t.Fatalf("expected a *core.DuplicateDefaultError but got %T: %v", err, err)
	}
}

func TestFromYAMLExplicitDefaultStanza(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	yml := `
name: stanza
cases:
- when: known
  run:
    interpreter: ecmascript
    source: |
      return "ok";
default:
  interpreter: ecmascript
  source: |
    return "fallback";
`
	s, err := FromYAML([]byte(yml))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Compile(ctx, interpreters.Standard(), true); err != nil {
		t.Fatal(err)
	}

	got, err := core.Evaluate(ctx, s, "mystery")
	if err != nil {
		t.Fatal(err)
	}
	if got != "fallback" {
		t.Fatalf("expected fallback but got %#v", got)
	}
}
