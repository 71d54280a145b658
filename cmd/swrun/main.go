// A simple, single-machine process that evaluates a switch definition
// from a YAML file.
//
// One-shot:
//
//	swrun -s doors.yaml -v '"open"'
//
// State-machine loop, starting from "idle" and stopping at the
// sentinel:
//
//	swrun -s brain.yaml -loop -from '"idle"' -sentinel '"__finish__"'
//
// With -db and -mid, the machine's value is loaded from and written
// back to a bolt file, so a later invocation picks up where this one
// left off.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tablewalk/swtch/core"
	"github.com/tablewalk/swtch/def"
	"github.com/tablewalk/swtch/interpreters"
	"github.com/tablewalk/swtch/store"
)

func main() {

	var (
		defFilename = flag.String("s", "", "switch definition filename (YAML)")
		valueJS     = flag.String("v", "", "value to dispatch on (in JSON); one-shot mode")

		loop       = flag.Bool("loop", false, "run the state-machine loop")
		fromJS     = flag.String("from", `""`, "initial value (in JSON) for -loop")
		sentinelJS = flag.String("sentinel", `"__finish__"`, "sentinel value (in JSON) that stops -loop")
		limit      = flag.Int("limit", 100, "maximum dispatches for -loop; 0 means no limit")

		dbFilename = flag.String("db", "", "optional bolt file for machine state")
		mid        = flag.String("mid", "default", "machine id for -db")

		diag = flag.Bool("d", false, "print diagnostics")
	)

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *defFilename == "" {
		log.Fatal("need a switch definition (-s)")
	}

	s, err := def.FromFile(*defFilename)
	if err != nil {
		log.Fatalf("couldn't read definition: %v", err)
	}
	if err = s.Compile(ctx, interpreters.Standard(), true); err != nil {
		log.Fatalf("couldn't compile definition: %v", err)
	}

	props := core.Props{
		"mid": *mid,
	}

	if !*loop {
		if *valueJS == "" {
			log.Fatal("need a value (-v) or -loop")
		}
		var value interface{}
		if err := json.Unmarshal([]byte(*valueJS), &value); err != nil {
			log.Fatalf("bad value: %v", err)
		}

		got, err := s.Dispatch(ctx, value, value, props)
		if err != nil {
			log.Fatal(err)
		}
		emit(got)
		return
	}

	var value interface{}
	if err := json.Unmarshal([]byte(*fromJS), &value); err != nil {
		log.Fatalf("bad initial value: %v", err)
	}
	var sentinel interface{}
	if err := json.Unmarshal([]byte(*sentinelJS), &sentinel); err != nil {
		log.Fatalf("bad sentinel: %v", err)
	}

	var st *store.Storage
	if *dbFilename != "" {
		if st, err = store.NewStorage(*dbFilename); err != nil {
			log.Fatal(err)
		}
		st.Debug = *diag
		if err = st.Open(ctx); err != nil {
			log.Fatal(err)
		}
		defer st.Close(ctx)

		ms, err := st.GetMachine(ctx, s.Name, *mid)
		if err != nil {
			log.Fatal(err)
		}
		if ms != nil {
			value = ms.Value
			if *diag {
				log.Printf("resuming %s at %s", *mid, js(value))
			}
		}
	}

	c := &core.Control{
		Limit: *limit,
	}

	ran, err := s.Run(ctx, value, sentinel, c, props)

	if *diag {
		for i, stride := range ran.Strides {
			log.Printf("%02d stride %s → %s", i, js(stride.From), js(stride.To))
		}
	}

	if err != nil {
		log.Fatal(err)
	}

	final := value
	if 0 < len(ran.Strides) {
		final = ran.To()
	}

	if st != nil {
		werr := st.WriteState(ctx, s.Name, []*store.MachineState{
			{
				Mid:        *mid,
				SwitchName: s.Name,
				Value:      final,
			},
		})
		if werr != nil {
			log.Fatal(werr)
		}
	}

	switch ran.StoppedBecause {
	case core.Limited:
		log.Printf("stopped: hit the %d-dispatch limit", *limit)
	case core.BreakpointReached:
		log.Printf("stopped: breakpoint %s", ran.BreakpointId)
	}

	emit(final)
}

func emit(x interface{}) {
	fmt.Fprintln(os.Stdout, js(x))
}

func js(x interface{}) string {
	bs, err := json.Marshal(&x)
	if err != nil {
		return fmt.Sprintf("%#v", x)
	}
	return string(bs)
}
