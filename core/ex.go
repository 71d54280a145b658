package core

import (
	"context"
)

// GuardBrainSwitch makes an example Switch that's useful to have
// around: a tiny mob brain that cycles idle -> attack -> sleep and
// then finishes.
//
// Each handler just names the next state, so driving this Switch with
// Run(ctx, "idle", "__finish__", nil, nil) takes exactly three
// strides.
func GuardBrainSwitch(ctx context.Context) (*Switch, error) {

	say := func(next string) *FuncHandler {
		return &FuncHandler{
			F: func(ctx context.Context, value interface{}, props Props) (interface{}, error) {
				return next, nil
			},
		}
	}

	s := &Switch{
		Name: "guard-brain",
		Cases: []*Case{
			{
				When:    "idle",
				Handler: say("attack"),
			},
			{
				When:    "attack",
				Handler: say("sleep"),
			},
			{
				When:    "sleep",
				Handler: say("__finish__"),
			},
		},
	}

	if err := s.Compile(ctx, nil, true); err != nil {
		return nil, err
	}

	return s, nil
}
