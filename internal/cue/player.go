package cue

import (
	"context"
	"errors"
)

// Player produces sound (or another signal) for a cue. Play may block until
// the cue has finished.
type Player interface {
	Play(ctx context.Context, c Cue) error
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(ctx context.Context, c Cue) error

func (f PlayerFunc) Play(ctx context.Context, c Cue) error {
	return f(ctx, c)
}

// Players plays a cue through each player in turn. A failing player does not
// prevent the rest from playing; all errors are joined.
type Players []Player

func (ps Players) Play(ctx context.Context, c Cue) error {
	var errs []error

	for _, p := range ps {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := p.Play(ctx, c); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Silent is a Player that does nothing.
var Silent Player = PlayerFunc(func(context.Context, Cue) error {
	return nil
})
