package cue

import (
	"context"
	"math/rand/v2"
	"os/exec"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"
)

// Voice speaks a phrase for each cue by running a text-to-speech command
// such as "espeak -s 150" or "say". The phrase is passed as the final
// argument.
type Voice struct {
	// run executes the command; tests replace it.
	run func(ctx context.Context, name string, args ...string) error

	rnd     *rand.Rand
	name    string
	args    []string
	rndLock sync.Mutex
}

// NewVoice parses cmd into a Voice.
func NewVoice(cmd string) (*Voice, error) {
	cmdSlice, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errInvalidVoiceCmd.Fmt(cmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, errInvalidVoiceCmd.Fmt(cmd)
	}

	seed := uint64(time.Now().UnixNano())

	return &Voice{
		name: cmdSlice[0],
		args: cmdSlice[1:],
		rnd:  rand.New(rand.NewPCG(seed, seed>>1)),
		run:  runCmd,
	}, nil
}

func runCmd(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (v *Voice) phrase(c Cue) string {
	v.rndLock.Lock()
	defer v.rndLock.Unlock()

	return Phrase(c, v.rnd)
}

func (v *Voice) Play(ctx context.Context, c Cue) error {
	text := v.phrase(c)
	if text == "" {
		return nil
	}

	args := append(append([]string(nil), v.args...), text)

	err := v.run(ctx, v.name, args...)
	if err != nil {
		return errVoiceFailed.Fmt(c.String()).Wrap(err)
	}

	return nil
}
