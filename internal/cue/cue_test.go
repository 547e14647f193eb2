package cue

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/stride/internal/program"
)

// recordingPlayer remembers each cue it is asked to play.
type recordingPlayer struct {
	mu     sync.Mutex
	played []Cue
	err    error
}

func (p *recordingPlayer) Play(_ context.Context, c Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played = append(p.played, c)

	return p.err
}

func (p *recordingPlayer) cues() []Cue {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]Cue(nil), p.played...)
}

func TestCueNames(t *testing.T) {
	for _, c := range All {
		got, ok := Parse(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}

	_, ok := Parse("sprint_start")
	assert.False(t, ok)
	assert.Equal(t, "none", None.String())
}

func TestMapping(t *testing.T) {
	assert.Equal(t, WarmUpStart, ForSegment(program.WarmUp))
	assert.Equal(t, RunStart, ForSegment(program.Run))
	assert.Equal(t, WalkStart, ForSegment(program.Walk))
	assert.Equal(t, CoolDownStart, ForSegment(program.CoolDown))
	assert.Equal(t, None, ForSegment("hill"))

	assert.Equal(t, Countdown30, ForCountdown(30))
	assert.Equal(t, Countdown10, ForCountdown(10))
	assert.Equal(t, None, ForCountdown(5))
}

func TestPhrase(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for _, c := range All {
		p := Phrase(c, r)
		assert.NotEmpty(t, p, c.String())
		assert.Contains(t, phrases[c], p)
	}

	assert.Empty(t, Phrase(None, r))
	assert.Equal(t, "Ten seconds!", Phrase(Countdown10, r))
}

func TestDispatcherPlaysInOrder(t *testing.T) {
	p := &recordingPlayer{}
	d := NewDispatcher(p, WithDelay(0))

	h := d.Handlers()

	h.OnSegmentChange(program.Segment{Type: program.Run, Duration: 60}, 1)
	h.OnCountdown(30)
	h.OnHalfway()
	h.OnCountdown(7)
	h.OnComplete()
	d.Close()

	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, []Cue{RunStart, Countdown30, Halfway, Complete}, p.cues())
}

func TestDispatchNeverBlocks(t *testing.T) {
	d := NewDispatcher(Silent, WithDelay(0))

	done := make(chan struct{})

	go func() {
		for range queueSize * 4 {
			d.Dispatch(RunStart)
		}

		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked with no worker running")
	}

	d.Close()
	d.Dispatch(WalkStart)
}

func TestDispatcherSurvivesPlayerErrors(t *testing.T) {
	p := &recordingPlayer{err: errors.New("no audio device")}
	d := NewDispatcher(p, WithDelay(0))

	d.Dispatch(WarmUpStart)
	d.Dispatch(Complete)
	d.Close()

	require.NoError(t, d.Run(context.Background()))
	assert.Len(t, p.cues(), 2)
}

func TestDispatcherStopsOnCancel(t *testing.T) {
	d := NewDispatcher(Silent, WithDelay(time.Hour))
	d.Dispatch(RunStart)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)

	go func() {
		errCh <- d.Run(ctx)
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPlayersJoinErrors(t *testing.T) {
	first := &recordingPlayer{err: errors.New("first")}
	second := &recordingPlayer{}
	third := &recordingPlayer{err: errors.New("third")}

	err := Players{first, second, third}.Play(context.Background(), Halfway)

	require.Error(t, err)
	assert.ErrorContains(t, err, "first")
	assert.ErrorContains(t, err, "third")
	assert.Equal(t, []Cue{Halfway}, second.cues())
}

func TestVoice(t *testing.T) {
	v, err := NewVoice(`espeak -v "en-us" -s 150`)
	require.NoError(t, err)

	var gotName string

	var gotArgs []string

	v.run = func(_ context.Context, name string, args ...string) error {
		gotName = name
		gotArgs = args

		return nil
	}

	require.NoError(t, v.Play(context.Background(), Countdown30))

	assert.Equal(t, "espeak", gotName)
	assert.Equal(t, []string{"-v", "en-us", "-s", "150", "Thirty seconds."}, gotArgs)

	v.run = func(context.Context, string, ...string) error {
		return errors.New("exit status 1")
	}

	err = v.Play(context.Background(), Complete)
	assert.ErrorIs(t, err, errVoiceFailed)
}

func TestNewVoiceRejectsBadCommand(t *testing.T) {
	_, err := NewVoice(`say "unterminated`)
	assert.ErrorIs(t, err, errInvalidVoiceCmd)

	_, err = NewVoice("   ")
	assert.ErrorIs(t, err, errInvalidVoiceCmd)
}

func TestNotifier(t *testing.T) {
	var titlesShown []string

	n := &Notifier{
		notify: func(title, _, _ string) error {
			titlesShown = append(titlesShown, title)
			return nil
		},
	}

	for _, c := range All {
		require.NoError(t, n.Play(context.Background(), c))
	}

	assert.Equal(t, []string{"Warm up", "Run", "Walk", "Cool down", "Workout complete"}, titlesShown)
}

func TestMelodyLength(t *testing.T) {
	for _, c := range All {
		notes := melody(c)
		require.NotEmpty(t, notes, c.String())

		s, err := renderMelody(SampleRate, notes)
		require.NoError(t, err)

		buf := make([][2]float64, 512)
		total := 0

		for {
			n, ok := s.Stream(buf)
			total += n

			for _, smp := range buf[:n] {
				require.LessOrEqual(t, smp[0], float64(len(notes))*toneLevel+1e-9)
			}

			if !ok {
				break
			}
		}

		// Each note's offset and length are rounded to samples separately.
		assert.InDelta(t, SampleRate.N(melodyLength(notes)), total, float64(len(notes)), c.String())
	}
}

func TestRunRisesWalkFalls(t *testing.T) {
	run, walk := melody(RunStart), melody(WalkStart)

	for i := 1; i < len(run); i++ {
		assert.Greater(t, run[i].freq, run[i-1].freq)
	}

	for i := 1; i < len(walk); i++ {
		assert.Less(t, walk[i].freq, walk[i-1].freq)
	}
}

func TestIsSoundFile(t *testing.T) {
	assert.True(t, IsSoundFile("/tmp/bell.OGG"))
	assert.True(t, IsSoundFile("whistle.wav"))
	assert.False(t, IsSoundFile("notes.txt"))
	assert.False(t, IsSoundFile("noext"))

	_, err := openSound("song.aac")
	assert.ErrorIs(t, err, errInvalidSoundFormat)
}
