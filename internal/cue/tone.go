package cue

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// SampleRate is the rate the speaker is opened at. Sound files recorded at a
// different rate are resampled.
const SampleRate beep.SampleRate = 44100

const (
	bufferSize       = 10 // buffer holds 1/bufferSize of a second
	resampleQuality  = 4
	toneLevel        = 0.3
	toneDecayFloorDB = -40
)

// Frequencies in Hz.
const (
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// note is a single tone within a melody.
type note struct {
	freq float64
	at   time.Duration // offset from the start of the melody
	dur  time.Duration
}

// melody returns the notes played for c. Run cues rise, walk cues fall.
func melody(c Cue) []note {
	ms := func(n int) time.Duration {
		return time.Duration(n) * time.Millisecond
	}

	switch c {
	case RunStart:
		return []note{
			{noteC5, 0, ms(150)},
			{noteE5, ms(80), ms(150)},
			{noteG5, ms(160), ms(150)},
		}
	case WalkStart:
		return []note{
			{noteC5, 0, ms(200)},
			{noteA4, ms(100), ms(200)},
			{noteG4, ms(200), ms(200)},
		}
	case WarmUpStart, CoolDownStart:
		return []note{
			{noteA4, 0, ms(300)},
			{noteC5, ms(150), ms(300)},
		}
	case Halfway:
		return []note{
			{noteD5, 0, ms(150)},
			{noteE5, ms(120), ms(200)},
		}
	case Countdown30:
		return []note{{noteC5, 0, ms(100)}}
	case Countdown10:
		return []note{{noteE5, 0, ms(100)}}
	case Complete:
		return []note{
			{noteC5, 0, ms(400)},
			{noteE5, ms(100), ms(400)},
			{noteG5, ms(200), ms(400)},
			{noteC6, ms(300), ms(400)},
			{noteC5, ms(500), ms(800)},
			{noteE5, ms(500), ms(800)},
			{noteG5, ms(500), ms(800)},
		}
	}

	return nil
}

// melodyLength returns the time from the first note's start to the last
// note's end.
func melodyLength(notes []note) time.Duration {
	var end time.Duration

	for _, n := range notes {
		end = max(end, n.at+n.dur)
	}

	return end
}

// decay scales s by an exponential envelope that falls from toneLevel to
// toneDecayFloorDB over length samples.
func decay(s beep.Streamer, length int) beep.Streamer {
	pos := 0
	rate := math.Pow(10, toneDecayFloorDB/20.0/float64(max(length, 1)))

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)

		for i := range samples[:n] {
			g := toneLevel * math.Pow(rate, float64(pos))
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}

		return n, ok
	})
}

// renderMelody builds a finite streamer for notes at sr.
func renderMelody(sr beep.SampleRate, notes []note) (beep.Streamer, error) {
	voices := make([]beep.Streamer, 0, len(notes))

	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, err
		}

		length := sr.N(n.dur)

		voices = append(voices, beep.Seq(
			beep.Silence(sr.N(n.at)),
			decay(beep.Take(length, sine), length),
		))
	}

	return beep.Mix(voices...), nil
}

// ToneSynth plays short synthesised melodies through the system speaker. A
// sound file configured for a cue is played instead of its melody.
type ToneSynth struct {
	// Sounds maps cues to audio files (ogg, mp3, flac or wav).
	Sounds map[Cue]string
	// Volume is the playback level from 0 (silent) to 1.
	Volume float64
	// Tones enables the built-in melodies. When false only cues with a
	// sound file are heard.
	Tones bool

	once    sync.Once
	initErr error
}

func (t *ToneSynth) initSpeaker() error {
	t.once.Do(func() {
		err := speaker.Init(SampleRate, SampleRate.N(time.Second/bufferSize))
		if err != nil {
			t.initErr = errSpeakerInit.Wrap(err)
		}
	})

	return t.initErr
}

func (t *ToneSynth) Play(ctx context.Context, c Cue) error {
	var (
		stream beep.Streamer
		closer func() error
	)

	if path, ok := t.Sounds[c]; ok && path != "" {
		s, err := openSound(path)
		if err != nil {
			return err
		}

		stream, closer = s, s.Close
	} else if t.Tones {
		notes := melody(c)
		if len(notes) == 0 {
			return nil
		}

		s, err := renderMelody(SampleRate, notes)
		if err != nil {
			return err
		}

		stream = s
	} else {
		return nil
	}

	if closer != nil {
		defer func() {
			_ = closer()
		}()
	}

	err := t.initSpeaker()
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(t.withVolume(stream), beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

func (t *ToneSynth) withVolume(s beep.Streamer) beep.Streamer {
	v := min(max(t.Volume, 0), 1)

	return &effects.Volume{
		Streamer: s,
		Base:     2,
		// Map 0..1 onto -5..0 so that full volume leaves samples untouched.
		Volume: (v - 1) * 5,
		Silent: v == 0,
	}
}

type soundStream struct {
	beep.Streamer
	f *os.File
	s beep.StreamSeekCloser
}

func (s *soundStream) Close() error {
	_ = s.s.Close()
	return s.f.Close()
}

// openSound decodes an audio file and resamples it to SampleRate.
func openSound(path string) (*soundStream, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSoundFile(path) {
		return nil, errInvalidSoundFormat.Fmt(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, SampleRate, stream)
	}

	return &soundStream{Streamer: s, f: f, s: stream}, nil
}

// IsSoundFile reports whether path has an extension ToneSynth can decode.
func IsSoundFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".mp3", ".flac", ".wav":
		return true
	}

	return false
}
