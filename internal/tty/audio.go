package tty

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/zonearena/internal/simulation"
	"chosenoffset.com/zonearena/internal/sound"
)

const sampleRate = beep.SampleRate(44100)

// clip replays a fixed buffer from the start on demand. Once finished it
// streams silence (or loops), so it never drains out of the mixer.
type clip struct {
	samples [][2]float64
	pos     int
	loop    bool
}

func newClip(buf sound.Buffer, volume float64, loop bool) *clip {
	samples := make([][2]float64, len(buf))
	for i, v := range buf {
		samples[i] = [2]float64{v * volume, v * volume}
	}
	// A finished one-shot stays silent until rewound
	pos := len(samples)
	if loop {
		pos = 0
	}
	return &clip{samples: samples, pos: pos, loop: loop}
}

func (c *clip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= len(c.samples) {
			if !c.loop || len(c.samples) == 0 {
				samples[i] = [2]float64{}
				continue
			}
			c.pos = 0
		}
		samples[i] = c.samples[c.pos]
		c.pos++
	}
	return len(samples), true
}

func (c *clip) Err() error {
	return nil
}

// Audio implements game.AudioSink, game.MusicPlayer and game.Muter on the
// system speaker.
type Audio struct {
	effects map[sound.Effect]*clip
	music   *clip
	musicOn *beep.Ctrl
	output  *effects.Volume
	mixer   *beep.Mixer
	started bool
}

// NewAudio synthesizes every sound. Nothing is audible until Start.
func NewAudio(cfg simulation.AudioConfig) *Audio {
	a := &Audio{
		effects: make(map[sound.Effect]*clip),
		mixer:   &beep.Mixer{},
	}

	sr := int(sampleRate)
	for _, e := range sound.Effects {
		c := newClip(sound.Generate(e, sr), cfg.SoundVolume, false)
		a.effects[e] = c
		a.mixer.Add(c)
	}

	a.music = newClip(sound.GenerateMusic(sr), cfg.MusicVolume, true)
	a.musicOn = &beep.Ctrl{Streamer: a.music, Paused: true}
	a.mixer.Add(a.musicOn)

	a.output = &effects.Volume{Streamer: a.mixer, Base: 2, Silent: !cfg.Enabled}
	return a
}

// Start opens the speaker and begins streaming the mixer.
func (a *Audio) Start() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(a.output)
	a.started = true
	log.Printf("[Audio] Speaker started at %d Hz", sampleRate)
	return nil
}

// Close stops the speaker.
func (a *Audio) Close() {
	if !a.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.started = false
}

// Play restarts the effect from its first sample.
func (a *Audio) Play(e sound.Effect) {
	c, ok := a.effects[e]
	if !ok {
		return
	}
	speaker.Lock()
	c.pos = 0
	speaker.Unlock()
}

// PlayMusic unpauses the background loop.
func (a *Audio) PlayMusic() {
	speaker.Lock()
	a.musicOn.Paused = false
	speaker.Unlock()
}

// RewindMusic moves the loop back to its first note without pausing it.
func (a *Audio) RewindMusic() {
	speaker.Lock()
	a.music.pos = 0
	speaker.Unlock()
}

// SetMuted silences the whole mix.
func (a *Audio) SetMuted(muted bool) {
	speaker.Lock()
	a.output.Silent = muted
	speaker.Unlock()
}

// Muted reports whether the mix is silent.
func (a *Audio) Muted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return a.output.Silent
}
