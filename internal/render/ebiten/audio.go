package ebiten

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"chosenoffset.com/zonearena/internal/simulation"
	"chosenoffset.com/zonearena/internal/sound"
)

// SampleRate is the playback rate of the window frontend.
const SampleRate = 48000

// Audio plays synthesized effects and looping background music through
// ebiten's audio context.
type Audio struct {
	context *audio.Context
	sounds  map[sound.Effect]*audio.Player // One reusable player per effect
	music   *audio.Player

	muted   bool
	musicOn bool // PlayMusic has been called
}

// NewAudio creates the audio context and preloads every effect and the music
// loop. Only one Audio may exist per process.
func NewAudio(cfg simulation.AudioConfig) (*Audio, error) {
	ctx := audio.NewContext(SampleRate)

	a := &Audio{
		context: ctx,
		sounds:  make(map[sound.Effect]*audio.Player),
		muted:   !cfg.Enabled,
	}

	for _, e := range sound.Effects {
		pcm := sound.PCM16(sound.Generate(e, SampleRate), 1)
		player := ctx.NewPlayerFromBytes(pcm)
		player.SetVolume(cfg.SoundVolume)
		a.sounds[e] = player
	}

	pcm := sound.PCM16(sound.GenerateMusic(SampleRate), 1)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	music.SetVolume(cfg.MusicVolume)
	a.music = music

	log.Printf("[Audio] Loaded %d effects and music at %d Hz", len(a.sounds), SampleRate)
	return a, nil
}

// Play restarts the effect from the beginning.
func (a *Audio) Play(e sound.Effect) {
	player, ok := a.sounds[e]
	if !ok || a.muted {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[Audio] Warning: Failed to rewind %s: %v", e, err)
	}
	player.Play()
}

// PlayMusic starts the background loop if it is not already playing.
func (a *Audio) PlayMusic() {
	a.musicOn = true
	if a.muted || a.music.IsPlaying() {
		return
	}
	a.music.Play()
}

// RewindMusic moves the music back to its first note without stopping it.
func (a *Audio) RewindMusic() {
	if err := a.music.Rewind(); err != nil {
		log.Printf("[Audio] Warning: Failed to rewind music: %v", err)
	}
}

// SetMuted silences or restores every sound. Music started before muting
// resumes where it paused.
func (a *Audio) SetMuted(muted bool) {
	a.muted = muted
	switch {
	case muted:
		a.music.Pause()
	case a.musicOn:
		a.music.Play()
	}
	log.Printf("[Audio] Muted: %v", muted)
}

// Muted reports whether sound is off.
func (a *Audio) Muted() bool {
	return a.muted
}

// Close stops playback and releases the players.
func (a *Audio) Close() error {
	for _, p := range a.sounds {
		if err := p.Close(); err != nil {
			return err
		}
	}
	return a.music.Close()
}
