// Package sound synthesizes the game's effects and music as mono float samples
// so every audio backend plays the same sounds without shipping asset files.
package sound

import (
	"math"
	"math/rand"
)

// Effect identifies a one-shot sound.
type Effect int

const (
	// Fire plays when the player shoots
	Fire Effect = iota
	// EnemyDeath plays when a bullet kills an enemy
	EnemyDeath
)

// String returns the effect's name for logs.
func (e Effect) String() string {
	switch e {
	case Fire:
		return "fire"
	case EnemyDeath:
		return "enemy_death"
	default:
		return "unknown"
	}
}

// Effects lists every one-shot effect, for backends that preload.
var Effects = []Effect{Fire, EnemyDeath}

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// Buffer is mono samples in [-1, 1].
type Buffer []float64

// oscillator generates a waveform whose frequency slides from freqStart to freqEnd
func oscillator(wave int, freqStart, freqEnd float64, samples, sampleRate int, rng *rand.Rand) Buffer {
	buf := make(Buffer, samples)
	phase := 0.0
	for i := 0; i < samples; i++ {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		t := float64(i) / float64(samples)
		phase += (freqStart + (freqEnd-freqStart)*t) / float64(sampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf Buffer, attackSec, releaseSec float64, sampleRate int) {
	total := len(buf)
	attack := int(attackSec * float64(sampleRate))
	release := int(releaseSec * float64(sampleRate))

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// mix adds b scaled by k into a, extending a if needed
func mix(a, b Buffer, k float64) Buffer {
	if len(b) > len(a) {
		extended := make(Buffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * k
	}
	return a
}

// clamp keeps every sample within [-1, 1]
func clamp(buf Buffer) Buffer {
	for i, v := range buf {
		if v > 1 {
			buf[i] = 1
		} else if v < -1 {
			buf[i] = -1
		}
	}
	return buf
}

func samplesFor(sec float64, sampleRate int) int {
	return int(sec * float64(sampleRate))
}

// Generate synthesizes a one-shot effect at the given sample rate.
func Generate(e Effect, sampleRate int) Buffer {
	rng := rand.New(rand.NewSource(int64(e) + 1))

	switch e {
	case Fire:
		// Short descending square chirp
		n := samplesFor(0.09, sampleRate)
		buf := oscillator(waveSquare, 1400, 500, n, sampleRate, rng)
		applyEnvelope(buf, 0.002, 0.06, sampleRate)
		for i := range buf {
			buf[i] *= 0.35
		}
		return buf
	case EnemyDeath:
		// Noise burst over a falling sine thump
		n := samplesFor(0.25, sampleRate)
		noise := oscillator(waveNoise, 0, 0, n, sampleRate, rng)
		applyEnvelope(noise, 0.001, 0.22, sampleRate)
		thump := oscillator(waveSine, 220, 60, n, sampleRate, rng)
		applyEnvelope(thump, 0.005, 0.2, sampleRate)
		return clamp(mix(mix(nil, noise, 0.4), thump, 0.5))
	default:
		return nil
	}
}

// music note frequencies, A minor arpeggio over two bars
var musicNotes = []float64{220.00, 261.63, 329.63, 261.63, 196.00, 246.94, 293.66, 246.94}

// GenerateMusic synthesizes one loopable bar sequence of background music.
func GenerateMusic(sampleRate int) Buffer {
	const noteSec = 0.25
	rng := rand.New(rand.NewSource(0))

	var out Buffer
	for _, f := range musicNotes {
		n := samplesFor(noteSec, sampleRate)
		note := oscillator(waveSine, f, f, n, sampleRate, rng)
		applyEnvelope(note, 0.01, 0.12, sampleRate)
		sub := oscillator(waveSine, f/2, f/2, n, sampleRate, rng)
		applyEnvelope(sub, 0.01, 0.05, sampleRate)
		out = append(out, clamp(mix(note, sub, 0.5))...)
	}
	for i := range out {
		out[i] *= 0.6
	}
	return out
}

// PCM16 converts mono samples to interleaved 16-bit little-endian stereo,
// scaled by volume.
func PCM16(buf Buffer, volume float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		s := int16(math.Round(v * volume * math.MaxInt16))
		lo, hi := byte(uint16(s)), byte(uint16(s)>>8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}
