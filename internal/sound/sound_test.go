package sound

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 44100

func TestGenerateEffectsWithinRange(t *testing.T) {
	for _, e := range Effects {
		t.Run(e.String(), func(t *testing.T) {
			buf := Generate(e, testRate)
			require.NotEmpty(t, buf)
			for i, v := range buf {
				if v < -1 || v > 1 {
					t.Fatalf("sample %d out of range: %f", i, v)
				}
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, Generate(EnemyDeath, testRate), Generate(EnemyDeath, testRate))
}

func TestGenerateUnknownEffect(t *testing.T) {
	assert.Nil(t, Generate(Effect(99), testRate))
	assert.Equal(t, "unknown", Effect(99).String())
}

func TestGenerateMusicLength(t *testing.T) {
	buf := GenerateMusic(testRate)
	assert.Len(t, buf, len(musicNotes)*int(0.25*testRate))
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	buf := Generate(Fire, testRate)
	assert.InDelta(t, 0, buf[0], 1e-9)
	assert.Less(t, abs(buf[len(buf)-1]), 0.01)
}

func TestPCM16Layout(t *testing.T) {
	pcm := PCM16(Buffer{1, -1, 0, 0.5}, 1)
	require.Len(t, pcm, 16)

	sample := func(i, ch int) int16 {
		return int16(binary.LittleEndian.Uint16(pcm[i*4+ch*2:]))
	}
	assert.Equal(t, int16(32767), sample(0, 0))
	assert.Equal(t, sample(0, 0), sample(0, 1), "both channels carry the mono sample")
	assert.Equal(t, int16(-32767), sample(1, 0))
	assert.Equal(t, int16(0), sample(2, 1))
	assert.Equal(t, int16(16384), sample(3, 0))
}

func TestPCM16Volume(t *testing.T) {
	pcm := PCM16(Buffer{1}, 0)
	assert.Equal(t, []byte{0, 0, 0, 0}, pcm)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
