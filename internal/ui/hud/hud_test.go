package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/zonearena/internal/render/rendertest"
)

func TestHealthTextFloors(t *testing.T) {
	h := New(nil, rendertest.NewRenderer(), 800)

	h.SetPlayer(99.6, 100)
	assert.Equal(t, "Health: 99%", h.HealthText())

	h.SetPlayer(-0.2, 100)
	assert.Equal(t, "Health: -1%", h.HealthText())
}

func TestFillWidthIsClamped(t *testing.T) {
	h := New(nil, rendertest.NewRenderer(), 800)

	h.SetPlayer(100, 100)
	assert.Equal(t, float32(200), h.FillWidth())

	h.SetPlayer(37.5, 100)
	assert.Equal(t, float32(75), h.FillWidth())

	h.SetPlayer(-3, 100)
	assert.Equal(t, float32(0), h.FillWidth())

	h.SetPlayer(150, 100)
	assert.Equal(t, float32(200), h.FillWidth())
}

func TestDrawDefaultLayout(t *testing.T) {
	r := rendertest.NewRenderer()
	h := New(nil, r, 800)
	h.SetPlayer(50, 100)
	h.SetEnemies(7)

	h.Draw(rendertest.NewImage(800, 600))

	assert.Equal(t, []string{"Health: 50%", "Enemies: 7"}, r.Texts())

	fills := r.Ops("FillRect")
	require.Len(t, fills, 2)
	assert.Equal(t, float32(20), fills[0].X)
	assert.Equal(t, float32(60), fills[0].Y)
	assert.Equal(t, float32(200), fills[0].W)
	assert.Equal(t, float32(20), fills[0].H)
	assert.Equal(t, float32(100), fills[1].W)

	strokes := r.Ops("StrokeRect")
	require.Len(t, strokes, 1)
	assert.Equal(t, float32(200), strokes[0].W)
}

func TestDrawSkipsEmptyFill(t *testing.T) {
	r := rendertest.NewRenderer()
	h := New(nil, r, 800)
	h.SetPlayer(0, 100)

	h.Draw(rendertest.NewImage(800, 600))

	assert.Len(t, r.Ops("FillRect"), 1)
}

func TestDrawHonoursConfig(t *testing.T) {
	r := rendertest.NewRenderer()
	h := New(&HUDConfig{ShowEnemyCount: true, Position: "top-right"}, r, 800)
	h.SetEnemies(3)

	h.Draw(rendertest.NewImage(800, 600))

	texts := r.Ops("DrawText")
	require.Len(t, texts, 1)
	assert.Equal(t, "Enemies: 3", texts[0].Text)
	assert.Equal(t, float32(580), texts[0].X)
	assert.Empty(t, r.Ops("FillRect"))
}
