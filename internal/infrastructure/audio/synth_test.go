package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/protozombie/internal/domain/entity"
)

func TestSynthesize_Length(t *testing.T) {
	pcm := Synthesize(Clip{Freq: 440, FreqEnd: 440, Duration: 0.5, Decay: 1}, 48000, 1)
	assert.Len(t, pcm, 24000*4, "two 16-bit channels per sample")

	assert.Nil(t, Synthesize(Clip{Freq: 440}, 48000, 1), "zero duration")
}

func TestSynthesize_Deterministic(t *testing.T) {
	clip := Clips["mp5_shot"]

	assert.Equal(t, Synthesize(clip, 44100, 7), Synthesize(clip, 44100, 7))
	assert.NotEqual(t, Synthesize(clip, 44100, 7), Synthesize(clip, 44100, 8), "noise depends on the seed")
}

func TestSynthesize_StereoAndDecay(t *testing.T) {
	pcm := Synthesize(Clip{Freq: 200, FreqEnd: 200, Duration: 1, Decay: 10}, 8000, 1)
	require.NotEmpty(t, pcm)

	peak := func(from, to int) int {
		best := 0
		for i := from; i < to; i++ {
			left := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
			right := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
			assert.Equal(t, left, right)
			v := int(left)
			if v < 0 {
				v = -v
			}
			best = max(best, v)
		}
		return best
	}

	head := peak(0, 800)
	tail := peak(7200, 8000)
	assert.Greater(t, head, 10000)
	assert.Less(t, tail, head/100)
}

func TestClips_CoverWeaponSounds(t *testing.T) {
	for model := entity.ModelGlock17; model <= entity.ModelUSP45; model++ {
		stats, err := entity.StatsOf(model)
		require.NoError(t, err)

		clip, ok := Clips[stats.Sound]
		require.True(t, ok, "%s plays %q", stats.Name, stats.Sound)
		assert.Positive(t, clip.Duration)
	}
}

func TestPlayer_NilIsSilent(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() {
		p.Play("mp5_shot")
		p.SetVolume(0.5)
	})
}
