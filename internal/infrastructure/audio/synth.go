package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// Clip describes a procedurally generated sound effect: a tone sliding
// from Freq to FreqEnd mixed with white noise, under an exponential decay.
type Clip struct {
	Freq     float64
	FreqEnd  float64
	Noise    float64 // 0 is a pure tone, 1 pure noise
	Duration float64 // seconds
	Decay    float64 // envelope falloff per second
}

// Clips are the effects the game can play, keyed by sound name
var Clips = map[string]Clip{
	"glock17_shot": {Freq: 180, FreqEnd: 60, Noise: 0.8, Duration: 0.12, Decay: 30},
	"m1911_shot":   {Freq: 140, FreqEnd: 45, Noise: 0.85, Duration: 0.16, Decay: 22},
	"mp5_shot":     {Freq: 220, FreqEnd: 90, Noise: 0.7, Duration: 0.08, Decay: 40},
	"dry_fire":     {Freq: 1800, FreqEnd: 1500, Noise: 0.15, Duration: 0.04, Decay: 90},
	"reload":       {Freq: 600, FreqEnd: 900, Noise: 0.4, Duration: 0.15, Decay: 18},
	"enemy_hit":    {Freq: 120, FreqEnd: 80, Noise: 0.5, Duration: 0.07, Decay: 45},
	"enemy_death":  {Freq: 160, FreqEnd: 40, Noise: 0.3, Duration: 0.45, Decay: 7},
	"player_hurt":  {Freq: 300, FreqEnd: 150, Noise: 0.2, Duration: 0.2, Decay: 14},
	"pickup":       {Freq: 660, FreqEnd: 990, Duration: 0.12, Decay: 12},
	"buy":          {Freq: 880, FreqEnd: 1320, Duration: 0.2, Decay: 8},
}

// Synthesize renders a clip as 16-bit little-endian stereo PCM.
// The same seed always yields the same bytes.
func Synthesize(c Clip, sampleRate int, seed int64) []byte {
	n := int(c.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)

		freq := c.Freq + (c.FreqEnd-c.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		tone := math.Sin(phase)
		noise := rng.Float64()*2 - 1
		v := (tone*(1-c.Noise) + noise*c.Noise) * math.Exp(-c.Decay*t)

		s := uint16(int16(clampSample(v) * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
