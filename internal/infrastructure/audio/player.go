// Package audio plays the game's synthesized sound effects through ebiten.
package audio

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays named clips. A nil *Player is silent.
type Player struct {
	ctx     *audio.Context
	volume  float64
	players map[string]*audio.Player
	unknown map[string]bool
}

// NewPlayer renders every clip for the context's sample rate
func NewPlayer(ctx *audio.Context, volume float64) *Player {
	p := &Player{
		ctx:     ctx,
		volume:  volume,
		players: make(map[string]*audio.Player, len(Clips)),
		unknown: make(map[string]bool),
	}

	var seed int64
	for name, clip := range Clips {
		seed++
		pcm := Synthesize(clip, ctx.SampleRate(), seed)
		p.players[name] = ctx.NewPlayerFromBytes(pcm)
	}
	return p
}

// Context returns the running audio context, creating it on first use.
// ebiten allows only one context per process.
func Context(sampleRate int) *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// Play restarts the named clip; unknown names are logged once
func (p *Player) Play(name string) {
	if p == nil {
		return
	}

	player, ok := p.players[name]
	if !ok {
		if !p.unknown[name] {
			p.unknown[name] = true
			log.Printf("[Audio] Warning: no clip named %q", name)
		}
		return
	}

	player.SetVolume(p.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[Audio] Warning: failed to rewind %s: %v", name, err)
	}
	player.Play()
}

// SetVolume changes the volume for subsequent plays
func (p *Player) SetVolume(v float64) {
	if p == nil {
		return
	}
	p.volume = max(0, min(1, v))
}
