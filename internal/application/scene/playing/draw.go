package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/protozombie/internal/application/state"
	"github.com/younwookim/protozombie/internal/domain/entity"
)

const controlsText = "WASD: Move | Shift: Run | Ctrl: Crouch | LClick: Fire | R: Reload | E: Buy | Q/1-9: Weapon | ESC: Pause"

// Draw renders the game screen as a top-down view centered on the player
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	camX += p.shake * (2*randFloat() - 1)
	camY += p.shake * (2*randFloat() - 1)

	p.drawTiles(screen, camX, camY)
	p.drawPickups(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)

	p.hud.Draw(screen, p.screenW, p.screenH)
	ebitenutil.DebugPrint(screen, controlsText)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

// camera returns the screen offset that puts the player in the middle
func (p *Playing) camera() (float64, float64) {
	pos := p.world.Player.Position
	return pos.X*p.zoom - float64(p.screenW)/2, pos.Z*p.zoom - float64(p.screenH)/2
}

func (p *Playing) toScreen(v entity.Vec3, camX, camY float64) (float64, float64) {
	return v.X*p.zoom - camX, v.Z*p.zoom - camY
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	stage := p.world.Level.Stage
	cell := stage.TileSize * p.zoom

	startX := max(0, int(camX/cell))
	startZ := max(0, int(camY/cell))
	endX := min(stage.Width-1, int((camX+float64(p.screenW))/cell)+1)
	endZ := min(stage.Depth-1, int((camY+float64(p.screenH))/cell)+1)

	for tz := startZ; tz <= endZ; tz++ {
		for tx := startX; tx <= endX; tx++ {
			if !stage.GetTile(tx, tz).Solid {
				continue
			}
			x := float64(tx)*cell - camX
			y := float64(tz)*cell - camY
			ebitenutil.DrawRect(screen, x, y, cell, cell, colorWall)
		}
	}
}

// drawMarker draws a square of side size world units centered on pos
func (p *Playing) drawMarker(screen *ebiten.Image, pos entity.Vec3, size float64, camX, camY float64, c color.Color) {
	x, y := p.toScreen(pos, camX, camY)
	s := size * p.zoom
	ebitenutil.DrawRect(screen, x-s/2, y-s/2, s, s, c)
}

func (p *Playing) drawPickups(screen *ebiten.Image, camX, camY float64) {
	level := p.world.Level
	for _, box := range level.AmmoBoxes {
		if box.Active {
			p.drawMarker(screen, box.Position, 0.6, camX, camY, colorAmmoBox)
		}
	}
	for _, kit := range level.Healthkits {
		if kit.Active {
			p.drawMarker(screen, kit.Position, 0.6, camX, camY, colorHealthkit)
		}
	}
	for _, b := range level.Buyables {
		p.drawMarker(screen, b.Position, 0.8, camX, camY, colorBuyable)
		x, y := p.toScreen(b.Position, camX, camY)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", b.Name(), b.Price), int(x)-20, int(y)+6)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	p.world.Level.Pool.Active(func(e *entity.Enemy) {
		p.drawMarker(screen, e.Position, 2*e.Stats.Radius, camX, camY, e.Color())
	})
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	player := p.world.Player
	x, y := p.toScreen(player.Position, camX, camY)
	fwd := player.Forward()

	if player.Flashlight {
		p.drawCone(screen, x, y, player.Yaw, colorLight)
	}

	p.drawMarker(screen, player.Position, 2*player.Stats.Radius, camX, camY, colorPlayer)
	ebitenutil.DrawLine(screen, x, y, x+fwd.X*facingRange*p.zoom, y+fwd.Z*facingRange*p.zoom, colorFacing)

	if p.tracer > 0 {
		aim := player.AimDirection().Horizontal().Normalized()
		ebitenutil.DrawLine(screen, x, y, x+aim.X*tracerRange*p.zoom, y+aim.Z*tracerRange*p.zoom, colorTracer)
	}
}

// drawCone fans a few lines around the facing to show the flashlight
func (p *Playing) drawCone(screen *ebiten.Image, x, y, yaw float64, c color.Color) {
	fov := p.world.Player.Stats.FOV
	for a := -fov / 2; a <= fov/2; a += fov / 8 {
		rad := (yaw + a) * math.Pi / 180
		dx := -math.Sin(rad) * lightRange * p.zoom
		dy := -math.Cos(rad) * lightRange * p.zoom
		ebitenutil.DrawLine(screen, x, y, x+dx, y+dy, c)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume\nPress Q to quit"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("GAME OVER\n\nPoints: %d\nKills: %d", p.world.Player.Points(), p.world.Kills())
	if p.newBest {
		text += "\nNew best score!"
	} else if p.profile != nil {
		text += fmt.Sprintf("\nBest: %d", p.profile.Profile().BestScore)
	}
	text += "\n\nPress SPACE to restart"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-40)
}

var randState uint32 = 1

func randFloat() float64 {
	randState = randState*1103515245 + 12345
	return float64(randState&0x7fffffff) / float64(0x7fffffff)
}
