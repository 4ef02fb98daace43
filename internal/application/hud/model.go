package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	colorLifeBG = color.RGBA{60, 60, 60, 255}
	colorLifeFG = color.RGBA{100, 200, 100, 255}
	colorLifeLo = color.RGBA{200, 60, 60, 255}
)

const maxMessages = 4

type message struct {
	text string
	ttl  float64
}

// Model stores the last values pushed through Sink and draws them
type Model struct {
	Life, MaxLife    float64
	Points           uint32
	Charger, Reserve uint16
	Weapon           string
	Texture          string
	AmmoKind         string

	messageTTL float64
	messages   []message
}

// NewModel creates a HUD whose messages stay up for messageTTL seconds
func NewModel(messageTTL float64) *Model {
	return &Model{messageTTL: messageTTL}
}

func (m *Model) SetLife(current, max float64) {
	m.Life = current
	m.MaxLife = max
}

func (m *Model) SetPoints(points uint32) { m.Points = points }

func (m *Model) SetAmmo(charger, reserve uint16) {
	m.Charger = charger
	m.Reserve = reserve
}

func (m *Model) SetWeapon(name, texture, ammoKind string) {
	m.Weapon = name
	m.Texture = texture
	m.AmmoKind = ammoKind
}

// Notify shows a short message; the oldest is dropped past maxMessages
func (m *Model) Notify(text string) {
	m.messages = append(m.messages, message{text: text, ttl: m.messageTTL})
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

// ClearMessages drops every visible message
func (m *Model) ClearMessages() {
	m.messages = m.messages[:0]
}

// Update ages messages and drops expired ones
func (m *Model) Update(dt float64) {
	kept := m.messages[:0]
	for _, msg := range m.messages {
		msg.ttl -= dt
		if msg.ttl > 0 {
			kept = append(kept, msg)
		}
	}
	m.messages = kept
}

// Messages returns the visible messages, oldest first
func (m *Model) Messages() []string {
	out := make([]string, len(m.messages))
	for i, msg := range m.messages {
		out[i] = msg.text
	}
	return out
}

// AmmoText formats the ammo counter, e.g. "17 / 30 9mm"
func (m *Model) AmmoText() string {
	if m.Weapon == "" {
		return "unarmed"
	}
	return fmt.Sprintf("%d / %d %s", m.Charger, m.Reserve, m.AmmoKind)
}

// Draw renders the life bar, points, weapon and messages
func (m *Model) Draw(screen *ebiten.Image, screenW, screenH int) {
	barX := 10.0
	barY := float64(screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorLifeBG)
	ratio := 0.0
	if m.MaxLife > 0 {
		ratio = max(0, m.Life/m.MaxLife)
	}
	fg := colorLifeFG
	if ratio < 0.3 {
		fg = colorLifeLo
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, fg)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Points: %d", m.Points), 10, screenH-35)
	ebitenutil.DebugPrintAt(screen, m.Weapon, screenW-110, screenH-35)
	ebitenutil.DebugPrintAt(screen, m.AmmoText(), screenW-110, screenH-20)

	for i, msg := range m.messages {
		ebitenutil.DebugPrintAt(screen, msg.text, 10, 20+i*14)
	}
}
