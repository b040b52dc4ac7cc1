package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Letter-Maze/internal/game"
)

// Renderer draws the maze scene and the reward scene.
type Renderer struct {
	fonts  *Fonts
	player *Sprite
	goal   *Sprite
}

// NewRenderer builds a renderer. Either sprite may be nil.
func NewRenderer(fonts *Fonts, player, goal *Sprite) *Renderer {
	return &Renderer{fonts: fonts, player: player, goal: goal}
}

// DrawMaze draws one frame of the maze: background, walls, goal, player,
// attempt counter and, once won, the overlay.
func (r *Renderer) DrawMaze(screen *ebiten.Image, v game.View) {
	screen.Fill(backgroundColor)
	drawWalls(screen, v.Grid)

	drawEntity(screen, r.goal.Image(), v.Goal, goalFill, goalOutline)
	drawEntity(screen, r.player.Image(), v.Player, playerFill, playerOutline)

	if v.Attempts > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Attempts: %d", v.Attempts), 4, 4)
	}
	if v.Won {
		r.drawOverlay(screen, OverlayAlpha(v.SinceWin))
	}
}

func drawWalls(screen *ebiten.Image, g *game.Grid) {
	cs := float32(g.CellSize())
	n := g.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if g.CellKind(row, col) != game.Wall {
				continue
			}
			vector.FillRect(screen, float32(col)*cs, float32(row)*cs, cs, cs, wallColor, false)
		}
	}
}

// drawEntity draws img scaled to the sprite rect, or a filled circle with an
// outline when no image is available.
func drawEntity(screen, img *ebiten.Image, e game.Entity, fill, outline color.Color) {
	if img != nil {
		left, top, side := SpriteRect(e.X, e.Y, e.Radius)
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(side/float64(b.Dx()), side/float64(b.Dy()))
		op.GeoM.Translate(left, top)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
		return
	}
	x, y, rad := float32(e.X), float32(e.Y), float32(e.Radius)
	vector.FillCircle(screen, x, y, rad, fill, true)
	vector.StrokeCircle(screen, x, y, rad, outlineWidth, outline, true)
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.FillRect(screen, 0, 0, w, h, color.RGBA{A: uint8(alpha * 255)}, false)
	if r.fonts == nil {
		return
	}
	ta := textAlpha(alpha)
	drawCentered(screen, titleText, r.fonts.Title, float64(w)/2, float64(h)/2-20, overlayTextColor, ta)
	drawCentered(screen, subtitleText, r.fonts.Subtitle, float64(w)/2, float64(h)/2+20, overlayTextColor, ta)
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, face, op)
}

// DrawReward draws the reward destination's contents on a plain page with
// a hint for returning to the maze.
func (r *Renderer) DrawReward(screen *ebiten.Image, body string) {
	screen.Fill(backgroundColor)
	if r.fonts == nil {
		ebitenutil.DebugPrint(screen, body)
		return
	}
	const margin = 24
	op := &text.DrawOptions{}
	op.GeoM.Translate(margin, margin)
	op.LineSpacing = bodySize * 1.5
	op.ColorScale.ScaleWithColor(rewardTextColor)
	text.Draw(screen, WrapText(body, r.wrapColumns(screen, margin)), r.fonts.Body, op)

	b := screen.Bounds()
	drawCentered(screen, RewardHint, r.fonts.Body, float64(b.Dx())/2, float64(b.Dy())-margin, rewardTextColor, 1)
}

// RewardHint is shown at the bottom of the reward scene.
const RewardHint = "Press R to play again"

// wrapColumns estimates how many body characters fit across the page.
func (r *Renderer) wrapColumns(screen *ebiten.Image, margin int) int {
	adv := text.Advance("M", r.fonts.Body)
	if adv <= 0 {
		return 60
	}
	return int(float64(screen.Bounds().Dx()-2*margin) / adv)
}
