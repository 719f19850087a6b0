package systems

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/decker502/flagfield/pkg/components"
	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/ecs"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	fieldBackgroundColor = color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}
	centerAreaColor      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x22}
	centerLabelColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66}
	outlineColor         = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	poleColor            = color.RGBA{R: 0x5d, G: 0x40, B: 0x37, A: 0xff}
	taggedRingColor      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	counterColor         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	letterColor          = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// RenderSystem 把实体状态投影到屏幕，每帧完整重绘
//
// 绘制顺序（从底到顶）：
//   - 场地背景、中央空地标识
//   - 基地（半透明队伍色）和计数牌
//   - 静止的旗帜
//   - 玩家（回城中半透明，被抓时外圈高亮）
//   - 被携带的旗帜
type RenderSystem struct {
	world *game.World
	face  *text.GoXFace

	// ShowCenterArea 是否绘制中央空地标识
	ShowCenterArea bool
	// ShowDebug 是否绘制调试信息
	ShowDebug bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(world *game.World) *RenderSystem {
	return &RenderSystem{
		world:          world,
		face:           text.NewGoXFace(basicfont.Face7x13),
		ShowCenterArea: true,
	}
}

// DrawOrder 返回玩家与旗帜的绘制顺序（从底到顶）
// 命中检测按相反顺序进行
func DrawOrder(w *game.World) []ecs.EntityID {
	order := make([]ecs.EntityID, 0, len(w.Players())+len(w.Flags()))
	var carried []ecs.EntityID
	for _, id := range w.Flags() {
		flag, ok := w.Flag(id)
		if !ok {
			continue
		}
		if flag.IsCarried() {
			carried = append(carried, id)
			continue
		}
		order = append(order, id)
	}
	order = append(order, w.Players()...)
	return append(order, carried...)
}

// Draw 绘制整个场地
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(fieldBackgroundColor)

	if s.ShowCenterArea {
		s.drawCenterArea(screen)
	}
	s.drawBases(screen)

	for _, id := range DrawOrder(s.world) {
		if _, ok := s.world.Player(id); ok {
			s.drawPlayer(screen, id)
			continue
		}
		s.drawFlag(screen, id)
	}

	if s.ShowDebug {
		s.drawDebug(screen)
	}
}

func (s *RenderSystem) drawCenterArea(screen *ebiten.Image) {
	w := s.world
	width := w.FieldWidth * config.CenterAreaWidthRatio
	height := w.FieldHeight * config.CenterAreaHeightRatio
	x := (w.FieldWidth - width) / 2
	y := (w.FieldHeight - height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), centerAreaColor, false)
	s.drawCenteredText(screen, config.CenterAreaLabel, x+width/2, y+height/2, centerLabelColor)
}

func (s *RenderSystem) drawBases(screen *ebiten.Image) {
	w := s.world
	for _, id := range w.Bases() {
		base, ok := ecs.GetComponent[*components.BaseComponent](w.EntityManager, id)
		if !ok {
			continue
		}
		r := base.Rect
		teamColor := w.Rules.TeamColor(base.Team)
		fill := teamColor
		fill.A = config.BaseFillAlpha

		vector.DrawFilledRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), fill, false)
		vector.StrokeRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), 2, teamColor, false)

		// 计数牌在基地右上角
		s.drawCenteredText(screen, strconv.Itoa(base.FlagCount), r.Right()-14, r.Top+12, counterColor)
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, id ecs.EntityID) {
	w := s.world
	player, ok := w.Player(id)
	if !ok {
		return
	}
	box, ok := w.Box(id)
	if !ok {
		return
	}
	visual, _ := ecs.GetComponent[*components.VisualStateComponent](w.EntityManager, id)

	fill := w.Rules.TeamColor(player.Team)
	outline := outlineColor
	if visual != nil && visual.Returning {
		fill = fadeColor(fill, config.ReturningAlpha)
		outline = fadeColor(outline, config.ReturningAlpha)
	}

	x, y := float32(box.Left), float32(box.Top)
	vector.DrawFilledRect(screen, x, y, float32(box.Width), float32(box.Height), fill, false)
	vector.StrokeRect(screen, x, y, float32(box.Width), float32(box.Height), 2, outline, false)

	cx, cy := box.Center()
	s.drawCenteredText(screen, player.Role.Letter(), cx, cy, letterColor)

	if visual != nil && visual.Tagged {
		radius := float32(box.Width/2) + config.TaggedRingWidth + 2
		vector.StrokeCircle(screen, float32(cx), float32(cy), radius, config.TaggedRingWidth, taggedRingColor, true)
	}
}

// drawFlag 旗杆 + 队伍色旗面
func (s *RenderSystem) drawFlag(screen *ebiten.Image, id ecs.EntityID) {
	w := s.world
	flag, ok := w.Flag(id)
	if !ok {
		return
	}
	box, ok := w.Box(id)
	if !ok {
		return
	}

	x, y := float32(box.Left), float32(box.Top)
	width, height := float32(box.Width), float32(box.Height)
	poleWidth := width / 8

	vector.DrawFilledRect(screen, x+poleWidth, y, poleWidth, height, poleColor, false)
	vector.DrawFilledRect(screen, x+2*poleWidth, y, width-2*poleWidth, height*0.55, w.Rules.TeamColor(flag.Team), false)
	vector.StrokeRect(screen, x+2*poleWidth, y, width-2*poleWidth, height*0.55, 1, outlineColor, false)
}

func (s *RenderSystem) drawDebug(screen *ebiten.Image) {
	w := s.world
	audit := "ok"
	if w.LastAuditError != nil {
		audit = w.LastAuditError.Error()
	}
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nfield: %.0fx%.0f  scans: %d  tasks: %d\naudit: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		w.FieldWidth, w.FieldHeight, w.ScanCount, w.Scheduler.PendingCount(),
		audit)
	ebitenutil.DebugPrintAt(screen, msg, 4, int(w.FieldHeight)-52)
}

// drawCenteredText 以 (cx, cy) 为中心绘制单行文字
func (s *RenderSystem) drawCenteredText(screen *ebiten.Image, str string, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, s.face, op)
}

// fadeColor 按比例降低颜色不透明度（预乘 alpha）
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
