package main

import (
	"fmt"
	"math"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/game"
	"github.com/decker502/airhockey/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// hudRows 场地上方的记分行数
const hudRows = 1

var (
	tableStyle     = tcell.StyleDefault.Background(tcell.NewRGBColor(0x1b, 0x26, 0x3b))
	wallStyle      = tableStyle.Foreground(tcell.NewRGBColor(0xe0, 0xe1, 0xdd))
	lineStyle      = tableStyle.Foreground(tcell.NewRGBColor(0x41, 0x5a, 0x77))
	puckStyle      = tableStyle.Foreground(tcell.NewRGBColor(0xf8, 0xf9, 0xfa)).Bold(true)
	countdownStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xb7, 0x03)).Bold(true)
	hudStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

var powerupRunes = map[components.PowerupKind]rune{
	components.PowerupSmallerGoal: '-',
	components.PowerupBiggerGoal:  '+',
	components.PowerupGiantPaddle: 'G',
	components.PowerupTinyPaddle:  't',
}

var powerupStyles = map[components.PowerupKind]tcell.Style{
	components.PowerupSmallerGoal: tableStyle.Foreground(tcell.NewRGBColor(0x2a, 0x9d, 0x8f)),
	components.PowerupBiggerGoal:  tableStyle.Foreground(tcell.NewRGBColor(0xe7, 0x6f, 0x51)),
	components.PowerupGiantPaddle: tableStyle.Foreground(tcell.NewRGBColor(0x8a, 0xc9, 0x26)),
	components.PowerupTinyPaddle:  tableStyle.Foreground(tcell.NewRGBColor(0x9b, 0x5d, 0xe5)),
}

// viewport 场地坐标与终端单元格之间的映射
//
// 场地占据 HUD 下方的全部单元格，四周各留一格画边框。
type viewport struct {
	cols, rows     int
	fieldW, fieldH float64
}

func newViewport(cols, rows int, fieldW, fieldH float64) viewport {
	return viewport{cols: cols, rows: rows, fieldW: fieldW, fieldH: fieldH}
}

// inner 返回边框内可绘制区域的列数和行数
func (v viewport) inner() (int, int) {
	w := v.cols - 2
	h := v.rows - hudRows - 2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// toCell 场地坐标转换为单元格坐标
func (v viewport) toCell(x, y float64) (int, int) {
	w, h := v.inner()
	col := 1 + int(math.Floor(x/v.fieldW*float64(w)))
	row := hudRows + 1 + int(math.Floor(y/v.fieldH*float64(h)))
	return col, row
}

// toField 单元格中心转换为场地坐标
func (v viewport) toField(col, row int) (float64, float64) {
	w, h := v.inner()
	x := (float64(col-1) + 0.5) / float64(w) * v.fieldW
	y := (float64(row-hudRows-1) + 0.5) / float64(h) * v.fieldH
	return x, y
}

// cellRadius 场地半径在水平和垂直方向上对应的单元格数
func (v viewport) cellRadius(r float64) (float64, float64) {
	w, h := v.inner()
	return r / v.fieldW * float64(w), r / v.fieldH * float64(h)
}

// drawSnapshot 把一帧快照绘制到屏幕（不调用 Show）
func drawSnapshot(screen tcell.Screen, snap game.Snapshot, banner string) {
	screen.Clear()
	cols, rows := screen.Size()
	if snap.Width <= 0 || snap.Height <= 0 || cols < 3 || rows < hudRows+3 {
		return
	}
	v := newViewport(cols, rows, snap.Width, snap.Height)

	drawTable(screen, v, snap)
	for _, p := range snap.Powerups {
		drawDisc(screen, v, p.Circle, powerupRunes[p.Kind], powerupStyles[p.Kind])
	}
	for _, p := range snap.Paddles {
		style := tableStyle.Foreground(tcell.NewRGBColor(int32(p.Color.R), int32(p.Color.G), int32(p.Color.B)))
		r := '@'
		if p.Dragged {
			r = '#'
		}
		drawDisc(screen, v, p.Circle, r, style)
	}
	if snap.PuckVisible {
		drawDisc(screen, v, snap.Puck, 'o', puckStyle)
	}

	drawHUD(screen, cols, snap)
	drawOverlay(screen, v, snap, banner)
}

func drawTable(screen tcell.Screen, v viewport, snap game.Snapshot) {
	w, h := v.inner()
	for row := hudRows; row < hudRows+h+2; row++ {
		for col := 0; col < w+2; col++ {
			screen.SetContent(col, row, ' ', nil, tableStyle)
		}
	}

	for col := 1; col <= w; col++ {
		screen.SetContent(col, hudRows, '─', nil, wallStyle)
		screen.SetContent(col, hudRows+h+1, '─', nil, wallStyle)
	}

	mid := 1 + w/2
	for row := hudRows + 1; row <= hudRows+h; row++ {
		screen.SetContent(mid, row, '┆', nil, lineStyle)
	}

	// 侧墙只画在球门口以外
	for i, goal := range snap.Goals {
		col := 0
		if i == 1 {
			col = w + 1
		}
		for row := hudRows + 1; row <= hudRows+h; row++ {
			_, y := v.toField(1, row)
			if y >= goal.Top && y <= goal.Bottom {
				continue
			}
			screen.SetContent(col, row, '│', nil, wallStyle)
		}
	}
}

// drawDisc 用同一个字符填充圆形覆盖的单元格，至少画一个中心格
func drawDisc(screen tcell.Screen, v viewport, c game.Circle, r rune, style tcell.Style) {
	cx, cy := v.toCell(c.X, c.Y)
	rx, ry := v.cellRadius(c.Radius)
	w, h := v.inner()

	spanX := int(math.Ceil(rx))
	spanY := int(math.Ceil(ry))
	for dy := -spanY; dy <= spanY; dy++ {
		for dx := -spanX; dx <= spanX; dx++ {
			col, row := cx+dx, cy+dy
			if col < 1 || col > w || row <= hudRows || row > hudRows+h {
				continue
			}
			if dx != 0 || dy != 0 {
				nx := float64(dx) / math.Max(rx, 0.5)
				ny := float64(dy) / math.Max(ry, 0.5)
				if nx*nx+ny*ny > 1 {
					continue
				}
			}
			screen.SetContent(col, row, r, nil, style)
		}
	}
}

func drawHUD(screen tcell.Screen, cols int, snap game.Snapshot) {
	left := fmt.Sprintf(" %s %d", snap.Paddles[0].Name, snap.Paddles[0].Score)
	right := fmt.Sprintf("%d %s ", snap.Paddles[1].Score, snap.Paddles[1].Name)
	drawText(screen, 0, 0, left, hudStyle)
	drawText(screen, cols-len([]rune(right)), 0, right, hudStyle)

	if snap.ZoneCountdown > 0 {
		text := fmt.Sprintf("%s %d", zoneLabel(snap.Zone), snap.ZoneCountdown)
		drawText(screen, (cols-len([]rune(text)))/2, 0, text, countdownStyle)
	}
}

func drawOverlay(screen tcell.Screen, v viewport, snap game.Snapshot, banner string) {
	_, h := v.inner()
	row := hudRows + 1 + h/2

	var text string
	switch snap.Phase {
	case systems.PhaseGameOverDisplay:
		text = fmt.Sprintf(" %s wins! ", winnerName(snap))
	case systems.PhaseGameOverCountdown:
		text = fmt.Sprintf(" New game in %d ", snap.ResetCountdown)
	default:
		text = banner
	}
	if text == "" {
		return
	}
	drawText(screen, (v.cols-len([]rune(text)))/2, row, text, countdownStyle)
}

func winnerName(snap game.Snapshot) string {
	for _, p := range snap.Paddles {
		if p.Player == snap.Winner {
			return p.Name
		}
	}
	return fmt.Sprintf("Player %d", int(snap.Winner))
}

func zoneLabel(z systems.Zone) string {
	switch z {
	case systems.ZoneLeft:
		return "<<"
	case systems.ZoneRight:
		return ">>"
	default:
		return ""
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
