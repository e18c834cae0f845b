package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/accelplot/internal/shell"
)

func (a *App) measure(label string) float64 {
	return float64(rl.MeasureTextEx(a.Font, label, fontSize, fontSpace).X)
}

func (a *App) drawText(text string, x, y float32, size float32, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(x, y), size, fontSpace, color)
}

func toRect(r shell.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func (a *App) drawButtons() {
	for _, b := range a.Shell.Buttons() {
		rect := toRect(b.Bounds)
		fill := ColButton
		switch {
		case b.Kind == a.Active:
			fill = ColActive
		case int(b.Kind) == a.Hover:
			fill = ColHover
		}
		rl.DrawRectangleRec(rect, fill)
		rl.DrawRectangleLinesEx(rect, 1, ColBorder)

		size := rl.MeasureTextEx(a.Font, b.Label, fontSize, fontSpace)
		a.drawText(b.Label,
			rect.X+(rect.Width-size.X)/2,
			rect.Y+(rect.Height-size.Y)/2,
			fontSize, ColText)
	}
}

func (a *App) drawChart() {
	area := a.Shell.ChartArea(float64(a.Width), float64(a.Height-statusSize))
	if !a.hasTex {
		msg := "no chart"
		size := rl.MeasureTextEx(a.Font, msg, fontSize, fontSpace)
		a.drawText(msg,
			float32(area.X+area.W/2)-size.X/2,
			float32(area.Y+area.H/2)-size.Y/2,
			fontSize, ColTextDim)
		return
	}
	rl.DrawRectangleRec(toRect(area), ColChartBox)
	rl.DrawTexture(a.ChartTex, int32(area.X), int32(area.Y), rl.White)
}

func (a *App) drawStatus() {
	y := float32(a.Height - statusSize + 2)
	col := ColTextDim
	if a.Err != nil {
		col = ColError
	}
	a.drawText(a.Status, float32(shell.ButtonSpacing), y, fontSize, col)

	if a.Chart != nil && a.Err == nil {
		info := fmt.Sprintf("%d series  %d samples", len(a.Chart.Series), a.Shell.Recording().Len())
		size := rl.MeasureTextEx(a.Font, info, fontSize, fontSpace)
		a.drawText(info, float32(a.Width)-size.X-shell.ButtonSpacing, y, fontSize, ColTextDim)
	}
}
