package gui

import (
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/accelplot/internal/chart"
	"github.com/san-kum/accelplot/internal/config"
	"github.com/san-kum/accelplot/internal/export"
	"github.com/san-kum/accelplot/internal/logging"
	"github.com/san-kum/accelplot/internal/shell"
)

var (
	ColBg       = rl.NewColor(236, 236, 236, 255)
	ColButton   = rl.NewColor(250, 250, 250, 255)
	ColHover    = rl.NewColor(220, 230, 245, 255)
	ColActive   = rl.NewColor(200, 215, 240, 255)
	ColBorder   = rl.NewColor(160, 160, 160, 255)
	ColText     = rl.NewColor(30, 30, 30, 255)
	ColTextDim  = rl.NewColor(120, 120, 120, 255)
	ColError    = rl.NewColor(200, 40, 40, 255)
	ColChartBox = rl.NewColor(255, 255, 255, 255)
)

const (
	fontPath   = "/usr/share/fonts/liberation/LiberationSans-Regular.ttf"
	fontSize   = 14
	fontSpace  = 1
	statusSize = 18
	targetFPS  = 30
)

type App struct {
	Shell  *shell.Shell
	Title  string
	Width  int32
	Height int32
	Font   rl.Font

	Chart    *chart.Chart
	ChartTex rl.Texture2D
	hasTex   bool
	Active   chart.Kind
	Hover    int
	Status   string
	Err      error

	log *slog.Logger
}

func initWindow(win config.WindowConfig) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0)
}

// loadFont falls back to raylib's built-in font when the system TTF is missing.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(sh *shell.Shell, win config.WindowConfig) *App {
	app := &App{
		Shell:  sh,
		Title:  win.Title,
		Width:  int32(win.Width),
		Height: int32(win.Height),
		Font:   loadFont(),
		Active: -1,
		Hover:  -1,
		Status: "click a button to plot",
		log:    logging.L(),
	}
	sh.Layout(app.measure)
	return app
}

// Run opens the window and blocks until it is closed.
func Run(sh *shell.Shell, win config.WindowConfig) {
	initWindow(win)
	defer rl.CloseWindow()

	app := NewApp(sh, win)
	defer app.unloadChart()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	mouse := rl.GetMousePosition()
	a.Hover = -1
	if k, ok := a.Shell.HitTest(float64(mouse.X), float64(mouse.Y)); ok {
		a.Hover = int(k)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			a.show(k)
		}
	}

	keys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive}
	for i, key := range keys {
		if rl.IsKeyPressed(key) {
			a.show(chart.Kinds()[i])
		}
	}
}

// show renders kind and swaps the displayed texture.
func (a *App) show(kind chart.Kind) {
	a.Active = kind
	c, err := a.Shell.Click(kind)
	if err != nil {
		a.Err = err
		a.Status = kind.Label() + ": " + err.Error()
		return
	}

	area := a.Shell.ChartArea(float64(a.Width), float64(a.Height-statusSize))
	img, err := export.ImagePixels(c, int(area.W), int(area.H))
	if err != nil {
		a.log.Error("draw chart", "kind", kind.String(), "error", err)
		a.Err = err
		a.Status = err.Error()
		return
	}

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)

	a.unloadChart()
	a.Chart = c
	a.ChartTex = tex
	a.hasTex = true
	a.Err = nil
	a.Status = c.Title
}

func (a *App) unloadChart() {
	if a.hasTex {
		rl.UnloadTexture(a.ChartTex)
		a.hasTex = false
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawButtons()
	a.drawChart()
	a.drawStatus()

	rl.EndDrawing()
}
