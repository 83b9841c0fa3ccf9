//go:build ebiten

package app

import (
	"errors"
	"log/slog"
	"time"

	"gol2/internal/config"
	"gol2/internal/render"
	"gol2/internal/sim"
	"gol2/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *sim.Session
	painter *render.GridPainter
	palette *render.Palette
	overlay *ui.Overlay
	notes   *ui.Notifications
	tools   *Tools

	configPath string
	log        *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
	frame    uint64
}

// New constructs a Game for the provided session. The configuration is
// written back to configPath periodically; an empty path disables that.
func New(session *sim.Session, configPath string, logger *slog.Logger) *Game {
	cfg := session.Config()
	size := session.Size()
	return &Game{
		session:    session,
		painter:    render.NewGridPainter(size.W, size.H),
		palette:    render.PaletteFromConfig(cfg),
		overlay:    ui.NewOverlay(cfg.Display.Text.ToRGBA()),
		notes:      ui.NewNotifications(notificationFrames),
		tools:      NewTools(),
		configPath: configPath,
		log:        logger,
		scale:      cfg.Display.Scale,
	}
}

// Reset reinitializes the session with the provided seed.
func (g *Game) Reset(seed int64) {
	g.session.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.frame%configSaveFrames == 0 {
		g.saveConfig()
	}
	g.frame++

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.saveConfig()
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()
	g.notes.Tick()

	if !g.paused {
		g.session.Advance()
	} else if g.tickOnce {
		g.session.Step()
	}
	g.tickOnce = false
	return nil
}

func (g *Game) handleKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.tickOnce = true
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.session.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset(time.Now().UnixNano())
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if shift {
			g.session.CycleRule(-1)
		} else {
			g.session.CycleRule(1)
		}
		g.notes.Add(ui.LevelInfo, "Rule: %s", g.session.Name())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.saveBoard()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.loadBoard()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.tools.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.toggleHeat()
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.overlay.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.session.SetIntParameter("speed", g.session.Config().Simulation.Speed+1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.session.SetIntParameter("speed", g.session.Config().Simulation.Speed-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.session.SetIntParameter("brush_radius", g.session.Config().Display.BrushRadius+1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.session.SetIntParameter("brush_radius", g.session.Config().Display.BrushRadius-1)
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	pos := g.cellAt(mx, my)
	radius := g.session.Config().Display.BrushRadius
	b := g.session.Board()

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.tools.Press(b, pos, radius, true)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.tools.Press(b, pos, radius, false)
	default:
		g.tools.Release(b, radius)
	}
}

func (g *Game) cellAt(px, py int) Point {
	return Point{X: px / g.scale, Y: py / g.scale}
}

func (g *Game) toggleHeat() {
	on := !g.session.Config().Heat.Enabled
	g.session.SetBoolParameter("heat", on)
	g.palette = render.PaletteFromConfig(g.session.Config())
	g.notes.Add(ui.LevelInfo, "Heat: %t", on)
}

func (g *Game) saveBoard() {
	path, err := g.session.SaveBoard(quickSave)
	if err != nil {
		g.log.Error("save failed", "err", err)
		g.notes.Add(ui.LevelError, "Save failed: %v", err)
		return
	}
	g.notes.Add(ui.LevelInfo, "Saved board to %s", path)
}

func (g *Game) loadBoard() {
	if err := g.session.LoadBoard(quickSave); err != nil {
		g.log.Error("load failed", "err", err)
		g.notes.Add(ui.LevelError, "Load failed: %v", err)
		return
	}
	size := g.session.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.notes.Add(ui.LevelInfo, "Loaded %s", quickSave)
}

func (g *Game) saveConfig() {
	if g.configPath == "" {
		return
	}
	if err := config.Save(g.configPath, g.session.Config()); err != nil {
		g.log.Warn("config save failed", "err", err)
		return
	}
	g.log.Debug("config saved", "path", g.configPath)
}

// Draw renders the current board, the pending line and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.session.Config().Display.Background.ToRGBA())
	g.painter.Blit(screen, g.session.Board(), g.palette, g.scale)
	g.tools.DrawPreview(screen, g.palette.Alive, g.scale)
	g.overlay.Draw(screen, ui.Status{
		Generation: g.session.Generation(),
		Population: g.session.Board().Population(),
		Paused:     g.paused,
		Tool:       g.tools.Mode().String(),
		Params:     g.session.Parameters(),
	}, g.notes)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	s := g.session.Size()
	ebiten.SetWindowSize(s.W*g.scale, s.H*g.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.session.Config().Simulation.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
