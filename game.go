package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/ecs/system"
	"github.com/milk9111/pursuit/prefabs"
	"github.com/milk9111/pursuit/sim"
)

type Game struct {
	sim    *sim.Simulation
	render *system.RenderSystem
	hud    *HUD

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	debug   bool
	watcher *prefabs.Watcher
}

func NewGame(s *sim.Simulation, debug bool) *Game {
	g := &Game{
		sim:    s,
		render: system.NewRenderSystem(),
		hud:    NewHUD(),
		debug:  debug,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// WatchPrefabs reloads tuning whenever a prefab file in dir changes.
func (g *Game) WatchPrefabs(dir string) error {
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// Update runs one simulation tick per frame.
func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	g.pollPrefabs()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.sim.Tick()
	g.hud.SetScore(g.sim.ScoreText())
	g.hud.Update()
	return nil
}

func (g *Game) pollPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(filepath.Base(name))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("prefabs: reload after %s change: %v", name, err)
		return
	}
	if err := g.sim.ApplyTuning(tuning); err != nil {
		log.Printf("prefabs: apply %s: %v", name, err)
		return
	}
	log.Printf("prefabs: reloaded tuning after %s change", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.render.Draw(g.sim.World(), screen)
	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	pos := g.sim.AgentPosition()
	vel := g.sim.AgentVelocity()
	ctrl := g.sim.Controller()
	prevErr := "none"
	if ctrl.HasPrevErr {
		prevErr = fmt.Sprintf("%.2f", ctrl.PrevErr)
	}
	target, _ := g.sim.TargetPosition()
	return fmt.Sprintf(
		"TPS: %.1f  tick: %d\nagent (%.1f, %.1f) vel (%.2f, %.2f)\ntarget (%.1f, %.1f)\np=%.3f i=%.3f i_acc=%.3f d=%.3f prev_err=%s",
		ebiten.ActualTPS(), g.sim.Ticks(),
		pos.X, pos.Y, vel.X, vel.Y,
		target.X, target.Y,
		ctrl.P, ctrl.I, ctrl.IAcc, ctrl.D, prevErr,
	)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
