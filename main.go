package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/prefabs"
	"github.com/milk9111/pursuit/sim"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed for target placement (0 = time based)")
	debug := flag.Bool("debug", false, "log eats, show controller state, and hot reload prefabs")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	prefabDir := flag.String("prefabs", prefabs.DiskDir, "directory checked for prefab overrides")
	flag.Parse()

	prefabs.DiskDir = *prefabDir
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	s, err := sim.New(sim.Config{Tuning: tuning, Debug: *debug}, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		log.Printf("pursuit: seed=%d", *seed)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("pursuit")

	game := NewGame(s, *debug)
	if *debug {
		if err := game.WatchPrefabs(*prefabDir); err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		}
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
