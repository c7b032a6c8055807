package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/profile"

	"github.com/rupansh/pszigx/machine"
)

func main() {
	biosPath := flag.String("bios", "SCPH1001.BIN", "path to the BIOS file")
	headless := flag.Bool("headless", false, "run the core without the Ebitengine HUD")
	profileMode := flag.String("profile", "", "wrap the run loop with a profiler: \"cpu\", \"mem\", or empty to disable")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	case "":
	default:
		log.Fatalf("unknown -profile value %q", *profileMode)
	}

	bios := loadBios(*biosPath)
	driver := machine.NewDriver(bios)

	if *headless {
		runHeadless(driver)
		return
	}
	runWithHUD(driver)
}

func loadBios(path string) *machine.BIOS {
	log.Printf("loading bios %q", path)
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening bios: %v", err)
	}
	defer file.Close()

	bios, err := machine.LoadBIOS(file)
	if err != nil {
		log.Fatalf("loading bios: %v", err)
	}

	log.Printf("loaded bios in %s", time.Since(start))
	return bios
}

// runHeadless runs the core on its own goroutine and drains HandOff on
// the calling goroutine without presenting anything. It does not return:
// the drain loop keeps polling after the core has stopped.
func runHeadless(driver *machine.Driver) {
	go driver.Run()
	for {
		if _, ok := driver.HandOff.Consume(); !ok {
			time.Sleep(time.Millisecond)
		}
	}
}

// hud is an ebiten.Game that never rasterizes a single draw primitive:
// it only counts messages pulled off HandOff and prints them as text.
// Pixel rasterization is explicitly out of scope for this core.
type hud struct {
	driver *machine.Driver

	messages  uint64
	triangles uint64
	quads     uint64
	lastOffX  int32
	lastOffY  int32
}

func newHUD(driver *machine.Driver) *hud {
	go driver.Run()
	return &hud{driver: driver}
}

func (h *hud) Update() error {
	for {
		msg, ok := h.driver.HandOff.Consume()
		if !ok {
			return nil
		}
		h.messages++
		switch msg.Kind {
		case machine.MsgTriangle:
			h.triangles++
		case machine.MsgQuad:
			h.quads++
		case machine.MsgOffset:
			h.lastOffX, h.lastOffY = msg.OffsetX, msg.OffsetY
		}
	}
}

func (h *hud) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"messages: %d\ntriangles: %d\nquads: %d\nlast offset: (%d, %d)",
		h.messages, h.triangles, h.quads, h.lastOffX, h.lastOffY,
	))
}

func (h *hud) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 640, 480
}

func runWithHUD(driver *machine.Driver) {
	ebiten.SetWindowTitle("gopsxcore")
	ebiten.SetWindowSize(640, 480)
	if err := ebiten.RunGame(newHUD(driver)); err != nil {
		log.Fatalf("hud: %v", err)
	}
}
