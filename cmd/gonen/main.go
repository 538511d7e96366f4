// Command gonen is the host binary for the emulation core: it loads an
// iNES ROM, wires it into a bus.System, and either drives it through an
// ebiten window or, with -frames, runs a fixed number of frames
// headless and exits (for scripted end-to-end runs).
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/nescore/gonen/internal/bus"
	"github.com/nescore/gonen/internal/hostio"
	"github.com/nescore/gonen/internal/ppu"
	"github.com/nescore/gonen/internal/rom"
)

var (
	romFile = flag.String("rom", "", "Path to the iNES ROM to run.")
	frames  = flag.Int("frames", 0, "If >0, run this many frames headless and exit instead of opening a window.")
)

func main() {
	flag.Parse()

	cart, err := rom.Load(*romFile)
	if err != nil {
		log.Fatalf("gonen: invalid ROM: %v", err)
	}

	sys := bus.New(cart)
	for _, w := range sys.Warnings {
		log.Printf("gonen: %s", w)
	}
	sys.Reset()

	if *frames > 0 {
		runHeadless(sys, *frames)
		return
	}

	g := &game{sys: sys, keymap: hostio.DefaultKeymap()}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("gonen")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		runUntilCancelled(gctx, sys)
		return nil
	})

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("gonen: %v", err)
	}
	cancel()
	if err := group.Wait(); err != nil {
		log.Printf("gonen: %v", err)
	}
	os.Exit(0)
}

// runHeadless drives the system for a fixed number of frames with no
// windowing toolkit involved, for the spec's scripted scenarios.
func runHeadless(sys *bus.System, n int) {
	for i := 0; i < n; i++ {
		sys.RunFrame()
	}
}

// runUntilCancelled drives the emulation continuously in its own
// goroutine, decoupled from ebiten's display-rate Update callback,
// until ctx is cancelled. Draw reads whatever frame is in progress.
func runUntilCancelled(ctx context.Context, sys *bus.System) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			sys.RunFrame()
		}
	}
}

// game adapts a bus.System to ebiten.Game.
type game struct {
	sys    *bus.System
	keymap [8]ebiten.Key
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}

// Update only polls host input; the emulation itself is driven by
// runUntilCancelled in its own goroutine and does not wait on ebiten's
// display-rate callback.
func (g *game) Update() error {
	hostio.PollKeyboard(g.sys.Pad1(), g.keymap)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.sys.PPU().FrameBuffer()
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			c := ppu.Colorize(fb[y*ppu.ScreenWidth+x])
			screen.Set(x, y, c)
		}
	}
}
