package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crowd-drift/audio"
	"github.com/lixenwraith/crowd-drift/config"
	"github.com/lixenwraith/crowd-drift/input"
	"github.com/lixenwraith/crowd-drift/parameter"
	"github.com/lixenwraith/crowd-drift/person"
	"github.com/lixenwraith/crowd-drift/render"
	"github.com/lixenwraith/crowd-drift/world"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	seedFlag    = flag.Uint64("seed", 0, "Simulation seed (0 derives one from the clock)")
	maxFlag     = flag.Int("max", 0, "Crowd capacity override")
	noAudioFlag = flag.Bool("no-audio", false, "Disable the join/leave cues")
	noDragFlag  = flag.Bool("no-drag", false, "Disable mouse dragging of people")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crowd-drift: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.World.Seed = *seedFlag
	}
	if *maxFlag > 0 {
		cfg.World.MaxPeople = *maxFlag
	}
	if *noAudioFlag {
		cfg.Audio = false
	}
	if *noDragFlag {
		cfg.World.DragEnabled = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "crowd-drift: screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "crowd-drift: screen init: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Panic recovery restores the terminal before the stack trace prints,
	// otherwise the trace lands on a raw-mode screen and is unreadable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "crowd-drift crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	run(screen, cfg)
}

func run(screen tcell.Screen, cfg config.Config) {
	w := world.New(cfg.World, world.NewMonotonicTimeProvider())
	renderer := render.NewRenderer(screen)

	width, height := renderer.Size()
	w.SetViewport(width, height)

	engine := audio.NewEngine()
	if cfg.Audio {
		if err := engine.Initialize(); err == nil {
			defer engine.Cleanup()
			w.OnJoin = func(*person.Person) { engine.PlayJoin() }
			w.OnLeave = func(*person.Person) { engine.PlayLeave() }
		}
		// Init failure is silent operation, not a startup error
	}

	w.Start()
	defer w.Stop()

	handler := input.NewHandler()
	cam := w.Camera()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			intent := handler.HandleEvent(ev)
			switch intent.Type {
			case input.IntentQuit:
				return
			case input.IntentPan:
				// Screen-space direction scaled to world units at the
				// current zoom; rows cover twice the depth of columns
				cam.Pan(
					intent.DX*parameter.PanStep/cam.Zoom,
					intent.DY*parameter.PanStep*2/cam.Zoom,
				)
			case input.IntentZoom:
				cam.ZoomBy(intent.Factor)
			case input.IntentAddPerson:
				w.AddPerson()
			case input.IntentToggleAudio:
				engine.ToggleMute()
			case input.IntentDragBegin:
				wx, wz := render.ScreenToWorld(cam, width, height, intent.Col, intent.Row)
				w.BeginDragAt(wx, wz)
			case input.IntentDragMove:
				if w.Dragging() {
					wx, wz := render.ScreenToWorld(cam, width, height, intent.Col, intent.Row)
					w.DragTo(wx, wz)
				}
			case input.IntentDragEnd:
				w.EndDrag()
			case input.IntentResize:
				screen.Sync()
				width, height = screen.Size()
				renderer.Resize(width, height)
				w.SetViewport(width, height)
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now

			w.Update(dt)
			renderer.Frame(w)
		}
	}
}
