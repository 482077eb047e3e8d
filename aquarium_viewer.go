package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mogaika/aquarium_viewer/config"
	"github.com/mogaika/aquarium_viewer/driver"
	"github.com/mogaika/aquarium_viewer/r3d"
	"github.com/mogaika/aquarium_viewer/scene"
	"github.com/mogaika/aquarium_viewer/status"
	"github.com/mogaika/aquarium_viewer/tui"
	"github.com/mogaika/aquarium_viewer/utils"
	"github.com/mogaika/aquarium_viewer/utils/gltfutils"
	"github.com/mogaika/aquarium_viewer/web"
)

func main() {
	var configPath, scenePath, mode, addr, export, dumpScene, webPath string
	var frames int
	var dt float64
	var skipInvalid, debug bool
	flag.StringVar(&configPath, "config", "", "Path to viewer yaml config")
	flag.StringVar(&scenePath, "scene", "", "Path to scene yaml, builtin aquarium if empty")
	flag.StringVar(&mode, "mode", "tui", "tui, web or headless")
	flag.StringVar(&addr, "i", "", "Address of server, overrides config")
	flag.StringVar(&webPath, "web", "web", "Directory with web frontend data, empty to disable")
	flag.IntVar(&frames, "frames", 100, "Frames to run in headless mode")
	flag.Float64Var(&dt, "dt", 1.0/25, "Seconds per frame in headless mode")
	flag.StringVar(&export, "export", "", "Write glb of the last headless frame to file")
	flag.StringVar(&dumpScene, "dumpscene", "", "Write the scene yaml to file and exit")
	flag.BoolVar(&skipInvalid, "skipinvalid", false, "Skip invalid scene nodes instead of failing")
	flag.BoolVar(&debug, "debug", false, "Dump scene graph to log")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatal(err)
		}
	}
	if addr != "" {
		cfg.Listen = addr
	}
	config.SetViewer(cfg)

	desc := scene.Aquarium()
	if scenePath != "" {
		var err error
		if desc, err = scene.LoadFile(scenePath); err != nil {
			log.Fatal(err)
		}
	}

	if dumpScene != "" {
		if err := writeFile(dumpScene, desc.WriteYAML); err != nil {
			log.Fatal(err)
		}
		return
	}

	var clock r3d.Clock
	step := &driver.StepClock{Step: dt}
	if mode == "headless" {
		clock = step
	} else {
		clock = driver.NewWallClock(cfg.TimeScale)
	}

	loop := driver.NewLoop(cfg, clock)
	root, err := scene.Build(desc, scene.Options{Target: loop, Clock: loop, SkipInvalid: skipInvalid})
	if err != nil {
		log.Fatal(err)
	}
	loop.Root = root
	if debug {
		utils.LogDump(desc)
	}

	switch mode {
	case "tui":
		err = runTUI(loop)
	case "web":
		err = runWeb(loop, desc, webPath)
	case "headless":
		err = runHeadless(loop, step, frames, export)
	default:
		flag.PrintDefaults()
		err = errors.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runTUI(loop *driver.Loop) error {
	cfg := config.GetViewer()
	// the terminal belongs to bubbletea
	log.SetOutput(io.Discard)
	m := tui.NewModel(loop, cfg.Width, cfg.Height, cfg.FPS)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runWeb(loop *driver.Loop, desc *scene.Desc, webPath string) error {
	cfg := config.GetViewer()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st := status.NewBroadcaster()
	runner := driver.NewRunner(loop, cfg.FPS)
	runner.OnFrame = func(s driver.Snapshot) {
		if err := st.Publish(s); err != nil {
			log.Printf("[status] %v", err)
		}
	}

	srv := web.NewServer(runner, desc, cfg, st)
	srv.WebPath = webPath

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return runner.Run(ctx) })
	g.Go(func() error { return srv.Serve(ctx, cfg.Listen) })
	return g.Wait()
}

func runHeadless(loop *driver.Loop, clock *driver.StepClock, frames int, export string) error {
	var snap driver.Snapshot
	for i := 0; i < frames; i++ {
		snap = loop.Frame()
		clock.Advance()
	}

	if export != "" {
		doc, err := gltfutils.ExportScene(loop.Root)
		if err != nil {
			return err
		}
		if err := writeFile(export, func(w io.Writer) error { return gltfutils.ExportBinary(w, doc) }); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "Failed to write %q", path)
	}
	return f.Close()
}
