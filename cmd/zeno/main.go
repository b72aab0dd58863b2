// Package main is a terminal host for the zeno editing core. It drives
// the session purely through the embedding boundary, the same way a
// foreign host would.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/zeno-editor/zeno/embed"
	"github.com/zeno-editor/zeno/internal/config"
	"github.com/zeno-editor/zeno/internal/display"
	"github.com/zeno-editor/zeno/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Wire key codes and modifier bits of the embedding boundary.
const (
	wireUp    = 1000
	wireDown  = 1001
	wireLeft  = 1002
	wireRight = 1003

	wireCtrl  = 1
	wireAlt   = 2
	wireShift = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		root        string
		scriptPath  string
		logPath     string
		showVersion bool
	)
	flag.StringVar(&root, "root", ".", "Editor root directory (where zeno.toml lives)")
	flag.StringVar(&root, "r", ".", "Editor root directory (shorthand)")
	flag.StringVar(&scriptPath, "script", "", "Lua script to run at startup")
	flag.StringVar(&logPath, "log", "", "Write diagnostics to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Zeno - embeddable modal editing core, terminal host\n\n")
		fmt.Fprintf(os.Stderr, "Usage: zeno [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: Ctrl+Q quits; everything else goes to the active mode.\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("zeno %s (%s)\n", version, commit)
		return 0
	}

	var opts []embed.Option
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		opts = append(opts, embed.WithLogOutput(f))
	}

	term, err := display.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer term.Close()
	opts = append(opts, embed.WithDisplay(term))

	h := embed.Create(root, opts...)
	if h == embed.InvalidHandle {
		term.Close()
		fmt.Fprintf(os.Stderr, "Error: cannot create session in %q\n", root)
		return 1
	}
	defer embed.Destroy(h)

	if err := openInitialBuffer(h, flag.Arg(0)); err != nil {
		term.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if scriptPath != "" {
		host := script.NewHost(h)
		err := host.RunFile(scriptPath)
		host.Close()
		if err != nil {
			term.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Mode changes in zeno.toml apply live. The callback only posts an
	// event; the session itself is touched on the event loop only.
	watcher, werr := config.Watch(root, func(cfg config.Config) {
		_ = term.Screen().PostEvent(newConfigEvent(cfg))
	})
	if werr == nil {
		defer watcher.Close()
	}

	return eventLoop(h, term)
}

// openInitialBuffer loads the named file, or an empty scratch buffer.
func openInitialBuffer(h embed.Handle, path string) error {
	if path == "" {
		embed.InitWithText(h, "scratch", "")
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	embed.InitWithText(h, filepath.Base(path), string(data))
	return nil
}

func eventLoop(h embed.Handle, term *display.Terminal) int {
	render(h, term)

	for {
		ev := term.Screen().PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return 0
			}
			raw, mods := wireKey(ev)
			embed.HandleKey(h, raw, mods)
			render(h, term)

		case *tcell.EventResize:
			term.Screen().Sync()
			render(h, term)

		case *configEvent:
			applyConfig(h, ev.cfg)
			render(h, term)

		case nil:
			return 0
		}
	}
}

func render(h embed.Handle, term *display.Terminal) {
	w, hgt := term.Screen().Size()
	embed.Display(h, 0, 0, float32(w), float32(hgt))
}

func applyConfig(h embed.Handle, cfg config.Config) {
	embed.SetMode(h, cfg.DefaultMode)
}

// wireKey converts a tcell key event to the boundary's raw code and
// modifier bitmask.
func wireKey(ev *tcell.EventKey) (raw, mods uint32) {
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= wireCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= wireAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= wireShift
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return wireUp, mods
	case tcell.KeyDown:
		return wireDown, mods
	case tcell.KeyLeft:
		return wireLeft, mods
	case tcell.KeyRight:
		return wireRight, mods
	case tcell.KeyEscape:
		return 0x1b, mods
	case tcell.KeyEnter:
		return '\r', mods
	case tcell.KeyTab:
		return '\t', mods
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return 0x7f, mods
	case tcell.KeyRune:
		return uint32(ev.Rune()), mods
	default:
		return uint32(ev.Rune()), mods
	}
}

// configEvent carries a reloaded configuration onto the event loop.
type configEvent struct {
	tcell.EventTime
	cfg config.Config
}

func newConfigEvent(cfg config.Config) *configEvent {
	ev := &configEvent{cfg: cfg}
	ev.SetEventNow()
	return ev
}
