package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deckplay/audio"
	"github.com/lixenwraith/deckplay/config"
	"github.com/lixenwraith/deckplay/deck"
	"github.com/lixenwraith/deckplay/export"
	"github.com/lixenwraith/deckplay/logger"
	"github.com/lixenwraith/deckplay/modes"
	"github.com/lixenwraith/deckplay/present"
	"github.com/lixenwraith/deckplay/render"
	"github.com/lixenwraith/deckplay/server"
	"github.com/lixenwraith/deckplay/store"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var (
	deckFlag       = flag.String("deck", "", "Deck file (YAML); uses the embedded course when empty")
	exportFlag     = flag.String("export", "", "Write the deck as a standalone HTML file and exit")
	listenFlag     = flag.String("listen", "", "Serve the deck to browsers on this address (e.g. :8080)")
	configFlag     = flag.String("config", "", "Config file (YAML)")
	progressDBFlag = flag.String("progress-db", "", "SQLite file for quiz attempts and resume bookmarks")
	resumeFlag     = flag.Bool("resume", false, "Start from the bookmarked slide")
	startFlag      = flag.Int("start", 0, "Start from this slide (1-based)")
	muteFlag       = flag.Bool("mute", false, "Start with audio muted")
	colorFlag      = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag      = flag.Bool("debug", false, "Write debug logs to deckplay.log")
	versionFlag    = flag.Bool("version", false, "Print version and exit")
)

// crash restores the terminal before reporting a panic, so the trace
// lands on a readable screen instead of a raw-mode one.
func crash(screen tcell.Screen, r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\x1b[31mDECKPLAY CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

func main() {
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			crash(screen, r)
		}
	}()

	flag.Parse()

	if *versionFlag {
		fmt.Println("deckplay", version)
		return
	}

	// Resolve configuration: file first, explicit flags on top
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	mergeFlags(cfg)

	log, closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log.Info("deckplay %s starting", version)

	// Load the deck
	var d *deck.Deck
	if cfg.DeckPath != "" {
		d, err = deck.Load(cfg.DeckPath)
	} else {
		d, err = deck.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load deck: %v\n", err)
		os.Exit(1)
	}
	log.Info("Loaded deck %q: %d slides, %d quiz items", d.Title, d.SlideCount(), d.QuizItemCount())

	// Export mode writes the HTML document and exits without touching
	// the terminal
	if *exportFlag != "" {
		if err := export.WriteFile(*exportFlag, d); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to export deck: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d slides to %s\n", d.SlideCount(), *exportFlag)
		return
	}

	ctrl := present.New(d)

	// Optional progress store
	var st *store.Store
	if cfg.Progress.Database != "" {
		st, err = store.Open(cfg.Progress.Database, d.Title, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open progress store: %v\n", err)
			os.Exit(1)
		}
		defer st.Close()
	}

	// Starting slide: an explicit -start wins over the resume bookmark.
	// Both go through GoTo, which ignores out-of-range targets.
	if *startFlag > 0 {
		ctrl.GoTo(*startFlag - 1)
	} else if cfg.Resume && st != nil {
		slide, found, err := st.LastSlide()
		if err != nil {
			log.Info("Failed to read bookmark: %v", err)
		} else if found {
			ctrl.GoTo(slide)
			log.Info("Resumed at slide %d", ctrl.Index()+1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional sync server, started before the terminal goes raw so a
	// bad address fails with a readable message
	var srv *server.Server
	if cfg.Server.Listen != "" {
		srv, err = server.New(d, log)
		if err == nil {
			err = srv.Start(ctx, cfg.Server.Listen)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start sync server: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Browsers can follow at http://%s\n", srv.Addr())
	}

	// Initialize the terminal
	screen, err = tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents)

	palette := render.DetectPalette(cfg.Color)

	// Audio is best effort; the presentation runs fine silent
	player, err := audio.NewEngine(cfg.Mute)
	if err != nil {
		log.Info("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	width, height := screen.Size()
	session := modes.NewSession(ctrl, player, width, height)
	inputHandler := modes.NewInputHandler(session)
	orchestrator := render.NewOrchestrator(session, palette)

	// Input polling feeds the single event loop below. All controller
	// mutation happens on this loop.
	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(screen, r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	// Remote navigation requests; a nil channel never fires
	var remoteGoto <-chan int
	if srv != nil {
		remoteGoto = srv.Goto()
		srv.Publish(server.Snapshot(ctrl))
	}

	lastIndex := ctrl.Index()
	lastRevealed := ctrl.RevealedCount()
	journaled := make(map[string]bool)

	orchestrator.Draw(screen)

	for {
		select {
		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				finish(log, st, srv)
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case n := <-remoteGoto:
			inputHandler.HandleGoto(n)
		}

		stateChanged := false
		if ctrl.Index() != lastIndex {
			lastIndex = ctrl.Index()
			stateChanged = true
			if st != nil {
				if err := st.SaveBookmark(lastIndex); err != nil {
					log.Info("Failed to save bookmark: %v", err)
				}
			}
		}
		if ctrl.RevealedCount() != lastRevealed {
			lastRevealed = ctrl.RevealedCount()
			stateChanged = true
			if st != nil {
				journalAnswers(st, ctrl, journaled, log)
			}
		}
		if srv != nil && stateChanged {
			srv.Publish(server.Snapshot(ctrl))
		}

		orchestrator.Draw(screen)
	}
}

// journalAnswers records attempts for quiz items revealed since the
// last call. Items revealed without a chosen option are skipped; there
// is no answer to judge.
func journalAnswers(st *store.Store, ctrl *present.Controller, journaled map[string]bool, log *logger.Logger) {
	for _, id := range ctrl.RevealedIDs() {
		if journaled[id] {
			continue
		}
		journaled[id] = true

		choice, ok := ctrl.Choice(id)
		if !ok {
			continue
		}
		item, slide, found := ctrl.Deck().Item(id)
		if !found {
			continue
		}
		if err := st.RecordAttempt(slide, id, choice, choice == item.Correct); err != nil {
			log.Info("Failed to record attempt: %v", err)
		}
	}
}

// finish logs the session summary and stops the sync server.
func finish(log *logger.Logger, st *store.Store, srv *server.Server) {
	if st != nil {
		if attempts, err := st.Attempts(); err == nil {
			correct := 0
			for _, a := range attempts {
				if a.Correct {
					correct++
				}
			}
			log.Info("Session ended: %d attempts journaled, %d correct", len(attempts), correct)
		}
	}

	if srv != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Info("Server shutdown: %v", err)
		}
	}
}
