// ABOUTME: Entry point for the visionboard goal-picture app
// ABOUTME: Parses CLI flags, wires the Gemini pipeline and starts the TUI or streaming mode
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/visionboard/visionboard-go/internal/app"
	"github.com/visionboard/visionboard-go/internal/config"
	"github.com/visionboard/visionboard-go/internal/download"
	"github.com/visionboard/visionboard-go/internal/gemini"
	"github.com/visionboard/visionboard-go/internal/speech"
	"github.com/visionboard/visionboard-go/internal/story"
	"github.com/visionboard/visionboard-go/internal/ui"
	"github.com/visionboard/visionboard-go/internal/version"
	"github.com/visionboard/visionboard-go/pkg/audio/output"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	logFile    = flag.String("log-file", "visionboard.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, run the whole pipeline with streaming logs")
	streamLogs = flag.Bool("stream-logs", false, "Alias for -no-tui")
	outDir     = flag.String("out-dir", "", "Directory for downloaded WAV files (overrides config)")
	fileName   = flag.String("file-name", "", "Downloaded WAV file name (overrides config)")
	volume     = flag.Int("volume", -1, "Playback volume 0-100 (overrides config)")
	noAudio    = flag.Bool("no-audio", false, "Do not open an audio device")
	serveAddr  = flag.String("serve", "", "After -no-tui download, serve the WAV on this address")
)

func main() {
	flag.Parse()

	// Determine if we should use TUI or streaming logs
	useTUI := !(*noTUI || *streamLogs)

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		// Streaming logs mode: log to both stdout and file
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	log.Printf("Starting %s", version.String())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	session, err := newSession(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	if useTUI {
		runTUI(ctx, session, cfg)
	} else {
		if err := runPipeline(ctx, session); err != nil {
			log.Fatalf("Pipeline failed: %v", err)
		}
	}

	log.Printf("Stopped")
}

// loadConfig applies flag overrides on top of the file and environment
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *fileName != "" {
		cfg.Output.FileName = *fileName
	}
	if *volume >= 0 {
		cfg.Output.Volume = *volume
	}
	if *noAudio {
		cfg.Output.NoAudio = true
	}
	return cfg, cfg.Validate()
}

// newSession builds the shared collaborators; one audio output serves the whole process
func newSession(ctx context.Context, cfg *config.Config) (*app.Session, error) {
	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:  cfg.API.Key,
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	})
	if err != nil {
		return nil, err
	}

	saver, err := download.NewSaver(cfg.Output.Dir)
	if err != nil {
		return nil, err
	}

	var out output.Output
	if cfg.Output.NoAudio {
		log.Printf("Audio output disabled")
		out = output.NewDiscard()
	} else {
		o := output.NewOto()
		o.SetVolume(cfg.Output.Volume)
		out = o
	}

	return app.New(app.Config{
		Stories:  story.NewGenerator(client, cfg.API.StoryModel),
		Speech:   speech.NewSynthesizer(client, cfg.API.SpeechModel, cfg.API.Voice),
		Output:   out,
		Saver:    saver,
		FileName: cfg.Output.FileName,
	}, cfg.Form), nil
}

// runTUI drives the session from TUI actions until the user or OS asks to quit
func runTUI(ctx context.Context, session *app.Session, cfg *config.Config) {
	controls := ui.NewControls()
	tuiProg, err := ui.Run(cfg.Form, controls)
	if err != nil {
		log.Fatalf("Failed to start TUI: %v", err)
	}

	session.SetListener(func(st app.State) {
		tuiProg.Send(ui.StateMsg{State: st})
	})

	go handleActions(ctx, session, controls)

	done := make(chan struct{})
	go func() {
		if _, err := tuiProg.Run(); err != nil {
			log.Printf("TUI error: %v", err)
		}
		close(done)
	}()

	// Wait for quit signal from TUI or OS
	select {
	case <-controls.Quit:
		log.Printf("Received quit signal from TUI")
	case <-done:
		return
	case <-ctx.Done():
		log.Printf("Shutdown signal received")
		tuiProg.Quit()
	}

	// Let bubbletea leave the alt screen and restore the terminal
	<-done
}

// handleActions processes TUI requests; each runs in its own goroutine so the UI stays live
func handleActions(ctx context.Context, session *app.Session, controls *ui.Controls) {
	for {
		select {
		case msg := <-controls.Actions:
			switch msg.Action {
			case ui.ActionGenerateStory:
				session.SetForm(msg.Form)
				go session.GenerateStory(ctx)
			case ui.ActionGenerateAudio:
				go session.GenerateAudio(ctx)
			case ui.ActionReplay:
				go session.Replay()
			case ui.ActionDownload:
				go session.Download()
			}
		case <-ctx.Done():
			return
		}
	}
}

// runPipeline generates, plays and saves in one pass, then optionally serves the file
func runPipeline(ctx context.Context, session *app.Session) error {
	if err := session.GenerateStory(ctx); err != nil {
		return err
	}
	fmt.Println(session.Snapshot().Story)

	pb, err := session.GenerateAudio(ctx)
	if err != nil {
		return err
	}
	if pb != nil {
		select {
		case <-pb.Done():
			log.Printf("Playback finished")
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	path, err := session.Download()
	if err != nil {
		return err
	}
	log.Printf("Saved %s", path)

	if *serveAddr == "" {
		return nil
	}
	return serveFile(ctx, path)
}

// serveFile offers the saved WAV for download until ctx is cancelled
func serveFile(ctx context.Context, path string) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	srv := &http.Server{
		Addr:              *serveAddr,
		Handler:           download.Handler(blob, path),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Serving %s on http://%s/", path, *serveAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
