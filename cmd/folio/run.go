package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/foliodesk/folio/internal/app"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/input"
	"github.com/foliodesk/folio/internal/server"
	"golang.org/x/term"
)

// flagOverrides collects the global CLI flags into a config override set.
func flagOverrides() config.Overrides {
	return config.Overrides{
		ASCIIOnly:    asciiOnly,
		BorderStyle:  borderStyle,
		HideClock:    hideClock,
		HideDock:     hideDock,
		NoAnimations: noAnimations,
		Username:     username,
		ThemeName:    themeName,
	}
}

// filterMouseMotion filters out redundant mouse motion events to reduce
// CPU usage. Only passes through mouse motion during a title-bar drag,
// or while the desktop is dimmed so movement can wake it.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	d, ok := model.(*app.Desktop)
	if !ok {
		return msg
	}

	if d.Drag != nil || d.Dimmed {
		return msg
	}

	return nil
}

func runLocal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("folio requires an interactive terminal")
	}

	// NO_COLOR and dumb terminals get the unthemed ASCII rendition.
	if p := colorprofile.Detect(os.Stdout, os.Environ()); p == colorprofile.Ascii || p == colorprofile.NoTTY {
		themeName = ""
		asciiOnly = true
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	overrides := flagOverrides()
	config.ApplyOverrides(overrides, userConfig)

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Printf("Warning: failed to close CPU profile file: %v", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	app.SetInputHandler(input.HandleInput)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		log.Printf("Configuration: %s", configPath)
	}

	desktop := app.NewDesktop(0, 0)

	p := tea.NewProgram(
		desktop,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	// Reload the config when the file changes on disk. CLI flags keep
	// their precedence across reloads.
	if configPath, err := config.GetConfigPath(); err == nil {
		stop, werr := config.Watch(configPath, func() {
			reloaded, lerr := config.LoadUserConfig()
			if lerr != nil {
				log.Printf("Warning: config reload failed: %v", lerr)
				return
			}
			config.ApplyOverrides(overrides, reloaded)
			p.Send(app.ConfigReloadedMsg{})
		})
		if werr != nil {
			log.Printf("Warning: config watch unavailable: %v", werr)
		} else {
			defer stop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()

	if debugMode {
		if d, ok := finalModel.(*app.Desktop); ok {
			for _, entry := range d.LogMessages {
				log.Printf("[%s] %s %s", entry.Time.Format("15:04:05.000"), entry.Level, entry.Message)
			}
		}
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	config.ApplyOverrides(flagOverrides(), nil)

	app.SetInputHandler(input.HandleInput)

	log.Printf("Starting folio SSH server on %s:%s", sshHost, sshPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Shutting down SSH server...")
		cancel()
	}()

	cfg := &server.SSHConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
	}
	if err := server.StartSSH(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

func runWebServer() error {
	config.ApplyOverrides(flagOverrides(), nil)

	app.SetInputHandler(input.HandleInput)

	log.Printf("Starting folio web server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Shutting down web server...")
		cancel()
	}()

	if err := server.StartWeb(ctx); err != nil {
		return fmt.Errorf("web server error: %w", err)
	}
	return nil
}
