package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
	"github.com/vovakirdan/pixel-jumper/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.jumper/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Jumper tunes every game played over SSH.
	Jumper config.JumperConfig

	// Logger receives server and session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.jumper/runs.db",
		IdleTimeout: 30 * time.Minute,
		Jumper:      config.DefaultJumperConfig(),
	}
}

// SSHServer wraps a Wish SSH server that serves a jumper session per
// connection.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	sessions *SessionRegistry
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "jumper-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil // Continue without storage
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		logger:   logger,
		sessions: NewSessionRegistry(),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".jumper", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(SessionOptions{
		Store:    s.store,
		Runtime:  cfg,
		Jumper:   s.config.Jumper,
		Username: sshSession.User(),
		Logger:   s.logger.With("user", sshSession.User()),
		Online:   s.sessions.Count,
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware tracks and logs SSH sessions.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		remote := sshSession.RemoteAddr().String()
		id := s.sessions.Register(sshSession.User(), remote, start)

		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", remote,
			"online", s.sessions.Count(),
		)
		next(sshSession)

		s.sessions.Unregister(id)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", remote,
			"duration", time.Since(start).Round(time.Second),
			"online", s.sessions.Count(),
		)
	}
}

// Sessions returns the players currently connected.
func (s *SSHServer) Sessions() []PlayerSession {
	return s.sessions.List()
}

// ListenAndServe starts the SSH server and blocks until an interrupt or
// a listener error.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		if s.store != nil {
			s.store.Close()
		}
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store    *storage.Store
	Runtime  core.RuntimeConfig
	Jumper   config.JumperConfig
	Username string
	Logger   *log.Logger
	Online   func() int // Connected players, shown in the menu; may be nil
}

type sessionScreen uint8

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRecords
)

// SessionModel manages the full session flow: menu -> game or records -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	records  RecordsModel
	errMsg   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "jumper"})
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Store, opts.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. The menu's own quit
// command is dropped when it hands over to another screen.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRecords():
		m.records = NewRecordsModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.screen = screenRecords
		return m, m.records.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().PackID)
	}

	return m, cmd
}

// startGame builds a game for the pack and switches to it.
func (m SessionModel) startGame(packID string) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	pack, err := registry.Create(packID)
	var game *jumper.Game
	if err == nil {
		game, err = jumper.NewGame(pack, m.opts.Jumper, jumper.Options{Seed: m.opts.Runtime.Seed})
	}
	if err != nil {
		m.opts.Logger.Error("cannot start pack", "pack", packID, "error", err)
		m.errMsg = err.Error()
		m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime)
		return m, nil
	}

	m.opts.Logger.Info("pack started", "pack", packID)
	gm := NewModel(game, m.opts.Store, m.opts.Runtime, ModelOptions{
		Player: m.opts.Username,
		Hold:   m.opts.Jumper.Input.Hold(),
		Logger: m.opts.Logger,
	})
	m.game = &gm
	m.screen = screenGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRecords handles updates when on the records screen.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.records.Update(msg)
	if recordsModel, ok := newModel.(RecordsModel); ok {
		m.records = recordsModel
	}

	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.records.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRecords:
		return m.records.View()
	}

	view := m.menu.View()
	if m.opts.Online != nil {
		view += centerText(menuDimStyle.Render(fmt.Sprintf("%d online", m.opts.Online())), m.opts.Runtime.ScreenW) + "\n"
	}
	if m.errMsg != "" {
		view += "\n" + centerText("error: "+m.errMsg, m.opts.Runtime.ScreenW)
	}
	return view
}
