// Package bootstrap wires the application together: configuration, logging,
// the persistent store, the auth gate and the three content managers.
package bootstrap

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appServices "github.com/okdev/milton/internal/app/services"
	appViews "github.com/okdev/milton/internal/app/views"
	"github.com/okdev/milton/internal/config"
	"github.com/okdev/milton/internal/notify"
	"github.com/okdev/milton/internal/pkg/logger"
	"github.com/okdev/milton/internal/storage"
)

// DefaultConfigPath is used when no config path is supplied.
const DefaultConfigPath = "configs/config.yaml"

// App holds the wired application dependencies.
type App struct {
	Config   *config.Config
	Store    *storage.Store
	Logger   zerolog.Logger
	Notifier notify.Notifier

	Auth     appServices.AuthService
	Notices  appServices.NoticeService
	Programs appServices.ProgramService
	Faculty  appServices.FacultyService
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// New builds a ready App from the config at configPath. Confirm guards the
// managers' delete operations; nil confirms unconditionally.
func New(configPath string, notifier notify.Notifier, confirm appServices.ConfirmFunc) (*App, error) {
	cfg, lgr, err := LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, err
	}

	lgr.Info().Str("path", cfg.Storage.Path).Msg("Opening content store")
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open content store")
		return nil, err
	}

	if notifier == nil {
		notifier = notify.NewLogNotifier()
	}

	return &App{
		Config:   cfg,
		Store:    store,
		Logger:   lgr,
		Notifier: notifier,
		Auth:     appServices.NewAuthService(store, notifier),
		Notices:  appServices.NewNoticeService(store, notifier, confirm),
		Programs: appServices.NewProgramService(store, notifier, confirm),
		Faculty:  appServices.NewFacultyService(store, notifier, confirm),
	}, nil
}

// NoticeBoard builds a fresh read view over the stored notices.
func (a *App) NoticeBoard() *appViews.NoticeBoard {
	return appViews.NewNoticeBoard(a.Store)
}

// FeaturedPrograms builds a fresh read view over the stored programs.
func (a *App) FeaturedPrograms() *appViews.FeaturedPrograms {
	return appViews.NewFeaturedPrograms(a.Store)
}

// FacultySection builds a fresh read view over the stored roster.
func (a *App) FacultySection() *appViews.FacultySection {
	return appViews.NewFacultySection(a.Store)
}

// Close releases the store.
func (a *App) Close() error {
	a.Logger.Info().Msg("Closing content store")
	return a.Store.Close()
}
