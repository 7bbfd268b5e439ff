package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/cli"
	"github.com/ytget/launchgrid/internal/config"
	"github.com/ytget/launchgrid/internal/launcher"
	"github.com/ytget/launchgrid/internal/logging"
	"github.com/ytget/launchgrid/internal/platform"
	"github.com/ytget/launchgrid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.ytget.launchgrid"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "launchgrid: %v\n", err)
		return cli.ExitConfigError
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "launchgrid: %v, logging to stderr\n", err)
		logger = logging.NewDefault()
	}
	defer logger.Sync()

	lock, err := platform.AcquireLock(cfg.Storage.LockPath)
	if err != nil {
		if errors.Is(err, platform.ErrLocked) {
			logger.Warn("launcher already running", zap.String("lock", cfg.Storage.LockPath))
			return cli.ExitBusyError
		}
		logger.Error("failed to take instance lock", zap.Error(err))
		return cli.ExitGeneralError
	}
	defer lock.Unlock()

	logger.Info("launchgrid starting",
		zap.String("version", version),
		zap.Strings("roots", cfg.Discovery.Roots),
		zap.Int("page_size", cfg.PageSize()))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLaunchpadTheme())
	myApp.SetIcon(ui.Icon())

	myWindow := myApp.NewWindow("Launchgrid")

	svc := launcher.NewFromConfig(cfg, logger, launcher.WithDispatch(fyne.Do))
	ui.NewRootUI(myWindow, myApp, svc, ui.Options{
		Columns:            cfg.Grid.Columns,
		DefaultThresholdMS: cfg.Hover.ThresholdMS,
		Version:            version,
		Logger:             logger.Named("ui"),
	})

	ctx, cancel := context.WithCancel(context.Background())
	myApp.Lifecycle().SetOnStopped(func() {
		cancel()
		svc.Close()
	})
	go func() {
		if err := svc.Start(ctx); err != nil && !errors.Is(err, launcher.ErrClosed) {
			logger.Error("failed to start launcher", zap.Error(err))
		}
	}()

	myWindow.ShowAndRun()
	cancel()
	svc.Close()
	return cli.ExitSuccess
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	outputs := []string{"stderr"}
	if cfg.Logging.File != "" {
		if err := platform.CreateDirectoryIfNotExists(filepath.Dir(cfg.Logging.File)); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		outputs = append(outputs, cfg.Logging.File)
	}
	return logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: outputs,
	})
}
