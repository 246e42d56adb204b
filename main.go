package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/rm-browser/internal/browse"
	"github.com/ytget/rm-browser/internal/config"
	"github.com/ytget/rm-browser/internal/directory"
	"github.com/ytget/rm-browser/internal/favorites"
	"github.com/ytget/rm-browser/internal/logging"
	"github.com/ytget/rm-browser/internal/platform"
	"github.com/ytget/rm-browser/internal/storage"
	"github.com/ytget/rm-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName = "Character Browser"

	WindowWidth  = 1000
	WindowHeight = 720
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewConsole(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(platform.AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Favorites live in SQLite unless configured for app preferences
	blobs, closeBlobs, err := openBlobStore(cfg, myApp)
	if err != nil {
		logger.Fatal("failed to open favorites storage", zap.Error(err))
	}
	defer closeBlobs()

	favs := favorites.NewStore(logger, blobs, cfg.Storage.FavoritesKey)
	favs.Load()

	client, err := directory.NewClient(cfg.API.BaseURL, directory.Options{
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create directory client", zap.Error(err))
	}

	coord := browse.NewCoordinator(logger, client, favs)
	defer coord.Close()

	rootUI := ui.NewRootUI(myWindow, myApp, coord, logger)
	defer rootUI.Close()

	coord.Start()

	myWindow.ShowAndRun()
}

// openBlobStore selects the favorites backend from configuration
func openBlobStore(cfg config.Config, a fyne.App) (storage.BlobStore, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverPreferences {
		return storage.NewPreferencesStore(a.Preferences()), func() {}, nil
	}

	path, err := platform.ResolveFavoritesDBPath(cfg.Storage.Path, platform.AppID)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}
