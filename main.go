package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/checklist"
	"github.com/creodex/creo-checklist/internal/config"
	"github.com/creodex/creo-checklist/internal/logging"
	"github.com/creodex/creo-checklist/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.creodex.creo-checklist"
	AppName = "Creo Checklist"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	catalogFlag := flag.String("catalog", "", "catalog file (overrides the saved setting)")
	flag.Parse()

	logger := logging.Must(logging.Options{Verbose: *verbose, Development: true})
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	catalogPath := settings.GetCatalogPath()
	if *catalogFlag != "" {
		catalogPath = *catalogFlag
	}

	// Without a catalog there is nothing to show
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		logger.Error("failed to load catalog", zap.String("path", catalogPath), zap.Error(err))
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("catalog loaded",
		zap.String("path", cat.Path()),
		zap.Int("entries", cat.Len()))

	store := checklist.NewStore(cat.IDs())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, cat, store, logger)
	defer root.Close()

	myWindow.ShowAndRun()
}
