package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/interior-hub/internal/catalog"
	"github.com/ytget/interior-hub/internal/config"
	"github.com/ytget/interior-hub/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.interior-hub"
	AppName = "Interior Hub"

	WindowWidth  = 1024
	WindowHeight = 720
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	envErr := settings.ApplyEnv()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: settings.GetLogLevel(),
	})))
	slog.Info("starting", "app", AppName, "version", version)
	if envErr != nil {
		slog.Warn("environment overrides ignored", "error", envErr)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI over the built-in sample catalog
	ui.NewRootUI(myWindow, myApp, settings, catalog.Default())

	// Show and run
	myWindow.ShowAndRun()
}
