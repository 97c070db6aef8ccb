package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/logue/drop-compress-image/internal/config"
	"github.com/logue/drop-compress-image/internal/i18n"
	"github.com/logue/drop-compress-image/internal/logging"
	"github.com/logue/drop-compress-image/internal/notify"
	"github.com/logue/drop-compress-image/internal/platform"
	"github.com/logue/drop-compress-image/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "Drop Compress Image"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}

	logger := logging.NewLogger("drop-compress-image", cfg.LogLevel, cfg.JSONLog, nil)
	logger.Info("starting", "version", version)

	policy, err := notify.ParsePromptPolicy(cfg.NotifyPrompt)
	if err != nil {
		logger.Warn("invalid notification prompt policy, using default", "error", err)
		policy = notify.PromptEveryAttempt
	}

	bundle, err := i18n.LoadEmbedded(logger)
	if err != nil {
		logger.Error("failed to load messages", "error", err)
		os.Exit(1)
	}

	myApp := app.NewWithID(config.AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	if cfg.NotifyPrompt == config.DefaultNotificationPrompt {
		// No explicit environment override, the settings dialog decides.
		if p, err := notify.ParsePromptPolicy(settings.GetNotificationPrompt()); err == nil {
			policy = p
		}
	}

	preference := cfg.Language
	if preference == "" {
		preference = settings.GetLanguage()
	}
	localization := ui.NewLocalization(bundle)
	localization.SetLanguage(preference)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gateway := notify.NewGateway(
		notify.NewFyneChannel(myApp, settings, notify.DialogPrompter(myWindow, localization)),
		notify.WithPromptPolicy(policy),
		notify.WithMessages(localization),
		notify.WithLogger(logger),
	)

	catalog := platform.DefaultCatalog().WithRelease(cfg.ReleaseBase, cfg.ArtifactPrefix)

	ui.NewRootUI(myWindow, myApp, bundle, ui.Options{
		Catalog:      catalog,
		Version:      cfg.ReleaseVersion(version),
		Host:         platform.Host(),
		Language:     cfg.Language,
		Localization: localization,
		Gateway:      gateway,
		Dispatcher:   notify.NewDispatcher(ctx, gateway),
		Logger:       logger,
	})

	myWindow.ShowAndRun()
}
