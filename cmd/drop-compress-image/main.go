package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/hashicorp/go-hclog"

	"github.com/logue/drop-compress-image/internal/config"
	"github.com/logue/drop-compress-image/internal/notify"
	"github.com/logue/drop-compress-image/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// deps are the host facing pieces the commands use, swapped in tests.
type deps struct {
	loadConfig func() (config.Config, error)
	host       func() platform.Descriptor
	openURL    func(string) error
	channel    func(logger hclog.Logger, grant bool) notify.Channel
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		host:       platform.Host,
		openURL:    platform.OpenURL,
		channel:    fyneChannel,
	}
}

// fyneChannel sends through a headless Fyne app sharing the desktop app's
// preferences.
func fyneChannel(logger hclog.Logger, grant bool) notify.Channel {
	a := app.NewWithID(config.AppID)
	logger.Debug("using fyne notification channel", "app_id", config.AppID, "grant", grant)
	return newCLIChannel(a, grant)
}

// newCLIChannel reads the desktop app's remembered permission without
// changing it. A stored denial holds. With grant the permission is granted
// and saved, as if the user had allowed it in the desktop prompt.
func newCLIChannel(a fyne.App, grant bool) notify.Channel {
	settings := config.NewSettings(a)
	if !grant {
		return notify.NewFyneChannel(a, notify.ReadOnly(settings), nil)
	}
	return notify.NewFyneChannel(a, settings, func(context.Context) (notify.Permission, error) {
		return notify.PermissionGranted, nil
	})
}
