package notify

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/logue/drop-compress-image/internal/i18n"
)

// PermissionStore persists the user's answer to the permission prompt.
// config.Settings satisfies it.
type PermissionStore interface {
	GetNotificationPermission() string
	SetNotificationPermission(permission string)
}

// ReadOnly wraps store so that answers are read but never written back.
func ReadOnly(store PermissionStore) PermissionStore {
	if store == nil {
		return nil
	}
	return readOnlyStore{store}
}

type readOnlyStore struct {
	PermissionStore
}

func (readOnlyStore) SetNotificationPermission(string) {}

// Prompter asks the user whether notifications may be shown.
type Prompter func(ctx context.Context) (Permission, error)

// FyneChannel delivers notifications through a Fyne app. Desktop hosts have
// no OS level permission API, so the permission is asked for once with
// Prompter and remembered in the PermissionStore.
type FyneChannel struct {
	app    fyne.App
	store  PermissionStore
	prompt Prompter
}

// NewFyneChannel creates a channel sending through app. A nil store makes
// every query ungranted. A nil prompt grants on request unless the store
// holds a denial, which stays final.
func NewFyneChannel(app fyne.App, store PermissionStore, prompt Prompter) *FyneChannel {
	return &FyneChannel{app: app, store: store, prompt: prompt}
}

// PermissionGranted reports the remembered permission.
func (c *FyneChannel) PermissionGranted(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.store == nil {
		return false, nil
	}
	return Permission(c.store.GetNotificationPermission()) == PermissionGranted, nil
}

// RequestPermission prompts the user and remembers a definite answer.
func (c *FyneChannel) RequestPermission(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return PermissionUnknown, err
	}
	permission := PermissionGranted
	if c.prompt == nil {
		if c.stored() == PermissionDenied {
			return PermissionDenied, nil
		}
	} else {
		var err error
		permission, err = c.prompt(ctx)
		if err != nil {
			return PermissionUnknown, err
		}
	}
	if c.store != nil && permission != PermissionUnknown {
		c.store.SetNotificationPermission(string(permission))
	}
	return permission, nil
}

func (c *FyneChannel) stored() Permission {
	if c.store == nil {
		return PermissionUnknown
	}
	return Permission(c.store.GetNotificationPermission())
}

// Send shows n with the app's notification API. The app icon is used; Fyne
// has no per-notification icon.
func (c *FyneChannel) Send(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.app == nil {
		return errors.New("no fyne app")
	}
	c.app.SendNotification(&fyne.Notification{
		Title:   n.Title,
		Content: n.Body,
	})
	return nil
}

// DialogPrompter returns a Prompter showing a confirm dialog on window. The
// dialog text is rendered with messages on every prompt, so a language change
// applies to the next one. It blocks until the user answers or ctx is done.
func DialogPrompter(window fyne.Window, messages Messages) Prompter {
	if messages == nil {
		messages = idMessages{}
	}
	return func(ctx context.Context) (Permission, error) {
		if err := ctx.Err(); err != nil {
			return PermissionUnknown, err
		}

		title := messages.T(i18n.KeyPermissionTitle, nil)
		message := messages.T(i18n.KeyPermissionMessage, nil)

		answer := make(chan Permission, 1)
		fyne.Do(func() {
			dialog.ShowConfirm(title, message, func(ok bool) {
				if ok {
					answer <- PermissionGranted
				} else {
					answer <- PermissionDenied
				}
			}, window)
		})

		select {
		case permission := <-answer:
			return permission, nil
		case <-ctx.Done():
			return PermissionUnknown, ctx.Err()
		}
	}
}
