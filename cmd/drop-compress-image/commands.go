package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/logue/drop-compress-image/internal/config"
	"github.com/logue/drop-compress-image/internal/i18n"
	"github.com/logue/drop-compress-image/internal/locale"
	"github.com/logue/drop-compress-image/internal/logging"
	"github.com/logue/drop-compress-image/internal/notify"
	"github.com/logue/drop-compress-image/internal/platform"
)

type cli struct {
	deps

	logLevel string
	jsonLog  bool
	language string

	cfg    config.Config
	logger hclog.Logger
	bundle *i18n.Bundle
}

func newRootCmd(d deps) *cobra.Command {
	c := &cli{deps: d}

	root := &cobra.Command{
		Use:               "drop-compress-image",
		Short:             "Locale, download and notification tools for Drop Compress Image",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&c.jsonLog, "json-log", false, "Write logs as JSON")
	root.PersistentFlags().StringVar(&c.language, "lang", "", `Language preference, a locale code or "system"`)

	root.AddCommand(c.newLocaleCmd(), c.newDownloadCmd(), c.newNotifyCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if c.jsonLog {
		cfg.JSONLog = true
	}
	if c.language != "" {
		cfg.Language = c.language
	}
	c.cfg = cfg

	c.logger = logging.NewLogger("drop-compress-image", cfg.LogLevel, cfg.JSONLog, cmd.ErrOrStderr())

	bundle, err := i18n.LoadEmbedded(c.logger)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}
	c.bundle = bundle
	return nil
}

func (c *cli) translator() *i18n.Translator {
	return c.bundle.Translator(locale.ResolvePreference(c.cfg.Language))
}

func (c *cli) newLocaleCmd() *cobra.Command {
	var acceptLanguage string

	cmd := &cobra.Command{
		Use:   "locale [signal]",
		Short: "Resolve a locale signal to a supported locale",
		Long: `Resolve a raw locale signal (for example "zh-TW" or "fr_CA") to one of the
supported locales. Without a signal the host locale is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var signal string
			var resolved locale.Locale
			switch {
			case len(args) == 1:
				signal = args[0]
				resolved = locale.Resolve(signal)
			case acceptLanguage != "":
				signal = acceptLanguage
				resolved = locale.ResolveAcceptLanguage(signal)
			default:
				signal = locale.SystemSignal()
				resolved = locale.Resolve(signal)
			}
			c.logger.Debug("locale resolved", "signal", signal, "locale", resolved)

			fmt.Fprintln(cmd.OutOrStdout(), renderLocale(cmd.OutOrStdout(), signal, resolved.Info()))
			return nil
		},
	}

	cmd.Flags().StringVar(&acceptLanguage, "accept-language", "", "Resolve an HTTP Accept-Language header instead")
	return cmd
}

func (c *cli) newDownloadCmd() *cobra.Command {
	var (
		userAgent  string
		platformID string
		release    string
		all        bool
		open       bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Show the download link for a platform",
		Long: `Show the recommended download for the host, or for the client described by
--user-agent and --platform, with the alternative packages for that OS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var d platform.Descriptor
			if userAgent != "" || platformID != "" {
				var session platform.Session
				d = session.Detect(platform.Signals{UserAgent: userAgent, Platform: platformID})
			} else {
				d = c.host()
			}

			if release == "" {
				release = c.cfg.ReleaseVersion(version)
			}

			catalog := platform.DefaultCatalog().WithRelease(c.cfg.ReleaseBase, c.cfg.ArtifactPrefix)
			selector := platform.NewSelector(catalog, c.translator())
			primary := selector.SelectDownload(d, release)
			alternatives := selector.Alternatives(d, release)
			c.logger.Debug("download selected", "platform", d, "url", primary.URL)

			out := cmd.OutOrStdout()
			switch {
			case asJSON && all:
				if err := writeJSON(out, selector.Downloads(release)); err != nil {
					return err
				}
			case asJSON:
				if err := writeJSON(out, downloadView{Platform: d, Primary: primary, Alternatives: alternatives}); err != nil {
					return err
				}
			case all:
				fmt.Fprintln(out, renderTargets(out, selector.Downloads(release)))
			default:
				fmt.Fprintln(out, renderDownload(out, d, primary, alternatives, c.translator().T(i18n.KeyOtherPlatforms, nil)))
			}

			if open {
				if err := c.openURL(primary.URL); err != nil {
					return fmt.Errorf("open download: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userAgent, "user-agent", "", "Client user agent to detect the OS from")
	cmd.Flags().StringVar(&platformID, "platform", "", "Client platform string to detect the architecture from")
	cmd.Flags().StringVar(&release, "release", "", "Release version (default from DROP_VERSION or the build)")
	cmd.Flags().BoolVar(&all, "all", false, "List every published package")
	cmd.Flags().BoolVar(&open, "open", false, "Open the recommended download in the browser")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a card")
	return cmd
}

type downloadView struct {
	Platform     platform.Descriptor `json:"platform"`
	Primary      platform.Target     `json:"primary"`
	Alternatives []platform.Target   `json:"alternatives"`
}

func (c *cli) newNotifyCmd() *cobra.Command {
	var (
		title, body string
		grant       bool
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a desktop notification through the gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := notify.ParsePromptPolicy(c.cfg.NotifyPrompt)
			if err != nil {
				return err
			}

			tr := c.translator()
			if title == "" {
				title = tr.T(i18n.KeyCompleteTitle, nil)
			}

			gateway := notify.NewGateway(c.channel(c.logger, grant),
				notify.WithPromptPolicy(policy),
				notify.WithMessages(tr),
				notify.WithLogger(c.logger),
			)
			res := gateway.Notify(cmd.Context(), title, body, "")

			fmt.Fprintln(cmd.OutOrStdout(), renderResult(cmd.OutOrStdout(), res))
			if res.Outcome == notify.OutcomeFailed {
				return fmt.Errorf("notification %s failed: %w", res.ID, res.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Notification title (default: the localized completion title)")
	cmd.Flags().StringVar(&body, "body", "", "Notification body")
	cmd.Flags().BoolVar(&grant, "grant", false, "Allow notifications and remember the answer, overriding an earlier denial")
	if err := cmd.MarkFlagRequired("body"); err != nil {
		panic(err)
	}
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
