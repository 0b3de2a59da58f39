package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/logging"
	"github.com/ayoisaiah/pomo/internal/notify"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/tray"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	envUpdateNotifier = "POMO_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envPomoNoColor    = "POMO_NO_COLOR"
)

// checkForUpdates alerts the user if there is
// an updated version of pomo from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/pomo/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/pomo/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of pomo is available: %s at %s", version, resp.Request.URL.String())
	}
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	return config.New(
		config.WithPaths(pathutil.ConfigFilePath(), pathutil.LogFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// defaultAction runs the interactive timer until the user quits, then prints
// a summary of the run.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.System.LogPath, cfg.LogLevel())
	if err != nil {
		return err
	}

	defer logFile.Close()

	if cfg.System.NoColor {
		disableStyling()
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug("config loaded", slog.String("config", logging.Dump(cfg)))

	core := session.New()

	err = core.ApplySettings(cfg.WorkSeconds(), cfg.BreakSeconds())
	if err != nil {
		return err
	}

	core.Subscribe(notify.New(cfg, cfg.Display.Icon))

	t := timer.New(core, timer.Options{
		DarkTheme: cfg.Display.DarkTheme,
	})

	p := tea.NewProgram(t, tea.WithAltScreen(), tea.WithContext(ctx.Context))

	if cfg.Display.Tray {
		tr := tray.New(cfg.Display.Icon)
		core.Subscribe(tr)
		tr.Start(ctx.Context, p)

		defer tr.Stop()
	}

	slog.Info(
		"timer starting",
		slog.Int("work", core.WorkDuration()),
		slog.Int("break", core.BreakDuration()),
		slog.Bool("tray", cfg.Display.Tray),
	)

	if _, err = p.Run(); err != nil {
		return err
	}

	if len(core.Laps()) == 0 && t.Completed(session.Work) == 0 &&
		t.Completed(session.Break) == 0 {
		return nil
	}

	ui.PrintSummary(ui.Summary{
		Laps: core.Laps(),
		Completed: map[session.Phase]int{
			session.Work:  t.Completed(session.Work),
			session.Break: t.Completed(session.Break),
		},
		Durations: map[session.Phase]int{
			session.Work:  core.WorkDuration(),
			session.Break: core.BreakDuration(),
		},
	}, config.Stdout)

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/pomo/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomo")

	return nil
}
