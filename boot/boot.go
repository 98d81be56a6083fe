// Package boot brings the graphical runtime into a correct,
// hardware-appropriate state and runs the event loop. It is the
// process's startup sequence extracted from main into a testable
// package: every stage is ordered, platform-conditional work with a
// defined failure policy, and the seams in Options let tests run the
// whole sequence against synthetic boards and windows.
package boot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/roadhud/roadhud-go/certs"
	"github.com/roadhud/roadhud-go/config"
	"github.com/roadhud/roadhud-go/diag"
	"github.com/roadhud/roadhud-go/display"
	"github.com/roadhud/roadhud-go/events"
	"github.com/roadhud/roadhud-go/i18n"
	"github.com/roadhud/roadhud-go/metrics"
	"github.com/roadhud/roadhud-go/platform"
	"github.com/roadhud/roadhud-go/telemetry"
	"github.com/roadhud/roadhud-go/ui"
)

// Stage names used in diagnostics entries.
const (
	StagePlatform   = "platform"
	StageSurface    = "surface"
	StageGLSharing  = "gl-context-sharing"
	StageTrustStore = "trust-store"
	StageRuntime    = "runtime"
	StageI18n       = "i18n"
	StageWindow     = "window"
)

// Window is what the bootstrap needs from the window subsystem: the
// runtime's routing target plus the global event-filter role.
type Window interface {
	ui.Window
	events.Filter
}

// poster is implemented by windows that feed their own input into the
// runtime queue.
type poster interface {
	SetPoster(post func(ev *events.Event))
}

// Options configures a bootstrap run. Config and Log are required;
// everything else has production defaults and exists as a test seam.
type Options struct {
	Args    []string
	Config  *config.Config
	Log     *zap.SugaredLogger
	Version string

	// Board overrides hardware detection. Nil means detect, honoring
	// the config's board override first.
	Board *platform.Descriptor

	// CertBundle overrides the CA bundle path. Empty means the config
	// override or the well-known vendor path.
	CertBundle string

	// NewWindow constructs the main window. Nil means the real
	// dashboard window.
	NewWindow func(cfg *config.Config, board *platform.Descriptor, splash string) Window

	// Diag receives stage outcomes. Nil means a fresh recorder.
	Diag *diag.Recorder
}

// Run executes the bootstrap stages in order and then blocks in the
// event loop. The returned code is the loop's exit code and becomes the
// process exit status. An error is returned only for fatal-at-init
// conditions; every other failure is absorbed, recorded, and logged.
func Run(opts Options) (int, error) {
	cfg := opts.Config
	if cfg == nil {
		return 0, fmt.Errorf("boot: nil config")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	rec := opts.Diag
	if rec == nil {
		rec = diag.NewRecorder(log)
	}

	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve the board once; the descriptor is immutable for the
	// process lifetime. Resolution precedes the surface stage because
	// the surface defaults are themselves hardware-appropriate.
	board := opts.Board
	if board == nil {
		if cfg.Board != "" {
			b, err := platform.GetBoard(cfg.Board)
			if err != nil {
				return 0, fmt.Errorf("invalid board override: %w", err)
			}
			board = b
		} else {
			board = platform.Detect()
		}
	}
	rec.OK(StagePlatform, board.Board)

	// Surface defaults, before any window or GL surface exists.
	format := display.DesktopFormat()
	if board.Has(platform.CapSharedGLContext) {
		format = display.EmbeddedFormat()
	}
	display.SetDefaultFormat(format)
	rec.OK(StageSurface, format.Renderable.String())

	// GL context sharing, before the runtime is constructed; setting
	// it afterward has no effect.
	if board.Has(platform.CapSharedGLContext) {
		display.SetShareContexts(true)
		rec.OK(StageGLSharing, "enabled")
	} else {
		rec.Skipped(StageGLSharing, "not required by board")
	}

	// Trust-store override, before any network connection is
	// plausible. Never fatal: a bad bundle installs an empty store and
	// TLS handshakes fail later at the protocol layer, so the
	// degradation is recorded here where it is still attributable.
	if board.Has(platform.CapTrustStoreOverride) {
		bundle := opts.CertBundle
		if bundle == "" {
			bundle = cfg.CertBundle
		}
		if bundle == "" {
			bundle = certs.DefaultBundlePath
		}
		res := certs.InstallOverride(bundle)
		if res.Outcome == certs.OutcomeInstalled {
			rec.OK(StageTrustStore, fmt.Sprintf("%d certificates from %s", res.Certs, res.Path))
		} else {
			rec.Degraded(StageTrustStore, fmt.Sprintf("%s: %s", res.Outcome, res.Path))
			log.Warnw("trust store degraded; TLS connections will fail",
				"outcome", res.Outcome.String(),
				"bundle", res.Path,
				zap.Error(res.Err))
		}
	} else {
		rec.Skipped(StageTrustStore, "platform trust store in use")
	}

	// Application runtime. Failure here is fatal; there is no process
	// worth continuing without an event loop.
	app, err := ui.New(opts.Args)
	if err != nil {
		return 0, fmt.Errorf("failed to construct application runtime: %w", err)
	}
	rec.OK(StageRuntime, "")

	// Translations, before the window so its first paint is already
	// translated. Best effort: untranslated beats not booting.
	if tr, err := i18n.Load(cfg.Language, cfg.TranslationsDir); err != nil {
		log.Warnw("failed to load translation catalogue", zap.Error(err))
		rec.Degraded(StageI18n, err.Error())
	} else {
		app.InstallTranslator(tr)
		rec.OK(StageI18n, tr.Language())
	}

	// Main window: constructed, registered as the current main window,
	// and installed as a global event filter before the loop starts.
	newWindow := opts.NewWindow
	if newWindow == nil {
		newWindow = func(cfg *config.Config, board *platform.Descriptor, splash string) Window {
			return display.NewMainWindow(cfg, board, splash)
		}
	}
	win := newWindow(cfg, board, app.T("startup.connecting"))
	app.Windows().SetMain(win)
	app.InstallEventFilter(win)
	// Closing only requests termination. The window stays in the
	// registry until the dispatch loop has drained, so events queued
	// before the close are still routed.
	win.SetOnClosed(func() {
		app.Quit(0)
	})
	if p, ok := win.(poster); ok {
		p.SetPoster(app.Post)
	}
	rec.OK(StageWindow, win.Title())

	go uploadReport(cfg, board, rec, opts.Version, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)
	}()
	go func() {
		if _, ok := <-sigCh; ok {
			log.Infow("signal received, closing window")
			win.Close()
		}
	}()

	// The dispatch loop runs alongside the windowing backend's native
	// loop: Show blocks this goroutine until the window closes, which
	// quits the dispatch loop through the OnClosed hook above.
	execDone := make(chan int, 1)
	go func() {
		execDone <- app.Exec()
	}()
	win.Show()
	code := <-execDone
	app.Windows().Remove(win)
	return code, nil
}

// uploadReport posts the startup diagnostics. Strictly best effort.
func uploadReport(cfg *config.Config, board *platform.Descriptor, rec *diag.Recorder, version string, log *zap.SugaredLogger) {
	if cfg.TelemetryURL == "" {
		return
	}

	deviceID := cfg.DeviceID
	if deviceID == "" {
		id, err := metrics.DeviceID()
		if err != nil {
			log.Debugw("no device identity for telemetry", zap.Error(err))
			return
		}
		deviceID = id
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := telemetry.NewClient(cfg.TelemetryURL)
	if err := client.PostStartupReport(ctx, rec.Report(deviceID, board.Board, version)); err != nil {
		log.Debugw("startup report upload failed", zap.Error(err))
	}
}
