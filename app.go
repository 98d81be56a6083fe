package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/roadhud/roadhud-go/boot"
	"github.com/roadhud/roadhud-go/config"
	"github.com/roadhud/roadhud-go/logging"
	"github.com/roadhud/roadhud-go/metrics"
	"github.com/roadhud/roadhud-go/platform"
)

const Version = "0.9.0"

var (
	// Command-line flags
	board        = flag.String("board", "", "Board identifier (e.g. hud-one, virtual)")
	listBoards   = flag.Bool("list-boards", false, "List known boards")
	language     = flag.String("lang", "", "UI language tag (e.g. fr, zh-TW); default: system locale")
	translations = flag.String("translations", "", "Directory containing translation catalogues")
	certBundle   = flag.String("cert-bundle", "", "CA bundle path for the vendor trust store")
	deviceID     = flag.String("device-id", "", "Device ID reported in telemetry")
	netInterface = flag.String("interface", "", "Network interface for device identity (e.g. eth0)")
	telemetryURL = flag.String("telemetry-url", "", "Base URL for startup telemetry")
	width        = flag.Int("width", 0, "Window width (overrides board default)")
	height       = flag.Int("height", 0, "Window height (overrides board default)")
	fullscreen   = flag.Bool("fullscreen", false, "Enable fullscreen mode")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	showVersion  = flag.Bool("version", false, "Show version information")
	saveConfig   = flag.Bool("save", false, "Save current settings to config file")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run carries the whole startup so deferred cleanup still happens;
// os.Exit lives only in main.
func run() int {
	if *showVersion {
		fmt.Printf("roadhud version %s\n", Version)
		return 0
	}

	if *listBoards {
		fmt.Print(platform.ListBoards())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	// Override config with command-line flags
	if *board != "" {
		cfg.Board = *board
	}
	if *language != "" {
		cfg.Language = *language
	}
	if *translations != "" {
		cfg.TranslationsDir = *translations
	}
	if *certBundle != "" {
		cfg.CertBundle = *certBundle
	}
	if *deviceID != "" {
		cfg.DeviceID = *deviceID
	}
	if *telemetryURL != "" {
		cfg.TelemetryURL = *telemetryURL
	}
	if *width > 0 {
		cfg.WindowWidth = *width
	}
	if *height > 0 {
		cfg.WindowHeight = *height
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *verbose {
		cfg.Verbose = true
	}

	logger, sugar := logging.New(cfg.Verbose)
	defer logger.Sync()

	if *saveConfig {
		if err := cfg.Save(); err != nil {
			sugar.Errorw("failed to save config", zap.Error(err))
			return 1
		}
		fmt.Println("Configuration saved successfully")
		return 0
	}

	// Auto-detect a device identity if not configured. Telemetry is
	// skipped without one, so this is best effort.
	if cfg.DeviceID == "" {
		var id string
		var err error
		if *netInterface != "" {
			id, err = metrics.DeviceIDForInterface(*netInterface)
		} else {
			id, err = metrics.DeviceID()
		}
		if err != nil {
			sugar.Debugw("could not detect device identity", zap.Error(err))
		} else {
			cfg.DeviceID = id
		}
	}

	code, err := boot.Run(boot.Options{
		Args:    os.Args,
		Config:  cfg,
		Log:     sugar,
		Version: Version,
	})
	if err != nil {
		sugar.Errorw("startup failed", zap.Error(err))
		return 1
	}
	return code
}
