package cmd

import (
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/khanhnv2901/iotscan/internal/assess"
	"github.com/khanhnv2901/iotscan/internal/dispatch"
	"github.com/khanhnv2901/iotscan/internal/ledger"
	"github.com/khanhnv2901/iotscan/internal/report"
	"github.com/khanhnv2901/iotscan/internal/runner"
	"github.com/khanhnv2901/iotscan/internal/shared/constants"
	"github.com/khanhnv2901/iotscan/internal/signature"
	"github.com/khanhnv2901/iotscan/internal/validate"
)

// app holds the wired-up core shared by the serve and scan commands. The
// catalog and notice are loaded once here; both fall back to built-ins
// rather than failing startup.
type app struct {
	dispatcher *dispatch.Dispatcher
	catalog    *signature.Catalog
	ledger     *ledger.Ledger
	logger     *zap.SugaredLogger
}

func newApp() *app {
	catalog := signature.Load(viper.GetString("signatures_file"), logger)
	notice := report.LoadNotice(viper.GetString("disclosure_file"), logger)

	window := time.Duration(viper.GetInt("rate_window_seconds")) * time.Second
	maxScans := viper.GetInt("rate_max_scans")
	if window <= 0 {
		window = constants.RateWindow
	}
	if maxScans <= 0 {
		maxScans = constants.RateMaxScans
	}
	led := ledger.New(window, maxScans)
	validator := validate.New(led, logger)

	assessor := assess.New(assess.Config{
		Runner:               runner.NewExecRunner(logger),
		Catalog:              catalog,
		Logger:               logger,
		ScannerBinary:        viper.GetString("scanner_binary"),
		HTTPBinary:           viper.GetString("http_client_binary"),
		StreamBinary:         viper.GetString("stream_prober_binary"),
		ProcessTimeout:       time.Duration(viper.GetInt("process_timeout_seconds")) * time.Second,
		CredentialsPerSecond: viper.GetFloat64("credentials_per_second"),
	})

	return &app{
		dispatcher: dispatch.New(validator, assessor, notice, logger),
		catalog:    catalog,
		ledger:     led,
		logger:     logger,
	}
}
