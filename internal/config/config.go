package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/imetandy/emission-testing/internal/core/application"
	signalfeederinfra "github.com/imetandy/emission-testing/internal/infrastructure/signal-feeder"
	"github.com/imetandy/emission-testing/internal/infrastructure/report"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DatadirKey is the local data directory where reports and stats are stored
	DatadirKey = "DATADIR"
	// ReserveAKey is the initial amount of Endcoin held by the pool
	ReserveAKey = "RESERVE_A"
	// ReserveBKey is the initial amount of Gaiacoin held by the pool
	ReserveBKey = "RESERVE_B"
	// NumTradesKey is the number of trades applied by the simulation
	NumTradesKey = "NUM_TRADES"
	// MinTradeAmountKey is the lower bound (inclusive) of sampled trade amounts
	MinTradeAmountKey = "MIN_TRADE_AMOUNT"
	// MaxTradeAmountKey is the upper bound (exclusive) of sampled trade amounts
	MaxTradeAmountKey = "MAX_TRADE_AMOUNT"
	// RatioRefreshIntervalKey is the number of trades between two ratio
	// refreshes. 0 disables refreshes
	RatioRefreshIntervalKey = "RATIO_REFRESH_INTERVAL"
	// TradesPerSecondKey paces the simulation. 0 means as fast as possible
	TradesPerSecondKey = "TRADES_PER_SECOND"
	// SeedKey is the seed of the random trade sampler. When not set the
	// current time is used
	SeedKey = "SEED"
	// SignalSourceKey is one of static, file or websocket
	SignalSourceKey = "SIGNAL_SOURCE"
	// SignalNumeratorKey is the numerator of the static signal, ie. the daily
	// sea surface temperature
	SignalNumeratorKey = "SIGNAL_NUMERATOR"
	// SignalDenominatorKey is the denominator of the static signal, ie. the
	// base sea surface temperature
	SignalDenominatorKey = "SIGNAL_DENOMINATOR"
	// SignalFileKey is the path of the JSON lines file read by the file source
	SignalFileKey = "SIGNAL_FILE"
	// SignalURLKey is the ws(s):// endpoint read by the websocket source
	SignalURLKey = "SIGNAL_URL"
	// ReportFormatsKey is the list of formats (jsonl, csv) the simulation
	// steps are stored with
	ReportFormatsKey = "REPORT_FORMATS"
	// MetricsAddrKey is the address <host:port> where Prometheus metrics are
	// served during the simulation. Empty disables the server
	MetricsAddrKey = "METRICS_ADDR"
	// StatsIntervalKey defines the interval in seconds for logging runtime
	// statistics during the simulation. 0 disables them
	StatsIntervalKey = "STATS_INTERVAL"
	// WebhookEndpointsKey is the list of endpoints notified about trades
	// and ratio refreshes
	WebhookEndpointsKey = "WEBHOOK_ENDPOINTS"
	// WebhookSecretKey, if set, is used to sign the token sent along with
	// webhook notifications
	WebhookSecretKey = "WEBHOOK_SECRET"

	ReportsLocation = "reports"
	StatsLocation   = "stats"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("ammsim", false)

// InitConfig loads the configuration from the environment, applies the given
// overrides (ie. command line flags) on top of it and validates the result.
func InitConfig(overrides map[string]interface{}) error {
	vip = viper.New()
	vip.SetEnvPrefix("AMMSIM")
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(ReserveAKey, "1000")
	vip.SetDefault(ReserveBKey, "1000")
	vip.SetDefault(NumTradesKey, 100)
	vip.SetDefault(MinTradeAmountKey, 1)
	vip.SetDefault(MaxTradeAmountKey, 100)
	vip.SetDefault(RatioRefreshIntervalKey, application.DefaultRefreshInterval)
	vip.SetDefault(TradesPerSecondKey, 0)
	vip.SetDefault(StatsIntervalKey, 0)
	vip.SetDefault(SignalSourceKey, signalfeederinfra.StaticSource)
	vip.SetDefault(SignalNumeratorKey, "25")
	vip.SetDefault(SignalDenominatorKey, "20.8")
	vip.SetDefault(ReportFormatsKey, []string{report.FormatJSONL})

	for key, value := range overrides {
		vip.Set(key, value)
	}

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	log.SetLevel(log.Level(GetInt(LogLevelKey)))
	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetInt64(key string) int64 {
	return vip.GetInt64(key)
}

func GetStringSlice(key string) []string {
	return vip.GetStringSlice(key)
}

// GetDecimal parses the value of the given key as a decimal number. Invalid
// values are reported by validate, so the zero value is returned here.
func GetDecimal(key string) decimal.Decimal {
	d, err := decimal.NewFromString(GetString(key))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func IsSet(key string) bool {
	return vip.IsSet(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetReportsDir() string {
	return filepath.Join(GetDatadir(), ReportsLocation)
}

func GetStatsDir() string {
	return filepath.Join(GetDatadir(), StatsLocation)
}

// GetSeed returns the configured seed or a time based one if not set.
func GetSeed() int64 {
	if IsSet(SeedKey) {
		return GetInt64(SeedKey)
	}
	return time.Now().UnixNano()
}

// GetSignalSourceOpts returns the options for the configured signal source.
func GetSignalSourceOpts() signalfeederinfra.SourceOpts {
	return signalfeederinfra.SourceOpts{
		Numerator:   GetDecimal(SignalNumeratorKey),
		Denominator: GetDecimal(SignalDenominatorKey),
		FilePath:    GetString(SignalFileKey),
		URL:         GetString(SignalURLKey),
	}
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	for _, key := range []string{
		ReserveAKey, ReserveBKey, SignalNumeratorKey, SignalDenominatorKey,
	} {
		if _, err := decimal.NewFromString(GetString(key)); err != nil {
			return fmt.Errorf("%s must be a valid decimal number", key)
		}
	}
	if !GetDecimal(ReserveAKey).IsPositive() || !GetDecimal(ReserveBKey).IsPositive() {
		return fmt.Errorf("%s and %s must be positive", ReserveAKey, ReserveBKey)
	}

	if GetInt(NumTradesKey) < 0 {
		return fmt.Errorf("%s must not be negative", NumTradesKey)
	}
	minAmount, maxAmount := GetInt64(MinTradeAmountKey), GetInt64(MaxTradeAmountKey)
	if minAmount <= 0 || minAmount >= maxAmount {
		return fmt.Errorf(
			"%s must be positive and lower than %s",
			MinTradeAmountKey, MaxTradeAmountKey,
		)
	}
	if GetInt(RatioRefreshIntervalKey) < 0 {
		return fmt.Errorf("%s must not be negative", RatioRefreshIntervalKey)
	}
	if GetInt(TradesPerSecondKey) < 0 {
		return fmt.Errorf("%s must not be negative", TradesPerSecondKey)
	}

	source := GetString(SignalSourceKey)
	if !signalfeederinfra.IsSupportedSource(source) {
		return fmt.Errorf(
			"unknown signal source %s, must be one of %s",
			source, strings.Join(signalfeederinfra.SupportedSources(), ", "),
		)
	}
	if source == signalfeederinfra.FileSource && GetString(SignalFileKey) == "" {
		return fmt.Errorf("%s is required for %s signal source", SignalFileKey, source)
	}
	if source == signalfeederinfra.WebsocketSource && GetString(SignalURLKey) == "" {
		return fmt.Errorf("%s is required for %s signal source", SignalURLKey, source)
	}

	for _, format := range GetStringSlice(ReportFormatsKey) {
		if !report.IsSupportedFormat(format) {
			return fmt.Errorf("unknown report format %s", format)
		}
	}

	return nil
}

func initDatadir() error {
	if err := makeDirectoryIfNotExists(GetReportsDir()); err != nil {
		return err
	}
	return makeDirectoryIfNotExists(GetStatsDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
