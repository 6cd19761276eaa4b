package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // DISPATCH_TIMEZONE в минимальных образах

	"courierqueue/internal/entities"
)

const (
	defaultShiftStart      = "16:00"
	defaultShiftEnd        = "02:00"
	defaultCheckInOverride = 24 * time.Hour
	defaultPreAlertDelay   = 5 * time.Second
	defaultNoShowWindow    = 5 * time.Second
	defaultNotifyTimeout   = 5 * time.Second
	defaultTicketTTL       = 12 * time.Hour
	defaultOutboundTimeout = 3 * time.Second
	defaultSettingsTTL     = time.Minute
	defaultHousekeeping    = time.Hour
	defaultRetention       = 90 * 24 * time.Hour
	defaultPollInterval    = 3 * time.Second
	defaultMinSpacing      = 5 * time.Second
	defaultTeaserDuration  = 4 * time.Second
	defaultCallDuration    = 10 * time.Second
	defaultKafkaTimeout    = 5 * time.Second
	defaultMaxConns        = 10
	defaultMinConns        = 2
)

type (
	Tasks struct {
		HousekeepingInterval time.Duration
		HistoryRetention     time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // пополнение ведра юнита, запросов в секунду
		RateLimiterBurst int           // емкость ведра юнита
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		Migrate  bool
		MaxConns int32
		MinConns int32
	}

	Redis struct {
		Addr        string
		Password    string
		DB          int
		SettingsTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		DispatchEvents DispatchEvents
	}

	DispatchEvents struct {
		ProcessTimeout time.Duration
	}

	Dispatch struct {
		Location        *time.Location
		ShiftStart      entities.TimeOfDay
		ShiftEnd        entities.TimeOfDay
		CheckInOverride time.Duration
		PreAlertDelay   time.Duration
		NoShowWindow    time.Duration
		NotifyTimeout   time.Duration
	}

	Tickets struct {
		TTL time.Duration
	}

	Messaging struct {
		APIURL          string
		APIToken        string
		OutboundTimeout time.Duration
	}

	Display struct {
		UnitID         string
		PollInterval   time.Duration
		MinSpacing     time.Duration
		TeaserDuration time.Duration
		CallDuration   time.Duration
		SpeechEnabled  bool
	}

	Config struct {
		LogLevel  string
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		Redis     Redis
		Kafka     Kafka
		Dispatch  Dispatch
		Tickets   Tickets
		Messaging Messaging
		Display   Display
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// ValidateDisplay - дополнительные требования для экранного воркера.
func (c *Config) ValidateDisplay() error {
	if c.Display.UnitID == "" {
		return errors.New("DISPLAY_UNIT is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if c.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	return nil
}

func loadFromEnv() (*Config, error) {
	var (
		l   envLoader
		cfg Config
	)

	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	cfg.Tasks = Tasks{
		HousekeepingInterval: l.getDuration("BACKGROUND_HOUSEKEEPING_INTERVAL", defaultHousekeeping),
		HistoryRetention:     l.getDuration("HISTORY_RETENTION", defaultRetention),
	}

	cfg.Server = HTTPServer{
		Port:             os.Getenv("PORT"),
		RequestTimeout:   l.getDuration("MIDDLEWARE_REQUEST_TIMEOUT", 0),
		RateLimiterQPS:   l.getInt("MIDDLEWARE_RATE_LIMIT_QPS", 0),
		RateLimiterBurst: l.getInt("MIDDLEWARE_RATE_LIMIT_BURST", 0),
		PprofEnabled:     l.getBool("PPROF_ENABLED", false),
		PprofPort:        os.Getenv("PPROF_PORT"),
	}

	cfg.Database = Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		Migrate:  l.getBool("POSTGRES_MIGRATE", false),
		MaxConns: int32(l.getInt("POSTGRES_MAX_CONNS", defaultMaxConns)), //nolint:gosec // размер пула мал
		MinConns: int32(l.getInt("POSTGRES_MIN_CONNS", defaultMinConns)), //nolint:gosec // размер пула мал
	}

	cfg.Redis = Redis{
		Addr:        os.Getenv("REDIS_ADDR"),
		Password:    os.Getenv("REDIS_PASSWORD"),
		DB:          l.getInt("REDIS_DB", 0),
		SettingsTTL: l.getDuration("UNIT_SETTINGS_CACHE_TTL", defaultSettingsTTL),
	}

	cfg.Kafka = Kafka{
		Brokers:         os.Getenv("KAFKA_BROKERS"),
		Topic:           os.Getenv("KAFKA_TOPIC"),
		ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
		PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
		Sarama: Sarama{
			Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
			ConsumerOffsetsAutocommit: l.getBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT", false),
		},
		Handlers: KafkaHandlers{
			DispatchEvents: DispatchEvents{
				ProcessTimeout: l.getDuration("KAFKA_HANDLER_DISPATCH_EVENTS_PROCESS_TIMEOUT", defaultKafkaTimeout),
			},
		},
	}

	cfg.Dispatch = Dispatch{
		Location:        l.getLocation("DISPATCH_TIMEZONE"),
		ShiftStart:      l.getTimeOfDay("DISPATCH_DEFAULT_SHIFT_START", defaultShiftStart),
		ShiftEnd:        l.getTimeOfDay("DISPATCH_DEFAULT_SHIFT_END", defaultShiftEnd),
		CheckInOverride: l.getDuration("DISPATCH_CHECKIN_OVERRIDE", defaultCheckInOverride),
		PreAlertDelay:   l.getDuration("DISPATCH_PRE_ALERT_DELAY", defaultPreAlertDelay),
		NoShowWindow:    l.getDuration("DISPATCH_NO_SHOW_WINDOW", defaultNoShowWindow),
		NotifyTimeout:   l.getDuration("DISPATCH_NOTIFY_TIMEOUT", defaultNotifyTimeout),
	}

	cfg.Tickets = Tickets{
		TTL: l.getDuration("TICKET_TTL", defaultTicketTTL),
	}

	cfg.Messaging = Messaging{
		APIURL:          os.Getenv("MESSAGING_API_URL"),
		APIToken:        os.Getenv("MESSAGING_API_TOKEN"),
		OutboundTimeout: l.getDuration("OUTBOUND_HTTP_TIMEOUT", defaultOutboundTimeout),
	}

	cfg.Display = Display{
		UnitID:         os.Getenv("DISPLAY_UNIT"),
		PollInterval:   l.getDuration("DISPLAY_POLL_INTERVAL", defaultPollInterval),
		MinSpacing:     l.getDuration("DISPLAY_MIN_SPACING", defaultMinSpacing),
		TeaserDuration: l.getDuration("DISPLAY_TEASER_DURATION", defaultTeaserDuration),
		CallDuration:   l.getDuration("DISPLAY_CALL_DURATION", defaultCallDuration),
		SpeechEnabled:  l.getBool("DISPLAY_SPEECH_ENABLED", true),
	}

	if l.err != nil {
		return nil, fmt.Errorf("loading config: %w", l.err)
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("PORT is required")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofEnabled && cfg.Server.PprofPort == "" {
		return errors.New("PPROF_PORT is required when PPROF_ENABLED=true")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if cfg.Database.MaxConns <= 0 || cfg.Database.MinConns < 0 || cfg.Database.MinConns > cfg.Database.MaxConns {
		return errors.New("POSTGRES_MIN_CONNS must be within [0, POSTGRES_MAX_CONNS] and POSTGRES_MAX_CONNS positive")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Dispatch.ShiftStart == cfg.Dispatch.ShiftEnd {
		return errors.New("DISPATCH_DEFAULT_SHIFT_START and DISPATCH_DEFAULT_SHIFT_END must differ")
	}

	if cfg.Messaging.APIURL != "" && cfg.Messaging.APIToken == "" {
		return errors.New("MESSAGING_API_TOKEN is required when MESSAGING_API_URL is set")
	}

	return nil
}

// envLoader запоминает первую ошибку разбора, чтобы не проверять каждую переменную отдельно.
type envLoader struct {
	err error
}

func (l *envLoader) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

func (l *envLoader) getInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		l.fail(fmt.Errorf("invalid int format for %s=%q: %w", key, val, err))
		return def
	}
	return res
}

func (l *envLoader) getDuration(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		l.fail(fmt.Errorf("invalid duration format for %s=%q: %w", key, val, err))
		return def
	}
	return res
}

func (l *envLoader) getBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		l.fail(fmt.Errorf("invalid bool format for %s=%q: %w", key, val, err))
		return def
	}
	return res
}

func (l *envLoader) getTimeOfDay(key, def string) entities.TimeOfDay {
	val := os.Getenv(key)
	if val == "" {
		val = def
	}

	res, err := entities.ParseTimeOfDay(val)
	if err != nil {
		l.fail(fmt.Errorf("invalid HH:MM format for %s=%q: %w", key, val, err))
		return 0
	}
	return res
}

func (l *envLoader) getLocation(key string) *time.Location {
	val := os.Getenv(key)
	if val == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(val)
	if err != nil {
		l.fail(fmt.Errorf("invalid timezone for %s=%q: %w", key, val, err))
		return time.UTC
	}
	return loc
}
