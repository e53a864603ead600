package config

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

const (
	StateBackendBolt = "bolt"
	StateBackendFile = "file"
)

//nolint:gochecknoglobals // it's regexp
var groupPattern = regexp.MustCompile(`^\d+\.\d+$`)

type Config struct {
	Dev bool `envconfig:"DEV" default:"false"`

	Group                 string `envconfig:"GROUP_NUMBER" default:"2.2"`
	ChannelID             string `envconfig:"TELEGRAM_CHANNEL_ID" required:"true"`
	TelegramToken         string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramTokenSSMParam string `envconfig:"TELEGRAM_TOKEN_SSM_PARAM" default:"/outage-notifier/prod/telegram-token"`

	FeedURL          string        `envconfig:"FEED_URL" default:"https://raw.githubusercontent.com/Baskerville42/outage-data-ua/refs/heads/main/data/kyiv.json"`
	ImageURLTemplate string        `envconfig:"IMAGE_URL_TEMPLATE" default:"https://raw.githubusercontent.com/Baskerville42/outage-data-ua/refs/heads/main/images/kyiv/gpv-{group}-emergency.png"`
	SendImage        bool          `envconfig:"SEND_IMAGE" default:"true"`
	FetchTimeout     time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`

	StateBackend string `envconfig:"STATE_BACKEND" default:"bolt"`
	DBPath       string `envconfig:"DB_PATH" default:"data/outage-notifier.db"`
	StateDir     string `envconfig:"STATE_DIR" default:"data"`

	CheckInterval time.Duration `envconfig:"CHECK_INTERVAL" default:"15m"`
	CheckCron     string        `envconfig:"CHECK_CRON"`
	Timezone      string        `envconfig:"TIMEZONE" default:"Europe/Kyiv"`
	ForceSend     Switch        `envconfig:"FORCE_SEND" default:"false"`

	MetricsAddr string `envconfig:"METRICS_ADDR"`

	CalendarID              string        `envconfig:"CALENDAR_ID"`
	CalendarCredentialsPath string        `envconfig:"CALENDAR_CREDENTIALS_PATH"`
	CalendarCleanupInterval time.Duration `envconfig:"CALENDAR_CLEANUP_INTERVAL" default:"6h"`
	CalendarLookbackDays    int           `envconfig:"CALENDAR_LOOKBACK_DAYS" default:"7"`

	ICSPath string `envconfig:"ICS_PATH"`

	Location *time.Location `ignored:"true"`
}

// Switch is a boolean that also accepts "yes" and "no".
type Switch bool

func (s *Switch) Decode(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y", "on":
		*s = true
	case "false", "0", "no", "n", "off", "":
		*s = false
	default:
		return fmt.Errorf("invalid boolean value %q", value)
	}
	return nil
}

type tokenLoader func(ctx context.Context, param string) (string, error)

func NewConfig(ctx context.Context) (*Config, error) {
	return newConfig(ctx, getSSMToken)
}

func newConfig(ctx context.Context, loadToken tokenLoader) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if err = res.validate(); err != nil {
		return nil, err
	}

	if res.TelegramToken != "" {
		return res, nil
	}
	res.TelegramToken, err = loadToken(ctx, res.TelegramTokenSSMParam)
	if err != nil {
		return nil, err
	}
	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

// CalendarEnabled reports whether Google Calendar sync is configured.
func (c *Config) CalendarEnabled() bool {
	return c.CalendarID != ""
}

func (c *Config) validate() error {
	var errs []error

	if c.ChannelID == "" {
		errs = append(errs, errors.New("TELEGRAM_CHANNEL_ID is required"))
	}
	if !groupPattern.MatchString(c.Group) {
		errs = append(errs, fmt.Errorf("GROUP_NUMBER must look like 2.2, got %q", c.Group))
	}
	if c.StateBackend != StateBackendBolt && c.StateBackend != StateBackendFile {
		errs = append(errs, fmt.Errorf("STATE_BACKEND must be %q or %q, got %q", StateBackendBolt, StateBackendFile, c.StateBackend))
	}
	if c.CheckCron != "" {
		if _, err := cron.ParseStandard(c.CheckCron); err != nil {
			errs = append(errs, fmt.Errorf("parse CHECK_CRON: %w", err))
		}
	} else if c.CheckInterval <= 0 {
		errs = append(errs, errors.New("CHECK_INTERVAL must be positive"))
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, errors.New("FETCH_TIMEOUT must be positive"))
	}
	if c.CalendarEnabled() {
		if c.CalendarCredentialsPath == "" {
			errs = append(errs, errors.New("CALENDAR_CREDENTIALS_PATH is required when CALENDAR_ID is set"))
		}
		if c.CalendarLookbackDays < 1 {
			errs = append(errs, errors.New("CALENDAR_LOOKBACK_DAYS must be at least 1"))
		}
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("load TIMEZONE: %w", err))
	}
	c.Location = loc

	return errors.Join(errs...)
}

func getSSMToken(ctx context.Context, param string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	out, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(param),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *out.Parameter.Value, nil
}
