package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noToken(t *testing.T) tokenLoader {
	return func(context.Context, string) (string, error) {
		t.Fatal("token must not be loaded from SSM")
		return "", nil
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_CHANNEL_ID", "@outages")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TIMEZONE", "UTC")

	got, err := newConfig(t.Context(), noToken(t))
	require.NoError(t, err)

	assert.Equal(t, "2.2", got.Group)
	assert.Equal(t, "@outages", got.ChannelID)
	assert.Equal(t, "123:abc", got.TelegramToken)
	assert.Equal(t, StateBackendBolt, got.StateBackend)
	assert.Equal(t, 15*time.Minute, got.CheckInterval)
	assert.Equal(t, 30*time.Second, got.FetchTimeout)
	assert.True(t, got.SendImage)
	assert.False(t, bool(got.ForceSend))
	assert.False(t, got.CalendarEnabled())
	assert.Equal(t, time.UTC, got.Location)
}

func TestNewConfig_TokenFromSSM(t *testing.T) {
	t.Setenv("TELEGRAM_CHANNEL_ID", "@outages")
	t.Setenv("TELEGRAM_TOKEN_SSM_PARAM", "/custom/token")
	t.Setenv("TIMEZONE", "UTC")

	got, err := newConfig(t.Context(), func(_ context.Context, param string) (string, error) {
		assert.Equal(t, "/custom/token", param)
		return "from-ssm", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "from-ssm", got.TelegramToken)

	_, err = newConfig(t.Context(), func(context.Context, string) (string, error) {
		return "", errors.New("access denied")
	})
	assert.EqualError(t, err, "access denied")

	_, err = newConfig(t.Context(), func(context.Context, string) (string, error) {
		return "", nil
	})
	assert.EqualError(t, err, "telegram token is required")
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "missing_channel",
			env:  map[string]string{"TELEGRAM_CHANNEL_ID": ""},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, "TELEGRAM_CHANNEL_ID is required")
			},
		},
		{
			name: "bad_group",
			env:  map[string]string{"GROUP_NUMBER": "GPV2.2"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, `GROUP_NUMBER must look like 2.2, got "GPV2.2"`)
			},
		},
		{
			name: "bad_state_backend",
			env:  map[string]string{"STATE_BACKEND": "redis"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, "STATE_BACKEND")
			},
		},
		{
			name: "bad_cron",
			env:  map[string]string{"CHECK_CRON": "every minute"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, "parse CHECK_CRON")
			},
		},
		{
			name:    "valid_cron_ignores_interval",
			env:     map[string]string{"CHECK_CRON": "*/5 * * * *", "CHECK_INTERVAL": "0s"},
			wantErr: assert.NoError,
		},
		{
			name: "zero_interval",
			env:  map[string]string{"CHECK_INTERVAL": "0s"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, "CHECK_INTERVAL must be positive")
			},
		},
		{
			name: "calendar_without_credentials",
			env:  map[string]string{"CALENDAR_ID": "cal@group.calendar.google.com"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, "CALENDAR_CREDENTIALS_PATH is required")
			},
		},
		{
			name: "unknown_timezone",
			env:  map[string]string{"TIMEZONE": "Mars/Olympus"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, "load TIMEZONE")
			},
		},
		{
			name: "several_errors_reported_together",
			env:  map[string]string{"GROUP_NUMBER": "x", "STATE_BACKEND": "y"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, "GROUP_NUMBER") && assert.ErrorContains(t, err, "STATE_BACKEND")
			},
		},
		{
			name:    "force_send_yes",
			env:     map[string]string{"FORCE_SEND": "yes"},
			wantErr: assert.NoError,
		},
		{
			name: "force_send_garbage",
			env:  map[string]string{"FORCE_SEND": "sometimes"},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorContains(t, err, "FORCE_SEND")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_CHANNEL_ID", "@outages")
			t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
			t.Setenv("TIMEZONE", "UTC")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := newConfig(t.Context(), noToken(t))
			tt.wantErr(t, err)
		})
	}
}

func TestSwitch_Decode(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "YES", " on "} {
		var s Switch
		require.NoError(t, s.Decode(v), v)
		assert.True(t, bool(s), v)
	}
	for _, v := range []string{"false", "0", "no", "off", ""} {
		s := Switch(true)
		require.NoError(t, s.Decode(v), v)
		assert.False(t, bool(s), v)
	}
	var s Switch
	assert.Error(t, s.Decode("maybe"))
}
