package config

import (
	"testing"
	"time"

	"github.com/layer-3/gatecheck/core"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("CAPTCHA_SECRET", "")

	cfg, err := Load()
	require.ErrorIs(t, err, core.ErrMissingSecret)
	require.Nil(t, cfg)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CAPTCHA_SECRET", "server-secret")
	t.Setenv("CAPTCHA_VERIFY_URL", "")
	t.Setenv("CAPTCHA_RESULT_TTL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("CLEARANCE_KEY", "")
	t.Setenv("CLEARANCE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "server-secret", cfg.Captcha.Secret)
	require.Equal(t, core.DefaultResultTTL, cfg.Captcha.ResultTTL)
	require.Equal(t, core.DefaultClearanceTTL, cfg.Clearance.TTL)
	require.Equal(t, ":9000", cfg.Server.ListenAddr)
	require.Empty(t, cfg.Redis.URL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CAPTCHA_SECRET", "server-secret")
	t.Setenv("CAPTCHA_RESULT_TTL", "90s")
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 90*time.Second, cfg.Captcha.ResultTTL)
	require.Equal(t, ":8080", cfg.Server.ListenAddr)
	require.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("CAPTCHA_SECRET", "server-secret")
	t.Setenv("CAPTCHA_RESULT_TTL", "five minutes")

	cfg, err := Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}
