package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fontinst/pkg/cli/config"
)

func TestSentry_Configure_Disabled(t *testing.T) {
	cfg := &config.Sentry{}
	gt.True(t, !cfg.Enabled())

	flush, err := cfg.Configure()
	gt.NoError(t, err)
	gt.Value(t, flush).NotNil()
	flush()
}

func TestSentry_Configure_InvalidDSN(t *testing.T) {
	cfg := &config.Sentry{DSN: "not a dsn", Env: "test"}
	gt.True(t, cfg.Enabled())

	_, err := cfg.Configure()
	gt.Error(t, err)
}
