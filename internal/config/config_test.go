package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLoggingLevels(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	t.Setenv("LOG_LEVEL", "bogus")
	logger = ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SALESCONV_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("SALESCONV_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SALESCONV_TEST_KEY_MISSING", "fallback"))
}
