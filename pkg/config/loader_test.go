package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	FileOnly string `env:"CONFIG_TEST_FILE_ONLY"`
	Quoted   string `env:"CONFIG_TEST_QUOTED"`
}

func TestParse(t *testing.T) {
	t.Run("validator config defaults", func(t *testing.T) {
		var cfg validator.Config
		require.NoError(t, config.Parse(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, "Incorrect Value", cfg.DefaultMessage)
		assert.Equal(t, "|", cfg.RuleSeparator)
		assert.Equal(t, ":", cfg.RuleParamSeparator)
		assert.Equal(t, ",", cfg.ParamsSeparator)
		assert.Empty(t, cfg.MessagesFile)
	})

	t.Run("validator config from variables", func(t *testing.T) {
		var cfg validator.Config
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{
			"RULEKIT_RULE_SEPARATOR":       ";",
			"RULEKIT_RULE_PARAM_SEPARATOR": "=",
			"RULEKIT_PARAMS_SEPARATOR":     "/",
			"RULEKIT_MESSAGES_FILE":        "messages.yaml",
		}))
		require.NoError(t, err)
		assert.Equal(t, ";", cfg.RuleSeparator)
		assert.Equal(t, "=", cfg.RuleParamSeparator)
		assert.Equal(t, "/", cfg.ParamsSeparator)
		assert.Equal(t, "messages.yaml", cfg.MessagesFile)
	})

	t.Run("prefix", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Parse(&cfg, config.WithPrefix("APP_"), config.WithEnvironment(map[string]string{
			"APP_CONFIG_TEST_REQUIRED": "yes",
		}))
		require.NoError(t, err)
		assert.Equal(t, "yes", cfg.Value)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Parse[requiredConfig](nil), config.ErrNilPointer)
	})
}

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("CONFIG_TEST_CACHED", "first")
	var cfg cachedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("CONFIG_TEST_CACHED", "second")
	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value, "served from cache")

	config.ResetCache()
	var reloaded cachedConfig
	require.NoError(t, config.Load(&reloaded))
	assert.Equal(t, "second", reloaded.Value)

	assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("CONFIG_TEST_REQUIRED", "placeholder")
	require.NoError(t, os.Unsetenv("CONFIG_TEST_REQUIRED"))
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	for _, key := range []string{"CONFIG_TEST_FILE_ONLY", "CONFIG_TEST_QUOTED"} {
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "from_file", cfg.FileOnly)
	assert.Equal(t, "quoted value", cfg.Quoted)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}
