// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads .env, configs/config.yaml and configs/config.<APP_ENVIRONMENT>.yaml,
// then lets environment variables override any key ("intents.get_weather.geocoder.api_key"
// becomes INTENTS_GET_WEATHER_GEOCODER_API_KEY). Missing files are fine: the
// Lambda ships without them and relies on defaults plus env.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := os.Getenv("CONFIG_PATH"); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "car-weather-bot")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("aws.region", "us-east-1")

	v.SetDefault("lex.bot_id", "")
	v.SetDefault("lex.bot_alias_id", "")
	v.SetDefault("lex.locale_id", "en_US")

	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.prefixes", []string{"Test/clean", "Test/dirty"})
	v.SetDefault("storage.image_extensions", []string{".jpg", ".jpeg", ".png"})
	v.SetDefault("storage.presign_expiry", 3600000)

	v.SetDefault("intents.car_check.project_version_arn", "")
	v.SetDefault("intents.car_check.min_confidence", 50.0)
	v.SetDefault("intents.car_check.slot", "imguri")

	v.SetDefault("intents.get_weather.geocoder.base_url", "https://api.opencagedata.com")
	v.SetDefault("intents.get_weather.geocoder.api_key", "")
	v.SetDefault("intents.get_weather.geocoder.timeout", 10000)
	v.SetDefault("intents.get_weather.forecast.base_url", "https://opendata-download-metfcst.smhi.se")
	v.SetDefault("intents.get_weather.forecast.category", "pmp3g")
	v.SetDefault("intents.get_weather.forecast.version", 2)
	v.SetDefault("intents.get_weather.forecast.timeout", 10000)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")

	v.SetDefault("observability.service_name", "car-weather-bot")
	v.SetDefault("observability.tracing_enabled", false)
}

// loadEnvFile loads the first .env found walking up towards the module root.
func loadEnvFile() string {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string values. An unset
// variable expands to "" so overrideEmptyConfig still gets a chance.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			if expanded := os.ExpandEnv(strVal); expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

// overrideEmptyConfig falls back to the short env names used by the Lambda
// console and the chat UI.
func overrideEmptyConfig(cfg *Config) {
	fallbacks := []struct {
		target *string
		env    string
	}{
		{&cfg.Intents.GetWeather.Geocoder.APIKey, "OPENCAGE_API_KEY"},
		{&cfg.Intents.CarCheck.ProjectVersionARN, "REKOGNITION_PROJECT_VERSION_ARN"},
		{&cfg.Lex.BotID, "LEX_BOT_ID"},
		{&cfg.Lex.BotAliasID, "LEX_BOT_ALIAS_ID"},
		{&cfg.Lex.LocaleID, "LEX_LOCALE_ID"},
		{&cfg.Storage.Bucket, "S3_BUCKET_NAME"},
		{&cfg.AWS.Region, "AWS_REGION"},
	}

	for _, f := range fallbacks {
		if *f.target != "" {
			continue
		}
		if val := os.Getenv(f.env); val != "" {
			*f.target = val
		}
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.AWS.Region == "" {
		return fmt.Errorf("aws.region is required")
	}

	if cfg.Intents.CarCheck.ProjectVersionARN == "" {
		return fmt.Errorf("intents.car_check.project_version_arn is required")
	}
	if cfg.Intents.CarCheck.MinConfidence <= 0 || cfg.Intents.CarCheck.MinConfidence > 100 {
		return fmt.Errorf("intents.car_check.min_confidence must be in (0, 100]")
	}

	if cfg.Intents.GetWeather.Geocoder.APIKey == "" {
		return fmt.Errorf("intents.get_weather.geocoder.api_key is required")
	}
	if cfg.Intents.GetWeather.Forecast.BaseURL == "" {
		return fmt.Errorf("intents.get_weather.forecast.base_url is required")
	}

	if cfg.Storage.Bucket != "" && len(cfg.Storage.Prefixes) == 0 {
		return fmt.Errorf("storage.prefixes is required when storage.bucket is set")
	}

	return nil
}
