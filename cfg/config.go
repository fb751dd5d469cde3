package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type WorldConfig struct {
	CitiesPath string
	PlanesDir  string
}

type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

type Config struct {
	AppEnv             string
	AppPort            string
	RedisConfig        RedisConfig
	WorldConfig        WorldConfig
	TelemetryConfig    TelemetryConfig
	SnapshotTTLMinutes int
}

func Load() (*Config, error) {
	var errs []error

	err := godotenv.Load()
	if err != nil {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := mustEnv("REDIS_PASSWORD", &errs)

	citiesPath := mustEnv("CITIES_PATH", &errs)
	planesDir := mustEnv("PLANES_DIR", &errs)

	otlpEndpoint := mustEnv("OTLP_ENDPOINT", &errs)
	serviceName := mustEnv("OTEL_SERVICE_NAME", &errs)

	snapshotTTLMinutes := mustEnv("SNAPSHOT_TTL_MINUTES", &errs)
	snapshotTTLMinutesInt, err := strconv.Atoi(snapshotTTLMinutes)

	if err != nil {
		errs = append(errs, errors.New("conversion failed env: "+"SNAPSHOT_TTL_MINUTES"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		WorldConfig: WorldConfig{
			CitiesPath: citiesPath,
			PlanesDir:  planesDir,
		},
		TelemetryConfig: TelemetryConfig{
			OTLPEndpoint: otlpEndpoint,
			ServiceName:  serviceName,
		},
		SnapshotTTLMinutes: snapshotTTLMinutesInt,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}
