package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey  = "API_PORT"
	dbConnEnvKey   = "DB_CONNECTION_URL"
	redisURLEnvKey = "REDIS_URL"
)

type App struct {
	Port            string
	DBConnectionURL string
	RedisURL        string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	redisURL, ok := os.LookupEnv(redisURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, redisURLEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		RedisURL:        redisURL,
	}, nil
}
