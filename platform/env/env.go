package env

import (
	"go.uber.org/zap"
	"os"
	"strconv"
	"time"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Debugw("env", "var", env, "status", "not set, using default")
		return def
	}
	return value
}

// Must return the value of an env var, exiting the application if it is not set
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Fatalw("env", "var", env, "ERROR", "required env var not set")
	}
	return value
}

// BoolDefault return the result of searching an env var as bool. Accepts the values understood by strconv.ParseBool
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	value, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warnw("env", "var", env, "value", orDefault, "ERROR", "not a bool, using default "+def)
		value, _ = strconv.ParseBool(def)
	}
	return value
}

// DurationDefault return the result of searching an env var as time.Duration, e.g. "5s", "24h"
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	value, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warnw("env", "var", env, "value", orDefault, "ERROR", "not a duration, using default "+def)
		value, _ = time.ParseDuration(def)
	}
	return value
}
