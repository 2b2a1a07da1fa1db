package env

import (
	"go.uber.org/zap"
	"strconv"
)

// IntDefault return the result of searching an env var as int. If the value is empty or is not a number the default
// is used instead
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	orDefault := OrDefault(log, env, def)
	value, err := strconv.Atoi(orDefault)
	if err != nil {
		log.Warnw("env", "var", env, "value", orDefault, "ERROR", "not an int, using default "+def)
		value, _ = strconv.Atoi(def)
	}
	return value
}
