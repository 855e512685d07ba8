package logger

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	shared "github.com/xrd-tutorials/api-endpoint/shared/error"
)

var Log = log.New()

func init() {
	// Log as JSON instead of the default ASCII formatter.
	Log.SetFormatter(&log.JSONFormatter{})
}

// SetLevel sets the logger level from its name, keeping the current level
// when the name is not valid
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(shared.ErrInvalidLogLevel, "%q: %s", level, err.Error())
	}

	Log.SetLevel(lvl)
	return nil
}
