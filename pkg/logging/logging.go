package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Setup builds the global logger. Debug selects zap's development config,
// otherwise the production config is used. Both write to stderr.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}

// L returns the global logger, or zap's global logger if Setup has not run.
func L() *zap.Logger {
	if Logger == nil {
		return zap.L()
	}
	return Logger
}

// ForRun returns the global logger annotated with the fields of one snapshot
// run, so every entry it produces can be matched to the documents it wrote.
func ForRun(identifier, root string) *zap.Logger {
	return L().With(
		zap.String("runIdentifier", identifier),
		zap.String("root", root),
	)
}
