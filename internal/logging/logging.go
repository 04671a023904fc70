package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/viralsweeper/internal/config"
)

// Setup builds the process logger. Nothing is written to the terminal,
// which belongs to the board; entries go to a size-rotated log file.
func Setup(cfg *config.Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(io.Discard)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Level:      level,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)

	return log, nil
}
