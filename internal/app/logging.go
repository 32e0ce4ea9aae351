package app

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. Every entry carries a session
// id so interleaved runs on a shared console stay distinguishable.
func NewLogger(level string) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l.WithField("session", uuid.NewString()[:8])
}
