package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/keywedge/keywedge/internal/script"
)

// ResolveMacroTexts fills MacroText and KeepAliveText from their
// sources. Inline text wins; otherwise the file is read, or run as a
// script when it ends in .lua. Failures never abort the run — the
// device falls back and keeps working.
func (c *Config) ResolveMacroTexts(log *logrus.Entry) {
	c.MacroText = resolveText(c.MacroText, c.MacroFile, FallbackMacroText, log)
	c.KeepAliveText = resolveText(c.KeepAliveText, c.KeepAliveFile, defaultKeepAliveText, log)
}

func resolveText(inline, file, fallback string, log *logrus.Entry) string {
	if inline != "" {
		return inline
	}
	if file == "" {
		return fallback
	}

	if strings.HasSuffix(file, ".lua") {
		text, err := script.EvalFile(file)
		if err != nil {
			log.WithField("file", file).WithError(err).
				Error("macro script failed, playing nothing")
			return ""
		}
		return text
	}

	data, err := os.ReadFile(file)
	if err != nil {
		log.WithField("file", file).WithError(err).
			Warn("macro file unreadable, using fallback text")
		return fallback
	}
	return strings.TrimSpace(string(data))
}

// WatchedFiles lists the files whose changes should trigger a
// reload: the macro sources that came from disk.
func (c Config) WatchedFiles() []string {
	var files []string
	if c.MacroFile != "" {
		files = append(files, c.MacroFile)
	}
	if c.KeepAliveFile != "" {
		files = append(files, c.KeepAliveFile)
	}
	return files
}
