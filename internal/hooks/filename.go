package hooks

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxDepth = 12

// SourceHook adds the file and line that emitted an entry.
type SourceHook struct {
	Field  string
	levels []logrus.Level
}

func (hook *SourceHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *SourceHook) Fire(entry *logrus.Entry) error {
	entry.Data[hook.Field] = findCaller()
	return nil
}

// NewSourceHook fires on the given levels, or on all levels when none given.
func NewSourceHook(levels ...logrus.Level) *SourceHook {
	hook := &SourceHook{
		Field:  "source",
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}
	return hook
}

func findCaller() string {
	for skip := 3; skip < maxDepth; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if strings.Contains(file, "sirupsen/logrus") || strings.HasSuffix(file, "hooks/filename.go") {
			continue
		}
		return fmt.Sprintf("%s:%d", shorten(file), line)
	}
	return "unknown"
}

// shorten keeps the package directory and file name.
func shorten(file string) string {
	dir, name := filepath.Split(file)
	return filepath.Join(filepath.Base(dir), name)
}
