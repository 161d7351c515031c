package hooks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSourceHook(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.Out = buf
	logger.Formatter = &logrus.TextFormatter{DisableColors: true}
	logger.AddHook(NewSourceHook())

	logger.WithField("room", "123456").Info("hello")

	out := buf.String()
	assert.Contains(t, out, "source=")
	assert.True(t, strings.Contains(out, "filename_test.go:"), out)
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "game/room.go", shorten("/go/src/liaptong/internal/game/room.go"))
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, NewSourceHook(logrus.ErrorLevel).Levels())
}
