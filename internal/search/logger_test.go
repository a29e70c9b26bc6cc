package search

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestPlainFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.WarnLevel,
		Message: "Could not read dir",
		Data:    logrus.Fields{"path": "/x", "err": "denied"},
	}
	out, err := PlainFormatter{}.Format(entry)
	assert.NoError(t, err)
	assert.Equal(t, "[WARNING] Could not read dir err=denied path=/x\n", string(out))
}

func TestSetupLoggerLevels(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetupLogger(&buf, false)
	logDebug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetupLogger(&buf, true)
	logDebug("shown %d", 2)
	assert.Equal(t, "[DEBUG] shown 2\n", buf.String())
}
