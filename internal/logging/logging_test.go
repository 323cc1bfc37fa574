package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mgomes/sclex/internal/logging/logfields"
)

func TestSetLogLevel(t *testing.T) {
	defer SetLogLevel(DefaultLogLevel)

	SetLogLevelToDebug()
	require.True(t, DefaultLogger.IsLevelEnabled(logrus.DebugLevel))

	SetLogLevel(logrus.ErrorLevel)
	require.False(t, DefaultLogger.IsLevelEnabled(logrus.WarnLevel))
}

func TestSubsystemFieldIsWritten(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	DefaultLogger.WithField(logfields.LogSubsys, "test").Warn("hello")
	require.Contains(t, buf.String(), "subsys=test")
	require.Contains(t, buf.String(), "hello")
}

func TestGetFormatter(t *testing.T) {
	_, ok := GetFormatter("JSON").(*logrus.JSONFormatter)
	require.True(t, ok)
	_, ok = GetFormatter("bogus").(*logrus.TextFormatter)
	require.True(t, ok)
}
