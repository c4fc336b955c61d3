package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		Init(verbose)
		require.NotNil(t, GetLogger())
	}
}

func TestGetLogger(t *testing.T) {
	Init(false)
	logger := GetLogger()

	require.NotNil(t, logger)
	assert.Same(t, logger, GetLogger())
}

func TestGetLoggerWithoutInit(t *testing.T) {
	defaultLogger = nil
	assert.NotNil(t, GetLogger())
}
