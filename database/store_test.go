package database

import (
	"testing"

	"github.com/lshigami/coursehive/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewStore_Memory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	tests, attempts, err := NewStore(lc, &config.Config{Store: config.Store{Driver: config.DriverMemory}})
	require.NoError(t, err)
	assert.NotNil(t, tests)
	assert.NotNil(t, attempts)
}

func TestNewStore_UnknownDriver(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	_, _, err := NewStore(lc, &config.Config{Store: config.Store{Driver: "sqlite"}})
	assert.Error(t, err)
}
