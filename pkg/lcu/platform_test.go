package lcu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProcessNames(t *testing.T) {
	clientName, gameName := DefaultProcessNames()

	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, "LeagueClientUx.exe", clientName)
		assert.Equal(t, "League of Legends.exe", gameName)
	case "darwin":
		assert.Equal(t, "LeagueClientUx", clientName)
		assert.Equal(t, "League of Legends", gameName)
	default:
		// No official client elsewhere
		assert.Empty(t, clientName)
		assert.Empty(t, gameName)
	}
}
