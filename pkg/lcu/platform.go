package lcu

import "runtime"

// DefaultProcessNames returns the stock client and game executable names for
// the current platform. There is no official Linux client, so both come back
// empty there and have to be supplied by the caller.
func DefaultProcessNames() (clientName, gameName string) {
	switch runtime.GOOS {
	case "windows":
		return "LeagueClientUx.exe", "League of Legends.exe"
	case "darwin":
		return "LeagueClientUx", "League of Legends"
	default:
		return "", ""
	}
}
