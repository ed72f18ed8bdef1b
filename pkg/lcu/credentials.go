package lcu

import (
	"math"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/AlsoSylv/samira/pkg/errors"
)

const (
	authTokenArgPrefix = "--remoting-auth-token="
	portArgPrefix      = "--app-port="

	// Lock files are ~53 bytes in practice, the scratch buffer overallocates
	// a little.
	lockFileBufferSize = 60

	lockFileName = "lockfile"
)

// credentials is the common output of both extraction strategies. Both
// values are raw strings, validated later.
type credentials struct {
	port      string
	authToken string
}

// extractCredentials selects the strategy: command-line inspection for the
// client identity unless forceLockFile is set, the lock file otherwise.
// Exactly one strategy runs per call.
func extractCredentials(matched matchedProcess, forceLockFile bool, opener FileOpener) (credentials, *errors.Error) {
	if matched.isClient && !forceLockFile {
		return credentialsFromCommandLine(matched.info.CommandLine)
	}
	return credentialsFromLockFile(matched, opener)
}

// credentialsFromCommandLine scans argv for the auth-token and port flags.
// The flags may appear in either order; scanning stops once both are found.
func credentialsFromCommandLine(args []string) (credentials, *errors.Error) {
	var port, authToken string
	var havePort, haveAuthToken bool

	for _, arg := range args {
		if !haveAuthToken {
			authToken, haveAuthToken = strings.CutPrefix(arg, authTokenArgPrefix)
		}
		if !havePort {
			port, havePort = strings.CutPrefix(arg, portArgPrefix)
		}
		if haveAuthToken && havePort {
			break
		}
	}

	if !havePort {
		return credentials{}, errors.NewPortNotFoundError(nil)
	}
	if !haveAuthToken {
		return credentials{}, errors.NewAuthTokenNotFoundError()
	}

	return credentials{port: port, authToken: authToken}, nil
}

// credentialsFromLockFile resolves the lock file relative to the executable
// and parses its positional fields. The game binary sits one directory
// deeper than the client, so the game identity walks up one extra level.
func credentialsFromLockFile(matched matchedProcess, opener FileOpener) (credentials, *errors.Error) {
	exePath := matched.info.ExePath
	if exePath == "" {
		return credentials{}, errors.NewLockFileNotFoundError()
	}

	dir, ok := parentDir(exePath)
	if !ok {
		return credentials{}, errors.NewLockFileNotFoundError()
	}
	if !matched.isClient {
		if dir, ok = parentDir(dir); !ok {
			return credentials{}, errors.NewLockFileNotFoundError()
		}
	}

	content, lfErr := readLockFile(opener, filepath.Join(dir, lockFileName))
	if lfErr != nil {
		return credentials{}, lfErr
	}

	// Field order is name:pid:port:auth_token:protocol, only the port and
	// auth token are consumed.
	fields := strings.Split(content, ":")
	if len(fields) <= 2 {
		return credentials{}, errors.NewPortNotFoundError(nil).AsLockFileError()
	}
	if len(fields) <= 3 {
		return credentials{}, errors.NewAuthTokenNotFoundError().AsLockFileError()
	}

	return credentials{port: fields[2], authToken: fields[3]}, nil
}

// parentDir returns the containing directory of path, reporting false once
// the walk can make no further progress.
func parentDir(path string) (string, bool) {
	dir := filepath.Dir(path)
	if dir == path {
		return "", false
	}
	return dir, true
}

func readLockFile(opener FileOpener, path string) (string, *errors.Error) {
	file, err := opener.Open(path)
	if err != nil {
		return "", errors.NewIOError(err).AsLockFileError()
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", errors.NewIOError(err).AsLockFileError()
	}

	size := stat.Size()
	if size > math.MaxInt {
		// Unreachable for any real lock file
		panic("lockfile length exceeds the addressable size")
	}
	length := int(size)

	var buf [lockFileBufferSize]byte
	if err := readFull(file, buf[:], length); err != nil {
		return "", errors.NewIOError(err).AsLockFileError()
	}

	content := buf[:length]
	if !utf8.Valid(content) {
		return "", errors.NewInvalidUTF8Error()
	}

	return string(content), nil
}
