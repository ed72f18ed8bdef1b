// Package lcu discovers a locally running League client or game process and
// recovers the loopback endpoint and Basic-auth header needed to talk to the
// client's local API.
//
// Credentials come from one of two strategies: parsing the client's launch
// arguments, or parsing the lock file the client writes next to its install.
// The strategy is selected once per call from the matched identity and the
// ForceLockFile policy.
package lcu

import (
	"net/netip"

	"github.com/AlsoSylv/samira/pkg/errors"
	"github.com/AlsoSylv/samira/pkg/logging"
	"github.com/AlsoSylv/samira/pkg/process"
)

// Options configures a single discovery call.
type Options struct {
	// ClientProcessName and GameProcessName are the executable names to
	// search for. They are platform-specific, see DefaultProcessNames.
	ClientProcessName string
	GameProcessName   string

	// ForceLockFile skips command-line inspection even for the client
	// identity and goes straight to the lock file.
	ForceLockFile bool
}

// Result is the outcome of a successful discovery. It is the only value
// retained past the call.
type Result struct {
	// Endpoint is the loopback address the client API listens on.
	Endpoint netip.AddrPort

	// AuthHeader is a ready-to-send "Basic <base64>" authorization value.
	AuthHeader string
}

// Discoverer runs credential discovery against a process snapshot provider.
type Discoverer struct {
	provider process.Provider
	opener   FileOpener
	logger   logging.Logger
}

// NewDiscoverer creates a Discoverer. A nil provider falls back to the
// system process table, a nil opener to the real file system, and a nil
// logger to a silent one.
func NewDiscoverer(provider process.Provider, opener FileOpener, logger logging.Logger) *Discoverer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if provider == nil {
		provider = process.NewSystemProvider(logger)
	}
	if opener == nil {
		opener = osOpener{}
	}
	return &Discoverer{
		provider: provider,
		opener:   opener,
		logger:   logger,
	}
}

// Discover takes a fresh process snapshot and runs discovery against it.
// Snapshot acquisition failures are reported with the IO kind and no
// lock-file marking.
func (d *Discoverer) Discover(options Options) (Result, error) {
	// Command lines are only worth collecting when the command-line
	// strategy is allowed to run.
	snapshot, err := d.provider.Snapshot(process.SnapshotOptions{
		CollectCommandLine: !options.ForceLockFile,
	})
	if err != nil {
		d.logger.Errorf("Failed to acquire process snapshot, error: %v", err)
		return Result{}, errors.NewIOError(err)
	}

	return d.DiscoverFromSnapshot(snapshot, options)
}

// DiscoverFromSnapshot runs discovery against an already-acquired snapshot.
// The snapshot is only read, never retained past the call.
func (d *Discoverer) DiscoverFromSnapshot(snapshot *process.Snapshot, options Options) (Result, error) {
	result, discErr := d.discover(snapshot, options)
	if discErr != nil {
		return Result{}, discErr
	}
	return result, nil
}

func (d *Discoverer) discover(snapshot *process.Snapshot, options Options) (Result, *errors.Error) {
	matched, discErr := locateProcess(snapshot, options.ClientProcessName, options.GameProcessName)
	if discErr != nil {
		d.logger.Debugf("No client or game process in snapshot, client name: %s, game name: %s",
			options.ClientProcessName, options.GameProcessName)
		return Result{}, discErr
	}

	d.logger.Debugf("Found process, name: %s, pid: %d, client: %t",
		matched.info.Name, matched.info.PID, matched.isClient)

	creds, discErr := extractCredentials(matched, options.ForceLockFile, d.opener)
	if discErr != nil {
		return Result{}, discErr
	}

	endpoint, discErr := parseEndpoint(creds.port)
	if discErr != nil {
		return Result{}, discErr
	}

	d.logger.Infof("Discovered client API, endpoint: %s", endpoint)

	return Result{
		Endpoint:   endpoint,
		AuthHeader: basicAuthHeader(creds.authToken),
	}, nil
}

// Discover is a convenience wrapper over NewDiscoverer with all defaults,
// using the live system process table.
func Discover(options Options) (Result, error) {
	return NewDiscoverer(nil, nil, nil).Discover(options)
}
