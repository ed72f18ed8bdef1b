package process

// Info describes a single running process as seen at snapshot time.
type Info struct {
	PID int32

	// Name is the base executable name, e.g. "LeagueClientUx.exe".
	Name string

	// ExePath is the absolute path of the executable, empty when the
	// platform would not reveal it.
	ExePath string

	// CommandLine is the argument vector. Empty when collection was
	// disabled for the snapshot or the platform would not reveal it.
	CommandLine []string
}

// SnapshotOptions controls how much detail a snapshot collects. Command lines
// are the expensive part on most platforms, so collection is opt-in.
type SnapshotOptions struct {
	CollectCommandLine bool
}

// Snapshot is a point-in-time view of the running processes.
type Snapshot struct {
	Processes []Info
}

// Provider acquires process snapshots.
type Provider interface {
	Snapshot(options SnapshotOptions) (*Snapshot, error)
}
