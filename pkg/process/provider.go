package process

import (
	"fmt"

	gopsprocess "github.com/shirou/gopsutil/v3/process"

	"github.com/AlsoSylv/samira/pkg/logging"
)

type systemProvider struct {
	logger logging.Logger
}

// NewSystemProvider returns a Provider backed by the platform process table.
func NewSystemProvider(logger logging.Logger) Provider {
	return &systemProvider{
		logger: logger,
	}
}

func (p *systemProvider) Snapshot(options SnapshotOptions) (*Snapshot, error) {
	procs, err := gopsprocess.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	infos := make([]Info, 0, len(procs))
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			// Processes can exit between listing and inspection
			continue
		}

		info := Info{
			PID:  proc.Pid,
			Name: name,
		}
		if exePath, err := proc.Exe(); err == nil {
			info.ExePath = exePath
		}
		if options.CollectCommandLine {
			if args, err := proc.CmdlineSlice(); err == nil {
				info.CommandLine = args
			}
		}

		infos = append(infos, info)
	}

	p.logger.Debugf("Collected process snapshot, processes: %d, command lines: %t",
		len(infos), options.CollectCommandLine)

	return &Snapshot{Processes: infos}, nil
}
