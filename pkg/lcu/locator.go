package lcu

import (
	"github.com/AlsoSylv/samira/pkg/errors"
	"github.com/AlsoSylv/samira/pkg/process"
)

// matchedProcess is the locator result: the process to interrogate plus the
// identity that matched. The two identities never share a name, but the
// client flag still has to come from the matched process itself because it
// drives both strategy selection and lock-file depth.
type matchedProcess struct {
	info     process.Info
	isClient bool
}

// locateProcess finds the first process named either clientName or gameName.
// Snapshot order is unspecified, so callers get "some matching process", not
// a particular one.
func locateProcess(snapshot *process.Snapshot, clientName, gameName string) (matchedProcess, *errors.Error) {
	for _, info := range snapshot.Processes {
		isClient := info.Name == clientName
		if isClient || info.Name == gameName {
			return matchedProcess{info: info, isClient: isClient}, nil
		}
	}
	return matchedProcess{}, errors.NewNotRunningError()
}
