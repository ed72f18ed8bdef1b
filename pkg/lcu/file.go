package lcu

import (
	"io"
	"io/fs"
	"os"
)

// FileOpener is the file-system access used by the lock-file strategy.
// The zero-value production implementation opens real files.
type FileOpener interface {
	Open(path string) (fs.File, error)
}

type osOpener struct{}

func (osOpener) Open(path string) (fs.File, error) {
	return os.Open(path)
}

// maxConsecutiveEmptyReads bounds a reader that keeps returning (0, nil),
// the same limit bufio uses.
const maxConsecutiveEmptyReads = 100

// readFull reads exactly length bytes from file into buf, accumulating short
// reads. It fails with io.ErrShortBuffer when buf fills up before length
// bytes arrived, io.ErrUnexpectedEOF when the file ends early, and
// io.ErrNoProgress when the reader stalls without data or error.
func readFull(file fs.File, buf []byte, length int) error {
	read := 0
	emptyReads := 0
	for read < length {
		if read == len(buf) {
			return io.ErrShortBuffer
		}

		n, err := file.Read(buf[read:])
		read += n
		if err == io.EOF {
			if read < length {
				return io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return err
		}

		if n > 0 {
			emptyReads = 0
			continue
		}
		emptyReads++
		if emptyReads >= maxConsecutiveEmptyReads {
			return io.ErrNoProgress
		}
	}
	return nil
}
