package lcu

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFileInfo implements fs.FileInfo with a configurable size.
type fakeFileInfo struct {
	size int64
}

func (i fakeFileInfo) Name() string       { return "lockfile" }
func (i fakeFileInfo) Size() int64        { return i.size }
func (i fakeFileInfo) Mode() fs.FileMode  { return 0 }
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return false }
func (i fakeFileInfo) Sys() interface{}   { return nil }

// chunkedFile serves its data at most chunk bytes per read, then EOF.
// statSize overrides the reported length when non-zero.
type chunkedFile struct {
	data     []byte
	pos      int
	chunk    int
	statSize int64
	statErr  error
}

func (f *chunkedFile) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := len(p)
	if f.chunk > 0 && n > f.chunk {
		n = f.chunk
	}
	if remaining := len(f.data) - f.pos; n > remaining {
		n = remaining
	}
	copy(p, f.data[f.pos:f.pos+n])
	f.pos += n
	return n, nil
}

func (f *chunkedFile) Stat() (fs.FileInfo, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	size := f.statSize
	if size == 0 {
		size = int64(len(f.data))
	}
	return fakeFileInfo{size: size}, nil
}

func (f *chunkedFile) Close() error { return nil }

// stalledFile never delivers data and never errors.
type stalledFile struct{}

func (stalledFile) Read(p []byte) (int, error) { return 0, nil }
func (stalledFile) Stat() (fs.FileInfo, error) { return fakeFileInfo{size: 10}, nil }
func (stalledFile) Close() error               { return nil }

// fakeOpener hands out a canned file for any path and records the paths it
// was asked for.
type fakeOpener struct {
	file   fs.File
	err    error
	opened []string
}

func (o *fakeOpener) Open(path string) (fs.File, error) {
	o.opened = append(o.opened, path)
	if o.err != nil {
		return nil, o.err
	}
	return o.file, nil
}

func TestReadFull_SingleRead(t *testing.T) {
	data := []byte("name:1234:9001:TOKEN:1")
	file := &chunkedFile{data: data}

	var buf [lockFileBufferSize]byte
	err := readFull(file, buf[:], len(data))

	require.NoError(t, err)
	assert.Equal(t, data, buf[:len(data)])
}

func TestReadFull_AccumulatesShortReads(t *testing.T) {
	data := []byte("name:1234:9001:TOKEN:1")
	file := &chunkedFile{data: data, chunk: 5}

	var buf [lockFileBufferSize]byte
	err := readFull(file, buf[:], len(data))

	require.NoError(t, err)
	assert.Equal(t, data, buf[:len(data)])
}

func TestReadFull_ZeroLength(t *testing.T) {
	file := &chunkedFile{}

	var buf [lockFileBufferSize]byte
	err := readFull(file, buf[:], 0)

	assert.NoError(t, err)
}

func TestReadFull_UnexpectedEOF(t *testing.T) {
	// The file claims 50 bytes but only delivers 20
	file := &chunkedFile{data: make([]byte, 20)}

	var buf [lockFileBufferSize]byte
	err := readFull(file, buf[:], 50)

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFull_ShortBuffer(t *testing.T) {
	file := &chunkedFile{data: make([]byte, 100)}

	var buf [lockFileBufferSize]byte
	err := readFull(file, buf[:], 100)

	assert.ErrorIs(t, err, io.ErrShortBuffer)
}

func TestReadFull_NoProgress(t *testing.T) {
	var buf [lockFileBufferSize]byte
	err := readFull(stalledFile{}, buf[:], 10)

	assert.ErrorIs(t, err, io.ErrNoProgress)
}

func TestOSOpener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lockfile")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	file, err := osOpener{}.Open(path)
	require.NoError(t, err)
	defer file.Close()

	stat, err := file.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(7), stat.Size())

	var buf [lockFileBufferSize]byte
	require.NoError(t, readFull(file, buf[:], 7))
	assert.Equal(t, "content", string(buf[:7]))
}

func TestOSOpener_Missing(t *testing.T) {
	_, err := osOpener{}.Open(filepath.Join(t.TempDir(), "lockfile"))

	assert.ErrorIs(t, err, fs.ErrNotExist)
}
