// Package corpusio reads corpus, word list and phonetic system CSV files
// and writes metric records back out as CSV.
package corpusio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is a read-only memory-mapped input file. Corpus files can be large;
// mapping them lets the CSV reader page them in on demand.
type File struct {
	f    *os.File
	data mmap.MMap
}

// Open maps path into memory.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Zero-length files cannot be mapped.
	if info.Size() == 0 {
		return &File{f: f}, nil
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &File{f: f, data: data}, nil
}

// Bytes returns the mapped contents. They are valid until Close.
func (m *File) Bytes() []byte { return m.data }

// Reader returns a reader over the mapped contents.
func (m *File) Reader() io.Reader { return bytes.NewReader(m.data) }

// Close unmaps and closes the file.
func (m *File) Close() error {
	var err error
	if m.data != nil {
		err = m.data.Unmap()
		m.data = nil
	}
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// withFile maps path and hands its contents to read.
func withFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	m, err := Open(path)
	if err != nil {
		return zero, err
	}
	defer m.Close()

	v, err := read(m.Reader())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
