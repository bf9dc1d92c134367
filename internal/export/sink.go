package export

import (
	"os"
	"path/filepath"
	"sync"
)

// Sink receives finished export artifacts. Isolating the side effects
// here keeps the export service testable without a browser or disk.
type Sink interface {
	WriteFile(name string, data []byte) error
	RequestPrint() error
}

// FileSink writes exports into a directory. RequestPrint succeeds as a
// no-op: the print dialog belongs to the client, the server only
// prepares the print-ready artifact.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

func (s *FileSink) WriteFile(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0o644)
}

func (s *FileSink) RequestPrint() error {
	return nil
}

// MemorySink captures exports in memory for tests.
type MemorySink struct {
	mu     sync.Mutex
	Files  map[string][]byte
	Prints int
}

func NewMemorySink() *MemorySink {
	return &MemorySink{Files: map[string][]byte{}}
}

func (s *MemorySink) WriteFile(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Files[name] = data
	return nil
}

func (s *MemorySink) RequestPrint() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Prints++
	return nil
}
