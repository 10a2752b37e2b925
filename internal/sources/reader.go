package sources

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Lines larger than this are a corrupt source, not a log.
const maxLineSize = 1 << 20

// Source yields decoded text lines from one access-log file, in file
// order, decompressing on the fly when the path ends in .gz. It is
// forward-only and not restartable; reopening starts a new stream.
// Open and decode failures are I/O errors, fatal to the run, and are
// kept distinct from per-line parse failures, which the source never
// sees.
type Source struct {
	file    *os.File
	gz      *gzip.Reader
	scanner *bufio.Scanner
}

// Open opens the log file at path for line-by-line reading.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log source %q: %w", path, err)
	}

	src := &Source{file: file}
	var reader io.Reader = file

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open gzip stream %q: %w", path, err)
		}
		src.gz = gz
		reader = gz
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	src.scanner = scanner

	return src, nil
}

// Scan advances to the next line. It returns false at end of stream or
// on a read error; check Err afterwards.
func (s *Source) Scan() bool {
	return s.scanner.Scan()
}

// Text returns the current line without its trailing newline.
func (s *Source) Text() string {
	return s.scanner.Text()
}

// Err returns the first read or decompression error encountered, if any.
func (s *Source) Err() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read log source: %w", err)
	}
	return nil
}

// Close releases the decompressor and the underlying file.
func (s *Source) Close() error {
	var gzErr error
	if s.gz != nil {
		gzErr = s.gz.Close()
	}
	if err := s.file.Close(); err != nil {
		return err
	}
	return gzErr
}
