package sources

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlain(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeGzip(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return path
}

func readAllLines(t *testing.T, src *Source) []string {
	t.Helper()
	var lines []string
	for src.Scan() {
		lines = append(lines, src.Text())
	}
	require.NoError(t, src.Err())
	return lines
}

func TestOpen_PlainFileYieldsLinesInOrder(t *testing.T) {
	t.Parallel()

	path := writePlain(t, t.TempDir(), "nginx-access-ui.log-20170630", "first\nsecond\nthird\n")

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"first", "second", "third"}, readAllLines(t, src))
}

func TestOpen_GzipFileYieldsDecodedLines(t *testing.T) {
	t.Parallel()

	path := writeGzip(t, t.TempDir(), "nginx-access-ui.log-20170630.gz", "first\nsecond\n")

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"first", "second"}, readAllLines(t, src))
}

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.log"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log source")
}

func TestOpen_CorruptGzip(t *testing.T) {
	t.Parallel()

	path := writePlain(t, t.TempDir(), "nginx-access-ui.log-20170630.gz", "this is not gzip data")

	_, err := Open(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open gzip stream")
}

func TestOpen_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writePlain(t, t.TempDir(), "nginx-access-ui.log-20170630", "")

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.False(t, src.Scan())
	assert.NoError(t, src.Err())
}

func TestOpen_LongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 200*1024)
	path := writePlain(t, t.TempDir(), "nginx-access-ui.log-20170630", long+"\n")

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	lines := readAllLines(t, src)
	require.Len(t, lines, 1)
	assert.Equal(t, long, lines[0])
}
