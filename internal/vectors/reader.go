package vectors

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Open opens the vector file name, decompressing it according to its
// extension: ".gz", ".zst" or ".lz4".
func Open(name string) (_ io.ReadCloser, err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	r, err := decompress(f, filepath.Ext(name))
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// decompressor closes both the decompressing reader and the file under it.
type decompressor struct {
	io.Reader
	close func()
	f     *os.File
}

func (d *decompressor) Close() error {
	if d.close != nil {
		d.close()
	}
	return d.f.Close()
}

func decompress(f *os.File, ext string) (io.ReadCloser, error) {
	switch strings.ToLower(ext) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &decompressor{Reader: zr, close: func() { zr.Close() }, f: f}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &decompressor{Reader: zr, close: zr.Close, f: f}, nil
	case ".lz4":
		return &decompressor{Reader: lz4.NewReader(f), f: f}, nil
	}
	return f, nil
}

// Read reads all the vectors from r. Lines that fail to parse are reported
// with their line number.
func Read(r io.Reader) (cases []Case, err error) {
	defer Error.WrapP(&err)

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		c, err := ParseCase(text)
		if err != nil {
			return cases, Error.New("line %d: %v", line, err)
		}
		c.Line = line
		cases = append(cases, c)
	}
	return cases, sc.Err()
}

// ReadFile reads all the vectors of the named file.
func ReadFile(name string) ([]Case, error) {
	r, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Read(r)
}
