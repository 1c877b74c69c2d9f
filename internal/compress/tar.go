package compress

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"
	"strings"
	"time"
)

// TarReader implements io.ReadCloser for reading the first JSON file of a TAR archive.
type TarReader struct {
	current io.Reader
}

// NewTarReader creates a new TarReader, positioned at the first JSON file of the archive.
func NewTarReader(r io.ReadCloser) (*TarReader, error) {
	defer r.Close()

	// Read the entire archive into a buffer
	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}

	tr := tar.NewReader(bytes.NewReader(buf.Bytes()))

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Typeflag == tar.TypeReg && strings.HasSuffix(strings.ToLower(header.Name), ".json") {
			return &TarReader{current: tr}, nil
		}
	}

	return nil, errors.New("JSON file not found in the TAR archive")
}

// Read reads data from the current JSON file.
func (t *TarReader) Read(p []byte) (int, error) {
	return t.current.Read(p)
}

// Close finishes reading.
func (t *TarReader) Close() error {
	return nil
}

// TarWriter packages written data as a single file of a TAR archive.
// The header needs the size, so the content is buffered until Close.
type TarWriter struct {
	w        io.Writer
	fileName string
	buf      bytes.Buffer
}

// NewTarWriter creates a new TarWriter with the specified file name inside the archive.
func NewTarWriter(w io.Writer, fileName string) *TarWriter {
	return &TarWriter{w: w, fileName: fileName}
}

// Write buffers data of the file inside the TAR archive.
func (t *TarWriter) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

// Close writes the header and the buffered file and closes the archive.
func (t *TarWriter) Close() error {
	tw := tar.NewWriter(t.w)
	header := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     t.fileName,
		Mode:     0o644,
		Size:     int64(t.buf.Len()),
		ModTime:  time.Now(),
	}
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if _, err := tw.Write(t.buf.Bytes()); err != nil {
		return err
	}
	return tw.Close()
}
