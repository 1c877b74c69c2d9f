package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	payload := []byte(`{"images":[]}`)

	for _, archiveType := range []string{"zip", "tar"} {
		t.Run(archiveType, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(archiveType, &buf, "data.json")
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := NewReader(archiveType, io.NopCloser(&buf))
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestReaderWithoutJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewTarWriter(&buf, "notes.txt")
	w.Write([]byte("hello"))
	require.NoError(t, w.Close())

	_, err := NewTarReader(io.NopCloser(&buf))
	assert.Error(t, err)
}

func TestUnsupportedArchiveType(t *testing.T) {
	_, err := NewWriter("rar", io.Discard, "data.json")
	assert.Error(t, err)

	_, err = NewReader("rar", io.NopCloser(&bytes.Buffer{}))
	assert.Error(t, err)
}

func TestTarReaderStopsAtFileEnd(t *testing.T) {
	var buf bytes.Buffer
	w := NewTarWriter(&buf, "data.json")
	w.Write([]byte(`{"images":[]}`))
	require.NoError(t, w.Close())

	r, err := NewTarReader(io.NopCloser(&buf))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, `{"images":[]}`, string(got))

	n, err := r.Read(make([]byte, 8))
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}
