package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/drstein77/storefront/internal/compress"
	"github.com/drstein77/storefront/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrFetch indicates the catalog could not be retrieved at all.
	ErrFetch = errors.New("fetch catalog")
	// ErrStatus indicates the remote answered with a non-success status.
	ErrStatus = errors.New("unexpected status")
	// ErrDecode indicates the payload is not a catalog document.
	ErrDecode = errors.New("decode catalog")
)

// Source yields the storefront items.
type Source interface {
	Load(context.Context) ([]models.Item, error)
}

type Log interface {
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
}

// New picks an HTTP source for http(s) locations and a file source otherwise.
func New(location string, client *http.Client) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, client)
	}
	return NewFileSource(location)
}

// HTTPSource loads the catalog from a remote JSON document.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Load(ctx context.Context) ([]models.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	return Decode(resp.Body)
}

func (s *HTTPSource) String() string {
	return s.url
}

// FileSource loads the catalog from a local JSON file, or from a .zip or
// .tar archive containing one.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	// archives are expected to hold the catalog as their first JSON file
	archiveType := strings.TrimPrefix(strings.ToLower(filepath.Ext(s.path)), ".")
	if archiveType != "zip" && archiveType != "tar" {
		defer f.Close()
		return Decode(f)
	}

	r, err := compress.NewReader(archiveType, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer r.Close()

	return Decode(r)
}

func (s *FileSource) String() string {
	return s.path
}

// Decode parses a {"images": [...]} document. A document without an
// images array, or followed by anything but whitespace, is rejected.
func Decode(r io.Reader) ([]models.Item, error) {
	var doc struct {
		Images *[]models.Item `json:"images"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrDecode)
	}
	if doc.Images == nil {
		return nil, fmt.Errorf("%w: missing images array", ErrDecode)
	}
	return *doc.Images, nil
}
