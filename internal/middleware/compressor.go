package middleware

import (
	"fmt"
	"io"
	"net/http"

	"github.com/drstein77/storefront/internal/compress"
)

var archiveContentTypes = map[string]string{
	"zip": "application/zip",
	"tar": "application/x-tar",
}

// ArchiveTypeMiddleware packs the response body into the archive named by
// the archiveType query parameter, zip by default.
func ArchiveTypeMiddleware(fileName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get the archiveType query parameter
			archiveType := r.URL.Query().Get("archiveType")
			if archiveType == "" {
				archiveType = "zip" // Default value
			}
			if _, ok := archiveContentTypes[archiveType]; !ok {
				http.Error(w, fmt.Sprintf("unsupported archive type %q", archiveType), http.StatusBadRequest)
				return
			}

			// Dynamically apply compression middleware
			compressMiddleware := CreateCompressMiddleware(archiveType, fileName)
			compressMiddleware(next).ServeHTTP(w, r)
		})
	}
}

func CreateCompressMiddleware(archiveType, fileName string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw, err := compress.NewWriter(archiveType, w, fileName)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			defer cw.Close()

			w.Header().Set("Content-Type", archiveContentTypes[archiveType])
			w.Header().Set("Content-Disposition",
				fmt.Sprintf(`attachment; filename="%s.%s"`, fileName, archiveType))

			// Transfer control to the handler
			h.ServeHTTP(&archiveWriter{ResponseWriter: w, archive: cw}, r)
		})
	}
}

// archiveWriter redirects the body into an archive while headers and the
// status still go to the client.
type archiveWriter struct {
	http.ResponseWriter
	archive io.Writer
}

func (a *archiveWriter) Write(p []byte) (int, error) {
	return a.archive.Write(p)
}
