package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// compressResponses gzips JSON and plain-text answers. Workbook exports
// carry their own content type and pass through untouched.
var compressResponses = middleware.Compress(gzip.DefaultCompression, "application/json", "text/plain")

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip accepts gzip-encoded request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	compressed := compressResponses(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			compressed.ServeHTTP(w, r)
			return
		}

		zr := gzipReaderPool.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			gzipReaderPool.Put(zr)
			logger.FromRequest(r).Err(err).Str("func", "withGZip").Msg("invalid gzip request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		r.Body = &gzipBody{reader: zr, raw: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		compressed.ServeHTTP(w, r)
	})
}

// gzipBody returns its reader to the pool on the first Close.
type gzipBody struct {
	reader *gzip.Reader
	raw    io.ReadCloser
}

func (b *gzipBody) Read(p []byte) (int, error) {
	if b.reader == nil {
		return 0, http.ErrBodyReadAfterClose
	}
	return b.reader.Read(p)
}

func (b *gzipBody) Close() error {
	if b.reader != nil {
		_ = b.reader.Close()
		gzipReaderPool.Put(b.reader)
		b.reader = nil
	}
	return b.raw.Close()
}
