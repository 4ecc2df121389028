package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently decompresses gzip-encoded request bodies and
// compresses response bodies for clients that advertise gzip support via
// the Accept-Encoding header. Writers and readers are pooled to avoid
// per-request allocations.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			gzReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzReader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gzReader)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			r.Body = &wrappedReadCloser{reader: gzReader, original: r.Body}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzWriter.Reset(w)
		defer func() {
			_ = gzWriter.Close()
			gzipWriterPool.Put(gzWriter)
		}()

		w.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, writer: gzWriter}, r)
	})
}

// wrappedReadCloser closes both the gzip reader and the original request
// body, and returns the reader to the pool once the body is consumed.
type wrappedReadCloser struct {
	reader   *gzip.Reader
	original io.ReadCloser
}

func (w *wrappedReadCloser) Read(p []byte) (int, error) {
	return w.reader.Read(p)
}

func (w *wrappedReadCloser) Close() error {
	err := w.reader.Close()
	gzipReaderPool.Put(w.reader)

	if closeErr := w.original.Close(); err == nil {
		err = closeErr
	}
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
	return g.writer.Write(b)
}
