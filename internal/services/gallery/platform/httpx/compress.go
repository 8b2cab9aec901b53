package httpx

import (
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Compress negotiates brotli or gzip response encoding from Accept-Encoding.
// Bodyless and partial-content responses pass through untouched.
func Compress() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			cw := &compressWriter{ResponseWriter: w, request: r}
			defer cw.close()
			next.ServeHTTP(cw, r)
		})
	}
}

type compressWriter struct {
	http.ResponseWriter
	request     *http.Request
	encoder     io.WriteCloser
	passthrough bool
	wroteHeader bool
}

func (c *compressWriter) WriteHeader(status int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	if status < http.StatusOK || status == http.StatusNoContent ||
		status == http.StatusPartialContent || status == http.StatusNotModified {
		c.passthrough = true
	} else {
		c.start()
	}
	c.ResponseWriter.WriteHeader(status)
}

func (c *compressWriter) Write(body []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.passthrough || c.encoder == nil {
		return c.ResponseWriter.Write(body)
	}
	return c.encoder.Write(body)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (c *compressWriter) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}

func (c *compressWriter) start() {
	if c.encoder != nil {
		return
	}
	AddVary(c.ResponseWriter.Header(), "Accept-Encoding")
	c.ResponseWriter.Header().Del("Content-Length")
	c.encoder = brotli.HTTPCompressor(c.ResponseWriter, c.request)
}

func (c *compressWriter) close() {
	if c.encoder != nil {
		_ = c.encoder.Close()
	}
}

// AddVary appends value to the Vary header unless it is already listed.
func AddVary(header http.Header, value string) {
	for _, line := range header.Values("Vary") {
		for _, existing := range strings.Split(line, ",") {
			if strings.EqualFold(strings.TrimSpace(existing), value) {
				return
			}
		}
	}
	header.Add("Vary", value)
}
