// Package respond encodes API responses. Successful bodies travel as a
// Payload carrying the ETag, freshness window and where the data came from;
// errors use one JSON envelope.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/albapepper/ballknowledge-data/internal/cache"
)

// Source says where a payload's data was read from. It is reported in the
// X-Cache header: HIT for any cache layer, MISS for a provider fetch.
type Source bool

const (
	Fetched Source = false
	Cached  Source = true
)

// SourceOf maps a pipeline "cached" flag to a Source.
func SourceOf(cached bool) Source { return Source(cached) }

func (s Source) header() string {
	if s == Cached {
		return "HIT"
	}
	return "MISS"
}

// Payload is an encoded response body ready to serve.
type Payload struct {
	Data   []byte
	ETag   string
	TTL    time.Duration
	Source Source
}

// Encode marshals v into a Payload with a weak ETag over the body.
func Encode(v any, ttl time.Duration, src Source) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Payload{}, fmt.Errorf("encode response: %w", err)
	}
	return Payload{Data: data, ETag: cache.ComputeETag(data), TTL: ttl, Source: src}, nil
}

// Serve writes p, answering 304 when the request's If-None-Match already
// holds p's ETag.
func Serve(w http.ResponseWriter, r *http.Request, p Payload) {
	h := w.Header()
	h.Set("ETag", p.ETag)
	h.Set("X-Cache", p.Source.header())
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), p.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.Set("Content-Type", "application/json")
	h.Set("Vary", "Accept-Encoding")
	if p.TTL > 0 {
		secs := int(p.TTL.Seconds())
		h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", secs, secs/2))
	} else {
		h.Set("Cache-Control", "no-cache")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(p.Data)
}

// Object writes v uncached. Health checks and random picks change per
// request.
func Object(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// --------------------------------------------------------------------------
// Errors
// --------------------------------------------------------------------------

// ErrorResponse is the envelope of every API error.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody is the content of an ErrorResponse.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Error sends an error envelope. Errors are never cached.
func Error(w http.ResponseWriter, status int, body ErrorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: body})
}
