// Package compress defines the pluggable codec applied to large cache
// payloads, plus the implementations shipped with the cache.
package compress

import "errors"

// ErrCorrupted is returned by Decompress when the blob cannot be restored.
// The store treats the offending entry as a miss and purges it.
var ErrCorrupted = errors.New("compress: corrupted payload")

// Codec transforms payload bytes on the way into and out of the cache.
//
// Compress and Decompress must form an exact round trip:
// Decompress(Compress(b)) == b for every input. A codec that cannot shrink a
// particular payload may return output larger than its input; the store
// checks and keeps the smaller form.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(blob []byte) ([]byte, error)

	// Name identifies the codec in logs and demos.
	Name() string
}

// Passthrough is the explicit no-op codec. It performs no size reduction and
// says so, rather than faking a ratio. Useful when the cost of real
// compression is not worth it for a deployment.
type Passthrough struct{}

func (Passthrough) Compress(data []byte) ([]byte, error)   { return data, nil }
func (Passthrough) Decompress(blob []byte) ([]byte, error) { return blob, nil }
func (Passthrough) Name() string                           { return "none" }
