// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
// Decoders, mixers and the grain engine all implement it.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the number
	// of float32 values written (not frames). n == 0 with io.EOF means the
	// stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the preferred read size in samples.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys, usually file extensions such as "wav" or
// "ogg", to decoders. It is safe for concurrent use.
type Registry struct {
	mtx    sync.RWMutex
	codecs map[string]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

// Register binds d to format, replacing any earlier binding. Keys are case
// insensitive and a leading dot is ignored, so ".WAV" and "wav" are the same.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

// Get returns the decoder bound to format.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// ForPath picks the decoder matching the extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, ErrUnknownFormat
	}

	d, ok := r.Get(ext)
	if !ok {
		return nil, ErrUnknownFormat
	}
	return d, nil
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return slices.Sorted(maps.Keys(r.codecs))
}
