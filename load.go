package gltf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"go.uber.org/zap"
)

// BufferSource resolves the URIs a document references into bytes. Both
// calls are already-resolved, blocking reads: Buffer must return exactly
// byteLength bytes or fail, and Image returns the encoded image blob. URI
// resolution rules and image codecs are the source's concern, not this
// package's.
type BufferSource interface {
	Buffer(uri string, byteLength int) ([]byte, error)
	Image(uri string) ([]byte, error)
}

// DirSource resolves URIs relative to a directory, typically the directory
// holding the document itself.
type DirSource string

func (d DirSource) Buffer(uri string, byteLength int) ([]byte, error) {
	f, err := os.Open(filepath.Join(string(d), filepath.FromSlash(uri)))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data := make([]byte, byteLength)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (d DirSource) Image(uri string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), filepath.FromSlash(uri)))
}

// MemSource serves payloads from memory, keyed by URI.
type MemSource map[string][]byte

func (m MemSource) Buffer(uri string, byteLength int) ([]byte, error) {
	data, ok := m[uri]
	if !ok {
		return nil, fmt.Errorf("no payload for %q", uri)
	}
	if len(data) < byteLength {
		return nil, io.ErrUnexpectedEOF
	}
	return data[:byteLength], nil
}

func (m MemSource) Image(uri string) ([]byte, error) {
	data, ok := m[uri]
	if !ok {
		return nil, fmt.Errorf("no payload for %q", uri)
	}
	return data, nil
}

// LoadErrorKind separates payload I/O failures from image resolution
// failures.
type LoadErrorKind int

const (
	LoadIO LoadErrorKind = iota
	LoadImage
)

// LoadError is a fatal payload pre-loading failure. Loading aborts on the
// first one; no partially loaded Document is returned.
type LoadError struct {
	Kind LoadErrorKind
	URI  string
	Err  error
}

func (e *LoadError) Error() string {
	what := "buffer"
	if e.Kind == LoadImage {
		what = "image"
	}
	return fmt.Sprintf("gltf: loading %s %q: %v", what, e.URI, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadOption configures the load pipeline.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger         *zap.Logger
	skipValidation bool
}

// WithLogger records payload pre-loads and validation warnings on the given
// logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = l }
}

// SkipValidation makes Import return the document without running Validate.
// Unchecked access to such a document is undefined on malformed input.
func SkipValidation() LoadOption {
	return func(c *loadConfig) { c.skipValidation = true }
}

func newLoadConfig(opts []LoadOption) loadConfig {
	c := loadConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// alignedBytes returns an n-byte slice whose first byte sits on a 4-byte
// boundary. It over-allocates by 3 bytes and trims 0-3 leading bytes to reach
// the boundary, since the runtime guarantees no particular alignment for
// small byte slices.
func alignedBytes(n int) []byte {
	buf := make([]byte, n+3)
	off := 0
	if rem := uintptr(unsafe.Pointer(unsafe.SliceData(buf))) % 4; rem != 0 {
		off = int(4 - rem)
	}
	return buf[off : off+n : off+n]
}

// LoadFrom pre-loads every buffer and image payload of a parsed document
// from src. All I/O happens here, eagerly, so that later accessor reads are
// pure memory operations. The first failure aborts with a *LoadError.
func LoadFrom(doc *Document, src BufferSource, opts ...LoadOption) error {
	cfg := newLoadConfig(opts)

	bufferData := make([][]byte, len(doc.Buffers))
	for i := range doc.Buffers {
		b := &doc.Buffers[i]
		data, err := src.Buffer(b.URI, int(b.ByteLength))
		if err != nil {
			return &LoadError{Kind: LoadIO, URI: b.URI, Err: err}
		}
		if len(data) != int(b.ByteLength) {
			return &LoadError{Kind: LoadIO, URI: b.URI, Err: io.ErrUnexpectedEOF}
		}
		aligned := alignedBytes(len(data))
		copy(aligned, data)
		bufferData[i] = aligned
		cfg.logger.Debug("buffer pre-loaded",
			zap.String("uri", b.URI), zap.Int("bytes", len(data)))
	}

	imageData := make([]imagePayload, len(doc.Images))
	for i := range doc.Images {
		img := &doc.Images[i]
		if img.BufferView != nil {
			imageData[i] = imagePayload{fromView: true, view: *img.BufferView}
			continue
		}
		data, err := src.Image(img.URI)
		if err != nil {
			return &LoadError{Kind: LoadImage, URI: img.URI, Err: err}
		}
		imageData[i] = imagePayload{owned: data}
		cfg.logger.Debug("image pre-loaded",
			zap.String("uri", img.URI), zap.Int("bytes", len(data)))
	}

	doc.bufferData = bufferData
	doc.imageData = imageData
	return nil
}

// Load reads, parses and pre-loads the document at path, resolving relative
// URIs against the document's directory.
func Load(path string, opts ...LoadOption) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: LoadIO, URI: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := LoadFrom(doc, DirSource(filepath.Dir(path)), opts...); err != nil {
		return nil, err
	}
	return doc, nil
}

// Import is the full pipeline: read, parse, pre-load, validate. Validation
// warnings are returned (and logged when a logger is configured); validation
// errors fail the import with the Diagnostics as the error.
func Import(path string, opts ...LoadOption) (*Document, Diagnostics, error) {
	cfg := newLoadConfig(opts)
	doc, err := Load(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	if cfg.skipValidation {
		return doc, nil, nil
	}
	warnings, errs := doc.Validate()
	for _, d := range warnings {
		cfg.logger.Warn("validation warning",
			zap.String("source", d.Path), zap.String("description", d.Message))
	}
	if len(errs) > 0 {
		return nil, warnings, errs
	}
	return doc, warnings, nil
}
