package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dashfolio-dev/dashfolio/internal/model"
)

// ErrUnsupportedFormat is returned when no parser handles a file extension.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Parser converts a tabular export into a Dataset.
type Parser interface {
	Parse(r io.Reader) (model.Dataset, error)
	Format() string
}

// Registry holds parsers keyed by file extension.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&XLSXParser{})
	return r
}

// Loader reads datasets from local files or, for autoload sources, URLs.
type Loader struct {
	Registry *Registry
	Client   *http.Client
}

// NewLoader returns a Loader with the default registry and HTTP client.
func NewLoader() *Loader {
	return &Loader{Registry: DefaultRegistry(), Client: http.DefaultClient}
}

// ParseFile parses the file at path with the parser matching its extension.
func (l *Loader) ParseFile(path string) (model.Dataset, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	p := l.Registry.Get(ext)
	if p == nil {
		return model.Dataset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ds, err := p.Parse(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ds, nil
}

// Load reads source, which is either a local path or an http(s) URL.
func (l *Loader) Load(ctx context.Context, source string) (model.Dataset, error) {
	if IsURL(source) {
		return l.Fetch(ctx, source)
	}
	return l.ParseFile(source)
}

// Fetch downloads a CSV document. A non-2xx response yields an empty
// dataset rather than an error.
func (l *Loader) Fetch(ctx context.Context, url string) (model.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Dataset{}, nil
	}

	ds, err := (&CSVParser{}).Parse(resp.Body)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("parsing %s: %w", url, err)
	}
	return ds, nil
}

// IsURL reports whether source names an http or https resource.
func IsURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
