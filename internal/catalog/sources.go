package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

//go:embed items.json
var builtinItems []byte

// Location keywords accepted by NewSource besides paths and URLs.
const (
	LocationBuiltin = "builtin"
	LocationNone    = "none"
)

// Options carries the settings remote sources need.
type Options struct {
	Timeout    time.Duration
	S3         S3Options
	HTTPClient *http.Client
}

// NewSource picks a Source for location: "" or "builtin" for the embedded
// list, "none" for no catalog, s3://bucket/key, http(s) URLs, or a file
// path.
func NewSource(ctx context.Context, location string, opts Options) (Source, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "" || location == LocationBuiltin:
		return BuiltinSource{}, nil
	case location == LocationNone:
		return nil, nil
	case strings.HasPrefix(location, "s3://"):
		bucket, key, err := splitS3(location)
		if err != nil {
			return nil, err
		}
		cfg := opts.S3
		cfg.Bucket = bucket
		cfg.Key = key
		if cfg.HTTPClient == nil {
			cfg.HTTPClient = opts.HTTPClient
		}
		return NewS3Source(ctx, cfg)
	case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
		return &HTTPSource{URL: location, Client: opts.HTTPClient, Timeout: opts.Timeout}, nil
	default:
		return FileSource{Path: location}, nil
	}
}

func splitS3(location string) (string, string, error) {
	rest := strings.TrimPrefix(location, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("catalog location %q must be s3://bucket/key", location)
	}
	return bucket, key, nil
}

// BuiltinSource serves the catalog compiled into the binary.
type BuiltinSource struct{}

func (BuiltinSource) Fetch(context.Context) ([]byte, error) {
	return append([]byte(nil), builtinItems...), nil
}

func (BuiltinSource) String() string { return LocationBuiltin }

// FileSource reads a catalog document from disk.
type FileSource struct {
	Path string
}

func (f FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.Path)
}

func (f FileSource) String() string { return f.Path }

// HTTPSource GETs a catalog document.
type HTTPSource struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

func (h *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}

func (h *HTTPSource) String() string { return h.URL }

const maxDocumentSize = 4 << 20
