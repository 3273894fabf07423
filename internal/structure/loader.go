package structure

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://files.rcsb.org/download"
	DefaultTimeout = 120 * time.Second
)

var accessionPattern = regexp.MustCompile(`^[0-9][A-Za-z0-9]{3}$`)

// IsAccession reports whether id looks like a four character PDB id.
func IsAccession(id string) bool {
	return accessionPattern.MatchString(id)
}

// Loader reads local PDB files and downloads entries from RCSB.
type Loader struct {
	BaseURL  string
	Client   *http.Client
	CacheDir string // empty disables the download cache

	// AccessionsOnly refuses local paths, so callers can only name PDB ids.
	AccessionsOnly bool
}

func NewLoader(baseURL string, timeout time.Duration, cacheDir string) *Loader {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Client:   &http.Client{Timeout: timeout},
		CacheDir: cacheDir,
	}
}

// Fetch resolves id as a local file path first and as a PDB id otherwise.
// With AccessionsOnly set, only PDB ids are accepted.
func (l *Loader) Fetch(ctx context.Context, id string) (*Structure, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrNotFound)
	}

	if !l.AccessionsOnly {
		if info, err := os.Stat(id); err == nil && !info.IsDir() {
			return ReadFile(id)
		}
	}
	if !IsAccession(id) {
		if l.AccessionsOnly {
			return nil, fmt.Errorf("%w: %q is not a PDB id", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %q is neither a file nor a PDB id", ErrNotFound, id)
	}

	code := strings.ToUpper(id)
	if path := l.cachePath(code); path != "" {
		if _, err := os.Stat(path); err == nil {
			return ReadFile(path)
		}
	}

	raw, err := l.download(ctx, code)
	if err != nil {
		return nil, err
	}

	if path := l.cachePath(code); path != "" {
		if err := writeCache(path, raw); err != nil {
			log.Printf("Warning: could not cache %s: %v", code, err)
		}
	}

	s, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if s.ID == "" {
		s.ID = code
	}
	return s, nil
}

func (l *Loader) download(ctx context.Context, code string) ([]byte, error) {
	url := l.BaseURL + "/" + code + ".pdb"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", ErrUnavailable, code, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s is not in the PDB", ErrNotFound, code)
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: download %s: HTTP status code %d", ErrUnavailable, code, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", ErrUnavailable, code, err)
	}
	return body, nil
}

func (l *Loader) cachePath(code string) string {
	if l.CacheDir == "" {
		return ""
	}
	return filepath.Join(l.CacheDir, strings.ToLower(code)+".pdb")
}

func writeCache(path string, raw []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// ReadFile parses a PDB file, decompressing it when the name ends in ".gz".
func ReadFile(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
		}
		defer gz.Close()
		r = gz
	}

	s, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.ID == "" {
		s.ID = baseName(path)
	}
	return s, nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".gz", ".pdb", ".ent"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
