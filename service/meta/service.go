// Package meta loads definition assets (flow YAML documents) from any
// afs-supported storage scheme, expanding ${env.KEY} expressions before
// decoding.
package meta

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service resolves asset URLs against a base location and decodes YAML
// documents into arbitrary targets.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a meta service rooted at baseURL.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL, options: options}
}

// BaseURL returns the base location relative URLs resolve against.
func (s *Service) BaseURL() string {
	return s.baseURL
}

// Exists reports whether the asset at URL is present.
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, s.normalizeURL(URL), s.options...)
}

// Download returns the raw asset bytes with environment expressions expanded.
func (s *Service) Download(ctx context.Context, URL string) ([]byte, error) {
	located := s.normalizeURL(URL)
	data, err := s.fs.DownloadWithURL(ctx, located, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", located, err)
	}
	return []byte(expandEnvExpr(string(data))), nil
}

// Load downloads the asset at URL and decodes its YAML content into target.
func (s *Service) Load(ctx context.Context, URL string, target any) error {
	data, err := s.Download(ctx, URL)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", s.normalizeURL(URL), err)
	}
	return nil
}

func (s *Service) normalizeURL(URL string) string {
	if s.baseURL == "" || !url.IsRelative(URL) {
		return URL
	}
	return url.Join(s.baseURL, URL)
}
