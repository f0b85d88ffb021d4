package skin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// ErrGraphicNotFound is returned by providers for unknown graphic ids.
var ErrGraphicNotFound = errors.New("skin: graphic not found")

// GraphicProvider loads graphic source data (for example SVG) by id.
type GraphicProvider interface {
	Graphic(id string) ([]byte, error)
}

// FileProvider serves graphics from files below Root, one file per id.
type FileProvider struct {
	Fs        afero.Fs
	Root      string
	Extension string
}

// NewFileProvider returns a provider reading <root>/<id><ext> from fs.
func NewFileProvider(fs afero.Fs, root, ext string) *FileProvider {
	return &FileProvider{Fs: fs, Root: root, Extension: ext}
}

func (p *FileProvider) Graphic(id string) ([]byte, error) {
	if id == "" || filepath.Base(id) != id {
		return nil, fmt.Errorf("%w: invalid id %q", ErrGraphicNotFound, id)
	}

	data, err := afero.ReadFile(p.Fs, filepath.Join(p.Root, id+p.Extension))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrGraphicNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading graphic %s: %w", id, err)
	}
	return data, nil
}

// AddGraphicProvider registers p under providerID. The empty id is the
// default provider.
func (s *Skin) AddGraphicProvider(providerID string, p GraphicProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers[providerID] = p
}

// GraphicProvider returns the provider registered under providerID.
func (s *Skin) GraphicProvider(providerID string) (GraphicProvider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.providers[providerID]
	return p, ok
}

// HasGraphicProvider reports whether any provider is registered.
func (s *Skin) HasGraphicProvider() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.providers) > 0
}

// GraphicProviderIDs returns the registered provider ids.
func (s *Skin) GraphicProviderIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Keys(s.providers)
}
