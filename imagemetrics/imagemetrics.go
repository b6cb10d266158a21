// Package imagemetrics resolves the intrinsic dimensions of replaced
// elements (currently only <img>) for the block formatting context.
// Layout never fetches resources itself; it queries a Provider, keyed by
// the already-resolved resource path or URL.
package imagemetrics

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"

	"github.com/carlosmndzg/ferrum/dom"
	"github.com/disintegration/imaging"
)

// Provider resolves the intrinsic width and height, in pixels, of an
// image resource. When the resource cannot be fetched or decoded,
// implementations return (0, 0, false) — the caller falls back to the
// zero-intrinsic-size policy for unresolvable replaced content.
type Provider interface {
	IntrinsicSize(src string) (width, height float64, ok bool)
}

// ResourceLoaderProvider resolves image dimensions through a
// dom.ResourceLoader, sharing the same data-URL/file/HTTP fetch path as
// every other resource the document references.
type ResourceLoaderProvider struct {
	loader  *dom.ResourceLoader
	baseDir string

	mu    sync.Mutex
	cache map[string][2]float64
}

// NewResourceLoaderProvider returns a Provider that resolves relative
// image src attributes against baseDir (the source document's directory)
// before fetching them.
func NewResourceLoaderProvider(baseDir string) *ResourceLoaderProvider {
	return &ResourceLoaderProvider{
		loader:  dom.NewResourceLoader(baseDir),
		baseDir: baseDir,
		cache:   make(map[string][2]float64),
	}
}

func (p *ResourceLoaderProvider) resolve(src string) string {
	if p.baseDir == "" || strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "data:") || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(p.baseDir, src)
}

func (p *ResourceLoaderProvider) IntrinsicSize(src string) (float64, float64, bool) {
	p.mu.Lock()
	if dims, ok := p.cache[src]; ok {
		p.mu.Unlock()
		return dims[0], dims[1], true
	}
	p.mu.Unlock()

	data, err := p.loader.LoadResource(p.resolve(src))
	if err != nil {
		return 0, 0, false
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, false
	}

	bounds := img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	p.mu.Lock()
	p.cache[src] = [2]float64{width, height}
	p.mu.Unlock()

	return width, height, true
}
