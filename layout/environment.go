package layout

import (
	"github.com/carlosmndzg/ferrum/fontmetrics"
	"github.com/carlosmndzg/ferrum/imagemetrics"
)

// Environment bundles the external query interfaces layout needs during
// the computation pass: font metrics for word measurement and image
// metrics for replaced elements. Neither performs I/O until queried, so
// a render that touches no <img> never opens a file.
type Environment struct {
	Fonts  fontmetrics.Provider
	Images imagemetrics.Provider
}

// NewEnvironment returns an Environment backed by the default providers.
func NewEnvironment(baseDir string) *Environment {
	return &Environment{
		Fonts:  fontmetrics.NewGoFontProvider(),
		Images: imagemetrics.NewResourceLoaderProvider(baseDir),
	}
}
