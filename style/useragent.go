// Package style provides a default user-agent stylesheet.
package style

import (
	"github.com/carlosmndzg/ferrum/css"
)

// DefaultUserAgentStylesheet returns the built-in origin stylesheet that
// is cascaded before any author rules. It is deliberately small: only
// properties the registry recognizes (block/inline/none display,
// px-only lengths, font-weight, text-align, border) have any effect, so
// values outside that set would be silently dropped by the cascade
// anyway.
func DefaultUserAgentStylesheet() *css.Stylesheet {
	defaultCSS := `
html, body, div, p, h1, h2, h3, h4, h5, h6, ul, ol, li, blockquote, pre, form, hr, address {
	display: block;
}

head, title, meta, link, style, script, noscript, base {
	display: none;
}

h1 { font-size: 32px; font-weight: bold; margin: 21px 0px 21px 0px; }
h2 { font-size: 24px; font-weight: bold; margin: 19px 0px 19px 0px; }
h3 { font-size: 19px; font-weight: bold; margin: 18px 0px 18px 0px; }
h4 { font-size: 16px; font-weight: bold; margin: 21px 0px 21px 0px; }
h5 { font-size: 13px; font-weight: bold; margin: 22px 0px 22px 0px; }
h6 { font-size: 11px; font-weight: bold; margin: 25px 0px 25px 0px; }

p { margin: 16px 0px 16px 0px; }
ul, ol { margin: 16px 0px 16px 0px; padding: 0px 0px 0px 40px; }

b, strong { font-weight: bold; }

hr { border-width: 1px; border-style: solid; margin: 8px 0px 8px 0px; }
`

	return css.Parse(defaultCSS)
}
