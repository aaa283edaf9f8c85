package topic

import "math/rand/v2"

// RandomIcons picks a default icon uniformly from a fixed set.
type RandomIcons struct {
	icons []string
}

// NewRandomIcons creates a RandomIcons over icons.
func NewRandomIcons(icons []string) *RandomIcons {
	return &RandomIcons{icons: icons}
}

// DefaultIcon returns one of the configured icons, or "" if there are none.
func (r *RandomIcons) DefaultIcon() string {
	if len(r.icons) == 0 {
		return ""
	}
	return r.icons[rand.IntN(len(r.icons))]
}
