//go:build fixed_nomix

package fixed

// Mixing is the mixed-scale level of this build.
const Mixing = MixNone
