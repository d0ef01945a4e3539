//go:build fixed_safemix && !fixed_nomix

package fixed

// Mixing is the mixed-scale level of this build.
const Mixing = MixSafe
