//go:build !fixed_nomix && !fixed_safemix

package fixed

// Mixing is the mixed-scale level of this build.
const Mixing = MixAuto
