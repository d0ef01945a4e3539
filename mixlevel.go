package fixed

// MixLevel controls implicit mixing of decimals with different scales.
// It is selected at build time:
//
//	| Build tag     | Level    | Mixed-scale functions                         |
//	| ------------- | -------- | --------------------------------------------- |
//	| fixed_nomix   | MixNone  | not compiled, every use is a compile error    |
//	| fixed_safemix | MixSafe  | panic if the right operand has a larger scale |
//	| (none)        | MixAuto  | right operand is rounded using R              |
type MixLevel int

const (
	MixNone MixLevel = iota
	MixSafe
	MixAuto
)

func (l MixLevel) String() string {
	switch l {
	case MixNone:
		return "none"
	case MixSafe:
		return "safe"
	case MixAuto:
		return "auto"
	}
	return "unknown"
}
