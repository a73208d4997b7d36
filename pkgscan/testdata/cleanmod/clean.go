// Package cleanmod is a scan fixture whose declarations all resolve.
package cleanmod

// Alpha is a plain struct declaration.
type Alpha struct {
	N int
}

// Beta is a function type referencing Alpha.
type Beta func(Alpha) error

type hidden struct {
	tag string
}

// Gamma is not a type and must not be enumerated.
const Gamma = 3

// Delta is not a type and must not be enumerated.
var Delta int

// Epsilon is not a type and must not be enumerated.
func Epsilon() hidden {
	return hidden{tag: "epsilon"}
}
