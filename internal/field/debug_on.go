//go:build sikedebug

package field

import "fmt"

// Debug is true when range assertions are compiled in (build tag
// "sikedebug").
const Debug = true

// check2p panics if any operand is not in [0, 2p).
func (f *Prime) check2p(xs ...*Fp) {
	for _, x := range xs {
		var t Fp
		if mp_subn(t[:f.words], x[:f.words], f.p2[:f.words]) == 0 {
			panic(fmt.Sprintf("field: %s: operand out of [0, 2p) range", f.name))
		}
		for i := f.words; i < MaxWords; i++ {
			if x[i] != 0 {
				panic(fmt.Sprintf("field: %s: nonzero limb above W", f.name))
			}
		}
	}
}
