package expr

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatFloat renders v the way the calculator display shows results.
// Whole numbers print as integers with every digit of their exact value;
// other values print as the shortest decimal that round-trips, in
// exponent form when the decimal exponent is below -4 or at least 16.
func FormatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) {
		return new(big.Float).SetFloat64(v).Text('f', 0)
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRat renders r as "n" when it is an integer and "n/d" otherwise.
func FormatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.String()
}
