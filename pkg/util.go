package pkg

import (
	"math"
	"os"
)

// Round rounds half up, towards positive infinity, so -2.5 becomes -2.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Floor(x + 0.5)
}

// RoundTo rounds x (half up) to the given number of decimals.
func RoundTo(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return Round(x*p) / p
}

// SafeDiv returns 0 instead of NaN or Inf when the divisor is zero.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return isDir == stat.IsDir(), nil
}
