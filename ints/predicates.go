package ints

import (
	"math/big"
	"strconv"

	"modernc.org/mathutil"

	"github.com/hasbyte1/go-stream-utils/strs"
)

// magnitude returns |n| as a uint64, which also holds |math.MinInt|.
func magnitude(n int) uint64 {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// IsPrime reports whether n is a prime number. Values below 2 are not prime.
func IsPrime(n int) bool {
	return n >= 2 && mathutil.IsPrimeUint64(uint64(n))
}

// IsPerfectSquare reports whether n is the square of an integer. Negative
// values are never perfect squares.
func IsPerfectSquare(n int) bool {
	if n < 0 {
		return false
	}
	root := uint64(mathutil.SqrtUint64(uint64(n)))
	return root*root == uint64(n)
}

// IsFibonacci reports whether n belongs to the Fibonacci sequence
// 0, 1, 1, 2, 3, 5, … using the identity that n is a Fibonacci number iff
// 5n²+4 or 5n²-4 is a perfect square. The test depends only on n², so -n
// is accepted whenever n is.
func IsFibonacci(n int) bool {
	x := big.NewInt(int64(n))
	x.Mul(x, x)
	x.Mul(x, big.NewInt(5))

	four := big.NewInt(4)
	plus := new(big.Int).Add(x, four)
	minus := new(big.Int).Sub(x, four)
	return isSquare(plus) || isSquare(minus)
}

func isSquare(x *big.Int) bool {
	if x.Sign() < 0 {
		return false
	}
	root := new(big.Int).Sqrt(x)
	return root.Mul(root, root).Cmp(x) == 0
}

// IsPalindrome reports whether the decimal digits of |n| read the same in
// both directions.
func IsPalindrome(n int) bool {
	return strs.IsPalindrome(strconv.FormatUint(magnitude(n), 10))
}

// DigitSum returns the sum of the decimal digits of |n|.
func DigitSum(n int) int {
	sum := 0
	for u := magnitude(n); u > 0; u /= 10 {
		sum += int(u % 10)
	}
	return sum
}
