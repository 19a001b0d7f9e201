// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Digits generates a random numeric string of length n.
func Digits(n int) string {
	var sb strings.Builder

	k := len(digits)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(digits[Intn(k)])
	}

	return sb.String()
}

// IDNumber generates a random customer identifier.
func IDNumber() string {
	return Digits(11)
}

// Name generates a random customer name.
func Name() string {
	return String(6)
}

// Address generates a random street address.
func Address() string {
	return fmt.Sprintf("%d %s street", Intn(9000)+1, String(8))
}

// BirthDate generates a random dd/mm/yyyy date string.
func BirthDate() string {
	return fmt.Sprintf("%02d/%02d/%d", Intn(28)+1, Intn(12)+1, 1950+Intn(50))
}

// MoneyAmountBetween generates a random amount of money between min and max rounded to 4 decimals.
func MoneyAmountBetween(min, max float64) string {
	return decimal.NewFromFloat(FloatBetween(min, max)).String()
}
