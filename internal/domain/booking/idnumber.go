package booking

import "strings"

const idCardLength = 18

var (
	idCardWeights     = [idCardLength - 1]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	idCardCheckDigits = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}
)

// ValidIDCardNumber checks the weighted modulus-11 check digit of an
// 18-character resident ID number. A lowercase trailing x is accepted.
func ValidIDCardNumber(id string) bool {
	if len(id) != idCardLength {
		return false
	}

	sum := 0
	for i := 0; i < idCardLength-1; i++ {
		c := id[i]
		if c < '0' || c > '9' {
			return false
		}
		sum += int(c-'0') * idCardWeights[i]
	}

	last := id[idCardLength-1]
	if last == 'x' {
		last = 'X'
	}
	if (last < '0' || last > '9') && last != 'X' {
		return false
	}

	return idCardCheckDigits[sum%11] == last
}

// NormalizeIDNumber trims and upper-cases a trailing x.
func NormalizeIDNumber(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
