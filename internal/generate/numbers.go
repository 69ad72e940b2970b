package generate

import "strconv"

// DefaultSymbols are the suffix symbols appended on every run, in the
// order people actually pick them. Profile symbols come after these
var DefaultSymbols = []string{"!", "@", "@!", "1", "!!", "!!!"}

// GamertagSuffixes are the numeric tags people staple onto handles
var GamertagSuffixes = []string{"123", "007", "420", "69"}

// Birth years outside this floor are treated as unknown
const minBirthYear = 1900

// Digits strips everything but ASCII digits from a string
func Digits(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// PhoneChunks breaks phone numbers into the fragments people reuse:
// last four, last seven, area code, first six, and the full number
func PhoneChunks(phones []string) []string {
	var chunks []string
	for _, p := range phones {
		nums := Digits(p)
		if len(nums) >= 4 {
			chunks = append(chunks, nums[len(nums)-4:])
		}
		if len(nums) >= 7 {
			chunks = append(chunks, nums[len(nums)-7:])
		}
		if len(nums) >= 10 {
			chunks = append(chunks, nums[:3], nums[:6], nums)
		}
	}
	return dedupe(chunks)
}

// YearRange returns years from currentYear down to the birth year as
// strings, newest first. A birth year outside [1900, currentYear] is
// treated as unknown and the range stops at yearFloor instead
func YearRange(currentYear, birthYear, yearFloor int) []string {
	floor := yearFloor
	if birthYear >= minBirthYear && birthYear <= currentYear {
		floor = birthYear
	}
	if floor > currentYear {
		return nil
	}

	years := make([]string, 0, currentYear-floor+1)
	for y := currentYear; y >= floor; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

// SplitPINsSymbols separates mixed PIN/symbol input: a run of one to
// six digits is a PIN, anything else is a symbol suffix
func SplitPINsSymbols(entries []string) (pins, symbols []string) {
	for _, e := range CleanTokens(entries) {
		if isShortDigits(e) {
			pins = append(pins, e)
		} else {
			symbols = append(symbols, e)
		}
	}
	return pins, symbols
}

// isShortDigits reports whether s is one to six ASCII digits
func isShortDigits(s string) bool {
	if len(s) == 0 || len(s) > 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
