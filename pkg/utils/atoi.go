package utils

import "strconv"

// Return string to int and ignore error
func Atoi(value string) int {
	num, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return num
}

// AtoiDefault returns fallback when value is empty or not a number
func AtoiDefault(value string, fallback int) int {
	num, err := strconv.Atoi(value)
	if err != nil || num <= 0 {
		return fallback
	}
	return num
}

// ParseUint parses a decimal uint64, used for snowflake id path params
func ParseUint(value string) (uint64, error) {
	return strconv.ParseUint(value, 10, 64)
}
