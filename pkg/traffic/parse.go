package traffic

import (
	"strconv"
	"strings"
)

// The feed crams multiple values into one free-text field separated by " / ",
// and uses a literal "-" when there is no value at all.
const (
	multiValueSeparator = " / "
	noValueSentinel     = "-"
)

// ParsePostcodes extracts the integer postcodes from a raw postcode field.
// Tokens that are not plain non-negative integers are discarded.
func ParsePostcodes(raw string) []int {
	if raw == noValueSentinel {
		return nil
	}

	var postcodes []int

	for _, token := range strings.Split(raw, multiValueSeparator) {
		postcode, err := strconv.Atoi(token)
		if err != nil || postcode < 0 {
			continue
		}

		postcodes = append(postcodes, postcode)
	}

	return postcodes
}

// ParseLocalities extracts the suburb names from a raw locality field.
func ParseLocalities(raw *string) []string {
	if raw == nil || *raw == noValueSentinel {
		return nil
	}

	var localities []string

	for _, token := range strings.Split(*raw, multiValueSeparator) {
		localities = append(localities, strings.TrimSpace(token))
	}

	return localities
}
