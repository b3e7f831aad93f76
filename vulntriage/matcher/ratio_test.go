package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{a: "windows", b: "windows", expected: 100},
		{a: "", b: "", expected: 100},
		{a: "abc", b: "", expected: 0},
		{a: "kitten", b: "sitting", expected: 62},
		{a: "abc", b: "abd", expected: 67},
		{a: "abc", b: "xyz", expected: 0},
		// 12.5 rounds to the even neighbour
		{a: "a", b: "abbbbbbbbbbbbbb", expected: 12},
		{a: "ключ", b: "ключи", expected: 89},
		{a: "enterprise", b: "pro", expected: 31},
	}

	for _, test := range tests {
		t.Run(test.a+"/"+test.b, func(t *testing.T) {
			assert.Equal(t, test.expected, Ratio(test.a, test.b))
			assert.Equal(t, test.expected, Ratio(test.b, test.a), "ratio is symmetric")
		})
	}
}
