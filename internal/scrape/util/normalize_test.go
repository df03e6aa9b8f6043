package util_test

import (
	"testing"

	"jobsweep/internal/scrape/util"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"non\u00a0breaking", "non breaking"},
		{"\n\ttabs\nand\nnewlines\t", "tabs and newlines"},
		{"", ""},
	}
	for _, testCase := range testCases {
		if got := util.CleanText(testCase.in); got != testCase.want {
			t.Errorf("CleanText(%q) = %q, want %q", testCase.in, got, testCase.want)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"1,234 results", "1234"},
		{"Showing 63 results", "63"},
		{"no digits", ""},
		{"", ""},
	}
	for _, testCase := range testCases {
		if got := util.DigitsOnly(testCase.in); got != testCase.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", testCase.in, got, testCase.want)
		}
	}
}
