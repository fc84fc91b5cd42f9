package records

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"APPLICATION MODE":  "applicationMode",
		"Result":            "result",
		"Amount":            "amount",
		"Transaction Count": "transactionCount",
		"  padded   key  ":  "paddedKey",
		"ECR ID":            "ecrId",
		"applicationMode":   "applicationMode",
		"":                  "",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeKey(in), "input %q", in)
	}
}

var idempotentKeys = []string{
	"APPLICATION MODE", "Result", "Card Type", "SAF Reference Number", "tip amount",
	"A B", "  #aA", "  1aA", "  -aA", "ŉ X", "#a", "x#aa", "ECRId",
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	for _, in := range idempotentKeys {
		once := NormalizeKey(in)
		require.Equal(t, once, NormalizeKey(once), "input %q", in)
	}
}

func FuzzNormalizeKeyIdempotent(f *testing.F) {
	for _, in := range idempotentKeys {
		f.Add(in)
	}
	f.Fuzz(func(t *testing.T, key string) {
		// Keys come out of an XML decoder, which only yields valid UTF-8.
		if !utf8.ValidString(key) {
			t.Skip()
		}
		once := NormalizeKey(key)
		require.Equal(t, once, NormalizeKey(once), "input %q", key)
	})
}

func TestSplitCamel(t *testing.T) {
	cases := map[string]string{
		"ApprovedSAF#1Record":       "Approved SAF#1 Record",
		"OfflineApprovedSAFSummary": "Offline Approved SAF Summary",
		"APPROVED SAF #1 RECORD":    "APPROVED SAF #1 RECORD",
		"Approved SAF":              "Approved SAF",
	}
	for in, want := range cases {
		require.Equal(t, want, splitCamel(in), "input %q", in)
	}
}

func TestCategoryLabel(t *testing.T) {
	cases := map[string]string{
		"":                             "overallReport",
		"   ":                          "overallReport",
		"APPROVED SAF SUMMARY":         "approvedSafSummary",
		"Approved SAF":                 "approvedSaf",
		"OFFLINE APPROVED SAF SUMMARY": "offlineApprovedSafSummary",
		"APPROVED SAF VOID SUMMARY":    "approvedSafVoidSummary",
		"APPROVED SAF #1 RECORD":       "approvedSafRecords",
		"Approved SAF #27 Record":      "approvedSafRecords",
		"PENDING SAF #3 RECORD":        "pendingSafRecords",
		"ApprovedSAFVoidSummary":       "approvedSafVoidSummary",
	}
	for in, want := range cases {
		require.Equal(t, want, CategoryLabel(in), "input %q", in)
	}
}

func TestCategorizeCollapsesNumberedRecords(t *testing.T) {
	first := Categorize(Record{TableCategory: "APPROVED SAF #1 RECORD"})
	second := Categorize(Record{TableCategory: "APPROVED SAF #2 RECORD"})
	require.Equal(t, first, second)
	require.Equal(t, "approvedSafRecords", first)

	// Camel-cased spellings split into the same words as spaced ones.
	camelFirst := Categorize(Record{TableCategory: "ApprovedSAF#1Record"})
	camelSecond := Categorize(Record{TableCategory: "ApprovedSAF#2Record"})
	require.Equal(t, "approvedSafRecords", camelFirst)
	require.Equal(t, camelFirst, camelSecond)
	require.Equal(t, "overallReport", Categorize(Record{}))
}
