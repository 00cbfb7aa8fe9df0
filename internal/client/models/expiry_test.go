package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(d int) *int { return &d }

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		in   *int
		want ExpiryStatus
	}{
		{"absent", nil, ExpiryUnknown},
		{"long expired", days(-400), ExpiryExpired},
		{"expired yesterday", days(-1), ExpiryExpired},
		{"expires today", days(0), ExpiryCritical},
		{"tomorrow", days(1), ExpiryCritical},
		{"critical upper bound", days(30), ExpiryCritical},
		{"warning lower bound", days(31), ExpiryWarning},
		{"warning upper bound", days(90), ExpiryWarning},
		{"valid lower bound", days(91), ExpiryValid},
		{"far future", days(3650), ExpiryValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in).Status)
		})
	}
}

func TestClassify_PropertyOverRange(t *testing.T) {
	for d := -200; d <= 200; d++ {
		got := Classify(days(d)).Status
		assert.Equal(t, d < 0, got == ExpiryExpired, "expired iff d<0, d=%d", d)
		assert.Equal(t, d >= 0 && d <= 30, got == ExpiryCritical, "critical iff 0<=d<=30, d=%d", d)
		assert.Equal(t, d >= 31 && d <= 90, got == ExpiryWarning, "warning iff 31<=d<=90, d=%d", d)
		assert.Equal(t, d > 90, got == ExpiryValid, "valid iff d>90, d=%d", d)
	}
}

func TestClassify_Text(t *testing.T) {
	assert.Equal(t, "No expiry date", Classify(nil).Text)
	assert.Equal(t, "EXPIRED", Classify(days(-3)).Text)
	assert.Equal(t, "Expires in 0 days", Classify(days(0)).Text)
	assert.Equal(t, "Expires in 1 day", Classify(days(1)).Text)
	assert.Equal(t, "45 days remaining", Classify(days(45)).Text)
	assert.Equal(t, "Valid", Classify(days(120)).Text)
}

func docsWithDays(values ...int) []Document {
	out := make([]Document, 0, len(values))
	for i, v := range values {
		out = append(out, Document{ID: int64(i + 1), DaysUntilExpiry: days(v)})
	}
	return out
}

func daysOf(docs []Document) []int {
	out := make([]int, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.DaysUntilExpiry)
	}
	return out
}

func TestFilterByExpiry(t *testing.T) {
	docs := docsWithDays(-1, 0, 30, 31, 60, 61)

	assert.Equal(t, []int{31, 60}, daysOf(FilterByExpiry(docs, FilterExpiring60)))
	assert.Equal(t, []int{0, 30}, daysOf(FilterByExpiry(docs, FilterExpiring30)))
	assert.Equal(t, []int{-1}, daysOf(FilterByExpiry(docs, FilterExpired)))
	assert.Equal(t, docs, FilterByExpiry(docs, FilterAll))
}

func TestFilterByExpiry_ExcludesMissingDays(t *testing.T) {
	docs := append(docsWithDays(-5, 10, 45), Document{ID: 99})

	for _, f := range []ExpiryFilter{FilterExpired, FilterExpiring30, FilterExpiring60} {
		for _, d := range FilterByExpiry(docs, f) {
			assert.NotNil(t, d.DaysUntilExpiry, "filter %s", f)
		}
	}
	assert.Len(t, FilterByExpiry(docs, FilterAll), 4)
}

func TestParseExpiryFilter(t *testing.T) {
	f, err := ParseExpiryFilter("expiring60")
	require.NoError(t, err)
	assert.Equal(t, FilterExpiring60, f)

	f, err = ParseExpiryFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = ParseExpiryFilter("expiring90")
	require.ErrorIs(t, err, ErrUnknownExpiryFilter)
}
