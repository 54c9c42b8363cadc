package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	cases := []struct {
		limit  int
		bucket string
	}{
		{0, BucketLow},
		{2500, BucketLow},
		{2501, BucketMid},
		{5000, BucketMid},
		{5001, BucketHigh},
		{10000, BucketHigh},
		{10001, BucketTop},
	}

	for _, c := range cases {
		assert.Equal(t, c.bucket, BucketFor(c.limit), "limit %d", c.limit)
	}
}

func TestFinalPrice(t *testing.T) {
	cases := []struct {
		base     string
		expected string
	}{
		{"0", "100"},
		{"499.99", "599.99"},
		{"500", "700"},
		{"1000", "1200"},
		{"1000.01", "1300.01"},
	}

	for _, c := range cases {
		base, err := decimal.NewFromString(c.base)
		assert.NoError(t, err)
		expected, err := decimal.NewFromString(c.expected)
		assert.NoError(t, err)

		got := FinalPrice(base)
		assert.True(t, expected.Equal(got), "base %s: expected %s, got %s", c.base, expected, got)
	}
}

func TestFinalPriceRounding(t *testing.T) {
	base, _ := decimal.NewFromString("450.005")
	got := FinalPrice(base)
	assert.Equal(t, "550.01", got.StringFixed(2))
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "3,000", formatThousands(3000))
	assert.Equal(t, "1,234,567", formatThousands(1234567))
}
