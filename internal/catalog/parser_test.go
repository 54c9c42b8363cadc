package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPricingHTML mimics the structure of the pricing page table
const testPricingHTML = `
<!DOCTYPE html>
<html>
<body>
<table>
  <tr><th>Bank</th><th>Price</th></tr>
  <tr>
    <td class="product_data"
        data-bankname="Chase"
        data-creditlimit="$3,000"
        data-dateopened="2022 09"
        data-purchasebydate="Sep 15"
        data-reportingperiod="Sep 20 - Sep 25"
        data-availability="5"></td>
    <td class="product_price">Price: $450.00</td>
  </tr>
  <tr>
    <td class="product_data"
        data-bankname="Amex"
        data-creditlimit="12000"
        data-dateopened="2015 03"
        data-purchasebydate="Sep 10"
        data-reportingperiod="Sep 18 - Sep 22"
        data-availability="2"></td>
    <td class="product_price">$1,250.50</td>
  </tr>
  <tr>
    <td class="product_data" data-bankname="Broken" data-creditlimit="1000"></td>
    <td class="product_price">call us</td>
  </tr>
</table>
</body>
</html>
`

func TestParsePricingPage(t *testing.T) {
	result, err := Parse(strings.NewReader(testPricingHTML))
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	chase := result.Records[0]
	assert.Equal(t, "Chase", chase.Bank)
	assert.Equal(t, 3000, chase.Limit)
	assert.Equal(t, BucketMid, chase.Bucket)
	assert.Equal(t, "550.00", chase.Price.StringFixed(2)) // 450 + 100 surcharge
	assert.Equal(t, "2022 09", chase.Opened)
	assert.Equal(t, "Sep 15", chase.Deadline)
	assert.Contains(t, chase.Summary, "🏦 Bank: Chase")
	assert.Contains(t, chase.Summary, "💳 Credit Limit: $3,000")
	assert.Contains(t, chase.Summary, "💰 Price: $550.00")

	amex := result.Records[1]
	assert.Equal(t, 12000, amex.Limit)
	assert.Equal(t, BucketTop, amex.Bucket)
	assert.Equal(t, "1550.50", amex.Price.StringFixed(2)) // 1250.50 + 300 surcharge

	// The "call us" row has no dollar token and is counted as skipped
	assert.Equal(t, 1, result.Skipped)

	assert.Equal(t, []string{"Amex", "Chase"}, result.Banks)
	assert.Equal(t, []int{2022, 2015}, result.Years)
}

func TestParseEmptyDocument(t *testing.T) {
	result, err := Parse(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Banks)
	assert.Zero(t, result.Skipped)
}

func TestParseKeepsDuplicateRows(t *testing.T) {
	row := `
<tr>
  <td class="product_data" data-bankname="Chase" data-creditlimit="3000" data-dateopened="2022 09"></td>
  <td class="product_price">$450.00</td>
</tr>`
	html := "<table>" + row + row + "</table>"

	result, err := Parse(strings.NewReader(html))
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, []string{"Chase"}, result.Banks)
}

func TestParseEmptyCreditLimitDefaultsToZero(t *testing.T) {
	html := `
<table><tr>
  <td class="product_data" data-bankname="Chase" data-creditlimit="" data-dateopened="junk"></td>
  <td class="product_price">$99.99</td>
</tr></table>`

	result, err := Parse(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, 0, result.Records[0].Limit)
	assert.Equal(t, BucketLow, result.Records[0].Bucket)
	assert.Empty(t, result.Years)
}
