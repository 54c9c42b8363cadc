package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapRedirect(t *testing.T) {
	wrapped := "https://www.google.com/url?rct=j&sa=t&url=https%3A%2F%2Fexample.com%2Fstory&ct=ga"
	assert.Equal(t, "https://example.com/story", UnwrapRedirect(wrapped))
}

func TestUnwrapRedirectAffiliateParam(t *testing.T) {
	wrapped := "https://click.tracking.net/deal?id=5&murl=https%3A%2F%2Fshop.example.com%2Fitem"
	assert.Equal(t, "https://shop.example.com/item", UnwrapRedirect(wrapped))
}

func TestUnwrapRedirectPlainLink(t *testing.T) {
	plain := "https://example.com/story"
	assert.Equal(t, plain, UnwrapRedirect(plain))
}

func TestUnwrapRedirectNonURLParam(t *testing.T) {
	// A q param that is a search term, not an embedded URL
	link := "https://example.com/search?q=credit+cards"
	assert.Equal(t, link, UnwrapRedirect(link))
}

func TestCleanTextStripsMarkup(t *testing.T) {
	dirty := "<b>Big&nbsp;news</b> about   <a href=\"#\">tradelines</a>\n\ttoday"
	assert.Equal(t, "Big news about tradelines today", CleanText(dirty, 0))
}

func TestCleanTextDecodesEntities(t *testing.T) {
	assert.Equal(t, "Fish & Chips <cheap>", CleanText("Fish &amp; Chips &lt;cheap&gt;", 0))
}

func TestCleanTextTruncates(t *testing.T) {
	got := CleanText("abcdefghij", 5)
	assert.Equal(t, "abcde…", got)

	// No marker when the text fits the budget
	assert.Equal(t, "abc", CleanText("abc", 5))
}
