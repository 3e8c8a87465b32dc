package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectService_Netflix(t *testing.T) {
	service, ok := DetectService("NETFLIX.COM")
	require.True(t, ok)
	assert.Equal(t, "Netflix", service)
}

func TestDetectService_Spotify(t *testing.T) {
	service, ok := DetectService("SPOTIFY USA 877-7781161 NY")
	require.True(t, ok)
	assert.Equal(t, "Spotify", service)
}

func TestDetectService_NoMatch(t *testing.T) {
	_, ok := DetectService("LOCAL COFFEE SHOP")
	assert.False(t, ok)
}

func TestDetectCategory_Streaming(t *testing.T) {
	assert.Equal(t, "Streaming", DetectCategory("NETFLIX.COM SUBSCRIPTION"))
}

func TestDetectCategory_Fallback(t *testing.T) {
	assert.Equal(t, FallbackCategory, DetectCategory("LOCAL COFFEE SHOP"))
}

func TestDetectCategory_CaseFolding(t *testing.T) {
	assert.Equal(t, DetectCategory("spotify premium"), DetectCategory("SPOTIFY PREMIUM"))
}

func TestDetectCategory_DeclarationOrderWins(t *testing.T) {
	// Matches both Streaming (netflix) and Music (spotify); Streaming is
	// declared earlier, so it wins.
	assert.Equal(t, "Streaming", DetectCategory("NETFLIX AND SPOTIFY BUNDLE"))
}

func TestDetectCategory_Deterministic(t *testing.T) {
	desc := "DOORDASH*SUBWAY SAN FRANCISCO CA"
	first := DetectCategory(desc)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectCategory(desc))
	}
}

func TestMatchKeywords_FirstEntryWins(t *testing.T) {
	table := []keywordEntry{
		{"First", []string{"sub"}},
		{"Second", []string{"subscription"}},
	}

	label, ok := matchKeywords("MONTHLY SUBSCRIPTION FEE", table)
	require.True(t, ok)
	assert.Equal(t, "First", label)
}

func TestMatchKeywords_NoNormalizationBeyondCase(t *testing.T) {
	table := []keywordEntry{
		{"Punctuated", []string{"net-flix"}},
	}

	// No punctuation stripping: "NETFLIX" must not match "net-flix"
	_, ok := matchKeywords("NETFLIX", table)
	assert.False(t, ok)
}

func TestDetectCategory_PaycheckIsIncome(t *testing.T) {
	assert.Equal(t, IncomeCategory, DetectCategory("PAYCHECK DEPOSIT ACME CORP"))
}
