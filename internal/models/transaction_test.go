package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType_Credit(t *testing.T) {
	assert.Equal(t, AccountCredit, ParseAccountType("credit"))
}

func TestParseAccountType_DefaultsToChecking(t *testing.T) {
	assert.Equal(t, AccountChecking, ParseAccountType(""))
	assert.Equal(t, AccountChecking, ParseAccountType("savings"))
}

func TestCategoryMap_AddAndGet(t *testing.T) {
	m := NewCategoryMap()
	m.Add("Streaming", Transaction{Description: "NETFLIX.COM", Amount: -15.49, Category: "Streaming"})
	m.Add("Streaming", Transaction{Description: "HULU", Amount: -7.99, Category: "Streaming"})
	m.Add("Music", Transaction{Description: "SPOTIFY", Amount: -10.99, Category: "Music"})

	assert.Equal(t, 2, m.Len())
	assert.Len(t, m.Get("Streaming"), 2)
	assert.Len(t, m.Get("Music"), 1)
	assert.Nil(t, m.Get("Gaming"))
}

func TestCategoryMap_KeysInsertionOrder(t *testing.T) {
	m := NewCategoryMap()
	m.Add("Zeta", Transaction{Category: "Zeta"})
	m.Add("Alpha", Transaction{Category: "Alpha"})
	m.Add("Zeta", Transaction{Category: "Zeta"})
	m.Add("Mid", Transaction{Category: "Mid"})

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, m.Keys())
}

func TestCategoryMap_MarshalPreservesOrder(t *testing.T) {
	m := NewCategoryMap()
	m.Add("Zeta", Transaction{Description: "Z", Amount: -1, Category: "Zeta"})
	m.Add("Alpha", Transaction{Description: "A", Amount: -2, Category: "Alpha"})

	encoded, err := json.Marshal(m)
	require.NoError(t, err)

	assert.True(t, json.Valid(encoded))
	// "Zeta" was inserted first and must appear first despite sorting last
	assert.Less(t,
		indexOf(t, encoded, `"Zeta"`),
		indexOf(t, encoded, `"Alpha"`))
}

func TestCategoryMap_JSONRoundTrip(t *testing.T) {
	m := NewCategoryMap()
	m.Add("Streaming", Transaction{Date: "01/02", Description: "NETFLIX.COM", Amount: -15.49, Category: "Streaming", Service: "Netflix"})
	m.Add("Other", Transaction{Date: "01/03", Description: "CORNER STORE", Amount: -4.20, Category: "Other"})

	encoded, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded CategoryMap
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, m.Keys(), decoded.Keys())
	assert.Equal(t, m.Get("Streaming"), decoded.Get("Streaming"))
	assert.Equal(t, m.Get("Other"), decoded.Get("Other"))
}

func TestTransaction_ServiceOmittedWhenEmpty(t *testing.T) {
	encoded, err := json.Marshal(Transaction{Description: "CORNER STORE", Amount: -4.20, Category: "Other"})
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "service")
}

func indexOf(t *testing.T, data []byte, sub string) int {
	t.Helper()
	idx := bytes.Index(data, []byte(sub))
	require.NotEqual(t, -1, idx, "substring %q not found", sub)
	return idx
}
