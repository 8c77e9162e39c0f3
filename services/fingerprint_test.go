package services

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadeyemo32/persona-backend/models"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestQueryFingerprintDeterminism(t *testing.T) {
	q := models.SearchQuery{
		PersonName:     "Jane Doe",
		Title:          "VP Sales",
		CompanyName:    "Acme",
		AdditionalInfo: "met at SaaStr",
	}

	first := QueryFingerprint("u1", q)
	require.Regexp(t, hexDigest, first)

	// Fields() returns a map, so repeated calls exercise different
	// iteration orders; the digest must not care.
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, QueryFingerprint("u1", q))
	}
}

func TestQueryFingerprintIdentityScoping(t *testing.T) {
	q := models.SearchQuery{PersonName: "Jane Doe", CompanyName: "Acme"}

	assert.NotEqual(t, QueryFingerprint("u1", q), QueryFingerprint("u2", q),
		"different users must not share cache keys")
}

func TestQueryFingerprintSensitivity(t *testing.T) {
	base := models.SearchQuery{
		PersonName:     "Jane Doe",
		Title:          "VP Sales",
		CompanyName:    "Acme",
		AdditionalInfo: "",
	}
	seen := map[string]string{
		QueryFingerprint("u1", base): "base",
	}

	// Mutate every field many ways; no two inputs may collide.
	for i := 0; i < 25; i++ {
		variants := []models.SearchQuery{
			{PersonName: fmt.Sprintf("Jane Doe %d", i), Title: base.Title, CompanyName: base.CompanyName},
			{PersonName: base.PersonName, Title: fmt.Sprintf("VP Sales %d", i), CompanyName: base.CompanyName},
			{PersonName: base.PersonName, Title: base.Title, CompanyName: fmt.Sprintf("Acme %d", i)},
			{PersonName: base.PersonName, Title: base.Title, CompanyName: base.CompanyName, AdditionalInfo: fmt.Sprintf("note %d", i)},
		}
		for j, v := range variants {
			fp := QueryFingerprint("u1", v)
			label := fmt.Sprintf("variant %d/%d", i, j)
			prev, dup := seen[fp]
			require.False(t, dup, "fingerprint collision between %s and %s", label, prev)
			seen[fp] = label
		}
	}
}

func TestQueryFingerprintEmptyQuery(t *testing.T) {
	// Technically hashable; rejecting empties is the coordinator's policy.
	fp := QueryFingerprint("u1", models.SearchQuery{})
	assert.Regexp(t, hexDigest, fp)
}

func TestQueryFingerprintValueNotConfusedWithName(t *testing.T) {
	// "title" and "companyName" both populated vs. values swapped.
	a := models.SearchQuery{Title: "Acme", CompanyName: "VP Sales"}
	b := models.SearchQuery{Title: "VP Sales", CompanyName: "Acme"}
	assert.NotEqual(t, QueryFingerprint("u1", a), QueryFingerprint("u1", b))
}
