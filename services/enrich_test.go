package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadeyemo32/persona-backend/models"
)

func TestEnrichBuildsTitleFromQuery(t *testing.T) {
	e := NewEnricher(0)
	e.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	data, err := e.Enrich(context.Background(), models.SearchQuery{
		PersonName:  "Jane Doe",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe at Acme - Enriched on Mar 1, 2026, 12:00:00 PM", data.Title)
	assert.Equal(t, "VP Sales and Operations", data.Person.JobTitle)
	assert.NotEmpty(t, data.Outreach.EmailSequence)
}

func TestEnrichFallsBackToPlaceholders(t *testing.T) {
	e := NewEnricher(0)

	data, err := e.Enrich(context.Background(), models.SearchQuery{AdditionalInfo: "just notes"})
	require.NoError(t, err)
	assert.Contains(t, data.Title, "Person at Company")
}

func TestEnrichHonorsCancellation(t *testing.T) {
	e := NewEnricher(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := e.Enrich(ctx, models.SearchQuery{PersonName: "Jane"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "cancellation must cut the simulated latency short")
}
