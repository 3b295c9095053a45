package queries_test

import (
	"testing"
	"time"

	"railmeals/internal/core/application/usecases/queries"
	"railmeals/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRevenueSummaryQuery_Success(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query, err := queries.NewGetRevenueSummaryQuery(kernel.NewUUID(), from, to)
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, from, query.From())
	assert.Equal(t, to, query.To())
}

func TestNewGetRevenueSummaryQuery_InvalidPeriod(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("to_before_from", func(t *testing.T) {
		_, err := queries.NewGetRevenueSummaryQuery(kernel.NewUUID(), from, from.AddDate(0, 0, -1))
		require.Error(t, err)
	})

	t.Run("empty_period", func(t *testing.T) {
		_, err := queries.NewGetRevenueSummaryQuery(kernel.NewUUID(), from, from)
		require.Error(t, err)
	})
}

func TestGetRevenueSummaryQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetRevenueSummaryQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetRevenueSummaryQueryIsNotConstructed)
}
