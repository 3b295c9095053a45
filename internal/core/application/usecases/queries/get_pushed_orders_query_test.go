package queries_test

import (
	"testing"

	"railmeals/internal/core/application/usecases/queries"
	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPushedOrdersQuery_Success(t *testing.T) {
	outletID := kernel.NewUUID()
	query, err := queries.NewGetPushedOrdersQuery(outletID)
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.True(t, query.OutletID().IsEqual(outletID))
}

func TestNewGetPushedOrdersQuery_EmptyOutletID(t *testing.T) {
	_, err := queries.NewGetPushedOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetPushedOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetPushedOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetPushedOrdersQueryIsNotConstructed)
}

func boardRow(t *testing.T, status order.Status) queries.PushedOrderResponse {
	t.Helper()
	return queries.PushedOrderResponse{
		ID:         kernel.NewUUID(),
		StatusCode: status.Code(),
	}
}

func TestBuildBoard_TabCountsMatchStatusGroups(t *testing.T) {
	rows := []queries.PushedOrderResponse{
		boardRow(t, order.Preparing),
		boardRow(t, order.Prepared),
		boardRow(t, order.OutForDelivery),
		boardRow(t, order.Delivered),
		boardRow(t, order.Cancelled),
	}

	board := queries.BuildBoard(rows)

	require.Len(t, board.Tabs, 3)
	assert.Equal(t, "Preparing", board.Tabs[0].Label)
	assert.Equal(t, "Out for Delivery", board.Tabs[1].Label)
	assert.Equal(t, "Delivered", board.Tabs[2].Label)
	assert.Equal(t, 2, board.Tabs[0].Count)
	assert.Equal(t, 1, board.Tabs[1].Count)
	assert.Equal(t, 2, board.Tabs[2].Count)
}

func TestBuildBoard_EveryStatusLandsInExactlyOneTab(t *testing.T) {
	statuses := []order.Status{
		order.Preparing, order.Prepared, order.OutForDelivery,
		order.Delivered, order.PartiallyDelivered, order.Undelivered, order.Cancelled,
	}
	for _, status := range statuses {
		t.Run(status.String(), func(t *testing.T) {
			board := queries.BuildBoard([]queries.PushedOrderResponse{boardRow(t, status)})
			placed := 0
			for _, tab := range board.Tabs {
				placed += tab.Count
				assert.Len(t, tab.Orders, tab.Count)
			}
			assert.Equal(t, 1, placed)
		})
	}
}

func TestBuildBoard_UnknownStatusCodeIsDropped(t *testing.T) {
	board := queries.BuildBoard([]queries.PushedOrderResponse{
		{ID: kernel.NewUUID(), StatusCode: "ORDER_TELEPORTED"},
	})

	require.Len(t, board.Tabs, 3)
	for _, tab := range board.Tabs {
		assert.Zero(t, tab.Count)
		assert.Empty(t, tab.Orders)
	}
}

func TestBuildBoard_EmptyInputYieldsEmptyTabs(t *testing.T) {
	board := queries.BuildBoard(nil)

	require.Len(t, board.Tabs, 3)
	for _, tab := range board.Tabs {
		assert.NotNil(t, tab.Orders)
		assert.Zero(t, tab.Count)
	}
}
