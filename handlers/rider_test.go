package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"quickbite-api/config"
	"quickbite-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAssignedOrders_TotalsAndProjection(t *testing.T) {
	m := newMarketplace(t)
	order := m.standardOrder(t)
	orderID := uint(order["id"].(float64))
	require.Equal(t, http.StatusOK, m.assign(t, orderID, m.riderID).Code)

	w := doJSON(t, m.r, http.MethodGet, fmt.Sprintf("/riders/%d/orders", m.riderID), nil, m.riderTok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	views := decodeList(t, w)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, float64(orderID), view["id"])
	assert.Equal(t, "ASSIGNED", view["status"])
	// subtotal 2x50 + 1x75, flat delivery fee on top
	assert.Equal(t, 175.0, view["subtotal"])
	assert.Equal(t, 40.0, view["delivery_fee"])
	assert.Equal(t, 215.0, view["total"])

	customer := view["customer"].(map[string]interface{})
	assert.Equal(t, "customer@test.com", customer["email"])
}

func TestGetAssignedOrders_OnlyAssignedStatus(t *testing.T) {
	m := newMarketplace(t)
	m.standardOrder(t) // pending, not yet the rider's
	assigned := m.standardOrder(t)
	assignedID := uint(assigned["id"].(float64))
	require.Equal(t, http.StatusOK, m.assign(t, assignedID, m.riderID).Code)

	w := doJSON(t, m.r, http.MethodGet, fmt.Sprintf("/riders/%d/orders", m.riderID), nil, m.riderTok)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeList(t, w), 1)

	// Once completed the order leaves the rider's work queue
	w = doJSON(t, m.r, http.MethodPost, fmt.Sprintf("/riders/complete/%d", assignedID), nil, m.riderTok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, m.r, http.MethodGet, fmt.Sprintf("/riders/%d/orders", m.riderID), nil, m.riderTok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestCompleteOrder_Success(t *testing.T) {
	m := newMarketplace(t)
	order := m.standardOrder(t)
	orderID := uint(order["id"].(float64))
	require.Equal(t, http.StatusOK, m.assign(t, orderID, m.riderID).Code)

	w := doJSON(t, m.r, http.MethodPost, fmt.Sprintf("/riders/complete/%d", orderID), nil, m.riderTok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "COMPLETED", decode(t, w)["status"])
}

func TestCompleteOrder_PendingRejected(t *testing.T) {
	m := newMarketplace(t)
	order := m.standardOrder(t)
	orderID := uint(order["id"].(float64))

	w := doJSON(t, m.r, http.MethodPost, fmt.Sprintf("/riders/complete/%d", orderID), nil, m.riderTok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order not assigned", decode(t, w)["error"])

	var stored models.Order
	require.NoError(t, config.DB.First(&stored, orderID).Error)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Nil(t, stored.RiderID)
}

func TestCompleteOrder_DoubleCompletionRejected(t *testing.T) {
	m := newMarketplace(t)
	order := m.standardOrder(t)
	orderID := uint(order["id"].(float64))
	require.Equal(t, http.StatusOK, m.assign(t, orderID, m.riderID).Code)

	w := doJSON(t, m.r, http.MethodPost, fmt.Sprintf("/riders/complete/%d", orderID), nil, m.riderTok)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, m.r, http.MethodPost, fmt.Sprintf("/riders/complete/%d", orderID), nil, m.riderTok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order not assigned", decode(t, w)["error"])

	var stored models.Order
	require.NoError(t, config.DB.First(&stored, orderID).Error)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestCompleteOrder_NotFound(t *testing.T) {
	m := newMarketplace(t)

	w := doJSON(t, m.r, http.MethodPost, "/riders/complete/9999", nil, m.riderTok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decode(t, w)["error"])
}

func TestCompleteOrder_RequiresRiderRole(t *testing.T) {
	m := newMarketplace(t)
	order := m.standardOrder(t)
	orderID := uint(order["id"].(float64))
	require.Equal(t, http.StatusOK, m.assign(t, orderID, m.riderID).Code)

	w := doJSON(t, m.r, http.MethodPost, fmt.Sprintf("/riders/complete/%d", orderID), nil, m.custTok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, m.r, http.MethodPost, fmt.Sprintf("/riders/complete/%d", orderID), nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
