package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, raw string) *Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	return &env
}

func TestEnvelopeOK(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"boolean success true", `{"success": true}`, true},
		{"boolean success false", `{"success": false}`, false},
		{"status success", `{"status": "success"}`, true},
		{"status error", `{"status": "error"}`, false},
		{"boolean wins over status", `{"success": false, "status": "success"}`, false},
		{"neither field", `{"message": "hello"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeEnvelope(t, tt.raw).OK())
		})
	}
}

func TestEnvelopeErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", decodeEnvelope(t, `{"error": "boom", "message": "other"}`).ErrorMessage())
	assert.Equal(t, "other", decodeEnvelope(t, `{"message": "other"}`).ErrorMessage())
	assert.Equal(t, "", decodeEnvelope(t, `{}`).ErrorMessage())
}

func TestEnvelopeOrderList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantIDs []int64
	}{
		{
			name:    "orders under data",
			raw:     `{"success": true, "data": [{"id": 1}, {"id": 2}]}`,
			wantIDs: []int64{1, 2},
		},
		{
			name:    "orders under orders",
			raw:     `{"status": "success", "orders": [{"id": 7}]}`,
			wantIDs: []int64{7},
		},
		{
			name:    "data preferred over orders",
			raw:     `{"data": [{"id": 1}], "orders": [{"id": 9}]}`,
			wantIDs: []int64{1},
		},
		{
			name:    "empty list",
			raw:     `{"success": true, "data": []}`,
			wantIDs: []int64{},
		},
		{
			name:    "missing payload degrades to empty",
			raw:     `{"success": true}`,
			wantIDs: []int64{},
		},
		{
			name:    "null payload degrades to empty",
			raw:     `{"success": true, "data": null}`,
			wantIDs: []int64{},
		},
		{
			name:    "non-list payload degrades to empty",
			raw:     `{"success": true, "data": {"id": 1}}`,
			wantIDs: []int64{},
		},
		{
			name:    "malformed data falls through to orders",
			raw:     `{"data": "oops", "orders": [{"id": 3}]}`,
			wantIDs: []int64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := decodeEnvelope(t, tt.raw).OrderList()
			require.NotNil(t, orders)
			ids := make([]int64, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEnvelopeSingleOrder(t *testing.T) {
	env := decodeEnvelope(t, `{"success": true, "data": {"id": 42, "status": "new", "pickup_address": "Main St 1"}}`)
	order := env.SingleOrder()
	require.NotNil(t, order)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, "Main St 1", order.PickupAddress)

	assert.Nil(t, decodeEnvelope(t, `{"success": true}`).SingleOrder())
	assert.Nil(t, decodeEnvelope(t, `{"success": true, "data": {"status": "new"}}`).SingleOrder())
	assert.Nil(t, decodeEnvelope(t, `{"success": true, "data": [1, 2]}`).SingleOrder())
}

func TestEnvelopeProfile(t *testing.T) {
	fromData := decodeEnvelope(t, `{"success": true, "data": {"id": 15, "name": "Jan Kowalski"}}`)
	profile := fromData.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, int64(15), profile.ID)
	assert.Equal(t, "Jan Kowalski", profile.Name)

	fromDriver := decodeEnvelope(t, `{"success": true, "driver": {"id": 8}}`)
	require.NotNil(t, fromDriver.Profile())
	assert.Equal(t, int64(8), fromDriver.Profile().ID)

	assert.Nil(t, decodeEnvelope(t, `{"success": true}`).Profile())
}

func TestEnvelopeMessageList(t *testing.T) {
	env := decodeEnvelope(t, `{"success": true, "data": [{"id": 1, "content": "hello"}]}`)
	messages := env.MessageList()
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)

	assert.Empty(t, decodeEnvelope(t, `{"success": true}`).MessageList())
	assert.Empty(t, decodeEnvelope(t, `{"success": true, "data": "oops"}`).MessageList())
}

func TestEnvelopeDriverID(t *testing.T) {
	assert.Equal(t, int64(15), decodeEnvelope(t, `{"success": true, "data": {"driver_id": 15}}`).DriverID())
	assert.Equal(t, int64(7), decodeEnvelope(t, `{"success": true, "data": {"id": 7}}`).DriverID())
	assert.Equal(t, int64(15), decodeEnvelope(t, `{"success": true, "data": {"driver_id": 15, "id": 7}}`).DriverID())
	assert.Equal(t, int64(0), decodeEnvelope(t, `{"success": true}`).DriverID())
	assert.Equal(t, int64(0), decodeEnvelope(t, `{"success": true, "data": [1]}`).DriverID())
}

func TestOrderAcceptable(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"", true},
		{"new", true},
		{"NEW", true},
		{"Pending", true},
		{"  pending  ", true},
		{"accepted", false},
		{"in_progress", false},
		{"completed", false},
		{"cancelled", false},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, Order{ID: 1, Status: tt.status}.Acceptable())
		})
	}
}

func TestResultFail(t *testing.T) {
	assert.Equal(t, "boom", Fail("boom").Message)
	assert.False(t, Fail("boom").Success)
	assert.Equal(t, "unknown error", Fail("").Message)
	assert.True(t, Ok().Success)
}
