package audit_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("creates_valid_record", func(t *testing.T) {
		r, err := audit.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			audit.ActionOrderPlacement, "placed 40 units")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, audit.ActionOrderPlacement, r.Action())
		assert.Equal(t, "placed 40 units", r.Details())
		assert.False(t, r.OccurredAt().IsZero())
	})

	t.Run("rejects_unknown_action", func(t *testing.T) {
		_, err := audit.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			audit.ActionUnknown, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var r audit.Record
		require.ErrorIs(t, r.Validate(), audit.ErrRecordIsNotConstructed)
	})
}

func TestAction(t *testing.T) {
	t.Run("round_trips_wire_names", func(t *testing.T) {
		for _, a := range []audit.Action{
			audit.ActionOrderPlacement,
			audit.ActionOrderDelivery,
			audit.ActionOrderCancellation,
		} {
			parsed, err := audit.ActionFromString(a.String())
			require.NoError(t, err)
			assert.Equal(t, a, parsed)
		}
	})

	t.Run("rejects_unknown_name", func(t *testing.T) {
		_, err := audit.ActionFromString("ORDER_RETURN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
