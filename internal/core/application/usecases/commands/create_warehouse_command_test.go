package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWarehouseCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateWarehouseCommand(id, "Central Hub", "Tunis", "12 Rue de la Gare", 1000)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.WarehouseID())
		assert.Equal(t, "Central Hub", cmd.Name())
		assert.Equal(t, 1000, cmd.Capacity())
	})

	t.Run("rejects_missing_fields", func(t *testing.T) {
		_, err := commands.NewCreateWarehouseCommand(kernel.NewUUID(), "", "", "", 0)

		require.ErrorIs(t, err, commands.ErrNameIsRequired)
		require.ErrorIs(t, err, commands.ErrCityIsRequired)
		require.ErrorIs(t, err, commands.ErrAddressIsRequired)
		require.ErrorIs(t, err, commands.ErrCapacityIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CreateWarehouseCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateWarehouseCommandIsNotConstructed)
	})
}
