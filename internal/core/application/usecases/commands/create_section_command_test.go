package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSectionCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateSectionCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Section A", warehouse.SectionTypeRefrigerated, 200)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, warehouse.SectionTypeRefrigerated, cmd.SectionType())
	})

	t.Run("rejects_unknown_section_type", func(t *testing.T) {
		_, err := commands.NewCreateSectionCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Section A", warehouse.SectionTypeUnknown, 200)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive_capacity", func(t *testing.T) {
		_, err := commands.NewCreateSectionCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Section A", warehouse.SectionTypeStandard, 0)
		require.ErrorIs(t, err, commands.ErrCapacityIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CreateSectionCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateSectionCommandIsNotConstructed)
	})
}

func TestNewCreatePileCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreatePileCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Pile A-1", warehouse.PileTypeBin, 50)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, warehouse.PileTypeBin, cmd.PileType())
	})

	t.Run("rejects_unknown_pile_type", func(t *testing.T) {
		_, err := commands.NewCreatePileCommand(
			kernel.NewUUID(), kernel.NewUUID(), "Pile A-1", warehouse.PileTypeUnknown, 50)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := commands.NewCreatePileCommand(
			kernel.NewUUID(), kernel.NewUUID(), "", warehouse.PileTypeBin, 50)
		require.ErrorIs(t, err, commands.ErrNameIsRequired)
	})
}

func TestNewAssignLocationCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewAssignLocationCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects_empty_ids", func(t *testing.T) {
		_, err := commands.NewAssignLocationCommand(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)
	})
}

func TestNewChangeStatusCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewChangeStatusCommand(
			kernel.NewUUID(), kernel.NewUUID(), order.Cancelled)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := commands.NewChangeStatusCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
