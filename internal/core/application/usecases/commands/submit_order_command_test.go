package commands_test

import (
	"testing"

	"grouporders/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand(t *testing.T) {
	t.Run("should create command with all fields set", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand("Alice", "Restauracja A", "Restauracja B", "Zurek")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Alice", cmd.UserName())
		assert.Equal(t, "Restauracja A", cmd.PreferredRestaurantName())
		assert.Equal(t, "Restauracja B", cmd.AlternateRestaurantName())
		assert.Equal(t, "Zurek", cmd.MenuItemName())
	})

	t.Run("should accept blank user and alternate restaurant", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand("", "Restauracja A", "", "Zurek")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Empty(t, cmd.UserName())
		assert.Empty(t, cmd.AlternateRestaurantName())
	})

	t.Run("should fail with empty preferred restaurant", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("Alice", "", "Restauracja B", "Zurek")

		require.ErrorIs(t, err, commands.ErrPreferredRestaurantIsRequired)
	})

	t.Run("should fail with empty menu item name", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("Alice", "Restauracja A", "Restauracja B", "")

		require.ErrorIs(t, err, commands.ErrMenuItemNameIsRequired)
	})

	t.Run("should join all missing field errors", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("Alice", "", "Restauracja B", "")

		require.ErrorIs(t, err, commands.ErrPreferredRestaurantIsRequired)
		require.ErrorIs(t, err, commands.ErrMenuItemNameIsRequired)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.SubmitOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
	})
}
