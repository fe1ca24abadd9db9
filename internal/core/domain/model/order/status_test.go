package order_test

import (
	"testing"

	"grouporders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept built-in labels", func(t *testing.T) {
		require.NoError(t, order.StatusNew.Validate())
		require.NoError(t, order.StatusGrouped.Validate())
	})

	t.Run("should accept arbitrary non-empty labels", func(t *testing.T) {
		require.NoError(t, order.Status("confirmed").Validate())
		require.NoError(t, order.Status("delivered").Validate())
	})

	t.Run("should reject empty label", func(t *testing.T) {
		require.Error(t, order.Status("").Validate())
	})
}

func TestStatus_IsNew(t *testing.T) {
	assert.True(t, order.StatusNew.IsNew())
	assert.False(t, order.StatusGrouped.IsNew())
	assert.False(t, order.Status("confirmed").IsNew())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "new", order.StatusNew.String())
	assert.Equal(t, "grouped", order.StatusGrouped.String())
}
