package kernel_test

import (
	"testing"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("accepts_ten_digits", func(t *testing.T) {
		phone, err := kernel.NewPhone("9999999999")

		require.NoError(t, err)
		require.NoError(t, phone.Validate())
		assert.Equal(t, "9999999999", phone.String())
	})

	t.Run("rejects_empty_input", func(t *testing.T) {
		_, err := kernel.NewPhone("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		_, err := kernel.NewPhone("12345")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_digit_characters", func(t *testing.T) {
		_, err := kernel.NewPhone("99999x9999")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPhone_IsEqual(t *testing.T) {
	a, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	b, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	c, err := kernel.NewPhone("9000000000")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPhone_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var phone kernel.Phone
		require.ErrorIs(t, phone.Validate(), errs.ErrValueIsRequired)
	})
}
