package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navix-rl/navix/internal/errors"
)

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors returns nil", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		assert.NoError(t, vb.Build())
	})

	t.Run("collects field errors", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("Observation")
		vb.InvalidField("Height", "must be at least 3")

		err := vb.Build()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))

		var structured *errors.Error
		require.True(t, errors.As(err, &structured))
		fields, ok := structured.Meta["validation_errors"].(map[string][]string)
		require.True(t, ok)
		assert.Contains(t, fields, "Observation")
		assert.Contains(t, fields, "Height")
	})

	t.Run("multiple errors on one field", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		vb.Field("MaxSteps", "is required")
		vb.Fieldf("MaxSteps", "must be positive, got %d", -1)

		err := vb.Build()
		require.Error(t, err)

		var structured *errors.Error
		require.True(t, errors.As(err, &structured))
		fields := structured.Meta["validation_errors"].(map[string][]string)
		assert.Len(t, fields["MaxSteps"], 2)
	})
}
