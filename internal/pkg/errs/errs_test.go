package errs_test

import (
	"errors"
	"testing"

	"coffee/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("request body")

		assert.Equal(t, "request body", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: request body", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unexpected EOF")
		err := errs.NewValueIsInvalidErrorWithCause("request body", cause)

		assert.Equal(t, "request body", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: request body (cause: unexpected EOF)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("sugar", 6, 0, 5)

		assert.Equal(t, "sugar", err.ParamName)
		assert.Equal(t, 6, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 6 is sugar, min value is 0, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("too sweet")
		err := errs.NewValueIsOutOfRangeErrorWithCause("sugar", -1, 0, 5, cause)

		assert.Equal(t, -1, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -1 is sugar, min value is 0, max value is 5 (cause: too sweet)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("base")

		assert.Equal(t, "base", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: base", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("empty string")
		err := errs.NewValueIsRequiredErrorWithCause("size", cause)

		assert.Equal(t, "size", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: size (cause: empty string)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewValueIsInvalidError("body"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("sugar", 9, 0, 5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("base"), errs.ErrValueIsRequired)
	})

	t.Run("kinds do not match each other", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("base")
		assert.NotErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("errors.As extracts the param name through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("quote failed"), errs.NewValueIsRequiredError("size"))

		var target *errs.ValueIsRequiredError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "size", target.ParamName)
	})
}
