package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	original := &customError{msg: "custom"}
	wrapped := Wrap(original, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
}

func TestSentinelKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		matches  func(error) bool
		sentinel error
	}{
		{"invalid input", NewInvalidInputf("postal code is required for %s", "DE"), IsInvalidInput, ErrInvalidInput},
		{"invalid id", NewInvalidIDf("not formatted for %s", "AT"), IsInvalidID, ErrInvalidID},
		{"undefinitive", Wrap(ErrUndefinitive, "coarse geolocation"), IsUndefinitive, ErrUndefinitive},
		{"registry unavailable", Wrapf(ErrRegistryUnavailable, "HTTP %d", 500), IsRegistryUnavailable, ErrRegistryUnavailable},
		{"registry protocol", Wrap(ErrRegistryProtocol, "missing name element"), IsRegistryProtocol, ErrRegistryProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.matches(tt.err))
			assert.True(t, Is(tt.err, tt.sentinel))

			// A kind check never matches a different kind
			for _, other := range tests {
				if other.name != tt.name {
					assert.False(t, other.matches(tt.err),
						"%s matched %s checker", tt.name, other.name)
				}
			}
		})
	}
}

func TestSentinelKindsNilSafe(t *testing.T) {
	assert.False(t, IsInvalidInput(nil))
	assert.False(t, IsUndefinitive(nil))
	assert.False(t, IsInvalidID(nil))
	assert.False(t, IsRegistryUnavailable(nil))
	assert.False(t, IsRegistryProtocol(nil))
}

func TestNewInvalidInputfMessage(t *testing.T) {
	err := NewInvalidInputf("city is required")
	assert.Contains(t, err.Error(), "city is required")
}

func ExampleWrap() {
	baseErr := New("connection failed")
	err := Wrap(baseErr, "failed to reach registry")
	fmt.Println(err)
	// Output: failed to reach registry: connection failed
}
