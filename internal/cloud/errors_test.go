package cloud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable_PlainErrorsAreNot(t *testing.T) {
	t.Parallel()
	assert.False(t, IsRetryable(errors.New("dial tcp: connection refused")))
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsServiceError(errors.New("not from the api")))
}
