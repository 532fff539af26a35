package netutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticResolver(t *testing.T) {
	t.Parallel()
	r := StaticResolver{"node1": "10.0.0.5"}

	ip, ok := r.LookupIPv4(context.Background(), "node1")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.5", ip)

	_, ok = r.LookupIPv4(context.Background(), "node2")
	assert.False(t, ok)
}

func TestSystemResolver_UnknownHost(t *testing.T) {
	t.Parallel()
	r := SystemResolver()

	_, ok := r.LookupIPv4(context.Background(), "definitely-not-a-real-host.invalid")
	assert.False(t, ok)
}
