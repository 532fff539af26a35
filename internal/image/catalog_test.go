package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForShape(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shape string
		want  string
	}{
		{"VM.Standard2.1", NameStandard},
		{"BM.Standard.E2.64", NameStandard},
		{"VM.GPU3.1", NameGPU},
		{"BM.GPU4.8", NameGPU},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ForShape(tt.shape), "shape %s", tt.shape)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()

	id, err := catalog.Resolve(NameStandard, "uk-london-1")
	require.NoError(t, err)
	assert.Equal(t, "ocid1.image.oc1.uk-london-1.aaaaaaaai2rckqhxpvhjb6vtxdgzga3nomcqb3rl54o7wdotnof2qm2ek55a", id)

	id, err = catalog.Resolve(NameGPU, "us-phoenix-1")
	require.NoError(t, err)
	assert.Equal(t, "ocid1.image.oc1.phx.aaaaaaaaz3d4hrs4jxxj5ue3fvg3pwr4zseixqhvvielziklfzjruxn55kpq", id)
}

func TestResolve_UnknownRegion(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()

	_, err := catalog.Resolve(NameStandard, "mars-olympus-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_UnknownImage(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()

	_, err := catalog.Resolve("Oracle-Linux-99", "uk-london-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// The GPU image list carries sa-santiago-1 but the standard list does not;
// a standard-shape node in that region must fail loudly rather than fall
// back to the GPU build.
func TestResolve_NoSilentFallbackAcrossImages(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()

	_, err := catalog.Resolve(NameStandard, "sa-santiago-1")
	require.Error(t, err)

	_, err = catalog.Resolve(NameGPU, "sa-santiago-1")
	require.NoError(t, err)
}
