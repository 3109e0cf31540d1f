package optimise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName_ValidNames(t *testing.T) {
	g, err := ByName("graph")
	require.NoError(t, err)
	assert.Equal(t, "graph", g.Name())

	d, err := ByName("dp")
	require.NoError(t, err)
	assert.Equal(t, "dp", d.Name())

	ga, err := ByName("ga")
	require.NoError(t, err)
	assert.Equal(t, "ga", ga.Name())
}

func TestByName_UnknownNameIsInvalidInput(t *testing.T) {
	_, err := ByName("bogus")
	require.Error(t, err)
}
