package mining_test

import (
	"testing"

	"github.com/katalvlaran/hardmine/mining"
	"github.com/stretchr/testify/assert"
)

func TestLimitAndBound(t *testing.T) {
	assert.True(t, mining.All().IsAll())
	assert.Equal(t, "all", mining.All().String())
	assert.Equal(t, "top(3)", mining.Top(3).String())
	assert.Equal(t, 3, mining.Top(3).K())

	u := mining.Unbounded()
	assert.True(t, u.Admits(1e9))
	assert.False(t, u.Admits(inf()))

	b := mining.AtMost(2)
	assert.Equal(t, 2, b.Ell())
	assert.True(t, b.Admits(2))
	assert.False(t, b.Admits(3))
	assert.Equal(t, "at-most(2)", b.String())
	assert.Equal(t, "unbounded", u.String())
}
