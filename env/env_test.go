package env_test

import (
	"testing"

	"github.com/maddsua/numrange/env"
	"github.com/maddsua/numrange/numrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_TrimsAndUppercasesKey(t *testing.T) {

	t.Setenv("NUMRANGE_TEST_VALUE", "  True ")

	val := env.Get("numrange_test_value")
	assert.Equal(t, env.Value("True"), val)
	assert.True(t, val.IsTrue())
	assert.False(t, val.IsFalse())
	assert.False(t, val.IsEmpty())
	assert.Equal(t, "true", val.ToLower())
}

func TestValue_Ints(t *testing.T) {

	t.Setenv("NUMRANGE_TEST_PORTS", "8000-8002, 9000")

	values, err := env.Get("NUMRANGE_TEST_PORTS").Ints(numrange.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []int{8000, 8001, 8002, 9000}, values)

	values, err = env.Get("NUMRANGE_TEST_UNSET").Ints(numrange.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, values)

	t.Setenv("NUMRANGE_TEST_PORTS", "9-1")
	_, err = env.Get("NUMRANGE_TEST_PORTS").Ints(numrange.DefaultConfig())
	assert.ErrorIs(t, err, numrange.ErrInvalidRange)
}

func TestValue_Rune(t *testing.T) {

	sign, ok := env.Value(";").Rune()
	assert.True(t, ok)
	assert.Equal(t, ';', sign)

	_, ok = env.Value(";;").Rune()
	assert.False(t, ok)

	_, ok = env.Value("").Rune()
	assert.False(t, ok)
}
