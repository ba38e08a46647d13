package numrange_test

import (
	"testing"

	"github.com/maddsua/numrange/numrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {

	cfg := numrange.DefaultConfig()

	assert.Equal(t, "", cfg.Format(nil))
	assert.Equal(t, "4", cfg.Format([]int{4}))
	assert.Equal(t, "1-3,5", cfg.Format([]int{1, 2, 3, 5}))
	assert.Equal(t, "5,1-2,8", cfg.Format([]int{5, 1, 2, 8}))
	assert.Equal(t, "3,2,1", cfg.Format([]int{3, 2, 1}))
}

func TestFormat_CustomSigns(t *testing.T) {

	cfg := mustConfig(t, numrange.NewBuilder().SeparatorSign(';').RangeSign(':'))

	assert.Equal(t, "-3:-1;7", cfg.Format([]int{-3, -2, -1, 7}))
}

func TestFormat_RoundTrip(t *testing.T) {

	cfg := mustConfig(t, numrange.NewBuilder().RangeSign(':'))

	for _, input := range []string{"1:2, 1, 5, 8", "9:12, 1:10, 3", "-4:4, 10, -20"} {

		values, err := cfg.Parse(input)
		require.NoError(t, err)

		again, err := cfg.Parse(cfg.Format(values))
		require.NoError(t, err)
		assert.Equal(t, values, again)
	}
}
