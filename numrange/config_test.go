package numrange_test

import (
	"errors"
	"testing"

	"github.com/maddsua/numrange/numrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Defaults(t *testing.T) {

	cfg, err := numrange.NewBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, ',', cfg.Separator())
	assert.Equal(t, '-', cfg.RangeSign())
	assert.Equal(t, numrange.DefaultLimit, cfg.Limit())
	assert.False(t, cfg.Sorted())
	assert.Equal(t, numrange.DefaultConfig(), cfg)
}

func TestConfig_ZeroValueIsDefault(t *testing.T) {

	var cfg numrange.Config

	assert.Equal(t, ',', cfg.Separator())
	assert.Equal(t, '-', cfg.RangeSign())
	assert.Equal(t, numrange.DefaultLimit, cfg.Limit())

	values, err := cfg.Parse("3-4,1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 1}, values)
}

func TestBuilder_CustomSigns(t *testing.T) {

	cfg, err := numrange.NewBuilder().
		SeparatorSign(';').
		RangeSign(':').
		Limit(10).
		Sorted(true).
		Build()
	require.NoError(t, err)

	assert.Equal(t, ';', cfg.Separator())
	assert.Equal(t, ':', cfg.RangeSign())
	assert.Equal(t, 10, cfg.Limit())
	assert.True(t, cfg.Sorted())
}

func TestBuilder_NegativeLimitDisablesCap(t *testing.T) {

	cfg, err := numrange.NewBuilder().Limit(-5).Build()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Limit())
}

func TestBuilder_InvalidSigns(t *testing.T) {

	cases := []struct {
		name      string
		separator rune
		rangeSign rune
	}{
		{"equal signs", '=', '='},
		{"digit separator", '1', '-'},
		{"digit range sign", ',', '0'},
		{"space separator", ' ', '-'},
		{"tab range sign", ',', '\t'},
		{"newline separator", '\n', '-'},
		{"non-breaking space", '\u00a0', '-'},
		{"surrogate separator", 0xD800, '-'},
		{"surrogate pair of signs", 0xD800, 0xDFFF},
		{"negative separator", -1, '-'},
		{"range sign above max rune", ',', 0x110000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {

			_, err := numrange.NewConfig(tc.separator, tc.rangeSign)
			require.Error(t, err)
			assert.ErrorIs(t, err, numrange.ErrInvalidConfig)

			var cfgErr *numrange.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.separator, cfgErr.Separator)
			assert.Equal(t, tc.rangeSign, cfgErr.RangeSign)
			assert.NotEmpty(t, cfgErr.Reason)
		})
	}
}

func TestNewConfig_Valid(t *testing.T) {

	cfg, err := numrange.NewConfig('|', '~')
	require.NoError(t, err)

	values, err := cfg.Parse("1~3|2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)
}
