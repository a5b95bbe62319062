package pattern_test

import (
	"testing"

	"github.com/clambin/blinkq/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_At(t *testing.T) {
	p := pattern.New(0b1010, 4)

	require.Equal(t, 4, p.Len())
	assert.True(t, p.At(0))
	assert.False(t, p.At(1))
	assert.True(t, p.At(2))
	assert.False(t, p.At(3))

	assert.Panics(t, func() { p.At(4) })
	assert.Panics(t, func() { p.At(-1) })
}

func TestPattern_At_IgnoresUnusedBits(t *testing.T) {
	// bits beyond the pattern's length don't affect playback
	p := pattern.New(0b111110, 2)
	assert.Equal(t, "10", p.String())
}

func TestNew_InvalidLength(t *testing.T) {
	assert.Panics(t, func() { pattern.New(0, 33) })
	assert.Panics(t, func() { pattern.New(0, -1) })
}

func TestPattern_Append(t *testing.T) {
	on := pattern.New(0b1, 1)
	off := pattern.New(0b000, 3)

	assert.Equal(t, "1000", on.Append(off).String())
	assert.Equal(t, "0001", off.Append(on).String())
	assert.Equal(t, "1", on.Append(pattern.New(0, 0)).String())

	// unused bits in either operand don't bleed into the result
	assert.Equal(t, "00", pattern.New(0b0, 1).Append(pattern.New(0b10, 1)).String())
	assert.Equal(t, "01", pattern.New(0b110, 1).Append(pattern.New(0b1, 1)).String())
}

func TestPattern_Append_Truncates(t *testing.T) {
	long := pattern.New(0xaaaaa, 20)
	combined := long.Append(long)

	require.Equal(t, pattern.MaxLen, combined.Len())
	want := long.String() + long.String()
	assert.Equal(t, want[:pattern.MaxLen], combined.String())

	full := pattern.New(0xffffffff, 32)
	assert.Equal(t, full, full.Append(long))
}

func TestPattern_Reverse(t *testing.T) {
	assert.Equal(t, "0001", pattern.New(0b1000, 4).Reverse().String())
	assert.Equal(t, "1010", pattern.New(0b0101, 4).Reverse().String())
	assert.Zero(t, pattern.New(0, 0).Reverse().Len())

	p := pattern.New(0b110100, 6)
	assert.Equal(t, p, p.Reverse().Reverse())
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "1010"},
		{input: "1"},
		{input: ""},
		{input: "11110000111100001111000011110000"},
		{input: "111100001111000011110000111100001", wantErr: true},
		{input: "10a0", wantErr: true},
	}

	for _, tt := range tests {
		p, err := pattern.Parse(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.input, p.String())
	}
}

func TestBlinks(t *testing.T) {
	assert.Equal(t, "10", pattern.ShortOnOff.String())
	assert.Equal(t, "01", pattern.ShortOffOn.String())
	assert.Equal(t, "11110000", pattern.LongOnOff.String())
	assert.Equal(t, "00001111", pattern.LongOffOn.String())
	assert.Equal(t, "1000", pattern.QuarterDuty.String())
}
