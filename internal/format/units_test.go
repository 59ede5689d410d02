package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandb/wandb/chartcore/internal/format"
)

func TestUnitFormat(t *testing.T) {
	testCases := []struct {
		name  string
		unit  format.Unit
		value float64
		want  string
	}{
		{"zero", format.UnitBytes, 0, "0"},
		{"scalar", format.UnitScalar, 0.12345, "0.123"},
		{"percent", format.UnitPercent, 42.42, "42.4%"},
		{"watts", format.UnitWatt, 250, "250W"},
		{"kilowatts", format.UnitWatt, 1500, "1.5kW"},
		{"MHz to GHz", format.UnitMHz, 1800, "1.8GHz"},
		{"bytes", format.UnitBytes, 512, "512B"},
		{"kibibytes", format.UnitBytes, 2048, "2KiB"},
		{"MiB input", format.UnitMiB, 1536, "1.5GiB"},
		{"rate", format.UnitBytesPerSecond, 2.5e6, "2.5MB/s"},
		{"milliseconds", format.UnitSeconds, 0.25, "250ms"},
		{"seconds", format.UnitSeconds, 3, "3s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.unit.Format(tc.value))
		})
	}
}

func TestUnitName(t *testing.T) {
	assert.Equal(t, "B", format.UnitGiB.Name())
	assert.Equal(t, "", format.UnitScalar.Name())
}

func TestCompact(t *testing.T) {
	testCases := []struct {
		value    float64
		maxWidth int
		want     string
	}{
		{0, 0, "0"},
		{-0.2, 0, "0"},
		{999.4, 0, "999"},
		{999.6, 0, "1k"},
		{1500, 0, "1.5k"},
		{-2500000, 0, "-2.5M"},
		{1234567, 4, "1.2M"},
		{999999, 0, "1M"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, format.Compact(tc.value, tc.maxWidth), "value %v", tc.value)
	}
}
