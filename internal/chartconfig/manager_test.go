package chartconfig_test

import (
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/chartcore/internal/animation"
	"github.com/wandb/wandb/chartcore/internal/chartconfig"
	"github.com/wandb/wandb/chartcore/internal/observabilitytest"
)

const configPath = "/cfg/chartcore.yaml"

func TestNewConfigManager_CreatesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cm := chartconfig.NewConfigManager(fs, configPath, nil)

	assert.Equal(t, chartconfig.Default(), cm.Snapshot())
	assert.Equal(t, configPath, cm.Path())

	exists, err := afero.Exists(fs, configPath)
	require.NoError(t, err)
	assert.True(t, exists)

	reloaded := chartconfig.NewConfigManager(fs, configPath, nil)
	assert.Equal(t, chartconfig.Default(), reloaded.Snapshot())
}

func TestLoad_Normalizes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, configPath, []byte(`
axis:
  x_label_count: 100
  y_label_count: -3
  y_unit: furlongs
viewport:
  drag_offset_x: -5
highlight:
  max_distance: 0
animation:
  easing: wobble
  frame_rate: 500
  duration_ms: 50000
`), 0o644))

	cfg := chartconfig.NewConfigManager(fs, configPath, nil).Snapshot()

	assert.Equal(t, chartconfig.MaxLabelCount, cfg.Axis.XLabelCount)
	assert.Equal(t, chartconfig.MinLabelCount, cfg.Axis.YLabelCount)
	assert.Equal(t, chartconfig.UnitNone, cfg.Axis.YUnit)
	assert.Equal(t, 0.0, cfg.Viewport.DragOffsetX)
	assert.Equal(t, 500.0, cfg.Highlight.MaxDistance)
	assert.Equal(t, chartconfig.DefaultEasing, cfg.Animation.Easing)
	assert.Equal(t, chartconfig.MaxFrameRate, cfg.Animation.FrameRate)
	assert.Equal(t, 10*time.Second, cfg.Animation.Duration())

	// Sections missing from the file keep their defaults.
	assert.Equal(t, chartconfig.Default().Pie, cfg.Pie)
	assert.Equal(t, 0.1, cfg.Axis.SpaceTop)
}

func TestLoad_BadYAMLKeepsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, configPath, []byte("axis: ["), 0o644))
	logger, buf := observabilitytest.NewRecordingTestLogger(t, nil)

	cm := chartconfig.NewConfigManager(fs, configPath, logger)

	assert.Equal(t, chartconfig.Default(), cm.Snapshot())

	logs := observabilitytest.ExtractLogs(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "ERROR", logs[0]["level"])
	assert.Contains(t, logs[0]["msg"], "chartconfig: failed to parse")
	assert.Equal(t, configPath, logs[0]["path"])

	data, err := afero.ReadFile(fs, configPath)
	require.NoError(t, err)
	assert.Equal(t, "axis: [", string(data), "a broken file is not overwritten")
}

func TestSetEasing(t *testing.T) {
	fs := afero.NewMemMapFs()
	cm := chartconfig.NewConfigManager(fs, configPath, nil)

	assert.Error(t, cm.SetEasing("wobble"))
	require.NoError(t, cm.SetEasing("easeOutBounce"))

	cfg := chartconfig.NewConfigManager(fs, configPath, nil).Snapshot()
	assert.Equal(t, animation.EaseOutBounce, cfg.Animation.EasingOption())
}

func TestSetYUnit(t *testing.T) {
	cm := chartconfig.NewConfigManager(afero.NewMemMapFs(), configPath, nil)

	assert.ErrorContains(t, cm.SetYUnit("furlongs"), `unknown unit "furlongs"`)
	assert.Nil(t, cm.Snapshot().Axis.YFormatter())

	require.NoError(t, cm.SetYUnit(chartconfig.UnitBytes))
	f := cm.Snapshot().Axis.YFormatter()
	require.NotNil(t, f)
	assert.Equal(t, "2KiB", f.FormatAxisValue(2048, nil))
}

func TestSetConfig_Normalizes(t *testing.T) {
	cm := chartconfig.NewConfigManager(afero.NewMemMapFs(), configPath, nil)
	cfg := chartconfig.Default()
	cfg.Pie.RotationAngle = -90
	cfg.Pie.HoleRadiusPercent = 150

	require.NoError(t, cm.SetConfig(cfg))

	assert.Equal(t, 270.0, cm.Snapshot().Pie.RotationAngle)
	assert.Equal(t, 100.0, cm.Snapshot().Pie.HoleRadiusPercent)
}

func TestConcurrentUpdates(t *testing.T) {
	cm := chartconfig.NewConfigManager(afero.NewMemMapFs(), configPath, nil)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			_ = cm.Update(func(c *chartconfig.Config) {
				c.Offsets.Left = float64(i)
			})
			_ = cm.Snapshot()
		})
	}
	wg.Wait()

	assert.Less(t, cm.Snapshot().Offsets.Left, 8.0)
}

func TestDefaultPath_FromEnv(t *testing.T) {
	t.Setenv(chartconfig.EnvConfigDir, "/custom/dir")
	fs := afero.NewMemMapFs()

	path := chartconfig.DefaultPath(fs)

	assert.Equal(t, "/custom/dir/chartcore.yaml", path)
	exists, err := afero.DirExists(fs, "/custom/dir")
	require.NoError(t, err)
	assert.True(t, exists)
}
