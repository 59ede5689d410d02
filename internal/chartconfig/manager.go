package chartconfig

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/wandb/wandb/chartcore/internal/animation"
	"github.com/wandb/wandb/chartcore/internal/observability"
	"github.com/wandb/wandb/chartcore/internal/observability/wberrors"
)

const (
	EnvConfigDir = "CHARTCORE_CONFIG_DIR"
	ConfigName   = "chartcore.yaml"
)

// ConfigManager manages the chart configuration with thread-safe access
// and persistence to a file.
//
// Setters save the change before returning. Getters use read locks.
type ConfigManager struct {
	mu     sync.RWMutex
	fs     afero.Fs
	path   string
	config Config
	logger *observability.CoreLogger
}

// NewConfigManager loads the config at path on fsys, creating it with
// defaults if it does not exist.
//
// A file that cannot be read or parsed is logged and the defaults are
// used; the file is left untouched until the next save.
func NewConfigManager(
	fsys afero.Fs,
	path string,
	logger *observability.CoreLogger,
) *ConfigManager {
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}

	cm := &ConfigManager{
		fs:     fsys,
		path:   path,
		config: Default(),
		logger: logger,
	}
	if err := cm.Load(); err != nil {
		cm.logger.CaptureError(err)
	}
	return cm
}

// Load rereads the config file, or creates it if it does not exist.
func (cm *ConfigManager) Load() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	data, err := afero.ReadFile(cm.fs, cm.path)

	if errors.Is(err, fs.ErrNotExist) {
		if dir := filepath.Dir(cm.path); dir != "" {
			_ = cm.fs.MkdirAll(dir, 0o755)
		}
		cm.config = Default()
		return cm.save()
	}
	if err != nil {
		return wberrors.Enrichf(err, "chartconfig: failed to read").
			Attr(slog.String("path", cm.path))
	}

	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return wberrors.Enrichf(err, "chartconfig: failed to parse").
			Attr(slog.String("path", cm.path))
	}

	config.Normalize()
	cm.config = config
	return nil
}

// save writes the current configuration atomically.
//
// Must be called while holding the lock.
func (cm *ConfigManager) save() error {
	data, err := yaml.Marshal(cm.config)
	if err != nil {
		return wberrors.Enrichf(err, "chartconfig: failed to encode")
	}

	tempPath := cm.path + ".tmp"
	if err := afero.WriteFile(cm.fs, tempPath, data, 0o644); err != nil {
		return wberrors.Enrichf(err, "chartconfig: failed to write temp file").
			Attr(slog.String("path", tempPath))
	}
	if err := cm.fs.Rename(tempPath, cm.path); err != nil {
		return wberrors.Enrichf(err, "chartconfig: failed to rename temp file").
			Attr(slog.String("path", cm.path))
	}

	return nil
}

// Path returns the config file's path.
func (cm *ConfigManager) Path() string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.path
}

// Snapshot returns a copy of the current config.
func (cm *ConfigManager) Snapshot() Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// SetConfig replaces the full config, normalized, and persists it.
func (cm *ConfigManager) SetConfig(cfg Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cfg.Normalize()
	cm.config = cfg
	return cm.save()
}

// Update applies f to the config, normalizes the result and persists it.
func (cm *ConfigManager) Update(f func(*Config)) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	f(&cm.config)
	cm.config.Normalize()
	return cm.save()
}

// SetEasing sets the animation easing by name.
func (cm *ConfigManager) SetEasing(name string) error {
	if _, err := animation.ParseEasing(name); err != nil {
		return err
	}
	return cm.Update(func(c *Config) { c.Animation.Easing = name })
}

// SetYUnit sets how y labels are formatted.
func (cm *ConfigManager) SetYUnit(unit string) error {
	if _, ok := units[unit]; !ok && unit != UnitNone {
		return wberrors.Newf("chartconfig: unknown unit %q", unit)
	}
	return cm.Update(func(c *Config) { c.Axis.YUnit = unit })
}

// DefaultPath returns where the config is stored.
//
// It honors CHARTCORE_CONFIG_DIR, then falls back to the OS user config
// directory and finally the temp directory. Directories are created on
// fsys as needed.
func DefaultPath(fsys afero.Fs) string {
	if raw := strings.TrimSpace(os.Getenv(EnvConfigDir)); raw != "" {
		if p, ok := configPathFromDir(fsys, raw); ok {
			return p
		}
	}

	if base, err := os.UserConfigDir(); err == nil {
		if p, ok := configPathFromDir(fsys, filepath.Join(base, "chartcore")); ok {
			return p
		}
	}

	return filepath.Join(os.TempDir(), ConfigName)
}

func configPathFromDir(fsys afero.Fs, dir string) (string, bool) {
	d := expandAndClean(dir)
	if d == "" {
		return "", false
	}
	if err := fsys.MkdirAll(d, 0o755); err != nil {
		return "", false
	}
	return filepath.Join(d, ConfigName), true
}

func expandAndClean(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			if len(p) == 1 {
				p = home
			} else if p[1] == '/' || p[1] == '\\' {
				p = filepath.Join(home, p[2:])
			}
		}
	}
	return filepath.Clean(p)
}
