package tool

import (
	"time"

	"github.com/kardolus/reviewer/config"
	"github.com/kardolus/reviewer/history"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const prepareCommand = "prepare"

// Tool is a configured tool plus the history recorded for it. History
// failures are logged and treated as missing values so they never fail a run.
type Tool struct {
	Settings
	history history.Store
}

func New(key string, cfg config.ToolConfig, store history.Store) *Tool {
	return &Tool{Settings: NewSettings(key, cfg), history: store}
}

func FromConfig(tools config.Tools, store history.Store) []*Tool {
	result := make([]*Tool, 0, len(tools))
	for _, entry := range tools {
		result = append(result, New(entry.Key, entry.Tool, store))
	}
	return result
}

func (t *Tool) LastPreparedAt() (time.Time, bool) {
	value := t.get(history.LastPreparedAt)
	if value == nil {
		return time.Time{}, false
	}
	at, err := cast.ToTimeE(value)
	if err != nil {
		zap.S().Warnf("ignoring unreadable %s for %s: %v", history.LastPreparedAt, t.Key(), err)
		return time.Time{}, false
	}
	return at, true
}

func (t *Tool) RecordPrepared(at time.Time) {
	t.set(history.LastPreparedAt, at.UTC().Format(time.RFC3339))
}

// PrepareDue reports whether the prepare command should run before another
// command because it never ran or ran longer than window ago.
func (t *Tool) PrepareDue(now time.Time, window time.Duration) bool {
	if !t.HasCommand(prepareCommand) {
		return false
	}
	last, ok := t.LastPreparedAt()
	if !ok {
		return true
	}
	return now.Sub(last) > window
}

func (t *Tool) LastSeed() (int, bool) {
	value := t.get(history.LastSeed)
	if value == nil {
		return 0, false
	}
	seed, err := cast.ToIntE(value)
	if err != nil || seed < 0 {
		return 0, false
	}
	return seed, true
}

func (t *Tool) RecordSeed(seed int) {
	t.set(history.LastSeed, seed)
}

func (t *Tool) LastStatus() string {
	return cast.ToString(t.get(history.LastStatus))
}

func (t *Tool) LastFailedFiles() []string {
	return cast.ToStringSlice(t.get(history.LastFailedFiles))
}

func (t *Tool) LastDuration() (time.Duration, bool) {
	value := t.get(history.LastDuration)
	if value == nil {
		return 0, false
	}
	seconds, err := cast.ToFloat64E(value)
	if err != nil || seconds <= 0 {
		return 0, false
	}
	return time.Duration(seconds * float64(time.Second)), true
}

func (t *Tool) RecordDuration(d time.Duration) {
	t.set(history.LastDuration, d.Seconds())
}

// ResetStatus clears the previous outcome so an interrupted run is never
// reported with stale results.
func (t *Tool) ResetStatus() {
	t.set(history.LastStatus, nil)
}

func (t *Tool) RecordOutcome(passed bool, failedFiles []string) {
	if passed {
		t.set(history.LastStatus, history.StatusPassed)
		t.set(history.LastFailedFiles, nil)
		return
	}

	t.set(history.LastStatus, history.StatusFailed)
	if len(failedFiles) == 0 {
		t.set(history.LastFailedFiles, nil)
		return
	}
	t.set(history.LastFailedFiles, failedFiles)
}

func (t *Tool) get(attribute string) any {
	if t.history == nil {
		return nil
	}
	value, err := t.history.Get(t.Key(), attribute)
	if err != nil {
		zap.S().Warnf("reading %s for %s: %v", attribute, t.Key(), err)
		return nil
	}
	return value
}

func (t *Tool) set(attribute string, value any) {
	if t.history == nil {
		return
	}
	if err := t.history.Set(t.Key(), attribute, value); err != nil {
		zap.S().Warnf("recording %s for %s: %v", attribute, t.Key(), err)
		return
	}
	zap.S().Debugf("history %s.%s = %v", t.Key(), attribute, value)
}
