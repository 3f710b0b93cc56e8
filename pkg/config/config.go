// Package config loads the CLI configuration: which paths to watch,
// which events to subscribe to, and what to do when they fire.
// Embedded defaults are merged with an optional user file and
// LIBEVENTS_* environment variables, in that order.
package config

import (
	"github.com/BannZay/LibEvents/pkg/errors"
)

// Actions a rule can take when its event fires.
const (
	ActionLog   = "log"
	ActionCount = "count"
)

// Config is the fully merged CLI configuration.
type Config struct {
	Verbosity int    `koanf:"verbosity"`
	Watch     Watch  `koanf:"watch"`
	Rules     []Rule `koanf:"rule"`
}

// Watch names the directories handed to the filesystem source.
type Watch struct {
	Paths []string `koanf:"paths"`
}

// Rule binds one event name to an action; each rule becomes one
// listener slot.
type Rule struct {
	Event  string `koanf:"event"`
	Action string `koanf:"action"`
}

// Validate rejects configurations the CLI cannot act on.
func (c *Config) Validate() error {
	if len(c.Watch.Paths) == 0 {
		return errors.New(errors.ErrConfigParse, "watch.paths must name at least one directory")
	}
	for i, rule := range c.Rules {
		if rule.Event == "" {
			return errors.Newf(errors.ErrConfigParse, "rule %d has no event name", i)
		}
		switch rule.Action {
		case ActionLog, ActionCount:
		default:
			return errors.Newf(errors.ErrConfigParse, "rule %d has unknown action '%s'", i, rule.Action)
		}
	}
	return nil
}
