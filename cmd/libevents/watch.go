package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/BannZay/LibEvents/pkg/config"
	"github.com/BannZay/LibEvents/pkg/events"
	"github.com/BannZay/LibEvents/pkg/source/fswatch"
)

var (
	eventStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the configured paths and act on events as they fire",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		watcher, err := fswatch.New(cfg.Watch.Paths...)
		if err != nil {
			return err
		}

		registry := events.New(watcher)
		events.SetDefault(registry)
		defer events.ResetDefault()

		out := cmd.OutOrStdout()
		listener, counts, err := wireRules(registry, cfg, out)
		if err != nil {
			_ = watcher.Close()
			return err
		}
		defer listener.UnregisterAllEvents()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		watcher.Start(ctx, registry)

		fmt.Fprintf(out, "Watching %s (ctrl-c to stop)\n", strings.Join(cfg.Watch.Paths, ", "))
		<-ctx.Done()

		// Stop the source before reading the counters.
		_ = watcher.Close()
		counts.report(out)
		return nil
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the event names the configuration subscribes to",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		actions := make(map[string][]string)
		for _, rule := range cfg.Rules {
			actions[rule.Event] = append(actions[rule.Event], rule.Action)
		}

		names := make([]string, 0, len(actions))
		for name := range actions {
			names = append(names, name)
		}
		sort.Strings(names)

		out := cmd.OutOrStdout()
		for _, name := range names {
			fmt.Fprintf(out, "%s %s\n", eventStyle.Render(name), pathStyle.Render(strings.Join(actions[name], ", ")))
		}
		return nil
	},
}

// counters accumulates per-event totals for count rules. Dispatch runs
// on the watcher goroutine, so access is guarded.
type counters struct {
	mu     sync.Mutex
	totals map[string]int
}

func newCounters() *counters {
	return &counters{totals: make(map[string]int)}
}

func (c *counters) bump(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totals[event]++
}

func (c *counters) report(out io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.totals) == 0 {
		return
	}
	names := make([]string, 0, len(c.totals))
	for name := range c.totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s %s\n", eventStyle.Render(name), countStyle.Render(fmt.Sprintf("%d", c.totals[name])))
	}
}

// wireRules turns each config rule into one listener slot. A later rule
// for the same event name overwrites the earlier slot, matching the
// registry's default overwrite semantics.
func wireRules(registry *events.Registry, cfg *config.Config, out io.Writer) (*events.Listener, *counters, error) {
	listener := events.NewListener(registry, nil)
	counts := newCounters()

	for _, rule := range cfg.Rules {
		event := rule.Event

		var cb events.Callback
		switch rule.Action {
		case config.ActionLog:
			cb = func(target any, args ...any) {
				path := ""
				if len(args) > 0 {
					path, _ = args[0].(string)
				}
				fmt.Fprintf(out, "%s %s\n", eventStyle.Render(event), pathStyle.Render(path))
			}
		case config.ActionCount:
			cb = func(target any, args ...any) {
				counts.bump(event)
			}
		}

		if err := listener.Set(event, cb); err != nil {
			listener.UnregisterAllEvents()
			return nil, nil, err
		}
	}
	return listener, counts, nil
}
