// Package app wires the pieces into a running editor session: terminal
// backend, buffers, window, client, file watcher and the event loop.
package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wehlutyk/kakoune/internal/buffer"
	"github.com/wehlutyk/kakoune/internal/client"
	"github.com/wehlutyk/kakoune/internal/hooks"
	"github.com/wehlutyk/kakoune/internal/options"
	"github.com/wehlutyk/kakoune/internal/ui/term"
	"github.com/wehlutyk/kakoune/internal/window"
)

// Config describes user-provided application options.
type Config struct {
	Session     string
	ClientName  string
	Files       []string
	Autoreload  string
	ModelineFmt string
	Tabstop     int
}

const pumpInterval = 100 * time.Millisecond

// Run bootstraps the terminal session and drives the event loop until the
// last client is gone.
func Run(cfg Config) error {
	backend, err := term.New(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer backend.Stop()

	buffers, err := openBuffers(cfg.Files)
	if err != nil {
		return err
	}

	watcher, err := buffer.NewWatcher(500 * time.Millisecond)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	for _, buf := range buffers {
		if buf.Flags()&buffer.FlagFile != 0 {
			if err := watcher.Watch(buf.Name()); err != nil {
				return err
			}
		}
	}

	opts := options.NewStore(map[string]string{
		"autoreload":  cfg.Autoreload,
		"modelinefmt": cfg.ModelineFmt,
		"tabstop":     strconv.Itoa(cfg.Tabstop),
	})
	registry := client.NewRegistry(func(buf buffer.Buffer) window.Window {
		return window.NewScroll(buf, opts)
	})

	mode := &normalMode{buffers: buffers}
	c := client.New(client.Config{
		Name:     cfg.ClientName,
		Session:  cfg.Session,
		UI:       backend,
		Window:   window.NewScroll(buffers[0], opts),
		Input:    mode,
		Hooks:    hooks.NewRunner(),
		EnvVars:  environMap(os.Environ()),
		Expander: client.ExpanderFunc(expandModeLine(cfg)),
	})
	registry.Add(c)
	mode.client = c

	for {
		if !backend.PumpEvents(pumpInterval) {
			return nil
		}
		select {
		case evt, ok := <-watcher.Events():
			if ok && evt.Err == nil {
				for _, c := range registry.Clients() {
					c.CheckIfBufferNeedsReloading()
				}
			}
		default:
		}
		if registry.Count() == 0 {
			return nil
		}
		for _, c := range registry.Clients() {
			c.RedrawIfNeeded()
		}
	}
}

func openBuffers(files []string) ([]*buffer.FileBuffer, error) {
	if len(files) == 0 {
		return []*buffer.FileBuffer{buffer.NewScratchBuffer("*scratch*", "")}, nil
	}
	buffers := make([]*buffer.FileBuffer, 0, len(files))
	for _, path := range files {
		buf, err := buffer.NewFileBuffer(path)
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, buf)
	}
	return buffers, nil
}

func environMap(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// expandModeLine resolves %val{...} placeholders in the modelinefmt option.
// Unknown placeholders fail the whole expansion; the client degrades that to
// its fixed error atom.
func expandModeLine(cfg Config) func(format string) (string, error) {
	return func(format string) (string, error) {
		var out strings.Builder
		rest := format
		for {
			i := strings.Index(rest, "%val{")
			if i < 0 {
				out.WriteString(rest)
				return out.String(), nil
			}
			out.WriteString(rest[:i])
			rest = rest[i+len("%val{"):]
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated %%val{ in %q", format)
			}
			name := rest[:end]
			rest = rest[end+1:]
			switch name {
			case "session":
				out.WriteString(cfg.Session)
			case "client":
				out.WriteString(cfg.ClientName)
			default:
				return "", fmt.Errorf("unknown value %q", name)
			}
		}
	}
}
