package main

import (
	"testing"

	"github.com/wehlutyk/kakoune/internal/app"
	"github.com/wehlutyk/kakoune/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Session:     "work",
			ClientName:  "client0",
			Autoreload:  "ask",
			ModelineFmt: "%val{session}",
			Tabstop:     8,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"session":    "work",
			"client":     "client0",
			"autoreload": "ask",
			"tabstop":    "8",
		},
		Args: []string{"-session", "work"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["session"] != "work" {
		t.Fatalf("expected session flag %q, got %v", "work", flagsValue["session"])
	}
	if flagsValue["autoreload"] != "ask" {
		t.Fatalf("expected autoreload ask, got %v", flagsValue["autoreload"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App.Session != cfg.App.Session {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
