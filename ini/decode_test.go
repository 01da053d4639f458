// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/log/testlog"
)

type serverConfig struct {
	Host    string        `ini:"host"`
	Port    int           `ini:"port"`
	TLS     bool          `ini:"tls"`
	Timeout time.Duration `ini:"timeout"`
	Ratio   float64
	Unset   string `ini:"unset"`
}

func TestDecode(t *testing.T) {
	ctx := testlog.WithTB(context.Background(), t)
	s := newTestStore(ctx, t, `
		[server]
		host = localhost
		port = 8080
		tls = true
		timeout = 5s
		ratio = 0.5
		extra = ignored
		[server]
		port = 9090
		[broken]
		port = eighty
		[octal]
		port = 010
		[hex]
		port = 0x10
		[underscore]
		port = 1_000
		[overflow]
		small = 300`)

	t.Run("Success", func(t *testing.T) {
		got := serverConfig{Unset: "default"}
		if err := s.Decode("server", &got); err != nil {
			t.Fatal("Decode:", err)
		}
		want := serverConfig{
			Host:    "localhost",
			Port:    9090,
			TLS:     true,
			Timeout: 5 * time.Second,
			Ratio:   0.5,
			Unset:   "default",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Decode (-want +got):\n%s", diff)
		}
	})

	t.Run("SectionNotFound", func(t *testing.T) {
		var got serverConfig
		if err := s.Decode("client", &got); !errors.Is(err, ErrSectionNotFound) {
			t.Errorf("Decode error = %v; want %v", err, ErrSectionNotFound)
		}
	})

	t.Run("BadValue", func(t *testing.T) {
		var got serverConfig
		err := s.Decode("broken", &got)
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Fatalf("Decode error = %v; want *ConversionError", err)
		}
		if convErr.Section != "broken" {
			t.Errorf("convErr.Section = %q; want \"broken\"", convErr.Section)
		}
		if want := "ini.serverConfig"; convErr.Type != want {
			t.Errorf("convErr.Type = %q; want %q", convErr.Type, want)
		}
	})

	t.Run("DecimalOnly", func(t *testing.T) {
		var got serverConfig
		if err := s.Decode("octal", &got); err != nil {
			t.Fatal("Decode:", err)
		}
		if got.Port != 10 {
			t.Errorf("Port = %d; want 10", got.Port)
		}
		if want, err := s.Int("octal", "port"); err != nil || got.Port != want {
			t.Errorf("s.Int(\"octal\", \"port\") = %d, %v; want %d, <nil>", want, err, got.Port)
		}

		for _, section := range []string{"hex", "underscore"} {
			var got serverConfig
			err := s.Decode(section, &got)
			var convErr *ConversionError
			if !errors.As(err, &convErr) {
				t.Errorf("Decode(%q) = %+v, %v; want *ConversionError", section, got, err)
			}
			if _, err := s.Int(section, "port"); err == nil {
				t.Errorf("s.Int(%q, \"port\") did not return error", section)
			}
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		var got struct {
			Small int8 `ini:"small"`
		}
		err := s.Decode("overflow", &got)
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Errorf("Decode = %+v, %v; want *ConversionError", got, err)
		}
	})

	t.Run("NotPointer", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Decode did not panic")
			}
		}()
		s.Decode("server", serverConfig{})
	})
}
