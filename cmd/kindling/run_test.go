// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"testing"

	"kindling-cli/internal/anchor"
	"kindling-cli/internal/compile"
	"kindling-cli/internal/config"
	"kindling-cli/internal/loader"
)

func TestMapPipelineErrorReservedCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "non-local origin", err: &anchor.NonLocalOriginError{Scheme: "https"}, want: 10},
		{name: "compile failure", err: &compile.CompileError{Stage: compile.StageBuild, Cause: errors.New("x")}, want: 20},
		{name: "no sources", err: &compile.NoSourceError{Root: "/x", Suffix: ".go"}, want: 30},
		{name: "non-void entry", err: &loader.SignatureError{Symbol: "Main", Kind: loader.SignatureReturn}, want: 40},
		{name: "instance-bound entry", err: &loader.SignatureError{Symbol: "Main", Kind: loader.SignatureBinding}, want: 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapPipelineError(tt.err)

			var exitErr *ExitError
			if !errors.As(got, &exitErr) {
				t.Fatalf("mapPipelineError() = %v, want *ExitError", got)
			}
			if int(exitErr.Code) != tt.want {
				t.Errorf("ExitError.Code = %v, want %d", exitErr.Code, tt.want)
			}
		})
	}
}

func TestMapPipelineErrorPropagatesUnreserved(t *testing.T) {
	err := &loader.ResolutionError{What: "module", Name: "main"}
	if got := mapPipelineError(err); got != err {
		t.Errorf("mapPipelineError() = %v, want the original error", got)
	}

	if got := mapPipelineError(nil); got != nil {
		t.Errorf("mapPipelineError(nil) = %v, want nil", got)
	}
}

func TestLaunchOptionsFromDefaults(t *testing.T) {
	prev := cfg
	cfg = config.DefaultConfig()
	defer func() { cfg = prev }()

	opts, err := launchOptions()
	if err != nil {
		t.Fatalf("launchOptions() error = %v", err)
	}

	if opts.ProgramName != "kindling" {
		t.Errorf("ProgramName = %q, want %q", opts.ProgramName, "kindling")
	}
	if opts.EntryModule != "main" || opts.EntryFunction != "Main" {
		t.Errorf("entry = %s/%s, want main/Main", opts.EntryModule, opts.EntryFunction)
	}
	if !opts.Strict {
		t.Error("Strict = false, want true from defaults")
	}
}

func TestLaunchOptionsRejectsBadOrigin(t *testing.T) {
	prev, prevOrigin := cfg, originFlag
	cfg = config.DefaultConfig()
	originFlag = "://not-a-url"
	defer func() { cfg, originFlag = prev, prevOrigin }()

	if _, err := launchOptions(); err == nil {
		t.Error("launchOptions() accepted an unparsable origin")
	}
}
