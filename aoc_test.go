package aoc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=25272`,
			want: sample{
				want: "25272",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample = %v, want %v", got, tt.want)
		}
	}
}

const testSolverSrc = `package main

/*
want=3

a
b
c
*/
func (s testSolver) D1p1() any { return nil }

// want=6
func (s testSolver) D1p2() any { return nil }

// want=right
func (s testSolver) D2p1() any { return nil }
`

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any {
	n := 0
	s.ForLines(func(string) { n++ })
	return n
}

func (s testSolver) D1p2() any {
	return Parsed(s.Puzzle, func(b []byte) int { return len(b) })
}

func (s testSolver) D2p1() any { return "wrong" }

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(testSolverSrc))
	want := map[string]sample{
		"D1p1": {want: "3", input: "a\nb\nc\n"},
		"D1p2": {want: "6", input: "a\nb\nc\n"},
		"D2p1": {want: "right", input: "a\nb\nc\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractSamples = %v, want %v", got, want)
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("extractSamples[%s] = %v, want %v", k, got[k], w)
		}
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Day: -1, OnlySample: true}
	results := Run(&buf, 2025, []byte(testSolverSrc), &testSolver{}, cfg)

	want := []Result{
		{Day: 1, Part: "1", Sample: true, Got: "3", Want: "3"},
		{Day: 1, Part: "2", Sample: true, Got: "6", Want: "6"},
		{Day: 2, Part: "1", Sample: true, Got: "wrong", Want: "right"},
	}
	if len(results) != len(want) {
		t.Fatalf("Run returned %d results, want %d:\n%s", len(results), len(want), buf.String())
	}
	for i, r := range results {
		r.Took = 0
		if r != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, r, want[i])
		}
	}
	if !results[0].OK() || results[2].OK() {
		t.Errorf("OK() = %v, %v; want true, false", results[0].OK(), results[2].OK())
	}
	if !strings.Contains(buf.String(), "Running day 2") {
		t.Errorf("output missing day 2 header:\n%s", buf.String())
	}
}

func TestRunPart(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Day: 1, Part: "2", OnlySample: true}
	results := Run(&buf, 2025, []byte(testSolverSrc), &testSolver{}, cfg)
	if len(results) != 1 || results[0].Part != "2" {
		t.Errorf("Run(part 2) = %+v, want only part 2", results)
	}
}

func TestParsed(t *testing.T) {
	p := &Puzzle{
		cfg:        &Config{},
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples:    map[string]sample{"D1p1": {input: "abc\n"}},
	}
	calls := 0
	parse := func(b []byte) int {
		calls++
		return len(b)
	}
	for rep := 0; rep < 3; rep++ {
		if got := Parsed(p, parse); got != 4 {
			t.Errorf("Parsed = %d, want 4", got)
		}
	}
	if calls != 1 {
		t.Errorf("parse called %d times, want 1", calls)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aoc.yaml")
	if err := os.WriteFile(path, []byte("input_dir: /tmp/inputs\nday: 3\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AOC_DAY", "8")

	cfg, err := LoadConfig(viper.New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Day != 8 {
		t.Errorf("Day = %d, want 8 (env beats file)", cfg.Day)
	}
	if cfg.InputDir != "/tmp/inputs" {
		t.Errorf("InputDir = %q, want /tmp/inputs", cfg.InputDir)
	}
	if !strings.HasSuffix(cfg.SessionFile, filepath.Join("keys", "aoc.session")) {
		t.Errorf("SessionFile = %q, want default", cfg.SessionFile)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr bool
	}{
		{cfg: Config{Day: -1}},
		{cfg: Config{Day: 8, OnlySample: true}},
		{cfg: Config{Day: 0}, wantErr: true},
		{cfg: Config{Day: 26}, wantErr: true},
		{cfg: Config{Day: 1, OnlySample: true, SkipSample: true}, wantErr: true},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) = %v, wantErr %v", tt.cfg, err, tt.wantErr)
		}
	}
}

func TestNewCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	if err := os.WriteFile(path, []byte("debug: false\n"), 0600); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{args: []string{"--config", path, "--sample", "--day", "1"}},
		{args: []string{"--config", path, "--sample", "--day", "2"}, wantErr: true},
		{args: []string{"--config", path, "--sample", "--skip-sample"}, wantErr: true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		cmd := NewCommand(2025, []byte(testSolverSrc), &testSolver{})
		cmd.SetOut(&buf)
		cmd.SetArgs(tt.args)
		if err := cmd.Execute(); (err != nil) != tt.wantErr {
			t.Errorf("%v: Execute = %v, wantErr %v\n%s", tt.args, err, tt.wantErr, buf.String())
		}
	}
}
