package aoc

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCommand returns the root command of a solver binary. src and slvr
// are passed to Run.
func NewCommand(year int, src []byte, slvr any) *cobra.Command {
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Advent of Code %d solutions", year),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(v, configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			results := Run(out, year, src, slvr, cfg)
			WriteSummary(out, results)
			for _, r := range results {
				if !r.OK() {
					return fmt.Errorf("day %d part %s: sample got %s, want %s", r.Day, r.Part, r.Got, r.Want)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "config file (default .aoc.yaml in . or $HOME)")
	f.Int("day", -1, "day to run")
	f.String("part", "", "part to run")
	f.Bool("sample", false, "only run sample")
	f.Bool("skip-sample", false, "skip sample")
	f.Bool("debug", false, "debug mode")
	f.String("input-dir", "", "directory inputs are cached in")
	f.String("session-file", "", "file holding the adventofcode.com session cookie")

	for key, flag := range map[string]string{
		"day":          "day",
		"part":         "part",
		"sample":       "sample",
		"skip_sample":  "skip-sample",
		"debug":        "debug",
		"input_dir":    "input-dir",
		"session_file": "session-file",
	} {
		MustDo(v.BindPFlag(key, f.Lookup(flag)))
	}
	return cmd
}

// WriteSummary renders results as a table.
func WriteSummary(w io.Writer, results []Result) {
	if len(results) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Day", "Part", "Input", "Answer", "Took"})
	for _, r := range results {
		input := "real"
		if r.Sample {
			input = "sample"
			if !r.OK() {
				input = "sample " + failMark
			}
		}
		t.AppendRow(table.Row{r.Day, r.Part, input, r.Got, r.Took})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
