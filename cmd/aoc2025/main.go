package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/davidkna/aoc-2025"
	"github.com/davidkna/aoc-2025/cluster"
)

func main() {
	if err := aoc.NewCommand(2025, source, &solver{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) points() []cluster.Point {
	return aoc.Parsed(s.Puzzle, func(in []byte) []cluster.Point {
		return aoc.MustGet(cluster.ParseBytes(in))
	})
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	steps := 1000
	if s.SampleMode {
		steps = 10
	}
	return aoc.MustGet(cluster.BoundedMerge(s.points(), steps, cluster.WithLogf(s.Debugf)))
}

// want=25272
func (s solver) D8p2() any {
	return aoc.MustGet(cluster.ConvergenceMerge(s.points(), cluster.WithLogf(s.Debugf)))
}
