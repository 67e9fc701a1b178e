// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without an input
// reuses the input of the previous one.
func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded (as a pointer) in the solver struct passed to Run.
// It gives the D{day}p{part} methods access to the current input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     *Config
	solver  partSolver
	samples map[string]sample

	mu   sync.Mutex
	memo map[deephash.Sum]any
}

func (p *Puzzle) inputPath() string {
	return filepath.Join(p.cfg.InputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return p.fileOrFetch(p.inputPath(), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf prints when running a sample with debugging enabled.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.cfg.Debug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

// Parsed returns parse(p.Input()), reusing the result of an earlier call
// on the same input. Parts of a day that share a parser parse the real
// input only once.
func Parsed[T any](p *Puzzle, parse func([]byte) T) T {
	in := p.Input()
	key := Hash(&in)
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.memo[key]; ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	v := parse(in)
	InitMap(&p.memo)
	p.memo[key] = v
	return v
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("method %s: got %T; want func() any", mn, v.Method(i).Interface())
		}
		d, part := Int(matches[1]), matches[2]
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	passMark = color.New(color.FgGreen).Sprint("✅")
	failMark = color.New(color.FgRed).Sprint("❌")
)

// Result is the outcome of running one part against one input.
type Result struct {
	Day    int
	Part   string
	Sample bool
	Got    string
	Want   string // only set for samples
	Took   time.Duration
}

// OK reports whether a sample result matched its expected value.
// Results for real inputs are always OK.
func (r Result) OK() bool {
	return !r.Sample || r.Got == r.Want
}

func runDay(w io.Writer, slvr any, year int, day day, samples map[string]sample, cfg *Config) []Result {
	p := &Puzzle{
		year:    year,
		day:     day,
		cfg:     cfg,
		samples: samples,
	}
	fmt.Fprintln(w, "Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	var results []Result
	for _, ps := range day.parts {
		p.solver = ps
		if cfg.Part != "" && ps.Part != cfg.Part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && cfg.OnlySample {
				continue
			} else if sm && cfg.SkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			r := Result{
				Day:    day.day,
				Part:   ps.Part,
				Sample: sm,
				Got:    fmt.Sprint(got),
				Took:   time.Since(t0).Round(time.Microsecond),
			}
			if sm {
				r.Want = p.Sample().want
			}
			results = append(results, r)
			switch {
			case !r.OK():
				fmt.Fprintf(w, "part %s: %v %s; want %v\n", ps.Part, got, failMark, r.Want)
				return results
			case sm:
				fmt.Fprintf(w, "part %s sample: %v %s (%v) \n", ps.Part, got, passMark, r.Took)
			default:
				fmt.Fprintf(w, "part %s: %v (took %v) \n", ps.Part, got, r.Took)
			}
		}
	}
	return results
}

// Run runs the D{day}p{part} methods of slvr, a pointer to a struct
// embedding *Puzzle. src is the solver's own source, from which the
// samples are extracted.
func Run(w io.Writer, year int, src []byte, slvr any, cfg *Config) []Result {
	samples := extractSamples(src)
	days := extractMethods(slvr)

	if cfg.Day != -1 {
		day, ok := days[cfg.Day]
		if !ok {
			log.Fatalf("no day %d", cfg.Day)
		}
		return runDay(w, slvr, year, day, samples, cfg)
	}

	var results []Result
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		results = append(results, runDay(w, slvr, year, days[day], samples, cfg)...)
		fmt.Fprintln(w)
	}
	return results
}

// Pt3 is a point in 3D space.
type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt3Int = Pt3[int]

// SqDist returns the squared euclidean distance between a and b.
func (a Pt3[T]) SqDist(b Pt3[T]) T {
	dx := AbsDiff(a.X, b.X)
	dy := AbsDiff(a.Y, b.Y)
	dz := AbsDiff(a.Z, b.Z)
	return dx*dx + dy*dy + dz*dz
}

func (a Pt3[T]) String() string {
	return fmt.Sprintf("%v,%v,%v", a.X, a.Y, a.Z)
}

func (p *Puzzle) session() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(p.cfg.SessionFile))))
}

func (p *Puzzle) request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: p.session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

func (p *Puzzle) fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := p.fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	fmt.Printf("fetched %s (%s)\n", filename, humanize.Bytes(uint64(len(body))))
	return body
}

func (p *Puzzle) fetch(url string) []byte {
	res := doRequest(p.request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*T) deephash.Sum
)

// Hash returns the deephash of *v. Hashers are cached per type.
func Hash[T any](v *T) deephash.Sum {
	rt := reflect.TypeOf(v)
	hashersMu.Lock()
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[T]()
		InitMap(&hashers)
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*T) deephash.Sum)(v)
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// Parallel calls f for each element of in, each in its own goroutine,
// and returns the results in order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}
