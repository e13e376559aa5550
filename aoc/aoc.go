// Package aoc runs Advent of Code solvers, first against the samples kept in
// their doc comments and then against the real puzzle input. (forked from
// bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
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

	"golang.org/x/exp/maps"
)

// Sample is an example taken from a solver method's doc comment.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// parseSample reads a comment of the form
//
//	want=<answer>
//
//	<input>
//
// where the input is optional.
func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, false
	}
	return Sample{Want: strings.TrimSpace(m[1]), Input: m[2]}, true
}

// extractSamples returns the samples in the doc comments of the functions in
// src, keyed by function name. A sample without input reuses the input of
// the sample before it.
func extractSamples(src []byte) map[string]Sample {
	f, err := parser.ParseFile(token.NewFileSet(), "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			if s, ok := parseSample(c.Text); ok {
				s.Input = Or(s.Input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.Input
				break
			}
		}
	}
	return samples
}

// Puzzle is the state handed to a solver while one part runs.
type Puzzle struct {
	SampleMode bool

	year, day int
	method    string // name of the running D{day}p{part} method
	samples   map[string]Sample
	input     []byte // if non-nil, replaces both the sample and the input file
}

// NewPuzzle returns a puzzle outside sample mode whose input is input.
func NewPuzzle(input []byte) *Puzzle {
	return &Puzzle{input: input}
}

// SamplePuzzle returns a puzzle in sample mode for the solver method named
// method, with samples read from the solver's source src.
func SamplePuzzle(src []byte, method string) *Puzzle {
	return &Puzzle{
		SampleMode: true,
		method:     method,
		samples:    extractSamples(src),
	}
}

// Input returns the puzzle input, or the sample input in sample mode.
func (p *Puzzle) Input() []byte {
	switch {
	case p.input != nil:
		return p.input
	case p.SampleMode:
		return []byte(p.Sample().Input)
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day))
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	for s.Scan() {
		onLine(s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

// Debugf is like Debug but only prints in sample mode.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

// Sample returns the sample of the running part.
func (p *Puzzle) Sample() Sample {
	s, ok := p.samples[p.method]
	if !ok {
		log.Fatalf("no sample found for %v", p.method)
	}
	return s
}

type part struct {
	method string
	part   string
	fn     func() any
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the D{day}p{part} methods of x by day, each day's
// parts in order. x must be a pointer to a struct.
func extractMethods(x any) map[int][]part {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	days := map[int][]part{}
	for i := 0; i < v.NumMethod(); i++ {
		name := v.Type().Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", name, v.Method(i).Type())
		}
		d := Int(m[1])
		days[d] = append(days[d], part{method: name, part: m[2], fn: fn})
	}
	for _, parts := range days {
		slices.SortFunc(parts, func(a, b part) int {
			return strings.Compare(a.part, b.part)
		})
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(slvr any, p *Puzzle, parts []part) {
	fmt.Println("Running day", p.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, pt := range parts {
		if flagPart != "" && pt.part != flagPart {
			continue
		}
		p.method = pt.method
		if !flagSkipSample && !runPart(p, pt, true) {
			return
		}
		if !flagOnlySample {
			runPart(p, pt, false)
		}
	}
}

// runPart runs pt once and prints its answer. In sample mode it reports
// whether the answer matched the sample.
func runPart(p *Puzzle, pt part, sample bool) bool {
	p.SampleMode = sample
	if !sample {
		// Fetch before the clock starts.
		p.Input()
	}
	t0 := time.Now()
	got := fmt.Sprint(pt.fn())
	took := time.Since(t0).Round(time.Microsecond)
	if !sample {
		fmt.Printf("part %s: %v (took %v)\n", pt.part, got, took)
		return true
	}
	if want := p.Sample().Want; got != want {
		fmt.Printf("part %s: %v ❌; want %v\n", pt.part, got, want)
		return false
	}
	fmt.Printf("part %s sample: %v ✅ (%v)\n", pt.part, got, took)
	return true
}

// Run solves every day registered on slvr for the given year. src is the
// solver's own source, from which the samples are read.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	nums := maps.Keys(days)
	if flagCurDay != -1 {
		if _, ok := days[flagCurDay]; !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		nums = []int{flagCurDay}
	}
	slices.Sort(nums)
	for _, d := range nums {
		runDay(slvr, &Puzzle{year: year, day: d, samples: samples}, days[d])
		fmt.Println()
	}
}

var session = sync.OnceValue(func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

// fileOrFetch returns the contents of filename, downloading them from url
// and caching them there first if needed.
func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
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

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
