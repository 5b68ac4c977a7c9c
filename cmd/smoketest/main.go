// Command smoketest runs the tokenizer and number-word conversion over every
// .txt file in a directory and reports invariant failures.
//
//	go run ./cmd/smoketest <directory>
//
// Checked for every chunk: tokens reconstruct the input, every match covers
// its own byte span, and converting already-converted text changes nothing.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/w2n-go/word2num/numwords"
	"github.com/w2n-go/word2num/tokenizer"
)

const (
	chunkSize      = 512 << 10 // stays under the numwords input limit
	maxWorkers     = 4
	expectedArgs   = 2
	bytesToMBShift = 20
)

// errorKinds names the sentinel errors counted separately.
var errorKinds = []struct {
	name string
	err  error
}{
	{"invalid input", numwords.ErrInvalidInput},
	{"phrase too long", numwords.ErrPhraseTooLong},
	{"empty", numwords.ErrEmptyInput},
	{"no number words", numwords.ErrNoNumberWords},
	{"duplicate decimal", numwords.ErrDuplicateDecimal},
	{"duplicate sign", numwords.ErrDuplicateSign},
	{"misplaced sign", numwords.ErrMisplacedSign},
	{"unrecognized word", numwords.ErrUnrecognizedWord},
	{"mixed standard", numwords.ErrMixedStandard},
}

type Stats struct {
	mu            sync.Mutex
	filesScanned  int
	totalBytes    int64
	chunks        int
	reconFail     int
	matches       int
	spanFail      int
	unstable      int
	runErrors     map[string]int
	sampleErrors  map[string]string
	tokenTypeSeen map[tokenizer.TokenType]int
}

type fileState struct {
	path         string
	totalBytes   int64
	chunks       int
	reconFail    int
	matches      int
	spanFail     int
	unstable     int
	runErrors    map[string]int
	sampleErrors map[string]string
	tokenCounts  map[tokenizer.TokenType]int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{
		runErrors:     make(map[string]int),
		sampleErrors:  make(map[string]string),
		tokenTypeSeen: make(map[tokenizer.TokenType]int),
	}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			processFile(path, stats)
		})
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(path string, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	fileStart := time.Now()
	state := &fileState{
		path:         path,
		runErrors:    make(map[string]int),
		sampleErrors: make(map[string]string),
		tokenCounts:  make(map[tokenizer.TokenType]int),
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil && len(chunk) < chunkSize {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalBytes>>bytesToMBShift)

	mergeFileState(state, stats)
}

func (fs *fileState) processChunk(chunk []byte) {
	text := string(chunk)
	fs.totalBytes += int64(len(chunk))
	fs.chunks++

	var sb strings.Builder
	sb.Grow(len(text))
	for _, token := range tokenizer.WordTokens(text) {
		fs.tokenCounts[token.Type]++
		sb.WriteString(token.Text)
	}
	if sb.String() != text {
		fs.reconFail++
		pos, got, want := firstDivergence(text, sb.String())
		fmt.Fprintf(os.Stderr, "RECON_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
			fs.path, pos, got, want)
	}

	matches, err := numwords.Extract(text)
	if err != nil {
		fs.recordError(err)
		return
	}
	fs.matches += len(matches)
	for _, m := range matches {
		if m.Start < 0 || m.End > len(text) || text[m.Start:m.End] != m.Text {
			fs.spanFail++
			fmt.Fprintf(os.Stderr, "SPAN_FAIL: %s: %v\n", fs.path, m)
		}
	}

	converted, err := numwords.Convert(text)
	if err != nil {
		fs.recordError(err)
		return
	}
	again, err := numwords.Convert(converted)
	if err != nil || again != converted {
		fs.unstable++
		pos, _, _ := firstDivergence(converted, again)
		fmt.Fprintf(os.Stderr, "UNSTABLE: %s: reconverting changed byte %d (err %v)\n", fs.path, pos, err)
	}
}

func (fs *fileState) recordError(err error) {
	kind := "other"
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			kind = k.name
			break
		}
	}
	fs.runErrors[kind]++
	if _, ok := fs.sampleErrors[kind]; !ok {
		fs.sampleErrors[kind] = err.Error()
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.chunks += fs.chunks
	stats.reconFail += fs.reconFail
	stats.matches += fs.matches
	stats.spanFail += fs.spanFail
	stats.unstable += fs.unstable

	for kind, count := range fs.runErrors {
		stats.runErrors[kind] += count
	}
	for kind, sample := range fs.sampleErrors {
		if _, ok := stats.sampleErrors[kind]; !ok {
			stats.sampleErrors[kind] = sample
		}
	}
	for tokenType, count := range fs.tokenCounts {
		stats.tokenTypeSeen[tokenType] += count
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Chunks:                  %d\n", stats.chunks)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Number phrases:          %d\n", stats.matches)
	fmt.Printf("Span FAIL:               %d\n", stats.spanFail)
	fmt.Printf("Unstable conversions:    %d\n", stats.unstable)
	fmt.Println()

	if len(stats.runErrors) > 0 {
		kinds := make([]string, 0, len(stats.runErrors))
		for kind := range stats.runErrors {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Chunk error", "Count", "First seen"})
		for _, kind := range kinds {
			t.AppendRow(table.Row{kind, stats.runErrors[kind], truncate(stats.sampleErrors[kind], 70)})
		}
		t.Render()
		fmt.Println()
	}

	totalTokens := 0
	for _, count := range stats.tokenTypeSeen {
		totalTokens += count
	}

	fmt.Println("Token type distribution:")
	for _, tokenType := range []tokenizer.TokenType{
		tokenizer.Word, tokenizer.Number, tokenizer.Punctuation, tokenizer.Space,
		tokenizer.Symbol, tokenizer.URL, tokenizer.Email,
	} {
		count := stats.tokenTypeSeen[tokenType]
		percentage := 0.0
		if totalTokens > 0 {
			percentage = float64(count) / float64(totalTokens) * 100
		}
		fmt.Printf("  %-15s %d  (%.1f%%)\n", tokenType.String()+":", count, percentage)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
