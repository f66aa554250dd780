package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wikilex/wikilex/internal/model"
)

// File names for the four persisted fields. Each file holds one line per
// topic in the form "<topic>: <space-joined payload>".
const (
	MatchedWordsFile = "final_matched_words.txt"
	TotalWordsFile   = "total_words.txt"
	MatchCountsFile  = "final_match_counts.txt"
	WordCountsFile   = "total_word_counts.txt"
)

// lineSeparator splits the topic from its payload. Parsing assumes exactly
// one occurrence per line and space-delimited payloads with no embedded
// colons.
const lineSeparator = ": "

// Parse failures indicate corrupted on-disk state rather than a transient
// condition, so Load surfaces them instead of recovering.
var (
	// ErrMalformedLine is returned when a line lacks the topic separator.
	ErrMalformedLine = errors.New("malformed line: missing topic separator")

	// ErrIncompleteRecord is returned when a topic present in one file is
	// missing from another.
	ErrIncompleteRecord = errors.New("incomplete record: topic missing from a data file")
)

// Store reads and writes aggregate data files under a single directory.
type Store struct {
	// dir is the data directory holding the four files.
	dir string
}

// New creates a Store over the given data directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes all four data files, one line per topic in result order.
// The data directory is created if it does not exist.
func (s *Store) Save(results *model.Results) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	matched := func(a *model.Aggregate) string { return strings.Join(a.MatchedWords, " ") }
	total := func(a *model.Aggregate) string { return strings.Join(a.TotalWords, " ") }
	matchCount := func(a *model.Aggregate) string { return strconv.Itoa(a.MatchCount) }
	wordCount := func(a *model.Aggregate) string { return strconv.Itoa(a.TotalWordCount) }

	for _, f := range []struct {
		name    string
		payload func(*model.Aggregate) string
	}{
		{MatchedWordsFile, matched},
		{TotalWordsFile, total},
		{MatchCountsFile, matchCount},
		{WordCountsFile, wordCount},
	} {
		if err := s.writeFile(f.name, results, f.payload); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes one data file with the payload of every topic.
func (s *Store) writeFile(name string, results *model.Results, payload func(*model.Aggregate) string) error {
	path := filepath.Join(s.dir, name)
	file, err := os.Create(path) //nolint:gosec // Path is confined to the data directory
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(file)
	for _, topic := range results.Topics() {
		agg, _ := results.Get(topic)
		if _, err := fmt.Fprintf(w, "%s%s%s\n", topic, lineSeparator, payload(agg)); err != nil {
			_ = file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return file.Close()
}

// Load reconstructs the aggregate map from the four data files. Topic order
// follows the matched-words file. Any malformed line or topic missing from
// one of the files is a fatal parse error.
func (s *Store) Load() (*model.Results, error) {
	matchedWords, topics, err := s.readWordFile(MatchedWordsFile)
	if err != nil {
		return nil, err
	}
	totalWords, _, err := s.readWordFile(TotalWordsFile)
	if err != nil {
		return nil, err
	}
	matchCounts, err := s.readCountFile(MatchCountsFile)
	if err != nil {
		return nil, err
	}
	wordCounts, err := s.readCountFile(WordCountsFile)
	if err != nil {
		return nil, err
	}

	results := model.NewResults()
	for _, topic := range topics {
		total, ok := totalWords[topic]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrIncompleteRecord, topic, TotalWordsFile)
		}
		mc, ok := matchCounts[topic]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrIncompleteRecord, topic, MatchCountsFile)
		}
		wc, ok := wordCounts[topic]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrIncompleteRecord, topic, WordCountsFile)
		}
		results.Set(topic, &model.Aggregate{
			MatchedWords:   matchedWords[topic],
			MatchCount:     mc,
			TotalWords:     total,
			TotalWordCount: wc,
		})
	}
	return results, nil
}

// readWordFile parses a word-list file into topic order and a topic map.
func (s *Store) readWordFile(name string) (map[string][]string, []string, error) {
	path := filepath.Join(s.dir, name)
	file, err := os.Open(path) //nolint:gosec // Path is confined to the data directory
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	words := make(map[string][]string)
	var topics []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		topic, payload, found := strings.Cut(scanner.Text(), lineSeparator)
		if !found {
			return nil, nil, fmt.Errorf("%w: %s line %d", ErrMalformedLine, path, lineNo)
		}
		list := strings.Fields(payload)
		if list == nil {
			list = []string{}
		}
		words[topic] = list
		topics = append(topics, topic)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, topics, nil
}

// readCountFile parses a count file into a topic map.
func (s *Store) readCountFile(name string) (map[string]int, error) {
	path := filepath.Join(s.dir, name)
	file, err := os.Open(path) //nolint:gosec // Path is confined to the data directory
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	counts := make(map[string]int)
	scanner := bufio.NewScanner(file)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		topic, payload, found := strings.Cut(scanner.Text(), lineSeparator)
		if !found {
			return nil, fmt.Errorf("%w: %s line %d", ErrMalformedLine, path, lineNo)
		}
		count, err := strconv.Atoi(strings.TrimSpace(payload))
		if err != nil {
			return nil, fmt.Errorf("parse count in %s line %d: %w", path, lineNo, err)
		}
		counts[topic] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return counts, nil
}
