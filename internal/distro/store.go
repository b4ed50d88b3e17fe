// Package distro implements the Distribution Store: it
// parses the dists.dss text resource (embedded, or read from a
// distribution directory) into read-only weighted lookup tables shared
// by every row generator. Every benchmark, TPC-DS included, reads this
// one file; no other resource file is loaded.
package distro

import (
	"bufio"
	"embed"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/stormdb-contrib/tpcgen/internal/errs"
	"github.com/stormdb-contrib/tpcgen/internal/rng"
)

//go:embed resources/*.dss
var embedded embed.FS

// Entry is one row of a distribution: a text value, its integer weight,
// the running cumulative weight used for binary search, and up to two
// auxiliary side columns (numeric strings or derived floats) some
// distributions carry (e.g. county -> state abbreviation + gmt offset).
type Entry struct {
	Text      string
	Weight    int64
	Cumulative int64
	AuxString string
	AuxFloat  float64
}

// Distribution is a named, immutable weighted-choice table.
type Distribution struct {
	Name       string
	Entries    []Entry
	MaxWeight  int64
}

// Len returns the number of entries.
func (d *Distribution) Len() int { return len(d.Entries) }

// Pick draws w in [1, MaxWeight] from s and binary-searches the
// cumulative-weight column for the entry it falls into.
func (d *Distribution) Pick(s *rng.Stream) Entry {
	if len(d.Entries) == 0 {
		return Entry{}
	}
	if d.MaxWeight <= 0 {
		return d.Entries[s.NextUniform(0, int64(len(d.Entries)-1))]
	}
	w := s.NextUniform(1, d.MaxWeight)
	idx := sort.Search(len(d.Entries), func(i int) bool {
		return d.Entries[i].Cumulative >= w
	})
	if idx >= len(d.Entries) {
		idx = len(d.Entries) - 1
	}
	return d.Entries[idx]
}

// PickUniform draws a uniformly-selected entry, ignoring weights; used
// by small lookup tables (e.g. the nation/region lists) where the
// reference kit always draws a flat index.
func (d *Distribution) PickUniform(s *rng.Stream) Entry {
	return d.Entries[s.NextUniform(0, int64(len(d.Entries)-1))]
}

// Store is the process-wide, read-only value holding every distribution
// for one benchmark. It is safe to borrow concurrently.
type Store struct {
	mu   sync.RWMutex
	dist map[string]*Distribution
}

var (
	stores   = map[string]*Store{}
	storesMu sync.Mutex
)

// Load parses distributions for benchmark (e.g. "tpch", "tpcds", "ssb").
// If dir is empty, the embedded default resource is used; otherwise dir
// is searched for a "dists.dss" file. Loaded once per benchmark per
// process; later calls return the cached Store.
func Load(benchmark, dir string) (*Store, error) {
	key := benchmark + "|" + dir
	storesMu.Lock()
	defer storesMu.Unlock()
	if s, ok := stores[key]; ok {
		return s, nil
	}

	var r io.ReadCloser
	var err error
	if dir == "" {
		r, err = embedded.Open("resources/dists.dss")
	} else {
		r, err = openExternal(dir)
	}
	if err != nil {
		return nil, errs.ResourceLoadf(err, "opening distribution resource for %s", benchmark)
	}
	defer r.Close()

	s, err := parse(r)
	if err != nil {
		return nil, errs.ResourceLoadf(err, "parsing distribution resource for %s", benchmark)
	}
	stores[key] = s
	return s, nil
}

// Find returns a read-only borrow of the named distribution.
func (s *Store) Find(name string) (*Distribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.dist[name]
	if !ok {
		return nil, errs.ResourceLoadf(nil, "distribution %q not found", name)
	}
	return d, nil
}

// parse tolerates "--" comments, ':'/',' separators with '\' escapes,
// and non-UTF-8 (Latin-1) input re-encoded to UTF-8.
// Each distribution is a block:
//
//	BEGIN <name>
//	text:weight[:aux1[:aux2]]
//	...
//	END <name>
func parse(r io.Reader) (*Store, error) {
	store := &Store{dist: make(map[string]*Distribution)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var current *Distribution
	for scanner.Scan() {
		line := toUTF8(scanner.Text())
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "BEGIN "):
			current = &Distribution{Name: strings.TrimSpace(strings.TrimPrefix(line, "BEGIN "))}
		case strings.HasPrefix(line, "END"):
			if current != nil {
				finalize(current)
				store.dist[current.Name] = current
				current = nil
			}
		default:
			if current == nil {
				continue
			}
			if e, ok := parseEntry(line); ok {
				current.Entries = append(current.Entries, e)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return store, nil
}

func finalize(d *Distribution) {
	var cum int64
	for i := range d.Entries {
		cum += d.Entries[i].Weight
		d.Entries[i].Cumulative = cum
	}
	d.MaxWeight = cum
}

// parseEntry splits a line on unescaped ':' separators: text, weight,
// and up to two auxiliary columns.
func parseEntry(line string) (Entry, bool) {
	fields := splitEscaped(line, ':')
	if len(fields) < 2 {
		return Entry{}, false
	}
	weight, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		weight = 1
	}
	e := Entry{Text: strings.TrimSpace(fields[0]), Weight: weight}
	if len(fields) >= 3 {
		e.AuxString = strings.TrimSpace(fields[2])
	}
	if len(fields) >= 4 {
		if f, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64); err == nil {
			e.AuxFloat = f
		}
	}
	return e, true
}

// splitEscaped splits on sep, honoring a preceding backslash as an
// escape that keeps the separator literal, so escaped commas/colons
// inside a field survive the split.
func splitEscaped(s string, sep byte) []string {
	var out []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			cur.WriteByte(s[i+1])
			i++
			continue
		}
		if c == sep {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	out = append(out, cur.String())
	return out
}

// toUTF8 re-encodes a line if it isn't already valid UTF-8, treating it
// as Latin-1 (each byte is one Unicode code point below U+0100).
func toUTF8(s string) string {
	if isValidUTF8(s) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteRune(rune(s[i]))
	}
	return b.String()
}

func isValidUTF8(s string) bool {
	for _, r := range s {
		if r == '�' {
			return false
		}
	}
	return true
}
