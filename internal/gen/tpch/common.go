package tpch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stormdb-contrib/tpcgen/internal/rng"
)

// vStringAlphabet is dbgen's V-string alphabet: digits, letters, and a
// handful of punctuation marks, used for addresses and other "random
// printable string" columns that are not grammar text.
const vStringAlphabet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	",.-_ "

// randomVString draws a length uniformly in [minLen, maxLen] and fills it
// with characters drawn one seed at a time from the V-string alphabet.
func randomVString(s *rng.Stream, minLen, maxLen int) string {
	n := s.NextUniform(int64(minLen), int64(maxLen))
	var b strings.Builder
	for i := int64(0); i < n; i++ {
		idx := s.NextUniform(0, int64(len(vStringAlphabet)-1))
		b.WriteByte(vStringAlphabet[idx])
	}
	return b.String()
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// phoneNumber builds the TPC-H phone number format "cc-lll-lll-llll"
// where cc is derived from the nation key, matching dbgen's country-code
// convention.
func phoneNumber(nationKey int64, s *rng.Stream) string {
	countryCode := 10 + nationKey
	p1 := s.NextUniform(100, 999)
	p2 := s.NextUniform(100, 999)
	p3 := s.NextUniform(1000, 9999)
	return fmt.Sprintf("%02d-%03d-%03d-%04d", countryCode, p1, p2, p3)
}
