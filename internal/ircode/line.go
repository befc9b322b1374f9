package ircode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoMatch reports a line that carries no parenthesized byte group.
// Such lines are not stream errors; the decoder skips them silently.
var ErrNoMatch = errors.New("line has no parenthesized group")

// groupPattern matches "(<group>)<suffix>" anchored at the start of the
// line. The group capture is greedy, so the suffix begins after the
// last closing parenthesis on the line.
var groupPattern = regexp.MustCompile(`^\((.*)\)(.*)`)

// DecodeLine extracts the parenthesized byte group from line, reverses
// the bit order of each value, and packs the first four into a
// little-endian word. The returned suffix is everything after the
// closing parenthesis, verbatim.
//
// Lines without a group return ErrNoMatch. A matched group containing a
// non-integer entry, or fewer than four values, is a real error: the
// stream is malformed and the caller is expected to stop.
func DecodeLine(line string) (word int, suffix string, err error) {
	m := groupPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", ErrNoMatch
	}

	pieces := strings.Split(m[1], ",")
	vals := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		v, err := strconv.Atoi(strings.TrimSpace(piece))
		if err != nil {
			return 0, "", fmt.Errorf("bad byte value %q: %w", piece, err)
		}
		vals = append(vals, ReverseByte(v))
	}
	if len(vals) < 4 {
		return 0, "", fmt.Errorf("group %q has %d values, need 4", m[1], len(vals))
	}

	// Values beyond the fourth are ignored; captures sometimes carry
	// trailing noise bytes.
	return PackWord(vals[0], vals[1], vals[2], vals[3]), m[2], nil
}

// Decode copies matching lines from r to w, emitting one
// "<hex-word> <suffix>" output line per decoded input line, in input
// order. Non-matching lines produce no output. The first malformed
// matched group aborts the stream; end of input returns nil.
func Decode(r io.Reader, w io.Writer) error {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := scan.Text()
		word, suffix, err := DecodeLine(line)
		if errors.Is(err, ErrNoMatch) {
			continue
		}
		if err != nil {
			return fmt.Errorf("line %q: %w", line, err)
		}
		if _, err := fmt.Fprintf(w, "%x %s\n", word, suffix); err != nil {
			return err
		}
	}
	return scan.Err()
}
