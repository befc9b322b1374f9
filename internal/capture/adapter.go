// Package capture adapts the IR capture loop's diagnostic transcript
// into the parenthesized group lines the decoder consumes.
//
// The capture firmware prints one line per event, in a handful of fixed
// shapes:
//
//	Heard 68 Pulses: [9000, 4500, 560, ...]
//	Decoded: [161, 196, 153, 102]
//	NEC repeat!
//	Failed to decode:  ('12 pulses (wanted 67 or 68)',)
//	----------------------------
//
// Only decoded-code lines carry data the decoder can use; everything
// else is diagnostics.
package capture

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/ir.report/internal/monitoring"
)

// Event type tokens for capture transcript lines.
const (
	EventDecoded   = "decoded"
	EventPulses    = "pulses"
	EventRepeat    = "nec_repeat"
	EventFailure   = "decode_failed"
	EventSeparator = "separator"
	EventUnknown   = "unknown"
)

// Classify inspects one transcript line and returns a simple event type
// token. Matching is intentionally conservative: exact prefixes as the
// firmware prints them.
func Classify(line string) string {
	switch {
	case strings.HasPrefix(line, "Decoded:"):
		return EventDecoded
	case strings.HasPrefix(line, "Heard "):
		return EventPulses
	case strings.HasPrefix(line, "NEC repeat!"):
		return EventRepeat
	case strings.HasPrefix(line, "Failed to decode:"):
		return EventFailure
	case strings.HasPrefix(line, "----"):
		return EventSeparator
	default:
		return EventUnknown
	}
}

// Group rewrites a decoded-event line into the group format the decoder
// reads: "Decoded: [161, 196, 153, 102]" becomes "(161, 196, 153, 102)".
// Every entry must parse as an integer; a decoded line with a mangled
// byte list means the transcript is corrupt.
func Group(line string) (string, error) {
	open := strings.Index(line, "[")
	end := strings.LastIndex(line, "]")
	if open < 0 || end < open {
		return "", fmt.Errorf("decoded line %q has no byte list", line)
	}

	pieces := strings.Split(line[open+1:end], ",")
	vals := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if _, err := strconv.Atoi(piece); err != nil {
			return "", fmt.Errorf("bad byte value %q: %w", piece, err)
		}
		vals = append(vals, piece)
	}
	return "(" + strings.Join(vals, ", ") + ")", nil
}

// Adapt copies decoded-code events from r to w as group lines, one per
// event, in transcript order. All other events are dropped from stdout
// and reported through monitoring.Logf. The first corrupt decoded line
// aborts the stream; end of input returns nil.
func Adapt(r io.Reader, w io.Writer) error {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := scan.Text()
		event := Classify(line)
		if event != EventDecoded {
			monitoring.Logf("skipping %s line: %s", event, line)
			continue
		}
		group, err := Group(line)
		if err != nil {
			return fmt.Errorf("line %q: %w", line, err)
		}
		if _, err := fmt.Fprintln(w, group); err != nil {
			return err
		}
	}
	return scan.Err()
}
