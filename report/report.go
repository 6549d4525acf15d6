package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/midos"
	"github.com/hupe1980/midos/codec"
	"github.com/hupe1980/midos/hypothesis"
)

// Format selects the output encoding.
type Format int

const (
	// FormatText writes one hypothesis per line.
	FormatText Format = iota
	// FormatJSON writes a single JSON document.
	FormatJSON
)

// String returns the flag value of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "text" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown report format %q", s)
	}
}

// Report is the JSON form of a discovery run.
type Report struct {
	Function    string  `json:"function"`
	TargetLabel uint8   `json:"target_label"`
	K           int     `json:"k"`
	Instances   int     `json:"instances"`
	Attributes  int     `json:"attributes"`
	P0          float64 `json:"p0"`
	Stats       Stats   `json:"stats"`
	Hypotheses  []Entry `json:"hypotheses"`
}

// Stats mirrors midos.Stats with the duration in milliseconds.
type Stats struct {
	Expanded   int64   `json:"expanded"`
	Generated  int64   `json:"generated"`
	Pruned     int64   `json:"pruned"`
	Accepted   int64   `json:"accepted"`
	MaxQueue   int64   `json:"max_queue"`
	DurationMS float64 `json:"duration_ms"`
}

// Entry describes one retained hypothesis.
type Entry struct {
	Rank        int      `json:"rank"`
	Attributes  []int    `json:"attributes"`
	Quality     float64  `json:"quality"`
	Estimate    float64  `json:"estimate"`
	Coverage    int      `json:"coverage"`
	Labeled     int      `json:"labeled"`
	Z           *float64 `json:"z,omitempty"`
	Significant bool     `json:"significant"`
}

// New builds the report of res. k is the requested result count.
func New(res *midos.Result, k int) *Report {
	q := res.Engine()
	cfg := q.Config()

	r := &Report{
		Function:    cfg.Function.String(),
		TargetLabel: cfg.TargetLabel,
		K:           k,
		Instances:   q.NumInstances(),
		Attributes:  q.NumAttributes(),
		P0:          q.P0(),
		Stats: Stats{
			Expanded:   res.Stats.Expanded,
			Generated:  res.Stats.Generated,
			Pruned:     res.Stats.Pruned,
			Accepted:   res.Stats.Accepted,
			MaxQueue:   res.Stats.MaxQueue,
			DurationMS: float64(res.Stats.Duration.Microseconds()) / 1000,
		},
		Hypotheses: make([]Entry, 0, len(res.Hypotheses)),
	}

	for i, h := range res.Hypotheses {
		st := q.Stats(h)
		e := Entry{
			Rank:        i + 1,
			Attributes:  h.Attributes(),
			Quality:     h.Quality(),
			Estimate:    q.EstimateOf(st),
			Coverage:    st.Coverage,
			Labeled:     st.Labeled,
			Significant: q.IsSignificant(h),
		}
		if e.Attributes == nil {
			e.Attributes = []int{}
		}
		if z, err := q.SignificanceOf(st); err == nil {
			e.Z = &z
		}
		r.Hypotheses = append(r.Hypotheses, e)
	}
	return r
}

// WriteText writes hs one per line in rank order.
func WriteText(w io.Writer, hs []hypothesis.Hypothesis) error {
	bw := bufio.NewWriter(w)
	for _, h := range hs {
		if _, err := bw.WriteString(h.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteJSON writes r as indented JSON using the default codec.
func WriteJSON(w io.Writer, r *Report) error {
	return EncodeJSON(w, r, codec.Default)
}

// EncodeJSON writes r with c, or the default codec if c is nil. Codecs
// offering MarshalIndent produce indented output.
func EncodeJSON(w io.Writer, r *Report, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}
	var (
		b   []byte
		err error
	)
	if ic, ok := c.(interface {
		MarshalIndent(v any, prefix, indent string) ([]byte, error)
	}); ok {
		b, err = ic.MarshalIndent(r, "", "  ")
	} else {
		b, err = c.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("encode report with %s: %w", c.Name(), err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// Decode parses a JSON report written by WriteJSON.
func Decode(data []byte, c codec.Codec) (*Report, error) {
	if c == nil {
		c = codec.Default
	}
	var r Report
	if err := c.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode report with %s: %w", c.Name(), err)
	}
	return &r, nil
}

// Write renders res in format f. JSON output is encoded with c (nil selects
// the default codec). significantOnly restricts the output to hypotheses
// passing the z-test.
func Write(w io.Writer, f Format, c codec.Codec, res *midos.Result, k int, significantOnly bool) error {
	if significantOnly {
		filtered := *res
		filtered.Hypotheses = res.Significant()
		res = &filtered
	}

	switch f {
	case FormatText:
		return WriteText(w, res.Hypotheses)
	case FormatJSON:
		return EncodeJSON(w, New(res, k), c)
	default:
		return fmt.Errorf("unsupported report format %v", f)
	}
}
