package points

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
)

// Point is one measurement extracted from a result log. Index is the
// zero-based line number of the source line, not its rank among parsed lines.
type Point struct {
	Index int
	Value *big.Int
}

// String renders the point the way plotting scripts consume it: "(i,v)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.Index) + "," + p.Value.String() + ")"
}

// ParseLine extracts the trailing integer from a log line. All whitespace is
// removed first, then the text after the last ':' must be a base-10 integer
// with an optional sign. Anything else reports false.
func ParseLine(line string) (*big.Int, bool) {
	compact := strings.Join(strings.Fields(line), "")
	if i := strings.LastIndexByte(compact, ':'); i >= 0 {
		compact = compact[i+1:]
	}
	return parseInt(compact)
}

func parseInt(s string) (*big.Int, bool) {
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 10)
}

// Extract scans r line by line and calls emit for every line that parses.
// It returns the number of lines read.
func Extract(r io.Reader, emit func(Point) error) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(ScanLines)

	idx := 0
	for sc.Scan() {
		if v, ok := ParseLine(sc.Text()); ok {
			if err := emit(Point{Index: idx, Value: v}); err != nil {
				return idx, err
			}
		}
		idx++
	}
	if err := sc.Err(); err != nil {
		return idx, fmt.Errorf("scanning lines: %w", err)
	}
	return idx, nil
}

const maxLineSize = 1 << 30

// ScanLines is a bufio.SplitFunc that treats "\n", "\r\n" and a lone "\r" as
// line terminators. A trailing line without a terminator is still returned.
func ScanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// need one more byte to tell "\r" from "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Writer writes points one per line.
type Writer struct {
	bw    *bufio.Writer
	count int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

func (w *Writer) Write(p Point) error {
	if _, err := w.bw.WriteString(p.String()); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of points written so far.
func (w *Writer) Count() int {
	return w.count
}

func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// ParsePoint parses a single rendered point such as "(3,-17)".
func ParsePoint(s string) (Point, error) {
	if len(s) < 5 || s[0] != '(' || s[len(s)-1] != ')' {
		return Point{}, fmt.Errorf("malformed point %q", s)
	}
	idxStr, valStr, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok {
		return Point{}, fmt.Errorf("malformed point %q", s)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 {
		return Point{}, fmt.Errorf("malformed index in %q", s)
	}
	v, ok := parseInt(valStr)
	if !ok {
		return Point{}, fmt.Errorf("malformed value in %q", s)
	}
	return Point{Index: idx, Value: v}, nil
}

// ReadFile loads a points file written by Writer.
func ReadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening points file: %w", err)
	}
	defer f.Close()

	var pts []Point
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		p, err := ParsePoint(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading points file: %w", err)
	}
	return pts, nil
}
