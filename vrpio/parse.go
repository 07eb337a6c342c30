package vrpio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cvrp-lns/cvrperr"
	"github.com/katalvlaran/cvrp-lns/distmat"
)

// Parse reads a .vrp instance from r: a header line "n m Q" followed by
// n+1 "demand x y" lines (index 0 is the depot; demand_0 must be 0). Parse
// errors wrap cvrperr.ErrParse with the offending line number, matching it
// via errors.Is while still carrying human-readable context — the one
// sanctioned exception to this codebase's no-wrap policy for sentinels.
//
// Complexity: O(n) to read plus O(n²) inside distmat.New to build the
// distance matrix.
func Parse(r io.Reader) (*distmat.Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	nextLine := func() (string, bool) {
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			return text, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, fmt.Errorf("vrpio: empty input: %w", cvrperr.ErrParse)
	}

	n, m, q, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("vrpio: line %d: %w", line, err)
	}

	coord := make([]distmat.Point, n+1)
	demand := make([]int, n+1)

	for i := 0; i <= n; i++ {
		text, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("vrpio: expected %d point lines, found %d: %w", n+1, i, cvrperr.ErrParse)
		}
		d, x, y, err := parsePointLine(text)
		if err != nil {
			return nil, fmt.Errorf("vrpio: line %d: %w", line, err)
		}
		demand[i] = d
		coord[i] = distmat.Point{X: x, Y: y}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vrpio: reading input: %w", err)
	}

	return distmat.New(n, m, q, coord, demand)
}

func parseHeader(text string) (n, m, q int, err error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("header must have exactly 3 fields, got %d: %w", len(fields), cvrperr.ErrParse)
	}
	n, err1 := strconv.Atoi(fields[0])
	m, err2 := strconv.Atoi(fields[1])
	q, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("header fields must be integers: %w", cvrperr.ErrParse)
	}
	if n < 0 || m <= 0 || q <= 0 {
		return 0, 0, 0, fmt.Errorf("n must be >= 0, m and Q must be > 0: %w", cvrperr.ErrParse)
	}
	return n, m, q, nil
}

func parsePointLine(text string) (demand int, x, y float64, err error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("point line must have exactly 3 fields, got %d: %w", len(fields), cvrperr.ErrParse)
	}
	d, err1 := strconv.Atoi(fields[0])
	px, err2 := strconv.ParseFloat(fields[1], 64)
	py, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("point line fields malformed: %w", cvrperr.ErrParse)
	}
	if d < 0 {
		return 0, 0, 0, fmt.Errorf("demand must be non-negative: %w", cvrperr.ErrParse)
	}
	return d, px, py, nil
}
