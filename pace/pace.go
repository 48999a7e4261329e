// Package pace reads and writes the PACE 2016/2017 challenge text formats:
// ".gr" for input graphs and ".td" for tree decompositions.
//
// Both are line-oriented ASCII formats with no nested structure, so this
// package is built on bufio/strconv rather than a third-party parser (see
// DESIGN.md for the justification).
package pace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/treedecomp"
)

// ErrMalformed is returned for any line that does not match the expected
// PACE grammar.
var ErrMalformed = errors.New("pace: malformed input")

// ReadGraph parses a PACE ".gr" file:
//
//	c <comment>
//	p tw <n> <m>
//	<u> <v>          (m lines, 1-indexed vertex ids)
//
// Vertices are labelled by their decimal PACE id ("1", "2", ...).
func ReadGraph(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	scanner := bufio.NewScanner(r)

	declaredN, declaredM, seenHeader := 0, 0, false
	edgesRead := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		if !seenHeader {
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "tw" {
				return nil, fmt.Errorf("%w: expected \"p tw <n> <m>\" header, got %q", ErrMalformed, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: bad vertex count %q", ErrMalformed, fields[2])
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("%w: bad edge count %q", ErrMalformed, fields[3])
			}
			declaredN, declaredM = n, m
			seenHeader = true
			for i := 1; i <= n; i++ {
				if err := g.AddVertex(strconv.Itoa(i)); err != nil {
					return nil, fmt.Errorf("pace: %w", err)
				}
			}
			continue
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: expected \"<u> <v>\", got %q", ErrMalformed, line)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("%w: bad edge endpoints in %q", ErrMalformed, line)
		}
		if u == v {
			continue // PACE instances occasionally list self-loops; the engine ignores them
		}
		uID, vID := strconv.Itoa(u), strconv.Itoa(v)
		if g.HasEdge(uID, vID) {
			continue // multi-edges collapse to a simple graph
		}
		if _, err := g.AddEdge(uID, vID, 0); err != nil {
			return nil, fmt.Errorf("pace: %w", err)
		}
		edgesRead++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pace: %w", err)
	}
	if !seenHeader {
		return nil, fmt.Errorf("%w: missing \"p tw\" header", ErrMalformed)
	}
	_ = declaredM // declared counts are advisory; the engine trusts the edge lines actually present
	_ = declaredN

	return g, nil
}

// WriteDecomposition emits d in the PACE ".td" format:
//
//	s td <bags> <width+1> <n>
//	b <bag-id> <vertex>...
//	<parent-bag-id> <child-bag-id>   (one per tree edge)
func WriteDecomposition(w io.Writer, d *treedecomp.Decomposition, n int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "s td %d %d %d\n", len(d.Bags), d.Width+1, n); err != nil {
		return err
	}
	for _, bag := range d.Bags {
		if _, err := fmt.Fprintf(bw, "b %d", bag.ID+1); err != nil {
			return err
		}
		for _, v := range bag.Vertices {
			if _, err := fmt.Fprintf(bw, " %s", v); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	var writeEdges func(b *treedecomp.Bag) error
	writeEdges = func(b *treedecomp.Bag) error {
		for _, c := range b.Children {
			if _, err := fmt.Fprintf(bw, "%d %d\n", b.ID+1, c.ID+1); err != nil {
				return err
			}
			if err := writeEdges(c); err != nil {
				return err
			}
		}
		return nil
	}
	if d.Root != nil {
		if err := writeEdges(d.Root); err != nil {
			return err
		}
	}

	return bw.Flush()
}
