package fst

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// textEpsilon is the integer used to spell Epsilon in the external text
// format (spec: "Epsilon output is represented by the single integer
// 0xFFFF").
const textEpsilon = int64(Epsilon)

// Save writes the transducer in the stable external text format. For each
// state in order it writes one line per outgoing arc as
// "src\tdst\tin\tout", where in/out are comma-separated integer lists,
// followed by a bare "stateID" line marking that state final. Every state
// in this package is final, so every state gets such a line.
func (t *Transducer) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for id, st := range t.states {
		for _, arc := range st.arcs {
			if _, err := fmt.Fprintf(bw, "%d\t%d\t%s\t%s\n",
				arc.Src, arc.Dst, joinWord(arc.In), joinWord(arc.Out)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%d\n", id); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func joinWord(w Word) string {
	parts := make([]string, len(w))
	for i, sym := range w {
		if sym == Epsilon {
			parts[i] = strconv.FormatInt(textEpsilon, 10)
		} else {
			parts[i] = strconv.FormatInt(int64(sym), 10)
		}
	}
	return strings.Join(parts, ",")
}

// Load reconstructs a Transducer from the text format produced by Save. It
// also records the input alphabet as the union of all input-label symbols
// seen, matching the original loader's behaviour.
func Load(r io.Reader) (*Transducer, error) {
	t := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			id, err := strconv.ParseUint(fields[0], 10, 32)
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Text: line, Err: err}
			}
			t.growTo(StateID(id))
		case 4:
			src, err := strconv.ParseUint(fields[0], 10, 32)
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Text: line, Err: err}
			}
			dst, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Text: line, Err: err}
			}
			in, err := parseWord(fields[2])
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Text: line, Err: err}
			}
			out, err := parseWord(fields[3])
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Text: line, Err: err}
			}
			if err := t.AddArc(StateID(src), StateID(dst), in, out); err != nil {
				return nil, &MalformedError{Line: lineNo, Text: line, Err: err}
			}
		default:
			return nil, &MalformedError{
				Line: lineNo, Text: line,
				Err: fmt.Errorf("expected 1 or 4 fields, got %d", len(fields)),
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseWord(s string) (Word, error) {
	parts := strings.Split(s, ",")
	out := make(Word, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		if v == textEpsilon {
			out[i] = Epsilon
		} else {
			out[i] = Symbol(v)
		}
	}
	return out, nil
}

// MustLoad is a convenience wrapper around Load that panics on error,
// mirroring the teacher's MustCompile for cases where the input is known
// good (e.g. loading a fixture in a test or example).
func MustLoad(r io.Reader) *Transducer {
	t, err := Load(r)
	if err != nil {
		panic(err)
	}
	return t
}
