package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
)

// Line forms, tried in order. The arc form comes last because its source
// field is optional and it would otherwise shadow the final-state form.
var (
	reInitial = regexp.MustCompile(`^->\s*(\S+)$`)
	reFinal   = regexp.MustCompile(`^(\S+)\s*->\s*(?:\[([^\]]*)\])?$`)
	reState   = regexp.MustCompile(`^(\S+)$`)
	reDescr   = regexp.MustCompile(`^descr\s+(\S+?):\s*(.*)$`)
	reArc     = regexp.MustCompile(`^(\S+)?\s*->\s*(\S+)\s*\[(.*?):(.*?)\]$`)

	reContinuation = regexp.MustCompile(`^\s+\S`)
)

// ReadText parses the textual graph format from r into a new FST with the
// given display label. Malformed lines fail with errors.ErrCodeParse naming
// the offending line.
func ReadText(label string, r io.Reader) (*fst.FST, error) {
	f := fst.New(label)

	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read input")
	}

	ensure := func(state string) error {
		if f.HasState(state) {
			return nil
		}
		_, err := f.AddState(fst.State{Label: state})
		return err
	}

	prevSrc := ""
	for i := 0; i < len(lines); i++ {
		raw := lines[i]
		line := strings.TrimSpace(strings.SplitN(raw, "#", 2)[0])
		if line == "" {
			continue
		}

		switch {
		case reInitial.MatchString(line):
			state := reInitial.FindStringSubmatch(line)[1]
			if err := ensure(state); err != nil {
				return nil, err
			}
			if err := f.SetInitial(state); err != nil {
				return nil, err
			}

		case reFinal.MatchString(line):
			m := reFinal.FindStringSubmatch(line)
			state := m[1]
			if err := ensure(state); err != nil {
				return nil, err
			}
			if err := f.SetFinal(state, true); err != nil {
				return nil, err
			}
			if strings.Contains(line, "[") {
				if err := f.SetFinalizingString(state, strings.Fields(m[2])); err != nil {
					return nil, err
				}
			}

		case reState.MatchString(line):
			if err := ensure(reState.FindStringSubmatch(line)[1]); err != nil {
				return nil, err
			}

		case reDescr.MatchString(line):
			m := reDescr.FindStringSubmatch(line)
			state, descr := m[1], m[2]
			// Indented lines that follow continue the description.
			for i+1 < len(lines) && reContinuation.MatchString(lines[i+1]) {
				i++
				descr = strings.TrimRight(descr, " ") + " " + strings.TrimSpace(lines[i])
			}
			if err := ensure(state); err != nil {
				return nil, err
			}
			if err := f.SetDescription(state, descr); err != nil {
				return nil, err
			}

		case reArc.MatchString(line):
			m := reArc.FindStringSubmatch(line)
			src, dst := m[1], m[2]
			if src == "" {
				if prevSrc == "" {
					return nil, errors.New(errors.ErrCodeParse, "line %d: arc without source: %q", i+1, raw)
				}
				src = prevSrc
			}
			prevSrc = src
			if err := ensure(src); err != nil {
				return nil, err
			}
			if err := ensure(dst); err != nil {
				return nil, err
			}
			if _, err := f.AddArc(fst.Arc{
				Src: src,
				Dst: dst,
				In:  strings.Fields(m[3]),
				Out: strings.Fields(m[4]),
			}); err != nil {
				return nil, err
			}

		default:
			return nil, errors.New(errors.ErrCodeParse, "line %d: bad line %q", i+1, raw)
		}
	}

	return f, nil
}

// Import reads the textual graph file at path. The file's base name becomes
// the graph's display label.
func Import(path string) (*fst.FST, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return ReadText(filepath.Base(path), file)
}
