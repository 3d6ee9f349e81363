package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Structure is an in-memory chemical structure kept as an MDL molfile
// (connection table) with its atom and bond counts.
type Structure struct {
	// Molfile is the V2000 or V3000 connection table terminated by
	// "M  END".
	Molfile string

	// Atoms is the number of atoms from the counts line.
	Atoms int

	// Bonds is the number of bonds from the counts line.
	Bonds int
}

// Equal checks if two structures have the same connection table.
func (s Structure) Equal(o Structure) bool {
	return s.Atoms == o.Atoms && s.Bonds == o.Bonds &&
		normalizeMolfile(s.Molfile) == normalizeMolfile(o.Molfile)
}

// ReadMolfile reads the first connection table from data. Text after
// "M  END" (SDF properties, further records) is ignored.
func ReadMolfile(data []byte) (Structure, error) {
	var res Structure
	var lines []string
	var ended bool

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		lines = append(lines, line)
		if strings.HasPrefix(line, "M  END") {
			ended = true
			break
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if !ended {
		return res, fmt.Errorf("%w: molfile has no 'M  END' line", ErrParse)
	}
	// header block takes 3 lines, counts line is the 4th
	if len(lines) < 5 {
		return res, fmt.Errorf("%w: molfile is too short", ErrParse)
	}

	atoms, bonds, err := readCounts(lines)
	if err != nil {
		return res, err
	}

	res = Structure{
		Molfile: strings.Join(lines, "\n") + "\n",
		Atoms:   atoms,
		Bonds:   bonds,
	}
	return res, nil
}

func readCounts(lines []string) (int, int, error) {
	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		for _, l := range lines[4:] {
			if f, ok := strings.CutPrefix(l, "M  V30 COUNTS"); ok {
				fields := strings.Fields(f)
				if len(fields) < 2 {
					break
				}
				return atoi2(fields[0], fields[1])
			}
		}
		return 0, 0, fmt.Errorf("%w: V3000 molfile has no COUNTS line", ErrParse)
	}

	if len(counts) < 6 {
		return 0, 0, fmt.Errorf("%w: bad counts line '%s'", ErrParse, counts)
	}
	return atoi2(counts[0:3], counts[3:6])
}

func atoi2(a, b string) (int, int, error) {
	atoms, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad atom count: %w", ErrParse, err)
	}
	bonds, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad bond count: %w", ErrParse, err)
	}
	return atoms, bonds, nil
}

// normalizeMolfile ignores the program/timestamp line of the header,
// it differs between toolkit runs for the same structure.
func normalizeMolfile(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) > 1 {
		lines[1] = ""
	}
	return strings.Join(lines, "\n")
}
