// Package input reads puzzle input files: character matrices, integer
// coordinate pairs and wire paths. Blank lines are skipped, except inside
// a matrix where a row of spaces is still a row.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/quests/coord"
	"github.com/katalvlaran/quests/segment"
)

// ErrMalformedLine is returned for a line that cannot be parsed.
var ErrMalformedLine = errors.New("input: malformed line")

// ReadMatrix reads the file at path as rows of runes.
func ReadMatrix(path string) ([][]rune, error) {
	return readFile(path, ParseMatrix)
}

// ReadVector reads the file at path as "x y" integer pairs.
func ReadVector(path string) ([]coord.Coord2, error) {
	return readFile(path, ParseVector)
}

// ReadWirePaths reads the file at path as one comma-separated path per line.
func ReadWirePaths(path string) ([][]segment.Step, error) {
	return readFile(path, ParseWirePaths)
}

// ParseMatrix reads r as rows of runes, one row per line. Every line is
// kept, including whitespace-only ones; only trailing empty lines are
// dropped.
func ParseMatrix(r io.Reader) ([][]rune, error) {
	var rows [][]rune
	err := eachLine(r, false, func(_ int, line string) error {
		rows = append(rows, []rune(line))
		return nil
	})
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return rows, err
}

// ParseVector reads r as two whitespace-separated integers per line.
func ParseVector(r io.Reader) ([]coord.Coord2, error) {
	var out []coord.Coord2
	err := eachLine(r, true, func(n int, line string) error {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("%w %d: want 2 fields, got %d", ErrMalformedLine, n, len(fields))
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%w %d: %v", ErrMalformedLine, n, err)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%w %d: %v", ErrMalformedLine, n, err)
		}
		out = append(out, coord.New2(x, y))
		return nil
	})

	return out, err
}

// ParseWirePaths reads r as one wire path per line.
func ParseWirePaths(r io.Reader) ([][]segment.Step, error) {
	var paths [][]segment.Step
	err := eachLine(r, true, func(n int, line string) error {
		p, err := segment.ParsePath(line)
		if err != nil {
			return fmt.Errorf("%w %d: %w", ErrMalformedLine, n, err)
		}
		paths = append(paths, p)
		return nil
	})

	return paths, err
}

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return v, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// eachLine calls fn with the 1-based number of every line, leaving out
// whitespace-only lines when skipBlank is set.
func eachLine(r io.Reader, skipBlank bool, fn func(n int, line string) error) error {
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimRight(s.Text(), "\r")
		if skipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}

	return s.Err()
}
