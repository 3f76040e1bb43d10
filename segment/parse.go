package segment

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseStep parses a token such as "U5" or "F12".
func ParseStep(tok string) (Step, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Step{}, ErrEmptyStep
	}
	dir, err := ParseDirection(tok[:1])
	if err != nil {
		return Step{}, err
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 {
		return Step{}, fmt.Errorf("%w: %q", ErrBadCount, tok)
	}

	return Step{Dir: dir, Count: n}, nil
}

// ParsePath parses a comma-separated list of steps, e.g. "U5,R3,F1".
func ParsePath(line string) ([]Step, error) {
	toks := strings.Split(line, ",")
	steps := make([]Step, 0, len(toks))
	for i, tok := range toks {
		s, err := ParseStep(tok)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, s)
	}

	return steps, nil
}
