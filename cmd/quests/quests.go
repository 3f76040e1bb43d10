package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/quests/bfs"
	"github.com/katalvlaran/quests/catapult"
	"github.com/katalvlaran/quests/dijkstra"
	"github.com/katalvlaran/quests/gridgraph"
	"github.com/katalvlaran/quests/internal/config"
	"github.com/katalvlaran/quests/internal/input"
	"github.com/katalvlaran/quests/segment"
)

var (
	errUnknownQuest = errors.New("unknown quest")
	errNoWirePath   = errors.New("no wire path")
)

// part solves one quest part from its input file.
type part func(ctx context.Context, path string) (int, error)

// quest is a numbered list of parts, run in order.
type quest struct {
	number int
	parts  []part
}

var quests = []quest{
	{number: 12, parts: []part{catapultScore(false), catapultScore(true), meteorScore}},
	{number: 13, parts: []part{terrain(dijkstra.Forward), terrain(dijkstra.Forward), terrain(dijkstra.Reversed)}},
	{number: 14, parts: []part{wireHeight, wireSegments, wireMurkiness}},
	{number: 18, parts: []part{lastSap, lastSap, bestWell}},
}

// runner prints the answers of the selected quests.
type runner struct {
	cfg *config.Config
	out io.Writer
}

func (r *runner) run(ctx context.Context, selected []quest) error {
	for _, q := range selected {
		fmt.Fprintf(r.out, "Quest %d:\n", q.number)
		for i, p := range q.parts {
			k := i + 1
			path := r.cfg.InputPath(q.number, k)
			entry := log.WithFields(log.Fields{"quest": q.number, "part": k})
			entry.WithField("input", path).Debug("solving")

			answer, err := p(ctx, path)
			switch {
			case errors.Is(err, dijkstra.ErrNoPath):
				entry.Warn("no path to the goal")
			case err != nil:
				return fmt.Errorf("quest %d part %d: %w", q.number, k, err)
			}
			fmt.Fprintf(r.out, "Part %d: %d\n", k, answer)
		}
	}

	return nil
}

func readGrid(path string) (*gridgraph.Grid, error) {
	rows, err := input.ReadMatrix(path)
	if err != nil {
		return nil, err
	}
	return gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
}

func catapultScore(hardened bool) part {
	return func(_ context.Context, path string) (int, error) {
		g, err := readGrid(path)
		if err != nil {
			return 0, err
		}
		return catapult.Score(g, hardened), nil
	}
}

func meteorScore(_ context.Context, path string) (int, error) {
	meteors, err := input.ReadVector(path)
	if err != nil {
		return 0, err
	}
	return catapult.MeteorScore(meteors)
}

func terrain(dir dijkstra.Direction) part {
	return func(ctx context.Context, path string) (int, error) {
		g, err := readGrid(path)
		if err != nil {
			return 0, err
		}
		return dijkstra.Search(g, dijkstra.WithContext(ctx), dijkstra.WithDirection(dir))
	}
}

func wireHeight(_ context.Context, path string) (int, error) {
	paths, err := input.ReadWirePaths(path)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("%s: %w", path, errNoWirePath)
	}
	return segment.MaxHeight(paths[0]), nil
}

func wireSegments(_ context.Context, path string) (int, error) {
	paths, err := input.ReadWirePaths(path)
	if err != nil {
		return 0, err
	}
	return segment.Build(paths).Len(), nil
}

func wireMurkiness(_ context.Context, path string) (int, error) {
	paths, err := input.ReadWirePaths(path)
	if err != nil {
		return 0, err
	}
	return segment.Build(paths).MinMurkiness()
}

// lastSap floods from the open border cells and returns the depth at
// which the last target is reached.
func lastSap(ctx context.Context, path string) (int, error) {
	g, err := readGrid(path)
	if err != nil {
		return 0, err
	}
	targets := g.Count(bfs.TargetRune)
	if targets == 0 {
		return 0, fmt.Errorf("%s: %w", path, bfs.ErrNoTargets)
	}
	res, err := bfs.MultiSource(g, bfs.FindStarts(g, true), targets, bfs.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	return res.Depth, nil
}

// bestWell returns the lowest sum of target depths over every single
// open start cell.
func bestWell(ctx context.Context, path string) (int, error) {
	g, err := readGrid(path)
	if err != nil {
		return 0, err
	}
	_, res, err := bfs.BestSingleStart(g, bfs.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}
