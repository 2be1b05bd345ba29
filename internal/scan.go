package internal

import (
	"golang.org/x/sync/errgroup"
)

// The best pair seen by a scan. The zero value means nothing qualified.
type candidate struct {
	area uint64
	i, j int
	ok   bool
}

// Pick the better of two candidates: larger area first, then the earlier pair.
// The ordering is total, so reducing in any order gives the same answer.
func (c candidate) max(o candidate) candidate {
	switch {
	case !o.ok:
		return c
	case !c.ok:
		return o
	case o.area != c.area:
		if o.area > c.area {
			return o
		}
		return c
	case o.i < c.i || (o.i == c.i && o.j < c.j):
		return o
	}
	return c
}

// Score every unordered pair of vertices and keep the best. score reports
// false for pairs that do not qualify.
//
// With Workers above one, each first vertex's row of pairs is a separate job.
// Thrown panics inside a job come back through the errgroup and are thrown
// again here, so callers see the same behavior either way.
func (f *Floor) scan(score func(a, b Point) (uint64, bool)) candidate {
	n := len(f.loop)
	row := func(i int) candidate {
		var best candidate
		for j := i + 1; j < n; j++ {
			area, ok := score(f.loop[i], f.loop[j])
			if ok {
				best = best.max(candidate{area: area, i: i, j: j, ok: true})
			}
		}
		return best
	}

	var best candidate
	if f.Workers <= 1 {
		for i := 0; i < n-1; i++ {
			best = best.max(row(i))
		}
		return best
	}

	results := make([]candidate, n)
	var g errgroup.Group
	g.SetLimit(f.Workers)
	for i := 0; i < n-1; i++ {
		i := i
		g.Go(func() error {
			return Catch(func() { results[i] = row(i) })
		})
	}
	if err := g.Wait(); err != nil {
		panic(thrown{err})
	}
	for _, c := range results {
		best = best.max(c)
	}
	return best
}
