package game

// Pattern is a local playout response attached to the point that was just played.
type Pattern struct {
	Ours   BitSet // Points the player to move must own
	Empty  BitSet // Points nobody may own
	ToPlay int
}

func bridgePattern(a, b, gap int) Pattern {
	p := Pattern{ToPlay: gap}
	p.Ours.Set(a)
	p.Ours.Set(b)
	p.Empty.Set(gap)
	return p
}

func safetyPattern(point int) Pattern {
	p := Pattern{ToPlay: point}
	p.Empty.Set(point)
	return p
}

// Check returns the recommended point if the pattern applies for the player whose
// occupancy is current, the opponent having just played.
func (p Pattern) Check(last, current BitSet) (int, bool) {
	if last.Union(current).Intersects(p.Empty) {
		return 0, false
	}
	if !current.Contains(p.Ours) {
		return 0, false
	}
	return p.ToPlay, true
}

// buildPatterns slides a window of three consecutive directions around every point. The
// outer cells of a window form a bridge whose carrier is the point itself and the middle
// cell, so an intrusion at the point is answered at the middle cell.
func buildPatterns(t *Topology) [][]Pattern {
	patterns := make([][]Pattern, t.Count)
	for i, c := range t.Coords {
		for k := range directions {
			da := directions[k]
			dg := directions[(k+1)%len(directions)]
			db := directions[(k+2)%len(directions)]

			gap, gapOK := t.Index(c.X+dg.X, c.Y+dg.Y)
			if !gapOK {
				continue
			}
			a, aOK := t.Index(c.X+da.X, c.Y+da.Y)
			b, bOK := t.Index(c.X+db.X, c.Y+db.Y)

			switch {
			case aOK && bOK:
				patterns[i] = append(patterns[i], bridgePattern(a, b, gap))
			case aOK || bOK:
				end := a
				if bOK {
					end = b
				}
				target := gap
				if t.OnBoundary(end) {
					target = end
				}
				patterns[i] = append(patterns[i], safetyPattern(target))
			}
		}
	}
	return patterns
}
