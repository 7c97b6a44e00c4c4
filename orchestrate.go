// seehuhn.de/go/zhconv - a library for Chinese/Japanese script conversion
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package zhconv

import (
	"runtime"
	"strings"
	"sync"
	"unicode/utf16"

	"seehuhn.de/go/zhconv/engine"
	"seehuhn.de/go/zhconv/plan"
	"seehuhn.de/go/zhconv/segment"
)

// Tuning defaults; these govern only the serial/parallel choice and
// never change observable output.
const (
	linearCutoffFewCores = 8_000
	linearCutoffManyCore = 10_000

	parallelTextGateFewCores = 150_000
	parallelTextGateManyCore = 100_000

	parallelRangeGate = 1_000
	batchSize         = 256
)

func linearCutoff() int {
	if runtime.NumCPU() <= 4 {
		return linearCutoffFewCores
	}
	return linearCutoffManyCore
}

func parallelTextGate() int {
	if runtime.NumCPU() <= 4 {
		return parallelTextGateFewCores
	}
	return parallelTextGateManyCore
}

// runPlan executes every round of p over text, returning the final
// string. For small input it runs each round directly over the whole
// text; for large input it splits the first round into delimiter-aware
// ranges
// (processed serially or, above the range/length gates, in parallel
// chunks of at most batchSize ranges), then applies every remaining
// round to the whole stitched output.
func runPlan(text string, p *plan.Plan) string {
	if text == "" || len(p.Rounds) == 0 {
		return text
	}

	units := utf16.Encode([]rune(text))

	if len(units) < linearCutoff() {
		for _, round := range p.Rounds {
			out := engine.ConvertSegment(units, round.Dicts, round.Union)
			units = utf16.Encode([]rune(out))
		}
		return string(utf16.Decode(units))
	}

	first := p.Rounds[0]
	ranges := segment.Split(units, true)

	var stitched string
	if len(ranges) <= parallelRangeGate && len(units) <= parallelTextGate() {
		stitched = convertRangesSerial(units, ranges, first)
	} else {
		stitched = convertRangesParallel(units, ranges, first)
	}

	out := stitched
	if len(p.Rounds) > 1 {
		unitsRest := utf16.Encode([]rune(stitched))
		for _, round := range p.Rounds[1:] {
			s := engine.ConvertSegment(unitsRest, round.Dicts, round.Union)
			unitsRest = utf16.Encode([]rune(s))
		}
		out = string(utf16.Decode(unitsRest))
	}
	return out
}

// convertRangesSerial processes ranges one at a time on the calling
// goroutine, concatenating into a single preallocated builder.
func convertRangesSerial(units []uint16, ranges []segment.Range, round plan.Round) string {
	var b strings.Builder
	b.Grow(len(units) * 17 / 16)
	for _, r := range ranges {
		b.WriteString(engine.ConvertSegment(units[r.Start:r.End], round.Dicts, round.Union))
	}
	return b.String()
}

// convertRangesParallel groups ranges into chunks of at most
// batchSize consecutive ranges, converts chunks concurrently (each
// producing its own string, each worker owning its own scratch state
// via the per-call scratch buffer inside engine.ConvertSegment), and
// joins chunk outputs in chunk order. Determinism with the serial path
// is structural: chunk N's output depends only on units in chunk N's
// ranges, and chunks are joined in input order.
func convertRangesParallel(units []uint16, ranges []segment.Range, round plan.Round) string {
	type chunk struct {
		ranges []segment.Range
	}
	var chunks []chunk
	for i := 0; i < len(ranges); i += batchSize {
		end := i + batchSize
		if end > len(ranges) {
			end = len(ranges)
		}
		chunks = append(chunks, chunk{ranges: ranges[i:end]})
	}

	results := make([]string, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for idx, c := range chunks {
		idx, c := idx, c
		go func() {
			defer wg.Done()
			total := 0
			for _, r := range c.ranges {
				total += r.End - r.Start
			}
			var b strings.Builder
			b.Grow(total * 65 / 64)
			for _, r := range c.ranges {
				b.WriteString(engine.ConvertSegment(units[r.Start:r.End], round.Dicts, round.Union))
			}
			results[idx] = b.String()
		}()
	}
	wg.Wait()

	var out strings.Builder
	out.Grow(len(units) * 17 / 16)
	for _, s := range results {
		out.WriteString(s)
	}
	return out.String()
}
