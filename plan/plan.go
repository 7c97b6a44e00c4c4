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

package plan

import (
	"fmt"

	"seehuhn.de/go/zhconv/dict"
	"seehuhn.de/go/zhconv/union"
)

// Round is one application of the match engine over the entire current
// text using one slot's dictionaries and starter union.
type Round struct {
	Dicts []*dict.Entry
	Union *union.Union
}

// Plan is the 1-to-3-round ordered sequence the orchestrator executes
// for one (direction, punctuation) pair. Plan values are immutable
// after Cache.Get returns them.
type Plan struct {
	Rounds []Round
}

// buildPolicy maps each direction's canonical lowercase name to the
// ordered list of slots its plan is built from. S2T/T2S rounds are
// resolved to their punctuation-inclusive sibling by Build when
// punctuation is requested.
var buildPolicy = map[string][]SlotID{
	"s2t":   {SlotS2T},
	"t2s":   {SlotT2S},
	"s2tw":  {SlotS2T, SlotTwVariantsOnly},
	"tw2s":  {SlotTwRevPair, SlotT2S},
	"s2twp": {SlotS2T, SlotTwPhrasesOnly, SlotTwVariantsOnly},
	"tw2sp": {SlotTw2SpR1TwRevTriple, SlotT2S},
	"s2hk":  {SlotS2T, SlotHkVariantsOnly},
	"hk2s":  {SlotHkRevPair, SlotT2S},
	"t2tw":  {SlotTwVariantsOnly},
	"t2twp": {SlotTwPhrasesOnly, SlotTwVariantsOnly},
	"tw2t":  {SlotTwRevPair},
	"tw2tp": {SlotTwRevPair, SlotTwPhrasesRevOnly},
	"t2hk":  {SlotHkVariantsOnly},
	"hk2t":  {SlotHkRevPair},
	"t2jp":  {SlotJpVariantsOnly},
	"jp2t":  {SlotJpRevTriple},
}

// punctVariant maps a round's base slot to its punctuation-inclusive
// sibling, for the two rounds that vary with the punctuation flag.
var punctVariant = map[SlotID]SlotID{
	SlotS2T: SlotS2TPunct,
	SlotT2S: SlotT2SPunct,
}

// Build constructs the Plan for directionName (its canonical lowercase
// name) and punctuation, resolving each round's starter union through
// cache (build-on-first-use, thread-safe, duplicate-build races
// allowed but only one result stored). Build returns an error only if
// directionName is not a recognized direction; this package does not
// itself know about Direction's fallback-to-default policy, which is
// the root package's concern.
func Build(directionName string, punctuation bool, set *dict.Set, cache *UnionCache) (*Plan, error) {
	slots, ok := buildPolicy[directionName]
	if !ok {
		return nil, fmt.Errorf("plan: unknown direction %q", directionName)
	}

	rounds := make([]Round, len(slots))
	for i, slot := range slots {
		if punctuation {
			if variant, ok := punctVariant[slot]; ok {
				slot = variant
			}
		}
		rounds[i] = Round{
			Dicts: slot.Dicts(set),
			Union: cache.get(slot, set),
		}
	}
	return &Plan{Rounds: rounds}, nil
}
