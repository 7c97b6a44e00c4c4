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

// Package plan builds and caches the ordered, multi-round conversion
// plans for each (direction, punctuation) pair.
package plan

import "seehuhn.de/go/zhconv/dict"

// SlotID names one of the internal, closed set of semantic slots a
// round can use. Slot IDs are shared across plans so that, e.g., every
// direction whose first round is S2T reuses one starter union.
type SlotID int

const (
	SlotS2T SlotID = iota
	SlotS2TPunct
	SlotT2S
	SlotT2SPunct
	SlotTwPhrasesOnly
	SlotTwVariantsOnly
	SlotTwPhrasesRevOnly
	SlotTwRevPair
	SlotTw2SpR1TwRevTriple
	SlotHkVariantsOnly
	SlotHkRevPair
	SlotJpVariantsOnly
	SlotJpRevTriple

	numSlots
)

// Dicts returns the fixed, ordered list of dictionary entries that make
// up slot id, drawn from set. The order is significant: within one
// round, ties at equal match length are broken in favor of the earlier
// dict here.
func (id SlotID) Dicts(set *dict.Set) []*dict.Entry {
	switch id {
	case SlotS2T:
		return []*dict.Entry{set.STPhrases, set.STCharacters}
	case SlotS2TPunct:
		return []*dict.Entry{set.STPhrases, set.STCharacters, set.STPunctuations}
	case SlotT2S:
		return []*dict.Entry{set.TSPhrases, set.TSCharacters}
	case SlotT2SPunct:
		return []*dict.Entry{set.TSPhrases, set.TSCharacters, set.TSPunctuations}
	case SlotTwPhrasesOnly:
		return []*dict.Entry{set.TWPhrases}
	case SlotTwVariantsOnly:
		return []*dict.Entry{set.TWVariants}
	case SlotTwPhrasesRevOnly:
		return []*dict.Entry{set.TWPhrasesRev}
	case SlotTwRevPair:
		return []*dict.Entry{set.TWVariantsRevPhrases, set.TWVariantsRev}
	case SlotTw2SpR1TwRevTriple:
		return []*dict.Entry{set.TWPhrasesRev, set.TWVariantsRevPhrases, set.TWVariantsRev}
	case SlotHkVariantsOnly:
		return []*dict.Entry{set.HKVariants}
	case SlotHkRevPair:
		return []*dict.Entry{set.HKVariantsRevPhrases, set.HKVariantsRev}
	case SlotJpVariantsOnly:
		return []*dict.Entry{set.JPVariants}
	case SlotJpRevTriple:
		return []*dict.Entry{set.JPShinjitaiPhrases, set.JPShinjitaiCharacters, set.JPVariantsRev}
	default:
		panic("plan: invalid SlotID")
	}
}
