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

package dict

// Set is a fixed record of the eighteen named dictionary entries that
// cover every conversion direction. It is built once (from text
// sources via LoadDir/LoadFS, or a persisted form via Load) and is
// immutable thereafter.
type Set struct {
	STCharacters          *Entry
	STPhrases             *Entry
	TSCharacters          *Entry
	TSPhrases             *Entry
	TWPhrases             *Entry
	TWPhrasesRev          *Entry
	TWVariants            *Entry
	TWVariantsRev         *Entry
	TWVariantsRevPhrases  *Entry
	HKVariants            *Entry
	HKVariantsRev         *Entry
	HKVariantsRevPhrases  *Entry
	JPShinjitaiCharacters *Entry
	JPShinjitaiPhrases    *Entry
	JPVariants            *Entry
	JPVariantsRev         *Entry
	STPunctuations        *Entry
	TSPunctuations        *Entry
}

// SlotFile names the 18 required dictionary text files, in fixed
// order, paired with the Set field each feeds.
var SlotFile = []struct {
	File string
	Set  func(*Set) **Entry
}{
	{"STCharacters.txt", func(s *Set) **Entry { return &s.STCharacters }},
	{"STPhrases.txt", func(s *Set) **Entry { return &s.STPhrases }},
	{"TSCharacters.txt", func(s *Set) **Entry { return &s.TSCharacters }},
	{"TSPhrases.txt", func(s *Set) **Entry { return &s.TSPhrases }},
	{"TWPhrases.txt", func(s *Set) **Entry { return &s.TWPhrases }},
	{"TWPhrasesRev.txt", func(s *Set) **Entry { return &s.TWPhrasesRev }},
	{"TWVariants.txt", func(s *Set) **Entry { return &s.TWVariants }},
	{"TWVariantsRev.txt", func(s *Set) **Entry { return &s.TWVariantsRev }},
	{"TWVariantsRevPhrases.txt", func(s *Set) **Entry { return &s.TWVariantsRevPhrases }},
	{"HKVariants.txt", func(s *Set) **Entry { return &s.HKVariants }},
	{"HKVariantsRev.txt", func(s *Set) **Entry { return &s.HKVariantsRev }},
	{"HKVariantsRevPhrases.txt", func(s *Set) **Entry { return &s.HKVariantsRevPhrases }},
	{"JPShinjitaiCharacters.txt", func(s *Set) **Entry { return &s.JPShinjitaiCharacters }},
	{"JPShinjitaiPhrases.txt", func(s *Set) **Entry { return &s.JPShinjitaiPhrases }},
	{"JPVariants.txt", func(s *Set) **Entry { return &s.JPVariants }},
	{"JPVariantsRev.txt", func(s *Set) **Entry { return &s.JPVariantsRev }},
	{"STPunctuations.txt", func(s *Set) **Entry { return &s.STPunctuations }},
	{"TSPunctuations.txt", func(s *Set) **Entry { return &s.TSPunctuations }},
}
