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

// Package zhconv converts Chinese text between scripts and regional
// standards (Simplified, Traditional, Taiwan, Hong Kong, and Japanese
// Shinjitai/Kyūjitai) using OpenCC-compatible lexicons.
//
// Conversion is driven by a named direction:
//
//	out := zhconv.Convert("汉字转换", zhconv.S2T, false)
//	// out == "漢字轉換"
//
// A direction is resolved from its canonical lowercase name with
// [ParseDirection]:
//
//	dir, ok := zhconv.ParseDirection("s2tw")
//
// The package ships a default dictionary set; callers that need a custom
// lexicon install one with [UseCustom]:
//
//	zhconv.UseCustom(mySet)
//
// Subpackages implement the pieces this package wires together: [dict]
// holds the dictionary data model, [union] aggregates starter metadata
// across a group of dictionaries, [plan] builds and caches the ordered
// rounds for each direction, [segment] splits text on delimiter
// boundaries, and [engine] performs the longest-match replacement within
// one round.
package zhconv
