// Package textutil normalizes and re-cases human text.
//
// [Normalize] transliterates accented Latin letters, ligatures, Cyrillic and
// Greek letters and typographic punctuation to plain ASCII using a fixed
// table. [Fold] additionally drops any combining marks the table does not
// cover. [TitleCaseWords] capitalizes space separated words.
package textutil
