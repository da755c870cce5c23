// Package textutil provides the case-insensitive comparison helpers used when
// matching user queries against catalog titles.
//
// Comparisons use Unicode case folding rather than a plain lowercase pass so
// titles such as "STRASSE" and "straße" compare the way a reader expects.
package textutil
