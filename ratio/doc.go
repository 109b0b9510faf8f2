// Package ratio provides exact rational numbers over the integer
// package's capability set and renders them as decimal strings.
//
// A ratio is a numerator/denominator pair:
//
//  ratio = num / den
//
// Operations never leave the base type: Trunc is integer division,
// Fract keeps the remainder, and Mul scales the numerator. Nothing is
// converted to floating point at any stage, so results are exact as
// long as intermediate values fit the base type. With an arbitrary
// precision base type they are exact unconditionally.
//
// Rendering
//
// Append writes the ratio as a decimal number with a fixed count of
// fractional digits. The integer part is the truncated quotient. Each
// fractional digit is extracted by scaling the remainder fraction by
// ten and truncating again:
//
//  digit = trunc(frac * 10)
//  frac  = fract(frac * 10)
//
// The remainder fraction stays in [0, 1), so every extracted digit is a
// single decimal digit. When the remainder reaches exactly zero the
// remaining positions are zeros; no digit is ever fabricated and no
// digit is ever rounded up.
//
// For example, 65535/1024 rendered with three fractional digits:
//
//  trunc(65535/1024) = 63    frac 1023/1024
//  trunc(10230/1024) = 9     frac 1014/1024
//  trunc(10140/1024) = 9     frac 924/1024
//  trunc(9240/1024)  = 9     frac 24/1024
//
// yielding "63.999". Because digits are truncated rather than rounded,
// a rendering at a lower precision is always a prefix of the rendering
// at a higher precision.
package ratio
