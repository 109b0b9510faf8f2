// Package sizefmt formats unsigned magnitudes as human-readable
// strings using scaled unit prefixes.
//
// A formatter pairs a magnitude with a prefix system and a decimal
// separator and renders it at a requested precision:
//
//  fmt.Sprintf("%sB", sizefmt.Binary(42*1024*1024)) // 42.0MiB
//  fmt.Sprintf("%sB", sizefmt.SI(42_000_000))       // 42.0MB
//
// The package appends only the prefix label ("Mi", "k"); trailing unit
// symbols such as "B" belong to the caller.
//
// Precision
//
// The precision is the number of fractional digits. It defaults to
// one and can be set per call, either directly (Text, Append) or with
// the standard precision directive:
//
//  fmt.Sprintf("%.4sB", sizefmt.SI(1_999_999_999)) // 1.9999GB
//  fmt.Sprintf("%.0sB", sizefmt.SI(1_999_999_999)) // 1GB
//
// Values are always truncated, never rounded. The effective precision
// is also capped at three digits per tier, since digits beyond that no
// longer carry information from the magnitude:
//
//  fmt.Sprintf("%.10sB", sizefmt.SI(678))   // 678B
//  fmt.Sprintf("%.10sB", sizefmt.SI(1_999)) // 1.999kB
//
// Exactness
//
// All arithmetic is exact integer arithmetic on the formatter's base
// type. Nothing is converted to floating point, so no digit is ever
// the result of rounding error. The base type is anything satisfying
// integer.Base: machine unsigned integers (integer.Uint), 128-bit
// integers (integer.U128), or arbitrary precision integers
// (integer.Big).
//
// Magnitudes past the last tier stay on the last tier and the integer
// part grows without bound, so nothing ever fails to format:
//
//  sizefmt.New(integer.U128From64(10).Pow(27), prefix.SI, sizefmt.Point)
//  // String() == "1000.0Y"
//
// Configuration
//
// Prefix systems and separators are plain values. The stock systems
// are prefix.SI and prefix.Binary with Point or Comma separators, and
// custom systems work for other units:
//
//  mm := prefix.MustNew(1000, "m", "", "k")
//  f := sizefmt.New(integer.NewUint(uint64(1_000_000)), mm, sizefmt.Point)
//  // f.String() + "m" == "1.0km"
//
// The one configuration that cannot format is a prefix size that does
// not fit the base type (for example the SI size 1000 on a uint8
// magnitude). Text and Append report this as ErrBaseTypeTooSmall;
// String and Format panic on it.
package sizefmt
