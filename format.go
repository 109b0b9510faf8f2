package sizefmt

import (
	"fmt"
	"unicode/utf8"

	"github.com/calebcase/oops"

	"github.com/calebcase/sizefmt/ratio"
)

// Separator is the character between the integer and fractional
// digits.
type Separator rune

// Separators
const (
	Point Separator = '.'
	Comma Separator = ','
)

// DefaultPrecision is the number of fractional digits rendered when no
// precision is requested.
const DefaultPrecision = 1

// Append appends the formatted magnitude to dst and returns the
// extended buffer. The output is the scaled value with at most prec
// fractional digits, followed by the selected tier's label. The
// effective precision is capped at three digits per tier, so tier 0
// never has fractional digits and prec only pads with zeros once the
// remainder is exhausted. Digits are truncated, never rounded.
//
// Append fails with ErrBaseTypeTooSmall if the system's size is not
// representable in the base type.
func (f Formatter[T]) Append(dst []byte, prec int) (_ []byte, err error) {
	defer Error.WrapP(&err)

	size, ok := f.num.FromUint64(f.system.Size())
	if !ok {
		return dst, oops.Trace(ErrBaseTypeTooSmall)
	}

	tier := intLog(f.num, size, f.system.MaxTier())

	if prec < 0 {
		prec = 0
	}
	if limit := 3 * tier; prec > limit {
		prec = limit
	}

	r := ratio.New(f.num, size.Pow(uint(tier)))

	dst = r.Append(dst, rune(f.separator), prec)
	dst = append(dst, f.system.Label(tier)...)

	return dst, nil
}

// Text returns the formatted magnitude with at most prec fractional
// digits.
func (f Formatter[T]) Text(prec int) (string, error) {
	b, err := f.Append(nil, prec)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// String returns the formatted magnitude at DefaultPrecision. It
// panics if the system's size is not representable in the base type;
// use Text to handle that case as an error.
func (f Formatter[T]) String() string {
	s, err := f.Text(DefaultPrecision)
	if err != nil {
		panic(err)
	}

	return s
}

// Format implements fmt.Formatter. The verbs v, s, and q format the
// magnitude, with q adding double quotes. The precision selects the
// fractional digit count (DefaultPrecision when absent). The width
// pads with spaces, left aligned when the '-' flag is set. Like
// String, Format panics if the system's size is not representable in
// the base type.
func (f Formatter[T]) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'q':
	default:
		fmt.Fprintf(state, "%%!%c(sizefmt.Formatter=%s)", verb, f.String())

		return
	}

	prec, ok := state.Precision()
	if !ok {
		prec = DefaultPrecision
	}

	b, err := f.Append(nil, prec)
	if err != nil {
		panic(err)
	}

	if verb == 'q' {
		b = append(append([]byte{'"'}, b...), '"')
	}

	width, hasWidth := state.Width()

	// Pad by rune count, as fmt does for strings.
	runes := utf8.RuneCount(b)

	if hasWidth && !state.Flag('-') {
		for i := runes; i < width; i++ {
			state.Write([]byte{' '})
		}
	}

	state.Write(b)

	if hasWidth && state.Flag('-') {
		for i := runes; i < width; i++ {
			state.Write([]byte{' '})
		}
	}
}
