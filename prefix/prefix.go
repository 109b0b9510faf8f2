package prefix

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("prefix")

// System is an ordered table of unit labels sharing a common size
// multiplier. Systems are immutable once constructed; build them with
// New or MustNew. The zero value is not a usable system.
type System struct {
	size   uint64
	labels []string
}

// Stock Systems
var (
	// SI scales by powers of 1000 using metric prefixes.
	SI = MustNew(1000, "", "k", "M", "G", "T", "P", "E", "Z", "Y")

	// Binary scales by powers of 1024 using IEC prefixes.
	Binary = MustNew(1024, "", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi")
)

// New returns a system with the given size multiplier and labels. The
// size must be at least 2 and at least one label must be given. The
// labels are copied.
func New(size uint64, labels ...string) (System, error) {
	if size < 2 {
		return System{}, Error.New("invalid: size=%d", size)
	}
	if len(labels) == 0 {
		return System{}, Error.New("invalid: no labels")
	}

	s := System{
		size:   size,
		labels: make([]string, len(labels)),
	}
	copy(s.labels, labels)

	return s, nil
}

// MustNew is like New, but panics if the system is invalid.
func MustNew(size uint64, labels ...string) System {
	s, err := New(size, labels...)
	if err != nil {
		panic(err)
	}

	return s
}

// Size returns the tier multiplier.
func (s System) Size() uint64 {
	return s.size
}

// MaxTier returns the largest valid tier index.
func (s System) MaxTier() int {
	return len(s.labels) - 1
}

// Label returns the label for the given tier.
func (s System) Label(tier int) string {
	return s.labels[tier]
}
