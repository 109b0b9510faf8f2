// Package prefix defines the unit prefix systems used to scale
// magnitudes.
//
// A system pairs a size multiplier with an ordered table of labels. The
// label at tier t names magnitudes that have been scaled down by size^t:
//
//  tier 0: magnitude in [0, size)          label[0]
//  tier 1: magnitude in [size, size^2)     label[1]
//  tier 2: magnitude in [size^2, size^3)   label[2]
//  ...
//
// Magnitudes at or beyond the last tier's range stay on the last tier;
// the scaled value simply grows past the size multiplier.
//
// The stock systems are SI (powers of 1000: "k", "M", "G", "T", "P",
// "E", "Z", "Y") and Binary (powers of 1024: "Ki", "Mi", "Gi", "Ti",
// "Pi", "Ei", "Zi", "Yi"). Both use the empty label for tier 0.
//
// Custom systems suit other units. A length scale anchored at
// millimeters:
//
//  mm := prefix.MustNew(1000, "m", "", "k")
//
// puts millimeters at tier 0, meters at tier 1, and kilometers at tier
// 2, so the magnitude 1 carries the label "m" and the magnitude
// 1_000_000 carries "k".
package prefix
