package sizefmt_test

import (
	"fmt"

	"github.com/calebcase/sizefmt"
	"github.com/calebcase/sizefmt/integer"
	"github.com/calebcase/sizefmt/prefix"
)

func ExampleSI() {
	fmt.Printf("%sB\n", sizefmt.SI(42000000))
	// Output: 42.0MB
}

func ExampleBinary() {
	fmt.Printf("%sB\n", sizefmt.Binary(42*1024*1024))
	// Output: 42.0MiB
}

func ExampleFormatter_Text() {
	for _, size := range []uint64{678, 1999, 1999999999} {
		s, err := sizefmt.SI(size).Text(4)
		if err != nil {
			panic(err)
		}

		fmt.Printf("%sB\n", s)
	}
	// Output:
	// 678B
	// 1.999kB
	// 1.9999GB
}

func ExampleNew_millimeters() {
	mm := prefix.MustNew(1000, "m", "", "k")

	for _, length := range []uint64{1, 1000, 1000000} {
		fmt.Printf("%sm\n", sizefmt.New(integer.NewUint(length), mm, sizefmt.Point))
	}
	// Output:
	// 1mm
	// 1.0m
	// 1.0km
}

func ExampleNew_comma() {
	f := sizefmt.New(integer.NewUint(uint16(65535)), prefix.Binary, sizefmt.Comma)

	fmt.Printf("%.2sB\n", f)
	// Output: 63,99KiB
}
