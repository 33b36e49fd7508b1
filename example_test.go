package datefmt_test

import (
	"fmt"

	"github.com/ava12/datefmt/format"
)

func Example() {
	f, e := format.Compile("EEE, dd MMM yyyy HH:mm[:ss]")
	if e != nil {
		fmt.Println(e)
		return
	}

	d, t, e := f.ParseDateTime("Sat, 23 Aug 2025 14:15")
	if e != nil {
		fmt.Println(e)
		return
	}
	fmt.Println(d, t)

	text, e := format.ISODateTime.FormatDateTime(d, t)
	if e != nil {
		fmt.Println(e)
		return
	}
	fmt.Println(text)

	// Output:
	// 2025-08-23 14:15:00
	// 2025-08-23T14:15
}
