package bits_test

import (
	"fmt"

	"github.com/gregLibert/bitfield/pkg/bits"
)

func Example() {
	var v uint8
	v, _ = bits.Set(v, 0)
	v, _ = bits.Set(v, 3)
	v, _ = bits.Set(v, 5)
	fmt.Println(bits.Format(v), v)

	v, _ = bits.Toggle(v, 0)
	v, _ = bits.Clear(v, 5)
	fmt.Println(bits.Format(v), bits.Ones(v), bits.Zeros(v))

	_, err := bits.Set(v, 10)
	fmt.Println(err)
	// Output:
	// 00101001 41
	// 00001000 1 7
	// invalid bit index: bit 10 outside [0, 8)
}

func ExampleSetBits() {
	var status uint16
	status, _ = bits.SetBits(status, 8, 4, 13)
	field, _ := bits.GetBits(status, 8, 4)
	fmt.Printf("0x%04X %d\n", status, field)
	// Output: 0x0D00 13
}

func ExampleParse() {
	v, _ := bits.Parse[uint8]("00001111")
	fmt.Println(v)

	_, err := bits.Parse[uint8]("10x")
	fmt.Println(err)
	// Output:
	// 15
	// invalid binary digit: 'x' at offset 2 of "10x"
}
