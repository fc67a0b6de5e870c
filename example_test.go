package tint_test

import (
	"fmt"

	"github.com/gogpu/tint"
)

func ExampleFromHex() {
	c := tint.FromHex("#0089ff")
	fmt.Println(c.RGBAString())
	// Output: rgba(0, 137, 255, 1)
}

func ExampleFromHex_malformed() {
	// Malformed input degrades to the default color instead of failing.
	c := tint.FromHex("#WATNOPE")
	fmt.Println(c.Hex())
	// Output: #000000
}

func ExampleFromHSL() {
	c := tint.FromHSL(208, 1, 0.5)
	fmt.Println(c.Hex())
	// Output: #0088ff
}

func ExampleColor_Hex() {
	c := tint.New().SetG(137).SetB(255)
	fmt.Println(c.Hex())
	// Output: #0089ff
}

func ExampleColor_HSLAString() {
	c := tint.NewRGBA(255, 0, 0, 0.5)
	fmt.Println(c.HSLAString())
	// Output: hsla(0, 100%, 50%, 0.5)
}

func ExampleColor_IsDark() {
	fmt.Println(tint.FromHex("#0089ff").IsDark())
	fmt.Println(tint.FromHex("#ffff00").IsDark())
	// Output:
	// true
	// false
}
