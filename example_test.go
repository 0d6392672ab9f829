package num_test

import (
	"fmt"

	num "github.com/shabbyrobe/go-num1024"
	"github.com/shabbyrobe/go-num1024/entropy"
)

func ExampleU1024_ModExp() {
	b := num.U1024From64(4)
	r, err := b.ModExp(num.U1024From64(13), num.U1024From64(497))
	fmt.Println(r, err)
	// Output: 445 <nil>
}

func ExampleU1024_Mul() {
	fmt.Println(num.U1024From64(2).Mul(num.U1024From64(3)))
	fmt.Println(num.MaxU1024.Add(num.U1024From64(1)))
	// Output:
	// 6
	// 0
}

func ExampleReadOddU1024() {
	u, err := num.ReadOddU1024(entropy.NewShake([]byte("example")))
	if err != nil {
		panic(err)
	}
	fmt.Println(u.IsOdd(), u.BitLen())
	// Output: true 1024
}
