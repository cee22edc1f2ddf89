package forth_test

import (
	"fmt"

	"forth"
)

func Example() {
	f := forth.New()
	if err := f.Evaluate(": dup-twice dup dup ; 5 dup-twice"); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f.Stack())
	// Output: [5 5 5]
}
