package regexfa_test

import (
	"errors"
	"fmt"

	"github.com/coregx/regexfa"
)

func Example() {
	re := regexfa.MustCompile(`(a|b)*abb`)

	fmt.Println(re.IsMatch("babaabb"))
	m := re.Find("xx babaabb yy")
	fmt.Println(m.Start(), m.End(), m.String())
	// Output:
	// true
	// 3 10 babaabb
}

func ExampleRegex_FindAll() {
	re := regexfa.MustCompile(`a`)
	var starts []int
	for _, m := range re.FindAll("banana") {
		starts = append(starts, m.Start())
	}
	fmt.Println(starts)

	empty := regexfa.MustCompile(``)
	fmt.Println(len(empty.FindAll("xy")))
	// Output:
	// [1 3 5]
	// 3
}

func ExampleRegex_FindIter() {
	re := regexfa.MustCompile(`(ab)+`)
	for m := range re.FindIter("ab abab xab") {
		fmt.Println(m.String())
	}
	// Output:
	// ab
	// abab
	// ab
}

func ExampleCompileGlushkov() {
	re, err := regexfa.CompileGlushkov(`a*b+`)
	if err != nil {
		panic(err)
	}
	fmt.Println(re.Construction(), re.IsMatch("aaabbb"))
	// Output:
	// Glushkov true
}

func ExampleCompile_error() {
	_, err := regexfa.Compile(`a(b`)
	var se *regexfa.SyntaxError
	if errors.As(err, &se) {
		fmt.Println(errors.Is(err, regexfa.ErrUnbalancedGroup), se.Pos)
	}
	fmt.Println(err)
	// Output:
	// true 1
	// error parsing regexp: unbalanced group at offset 1: `a(b`
}

func ExampleQuoteMeta() {
	re := regexfa.MustCompile(regexfa.QuoteMeta("1+1=2"))
	fmt.Println(re.String(), re.IsMatch("1+1=2"))
	// Output:
	// 1\+1=2 true
}
