package expect_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ib-77/expected/pkg/expect"
)

func parsePort(s string) expect.Expected[int, string] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return expect.Err[int]("not a number: " + s)
	}
	if n <= 0 || n > 65535 {
		return expect.Err[int]("out of range: " + s)
	}
	return expect.Of[int, string](n)
}

func ExampleExpected() {
	for _, in := range []string{"8080", "http", "70000"} {
		fmt.Println(parsePort(in))
	}
	// Output:
	// expected(8080)
	// unexpected(not a number: http)
	// unexpected(out of range: 70000)
}

func ExampleMap() {
	addr := expect.Map(parsePort("443"), func(p int) string { return "localhost:" + strconv.Itoa(p) })
	fmt.Println(addr.ValueOr("unset"))

	addr = expect.Map(parsePort("-1"), func(p int) string { return "localhost:" + strconv.Itoa(p) })
	fmt.Println(addr.ValueOr("unset"))
	// Output:
	// localhost:443
	// unset
}

func ExampleExpected_Value() {
	_, err := parsePort("x").Value()
	fmt.Println(errors.Is(err, expect.ErrBadAccess))

	var bad *expect.BadAccessError[string]
	if errors.As(err, &bad) {
		fmt.Println(bad.Err)
	}
	// Output:
	// true
	// not a number: x
}

func ExampleMapError() {
	x := expect.MapError(parsePort("x"), func(msg string) error { return errors.New("config: " + msg) })
	fmt.Println(x.Err())
	// Output:
	// config: not a number: x
}

func ExampleVoid() {
	check := func(port int) expect.Void[string] {
		if port < 1024 {
			return expect.ErrVoid("privileged port")
		}
		return expect.OkVoid[string]()
	}

	fmt.Println(check(80))
	fmt.Println(check(8080))
	// Output:
	// unexpected(privileged port)
	// expected()
}
