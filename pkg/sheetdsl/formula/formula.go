// Package formula renders spreadsheet formula strings from fixed templates.
package formula

import (
	"fmt"
	"strings"
)

// Call renders name(arg1,arg2,...) with no spaces between arguments.
// Zero args renders name().
func Call[T fmt.Stringer](name string, args ...T) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// Sum renders SUM(r1,r2,...).
func Sum[T fmt.Stringer](refs ...T) string {
	return Call("SUM", refs...)
}

// Average renders AVERAGE(r1,r2,...).
func Average[T fmt.Stringer](refs ...T) string {
	return Call("AVERAGE", refs...)
}

// If renders IF(condition, trueValue, falseValue). The arguments are
// inserted verbatim.
func If(condition, trueValue, falseValue string) string {
	return fmt.Sprintf("IF(%s, %s, %s)", condition, trueValue, falseValue)
}
