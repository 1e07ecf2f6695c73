package core

import "fmt"

// IntToStringFixedWidth left-pads num with spaces to width characters.
// Numbers wider than width are not truncated.
func IntToStringFixedWidth(num int, width int) string {
	return fmt.Sprintf("%*d", width, num)
}
