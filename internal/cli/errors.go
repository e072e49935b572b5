package cli

import "fmt"

type unknownOpError struct {
	op string
}

func (e unknownOpError) Error() string {
	return fmt.Sprintf("unknown op %q (expected inc-hour, dec-hour, inc-minute, dec-minute, time=HH:mm, date=yyyy-MM-dd)", e.op)
}

type malformedBoundsError struct {
	count int
}

func (e malformedBoundsError) Error() string {
	if e.count == 1 {
		return "1 malformed bound"
	}
	return fmt.Sprintf("%d malformed bounds", e.count)
}
