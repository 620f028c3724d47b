package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// errorChain splits err into its own message and the messages of its causes,
// outermost first. A cause's text is trimmed from the message that wraps it.
func errorChain(err error) []string {
	var lines []string

	for err != nil {
		next := cause(err)
		msg := err.Error()

		if next != nil {
			inner := next.Error()

			switch {
			case strings.HasSuffix(msg, ": "+inner):
				msg = strings.TrimSuffix(msg, ": "+inner)
			case msg == inner:
				err = next
				continue
			}
		}

		lines = append(lines, msg)
		err = next
	}

	return lines
}

// cause returns the wrapped error; of several, the last one is the cause.
func cause(err error) error {
	if next := errors.Unwrap(err); next != nil {
		return next
	}

	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := multi.Unwrap(); len(errs) > 0 {
			return errs[len(errs)-1]
		}
	}

	return nil
}

// printErrorChain writes the error chain to w, one cause per line.
func printErrorChain(w io.Writer, err error) {
	for i, line := range errorChain(err) {
		prefix := "error: "
		if i > 0 {
			prefix = "  caused by: "
		}

		_, _ = fmt.Fprintln(w, prefix+line)
	}
}
