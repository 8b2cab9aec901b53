package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var exit = os.Exit

// Exitf reports a fatal command error on stderr and exits with code 1.
func Exitf(format string, args ...any) {
	writeFatal(os.Stderr, format, args...)
	exit(1)
}

func writeFatal(w io.Writer, format string, args ...any) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(w, message)
}
