package errorx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

var exit = os.Exit

// ExitWhen prints err together with the caller's position to stderr and exits with code 1.
// A nil err is a no-op.
func ExitWhen(err error) {
	if err == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	exitWith(os.Stderr, err, file, line)
}

func exitWith(w io.Writer, err error, file string, line int) {
	fmt.Fprintf(w, "ERROR (EXIT): %v - (%s:%d)\n", err, filepath.Base(file), line)
	exit(1)
}
