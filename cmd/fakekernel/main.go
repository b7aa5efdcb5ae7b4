// fakekernel is a stand-in for the benchmarked executables during harness
// development. It accepts the same positional arguments as the real kernels
// and prints one CSV line. Failure modes are selected with FAKEKERNEL_MODE:
// "garbage" prints malformed output, "fail" exits non-zero, "hang" never
// finishes (for exercising the timeout path).
package main

import (
	"fmt"
	"os"
	"time"

	"parabench/internal/fakekernel"
)

func main() {
	switch os.Getenv("FAKEKERNEL_MODE") {
	case "garbage":
		fmt.Println("this,is,not,the,expected,shape")
		return
	case "fail":
		fmt.Fprintln(os.Stderr, "fakekernel: simulated kernel failure")
		os.Exit(2)
	case "hang":
		time.Sleep(10 * time.Minute)
		return
	}

	line, err := fakekernel.Respond(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fakekernel: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(line)
}
