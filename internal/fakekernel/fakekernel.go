// Package fakekernel implements a stub computational kernel that speaks the
// harness wire contract: positional argv in, one CSV line on stdout. It
// fabricates timing from a simple Amdahl model so the harness can be
// developed and demonstrated without compiling the real kernels.
package fakekernel

import (
	"fmt"
	"math"
	"strconv"
)

// parallelFraction is the Amdahl share of the synthetic workload that
// benefits from additional threads.
const parallelFraction = 0.95

// Respond interprets a kernel argument vector and returns the CSV line a
// real kernel would print. The shape is detected from the argument count:
// integration takes x1 x2 dx method threads, matrix multiplication takes
// size block method threads.
func Respond(args []string) (string, error) {
	switch len(args) {
	case 5:
		return integration(args)
	case 4:
		return matmul(args)
	default:
		return "", fmt.Errorf("expected 4 or 5 arguments, got %d", len(args))
	}
}

func integration(args []string) (string, error) {
	x1, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", fmt.Errorf("invalid lower bound %q", args[0])
	}
	x2, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return "", fmt.Errorf("invalid upper bound %q", args[1])
	}
	dx, err := strconv.ParseFloat(args[2], 64)
	if err != nil || dx <= 0 {
		return "", fmt.Errorf("invalid step %q", args[2])
	}
	method, threads, err := methodThreads(args[3], args[4])
	if err != nil {
		return "", err
	}
	if method < 1 || method > 4 {
		return "", fmt.Errorf("unknown integration method %d", method)
	}

	// Sequential methods (3, 4) ignore the thread argument.
	effective := threads
	if method >= 3 {
		effective = 1
	}

	steps := (x2 - x1) / dx
	elapsed := synthElapsed(steps*50e-9, effective)

	// Analytic integral of sin over the interval, perturbed by a small
	// method-dependent discretization error.
	area := math.Cos(x1) - math.Cos(x2)
	if method == 1 || method == 3 {
		area += dx * 0.5 // rectangle rule overshoots
	} else {
		area -= dx * 0.1
	}

	return fmt.Sprintf("%d,%d,%.6f,%.8f", method, threads, elapsed, area), nil
}

func matmul(args []string) (string, error) {
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 1 {
		return "", fmt.Errorf("invalid matrix size %q", args[0])
	}
	block, err := strconv.Atoi(args[1])
	if err != nil || block < 1 {
		return "", fmt.Errorf("invalid block size %q", args[1])
	}
	if size%block != 0 {
		return "", fmt.Errorf("matrix size %d not divisible by block size %d", size, block)
	}
	method, threads, err := methodThreads(args[2], args[3])
	if err != nil {
		return "", err
	}
	if method < 1 || method > 3 {
		return "", fmt.Errorf("unknown matmul method %d", method)
	}

	effective := threads
	if method == 3 {
		effective = 1
	}

	n := float64(size)
	base := n * n * n * 1e-9
	if method == 1 {
		base *= 0.8 // blocked variant is cache-friendlier
	}
	elapsed := synthElapsed(base, effective)

	return fmt.Sprintf("%d,%d,%.6f", method, threads, elapsed), nil
}

func methodThreads(methodArg, threadsArg string) (int, int, error) {
	method, err := strconv.Atoi(methodArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid method %q", methodArg)
	}
	threads, err := strconv.Atoi(threadsArg)
	if err != nil || threads < 1 {
		return 0, 0, fmt.Errorf("invalid thread count %q", threadsArg)
	}
	return method, threads, nil
}

// synthElapsed scales a base sequential time by Amdahl's law.
func synthElapsed(base float64, threads int) float64 {
	t := float64(threads)
	return base * ((1 - parallelFraction) + parallelFraction/t)
}
