package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lorenzophys/pv-tracer/internal/display"
	"github.com/lorenzophys/pv-tracer/internal/tracer"
)

func (a *PVTracer) interactive(ctx context.Context, t *tracer.Tracer, printer *display.Printer, in io.Reader, out io.Writer) error {
	volumes, err := t.ListVolumes(ctx)
	if err != nil {
		return err
	}
	shown := printer.Volumes(volumes, true)

	fmt.Fprint(out, "\nPersistentVolume name (or row number): ")

	scanner := bufio.NewScanner(in)
	var input string
	if scanner.Scan() {
		input = scanner.Text()
	}
	fmt.Fprintln(out)

	volumeName := resolveSelection(input, shown)
	if volumeName == "" {
		return errEmptySelection
	}

	return a.trace(ctx, t, printer, volumeName)
}

// resolveSelection maps the user's input to a volume name. An exact name
// always wins over a row number.
func resolveSelection(input string, shown []tracer.Volume) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	for _, v := range shown {
		if v.Name == input {
			return input
		}
	}

	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(shown) {
		return shown[n-1].Name
	}

	return input
}
