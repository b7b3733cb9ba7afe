package main

import (
	"fmt"
	"io"
	"strconv"
)

type rgbColor struct{ r, g, b uint8 }

var (
	colorTop   = rgbColor{135, 255, 175}
	colorBelow = rgbColor{0, 128, 255}
)

func (c rgbColor) bold(s string) string {
	return fmt.Sprintf("\x1b[1;38;2;%d;%d;%dm%s\x1b[0m", c.r, c.g, c.b, s)
}

// swatch renders a block of background color.
func swatch(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m", r, g, b)
}

// stackPrinter writes a stack bottom first, one indented value per line.
type stackPrinter struct {
	color  bool
	levels bool
}

func (pr stackPrinter) print(w io.Writer, stack []string) error {
	width := len(strconv.Itoa(len(stack)))
	for i, val := range stack {
		level := len(stack) - i
		if pr.color {
			if level == 1 {
				val = colorTop.bold(val)
			} else {
				val = colorBelow.bold(val)
			}
		}
		var err error
		if pr.levels {
			_, err = fmt.Fprintf(w, "  %*d: %v\n", width, level, val)
		} else {
			_, err = fmt.Fprintf(w, "  %v\n", val)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
