package ui

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/ratel-online/diamonds/diamonds/card/suit"
)

// Console is the terminal a local player sits at. It is passed explicitly to
// everything that reads or writes it.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	delay time.Duration
}

func NewConsole(in io.Reader, out io.Writer, delay time.Duration) *Console {
	if out == nil {
		out = suit.Stdout
	}
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		delay: delay,
	}
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// Print writes text that already ends with its own line break.
func (c *Console) Print(text string) {
	fmt.Fprint(c.out, text)
}

// Pause holds the screen so a resolved round can be read.
func (c *Console) Pause() {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}
