package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console prints progress lines. Quiet consoles only print errors.
type Console struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

func NewConsole(quiet bool) *Console {
	return &Console{out: os.Stdout, errOut: os.Stderr, quiet: quiet}
}

// NewConsoleTo writes to the given writers instead of stdout and stderr.
func NewConsoleTo(out, errOut io.Writer, quiet bool) *Console {
	return &Console{out: out, errOut: errOut, quiet: quiet}
}

func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Quiet() bool {
	return c.quiet
}

func (c *Console) Step(format string, args ...interface{}) {
	c.line(c.out, color.New(color.FgBlue), "INFO", format, args...)
}

func (c *Console) Success(format string, args ...interface{}) {
	c.line(c.out, color.New(color.FgGreen), "SUCCESS", format, args...)
}

func (c *Console) Warn(format string, args ...interface{}) {
	c.line(c.out, color.New(color.FgYellow), "WARN", format, args...)
}

func (c *Console) Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(c.errOut, "ERROR ")
	fmt.Fprintf(c.errOut, format+"\n", args...)
}

func (c *Console) line(w io.Writer, prefix *color.Color, level string, format string, args ...interface{}) {
	if c.quiet {
		return
	}
	prefix.Fprintf(w, "%-7s ", level)
	fmt.Fprintf(w, format+"\n", args...)
}
