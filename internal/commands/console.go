package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Prompter is the line-oriented I/O boundary used by App.
type Prompter interface {
	Prompt(label string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
	Warn(message string)
}

// Console is a Prompter over a reader and a writer.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	colorize bool
}

var _ Prompter = (*Console)(nil)

// NewConsole builds a Console. colorize enables ANSI colors for warnings.
func NewConsole(in io.Reader, out io.Writer, colorize bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, colorize: colorize}
}

// Prompt writes label and reads one line without its terminator. A final line
// without a newline is returned as-is; io.EOF is returned only when nothing
// was read.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Warn prints message, in yellow when colors are enabled.
func (c *Console) Warn(message string) {
	if c.colorize {
		message = text.FgYellow.Sprint(message)
	}
	fmt.Fprintln(c.out, message)
}

func confirm(p Prompter, label string) (bool, error) {
	answer, err := p.Prompt(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
