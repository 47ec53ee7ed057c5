package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Prompter reads answers line by line and writes coloured output.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool

	title   *color.Color
	success *color.Color
	failure *color.Color
	muted   *color.Color
}

// NewPrompter reads from in and writes to out. When in is a terminal,
// secrets are read without echo; colours are only used when out is one.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		muted:   color.New(color.Faint),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd, p.tty = int(f.Fd()), true
	}
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		for _, c := range []*color.Color{p.title, p.success, p.failure, p.muted} {
			c.DisableColor()
		}
	}
	return p
}

// Ask prints label and returns the trimmed answer. io.EOF is returned when
// the input ends before a newline-terminated answer.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Secret reads a PIN without echo on a terminal, as a plain line otherwise.
func (p *Prompter) Secret(label string) (string, error) {
	if !p.tty {
		return p.Ask(label)
	}
	fmt.Fprintf(p.out, "%s: ", label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Choose prints numbered options and returns the 1-based choice, or 0 when
// the answer is not one of them.
func (p *Prompter) Choose(options ...string) (int, error) {
	for i, o := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, o)
	}
	answer, err := p.Ask("Choose an option")
	if err != nil {
		return 0, err
	}
	for i := range options {
		if answer == fmt.Sprint(i+1) {
			return i + 1, nil
		}
	}
	return 0, nil
}

func (p *Prompter) Title(s string) {
	p.title.Fprintf(p.out, "\n== %s ==\n", s)
}

func (p *Prompter) Success(format string, args ...any) {
	p.success.Fprintf(p.out, format+"\n", args...)
}

func (p *Prompter) Failure(format string, args ...any) {
	p.failure.Fprintf(p.out, format+"\n", args...)
}

func (p *Prompter) Note(format string, args ...any) {
	p.muted.Fprintf(p.out, format+"\n", args...)
}

func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
