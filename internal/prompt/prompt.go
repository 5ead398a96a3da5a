// Package prompt asks the user synchronous questions on the console: yes/no
// confirmations before destructive steps, a line of input, and a final
// "press enter" pause.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Default selects the answer used when the user just presses Enter.
type Default int

const (
	NoDefault  Default = iota // Ask again on an empty answer.
	DefaultYes                // Empty answer means yes.
	DefaultNo                 // Empty answer means no.
)

// Prompter reads answers from in and writes questions to out. With
// assumeYes set, confirmations are answered yes without asking.
type Prompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer, assumeYes bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

// Confirm asks a yes/no question and reports whether the answer was yes.
// Answers are case-insensitive and accept y, yes, n, and no; anything else
// repeats the question. An empty line selects the default. When input ends
// without an answer the result is no, whatever the default.
func (p *Prompter) Confirm(question string, def Default) bool {
	if p.assumeYes {
		return true
	}
	suffix := ""
	switch def {
	case DefaultYes:
		suffix = " [y]"
	case DefaultNo:
		suffix = " [n]"
	}
	for {
		fmt.Fprintf(p.out, "%s%s: ", question, suffix)
		answer, err := p.readLine()
		if err != nil {
			fmt.Fprintln(p.out, "(no input, answering no)")
			return false
		}
		switch normalizeAnswer(answer) {
		case "y":
			return true
		case "n":
			return false
		case "":
			if def != NoDefault {
				return def == DefaultYes
			}
		}
	}
}

// Line shows label, then a "> " prompt, and returns the trimmed answer.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintln(p.out, label)
	fmt.Fprint(p.out, "> ")
	line, err := p.readLine()
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

// Wait shows msg and blocks until Enter is pressed or input ends.
func (p *Prompter) Wait(msg string) {
	fmt.Fprint(p.out, msg)
	_, _ = p.readLine()
}

// readLine returns the next input line without its line ending. A final
// line without a newline is returned together with io.EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return strings.TrimSpace(line), err
	}
	return strings.TrimSpace(line), nil
}

func normalizeAnswer(s string) string {
	switch strings.ToLower(s) {
	case "y", "yes":
		return "y"
	case "n", "no":
		return "n"
	case "":
		return ""
	}
	return "?"
}
