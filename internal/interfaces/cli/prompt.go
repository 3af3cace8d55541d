package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type prompter struct {
	in     *bufio.Reader
	out    io.Writer
	stdin  io.Reader
	isTerm func(fd int) bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, stdin: in, isTerm: term.IsTerminal}
}

// ask prints label and reads one line. Secrets are read without echo when
// input is a terminal.
func (p *prompter) ask(label string, secret bool) (string, error) {
	fmt.Fprint(p.out, label)

	if f, ok := p.stdin.(*os.File); ok && secret && p.isTerm(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
