package gitgate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the reviewer to approve an action. A nil Confirmer on
// the gate means no interactive channel exists.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// StdinConfirmer reads a confirmation from an input stream, blocking the
// invoking process until the reviewer answers. Only a literal "yes"
// (any case) approves.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.Out, "%s\nType 'yes' to continue: ", prompt)
	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}
