package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Prompt() string
	Execute(ctx context.Context, name string, args []string) error
}

// runREPL starts a read–eval–print loop.
//
// It prints the prompt, reads a line, parses the first token as the command
// and hands the rest to Execute. Errors are shown to the user and the loop
// carries on; it exits on EOF, on ctx cancellation, or when a command
// returns errExit.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprint(w, a.Prompt())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		err = a.Execute(ctx, parts[0], parts[1:])
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Error:", userMessage(err))
		}
	}
}

func userMessage(err error) string {
	return client.UserMessage(err)
}
