package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	fail  map[string]error
}

func (f *fakeExec) Prompt() string { return "ems> " }

func (f *fakeExec) Execute(_ context.Context, name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if name == "exit" {
		return errExit
	}
	return f.fail[name]
}

func TestRunREPL_DispatchesUntilExit(t *testing.T) {
	exec := &fakeExec{fail: map[string]error{
		"boom":  errors.New("local failure"),
		"docs":  &client.APIError{Kind: client.KindForbidden},
		"ghost": errUnknown,
	}}
	input := strings.Join([]string{
		"help",
		"",
		"   ",
		"employees 2",
		"boom",
		"docs expired",
		"ghost",
		"exit",
		"never-reached",
	}, "\n")
	var out bytes.Buffer

	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader(input)), &out)

	assert.Equal(t, []string{"help", "employees 2", "boom", "docs expired", "ghost", "exit"}, exec.calls)
	assert.Contains(t, out.String(), "Error: local failure")
	assert.Contains(t, out.String(), "Error: You do not have permission to perform this action")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader("help\nlast")), &out)
	assert.Equal(t, []string{"help", "last"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	exec := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	runREPL(ctx, exec, bufio.NewReader(strings.NewReader("help\n")), &out)
	assert.Empty(t, exec.calls)
}
