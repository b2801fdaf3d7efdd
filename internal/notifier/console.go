package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ConsoleNotifier prints the broadcast to a writer. It is always
// registered so a run with no webhooks configured still shows output.
type ConsoleNotifier struct {
	Out io.Writer
}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{Out: os.Stdout}
}

func (c *ConsoleNotifier) Name() string { return "console" }

func (c *ConsoleNotifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.Out, text)
	return err
}
