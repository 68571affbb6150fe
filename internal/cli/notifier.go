package cli

import (
	"fmt"
	"io"
)

// writerNotifier печатает уведомления доски в терминал
type writerNotifier struct {
	out io.Writer
}

func (n writerNotifier) Success(message string) {
	fmt.Fprintf(n.out, "✓ %s\n", message)
}

func (n writerNotifier) Error(message string) {
	fmt.Fprintf(n.out, "✗ %s\n", message)
}
