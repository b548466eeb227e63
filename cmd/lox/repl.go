package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"interpreter/internal"

	"github.com/chzyer/readline"
)

const (
	prompt   = "> "
	quitWord = ":quit"
)

// repl parses one expression per line until EOF or quitWord.
func repl(cfg internal.Config, p internal.IPrinter) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == quitWord {
			return nil
		}

		internal.RunSourceWithPrinter("", strings.NewReader(line), cfg, p)
	}
}
