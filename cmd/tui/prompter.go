package main

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

var errPrompterUnbound = errors.New("prompter is not attached to a program")

type promptReply struct {
	seconds int
	ok      bool
}

// promptRequestMsg asks the model to collect a custom duration and answer on reply.
type promptRequestMsg struct {
	reply chan<- promptReply
}

// programPrompter forwards duration requests to a running bubbletea program.
type programPrompter struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (prompter *programPrompter) bind(send func(tea.Msg)) {
	prompter.mu.Lock()
	defer prompter.mu.Unlock()
	prompter.send = send
}

func (prompter *programPrompter) RequestDuration(ctx context.Context) (int, bool, error) {
	prompter.mu.Lock()
	send := prompter.send
	prompter.mu.Unlock()
	if send == nil {
		return 0, false, errPrompterUnbound
	}

	reply := make(chan promptReply, 1)
	send(promptRequestMsg{reply: reply})

	select {
	case result := <-reply:
		return result.seconds, result.ok, nil
	case <-ctx.Done():
		return 0, false, ctx.Err()
	}
}
