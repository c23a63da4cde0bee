package smiles

// Command is a side effect a handler asks the Application to perform once the
// handler returns. Handlers never touch the application directly.
type Command any

// BatchCommand runs its commands in order.
type BatchCommand []Command

// AppendCommand returns a command running current and then next. Nil
// commands are dropped and batches are flattened, so appending never nests.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	var batch BatchCommand
	for _, cmd := range [2]Command{current, next} {
		if inner, ok := cmd.(BatchCommand); ok {
			batch = append(batch, inner...)
		} else {
			batch = append(batch, cmd)
		}
	}
	return batch
}

// SetFocusCommand focuses Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand redraws the screen after the event.
type RedrawCommand struct{}

// QuitCommand stops the event loop.
type QuitCommand struct{}

// SetTitleCommand sets the terminal window title.
type SetTitleCommand string

// ConsumeEventCommand marks the event as handled without any other effect.
// Modal layers return it for clicks their content ignores.
type ConsumeEventCommand struct{}

// consumed reports whether a container should stop offering the event to
// further children.
func consumed(cmd Command) bool {
	return cmd != nil
}
