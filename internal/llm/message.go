package llm

type MessageRole string

const (
	Assistant MessageRole = "assistant"
	User      MessageRole = "user"
	System    MessageRole = "system"
)

type Message struct {
	Role    MessageRole
	Content string
}

// Prompt builds a single-turn exchange: an optional system instruction
// followed by the user's text.
func Prompt(instruction, text string) []Message {
	msgs := make([]Message, 0, 2)
	if instruction != "" {
		msgs = append(msgs, Message{Role: System, Content: instruction})
	}
	return append(msgs, Message{Role: User, Content: text})
}
