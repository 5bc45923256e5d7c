// Package respond orchestrates the provider fallback chain and the
// deterministic local responder behind it.
package respond

import "fmt"

// Mode selects a response style for a request.
type Mode string

const (
	ModeChat     Mode = "chat"
	ModeResearch Mode = "research"
	ModeThinking Mode = "thinking"
	ModeShopping Mode = "shopping"
	ModeImage    Mode = "image"
)

// ParseMode validates a mode selector, defaulting to chat.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeChat, ModeResearch, ModeThinking, ModeShopping, ModeImage:
		return Mode(s), nil
	case "":
		return ModeChat, nil
	default:
		return "", fmt.Errorf("unknown mode %q (supported: chat, research, thinking, shopping, image)", s)
	}
}

// modePreambles are the instructional blocks prepended to the outgoing
// message. Chat is the identity transform; image never reaches a
// provider because the orchestrator short-circuits it upstream.
var modePreambles = map[Mode]string{
	ModeResearch: "[DEEP RESEARCH MODE]: You are a specialized research assistant. Provide detailed, well-sourced, and comprehensive answers. Break down complex topics.",
	ModeThinking: "[THINKING MODE]: You are a logical reasoning assistant. Show your chain of thought step-by-step before providing the final answer.",
	ModeShopping: "[SHOPPING ASSISTANT]: You are a helpful shopping guide for government procurement and local Sierra Leonean businesses. Suggest prices, locations, and quality checks.",
}

// Augment rewrites the message with the mode's instruction block. It is
// a pure text transform.
func Augment(message string, mode Mode) string {
	preamble, ok := modePreambles[mode]
	if !ok {
		return message
	}
	return fmt.Sprintf("%s\n\nUser Query: %s", preamble, message)
}
