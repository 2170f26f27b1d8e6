package service

import "fmt"

// BuildPrompt composes the user turn: the insight context, then the topic and
// the user's message quoted verbatim. Neither topic nor message is escaped;
// the directive travels separately on the system channel.
func BuildPrompt(insightContext, topic, userInput string) string {
	return fmt.Sprintf("%s\n\nCurrent topic: %s. User's message: \"%s\"", insightContext, topic, userInput)
}
