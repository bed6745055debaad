package utils

import "strings"

// AddToLogMessage appends one line to a per-request log builder. The
// built message is flushed once when the handler returns so a request
// logs as a single block.
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";")
	logMessagesBuilder.WriteString("\n")
}
