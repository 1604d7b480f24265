package prompt

// GetScriptPrompt embeds the topic verbatim in the user message
func GetScriptPrompt(topic string) string {
	return `Write a viral video script about: "` + topic + `"`
}
