package prompt

import "fmt"

// MaxScriptWords is the word ceiling given to the model
const MaxScriptWords = 150

// GetSystemPrompt returns the fixed script-writer instruction. A language other
// than en-US adds one line asking for the script in that language.
func GetSystemPrompt(language string) string {
	basePrompt := `You are an expert viral video scriptwriter for TikTok, Instagram Reels, and YouTube Shorts.
Your goal is to write a high-retention script based on the user's topic.
Format the output clearly with these sections:
1. HOOK (0-3s): Attention-grabbing visual or statement.
2. BODY (3-45s): Deliver value, story, or entertainment concisely.
3. CTA (45-60s): Call to Action.
Use a conversational, punchy tone. Do not use hashtags. Keep it under ` + fmt.Sprint(MaxScriptWords) + ` words total.`

	if language != "" && language != "en-US" {
		basePrompt += fmt.Sprintf("\n- Write the script in %s.", language)
	}

	return basePrompt
}
