package page

import (
	"fmt"
	"os"

	"github.com/repify/repify/logger"
	"gopkg.in/yaml.v3"
)

// Problem is one card of the "content trap" section
type Problem struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Stage is one step of the process section
type Stage struct {
	Number string `yaml:"number"`
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
}

// Feature is one card of the feature grid
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Plan is one pricing card
type Plan struct {
	Title       string   `yaml:"title"`
	Price       string   `yaml:"price"`
	Features    []string `yaml:"features"`
	Recommended bool     `yaml:"recommended"`
}

// Copy is every piece of text the landing page displays
type Copy struct {
	Brand         string    `yaml:"brand"`
	Company       string    `yaml:"company"`
	Tagline       string    `yaml:"tagline"`
	HeroTitle     string    `yaml:"hero_title"`
	HeroHighlight string    `yaml:"hero_highlight"`
	HeroText      string    `yaml:"hero_text"`
	TrustedBy     string    `yaml:"trusted_by"`
	CalendarURL   string    `yaml:"calendar_url"`
	PoweredBy     string    `yaml:"powered_by"`
	Problems      []Problem `yaml:"problems"`
	Steps         []Stage   `yaml:"steps"`
	Features      []Feature `yaml:"features"`
	Plans         []Plan    `yaml:"plans"`
	Goals         []string  `yaml:"goals"`
}

// WithDefaultCopy returns the stock agency copy
func WithDefaultCopy() Copy {
	return Copy{
		Brand:         "Repify.",
		Company:       "Repify Agency",
		Tagline:       "AI-Powered Personal Branding",
		HeroTitle:     "Create Content",
		HeroHighlight: "Without a Camera",
		HeroText:      "We build a hyper-realistic AI clone of you. Generate a month's worth of videos in minutes. No filming. No retakes. Just scaling.",
		TrustedBy:     "Trusted by 100+ Founders",
		CalendarURL:   "https://calendly.com/",
		PoweredBy:     "Powered by Gemini 2.5 Flash",
		Problems: []Problem{
			{Icon: "camera", Title: "Camera Shy?", Text: "Spending hours setting up lights, memorizing scripts, and doing 50 takes just for one decent minute of video."},
			{Icon: "clock", Title: "No Time?", Text: "Running a business is a full-time job. Editing, captions, and posting takes time you simply don't have."},
			{Icon: "bar-chart", Title: "Inconsistent?", Text: "Algorithms punish inconsistency. But posting every day feels impossible without a dedicated team."},
		},
		Steps: []Stage{
			{Number: "01", Title: "The Calibration", Text: "Upload a 2-minute video of yourself speaking naturally. We use this to train our proprietary AI model on your face, voice, and mannerisms."},
			{Number: "02", Title: "The Strategy", Text: "Our content team (humans, not bots) researches your niche and creates a month's worth of viral hooks and scripts tailored to your brand."},
			{Number: "03", Title: "The Generation", Text: "We feed the scripts into your AI Clone. It generates perfect video, lip-synced and voiced by you. We edit, caption, and deliver."},
		},
		Features: []Feature{
			{Icon: "mic", Title: "Voice Cloning", Description: "We capture your tone, cadence, and accent perfectly. It sounds exactly like you, even in other languages."},
			{Icon: "video", Title: "4K Lip Sync", Description: "No awkward robotic mouths. Our tech ensures perfect lip synchronization with the audio track."},
			{Icon: "globe", Title: "Multi-Language", Description: "Want to reach a global audience? Your clone can speak Spanish, French, or Mandarin instantly."},
			{Icon: "sparkles", Title: "Auto-Editing", Description: "We don't just give you raw video. We add B-roll, captions, and dynamic cuts to retain attention."},
			{Icon: "zap", Title: "Instant Turnaround", Description: "From script approval to final video in less than 24 hours. Keep your feed active daily."},
			{Icon: "check-circle", Title: "Brand Consistency", Description: "Your clone never has a bad hair day, never gets sick, and always has perfect lighting."},
		},
		Plans: []Plan{
			{
				Title: "Starter",
				Price: "$1290",
				Features: []string{
					"Custom AI Avatar Creation",
					"15 Short-Form Videos / mo",
					"Script Writing Included",
					"Professional Editing & Captions",
					"48h Turnaround",
				},
			},
			{
				Title:       "Growth",
				Price:       "$1,997",
				Recommended: true,
				Features: []string{
					"Priority AI Model Training",
					"20 Short-Form Videos / mo",
					"Multi-Language Support (2 langs)",
					"Strategy Call Monthly",
					"Dedicated Account Manager",
				},
			},
			{
				Title: "Domination",
				Price: "$2,597",
				Features: []string{
					"Ultra-HD 4K Model",
					"Daily Short-Form (30 videos)",
					"Unlimited Languages",
					"Social Media Management & Posting",
					"Analytics Dashboard",
				},
			},
		},
		Goals: []string{
			"I want to save time",
			"I want to scale output",
			"I hate being on camera",
		},
	}
}

// WithYamlFile overlays the YAML file at path on the default content.
// Keys missing from the file keep their defaults; lists are replaced whole.
func WithYamlFile(path string) (Copy, error) {
	content := WithDefaultCopy()
	if path == "" {
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return content, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &content); err != nil {
		return WithDefaultCopy(), fmt.Errorf("failed to parse content file %s: %w", path, err)
	}

	logger.Infof("Using page content from YAML file: %s", path)
	return content, nil
}
