// Package page renders the agency landing page with gomponents.
package page

import (
	_ "embed"
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

//go:embed assets/app.js
var appJS string

// Layout wraps the page sections in the HTML5 document shell
func Layout(content Copy, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       content.Company + " | " + content.Tagline,
		Description: content.HeroText,
		Language:    "en",
		Head: []g.Node{
			Script(Src("https://cdn.tailwindcss.com")),
			Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js")),
		},
		Body: []g.Node{
			Class("min-h-screen bg-slate-950 text-slate-200 font-sans"),
			g.Group(body),
			Script(g.Raw(appJS)),
		},
	})
}

// Landing composes every landing section in display order
func Landing(content Copy, year int) g.Node {
	return Layout(content,
		navbar(content),
		Main(
			hero(content),
			problems(content),
			process(content),
			scriptTool(content),
			features(content),
			pricing(content),
			contactSection(content),
		),
		footer(content, year),
		videoModal(),
	)
}

// Render writes the landing page for the given copyright year to w
func Render(w io.Writer, content Copy, year int) error {
	return Landing(content, year).Render(w)
}
