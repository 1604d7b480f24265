package page

import (
	"fmt"

	"github.com/repify/repify/script"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const accent = "#ff4040"

func icon(name, class string) g.Node {
	return Span(Class("iconify "+class), g.Attr("data-icon", "lucide:"+name))
}

func primaryButton(extraClass string, children ...g.Node) g.Node {
	return Button(
		Class("px-8 py-3 rounded-full font-bold transition-all duration-300 hover:scale-105 disabled:opacity-50 disabled:cursor-not-allowed bg-["+accent+"] text-white hover:bg-red-600 inline-flex items-center justify-center gap-2 "+extraClass),
		g.Group(children),
	)
}

func calendarLink(url, class string, children ...g.Node) g.Node {
	return A(
		Href(url),
		Target("_blank"),
		Rel("noopener"),
		Class(class),
		g.Group(children),
	)
}

func navbar(cp Copy) g.Node {
	links := []struct{ target, label string }{
		{"process", "How it Works"},
		{"ai-tool", "AI Tool"},
		{"features", "Features"},
		{"pricing", "Pricing"},
	}

	navLinks := g.Map(links, func(l struct{ target, label string }) g.Node {
		return A(Href("#"+l.target), Class("hover:text-["+accent+"] transition-colors"), g.Text(l.label))
	})

	return Nav(
		ID("navbar"),
		Class("fixed top-0 left-0 right-0 z-50 transition-all duration-300 py-6"),
		Div(
			Class("max-w-7xl mx-auto px-6 flex items-center justify-between"),
			A(Href("#"), Class("text-2xl font-bold text-["+accent+"] tracking-tight"), g.Text(cp.Brand)),
			Div(
				Class("hidden md:flex items-center gap-8"),
				navLinks,
				calendarLink(cp.CalendarURL, "px-8 py-3 rounded-full font-bold bg-["+accent+"] text-white", g.Text("Book a Demo")),
			),
			Button(ID("menu-toggle"), Class("md:hidden text-white"), Aria("label", "Toggle menu"), icon("menu", "w-6 h-6")),
		),
		Div(
			ID("mobile-menu"),
			Class("hidden md:hidden absolute top-full left-0 w-full bg-slate-900 border-b border-slate-800 p-6 flex flex-col gap-4"),
			navLinks,
			calendarLink(cp.CalendarURL, "px-8 py-3 rounded-full font-bold bg-["+accent+"] text-white text-center", g.Text("Book a Demo")),
		),
	)
}

func hero(cp Copy) g.Node {
	return Section(
		ID("hero"),
		Class("relative pt-32 pb-20 md:pt-48 md:pb-32 px-6"),
		Div(
			Class("max-w-7xl mx-auto grid md:grid-cols-2 gap-12 items-center"),
			Div(
				Class("space-y-8"),
				Div(
					Class("inline-flex items-center gap-2 px-3 py-1 rounded-full bg-slate-900 border border-slate-700 text-["+accent+"] text-sm font-medium"),
					icon("sparkles", "w-4 h-4"),
					Span(g.Text(cp.Tagline)),
				),
				H1(
					Class("text-5xl md:text-7xl font-bold text-white leading-tight"),
					g.Text(cp.HeroTitle), Br(),
					Span(Class("text-["+accent+"]"), g.Text(cp.HeroHighlight)),
				),
				P(Class("text-xl text-slate-400 max-w-lg"), g.Text(cp.HeroText)),
				Div(
					Class("flex flex-col sm:flex-row gap-4"),
					A(Href("#process"), Class("px-8 py-3 rounded-full font-bold bg-["+accent+"] text-white text-center"), g.Text("Clone Yourself")),
					Button(ID("open-demo"), Class("px-8 py-3 rounded-full font-bold bg-slate-800 text-slate-200 border border-slate-700 inline-flex items-center gap-2"),
						icon("play", "w-4 h-4"), g.Text("Watch Demo"),
					),
				),
				P(Class("text-sm text-slate-500"), g.Text(cp.TrustedBy)),
			),
			Div(
				Class("relative bg-slate-900 border border-slate-800 rounded-2xl p-8 text-center"),
				Span(Class("text-["+accent+"] text-xs font-mono uppercase tracking-widest"), g.Text("Synthesizing Voice...")),
				Div(Class("mt-8 flex justify-around text-left"),
					stat("Time Saved", "12 Hrs/Week"),
					stat("Videos Generated", "30 Shorts/Mo"),
				),
			),
		),
	)
}

func stat(label, value string) g.Node {
	return Div(
		Div(Class("text-xs text-slate-400"), g.Text(label)),
		Div(Class("font-bold text-white"), g.Text(value)),
	)
}

func problems(cp Copy) g.Node {
	return Section(
		ID("problem"),
		Class("py-20 bg-slate-900/30 border-y border-slate-800"),
		Div(
			Class("max-w-7xl mx-auto px-6 text-center"),
			H2(Class("text-3xl md:text-4xl font-bold mb-16 text-white"), g.Text(`The "Content Trap" is Real`)),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Map(cp.Problems, func(p Problem) g.Node {
					return Div(
						Class("p-8 rounded-2xl bg-slate-950 border border-slate-800"),
						icon(p.Icon, "w-8 h-8 text-slate-500 mb-6"),
						H3(Class("text-xl font-bold mb-3 text-white"), g.Text(p.Title)),
						P(Class("text-slate-400"), g.Text(p.Text)),
					)
				}),
			),
		),
	)
}

func process(cp Copy) g.Node {
	return Section(
		ID("process"),
		Class("py-24 px-6"),
		Div(
			Class("max-w-7xl mx-auto grid md:grid-cols-2 gap-16 items-center"),
			Div(
				H2(Class("text-3xl md:text-5xl font-bold mb-6 text-white"),
					g.Text("The "), Span(Class("text-["+accent+"]"), g.Text(cp.Company)), g.Text(" System"),
				),
				P(Class("text-lg text-slate-400 mb-12"), g.Text("We've streamlined the process. You do the work once, and our AI engines work for you forever.")),
				g.Map(cp.Steps, func(s Stage) g.Node {
					return Div(
						Class("md:border-l-2 md:border-slate-800 md:pl-8 pb-12 last:pb-0"),
						Span(Class("text-["+accent+"] font-bold"), g.Text(s.Number)),
						H3(Class("text-xl font-bold text-white mb-2"), g.Text(s.Title)),
						P(Class("text-slate-400"), g.Text(s.Text)),
					)
				}),
			),
			Div(
				Class("bg-slate-950 rounded-lg p-4 border border-slate-800 font-mono text-xs text-slate-500"),
				Div(Class("mb-2"), g.Text("generator_log.txt")),
				P(g.Text("> Initializing voice synthesis...")),
				P(g.Text("> Mapping facial geometry...")),
				P(g.Text("> Rendering texture (4k)...")),
				P(Span(Class("text-white"), g.Text("> Output: viral_short_01.mp4 generated successfully."))),
			),
		),
	)
}

func scriptTool(cp Copy) g.Node {
	return Section(
		ID("ai-tool"),
		Class("py-24 bg-slate-900 relative border-y border-slate-800"),
		Div(
			Class("max-w-4xl mx-auto px-6"),
			Div(
				Class("text-center mb-12"),
				Div(Class("inline-flex items-center gap-2 px-3 py-1 rounded-full bg-slate-950 border border-slate-700 text-sm mb-6"),
					icon("sparkles", "w-4 h-4"), Span(g.Text(cp.PoweredBy)),
				),
				H2(Class("text-3xl md:text-5xl font-bold mb-6 text-white"),
					g.Text("Test Drive Our "), Span(Class("text-["+accent+"]"), g.Text("AI Script Writer")),
				),
				P(Class("text-lg text-slate-400"), g.Text("Experience the power of our viral script engines. Enter a topic, and watch us structure a high-retention video for you in seconds.")),
			),
			Div(
				Class("bg-slate-950 border border-slate-800 rounded-2xl p-6 md:p-8"),
				Form(
					ID("script-form"),
					Class("flex flex-col md:flex-row gap-4 mb-8"),
					Input(
						ID("topic"),
						Name("topic"),
						Type("text"),
						g.Attr("maxlength", fmt.Sprint(script.MaxTopicLength)),
						AutoComplete("off"),
						Placeholder("E.g., How to start a coffee shop, Real estate tips, Morning routine..."),
						Class("flex-grow bg-slate-900 border border-slate-700 rounded-xl px-5 py-4 text-white placeholder-slate-500 focus:outline-none"),
					),
					primaryButton("", ID("generate"), Type("submit"), Disabled(),
						icon("sparkles", "w-5 h-5"), Span(ID("generate-label"), g.Text("Generate Script")),
					),
				),
				Div(ID("script-error"), Class("hidden mb-6 p-4 bg-red-900/20 border border-red-500/50 rounded-xl text-red-200 text-sm"), Role("alert")),
				Div(
					ID("script-output"),
					Class("hidden"),
					Div(Class("flex items-center justify-between mb-4"),
						H3(Class("text-white font-bold flex items-center gap-2"), icon("message-square", "w-5 h-5"), g.Text("Generated Script")),
						Button(ID("copy-script"), Type("button"), Class("text-sm text-slate-400 hover:text-white inline-flex items-center gap-1"),
							icon("copy", "w-4 h-4"), g.Text("Copy"),
						),
					),
					Pre(ID("script-text"), Class("bg-slate-900/50 rounded-xl p-6 border border-slate-800 font-mono text-sm whitespace-pre-wrap text-slate-300")),
				),
				Div(ID("script-empty"), Class("text-center py-12 text-slate-600"),
					icon("zap", "w-8 h-8"),
					P(g.Text("Your viral script will appear here.")),
				),
			),
		),
	)
}

func features(cp Copy) g.Node {
	return Section(
		ID("features"),
		Class("py-20 bg-slate-900/50"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(Class("text-center mb-16"),
				H2(Class("text-3xl md:text-4xl font-bold mb-4 text-white"), g.Text("Everything You Need To Dominate")),
				P(Class("text-slate-400"), g.Text("More than just an avatar. A complete production ecosystem.")),
			),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(cp.Features, func(f Feature) g.Node {
					return Div(
						Class("p-6 rounded-2xl bg-slate-900/50 border border-slate-800"),
						icon(f.Icon, "w-6 h-6 text-["+accent+"] mb-4"),
						H3(Class("text-xl font-bold text-white mb-2"), g.Text(f.Title)),
						P(Class("text-slate-400 leading-relaxed"), g.Text(f.Description)),
					)
				}),
			),
		),
	)
}

func pricingCard(calendarURL string, plan Plan) g.Node {
	border := "border-slate-800 bg-slate-900/40"
	if plan.Recommended {
		border = "border-[" + accent + "] bg-slate-900/80"
	}

	return Div(
		Class("relative p-8 rounded-3xl border flex flex-col "+border),
		g.If(plan.Recommended,
			Div(Class("absolute -top-4 left-1/2 -translate-x-1/2 bg-["+accent+"] text-white px-4 py-1 rounded-full text-sm font-bold"), g.Text("Most Popular")),
		),
		H3(Class("text-2xl font-bold text-white mb-2"), g.Text(plan.Title)),
		Div(Class("text-4xl font-bold text-white mb-6"),
			g.Text(plan.Price), Span(Class("text-lg text-slate-500 font-normal"), g.Text("/mo")),
		),
		Ul(Class("flex-grow space-y-4 mb-8"),
			g.Map(plan.Features, func(feat string) g.Node {
				return Li(Class("flex items-start gap-3 text-slate-300 text-sm"), icon("check-circle", "w-5 h-5 text-["+accent+"]"), g.Text(feat))
			}),
		),
		calendarLink(calendarURL, "w-full px-8 py-3 rounded-full font-bold text-center bg-slate-800 text-slate-200", g.Text("Get Started")),
	)
}

func pricing(cp Copy) g.Node {
	return Section(
		ID("pricing"),
		Class("py-24 px-6"),
		Div(
			Class("max-w-7xl mx-auto text-center"),
			H2(Class("text-3xl md:text-4xl font-bold mb-4 text-white"), g.Text("Simple Pricing. Infinite Scale.")),
			P(Class("text-slate-400 mb-16"), g.Text("Choose the package that fits your growth goals.")),
			Div(
				Class("grid md:grid-cols-3 gap-8 text-left"),
				g.Map(cp.Plans, func(p Plan) g.Node { return pricingCard(cp.CalendarURL, p) }),
			),
		),
	)
}

func contactSection(cp Copy) g.Node {
	field := "w-full bg-slate-950 border border-slate-800 rounded-lg px-4 py-3 text-white focus:outline-none"

	return Section(
		ID("contact"),
		Class("py-24 px-6"),
		Div(
			Class("max-w-4xl mx-auto text-center"),
			H2(Class("text-4xl md:text-5xl font-bold mb-8 text-white"), g.Text("Ready to Clone Yourself?")),
			P(Class("text-xl text-slate-400 mb-12"), g.Text("Join the waitlist or book a discovery call. We only onboard 5 new clients per month to ensure quality.")),
			Div(
				Class("bg-slate-900 p-8 rounded-2xl border border-slate-800 text-left max-w-xl mx-auto"),
				Form(
					Method("post"),
					Action("/contact"),
					Target("_blank"),
					Class("space-y-4"),
					Div(
						Label(For("name"), Class("block text-sm text-slate-400 mb-1"), g.Text("Full Name")),
						Input(ID("name"), Name("name"), Type("text"), Class(field), Placeholder("John Doe")),
					),
					Div(
						Label(For("email"), Class("block text-sm text-slate-400 mb-1"), g.Text("Email Address")),
						Input(ID("email"), Name("email"), Type("email"), Class(field), Placeholder("john@company.com")),
					),
					Div(
						Label(For("goal"), Class("block text-sm text-slate-400 mb-1"), g.Text("Content Goal")),
						Select(ID("goal"), Name("goal"), Class(field),
							g.Map(cp.Goals, func(goal string) g.Node { return Option(Value(goal), g.Text(goal)) }),
						),
					),
					primaryButton("w-full", Type("submit"), g.Text("Secure Your Spot"), icon("calendar", "w-5 h-5")),
				),
				P(Class("text-center text-xs text-slate-500 mt-4"), g.Text("No credit card required for consultation.")),
			),
		),
	)
}

func footer(cp Copy, year int) g.Node {
	return Footer(
		Class("bg-slate-950 border-t border-slate-900 py-12"),
		Div(
			Class("max-w-7xl mx-auto px-6 flex flex-col md:flex-row justify-between items-center gap-6"),
			Span(Class("text-xl font-bold text-["+accent+"]"), g.Text(cp.Brand)),
			Div(Class("text-slate-500 text-sm"), g.Textf("© %d %s. All rights reserved.", year, cp.Company)),
			Div(Class("flex gap-6 text-slate-500"),
				A(Href("#"), g.Text("Privacy")),
				A(Href("#"), g.Text("Terms")),
				A(Href("#"), g.Text("Twitter")),
			),
		),
	)
}

func videoModal() g.Node {
	return Div(
		ID("demo-modal"),
		Class("hidden fixed inset-0 z-[60] bg-black/90 backdrop-blur-sm flex items-center justify-center p-4"),
		Div(
			Class("bg-slate-900 w-full max-w-4xl aspect-video rounded-2xl border border-slate-700 relative flex items-center justify-center"),
			Button(ID("close-demo"), Class("absolute -top-12 right-0 text-white hover:text-["+accent+"] inline-flex items-center gap-2"),
				g.Text("Close"), icon("x", "w-5 h-5"),
			),
			Div(Class("text-center"),
				icon("play", "w-10 h-10 text-["+accent+"]"),
				H3(Class("text-2xl font-bold text-white"), g.Text("Demo Reel Placeholder")),
				P(Class("text-slate-400"), g.Text("Integrate your VSL or demo video here.")),
			),
		),
	)
}
