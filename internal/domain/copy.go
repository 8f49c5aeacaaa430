package domain

var copyPacks = map[Category]CopyPack{
	CategoryTools: {
		TitleTemplate: "{{name}} — Curated AI & Dev Tools (Coming Soon)",
		Description:   "Discover curated AI, developer, productivity, and automation tools — summarized and updated. Join the newsletter for early access.",
		Keywords:      "AI tools, developer tools, productivity tools, automation tools, SaaS directory",
	},
	CategorySummaries: {
		TitleTemplate: "{{name}} — AI Summaries & TL;DR (Coming Soon)",
		Description:   "High-signal AI summaries of tools, articles, videos, and trends. Subscribe for early access and weekly digests.",
		Keywords:      "AI summaries, TLDR, article summaries, video summaries, condensed knowledge",
	},
	CategoryDev: {
		TitleTemplate: "{{name}} — AI-Powered Web Development (Coming Soon)",
		Description:   "Modern Laravel + Vue development and AI automation services. Subscribe for launch updates and early client slots.",
		Keywords:      "Laravel developer, Vue.js developer, web development, freelance developer, AI automation",
	},
	CategoryHustle: {
		TitleTemplate: "{{name}} — Side Hustle Ideas You Can Ship (Coming Soon)",
		Description:   "Curated and automated side-hustle ideas with tools and mini playbooks. Subscribe for the weekly digest.",
		Keywords:      "side hustle ideas, business ideas, make money online, automation",
	},
	CategoryExperiments: {
		TitleTemplate: "{{name}} — Experiments in Tech & AI (Coming Soon)",
		Description:   "A living lab of small experiments in tech, AI, and growth. Subscribe to follow along and get updates.",
		Keywords:      "tech experiments, AI experiments, indie projects, maker",
	},
	CategoryDiscworld: {
		TitleTemplate: "{{name}} — Discworld Fan Hub (Coming Soon)",
		Description:   "A curated Discworld fan hub for lore, roleplay, and community projects. Subscribe for launch updates.",
		Keywords:      "Discworld, Scheibenwelt, Ankh-Morpork, Terry Pratchett, roleplay",
	},
	CategoryWhimsy: {
		TitleTemplate: "{{name}} — Whimsical Internet Project (Coming Soon)",
		Description:   "A playful, experimental corner of the internet. Subscribe to see what emerges next.",
		Keywords:      "whimsical project, creative experiments, cute animals",
	},
	CategoryTravel: {
		TitleTemplate: "{{name}} — Smart Travel Mini Guides (Coming Soon)",
		Description:   "Travel inspiration with short, useful mini guides and curated links. Subscribe for early access.",
		Keywords:      "travel inspiration, mini guides, weekend trips, itineraries",
	},
	CategoryCommunity: {
		TitleTemplate: "{{name}} — A Community in the Making (Coming Soon)",
		Description:   "A small, friendly community for makers and curious minds. Subscribe to get an invite when the doors open.",
		Keywords:      "online community, forum, meetups, makers, members",
	},
	CategoryProductivity: {
		TitleTemplate: "{{name}} — Practical Productivity Systems (Coming Soon)",
		Description:   "Focused workflows, planners, and automation tips that save real time. Subscribe for early access and templates.",
		Keywords:      "productivity, workflows, planning, focus, automation tips",
	},
	CategoryPersonalBrand: {
		TitleTemplate: "{{name}} — Portfolio & Projects (Coming Soon)",
		Description:   "Projects, case studies, and writing from a web developer building with Laravel, Vue, and AI. Subscribe for updates.",
		Keywords:      "portfolio, web developer, case studies, projects, personal website",
	},
	CategoryMottoBrand: {
		TitleTemplate: "{{name}} — A Motto Worth Sharing (Coming Soon)",
		Description:   "A small brand built around one idea, with prints, notes, and stories. Subscribe to hear when it launches.",
		Keywords:      "motto, brand, quotes, inspiration, merchandise",
	},
	CategoryGeneric: {
		TitleTemplate: "{{name}} — New Project Launching Soon",
		Description:   "A new project is launching soon. Subscribe for early access and launch updates.",
		Keywords:      "coming soon, newsletter, launch",
	},
}

// SelectCopy returns the copy pack for a category. Unknown categories get the
// generic pack.
func SelectCopy(c Category) CopyPack {
	if p, ok := copyPacks[c]; ok {
		return p
	}
	return copyPacks[CategoryGeneric]
}
