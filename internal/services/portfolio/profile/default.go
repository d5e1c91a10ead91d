package profile

// Default returns the built-in portfolio content. Each call builds a new
// record so callers never share slices.
func Default() Profile {
	return New(Profile{
		Name:     "Isabela Sucharski",
		Role:     "Frontend Developer (React, TypeScript)",
		Location: "Curitiba, Brazil",
		Intro:    "Desenvolvedora Frontend pleno com foco em React e experiências ricas em interfaces acessíveis, performáticas e testáveis.",
		Social: Social{
			LinkedIn: "https://www.linkedin.com/in/isabela-sucharaski-b2954a171",
			GitHub:   "https://github.com/yourusername",
			Resume:   "#",
		},
		Contact: Contact{
			Email: "isabela.sucharaski@example.com",
		},
		Skills: []string{
			"React",
			"TypeScript",
			"JavaScript (ES6+)",
			"HTML & CSS",
			"Tailwind CSS",
			"Testing (Jest/RTL)",
			"React Query / SWR",
			"Accessibility (a11y)",
		},
		Projects: []Project{
			{
				Title: "Dashboard UI - Food Company",
				Desc:  "Painel administrativo responsivo com gráficos e filtros dinâmicos. Implementado com React, TypeScript e Recharts.",
				Tech:  []string{"React", "TypeScript", "Tailwind", "Recharts"},
				Demo:  "#",
				Repo:  "#",
			},
			{
				Title: "Design System — Component Library",
				Desc:  "Biblioteca de componentes com tokens de design, variações e documentação Storybook.",
				Tech:  []string{"React", "Storybook", "Figma"},
				Demo:  "#",
				Repo:  "#",
			},
		},
	})
}
