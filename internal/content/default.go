package content

// Default builds the datasets rendered by the site. Each call returns fresh
// slices.
func Default() Portfolio {
	return Portfolio{
		Profile: Profile{
			Name:        ProfileName,
			Initials:    ProfileInitials,
			Location:    ProfileLocation,
			BioMarkdown: ProfileBio,
			MapImage:    MapImage,
		},
		Socials: []SocialLink{
			{Name: "LinkedIn", Href: "#", Icon: IconLinkedIn},
			{Name: "GitHub", Href: "#", Icon: IconGitHub},
			{Name: "Mail", Href: "#", Icon: IconMail},
		},
		Technologies: []Technology{
			{Name: "TS", Color: "bg-blue-500", TextColor: "text-white", Icon: "/assets/icons/typescript.svg"},
			{Name: "JS", Color: "bg-yellow-400", TextColor: "text-black", Icon: "/assets/icons/javascript.svg"},
			{Name: "React", Color: "bg-cyan-400", TextColor: "text-white", Icon: "/assets/icons/react.svg"},
			{Name: "Next", Color: "bg-black", TextColor: "text-white", Icon: "/assets/icons/nextjs.svg"},
			{Name: "Node", Color: "bg-green-600", TextColor: "text-white", Icon: "/assets/icons/nodejs.svg"},
			{Name: "Tailwind", Color: "bg-sky-500", TextColor: "text-white", Icon: "/assets/icons/tailwind.svg"},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "STATION UI - COMPONENT LIBRARY",
				Description: "Design System",
				Tags:        []string{"100+ Components", "Storybook", "TypeScript", "SCSS"},
				Image:       "/assets/images/project1.png",
				Company:     "TERRAFORM LABS",
			},
			{
				ID:          2,
				Title:       "ALLIANCE DAO NFT SITE",
				Description: "Frontend",
				Tags:        []string{"React", "TypeScript", "Figma", "SCSS"},
				Image:       "/assets/images/project2.png",
				Company:     "TERRAFORM LABS",
			},
			{
				ID:          3,
				Title:       "STATION LANDING PAGE",
				Description: "Solo Developer",
				Tags:        []string{"NextJS", "TypeScript", "Figma", "SCSS"},
				Image:       "/assets/images/project3.png",
				Company:     "TERRAFORM LABS",
			},
			{
				ID:          4,
				Title:       "STATION SETUP PAGE",
				Description: "Solo Developer",
				Tags:        []string{"NextJS", "JavaScript", "Figma", "SCSS"},
				Image:       "/assets/images/project4.png",
				Company:     "TERRAFORM LABS",
			},
			{
				ID:          5,
				Title:       "DEVELOPER PAGE FOR TERRA",
				Description: "Frontend + Design",
				Tags:        []string{"React", "TypeScript", "SCSS"},
				Image:       "/assets/images/project5.png",
				Company:     "TERRAFORM LABS",
			},
			{
				ID:          6,
				Title:       "ALLIANCE LANDING",
				Description: "Frontend + Design",
				Tags:        []string{"React", "TypeScript", "SCSS"},
				Image:       "/assets/images/project6.png",
				Company:     "TERRAFORM LABS",
			},
		},
		Experiences: []Experience{
			{Role: "Web Developer", Company: "Terraform Labs", Period: "2022 - Present", Type: Current},
			{Role: "Software Engineer", Company: "Verb Inc", Period: "2019 - 2022", Type: Past},
			{Role: "Jr Front-End Engineer", Company: "PNI Digital Media", Period: "2017 - 2019", Type: Past},
			{Role: "Software Engineer", Company: "Factom Inc", Period: "2018 - 2019", Type: Past},
		},
	}
}
