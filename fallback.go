package folio

// Built-in records served by repositories whenever the remote store cannot
// (or does not yet) provide real ones. Each call returns a fresh copy.

func FallbackProjects() []Project {
	return []Project{
		{
			Id:          1,
			Title:       "Personal Blog",
			Description: "A responsive blog built with Next.js and Tailwind CSS",
			Link:        "https://example.com/blog",
			ImageUrl:    "https://via.placeholder.com/600x400?text=Blog+Project",
		},
		{
			Id:          2,
			Title:       "Weather App",
			Description: "Real-time weather application using OpenWeather API",
			Link:        "https://example.com/weather",
			ImageUrl:    "https://via.placeholder.com/600x400?text=Weather+App",
		},
		{
			Id:          3,
			Title:       "E-commerce Dashboard",
			Description: "Admin dashboard for managing products and orders",
			Link:        "https://example.com/dashboard",
			ImageUrl:    "https://via.placeholder.com/600x400?text=Dashboard",
		},
	}
}

// IsFallbackProjects reports whether projects look like FallbackProjects, so the
// page can hint that the projects table still needs to be provisioned.
func IsFallbackProjects(projects []Project) bool {
	fallback := FallbackProjects()
	if len(projects) != len(fallback) {
		return false
	}
	for i := range fallback {
		if projects[i].Title != fallback[i].Title {
			return false
		}
	}
	return true
}

func FallbackProfile() Profile {
	return Profile{
		Id:       1,
		Name:     "Portfolio Owner",
		Title:    "Video Editor & Thumbnail Designer",
		Bio:      "I blend technical skills with creative vision to build engaging digital experiences.",
		Location: "Earth",
	}
}

func FallbackHobbies() []Hobby {
	return []Hobby{
		{Id: 1, ProfileId: 1, Name: "Photography", Icon: IconCamera,
			Description: "Capturing beautiful moments and landscapes"},
		{Id: 2, ProfileId: 1, Name: "Reading", Icon: IconBookOpen,
			Description: "Exploring new worlds through books"},
		{Id: 3, ProfileId: 1, Name: "Hiking", Icon: IconMountain,
			Description: "Exploring nature and staying active"},
		{Id: 4, ProfileId: 1, Name: "Coding", Icon: IconCode,
			Description: "Building cool projects and learning new technologies"},
	}
}
