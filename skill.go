package folio

type Skill struct {
	Name string
	// Proficiency in percent.
	Level       int
	Description string
}

func Skills() []Skill {
	return []Skill{
		{Name: "HTML, CSS, JS Coding", Level: 30, Description: "Learning Stage"},
		{Name: "Thumbnail Designing", Level: 60, Description: "Good Level"},
		{Name: "Video Editing", Level: 70, Description: "Professional Level"},
	}
}
