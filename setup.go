package folio

import "context"

// TableProber checks whether a remote table exists and is readable.
type TableProber interface {
	// ErrTableMissing when the table was not provisioned.
	Probe(ctx context.Context, table string) error
}

// Sample rows inserted when the projects table is provisioned.
func SampleProjects() []ProjectFields {
	fallback := FallbackProjects()
	fields := make([]ProjectFields, len(fallback))
	for i, p := range fallback {
		fields[i] = ProjectFields{
			Title:       p.Title,
			Description: p.Description,
			Link:        p.Link,
			ImageUrl:    p.ImageUrl,
		}
	}
	return fields
}

const ProjectsTableSQL = `CREATE TABLE IF NOT EXISTS projects (
  id SERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  link TEXT NOT NULL,
  image_url TEXT,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT TIMEZONE('utc', NOW()),
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT TIMEZONE('utc', NOW())
);`

const ProfilesTableSQL = `CREATE TABLE IF NOT EXISTS profiles (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  title TEXT NOT NULL,
  bio TEXT,
  location TEXT,
  avatar_url TEXT,
  resume_url TEXT,
  email TEXT,
  phone TEXT,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT TIMEZONE('utc', NOW()),
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT TIMEZONE('utc', NOW())
);`

const HobbiesTableSQL = `CREATE TABLE IF NOT EXISTS hobbies (
  id SERIAL PRIMARY KEY,
  profile_id INTEGER,
  name TEXT NOT NULL,
  icon TEXT,
  description TEXT,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT TIMEZONE('utc', NOW()),
  updated_at TIMESTAMP WITH TIME ZONE DEFAULT TIMEZONE('utc', NOW())
);

-- Insert some sample hobbies
INSERT INTO hobbies (profile_id, name, icon, description)
VALUES
  (1, 'Photography', 'camera', 'Capturing beautiful moments and landscapes'),
  (1, 'Reading', 'book-open', 'Exploring new worlds through books'),
  (1, 'Hiking', 'mountain', 'Exploring nature and staying active'),
  (1, 'Coding', 'code', 'Building cool projects and learning new technologies');`
