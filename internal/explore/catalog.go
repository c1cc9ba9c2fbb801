// Package explore holds the curated starter-concept catalog shown when
// a user doesn't know what to ask about.
package explore

// Category groups related starter concepts.
type Category struct {
	ID       string
	Name     string
	Icon     string
	Concepts []string
}

// Categories returns the full catalog in display order.
func Categories() []Category {
	return catalog
}

// Find returns the category with the given id.
func Find(id string) (Category, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

var catalog = []Category{
	{
		ID:   "frontend",
		Name: "Frontend Development",
		Icon: "🎨",
		Concepts: []string{
			"HTML", "CSS", "JavaScript", "React", "Vue", "Angular",
			"TypeScript", "DOM", "Virtual DOM", "State Management",
		},
	},
	{
		ID:   "backend",
		Name: "Backend Development",
		Icon: "⚙️",
		Concepts: []string{
			"Node.js", "Express", "API", "REST API", "GraphQL",
			"Middleware", "Authentication", "Authorization", "JWT", "OAuth",
		},
	},
	{
		ID:   "databases",
		Name: "Databases",
		Icon: "🗄️",
		Concepts: []string{
			"SQL", "NoSQL", "MongoDB", "PostgreSQL", "Database Schema",
			"Primary Key", "Foreign Key", "Indexing",
		},
	},
	{
		ID:   "devops",
		Name: "DevOps & Cloud",
		Icon: "☁️",
		Concepts: []string{
			"Docker", "Kubernetes", "CI/CD", "AWS", "Serverless",
			"Load Balancing", "CDN", "DNS",
		},
	},
	{
		ID:   "cs-fundamentals",
		Name: "Computer Science",
		Icon: "🧮",
		Concepts: []string{
			"Algorithm", "Data Structure", "Big O Notation", "Recursion",
			"Stack", "Queue", "Hash Table", "Binary Search",
		},
	},
	{
		ID:   "web-concepts",
		Name: "Web Concepts",
		Icon: "🌐",
		Concepts: []string{
			"HTTP", "HTTPS", "WebSocket", "CORS", "Cookies",
			"Session", "Cache", "SEO",
		},
	},
}
