package content

import "blog/domain"

// Sample returns the demo content the server ships with.
func Sample() *Store {
	return New(
		domain.SiteInfo{
			Title:       "My EJS Blog",
			Description: "A simple blog built with Express and EJS",
			Author:      "Your Name",
		},
		domain.Post{
			ID:      1,
			Title:   "Getting Started with EJS",
			Content: "EJS is a simple templating language that lets you generate HTML markup with plain JavaScript...",
			Author:  "John Doe",
			Date:    "2024-01-15",
			Excerpt: "Learn the basics of EJS templating engine",
		},
		domain.Post{
			ID:      2,
			Title:   "Advanced EJS Techniques",
			Content: "Once you master the basics, you can explore more advanced features like custom filters and helpers...",
			Author:  "Jane Smith",
			Date:    "2024-01-20",
			Excerpt: "Explore advanced EJS features and best practices",
		},
		domain.Post{
			ID:      3,
			Title:   "Building Dynamic Websites",
			Content: "Dynamic websites respond to user input and display different content based on various conditions...",
			Author:  "Mike Johnson",
			Date:    "2024-01-25",
			Excerpt: "Create interactive and dynamic web experiences",
		},
	)
}
