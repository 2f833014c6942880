// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package catalog

// types is the full catalog. Order matters: it drives the type selector,
// form layout and the ordering of validation messages.
var types = []Type{
	{
		Key:         "LocalBusiness",
		DisplayName: "Local Business",
		Description: "Perfect for restaurants, shops, services, and local companies",
		Fields: []Field{
			{Key: "name", Label: "Business Name", Kind: KindText, Required: true, Placeholder: "Your Business Name"},
			{Key: "description", Label: "Description", Kind: KindTextarea, Required: true, Placeholder: "Brief description of your business"},
			{Key: "telephone", Label: "Phone Number", Kind: KindTel, Required: true, Placeholder: "+1-555-123-4567"},
			{Key: "email", Label: "Email", Kind: KindEmail, Placeholder: "contact@yourbusiness.com"},
			{Key: "url", Label: "Website URL", Kind: KindURL, Required: true, Placeholder: "https://yourbusiness.com"},
			{Key: "streetAddress", Label: "Street Address", Kind: KindText, Required: true, Placeholder: "123 Main Street"},
			{Key: "addressLocality", Label: "City", Kind: KindText, Required: true, Placeholder: "New York"},
			{Key: "addressRegion", Label: "State/Region", Kind: KindText, Required: true, Placeholder: "NY"},
			{Key: "postalCode", Label: "Postal Code", Kind: KindText, Required: true, Placeholder: "10001"},
			{Key: "addressCountry", Label: "Country", Kind: KindText, Required: true, Placeholder: "US"},
			{Key: "priceRange", Label: "Price Range", Kind: KindText, Placeholder: "$$"},
			{Key: "openingHours", Label: "Opening Hours", Kind: KindText, Placeholder: "Mo-Fr 09:00-17:00"},
		},
	},
	{
		Key:         "Article",
		DisplayName: "Article/Blog Post",
		Description: "Great for blog posts, news articles, and editorial content",
		Fields: []Field{
			{Key: "headline", Label: "Article Title", Kind: KindText, Required: true, Placeholder: "Your Article Title"},
			{Key: "description", Label: "Article Description", Kind: KindTextarea, Required: true, Placeholder: "Brief summary of your article"},
			{Key: "author", Label: "Author Name", Kind: KindText, Required: true, Placeholder: "John Doe"},
			{Key: "datePublished", Label: "Publication Date", Kind: KindDate, Required: true},
			{Key: "dateModified", Label: "Last Modified", Kind: KindDate},
			{Key: "url", Label: "Article URL", Kind: KindURL, Required: true, Placeholder: "https://yourblog.com/article"},
			{Key: "image", Label: "Featured Image URL", Kind: KindURL, Placeholder: "https://yourblog.com/image.jpg"},
			{Key: "publisher", Label: "Publisher Name", Kind: KindText, Required: true, Placeholder: "Your Blog Name"},
			{Key: "mainEntityOfPage", Label: "Main Page URL", Kind: KindURL, Placeholder: "https://yourblog.com"},
		},
	},
	{
		Key:         "Product",
		DisplayName: "Product",
		Description: "Essential for e-commerce and product showcase pages",
		Fields: []Field{
			{Key: "name", Label: "Product Name", Kind: KindText, Required: true, Placeholder: "Amazing Product"},
			{Key: "description", Label: "Product Description", Kind: KindTextarea, Required: true, Placeholder: "Detailed description of your product"},
			{Key: "brand", Label: "Brand Name", Kind: KindText, Required: true, Placeholder: "Your Brand"},
			{Key: "sku", Label: "SKU", Kind: KindText, Placeholder: "ABC123"},
			{Key: "image", Label: "Product Image URL", Kind: KindURL, Placeholder: "https://yourstore.com/product.jpg"},
			{Key: "price", Label: "Price", Kind: KindNumber, Required: true, Placeholder: "99.99"},
			{Key: "priceCurrency", Label: "Currency", Kind: KindText, Required: true, Placeholder: "USD"},
			{Key: "availability", Label: "Availability", Kind: KindSelect, Required: true, Options: []string{"InStock", "OutOfStock", "PreOrder"}, Placeholder: "InStock"},
			{Key: "condition", Label: "Condition", Kind: KindSelect, Options: []string{"NewCondition", "UsedCondition", "RefurbishedCondition"}, Placeholder: "NewCondition"},
			{Key: "url", Label: "Product URL", Kind: KindURL, Required: true, Placeholder: "https://yourstore.com/product"},
		},
	},
	{
		Key:         "Event",
		DisplayName: "Event",
		Description: "Perfect for conferences, workshops, concerts, and meetings",
		Fields: []Field{
			{Key: "name", Label: "Event Name", Kind: KindText, Required: true, Placeholder: "Amazing Conference 2024"},
			{Key: "description", Label: "Event Description", Kind: KindTextarea, Required: true, Placeholder: "What this event is about"},
			{Key: "startDate", Label: "Start Date & Time", Kind: KindDateTime, Required: true},
			{Key: "endDate", Label: "End Date & Time", Kind: KindDateTime},
			{Key: "locationName", Label: "Venue Name", Kind: KindText, Required: true, Placeholder: "Convention Center"},
			{Key: "streetAddress", Label: "Street Address", Kind: KindText, Required: true, Placeholder: "123 Event Street"},
			{Key: "addressLocality", Label: "City", Kind: KindText, Required: true, Placeholder: "New York"},
			{Key: "addressRegion", Label: "State/Region", Kind: KindText, Required: true, Placeholder: "NY"},
			{Key: "postalCode", Label: "Postal Code", Kind: KindText, Required: true, Placeholder: "10001"},
			{Key: "addressCountry", Label: "Country", Kind: KindText, Required: true, Placeholder: "US"},
			{Key: "organizer", Label: "Organizer Name", Kind: KindText, Required: true, Placeholder: "Event Company"},
			{Key: "url", Label: "Event URL", Kind: KindURL, Placeholder: "https://yourevent.com"},
			{Key: "image", Label: "Event Image URL", Kind: KindURL, Placeholder: "https://yourevent.com/image.jpg"},
		},
	},
	{
		Key:         "Organization",
		DisplayName: "Organization",
		Description: "Ideal for companies, nonprofits, and institutions",
		Fields: []Field{
			{Key: "name", Label: "Organization Name", Kind: KindText, Required: true, Placeholder: "Your Organization"},
			{Key: "description", Label: "Description", Kind: KindTextarea, Required: true, Placeholder: "What your organization does"},
			{Key: "url", Label: "Website URL", Kind: KindURL, Required: true, Placeholder: "https://yourorg.com"},
			{Key: "logo", Label: "Logo URL", Kind: KindURL, Placeholder: "https://yourorg.com/logo.png"},
			{Key: "telephone", Label: "Phone Number", Kind: KindTel, Placeholder: "+1-555-123-4567"},
			{Key: "email", Label: "Email", Kind: KindEmail, Placeholder: "info@yourorg.com"},
			{Key: "streetAddress", Label: "Street Address", Kind: KindText, Placeholder: "123 Organization St"},
			{Key: "addressLocality", Label: "City", Kind: KindText, Placeholder: "New York"},
			{Key: "addressRegion", Label: "State/Region", Kind: KindText, Placeholder: "NY"},
			{Key: "postalCode", Label: "Postal Code", Kind: KindText, Placeholder: "10001"},
			{Key: "addressCountry", Label: "Country", Kind: KindText, Placeholder: "US"},
			{Key: "foundingDate", Label: "Founded Date", Kind: KindDate},
		},
	},
	{
		Key:         "BreadcrumbList",
		DisplayName: "Breadcrumbs",
		Description: "Navigation breadcrumbs to show page hierarchy and improve SEO",
		Fields: []Field{
			{Key: "breadcrumbs", Label: "Breadcrumb Items", Kind: KindArray, Required: true, ItemFields: []Field{
				{Key: "name", Label: "Page Name", Kind: KindText, Required: true, Placeholder: "Home"},
				{Key: "url", Label: "Page URL", Kind: KindURL, Required: true, Placeholder: "https://example.com"},
			}},
		},
	},
	{
		Key:         "FAQPage",
		DisplayName: "FAQ",
		Description: "Frequently Asked Questions to enhance search visibility",
		Fields: []Field{
			{Key: "questions", Label: "FAQ Items", Kind: KindArray, Required: true, ItemFields: []Field{
				{Key: "question", Label: "Question", Kind: KindText, Required: true, Placeholder: "What is your return policy?"},
				{Key: "answer", Label: "Answer", Kind: KindTextarea, Required: true, Placeholder: "Our return policy allows..."},
			}},
		},
	},
	{
		Key:         "Review",
		DisplayName: "Review",
		Description: "Customer reviews and ratings for products or services",
		Fields: []Field{
			{Key: "reviewBody", Label: "Review Text", Kind: KindTextarea, Required: true, Placeholder: "This product is amazing because..."},
			{Key: "reviewRating", Label: "Rating (1-5)", Kind: KindNumber, Required: true, Placeholder: "5"},
			{Key: "author", Label: "Reviewer Name", Kind: KindText, Required: true, Placeholder: "John Smith"},
			{Key: "datePublished", Label: "Review Date", Kind: KindDate, Required: true},
			{Key: "itemReviewed", Label: "Item Being Reviewed", Kind: KindText, Required: true, Placeholder: "Product or Service Name"},
			{Key: "publisher", Label: "Publisher/Website", Kind: KindText, Placeholder: "Your Website Name"},
		},
	},
	{
		Key:         "HowTo",
		DisplayName: "How-To Guide",
		Description: "Step-by-step instructions and tutorials",
		Fields: []Field{
			{Key: "name", Label: "Guide Title", Kind: KindText, Required: true, Placeholder: "How to Install a Ceiling Fan"},
			{Key: "description", Label: "Guide Description", Kind: KindTextarea, Required: true, Placeholder: "Learn how to safely install a ceiling fan in your home..."},
			{Key: "totalTime", Label: "Total Time (ISO 8601)", Kind: KindText, Placeholder: "PT30M (30 minutes)"},
			{Key: "supply", Label: "Supplies Needed", Kind: KindTextarea, Placeholder: "List supplies separated by commas"},
			{Key: "tool", Label: "Tools Needed", Kind: KindTextarea, Placeholder: "List tools separated by commas"},
			{Key: "steps", Label: "Instructions", Kind: KindArray, Required: true, ItemFields: []Field{
				{Key: "name", Label: "Step Title", Kind: KindText, Required: true, Placeholder: "Turn off power at breaker"},
				{Key: "text", Label: "Step Instructions", Kind: KindTextarea, Required: true, Placeholder: "Detailed instructions for this step..."},
				{Key: "image", Label: "Step Image URL", Kind: KindURL, Placeholder: "https://example.com/step1.jpg"},
			}},
		},
	},
	{
		Key:         "Recipe",
		DisplayName: "Recipe",
		Description: "Cooking recipes with ingredients and instructions",
		Fields: []Field{
			{Key: "name", Label: "Recipe Name", Kind: KindText, Required: true, Placeholder: "Chocolate Chip Cookies"},
			{Key: "description", Label: "Recipe Description", Kind: KindTextarea, Required: true, Placeholder: "Delicious homemade chocolate chip cookies..."},
			{Key: "author", Label: "Recipe Author", Kind: KindText, Required: true, Placeholder: "Chef Johnson"},
			{Key: "prepTime", Label: "Prep Time (ISO 8601)", Kind: KindText, Placeholder: "PT15M (15 minutes)"},
			{Key: "cookTime", Label: "Cook Time (ISO 8601)", Kind: KindText, Placeholder: "PT12M (12 minutes)"},
			{Key: "totalTime", Label: "Total Time (ISO 8601)", Kind: KindText, Placeholder: "PT27M (27 minutes)"},
			{Key: "recipeYield", Label: "Servings/Yield", Kind: KindText, Placeholder: "24 cookies"},
			{Key: "recipeCategory", Label: "Recipe Category", Kind: KindText, Placeholder: "Dessert"},
			{Key: "recipeCuisine", Label: "Cuisine Type", Kind: KindText, Placeholder: "American"},
			{Key: "image", Label: "Recipe Image URL", Kind: KindURL, Placeholder: "https://example.com/cookies.jpg"},
			{Key: "recipeIngredient", Label: "Ingredients", Kind: KindTextarea, Required: true, Placeholder: "List ingredients, one per line"},
			{Key: "recipeInstructions", Label: "Instructions", Kind: KindTextarea, Required: true, Placeholder: "List instructions, one per line"},
			{Key: "keywords", Label: "Keywords", Kind: KindText, Placeholder: "cookies, dessert, baking"},
		},
	},
	{
		Key:         "VideoObject",
		DisplayName: "Video",
		Description: "Video content for enhanced search visibility",
		Fields: []Field{
			{Key: "name", Label: "Video Title", Kind: KindText, Required: true, Placeholder: "How to Make Perfect Coffee"},
			{Key: "description", Label: "Video Description", Kind: KindTextarea, Required: true, Placeholder: "Learn the secrets to brewing the perfect cup of coffee..."},
			{Key: "thumbnailUrl", Label: "Thumbnail Image URL", Kind: KindURL, Required: true, Placeholder: "https://example.com/thumbnail.jpg"},
			{Key: "uploadDate", Label: "Upload Date", Kind: KindDate, Required: true},
			{Key: "duration", Label: "Duration (ISO 8601)", Kind: KindText, Placeholder: "PT5M30S (5 minutes 30 seconds)"},
			{Key: "contentUrl", Label: "Video File URL", Kind: KindURL, Placeholder: "https://example.com/video.mp4"},
			{Key: "embedUrl", Label: "Embed URL", Kind: KindURL, Placeholder: "https://youtube.com/embed/xyz"},
			{Key: "author", Label: "Video Creator", Kind: KindText, Placeholder: "Your Channel Name"},
			{Key: "publisher", Label: "Publisher", Kind: KindText, Placeholder: "Your Website"},
		},
	},
}
