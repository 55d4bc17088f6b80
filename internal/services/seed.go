package services

import (
	"github.com/shopspring/decimal"

	"digitalstore/internal/domain"
)

func seedProducts() []domain.Product {
	img := func(name string) string {
		return "https://cdn.poehali.dev/projects/0598ef78-45b2-4d7a-9b03-ab91c1dc224f/files/" + name
	}
	return []domain.Product{
		{ID: 1, Name: "Business Automation Suite", Description: "End-to-end software for automating business processes and project management",
			Price: decimal.NewFromInt(299), Category: "Software", Image: img("a215575b-0932-4713-97d3-b3a1d9252724.jpg")},
		{ID: 2, Name: "E-book \"Digital Marketing\"", Description: "A complete guide to modern digital marketing strategies",
			Price: decimal.NewFromInt(49), Category: "E-books", Image: img("91b40dd2-9a08-4cd5-bc4d-38fb9aa93067.jpg")},
		{ID: 3, Name: "Online course \"Web Development\"", Description: "Hands-on course on building modern web applications",
			Price: decimal.NewFromInt(199), Category: "Online courses", Image: img("b8fb4711-8547-43d6-b23e-60880d818579.jpg")},
		{ID: 4, Name: "Presentation Templates", Description: "A set of professional templates for business presentations",
			Price: decimal.NewFromInt(29), Category: "Templates", Image: img("a215575b-0932-4713-97d3-b3a1d9252724.jpg")},
		{ID: 5, Name: "Audiobook \"Time Management\"", Description: "A practical guide to managing your time",
			Price: decimal.NewFromInt(39), Category: "Audiobooks", Image: img("91b40dd2-9a08-4cd5-bc4d-38fb9aa93067.jpg")},
		{ID: 6, Name: "Course \"Financial Literacy\"", Description: "A complete course on personal finance",
			Price: decimal.NewFromInt(149), Category: "Online courses", Image: img("b8fb4711-8547-43d6-b23e-60880d818579.jpg")},
	}
}

func seedAds() []domain.Ad {
	return []domain.Ad{
		{ID: 1, Title: "Spring sale", Description: "Up to 30% off selected online courses",
			Image: domain.DefaultImage, Link: "https://example.com/sale", Type: domain.AdHorizontal, Active: true},
		{ID: 2, Title: "New templates", Description: "Fresh presentation packs every month",
			Image: domain.DefaultImage, Link: "", Type: domain.AdSquare, Active: false},
	}
}
