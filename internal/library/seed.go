package library

import "library-ledger/internal/models"

// SampleBooks returns the starter catalog used when the store is empty.
// Ids and availability are assigned by AddBook during seeding.
func SampleBooks() []models.Book {
	return []models.Book{
		{
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			Category:      "Fiction",
			ISBN:          "978-0-7432-7356-5",
			TotalCopies:   3,
			PublishedYear: 1925,
			Description:   "A classic American novel about wealth, love, and the American Dream.",
		},
		{
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			Category:      "Fiction",
			ISBN:          "978-0-06-112008-4",
			TotalCopies:   4,
			PublishedYear: 1960,
			Description:   "A gripping tale of racial injustice and childhood innocence.",
		},
		{
			Title:         "A Brief History of Time",
			Author:        "Stephen Hawking",
			Category:      "Science",
			ISBN:          "978-0-553-38016-3",
			TotalCopies:   2,
			PublishedYear: 1988,
			Description:   "An exploration of cosmology, from the Big Bang to black holes.",
		},
		{
			Title:         "1984",
			Author:        "George Orwell",
			Category:      "Science Fiction",
			ISBN:          "978-0-452-28423-4",
			TotalCopies:   2,
			PublishedYear: 1949,
			Description:   "A dystopian vision of a totalitarian future under constant surveillance.",
		},
		{
			Title:         "Sapiens: A Brief History of Humankind",
			Author:        "Yuval Noah Harari",
			Category:      "History",
			ISBN:          "978-0-06-231609-7",
			TotalCopies:   3,
			PublishedYear: 2011,
			Description:   "The story of our species from prehistoric times to the present.",
		},
		{
			Title:         "Atomic Habits",
			Author:        "James Clear",
			Category:      "Self-Help",
			ISBN:          "978-0-7352-1129-2",
			TotalCopies:   3,
			PublishedYear: 2018,
			Description:   "A practical guide to building good habits and breaking bad ones.",
		},
	}
}
