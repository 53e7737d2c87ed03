package service

import (
	"github.com/DragunWF/BasaBuddy-sub000/internal/model"
)

// SeedCatalog returns the fixed achievement catalog in presentation
// order. The message_count trigger kind has no seed entry; the kind
// exists in the dispatch regardless.
func SeedCatalog() []model.Achievement {
	return []model.Achievement{
		// Liked books
		seedEntry("first-favorite", "First Favorite", "Like your first book.", 10, model.TriggerLikedBooks, 1),
		seedEntry("taste-tester", "Taste Tester", "Like 5 books.", 25, model.TriggerLikedBooks, 5),
		seedEntry("book-enthusiast", "Book Enthusiast", "Like 10 books.", 50, model.TriggerLikedBooks, 10),
		seedEntry("genre-explorer", "Genre Explorer", "Like 20 books.", 75, model.TriggerLikedBooks, 20),
		seedEntry("shelf-admirer", "Shelf Admirer", "Like 35 books.", 100, model.TriggerLikedBooks, 35),
		seedEntry("devoted-fan", "Devoted Fan", "Like 50 books.", 150, model.TriggerLikedBooks, 50),
		seedEntry("century-of-likes", "Century of Likes", "Like 100 books.", 300, model.TriggerLikedBooks, 100),

		// Finished books
		seedEntry("first-chapter-closed", "First Chapter Closed", "Finish your first book.", 20, model.TriggerFinishedBooks, 1),
		seedEntry("page-turner", "Page Turner", "Finish 5 books.", 50, model.TriggerFinishedBooks, 5),
		seedEntry("bookworm", "Bookworm", "Finish 10 books.", 100, model.TriggerFinishedBooks, 10),
		seedEntry("bibliophile", "Bibliophile", "Finish 25 books.", 200, model.TriggerFinishedBooks, 25),
		seedEntry("half-century-reader", "Half-Century Reader", "Finish 50 books.", 300, model.TriggerFinishedBooks, 50),
		seedEntry("reading-machine", "Reading Machine", "Finish 75 books.", 400, model.TriggerFinishedBooks, 75),
		seedEntry("library-legend", "Library Legend", "Finish 100 books.", 500, model.TriggerFinishedBooks, 100),
		seedEntry("grand-archivist", "Grand Archivist", "Finish 150 books.", 750, model.TriggerFinishedBooks, 150),

		// Collections
		seedEntry("first-shelf", "First Shelf", "Create your first collection.", 10, model.TriggerCollections, 1),
		seedEntry("tidy-reader", "Tidy Reader", "Create 3 collections.", 25, model.TriggerCollections, 3),
		seedEntry("collector", "Collector", "Create 5 collections.", 50, model.TriggerCollections, 5),
		seedEntry("shelf-architect", "Shelf Architect", "Create 10 collections.", 100, model.TriggerCollections, 10),
		seedEntry("organized-mind", "Organized Mind", "Create 15 collections.", 150, model.TriggerCollections, 15),
		seedEntry("master-curator", "Master Curator", "Create 20 collections.", 200, model.TriggerCollections, 20),
		seedEntry("library-planner", "Library Planner", "Create 25 collections.", 300, model.TriggerCollections, 25),
		seedEntry("archive-builder", "Archive Builder", "Create 30 collections.", 400, model.TriggerCollections, 30),
	}
}

func seedEntry(id, title, description string, exp int, kind model.TriggerKind, count int) model.Achievement {
	return model.Achievement{
		ID:          id,
		Title:       title,
		Description: description,
		ExpCount:    exp,
		Trigger: model.Trigger{
			Kind:  kind,
			Count: count,
		},
	}
}
