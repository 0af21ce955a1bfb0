package card

import "github.com/ayoisaiah/yogi/internal/models"

// Index maps card ids to their items.
type Index map[string]Item

// NewIndex merges the three collections into one lookup. When an id appears
// more than once the first registration wins.
func NewIndex(
	exercises []models.Exercise,
	stories []models.Story,
	practicals []models.Practical,
) Index {
	idx := make(Index, len(exercises)+len(stories)+len(practicals))

	for i := range exercises {
		idx.add(FromExercise(exercises[i]))
	}

	for i := range stories {
		idx.add(FromStory(stories[i]))
	}

	for i := range practicals {
		idx.add(FromPractical(practicals[i]))
	}

	return idx
}

func (idx Index) add(item Item) {
	if _, exists := idx[item.ID()]; exists {
		return
	}

	idx[item.ID()] = item
}

// Lookup resolves id to an item.
func (idx Index) Lookup(id string) (Item, bool) {
	item, ok := idx[id]

	return item, ok
}
