package store

import (
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/jhoffmann/masterblog/internal/model"
)

// Defaults for the list window when the caller leaves page or limit unset.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// seedPosts is the fixed collection a fresh store starts with.
var seedPosts = []model.Post{
	{ID: 1, Title: "First post", Content: "This is the first post."},
	{ID: 2, Title: "Second post", Content: "This is the second post."},
}

// PostStore holds the collection in memory and writes it through to its
// backend after every mutation. Every operation runs under a single lock
// covering the whole read-modify-persist cycle, so concurrent callers can
// not observe lost updates or duplicate ids.
type PostStore struct {
	mu      sync.RWMutex
	posts   []model.Post
	backend Backend
}

// New loads the collection from the backend.
func New(backend Backend) (*PostStore, error) {
	posts, err := backend.Load()
	if err != nil {
		return nil, err
	}
	return &PostStore{
		posts:   posts,
		backend: backend,
	}, nil
}

// Seed persists the fixed sample posts if the collection is empty.
func (s *PostStore) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.posts) > 0 {
		return nil
	}

	candidate := slices.Clone(seedPosts)
	if err := s.backend.Save(candidate); err != nil {
		return err
	}
	s.posts = candidate

	storeLogger.Info().Int("count", len(candidate)).Msg("Seeded empty collection")
	return nil
}

// ListOptions are the query options of the list operation. Page and Limit
// must be positive; the HTTP layer substitutes the defaults for absent
// parameters before calling List.
type ListOptions struct {
	Sort      string
	Direction string
	Page      int
	Limit     int
}

// List returns one page of the collection, optionally sorted by title or
// content. Sorting is stable and case-sensitive and operates on a copy;
// the stored order never changes on a read. Pagination applies to the
// sorted copy.
func (s *PostStore) List(opts ListOptions) ([]model.Post, error) {
	if opts.Sort != "" && opts.Sort != model.SortByTitle && opts.Sort != model.SortByContent {
		return nil, model.NewValidationError("invalid sort field: %s", opts.Sort)
	}

	direction := opts.Direction
	if direction == "" {
		direction = model.DirectionAsc
	}
	if direction != model.DirectionAsc && direction != model.DirectionDesc {
		return nil, model.NewValidationError("invalid sort direction: %s", opts.Direction)
	}

	if opts.Page < 1 {
		return nil, model.NewValidationError("invalid page: %d", opts.Page)
	}
	if opts.Limit < 1 {
		return nil, model.NewValidationError("invalid limit: %d", opts.Limit)
	}

	s.mu.RLock()
	posts := slices.Clone(s.posts)
	s.mu.RUnlock()

	if opts.Sort != "" {
		slices.SortStableFunc(posts, func(a, b model.Post) int {
			cmp := strings.Compare(sortKey(a, opts.Sort), sortKey(b, opts.Sort))
			if direction == model.DirectionDesc {
				return -cmp
			}
			return cmp
		})
	}

	// The window start overflows for huge page/limit values; any such
	// page lies past the end of the collection.
	if opts.Page-1 > math.MaxInt/opts.Limit {
		return []model.Post{}, nil
	}
	start := (opts.Page - 1) * opts.Limit
	if start >= len(posts) {
		return []model.Post{}, nil
	}
	end := min(start+opts.Limit, len(posts))

	return posts[start:end], nil
}

func sortKey(p model.Post, field string) string {
	if field == model.SortByContent {
		return p.Content
	}
	return p.Title
}

// Create validates the fields, assigns the next id and appends the post.
// The collection only changes if the backend accepts the new state.
func (s *PostStore) Create(title, content string) (model.Post, error) {
	if err := validateFields(title, content); err != nil {
		return model.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := model.Post{
		ID:      s.nextID(),
		Title:   title,
		Content: content,
	}

	candidate := append(slices.Clone(s.posts), post)
	if err := s.backend.Save(candidate); err != nil {
		return model.Post{}, err
	}
	s.posts = candidate

	return post, nil
}

// nextID derives the next id from the current maximum. It is recomputed at
// call time rather than stored, so it regresses to 1 once every post has
// been deleted. Callers must hold the lock.
func (s *PostStore) nextID() int {
	maxID := 0
	for _, p := range s.posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// Update replaces title and content of the post with the given id,
// preserving its id and position in the collection.
func (s *PostStore) Update(id int, title, content string) (model.Post, error) {
	if err := validateFields(title, content); err != nil {
		return model.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.posts, func(p model.Post) bool { return p.ID == id })
	if idx < 0 {
		return model.Post{}, &model.NotFoundError{ID: id}
	}

	candidate := slices.Clone(s.posts)
	candidate[idx] = model.Post{ID: id, Title: title, Content: content}
	if err := s.backend.Save(candidate); err != nil {
		return model.Post{}, err
	}
	s.posts = candidate

	return candidate[idx], nil
}

// Delete removes the post with the given id.
func (s *PostStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.posts, func(p model.Post) bool { return p.ID == id })
	if idx < 0 {
		return &model.NotFoundError{ID: id}
	}

	candidate := slices.Delete(slices.Clone(s.posts), idx, idx+1)
	if err := s.backend.Save(candidate); err != nil {
		return err
	}
	s.posts = candidate

	return nil
}

// Search returns the posts whose title matches a non-empty titleQuery or
// whose content matches a non-empty contentQuery, case-insensitively, in
// collection order. Two empty queries match nothing: an unparameterized
// search returns an empty result, not the whole collection.
func (s *PostStore) Search(titleQuery, contentQuery string) []model.Post {
	titleQuery = strings.ToLower(titleQuery)
	contentQuery = strings.ToLower(contentQuery)

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]model.Post, 0)
	for _, p := range s.posts {
		byTitle := titleQuery != "" && strings.Contains(strings.ToLower(p.Title), titleQuery)
		byContent := contentQuery != "" && strings.Contains(strings.ToLower(p.Content), contentQuery)
		if byTitle || byContent {
			results = append(results, p)
		}
	}
	return results
}

// All returns a copy of the whole collection in its stored order.
func (s *PostStore) All() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.posts)
}

func validateFields(title, content string) error {
	missing := make([]string, 0, 2)
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return model.NewValidationError("Missing field: %s", strings.Join(missing, ", "))
	}
	return nil
}
