package blog

// Store is the persistence contract for posts. Two implementations exist:
// FileStore over a single JSON document, and SQLiteStore for deployments
// that prefer a database file.
type Store interface {
	List() []Post
	GetBySlug(slug string) (Post, bool)
	Create(in CreateInput) (Post, error)
	Delete(id string) error
}
