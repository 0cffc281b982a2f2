package blog

import "sync"

// PersistenceError wraps any failure to durably write the collection after a
// mutation. The change is not considered applied until the write succeeds.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "blog: " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// FileStore persists the collection as a single JSON document on disk. Every
// mutation re-reads the document, applies the change in memory and writes the
// whole document back; the mutex serializes that read-modify-write cycle so
// two concurrent creates cannot lose each other's posts. List reads without
// the lock: writes replace the file atomically, so a reader sees either the
// previous or the new document, never a torn one.
//
// The lock is in-process only. Multiple processes sharing one document need
// external coordination such as a filesystem advisory lock.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// List returns the collection in canonical order, newest created first.
// An absent or corrupt document degrades to an empty collection; reads
// never fail.
func (s *FileStore) List() []Post {
	col, err := ReadDocument(s.path)
	if err != nil {
		return []Post{}
	}
	return col.Posts
}

func (s *FileStore) GetBySlug(slug string) (Post, bool) {
	for _, post := range s.List() {
		if post.Slug == slug {
			return post, true
		}
	}
	return Post{}, false
}

// Create builds the post, prepends it to the collection and persists the
// whole document. On write failure the previous document stays intact and
// a *PersistenceError is returned.
func (s *FileStore) Create(in CreateInput) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.readForUpdate()
	post := newPost(in)
	col.Posts = append([]Post{post}, col.Posts...)

	if err := s.persist(col); err != nil {
		return Post{}, &PersistenceError{Op: "create", Err: err}
	}
	return post, nil
}

// Delete removes every post whose id matches (at most one, ids are unique on
// the generated path) and persists the result. Deleting an unknown id is a
// no-op that still succeeds.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.readForUpdate()
	kept := make([]Post, 0, len(col.Posts))
	for _, post := range col.Posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	col.Posts = kept

	if err := s.persist(col); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	return nil
}

// readForUpdate applies the same degrade-to-empty policy as List so that a
// corrupt document does not wedge the store. Must be called with mu held.
func (s *FileStore) readForUpdate() Collection {
	col, err := ReadDocument(s.path)
	if err != nil {
		return Collection{Posts: []Post{}}
	}
	return col
}

func (s *FileStore) persist(col Collection) error {
	data, err := EncodeDocument(col)
	if err != nil {
		return err
	}
	return atomicWriteFile(s.path, data, 0o644)
}
