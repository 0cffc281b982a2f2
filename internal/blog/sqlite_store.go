package blog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the database-backed alternative to FileStore. The position
// column records insertion order; listing sorts on it descending so the
// canonical newest-first order stays independent of the date field.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	// WAL for concurrent readers, busy_timeout to avoid spurious locked errors.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("apply %s: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL,
		title TEXT NOT NULL,
		excerpt TEXT,
		content TEXT,
		author TEXT,
		category TEXT,
		image TEXT,
		date TEXT,
		tags TEXT,
		position INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_posts_position ON posts(position DESC);
	`
	_, err := s.db.Exec(query)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) List() []Post {
	return s.queryPosts("SELECT id, slug, title, excerpt, content, author, category, image, date, tags FROM posts ORDER BY position DESC")
}

func (s *SQLiteStore) GetBySlug(slug string) (Post, bool) {
	posts := s.queryPosts("SELECT id, slug, title, excerpt, content, author, category, image, date, tags FROM posts WHERE slug = ?", slug)
	if len(posts) == 0 {
		return Post{}, false
	}
	return posts[0], true
}

func (s *SQLiteStore) Create(in CreateInput) (Post, error) {
	post := newPost(in)
	tagsJSON, _ := json.Marshal(post.Tags)

	query := `
	INSERT INTO posts (id, slug, title, excerpt, content, author, category, image, date, tags, position)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM posts))
	`
	_, err := s.db.Exec(query,
		post.ID, post.Slug, post.Title, post.Excerpt, post.Content,
		post.Author, post.Category, post.Image, post.Date, string(tagsJSON))
	if err != nil {
		return Post{}, &PersistenceError{Op: "create", Err: err}
	}
	return post, nil
}

func (s *SQLiteStore) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM posts WHERE id = ?", id); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	return nil
}

func (s *SQLiteStore) queryPosts(query string, args ...any) []Post {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return []Post{}
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		var tagsRaw string
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content,
			&p.Author, &p.Category, &p.Image, &p.Date, &tagsRaw); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(tagsRaw), &p.Tags); err != nil || p.Tags == nil {
			p.Tags = []string{}
		}
		posts = append(posts, p)
	}
	return posts
}
