package blog

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Post is one blog article. Posts are immutable once created; the only way
// to change one is delete-then-recreate.
type Post struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Image    string   `json:"image"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
}

// CreateInput carries the caller-supplied fields for a new post. ID and Slug
// are used verbatim when set; uniqueness of caller-supplied values is not
// checked.
type CreateInput struct {
	ID       string
	Slug     string
	Title    string
	Excerpt  string
	Content  string
	Author   string
	Category string
	Image    string
	Date     string
	Tags     []string
}

// newPost fills in the generated fields: a fresh UUID when no id is supplied,
// a slug derived from the title, and today's date.
func newPost(in CreateInput) Post {
	post := Post{
		ID:       in.ID,
		Slug:     in.Slug,
		Title:    in.Title,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		Author:   in.Author,
		Category: in.Category,
		Image:    in.Image,
		Date:     in.Date,
		Tags:     in.Tags,
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.Date == "" {
		post.Date = time.Now().Format(dateLayout)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post
}
