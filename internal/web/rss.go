package web

import (
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"
)

const feedLimit = 20

// Feed serves the most recent posts as RSS, full content rendered to HTML.
func (s *Server) Feed(c echo.Context) error {
	feed := &feeds.Feed{
		Title:       s.cfg.SiteTitle,
		Link:        &feeds.Link{Href: s.cfg.SiteBaseURL},
		Description: s.cfg.SiteTitle + " blog",
		Created:     time.Now(),
	}

	posts := s.store.List()
	if len(posts) > feedLimit {
		posts = posts[:feedLimit]
	}

	for _, post := range posts {
		created, _ := time.Parse("2006-01-02", post.Date)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       post.Title,
			Link:        &feeds.Link{Href: s.cfg.SiteBaseURL + "/blog/" + post.Slug},
			Description: post.Excerpt,
			Author:      &feeds.Author{Name: post.Author},
			Created:     created,
			Content:     renderMarkdown(post.Content),
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		s.log.Errorw("rss feed", "error", err)
		return s.fail(c, http.StatusInternalServerError, err)
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", []byte(rss))
}
