package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_posts_created_total",
		Help: "Number of posts created through the API.",
	})
	postsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_posts_deleted_total",
		Help: "Number of delete operations accepted through the API.",
	})
)
