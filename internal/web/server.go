package web

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/oliviajools/provoid-website-de-sub001/internal/blog"
	"github.com/oliviajools/provoid-website-de-sub001/internal/chat"
	"github.com/oliviajools/provoid-website-de-sub001/internal/config"
	"github.com/oliviajools/provoid-website-de-sub001/internal/newsletter"
)

type Server struct {
	cfg        *config.Config
	log        *zap.SugaredLogger
	store      blog.Store
	chat       chat.Completer
	newsletter newsletter.Service
}

func NewServer(cfg *config.Config, log *zap.SugaredLogger, store blog.Store, completer chat.Completer, news newsletter.Service) *Server {
	return &Server{
		cfg:        cfg,
		log:        log,
		store:      store,
		chat:       completer,
		newsletter: news,
	}
}

// requestValidator plugs go-playground/validator into echo's c.Validate.
// Only the fields tagged in the request structs are enforced; everything
// else stays permissive.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
