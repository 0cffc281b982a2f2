package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"path/filepath"

	"github.com/oliviajools/provoid-website-de-sub001/internal/blog"
	"github.com/oliviajools/provoid-website-de-sub001/internal/config"
)

const mailTemplate = `Subject: {{.Title}}
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

<!DOCTYPE html>
<html>
<body>
	<div style="max-width: 600px; margin: 0 auto; font-family: sans-serif; line-height: 1.6;">
		<h2>Neuer Artikel: {{.Title}}</h2>
		<p>{{.Excerpt}}</p>
		<p><a href="{{.Link}}">Zum Artikel</a></p>
	</div>
</body>
</html>
`

func main() {
	slug := flag.String("slug", "", "Slug of the post to announce (default: newest)")
	dryRun := flag.Bool("dry-run", false, "Print the mail instead of sending it")
	flag.Parse()

	cfg := config.Load()

	var store blog.Store
	var err error
	if cfg.StoreBackend == "sqlite" {
		store, err = blog.NewSQLiteStore(filepath.Join(cfg.DataDir, "blog.db"))
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
	} else {
		store = blog.NewFileStore(filepath.Join(cfg.DataDir, "posts.json"))
	}

	var post blog.Post
	if *slug != "" {
		var ok bool
		post, ok = store.GetBySlug(*slug)
		if !ok {
			log.Fatalf("Post not found: %s", *slug)
		}
	} else {
		posts := store.List()
		if len(posts) == 0 {
			log.Fatal("No posts found")
		}
		post = posts[0]
	}

	if len(cfg.NotifyRecipients) == 0 {
		log.Println("No recipients configured (NOTIFY_RECIPIENTS).")
		return
	}

	if !*dryRun && (cfg.SMTPHost == "" || cfg.SMTPUser == "") {
		log.Fatal("SMTP settings missing (SMTP_HOST, SMTP_USER, ...)")
	}

	t := template.Must(template.New("mail").Parse(mailTemplate))

	var body bytes.Buffer
	if err := t.Execute(&body, map[string]string{
		"Title":   post.Title,
		"Excerpt": post.Excerpt,
		"Link":    fmt.Sprintf("%s/blog/%s", cfg.SiteBaseURL, post.Slug),
	}); err != nil {
		log.Fatalf("Template error: %v", err)
	}

	log.Printf("Announcing '%s' to %d recipients...", post.Title, len(cfg.NotifyRecipients))

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort)

	for _, recipient := range cfg.NotifyRecipients {
		msg := []byte("To: " + recipient + "\r\n" + body.String())

		if *dryRun {
			log.Printf("[Dry Run] Sending to %s:\n%s\n", recipient, body.String())
			continue
		}
		if err := smtp.SendMail(addr, auth, cfg.SMTPUser, []string{recipient}, msg); err != nil {
			log.Printf("Failed to send to %s: %v", recipient, err)
		} else {
			log.Printf("Sent to %s", recipient)
		}
	}
}
