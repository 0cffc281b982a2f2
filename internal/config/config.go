package config

import (
	"net"
	"os"
	"strings"
)

const defaultChatPrompt = "Du bist der Assistent der provoid-Website. " +
	"Beantworte Fragen zu Leistungen, Fallstudien und Blog-Artikeln knapp und freundlich. " +
	"Verweise bei Projektanfragen auf das Kontaktformular."

type Config struct {
	Addr           string
	DataDir        string
	StoreBackend   string // "file" or "sqlite"
	SiteBaseURL    string
	SiteTitle      string
	AllowedOrigins []string
	LogMode        string

	ChatBaseURL      string
	ChatAPIKey       string
	ChatModel        string
	ChatSystemPrompt string

	NewsletterBaseURL string
	NewsletterAPIKey  string

	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPass         string
	NotifyRecipients []string
}

func Load() *Config {
	addr := getEnv("ADDR", ":8080")
	siteBaseURL := strings.TrimRight(getEnv("SITE_BASE_URL", ""), "/")
	if siteBaseURL == "" {
		siteBaseURL = baseURLFromAddr(addr)
	}

	return &Config{
		Addr:           addr,
		DataDir:        getEnv("DATA_DIR", "data"),
		StoreBackend:   getEnv("STORE_BACKEND", "file"),
		SiteBaseURL:    siteBaseURL,
		SiteTitle:      getEnv("SITE_TITLE", "provoid"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		LogMode:        getEnv("LOG_MODE", "dev"),

		ChatBaseURL:      getEnv("CHAT_BASE_URL", "https://api.openai.com/v1"),
		ChatAPIKey:       getEnv("CHAT_API_KEY", ""),
		ChatModel:        getEnv("CHAT_MODEL", "gpt-4o-mini"),
		ChatSystemPrompt: getEnv("CHAT_SYSTEM_PROMPT", defaultChatPrompt),

		NewsletterBaseURL: getEnv("NEWSLETTER_BASE_URL", "https://api.buttondown.com"),
		NewsletterAPIKey:  getEnv("NEWSLETTER_API_KEY", ""),

		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPass:         getEnv("SMTP_PASS", ""),
		NotifyRecipients: splitList(getEnv("NOTIFY_RECIPIENTS", "")),
	}
}

func baseURLFromAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return strings.TrimRight(addr, "/")
	}

	host := ""
	port := ""
	if strings.HasPrefix(addr, ":") {
		host = "localhost"
		port = strings.TrimPrefix(addr, ":")
	} else {
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			port = p
		} else {
			host = addr
		}
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port != "" {
		return "http://" + host + ":" + port
	}
	return "http://" + host
}

func splitList(input string) []string {
	var result []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, part)
	}
	return result
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
