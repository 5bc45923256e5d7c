package llm

import (
	"bufio"
	"os"
	"strings"
)

// Credentials holds one API key per provider. An empty key means the
// provider is skipped entirely, never attempted.
type Credentials struct {
	DeepSeek string
	OpenAI   string
	Gemini   string
}

// HasAny reports whether at least one provider is credentialed.
func (c Credentials) HasAny() bool {
	return c.DeepSeek != "" || c.OpenAI != "" || c.Gemini != ""
}

// LoadCredentials reads provider keys from the environment, falling back
// to a line-prefixed key file when no environment variable is set.
// Missing credentials are not an error.
func LoadCredentials(keyFile string) Credentials {
	creds := Credentials{
		DeepSeek: firstEnv("DEEPSEEK_API_KEY", "OPENROUTER_API_KEY"),
		OpenAI:   os.Getenv("OPENAI_API_KEY"),
		Gemini:   os.Getenv("GEMINI_API_KEY"),
	}

	if creds.HasAny() || keyFile == "" {
		return creds
	}

	f, err := os.Open(keyFile)
	if err != nil {
		return creds
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "sk-or-"):
			creds.DeepSeek = line
		case strings.HasPrefix(line, "sk-"):
			creds.OpenAI = line
		case strings.HasPrefix(line, "AIza"):
			creds.Gemini = line
		}
	}

	return creds
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
