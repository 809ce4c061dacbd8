// Package googletranslate fetches translation data from the undocumented
// Google Translate web endpoint and maps it to the normalized provider
// result. The endpoint can change shape or availability at any time, so all
// failures surface as domain.ErrFetch and calls run behind a circuit breaker.
package googletranslate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/gtservice/internal/domain"
	"github.com/heartmarshall/gtservice/internal/provider"
)

const defaultBaseURL = "https://translate.googleapis.com/translate_a/single"

// Provider fetches translation data from the Google Translate endpoint.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *slog.Logger
}

// NewProvider creates a Provider with the default endpoint URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL
// (configuration override or tests).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "google-translate",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		log: logger.With("adapter", "googletranslate"),
	}
}

// Fetch loads translation data for a (word, source, target) triple.
// The word must already be normalized. Any transport, status, or shape
// failure wraps domain.ErrFetch; the caller decides retry policy.
func (p *Provider) Fetch(ctx context.Context, word, sourceLang, targetLang string) (*provider.FetchedTranslation, error) {
	reqURL := p.requestURL(word, sourceLang, targetLang)

	p.log.DebugContext(ctx, "fetching translation",
		slog.String("word", word),
		slog.String("source", sourceLang),
		slog.String("target", targetLang),
	)

	body, err := p.breaker.Execute(func() (any, error) {
		return p.doRequest(ctx, reqURL, word)
	})
	if err != nil {
		p.log.ErrorContext(ctx, "translation fetch failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("googletranslate: %w: %w", domain.ErrFetch, err)
	}

	result, err := parseResponse(body.([]byte), word, sourceLang, targetLang)
	if err != nil {
		return nil, fmt.Errorf("googletranslate: %w: %w", domain.ErrFetch, err)
	}

	p.log.DebugContext(ctx, "translation fetched",
		slog.String("word", word),
		slog.Int("translations", len(result.Translations)),
		slog.Int("synonyms", len(result.Synonyms)),
		slog.Int("definitions", len(result.Definitions)),
		slog.Int("examples", len(result.Examples)),
	)

	return result, nil
}

func (p *Provider) requestURL(word, sourceLang, targetLang string) string {
	params := url.Values{}
	params.Set("q", word)
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("client", "gtx")
	params.Set("dj", "1")
	params.Set("hl", "en")
	for _, section := range []string{"t", "bd", "md", "ss", "ex"} {
		params.Add("dt", section)
	}
	return p.baseURL + "?" + params.Encode()
}

// doRequest performs the HTTP call with a single retry on 5xx or network
// errors and returns the raw response body.
func (p *Provider) doRequest(ctx context.Context, reqURL, word string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if shouldRetry && ctx.Err() == nil {
		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			resp.Body.Close()
		}
		p.log.WarnContext(ctx, "retrying translation fetch",
			slog.String("word", word),
			slog.String("reason", reason),
		)

		time.Sleep(500 * time.Millisecond)
		resp, err = p.httpClient.Do(req)
	}

	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

// parseResponse maps the raw body into a FetchedTranslation. The sentences
// block is mandatory; its absence means the response shape changed or the
// endpoint answered with something other than a translation.
func parseResponse(body []byte, word, sourceLang, targetLang string) (*provider.FetchedTranslation, error) {
	var blocks map[string]json.RawMessage
	if err := json.Unmarshal(body, &blocks); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if _, ok := blocks["sentences"]; !ok {
		return nil, fmt.Errorf("no %q block in response", "sentences")
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	result := &provider.FetchedTranslation{
		Word:           word,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Translations:   []provider.WordCandidate{},
		Synonyms:       []provider.WordCandidate{},
		Definitions:    []string{},
		Examples:       []string{},
	}

	// Translated fragments carry the target language.
	for _, s := range resp.Sentences {
		if s.Trans == "" {
			continue
		}
		result.Translations = append(result.Translations, provider.WordCandidate{
			Word:     s.Trans,
			Language: targetLang,
		})
	}

	// Synonyms are same-language alternatives of the source word.
	for _, synset := range resp.Synsets {
		for _, entry := range synset.Entry {
			for _, synonym := range entry.Synonym {
				if synonym == "" {
					continue
				}
				result.Synonyms = append(result.Synonyms, provider.WordCandidate{
					Word:     synonym,
					Language: sourceLang,
				})
			}
		}
	}

	for _, defBlock := range resp.Definitions {
		for _, entry := range defBlock.Entry {
			if entry.Gloss != "" {
				result.Definitions = append(result.Definitions, entry.Gloss)
			}
		}
	}

	for _, example := range resp.Examples.Example {
		if example.Text != "" {
			result.Examples = append(result.Examples, example.Text)
		}
	}

	return result, nil
}
