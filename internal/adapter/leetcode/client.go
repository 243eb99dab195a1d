// Package leetcode implements ports.ProblemSource against LeetCode's
// public REST and GraphQL endpoints.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"leetrank/internal/domain/model"
	"leetrank/internal/domain/ports"
)

const defaultBaseURL = "https://leetcode.com"

// Client implements ports.ProblemSource using LeetCode public endpoints.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
	baseURL    string
}

var _ ports.ProblemSource = (*Client)(nil)

// New creates a new LeetCode client.
func New(timeout time.Duration, logger ports.Logger) *Client {
	return NewWithBase(defaultBaseURL, timeout, logger)
}

// NewWithBase creates a client against a custom base URL. Used by tests.
func NewWithBase(baseURL string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// ListProblems fetches the full problemset. Paid-only entries are
// excluded; entries missing a required field are dropped and counted,
// never fatal for the list as a whole.
func (c *Client) ListProblems(ctx context.Context) ([]model.Problem, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/problems/all/", http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Referer", c.baseURL+"/problemset/all/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, 0, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var payload struct {
		StatStatusPairs []listEntry `json:"stat_status_pairs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, 0, fmt.Errorf("decode response: %w", err)
	}
	if payload.StatStatusPairs == nil {
		return nil, 0, fmt.Errorf("unexpected response shape: stat_status_pairs missing")
	}

	records := make([]model.Problem, 0, len(payload.StatStatusPairs))
	dropped := 0
	for _, entry := range payload.StatStatusPairs {
		if entry.PaidOnly {
			continue
		}
		p, err := parseListEntry(entry)
		if err != nil {
			dropped++
			if c.logger != nil {
				c.logger.Warn(ctx, "skipping invalid problem entry", "error", err)
			}
			continue
		}
		records = append(records, p)
	}

	return records, dropped, nil
}

type listEntry struct {
	Stat struct {
		FrontendQuestionID int    `json:"frontend_question_id"`
		QuestionTitle      string `json:"question__title"`
		QuestionTitleSlug  string `json:"question__title_slug"`
		TotalAccepted      int64  `json:"total_acs"`
		TotalSubmitted     int64  `json:"total_submitted"`
	} `json:"stat"`
	Difficulty struct {
		Level int `json:"level"`
	} `json:"difficulty"`
	PaidOnly bool `json:"paid_only"`
}

// parseListEntry validates required fields and builds a typed record.
// The bulk counts fill in as provisional statistics; ProblemStats
// refreshes them per problem.
func parseListEntry(entry listEntry) (model.Problem, error) {
	slug := entry.Stat.QuestionTitleSlug
	if slug == "" {
		return model.Problem{}, &model.ParseError{Field: "slug"}
	}
	if entry.Stat.FrontendQuestionID <= 0 {
		return model.Problem{}, &model.ParseError{Slug: slug, Field: "id"}
	}
	if entry.Stat.QuestionTitle == "" {
		return model.Problem{}, &model.ParseError{Slug: slug, Field: "title"}
	}

	difficulty := difficultyFromLevel(entry.Difficulty.Level)
	if !difficulty.Valid() {
		return model.Problem{}, &model.ParseError{Slug: slug, Field: "difficulty"}
	}

	var rate float64
	if entry.Stat.TotalSubmitted > 0 {
		rate = float64(entry.Stat.TotalAccepted) / float64(entry.Stat.TotalSubmitted)
	}

	return model.Problem{
		ID:               entry.Stat.FrontendQuestionID,
		Title:            entry.Stat.QuestionTitle,
		Slug:             slug,
		Difficulty:       difficulty,
		AcceptanceRate:   rate,
		TotalAccepted:    entry.Stat.TotalAccepted,
		TotalSubmissions: entry.Stat.TotalSubmitted,
		Link:             fmt.Sprintf("%s/problems/%s/", defaultBaseURL, slug),
	}, nil
}

// ProblemStats fetches up-to-date submission statistics for one
// problem through the GraphQL stats field.
func (c *Client) ProblemStats(ctx context.Context, slug string) (model.ProblemStats, error) {
	payload := map[string]any{
		"query": `query questionStats($titleSlug: String!) { question(titleSlug: $titleSlug) { stats } }`,
		"variables": map[string]string{
			"titleSlug": slug,
		},
	}

	var gqlResp struct {
		Data struct {
			Question *struct {
				Stats string `json:"stats"`
			} `json:"question"`
		} `json:"data"`
	}
	if err := c.graphql(ctx, payload, &gqlResp); err != nil {
		return model.ProblemStats{}, err
	}
	if gqlResp.Data.Question == nil || gqlResp.Data.Question.Stats == "" {
		return model.ProblemStats{}, fmt.Errorf("no stats for %q", slug)
	}

	// The stats field is itself a JSON document encoded as a string.
	var raw struct {
		TotalAcceptedRaw   int64 `json:"totalAcceptedRaw"`
		TotalSubmissionRaw int64 `json:"totalSubmissionRaw"`
	}
	if err := json.Unmarshal([]byte(gqlResp.Data.Question.Stats), &raw); err != nil {
		return model.ProblemStats{}, fmt.Errorf("decode stats for %q: %w", slug, err)
	}

	stats := model.ProblemStats{
		TotalAccepted:    raw.TotalAcceptedRaw,
		TotalSubmissions: raw.TotalSubmissionRaw,
	}
	if stats.TotalSubmissions > 0 {
		stats.AcceptanceRate = float64(stats.TotalAccepted) / float64(stats.TotalSubmissions)
	}
	return stats, nil
}

// DailyChallenge retrieves today's daily coding challenge.
func (c *Client) DailyChallenge(ctx context.Context) (*model.DailyChallenge, error) {
	payload := map[string]any{
		"query": `query questionOfToday { activeDailyCodingChallengeQuestion { link question { questionFrontendId title titleSlug difficulty content topicTags { name } } } }`,
	}

	var gqlResp struct {
		Data struct {
			ActiveDailyCodingChallengeQuestion struct {
				Link     string `json:"link"`
				Question struct {
					QuestionFrontendID string `json:"questionFrontendId"`
					Title              string `json:"title"`
					TitleSlug          string `json:"titleSlug"`
					Difficulty         string `json:"difficulty"`
					Content            string `json:"content"`
					TopicTags          []struct {
						Name string `json:"name"`
					} `json:"topicTags"`
				} `json:"question"`
			} `json:"activeDailyCodingChallengeQuestion"`
		} `json:"data"`
	}
	if err := c.graphql(ctx, payload, &gqlResp); err != nil {
		return nil, err
	}

	q := gqlResp.Data.ActiveDailyCodingChallengeQuestion
	if q.Question.TitleSlug == "" {
		return nil, fmt.Errorf("empty daily challenge data")
	}

	topics := make([]string, 0, len(q.Question.TopicTags))
	for _, tag := range q.Question.TopicTags {
		topics = append(topics, tag.Name)
	}

	id, _ := strconv.Atoi(q.Question.QuestionFrontendID)
	return &model.DailyChallenge{
		Problem: model.Problem{
			ID:         id,
			Title:      q.Question.Title,
			Slug:       q.Question.TitleSlug,
			Difficulty: model.Difficulty(q.Question.Difficulty),
			Link:       c.resolveLink(q.Question.TitleSlug, q.Link),
		},
		Content: strings.TrimSpace(htmlToText(q.Question.Content)),
		Topics:  topics,
	}, nil
}

func (c *Client) graphql(ctx context.Context, payload map[string]any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", c.baseURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func difficultyFromLevel(level int) model.Difficulty {
	switch level {
	case 1:
		return model.DifficultyEasy
	case 2:
		return model.DifficultyMedium
	case 3:
		return model.DifficultyHard
	default:
		return ""
	}
}

func (c *Client) resolveLink(slug, fallback string) string {
	if fallback != "" {
		return defaultBaseURL + fallback
	}
	return fmt.Sprintf("%s/problems/%s/", defaultBaseURL, slug)
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
