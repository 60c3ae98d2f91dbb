package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kim-Emmanuel/granger/internal/domain"
	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// Fallback copy. These exact strings are what the page shows when the AI
// collaborator is unconfigured, fails, or returns nothing.
const (
	ChallengeMissingKey = "API Key missing. Configure to unlock AI challenges."
	ChallengeEmpty      = "Sprint 100m x 10 reps."
	ChallengeFallback   = "Complete 50 pushups now."

	AdviceMissingKey = "API Key missing. Please configure your API key to get AI insights."
	AdviceEmpty      = "Keep pushing! You're doing great."
	AdviceFallback   = "Stay focused and keep moving forward!"

	ChatMissingKey = "Coach G is offline. Configure the API key to start chatting."
	ChatFallback   = "Lost my whistle for a second there. Ask me again!"
)

// geminiClient is a minimal client for the generateContent REST endpoint
type geminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate sends the conversation to the model and returns its text reply
func (c *geminiClient) generate(ctx context.Context, system string, contents []geminiContent) (string, error) {
	reqBody := generateContentRequest{Contents: contents}
	if system != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	if len(genResp.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// chatSession is one open coach conversation. The full history is resent on
// every turn; late replies for abandoned sessions are simply never read.
type chatSession struct {
	mu      sync.Mutex
	system  string
	history []geminiContent
}

// coachService backs the challenge, advice, and chat features
type coachService struct {
	client     *geminiClient
	configured bool
	log        *logger.Logger

	mu    sync.RWMutex
	chats map[string]*chatSession
}

// NewCoachService creates the coach service. An empty apiKey leaves it in
// not-configured mode: every call short-circuits to fallback copy without a
// network attempt.
func NewCoachService(apiKey, model, baseURL string, log *logger.Logger) CoachService {
	return &coachService{
		client: &geminiClient{
			apiKey:  apiKey,
			model:   model,
			baseURL: strings.TrimSuffix(baseURL, "/"),
			httpClient: &http.Client{
				Timeout: 15 * time.Second,
			},
			log: log,
		},
		configured: apiKey != "",
		log:        log,
		chats:      make(map[string]*chatSession),
	}
}

// DailyChallenge returns a short daily fitness challenge
func (s *coachService) DailyChallenge(ctx context.Context) string {
	if !s.configured {
		return ChallengeMissingKey
	}

	prompt := "You are an intense elite sports coach. Give me a single, short, punchy, specific daily fitness challenge for an intermediate athlete. " +
		`Examples: "Run 5k under 25 mins", "100 Burpees for time", "Plank for 4 minutes total". ` +
		"Output ONLY the challenge text. Max 15 words."

	text, err := s.client.generate(ctx, "", []geminiContent{userTurn(prompt)})
	if err != nil {
		s.log.WithError(err).Warn("Daily challenge generation failed")
		return ChallengeFallback
	}
	if text == "" {
		return ChallengeEmpty
	}
	return text
}

// FitnessAdvice returns one-sentence motivation grounded in the live stats
func (s *coachService) FitnessAdvice(ctx context.Context, stats []domain.ActivityStat) string {
	if !s.configured {
		return AdviceMissingKey
	}

	prompt := fmt.Sprintf("You are a high-energy elite sports coach. My current activity stats are: %s. "+
		"Give me a one-sentence, punchy, aggressive but encouraging motivation to push harder right now.",
		formatStats(stats))

	text, err := s.client.generate(ctx, "", []geminiContent{userTurn(prompt)})
	if err != nil {
		s.log.WithError(err).Warn("Fitness advice generation failed")
		return AdviceFallback
	}
	if text == "" {
		return AdviceEmpty
	}
	return text
}

// CreateChat opens a conversation with Coach G seeded with the live stats
func (s *coachService) CreateChat(stats []domain.ActivityStat) string {
	system := fmt.Sprintf(`You are Coach G, a world-class elite sports performance trainer.

USER CONTEXT (Live Stats):
%s

YOUR ROLE:
- Analyze the provided stats to give specific, data-driven advice.
- Tone: High-energy, professional, slightly aggressive but highly motivating (tough love).
- Keep responses concise (under 40 words) for a chat interface, unless the user asks for a detailed plan.
- If the user is slacking (low stats), push them. If they are doing well, challenge them to go further.`,
		formatStats(stats))

	id := uuid.NewString()

	s.mu.Lock()
	s.chats[id] = &chatSession{system: system}
	s.mu.Unlock()

	s.log.WithField("chat_id", id).Debug("Coach chat created")
	return id
}

// SendMessage sends one user turn and returns the coach's reply. Upstream
// failures degrade to fallback copy; only an unknown chat id is an error.
func (s *coachService) SendMessage(ctx context.Context, chatID, text string) (string, error) {
	s.mu.RLock()
	chat, ok := s.chats[chatID]
	s.mu.RUnlock()
	if !ok {
		return "", errors.NewNotFoundError("chat session not found")
	}

	if !s.configured {
		return ChatMissingKey, nil
	}

	chat.mu.Lock()
	defer chat.mu.Unlock()

	turns := append(append([]geminiContent{}, chat.history...), userTurn(text))

	reply, err := s.client.generate(ctx, chat.system, turns)
	if err != nil {
		s.log.WithError(err).WithField("chat_id", chatID).Warn("Coach chat turn failed")
		return ChatFallback, nil
	}
	if reply == "" {
		reply = ChatFallback
	}

	chat.history = append(turns, geminiContent{Role: "model", Parts: []geminiPart{{Text: reply}}})
	return reply, nil
}

func userTurn(text string) geminiContent {
	return geminiContent{Role: "user", Parts: []geminiPart{{Text: text}}}
}

func formatStats(stats []domain.ActivityStat) string {
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, fmt.Sprintf("%s: %g%s", s.Label, s.Value, s.Unit))
	}
	return strings.Join(parts, ", ")
}
