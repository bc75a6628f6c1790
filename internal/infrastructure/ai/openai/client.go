// Package openai provides the OpenAI-backed AI dietitian. Without an API key
// and on any transport fault the client answers from static dietary tips, so
// callers always get text back.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/domain/user"
	"github.com/medmarket/bot/internal/infrastructure/config"
)

const systemPrompt = `Вы опытный врач-диетолог с 20-летним стажем работы.
Специализируетесь на средиземноморской диете для пациентов с:
- Подагрой (контроль пуринов, мочевой кислоты)
- Сахарным диабетом 2 типа (контроль гликемического индекса)
- Целиакией (безглютеновая диета)

Правила ответов:
1. Отвечайте кратко, по существу (2-4 абзаца максимум)
2. Используйте научно обоснованные рекомендации
3. Всегда предупреждайте о необходимости консультации с врачом
4. Отвечайте на русском языке
5. Не давайте медицинских диагнозов
6. Рекомендуйте продукты из списка 99 полезных продуктов средиземноморской диеты`

// Client implements the AIService interface using the OpenAI chat API.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new OpenAI client. An empty API key puts the client in
// fallback-only mode.
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	if cfg.APIKey == "" {
		logger.Warn("OpenAI API key not set, AI dietitian will use static fallbacks")
	}
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     "https://api.openai.com/v1",
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger.Named("openai"),
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// AskDietician answers a free-text nutrition question with the user's
// diagnoses as context.
func (c *Client) AskDietician(ctx context.Context, question string, flags user.DiagnosisFlags) (string, error) {
	if c.apiKey == "" {
		return fallbackAnswer(flags), nil
	}

	prompt := fmt.Sprintf(
		"%s\n\nВопрос пользователя: %s\n\nДайте рекомендацию с учётом диагнозов пользователя.",
		diagnosisContext(flags), question,
	)

	answer, err := c.complete(ctx, prompt, c.maxTokens)
	if err != nil {
		c.logger.Error("dietitian request failed", zap.Error(err))
		return fallbackAnswer(flags), nil
	}
	return answer, nil
}

// GenerateMealPlan produces a meal plan for the given number of days.
func (c *Client) GenerateMealPlan(ctx context.Context, days int, flags user.DiagnosisFlags) (string, error) {
	if c.apiKey == "" {
		return fallbackMealPlan(days), nil
	}

	prompt := fmt.Sprintf(
		"Создайте план питания на %d дней.\n%s\n\n"+
			"Для каждого дня укажите:\n- Завтрак\n- Обед\n- Ужин\n- Перекус\n\n"+
			"Используйте продукты из средиземноморской диеты. Укажите примерную калорийность.",
		days, dietaryRequirements(flags),
	)

	plan, err := c.complete(ctx, prompt, 2000)
	if err != nil {
		c.logger.Error("meal plan request failed", zap.Error(err))
		return fallbackMealPlan(days), nil
	}
	return plan, nil
}

func (c *Client) complete(ctx context.Context, userPrompt string, maxTokens int) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   maxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call openai: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func diagnosisContext(flags user.DiagnosisFlags) string {
	var diagnoses []string
	if flags.Diabetes {
		diagnoses = append(diagnoses, "сахарный диабет 2 типа (нужны продукты с низким ГИ < 55)")
	}
	if flags.Gout {
		diagnoses = append(diagnoses, "подагра (нужны продукты с низким содержанием пуринов < 100мг/100г)")
	}
	if flags.Celiac {
		diagnoses = append(diagnoses, "целиакия (нужны безглютеновые продукты)")
	}
	if len(diagnoses) == 0 {
		return "Пользователь без специальных диагнозов."
	}
	return "Диагнозы пользователя: " + strings.Join(diagnoses, ", ") + "."
}

func dietaryRequirements(flags user.DiagnosisFlags) string {
	var requirements []string
	if flags.Diabetes {
		requirements = append(requirements, "низкий гликемический индекс (ГИ < 55)")
	}
	if flags.Gout {
		requirements = append(requirements, "низкое содержание пуринов (< 100мг/100г)")
	}
	if flags.Celiac {
		requirements = append(requirements, "без глютена")
	}
	if len(requirements) == 0 {
		return "Сбалансированное питание средиземноморской диеты."
	}
	return "Требования к диете: " + strings.Join(requirements, ", ") + "."
}

func fallbackAnswer(flags user.DiagnosisFlags) string {
	var tips []string
	if flags.Gout {
		tips = append(tips,
			"При подагре рекомендуется: овощи, фрукты, нежирные молочные продукты, "+
				"цельнозерновые каши. Избегайте: красное мясо, субпродукты, алкоголь.")
	}
	if flags.Diabetes {
		tips = append(tips,
			"При диабете выбирайте продукты с низким ГИ: гречка, овсянка, бобовые, "+
				"овощи. Избегайте: сахар, белый хлеб, сладости.")
	}
	if len(tips) == 0 {
		tips = append(tips,
			"Рекомендуем средиземноморскую диету: много овощей, фруктов, "+
				"оливковое масло, рыба, орехи.")
	}
	return "AI-диетолог временно недоступен.\n\n" +
		strings.Join(tips, "\n\n") +
		"\n\nОбязательно проконсультируйтесь с врачом!"
}

func fallbackMealPlan(days int) string {
	return fmt.Sprintf(
		"План питания на %d дней (упрощённый):\n\n"+
			"Завтрак: Овсянка с ягодами, зелёный чай\n"+
			"Обед: Гречка с овощами, куриная грудка на пару\n"+
			"Ужин: Рыба запечённая с брокколи\n"+
			"Перекус: Йогурт натуральный, горсть орехов\n\n"+
			"Для персонализированного плана настройте MEDMARKET_AI_API_KEY.",
		days,
	)
}
