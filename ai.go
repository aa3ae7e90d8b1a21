package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"fineasy/models"
	"fineasy/pkg/finance"

	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
)

const defaultAIModel = "gemini-2.5-flash"

// AI failure messages shown to the user. Requests are single-attempt; a
// failed generation is reported, never retried.
const (
	aiMsgRateLimited  = "Limite de requisições excedido. Aguarde alguns instantes e tente novamente."
	aiMsgQuota        = "Créditos insuficientes. Verifique a cota da sua chave de API."
	aiMsgGeneric      = "Erro interno do serviço de IA. Por favor, tente novamente em alguns instantes."
	aiMsgNoKey        = "Chave de API não configurada."
	aiMsgNoData       = "Você ainda não possui transações registradas. Adicione algumas transações para receber análises inteligentes sobre seus gastos!"
	aiMsgEmptyAnswer  = "Desculpe, não consegui gerar uma resposta."
	aiMsgEmptyAnalyze = "Não foi possível gerar análise."
)

func aiModelName() string {
	if m := os.Getenv("AI_MODEL"); m != "" {
		return m
	}
	return defaultAIModel
}

// generate runs a single generation round trip against Gemini.
func generate(ctx context.Context, system string, contents []*genai.Content) (string, error) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return "", fmt.Errorf("missing api key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}
	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		}
	}
	resp, err := client.Models.GenerateContent(ctx, aiModelName(), contents, cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// aiErrorMessage maps a generation failure to the user-facing message.
func aiErrorMessage(err error) string {
	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "missing api key"):
		return aiMsgNoKey
	case strings.Contains(s, "429") || strings.Contains(s, "resource_exhausted") || strings.Contains(s, "rate"):
		return aiMsgRateLimited
	case strings.Contains(s, "quota") || strings.Contains(s, "billing"):
		return aiMsgQuota
	default:
		return aiMsgGeneric
	}
}

// buildFinancialContext loads the user's data and renders the Portuguese
// context block injected into the system prompt.
func buildFinancialContext(userID uint, now time.Time) (string, int, error) {
	txs, cards, err := loadHistory(userID)
	if err != nil {
		return "", 0, err
	}
	var goals []models.FinancialGoal
	if err := db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return "", 0, err
	}
	totals := finance.ComputeTotals(txs, cards)
	categories := finance.CategoryBreakdown(txs, cards)
	cardSums := finance.SummarizeCards(cards)
	goalSums := finance.SummarizeGoals(goals, txs, cards, now)
	return finance.BuildContext(totals, categories, cardSums, goalSums), len(txs), nil
}

const chatSystemPrompt = `Você é um assistente financeiro inteligente e amigável. Use o contexto financeiro fornecido para responder às perguntas do usuário de forma clara e objetiva.

%s

Diretrizes:
- Seja direto e útil nas suas respostas
- Use formatação markdown para deixar as respostas mais legíveis
- Destaque informações importantes com **negrito**
- Use listas quando apropriado
- Forneça dicas práticas e acionáveis
- Seja empático e motivador
- Se não houver dados suficientes, diga isso de forma construtiva`

func aiChatHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Messages []struct {
			Role    string `json:"role" binding:"required"`
			Content string `json:"content" binding:"required"`
		} `json:"messages" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fctx, _, err := buildFinancialContext(user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := "user"
		if m.Role == "assistant" || m.Role == "model" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	answer, err := generate(c.Request.Context(), fmt.Sprintf(chatSystemPrompt, fctx), contents)
	if err != nil {
		logger.Error().Err(err).Msg("ai chat generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": aiErrorMessage(err)})
		return
	}
	if answer == "" {
		answer = aiMsgEmptyAnswer
	}
	c.JSON(http.StatusOK, gin.H{"response": answer})
}

const analyzePromptHeader = `Você é um assistente financeiro inteligente. Analise os dados financeiros do usuário e forneça insights úteis e acionáveis sobre seus hábitos de gastos. Seja direto e objetivo, destacando os pontos mais importantes.

Forneça uma análise detalhada destacando:
1. Onde está gastando mais dinheiro (percentuais)
2. Se há categorias com gastos excessivos
3. Análise específica sobre gastos em cartões de crédito
4. Sugestões de economia específicas
5. Pontos positivos e negativos do comportamento financeiro

`

func aiAnalyzeHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	fctx, txCount, err := buildFinancialContext(user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if txCount == 0 {
		// Onboarding answer; no model round trip for an empty dataset.
		c.JSON(http.StatusOK, gin.H{"analysis": aiMsgNoData})
		return
	}

	prompt := analyzePromptHeader + fctx
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
	analysis, err := generate(c.Request.Context(), "", contents)
	if err != nil {
		logger.Error().Err(err).Msg("ai analysis generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": aiErrorMessage(err)})
		return
	}
	if analysis == "" {
		analysis = aiMsgEmptyAnalyze
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
