package aidomain

// SuggestionDraft é uma sugestão de otimização como devolvida pelo serviço de IA
type SuggestionDraft struct {
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Impact      string                 `json:"impact,omitempty"`
	Action      map[string]interface{} `json:"action,omitempty"`
}

// GenerateRequest é o pedido de geração de texto livre
type GenerateRequest struct {
	Prompt  string                 `json:"prompt"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// GenerateResponse carrega o texto gerado pelo modelo
type GenerateResponse struct {
	Text string `json:"text"`
}

// SuggestRequest envia as métricas de uma campanha para análise
type SuggestRequest struct {
	CampaignID string                 `json:"campaign_id"`
	Name       string                 `json:"name"`
	Objective  string                 `json:"objective"`
	Budget     float64                `json:"budget"`
	Metrics    map[string]interface{} `json:"metrics"`
}

// SuggestResponse agrega as sugestões produzidas pelo serviço de IA
type SuggestResponse struct {
	Suggestions []SuggestionDraft `json:"suggestions"`
}

// RAGQueryRequest é uma consulta sobre a base de conhecimento de marketing
type RAGQueryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// RAGQueryResponse traz a resposta e os trechos usados como fonte
type RAGQueryResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

// ChatMessage é uma mensagem do histórico de conversa
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest envia a conversa corrente para o serviço de IA
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse traz a resposta do assistente
type ChatResponse struct {
	Message ChatMessage `json:"message"`
}
