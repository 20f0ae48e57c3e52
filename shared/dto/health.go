package dto

// HealthResponse describes the payload returned by standard /healthz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// IndexResponse is served from the service root.
type IndexResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	LLMStatus string `json:"llm_status"`
}

// ChatbotHealthResponse reports whether the model backend is usable.
type ChatbotHealthResponse struct {
	Status         string `json:"status"`
	GroqConfigured bool   `json:"groq_configured"`
	LLMInitialized bool   `json:"llm_initialized"`
}
