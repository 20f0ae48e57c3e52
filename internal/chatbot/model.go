package chatbot

// ChatRequest is one incoming chat message.
type ChatRequest struct {
	Message  string  `json:"message" validate:"required"`
	Language *string `json:"language"` // nil means "auto"
}

// RequestedLanguage returns the language code sent with the request, "auto" when absent.
func (r ChatRequest) RequestedLanguage() string {
	if r.Language == nil {
		return string(LanguageAuto)
	}
	return *r.Language
}

// Reply is a verified model answer.
type Reply struct {
	Text       string
	Language   Language
	ExchangeID string
}

// Status describes the model backend as seen at startup.
type Status struct {
	Provider      string
	Model         string
	CredentialEnv string
	Configured    bool // a credential was supplied
	Initialized   bool // a client was built from it
}
