package types

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	SessionID      string    `json:"session_id"`
	Messages       []Message `json:"messages"`
	TargetLanguage string    `json:"target_language"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

type TranslateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}
