package dto

// ChatRequest is the body of POST /api/chat. Both fields must be present;
// an empty string counts as present.
type ChatRequest struct {
	UserInput *string `json:"userInput" binding:"required"`
	Topic     *string `json:"topic" binding:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
