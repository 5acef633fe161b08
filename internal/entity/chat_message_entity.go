package entity

// ChatMessage is one turn of a module transcript. Transcripts are
// append-only within a module visit; a failed gateway call still appends
// a synthetic assistant turn carrying the error text.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
