package queue

// Task type names shared between the API (producer) and the worker (consumer)
const (
	TypePaletteEmail = "email:palette"
)

// PaletteEmailPayload is the serialized body of a palette email task
type PaletteEmailPayload struct {
	PaletteID int64  `json:"palette_id"`
	Email     string `json:"email"`
}
