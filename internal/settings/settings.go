package settings

type Settings struct {
	// Compose keys and texts to NFC before they reach a cipher,
	// so that Е followed by a combining diaeresis is accepted as Ё.
	NormalizeInput bool
	// Zero means no limit.
	MaxTextLength int
}
