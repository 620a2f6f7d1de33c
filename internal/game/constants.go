package game

const (
	// DefaultSavePath is where the live game is kept by default
	DefaultSavePath = "game.json"

	// DefaultTemplatePath is the document a reset copies into the live game
	DefaultTemplatePath = "default.game.json"

	// SSEBufferSize is the buffer size for live event channels
	SSEBufferSize = 10

	// SSETimeoutSeconds is the timeout for sending messages to a live client
	SSETimeoutSeconds = 1

	// QRCodeSize is the edge length in pixels of generated join codes
	QRCodeSize = 256

	// MaxDocumentBytes caps request bodies that carry a game document
	MaxDocumentBytes = 1 << 20
)
