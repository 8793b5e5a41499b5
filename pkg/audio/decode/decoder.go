// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for raw audio decoders
package decode

// Decoder decodes raw audio bytes to 16-bit PCM samples
type Decoder interface {
	// Decode converts encoded audio data to interleaved PCM samples
	Decode(data []byte) ([]int16, error)

	// Close releases decoder resources
	Close() error
}
