// ABOUTME: RIFF/WAVE header layout
// ABOUTME: Shared by the WAV encoder and header parser
package audio

// WAVHeaderSize is the length of the canonical PCM WAV header
const WAVHeaderSize = 44

// WAVHeader is the canonical 44-byte PCM header, fields in file order
type WAVHeader struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32  // 36 + data size
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample / 8
	BlockAlign    uint16 // NumChannels * BitsPerSample / 8
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32  // data size in bytes
}

// NewWAVHeader describes dataSize bytes of PCM in format f
func NewWAVHeader(f Format, dataSize uint32) WAVHeader {
	return WAVHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   uint16(f.Channels),
		SampleRate:    uint32(f.SampleRate),
		ByteRate:      uint32(f.ByteRate()),
		BlockAlign:    uint16(f.BlockAlign()),
		BitsPerSample: uint16(f.BitDepth),
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
}

// StreamFormat returns the stream format declared by the header
func (h WAVHeader) StreamFormat() Format {
	return Format{
		SampleRate: int(h.SampleRate),
		Channels:   int(h.NumChannels),
		BitDepth:   int(h.BitsPerSample),
	}
}
