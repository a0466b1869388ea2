package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// riffHeader is the 12-byte RIFF container header of a WAV file.
type riffHeader struct {
	ChunkID   [4]byte // "RIFF"
	ChunkSize uint32  // File size - 8 bytes
	Format    [4]byte // "WAVE"
}

// chunkHeader precedes every chunk inside the RIFF container.
type chunkHeader struct {
	ID   [4]byte
	Size uint32
}

// fmtChunk is the PCM format chunk ("fmt ") payload.
type fmtChunk struct {
	AudioFormat   uint16 // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample / 8
	BlockAlign    uint16 // NumChannels * BitsPerSample / 8
	BitsPerSample uint16
}

// Info describes the audio format and data size of a WAV file.
type Info struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	DataBytes     int
}

// Duration returns the playback duration derived from the PCM data size.
func (i *Info) Duration() time.Duration {
	bytesPerSecond := i.SampleRate * i.Channels * i.BitsPerSample / 8
	if bytesPerSecond <= 0 {
		return 0
	}
	seconds := float64(i.DataBytes) / float64(bytesPerSecond)
	return time.Duration(seconds * float64(time.Second))
}

// ReadInfo parses the RIFF/WAVE headers from r and returns the format
// information. Chunks other than "fmt " and "data" (LIST, INFO tags and the
// like) are skipped. The PCM data itself is not read.
func ReadInfo(r io.ReadSeeker) (*Info, error) {
	var riff riffHeader
	if err := binary.Read(r, binary.LittleEndian, &riff); err != nil {
		return nil, fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if string(riff.ChunkID[:]) != "RIFF" {
		return nil, fmt.Errorf("invalid WAV file: missing RIFF header")
	}

	if string(riff.Format[:]) != "WAVE" {
		return nil, fmt.Errorf("invalid WAV file: missing WAVE format")
	}

	info := &Info{}
	haveFmt := false

	for {
		var chunk chunkHeader
		if err := binary.Read(r, binary.LittleEndian, &chunk); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("invalid WAV file: missing data chunk")
			}
			return nil, fmt.Errorf("failed to read chunk header: %w", err)
		}

		switch string(chunk.ID[:]) {
		case "fmt ":
			var format fmtChunk
			if err := binary.Read(r, binary.LittleEndian, &format); err != nil {
				return nil, fmt.Errorf("failed to read fmt chunk: %w", err)
			}
			if format.AudioFormat != 1 {
				return nil, fmt.Errorf("unsupported audio format: %d (only PCM is supported)", format.AudioFormat)
			}
			info.SampleRate = int(format.SampleRate)
			info.Channels = int(format.NumChannels)
			info.BitsPerSample = int(format.BitsPerSample)
			haveFmt = true

			// Skip any fmt extension bytes beyond the 16-byte PCM layout.
			if chunk.Size > 16 {
				if _, err := r.Seek(int64(chunk.Size-16), io.SeekCurrent); err != nil {
					return nil, fmt.Errorf("failed to skip fmt extension: %w", err)
				}
			}

		case "data":
			if !haveFmt {
				return nil, fmt.Errorf("invalid WAV file: data chunk before fmt chunk")
			}
			info.DataBytes = int(chunk.Size)
			return info, nil

		default:
			// Chunks are word aligned; odd sizes carry a pad byte.
			skip := int64(chunk.Size)
			if chunk.Size%2 == 1 {
				skip++
			}
			if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("failed to skip %q chunk: %w", chunk.ID, err)
			}
		}
	}
}
