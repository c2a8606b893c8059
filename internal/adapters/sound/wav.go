package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const wavFormatPCM = 1

// wavFormat holds WAV file format information
type wavFormat struct {
	AudioFormat int
	BitDepth    int
	Channels    int
	SampleRate  int
}

// parseWAV parses a RIFF/WAVE file and returns the format and the raw sample data
func parseWAV(data []byte) (*wavFormat, []byte, error) {
	reader := bytes.NewReader(data)

	header := make([]byte, 12)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, nil, fmt.Errorf("wav header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, nil, errors.New("not a RIFF/WAVE file")
	}

	var format *wavFormat
	for {
		chunkID := make([]byte, 4)
		if _, err := io.ReadFull(reader, chunkID); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("wav chunk: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return nil, nil, fmt.Errorf("wav chunk size: %w", err)
		}

		switch string(chunkID) {
		case "fmt ":
			if chunkSize < 16 {
				return nil, nil, errors.New("wav fmt chunk too short")
			}
			var raw struct {
				AudioFormat   uint16
				NumChannels   uint16
				SampleRate    uint32
				ByteRate      uint32
				BlockAlign    uint16
				BitsPerSample uint16
			}
			if err := binary.Read(reader, binary.LittleEndian, &raw); err != nil {
				return nil, nil, fmt.Errorf("wav fmt chunk: %w", err)
			}
			format = &wavFormat{
				AudioFormat: int(raw.AudioFormat),
				BitDepth:    int(raw.BitsPerSample),
				Channels:    int(raw.NumChannels),
				SampleRate:  int(raw.SampleRate),
			}
			// Skip any extra format bytes
			if _, err := reader.Seek(int64(chunkSize-16+chunkSize%2), io.SeekCurrent); err != nil {
				return nil, nil, err
			}
		case "data":
			if format == nil {
				return nil, nil, errors.New("wav data chunk before fmt chunk")
			}
			size := int(chunkSize)
			if size > reader.Len() {
				size = reader.Len()
			}
			audio := make([]byte, size)
			if _, err := io.ReadFull(reader, audio); err != nil {
				return nil, nil, fmt.Errorf("wav data: %w", err)
			}
			return format, audio, nil
		default:
			// Skip unknown chunk, chunks are word aligned
			if _, err := reader.Seek(int64(chunkSize+chunkSize%2), io.SeekCurrent); err != nil {
				return nil, nil, err
			}
		}
	}

	return nil, nil, errors.New("wav file has no data chunk")
}

// toContextPCM converts decoded WAV samples into the shared context layout.
// Only 16-bit PCM at the context rate is accepted; mono is widened to stereo.
func toContextPCM(format *wavFormat, audio []byte) ([]byte, error) {
	if format.AudioFormat != wavFormatPCM || format.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported wav encoding (format %d, %d bits)", format.AudioFormat, format.BitDepth)
	}
	if format.SampleRate != sampleRate {
		return nil, fmt.Errorf("unsupported wav sample rate %d, want %d", format.SampleRate, sampleRate)
	}

	switch format.Channels {
	case 2:
		return audio[:len(audio)-len(audio)%4], nil
	case 1:
		frames := len(audio) / bytesPerSample
		stereo := make([]byte, frames*bytesPerSample*2)
		for i := 0; i < frames; i++ {
			sample := audio[i*2 : i*2+2]
			copy(stereo[i*4:], sample)
			copy(stereo[i*4+2:], sample)
		}
		return stereo, nil
	default:
		return nil, fmt.Errorf("unsupported wav channel count %d", format.Channels)
	}
}
