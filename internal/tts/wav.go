package tts

import (
	"bytes"
	"encoding/binary"
)

// WrapPCM wraps raw PCM data in a WAV container.
func WrapPCM(pcm []byte, sampleRate, channels, bytesPerSample int) []byte {
	dataLen := len(pcm)
	fileLen := 36 + dataLen // 44-byte header minus 8 bytes for RIFF header = 36

	buf := &bytes.Buffer{}
	buf.Grow(44 + dataLen)

	// RIFF header
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(fileLen))
	buf.WriteString("WAVE")

	// fmt subchunk
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))       // subchunk1 size
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))        // audio format (PCM)
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels)) // channels
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	byteRate := sampleRate * channels * bytesPerSample
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	blockAlign := channels * bytesPerSample
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bytesPerSample*8)) // bits per sample

	// data subchunk
	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(pcm)

	return buf.Bytes()
}
