package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResumeTextPlain(t *testing.T) {
	text, err := ExtractResumeText("text/plain", []byte("  experienced gopher, ten years of Go  \n"))
	require.NoError(t, err)
	assert.Equal(t, "experienced gopher, ten years of Go", text)
}

func TestExtractResumeTextEmptyFile(t *testing.T) {
	_, err := ExtractResumeText("text/plain", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestExtractResumeTextTooShort(t *testing.T) {
	_, err := ExtractResumeText("text/plain", []byte("  hi  "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extractable text")
}

func TestExtractResumeTextUnsupportedMime(t *testing.T) {
	_, err := ExtractResumeText("image/png", []byte{0x89, 0x50})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractResumeTextBadPDF(t *testing.T) {
	_, err := ExtractResumeText("application/pdf", []byte("not really a pdf"))
	require.Error(t, err)
}

func TestExtractResumeTextBadDocx(t *testing.T) {
	_, err := ExtractResumeText("application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("not a zip"))
	require.Error(t, err)
}
