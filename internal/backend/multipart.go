package backend

import (
	"bytes"
	"mime/multipart"
)

// MultipartPayload accumulates form fields and file parts for a multipart
// POST. Errors are deferred until Encode so call sites stay flat.
type MultipartPayload struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func NewMultipartPayload() *MultipartPayload {
	m := &MultipartPayload{}
	m.w = multipart.NewWriter(&m.buf)
	return m
}

// AddField appends a plain form field.
func (m *MultipartPayload) AddField(name, value string) {
	if m.err != nil {
		return
	}
	m.err = m.w.WriteField(name, value)
}

// AddFile appends a file part with the given field name and filename.
func (m *MultipartPayload) AddFile(field, filename string, content []byte) {
	if m.err != nil {
		return
	}
	part, err := m.w.CreateFormFile(field, filename)
	if err != nil {
		m.err = err
		return
	}
	_, m.err = part.Write(content)
}

// Encode finalizes the form and returns the body bytes and the content type
// carrying the generated boundary.
func (m *MultipartPayload) Encode() ([]byte, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	if err := m.w.Close(); err != nil {
		return nil, "", err
	}
	return m.buf.Bytes(), m.w.FormDataContentType(), nil
}
