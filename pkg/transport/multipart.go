package transport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

type multipartFile struct {
	field    string
	filename string
	content  io.Reader
}

// Multipart is a multipart/form-data body, used to create or update records
// that carry file fields.
type Multipart struct {
	fields [][2]string
	files  []multipartFile
}

// NewMultipart returns an empty form.
func NewMultipart() *Multipart {
	return &Multipart{}
}

// AddField appends a plain form value. Repeated names are sent repeatedly.
func (m *Multipart) AddField(name, value string) *Multipart {
	m.fields = append(m.fields, [2]string{name, value})
	return m
}

// AddFile appends a file part read from content when the request is sent.
func (m *Multipart) AddFile(field, filename string, content io.Reader) *Multipart {
	m.files = append(m.files, multipartFile{field: field, filename: filename, content: content})
	return m
}

// encode renders the form and returns the body with its content type.
func (m *Multipart) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range m.fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", errors.Join(ErrEncodeRequest, err)
		}
	}

	for _, f := range m.files {
		if f.content == nil {
			return nil, "", fmt.Errorf("%w: file %q has no content", ErrEncodeRequest, f.filename)
		}
		part, err := w.CreateFormFile(f.field, f.filename)
		if err != nil {
			return nil, "", errors.Join(ErrEncodeRequest, err)
		}
		if _, err := io.Copy(part, f.content); err != nil {
			return nil, "", errors.Join(ErrEncodeRequest, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Join(ErrEncodeRequest, err)
	}

	return buf, w.FormDataContentType(), nil
}
