// Package catalog reads invoices and the play catalog from JSON or YAML files.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/theater/internal/domain"
)

// FileLoader implements domain.InvoiceSource and domain.PlaySource.
type FileLoader struct {
	validate *validator.Validate
}

// New creates a FileLoader.
func New() *FileLoader {
	return &FileLoader{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// LoadInvoices reads either a list of invoices or a single invoice.
func (l *FileLoader) LoadInvoices(path string) ([]domain.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	invoices, err := DecodeInvoices(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	for i, inv := range invoices {
		if err := l.validate.Struct(inv); err != nil {
			return nil, fmt.Errorf("invoice %d in %s: %w", i+1, filepath.Base(path), describe(err))
		}
	}
	return invoices, nil
}

// LoadPlays reads an object of plays keyed by play ID.
func (l *FileLoader) LoadPlays(path string) (domain.Plays, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	plays, err := DecodePlays(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	ids := make([]string, 0, len(plays))
	for id := range plays {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := l.validate.Struct(plays[id]); err != nil {
			return nil, fmt.Errorf("play %q in %s: %w", id, filepath.Base(path), describe(err))
		}
	}
	return plays, nil
}

// Format is the encoding of a data file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeInvoices decodes a list of invoices, or a single invoice object.
// The document's top-level shape decides which one is expected.
func DecodeInvoices(data []byte, format Format) ([]domain.Invoice, error) {
	list, err := isList(data, format)
	if err != nil {
		return nil, err
	}
	if list {
		var invoices []domain.Invoice
		if err := decode(data, format, &invoices); err != nil {
			return nil, err
		}
		return invoices, nil
	}

	var single domain.Invoice
	if err := decode(data, format, &single); err != nil {
		return nil, err
	}
	return []domain.Invoice{single}, nil
}

// DecodePlays decodes an object of plays keyed by play ID.
func DecodePlays(data []byte, format Format) (domain.Plays, error) {
	var plays domain.Plays
	if err := decode(data, format, &plays); err != nil {
		return nil, err
	}
	if plays == nil {
		return nil, errors.New("no plays defined")
	}
	return plays, nil
}

var (
	errEmptyDocument = errors.New("empty document")
	errTrailingData  = errors.New("unexpected data after the first document")
)

func isList(data []byte, format Format) (bool, error) {
	if format == FormatYAML {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return false, err
		}
		return len(doc.Content) > 0 && doc.Content[0].Kind == yaml.SequenceNode, nil
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '[', nil
}

// decode reads exactly one document into v, rejecting unknown fields.
func decode(data []byte, format Format, v any) error {
	if format == FormatYAML {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return errEmptyDocument
			}
			return err
		}
		if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
			return errTrailingData
		}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyDocument
		}
		return err
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// describe turns validator errors into a short field list.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s is %s", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(fields, ", "))
}
