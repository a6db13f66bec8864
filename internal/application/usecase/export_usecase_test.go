package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/ports"
	"github.com/jhoicas/parser-config-api/internal/domain"
)

type stubExporter struct {
	seen    *dto.ParserDetailResponse
	entries []ports.ArchiveEntry
}

func (s *stubExporter) Export(doc *dto.ParserDetailResponse) ([]byte, string, error) {
	s.seen = doc
	return []byte("<parser/>"), "abc123", nil
}

func (s *stubExporter) Generate(doc *dto.ParserDetailResponse) ([]byte, error) {
	s.seen = doc
	return []byte("%PDF-1.4"), nil
}

func (s *stubExporter) Zip(entries []ports.ArchiveEntry) ([]byte, error) {
	s.entries = entries
	return []byte("PK"), nil
}

func TestExportUseCase(t *testing.T) {
	def := &dto.ParserDetailResponse{ParserResponse: dto.ParserResponse{ID: 9, Name: "Vendor Bills 2024"}}
	stub := &stubExporter{}
	uc := NewExportUseCase(&fakeParserReader{def: def}, stub, stub, stub)
	ctx := context.Background()

	data, digest, err := uc.XML(ctx, "org", 9)
	require.NoError(t, err)
	assert.Equal(t, "<parser/>", string(data))
	assert.Equal(t, "abc123", digest)
	assert.Same(t, def, stub.seen)

	pdf, name, err := uc.PDF(ctx, "org", 9)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(pdf))
	assert.Equal(t, "Vendor_Bills_2024-9.pdf", name)

	zip, zipName, err := uc.Bundle(ctx, "org", 9)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(zip))
	assert.Equal(t, "Vendor_Bills_2024-9.zip", zipName)
	require.Len(t, stub.entries, 3)
	assert.Equal(t, "Vendor_Bills_2024-9.xml", stub.entries[0].Name)
	assert.Equal(t, "abc123  Vendor_Bills_2024-9.xml\n", string(stub.entries[1].Data))
	assert.Equal(t, "Vendor_Bills_2024-9.pdf", stub.entries[2].Name)
}

func TestExportUseCase_ParserInexistente(t *testing.T) {
	uc := NewExportUseCase(&fakeParserReader{err: domain.ErrParserNotFound}, &stubExporter{}, &stubExporter{}, &stubExporter{})
	_, _, err := uc.PDF(context.Background(), "org", 1)
	assert.ErrorIs(t, err, domain.ErrParserNotFound)
}
