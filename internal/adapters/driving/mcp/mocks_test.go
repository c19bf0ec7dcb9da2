package mcp

import (
	"context"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.AssetSummary
	err     error
	query   string
}

func (m *mockSearchService) Search(_ context.Context, query string) ([]domain.AssetSummary, error) {
	m.query = query
	return m.results, m.err
}

func (m *mockSearchService) Explain(_ string) domain.StructuredQuery {
	return domain.StructuredQuery{}
}

// mockAssetService is a mock implementation of driving.AssetService.
type mockAssetService struct {
	id     int64
	detail *domain.AssetDetail
	err    error

	gotText string
	gotOpts domain.IngestOptions
}

func (m *mockAssetService) Ingest(_ context.Context, rawText string, opts domain.IngestOptions) (int64, error) {
	m.gotText = rawText
	m.gotOpts = opts
	return m.id, m.err
}

func (m *mockAssetService) Get(_ context.Context, _ int64) (*domain.AssetDetail, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	return m.detail, m.detail != nil, nil
}

func (m *mockAssetService) Expansions(_ context.Context, _ int64) ([]domain.Expansion, error) {
	return nil, m.err
}

// mockDictionaryService is a mock implementation of driving.DictionaryService.
type mockDictionaryService struct {
	terms []domain.DomainTerm
	err   error
}

func (m *mockDictionaryService) List(_ context.Context) ([]domain.DomainTerm, error) {
	return m.terms, m.err
}

func (m *mockDictionaryService) Vocabulary() domain.Vocabulary {
	return domain.Vocabulary{Terms: m.terms}
}

func newTestServer(t interface{ Fatalf(string, ...any) }, ports *Ports) *Server {
	s, err := NewServer(ports)
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	return s
}

func testDetail() *domain.AssetDetail {
	return &domain.AssetDetail{
		ID:        7,
		Type:      domain.DefaultAssetType,
		Source:    "mcp",
		CreatedAt: 1700000000,
		RawText:   "the catalyst sped up the reaction",
		Summary:   "Change is being accelerated.",
		Keywords:  domain.FacetBlob{Name: "keywords", Raw: `["catalyst","reaction"]`},
		Metaphors: domain.FacetBlob{Name: "metaphors", Raw: `{"pairs":[["catalyst","catalyst"]]}`},
		Structure: domain.FacetBlob{Name: "structure", Raw: `{"sections":[{"type":"text","value":"Catalysis"}]}`},
		Strategy:  domain.FacetBlob{Name: "strategy", Raw: `not json`},
		Humanized: "Someone helped things move faster.",
	}
}
