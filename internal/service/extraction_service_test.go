package service

import (
	"context"
	"errors"
	"testing"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractionFixture(provider *fakeProvider) IExtractionService {
	return NewExtractionService(provider, NewPassthroughIsolator(), "vision-model", nopLogger{})
}

func extractReq() *dto.ExtractionRequest {
	return &dto.ExtractionRequest{FileData: "aGVsbG8=", FileName: "profilbogen.pdf"}
}

func TestExtractParsesCandidatesAndNormalizes(t *testing.T) {
	provider := &fakeProvider{answer: `Hier das Ergebnis:
{"candidates":[{"name":"Anna Beispiel","dimensions":{"ICH":9,"SOZ":3,"UNBEKANNT":5},"confidence":"high"}],"warnings":["LEI nicht lesbar"]}`}
	svc := newExtractionFixture(provider)

	resp, err := svc.Extract(context.Background(), uuid.New(), extractReq(), "sk-test")
	require.NoError(t, err)

	require.Len(t, resp.Candidates, 1)
	c := resp.Candidates[0]
	assert.Equal(t, "Anna Beispiel", c.Candidate.Name)
	assert.Equal(t, constant.ConfidenceHigh, c.Confidence)

	dims := c.Candidate.Dimensions
	assert.Len(t, dims, len(constant.DimensionKeys), "exactly the canonical keys")
	assert.Equal(t, 7, dims[constant.DimensionIchStaerke], "out of range values are clamped")
	assert.Equal(t, 3, dims[constant.DimensionSozialkontakt])
	assert.Equal(t, constant.DimensionDefault, dims[constant.DimensionLeistung], "missing values get the default")
	assert.NotContains(t, dims, "UNBEKANNT")

	assert.Equal(t, []string{"LEI nicht lesbar"}, resp.Warnings)
}

func TestExtractUsesVisionModelAndImagePayload(t *testing.T) {
	provider := &fakeProvider{answer: `{"candidates":[{"name":"B","dimensions":{},"confidence":"medium"}],"warnings":[]}`}
	svc := newExtractionFixture(provider)

	_, err := svc.Extract(context.Background(), uuid.New(), extractReq(), "sk-test")
	require.NoError(t, err)

	assert.Equal(t, "vision-model", provider.lastOpts.Model)
	assert.Equal(t, "sk-test", provider.lastOpts.APIKey)
	require.Len(t, provider.history, 2)
	assert.Equal(t, []string{"aGVsbG8="}, provider.history[1].Images)
}

func TestExtractZeroCandidatesIsAnError(t *testing.T) {
	provider := &fakeProvider{answer: `{"candidates":[],"warnings":[]}`}
	svc := newExtractionFixture(provider)

	_, err := svc.Extract(context.Background(), uuid.New(), extractReq(), "")
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestExtractNamelessCandidatesDropped(t *testing.T) {
	provider := &fakeProvider{answer: `{"candidates":[{"name":"  ","dimensions":{},"confidence":"low"}],"warnings":[]}`}
	svc := newExtractionFixture(provider)

	_, err := svc.Extract(context.Background(), uuid.New(), extractReq(), "")
	require.Error(t, err)
}

func TestExtractUnknownConfidenceDowngraded(t *testing.T) {
	provider := &fakeProvider{answer: `{"candidates":[{"name":"C","dimensions":{},"confidence":"certain"}],"warnings":[]}`}
	svc := newExtractionFixture(provider)

	resp, err := svc.Extract(context.Background(), uuid.New(), extractReq(), "")
	require.NoError(t, err)
	assert.Equal(t, constant.ConfidenceLow, resp.Candidates[0].Confidence)
}

func TestExtractGatewayFailureSurfaces(t *testing.T) {
	provider := &fakeProvider{err: errors.New("timeout")}
	svc := newExtractionFixture(provider)

	_, err := svc.Extract(context.Background(), uuid.New(), extractReq(), "")
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Status)
}

func TestExtractUnparseableOutputIsClientError(t *testing.T) {
	provider := &fakeProvider{answer: "Ich kann das Bild leider nicht lesen."}
	svc := newExtractionFixture(provider)

	_, err := svc.Extract(context.Background(), uuid.New(), extractReq(), "")
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}
