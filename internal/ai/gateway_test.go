package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type stubCompleter struct {
	response string
	err      error
	calls    int
}

func (s *stubCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	s.calls++
	return s.response, s.err
}

func TestAnalyzeIEPParsesFencedJSON(t *testing.T) {
	stub := &stubCompleter{response: "```json\n{\"summary\":\"Short summary\",\"goals\":[\"Reading fluency\"],\"accommodations\":[\"Extended time\"],\"redFlags\":[\"'as needed' language\"],\"legalLens\":\"IDEA requires measurable goals.\",\"serviceGrid\":[{\"service\":\"Speech\",\"frequency\":\"2x weekly\",\"setting\":\"Resource room\"}]}\n```"}
	gw := NewGatewayWithCompleter(stub, nil)

	analysis, err := gw.AnalyzeIEP(context.Background(), "iep text")
	require.NoError(t, err)
	assert.Equal(t, "Short summary", analysis.Summary)
	assert.Equal(t, []string{"Reading fluency"}, []string(analysis.Goals))
	require.Len(t, analysis.ServiceGrid, 1)
	assert.Equal(t, "Speech", analysis.ServiceGrid[0].Service)
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeIEPNonJSONFailsClosed(t *testing.T) {
	stub := &stubCompleter{response: "I'm sorry, here is my analysis in prose form."}
	gw := NewGatewayWithCompleter(stub, nil)

	_, err := gw.AnalyzeIEP(context.Background(), "iep text")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrMalformedAIResponse.Code, appErr.Code)
	// malformed output is never retried internally
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeIEPMissingFieldFailsClosed(t *testing.T) {
	stub := &stubCompleter{response: `{"summary":"s","goals":[],"accommodations":[],"redFlags":[]}`}
	gw := NewGatewayWithCompleter(stub, nil)

	_, err := gw.AnalyzeIEP(context.Background(), "iep text")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrMalformedAIResponse.Code, appErrors.FromError(err).Code)
}

func TestAnalyzeIEPUpstreamError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	gw := NewGatewayWithCompleter(stub, nil)

	_, err := gw.AnalyzeIEP(context.Background(), "iep text")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}

func TestCompareIEPs(t *testing.T) {
	stub := &stubCompleter{response: `{"improvements":["More speech minutes"],"regressions":[],"unchanged":["Reading goal"],"verdict":"Net improvement"}`}
	gw := NewGatewayWithCompleter(stub, nil)

	cmp, err := gw.CompareIEPs(context.Background(), "old", "new")
	require.NoError(t, err)
	assert.Equal(t, "Net improvement", cmp.Verdict)
	assert.Len(t, cmp.Improvements, 1)
	assert.Empty(t, cmp.Regressions)
}

func TestCompareIEPsMissingVerdict(t *testing.T) {
	stub := &stubCompleter{response: `{"improvements":[],"regressions":[],"unchanged":[]}`}
	gw := NewGatewayWithCompleter(stub, nil)

	_, err := gw.CompareIEPs(context.Background(), "old", "new")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrMalformedAIResponse.Code, appErrors.FromError(err).Code)
}

func TestFreeTextOperations(t *testing.T) {
	stub := &stubCompleter{response: "Dear District,"}
	gw := NewGatewayWithCompleter(stub, nil)

	letter, err := gw.GenerateLetter(context.Background(), "Service Concern", "missed speech sessions")
	require.NoError(t, err)
	assert.Equal(t, "Dear District,", letter)

	revised, err := gw.ReviseLetter(context.Background(), letter, "shorter and firmer")
	require.NoError(t, err)
	assert.NotEmpty(t, revised)

	reply, err := gw.SimulateMeeting(context.Background(), "We want more speech therapy", "3rd grader, autism")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}

func TestFreeTextEmptyResponse(t *testing.T) {
	stub := &stubCompleter{response: ""}
	gw := NewGatewayWithCompleter(stub, nil)

	_, err := gw.LegalAnswer(context.Background(), "What is FAPE?")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrMalformedAIResponse.Code, appErrors.FromError(err).Code)
}
