package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"loanguard/handlers"
	"loanguard/middleware"
	"loanguard/models"
	"loanguard/routes"
	"loanguard/services/faq"
	"loanguard/services/intelligence"
	"loanguard/services/session"
	"loanguard/utils"
	"loanguard/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAdvisor struct {
	mock.Mock
}

func (m *mockAdvisor) AnalyzeLoanAgreement(ctx context.Context, loanText string, profile models.UserProfile, report *models.CIBILReport) (*models.LoanAnalysisResult, error) {
	args := m.Called(ctx, loanText, profile, report)
	r, _ := args.Get(0).(*models.LoanAnalysisResult)
	return r, args.Error(1)
}

func (m *mockAdvisor) CompareLoanOffers(ctx context.Context, offerA, offerB string, profile models.UserProfile, report *models.CIBILReport) (*models.LoanComparisonResult, error) {
	args := m.Called(ctx, offerA, offerB, profile, report)
	r, _ := args.Get(0).(*models.LoanComparisonResult)
	return r, args.Error(1)
}

func (m *mockAdvisor) CheckGovernmentSchemes(ctx context.Context, loanPurpose, loanAmount string) ([]models.GovernmentScheme, error) {
	args := m.Called(ctx, loanPurpose, loanAmount)
	r, _ := args.Get(0).([]models.GovernmentScheme)
	return r, args.Error(1)
}

// testClient keeps the session cookie between requests.
type testClient struct {
	t      *testing.T
	router *gin.Engine
	store  *session.MemoryStore
	cookie *http.Cookie
}

func newTestClient(t *testing.T, advisor intelligence.LoanAdvisor) *testClient {
	gin.SetMode(gin.TestMode)
	store := session.NewMemoryStore(time.Hour, 0)
	t.Cleanup(func() { store.Close() })

	tmpl, err := views.Load()
	require.NoError(t, err)

	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.Use(middleware.SessionMiddleware(time.Hour, false))
	r.SetHTMLTemplate(tmpl)
	routes.RegisterRoutes(r, handlers.NewHandlerBundle(handlers.NewLoanHandler(advisor, store, faq.MustCategories())))

	return &testClient{t: t, router: r, store: store}
}

func (tc *testClient) do(req *http.Request) *httptest.ResponseRecorder {
	if tc.cookie != nil {
		req.AddCookie(tc.cookie)
	}
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == utils.SessionCookieName {
			tc.cookie = ck
		}
	}
	return w
}

func (tc *testClient) get(path string) *httptest.ResponseRecorder {
	return tc.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (tc *testClient) json(method, path string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	require.NoError(tc.t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return tc.do(req)
}

func (tc *testClient) form(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.do(req)
}

func (tc *testClient) state() models.AppState {
	w := tc.get("/api/state")
	require.Equal(tc.t, http.StatusOK, w.Code)
	var s models.AppState
	require.NoError(tc.t, json.Unmarshal(w.Body.Bytes(), &s))
	return s
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func sampleAnalysis() *models.LoanAnalysisResult {
	return &models.LoanAnalysisResult{
		LoanFitScore:      61,
		TotalCostAnalysis: models.TotalCostAnalysis{TotalInterest: "₹1,20,000"},
		MarketRateComparison: models.MarketRateComparison{
			PotentialSavings: "₹30,000",
		},
		ActionPlan: models.ActionPlan{FinalVerdict: models.VerdictCaution, NextSteps: []models.Text{"Negotiate the fee"}},
	}
}

func TestIndexIssuesSessionAndRenders(t *testing.T) {
	tc := newTestClient(t, &mockAdvisor{})

	w := tc.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), views.AppName)
	require.NotNil(t, tc.cookie)

	s := tc.state()
	assert.Equal(t, models.DefaultProfile(), s.Profile)
	assert.Equal(t, models.ToolAnalyzer, s.Tool)
}

func TestAnalyzeSuccessStoresResult(t *testing.T) {
	advisor := &mockAdvisor{}
	result := sampleAnalysis()
	advisor.On("AnalyzeLoanAgreement", mock.Anything, "Interest 14% reducing", models.DefaultProfile(), (*models.CIBILReport)(nil)).
		Return(result, nil).Once()
	tc := newTestClient(t, advisor)

	w := tc.json(http.MethodPost, "/api/analyze", handlers.AnalyzeRequest{LoanText: "Interest 14% reducing"})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.LoanAnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.Number(61), got.LoanFitScore)

	s := tc.state()
	require.NotNil(t, s.Analyzer.Result)
	assert.Equal(t, "Interest 14% reducing", s.Analyzer.LoanText)
	assert.False(t, s.Analyzer.Pending)
	assert.Empty(t, s.Analyzer.Error)
	advisor.AssertExpectations(t)
}

func TestAnalyzeValidationKeepsPreviousResult(t *testing.T) {
	advisor := &mockAdvisor{}
	advisor.On("AnalyzeLoanAgreement", mock.Anything, "first", mock.Anything, mock.Anything).Return(sampleAnalysis(), nil).Once()
	tc := newTestClient(t, advisor)

	require.Equal(t, http.StatusOK, tc.json(http.MethodPost, "/api/analyze", handlers.AnalyzeRequest{LoanText: "first"}).Code)

	w := tc.json(http.MethodPost, "/api/analyze", handlers.AnalyzeRequest{LoanText: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, intelligence.MsgMissingLoanText, errorMessage(t, w))

	s := tc.state()
	assert.NotNil(t, s.Analyzer.Result)
	assert.Equal(t, intelligence.MsgMissingLoanText, s.Analyzer.Error)
	advisor.AssertNumberOfCalls(t, "AnalyzeLoanAgreement", 1)
}

func TestAnalyzeRejectsNonPositiveProfileAmount(t *testing.T) {
	advisor := &mockAdvisor{}
	tc := newTestClient(t, advisor)

	profile := models.DefaultProfile()
	profile.LoanAmount = 0
	require.Equal(t, http.StatusOK, tc.json(http.MethodPut, "/api/profile", profile).Code)

	w := tc.json(http.MethodPost, "/api/analyze", handlers.AnalyzeRequest{LoanText: "some loan"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, intelligence.MsgInvalidProfileAmount, errorMessage(t, w))
	advisor.AssertNotCalled(t, "AnalyzeLoanAgreement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeFailureIsGeneric(t *testing.T) {
	advisor := &mockAdvisor{}
	opErr := &intelligence.OperationError{Operation: intelligence.OpAnalysis, Message: "Failed to get a valid analysis from the AI. The response format was incorrect."}
	advisor.On("AnalyzeLoanAgreement", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, opErr)
	tc := newTestClient(t, advisor)

	w := tc.json(http.MethodPost, "/api/analyze", handlers.AnalyzeRequest{LoanText: "loan"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, opErr.Message, errorMessage(t, w))

	s := tc.state()
	assert.Nil(t, s.Analyzer.Result)
	assert.Equal(t, opErr.Message, s.Analyzer.Error)
	assert.False(t, s.Analyzer.Pending)
}

func TestFormPostsRedirect(t *testing.T) {
	advisor := &mockAdvisor{}
	advisor.On("AnalyzeLoanAgreement", mock.Anything, "from the form", mock.Anything, mock.Anything).Return(sampleAnalysis(), nil)
	tc := newTestClient(t, advisor)

	w := tc.form("/api/analyze", url.Values{"loanText": {"from the form"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// validation errors redirect too and land in the banner
	w = tc.form("/api/compare", url.Values{"offerA": {"A"}, "offerB": {""}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, intelligence.MsgMissingOffers, tc.state().Comparator.Error)

	page := tc.get("/")
	assert.Contains(t, page.Body.String(), "Comprehensive Analysis")
}

func TestProfileValidation(t *testing.T) {
	tc := newTestClient(t, &mockAdvisor{})

	w := tc.json(http.MethodPut, "/api/profile", map[string]any{"loanType": "Gold Loan"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tc.json(http.MethodPut, "/api/profile", map[string]any{"cibilScore": string(models.CIBILExcellent), "loanAmount": 750000})
	require.Equal(t, http.StatusOK, w.Code)
	s := tc.state()
	assert.Equal(t, models.CIBILExcellent, s.Profile.CibilScore)
	assert.Equal(t, 750000.0, s.Profile.LoanAmount)
	assert.Equal(t, models.LoanTypePersonal, s.Profile.LoanType)

	w = tc.form("/api/profile", url.Values{"loanAmount": {"NaN"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 750000.0, tc.state().Profile.LoanAmount)
}

func TestToolAndViewSelection(t *testing.T) {
	tc := newTestClient(t, &mockAdvisor{})

	assert.Equal(t, http.StatusSeeOther, tc.form("/api/tool", url.Values{"tool": {"schemes"}}).Code)
	assert.Equal(t, models.ToolSchemes, tc.state().Tool)

	w := tc.json(http.MethodPut, "/api/tool", map[string]string{"tool": "calculator"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ToolSchemes, tc.state().Tool)

	assert.Equal(t, http.StatusOK, tc.json(http.MethodPut, "/api/view", map[string]string{"view": "faq"}).Code)
	assert.Contains(t, tc.get("/").Body.String(), "Back to App")
}

func uploadReport(t *testing.T, tc *testClient, filename string, data []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="cibilReport"; filename="`+filename+`"`)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/report", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return tc.do(req)
}

func TestReportUploadIsSentWithAnalysis(t *testing.T) {
	advisor := &mockAdvisor{}
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	advisor.On("AnalyzeLoanAgreement", mock.Anything, "loan", mock.Anything,
		mock.MatchedBy(func(r *models.CIBILReport) bool {
			return r != nil && r.Name == "cibil.pdf" && r.MIMEType == "application/pdf" && bytes.Equal(r.Data, pdf)
		})).Return(sampleAnalysis(), nil).Once()
	tc := newTestClient(t, advisor)

	w := uploadReport(t, tc, "cibil.pdf", pdf)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mimeType":"application/pdf"`)

	var state map[string]any
	require.NoError(t, json.Unmarshal(tc.get("/api/state").Body.Bytes(), &state))
	report := state["report"].(map[string]any)
	assert.Equal(t, "cibil.pdf", report["name"])
	assert.NotContains(t, report, "data")

	require.Equal(t, http.StatusOK, tc.json(http.MethodPost, "/api/analyze", handlers.AnalyzeRequest{LoanText: "loan"}).Code)
	advisor.AssertExpectations(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/report", nil)
	assert.Equal(t, http.StatusNoContent, tc.do(req).Code)
	assert.Nil(t, tc.state().Report)
}

func TestReportUploadWithoutFile(t *testing.T) {
	tc := newTestClient(t, &mockAdvisor{})
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, tc.do(req).Code)
}

func TestCompare(t *testing.T) {
	advisor := &mockAdvisor{}
	cmp := &models.LoanComparisonResult{Winner: models.WinnerOfferB, Reasoning: "cheaper", CostDifference: "₹12,000"}
	advisor.On("CompareLoanOffers", mock.Anything, "A: 13%", "B: 11%", models.DefaultProfile(), (*models.CIBILReport)(nil)).Return(cmp, nil)
	tc := newTestClient(t, advisor)

	w := tc.json(http.MethodPost, "/api/compare", handlers.CompareRequest{OfferA: "A: 13%", OfferB: "B: 11%"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"winner":"Offer B"`)

	s := tc.state()
	require.NotNil(t, s.Comparator.Result)
	assert.Nil(t, s.Comparator.Result.CibilHealthAnalysis)
}

func TestSchemes(t *testing.T) {
	advisor := &mockAdvisor{}
	invalid := &intelligence.ValidationError{Message: intelligence.MsgInvalidSchemeAmount}
	advisor.On("CheckGovernmentSchemes", mock.Anything, "bakery", "abc").Return(nil, invalid)
	advisor.On("CheckGovernmentSchemes", mock.Anything, "bakery", "200000").Return([]models.GovernmentScheme{}, nil)
	tc := newTestClient(t, advisor)

	w := tc.json(http.MethodPost, "/api/schemes", handlers.SchemesRequest{LoanPurpose: "bakery", LoanAmount: " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, intelligence.MsgMissingSchemeInput, errorMessage(t, w))
	advisor.AssertNotCalled(t, "CheckGovernmentSchemes", mock.Anything, mock.Anything, mock.Anything)

	w = tc.json(http.MethodPost, "/api/schemes", handlers.SchemesRequest{LoanPurpose: "bakery", LoanAmount: "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, intelligence.MsgInvalidSchemeAmount, errorMessage(t, w))

	w = tc.json(http.MethodPost, "/api/schemes", handlers.SchemesRequest{LoanPurpose: "bakery", LoanAmount: "200000"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	s := tc.state()
	assert.True(t, s.Schemes.Checked())
	assert.Empty(t, s.Schemes.Error)
}

func TestShareAndPrint(t *testing.T) {
	advisor := &mockAdvisor{}
	advisor.On("AnalyzeLoanAgreement", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sampleAnalysis(), nil)
	tc := newTestClient(t, advisor)

	assert.Equal(t, http.StatusNotFound, tc.get("/api/share/analysis").Code)
	assert.Equal(t, http.StatusNotFound, tc.get("/api/share/comparison").Code)
	assert.Equal(t, http.StatusNotFound, tc.get("/print/analysis").Code)

	require.Equal(t, http.StatusOK, tc.json(http.MethodPost, "/api/analyze", handlers.AnalyzeRequest{LoanText: "loan"}).Code)

	w := tc.get("/api/share/analysis")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp["url"], "https://wa.me/?text="))
	assert.Contains(t, resp["url"], "Proceed%20with%20Caution")

	w = tc.get("/api/share/analysis?redirect=1")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, resp["url"], w.Header().Get("Location"))

	w = tc.get("/print/analysis")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Loan Fit Score: 61/100")
}

func TestStaticContent(t *testing.T) {
	tc := newTestClient(t, &mockAdvisor{})

	w := tc.get("/api/options")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Excellent (750+)")

	w = tc.get("/api/examples")
	require.Equal(t, http.StatusOK, w.Code)
	var ex models.Examples
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ex))
	assert.Len(t, ex.Analyzer, 3)
	assert.Len(t, ex.Comparator, 3)

	w = tc.get("/api/faq")
	require.Equal(t, http.StatusOK, w.Code)
	var cats []faq.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.NotEmpty(t, cats)
}

func TestHealth(t *testing.T) {
	tc := newTestClient(t, &mockAdvisor{})
	utils.CheckHealth(context.Background(), "memory", tc.store)

	w := tc.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy":true`)
}
