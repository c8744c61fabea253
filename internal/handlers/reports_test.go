package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabilassungkar/MoodMelt/internal/models"
	"github.com/nabilassungkar/MoodMelt/internal/store"
)

var router *gin.Engine
var reportStore *store.Store

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	reportStore = store.NewStore()
	handler := NewReportHandler(reportStore)

	router = gin.New()
	v1 := router.Group("/api/v1")
	handler.Register(v1)

	os.Exit(m.Run())
}

// uploadCSV posts csvContent as a multipart "file" field and returns the
// recorded response.
func uploadCSV(t *testing.T, csvContent string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "activity.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvContent))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/reports", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

const sampleCSV = "Date,Platform,Sentiment,Location,Engagements,Media Type\n" +
	"2024-01-01,Instagram,Positive,Jakarta,10,Video\n" +
	"2024-01-02,Instagram,Positive,Jakarta,20,Image\n" +
	"2024-01-02,TikTok,Negative,Bandung,5,Video\n"

func TestCreateReport(t *testing.T) {
	w := uploadCSV(t, sampleCSV)
	require.Equal(t, http.StatusCreated, w.Code)

	var rep models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))

	assert.NotEqual(t, uuid.Nil, rep.ID)
	assert.Equal(t, "activity.csv", rep.FileName)
	assert.Equal(t, 3, rep.RowCount)
	require.Len(t, rep.Records, 3)
	assert.Equal(t, "Instagram", rep.Records[0].Platform)

	require.NotEmpty(t, rep.SentimentBreakdown)
	assert.Equal(t, "Positive", rep.SentimentBreakdown[0].Value)
	assert.Equal(t, 2, rep.SentimentBreakdown[0].Total)

	require.Len(t, rep.DailyEngagements, 2)
	require.NotNil(t, rep.EngagementStats)
	assert.Equal(t, 25, rep.EngagementStats.Max)

	assert.Len(t, rep.Insights.Sentiment, 3)
	assert.Len(t, rep.Recommendations, 5)
}

func TestCreateReport_HeaderOnlyCSV(t *testing.T) {
	w := uploadCSV(t, "Date,Platform,Sentiment\n")
	require.Equal(t, http.StatusCreated, w.Code)

	var rep models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, 0, rep.RowCount)
	require.Len(t, rep.Recommendations, 1)
	assert.Contains(t, rep.Recommendations[0], "Upload your CSV file")
}

func TestCreateReport_MissingFile(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/reports", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrorCodeMissingFile, apiErr.Code)
}

func TestGetReport(t *testing.T) {
	created := createdReport(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reports/"+created.ID.String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rep models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, created.ID, rep.ID)
	assert.Equal(t, created.RowCount, rep.RowCount)
}

func TestGetReport_InvalidID(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reports/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrorCodeInvalidIDFormat, apiErr.Code)
}

func TestGetReport_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reports/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrorCodeReportNotFound, apiErr.Code)
}

func TestListReports(t *testing.T) {
	created := createdReport(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reports", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var list []models.ReportSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	found := false
	for _, summary := range list {
		if summary.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found, "created report should appear in the listing")
}

func TestDownloadPDF(t *testing.T) {
	created := createdReport(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reports/"+created.ID.String()+"/pdf", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "moodmelt_dashboard_report.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestDeleteReport(t *testing.T) {
	created := createdReport(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/reports/"+created.ID.String(), nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/v1/reports/"+created.ID.String(), nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func createdReport(t *testing.T) models.Report {
	t.Helper()
	w := uploadCSV(t, sampleCSV)
	require.Equal(t, http.StatusCreated, w.Code)
	var rep models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	return rep
}
