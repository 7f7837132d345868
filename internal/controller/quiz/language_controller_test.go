package quiz

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tms/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestLanguageController(t *testing.T) {
	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{"List", http.MethodGet, "/language", "", http.StatusOK, `"name":"English"`},
		{"Get", http.MethodGet, "/language/1", "", http.StatusOK, `"id":1`},
		{"Get missing", http.MethodGet, "/language/3", "", http.StatusNotFound, "Language not found with id 3"},
		{"Get bad id", http.MethodGet, "/language/-1", "", http.StatusBadRequest, ""},
		{"Create", http.MethodPost, "/language", `{"name":"French"}`, http.StatusOK, `"name":"French"`},
		{"Create empty body", http.MethodPost, "/language", `{}`, http.StatusBadRequest, ""},
		{"Update", http.MethodPut, "/language/1", `{"name":"British English"}`, http.StatusOK, `"name":"British English"`},
		{"Update missing", http.MethodPut, "/language/3", `{"name":"x"}`, http.StatusNotFound, ""},
		{"Delete", http.MethodDelete, "/language/1", "", http.StatusOK, ""},
		{"Delete missing", http.MethodDelete, "/language/3", "", http.StatusNotFound, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockLanguageService{languages: []dto.LanguageResponse{{ID: 1, Name: "English"}}}
			router := gin.New()
			NewLanguageController(svc).RegisterRoutes(router)

			rec := perform(router, tc.method, tc.path, tc.body)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tc.expectedBody)
			}
		})
	}
}
