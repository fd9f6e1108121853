package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/PIG208/Airbook"
	"github.com/PIG208/Airbook/config"
	"github.com/PIG208/Airbook/database/mocks"
	"github.com/PIG208/Airbook/internal/auth"
)

const testSecretKey = "test-secret-key"

type TestRequest struct {
	Payload  io.Reader
	Router   *gin.Engine
	Response interface{}
	Method   string
	Route    string
	Session  *auth.Session
}

func SetUpTestRequest(t *testing.T, s TestRequest) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(s.Method, s.Route, s.Payload)
	req.Header.Set("Content-Type", "application/json")
	if s.Session != nil {
		token, err := auth.IssueToken(*s.Session, []byte(testSecretKey), time.Hour)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	resp := httptest.NewRecorder()
	s.Router.ServeHTTP(resp, req)

	if s.Response != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(s.Response))
	}
	return resp
}

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockDataSource) {
	t.Helper()
	config.MockConfig(&config.Configuration{
		Server:     config.ServerConfig{SecretKey: testSecretKey, Port: "5000"},
		DataSource: config.DataSourceConfig{Dns: "airbook:airbook@tcp(localhost:3306)/airbook"},
	})
	ds := new(mocks.MockDataSource)
	core, err := airbook.NewAirbook(ds)
	require.NoError(t, err)
	return NewAPI(core).Router(), ds
}

// envelope is the response shape every endpoint answers with.
type envelope struct {
	Result  string      `json:"result"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
