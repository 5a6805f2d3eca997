package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/logitrustkenya/logistics-enhanced-sub000/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// doJSON runs one request against the router and returns the recorder.
func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func newShipmentRouter() (*gin.Engine, store.Stores) {
	stores := store.NewMemoryStores()
	sc := NewShipmentController(stores.Shipments, nil)
	r := gin.New()
	r.GET("/api/shipments", sc.GetShipments)
	r.POST("/api/shipments", sc.CreateShipment)
	r.PUT("/api/shipments", sc.UpdateShipment)
	r.DELETE("/api/shipments", sc.DeleteShipment)
	return r, stores
}

func newQuoteRouter() *gin.Engine {
	stores := store.NewMemoryStores()
	qc := NewQuoteController(stores.Quotes)
	r := gin.New()
	r.GET("/api/quotes", qc.GetQuotes)
	r.POST("/api/quotes", qc.CreateQuote)
	r.PUT("/api/quotes", qc.UpdateQuote)
	r.DELETE("/api/quotes", qc.DeleteQuote)
	return r
}

func newPaymentRouter() *gin.Engine {
	stores := store.NewMemoryStores()
	pc := NewPaymentController(stores.Payments)
	r := gin.New()
	r.GET("/api/payments", pc.GetPayments)
	r.POST("/api/payments", pc.CreatePayment)
	r.PUT("/api/payments", pc.UpdatePayment)
	r.DELETE("/api/payments", pc.DeletePayment)
	return r
}

func newTrackingRouter() *gin.Engine {
	stores := store.NewMemoryStores()
	tc := NewTrackingController(stores.Tracking)
	r := gin.New()
	r.GET("/api/tracking", tc.GetTrackingRecords)
	r.POST("/api/tracking", tc.CreateTrackingRecord)
	r.PUT("/api/tracking", tc.UpdateTrackingRecord)
	r.DELETE("/api/tracking", tc.DeleteTrackingRecord)
	return r
}

func newAuthRouter(secret []byte) *gin.Engine {
	stores := store.NewMemoryStores()
	ac := NewAuthController(stores.Users, secret)
	r := gin.New()
	r.POST("/api/auth/signup", ac.Signup)
	r.GET("/api/auth/signup", ac.SignupInfo)
	r.POST("/api/auth/login", ac.Login)
	r.PATCH("/api/auth/promote/:email", ac.PromoteUserToAdmin)
	return r
}
