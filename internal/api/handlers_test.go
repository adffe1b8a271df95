package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartparking/internal/auth"
	"smartparking/internal/entities"
	"smartparking/internal/ledger"
	"smartparking/internal/repository"
	"smartparking/internal/service"
)

func newTestServer(t *testing.T, l *ledger.Ledger) *httptest.Server {
	t.Helper()

	notify := service.NewNotifyService()
	slotSvc := service.NewSlotService(l, service.NewSimulatedGateway(0), notify)
	authSvc := service.NewAuthService(
		repository.NewUserRepository(),
		repository.NewSessionRepository(),
		[]byte("test-secret"),
		"admin123",
		0,
	)
	authHandler := NewAuthHandler(authSvc)
	slotHandler := NewSlotHandler(slotSvc, notify)

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")

	dashboard := r.PathPrefix("/api").Subrouter()
	dashboard.Use(auth.SessionMiddleware(authSvc))
	dashboard.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	dashboard.HandleFunc("/slots", slotHandler.ListSlots).Methods("GET")
	dashboard.HandleFunc("/slots/{label}/book", slotHandler.BookSlot).Methods("POST")
	dashboard.HandleFunc("/slots/{label}/release", slotHandler.ReleaseSlot).Methods("POST")
	dashboard.HandleFunc("/stats", slotHandler.GetStats).Methods("GET")
	dashboard.HandleFunc("/bookings/active", slotHandler.ActiveBooking).Methods("GET")
	dashboard.HandleFunc("/bookings/recent", slotHandler.RecentBookings).Methods("GET")
	dashboard.HandleFunc("/notifications", slotHandler.Notifications).Methods("GET")

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, server *httptest.Server, username, password string) string {
	t.Helper()
	resp := doJSON(t, "POST", server.URL+"/api/auth/login", "", LoginRequest{Username: username, Password: password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestDashboardRequiresSession(t *testing.T) {
	server := newTestServer(t, ledger.New("A1"))

	resp, err := http.Get(server.URL + "/api/slots")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server := newTestServer(t, ledger.New("A1"))

	resp := doJSON(t, "POST", server.URL+"/api/auth/login", "", LoginRequest{Username: "ghost", Password: "nope"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignupPasswordMismatch(t *testing.T) {
	server := newTestServer(t, ledger.New("A1"))

	resp := doJSON(t, "POST", server.URL+"/api/auth/signup", "", SignupRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "one",
		ConfirmPassword: "two",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignupDuplicateUsername(t *testing.T) {
	server := newTestServer(t, ledger.New("A1"))

	signup := SignupRequest{Username: "alice", Email: "alice@example.com", Password: "pw", ConfirmPassword: "pw"}
	resp := doJSON(t, "POST", server.URL+"/api/auth/signup", "", signup)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, "POST", server.URL+"/api/auth/signup", "", signup)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBookAndReleaseFlow(t *testing.T) {
	server := newTestServer(t, ledger.New("A1", "B1"))
	token := login(t, server, "u1", "admin123")

	booking := entities.BookingRequest{DurationHours: 2, VehicleNumber: "XYZ1", PaymentMethod: "upi"}
	resp := doJSON(t, "POST", server.URL+"/api/slots/A1/book", token, booking)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bookOut map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bookOut))
	resp.Body.Close()
	assert.Equal(t, float64(75), bookOut["amount"])

	// Booking the same slot again conflicts.
	resp = doJSON(t, "POST", server.URL+"/api/slots/A1/book", token, booking)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, "GET", server.URL+"/api/stats", token, nil)
	var stats entities.StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	resp.Body.Close()
	assert.Equal(t, 1, stats.Occupied)
	assert.Equal(t, 1, stats.Available)

	resp = doJSON(t, "GET", server.URL+"/api/bookings/active", token, nil)
	var active entities.ActiveBookingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&active))
	resp.Body.Close()
	assert.Equal(t, "A1", active.Slot.Label)

	resp = doJSON(t, "POST", server.URL+"/api/slots/A1/release", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, "GET", server.URL+"/api/bookings/active", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBookWithoutPaymentMethod(t *testing.T) {
	server := newTestServer(t, ledger.New("A1"))
	token := login(t, server, "u1", "admin123")

	resp := doJSON(t, "POST", server.URL+"/api/slots/A1/book", token, entities.BookingRequest{
		DurationHours: 1,
		VehicleNumber: "XYZ1",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBookUnknownSlotReturns404(t *testing.T) {
	server := newTestServer(t, ledger.New("A1"))
	token := login(t, server, "u1", "admin123")

	resp := doJSON(t, "POST", server.URL+"/api/slots/Z9/book", token, entities.BookingRequest{
		DurationHours: 1,
		VehicleNumber: "XYZ1",
		PaymentMethod: "card",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListSlotsSeeded(t *testing.T) {
	server := newTestServer(t, ledger.NewSeeded())
	token := login(t, server, "u1", "admin123")

	resp := doJSON(t, "GET", server.URL+"/api/slots", token, nil)
	var slots []entities.SlotView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&slots))
	resp.Body.Close()

	require.Len(t, slots, 8)
	assert.Equal(t, "A1", slots[0].Label)
	assert.Equal(t, "occupied", slots[1].Status)
	assert.NotNil(t, slots[1].Countdown, "occupied seed slot has a running countdown")
	assert.Equal(t, "reserved", slots[3].Status)
	assert.Nil(t, slots[3].Countdown, "reserved slots have no countdown")
}

func TestLogoutInvalidatesToken(t *testing.T) {
	server := newTestServer(t, ledger.New("A1"))
	token := login(t, server, "u1", "admin123")

	resp := doJSON(t, "POST", server.URL+"/api/auth/logout", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, "GET", server.URL+"/api/slots", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
