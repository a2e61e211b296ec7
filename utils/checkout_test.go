package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reinvent/config"
	"reinvent/models"

	"github.com/stretchr/testify/assert"
)

func checkoutFixtures() (models.Program, models.User) {
	program := models.Program{Name: "Foundations", Slug: "foundations", Price: 99}
	program.ID = 1
	user := models.User{FullName: "Test User", Email: "test.user@example.com"}
	user.ID = 2
	return program, user
}

func TestCheckoutRequiresIdentityFields(t *testing.T) {
	config.AppConfig = &config.Config{
		PaymentProvider: "http",
		FrontendBaseURL: "http://localhost:5173",
	}

	program, user := checkoutFixtures()

	// Missing email
	noEmail := user
	noEmail.Email = ""
	_, err := CreateCheckoutSession(program, noEmail)
	assert.Error(t, err)

	// Missing user id
	noID := user
	noID.ID = 0
	_, err = CreateCheckoutSession(program, noID)
	assert.Error(t, err)

	// Missing program id
	noProgram := program
	noProgram.ID = 0
	_, err = CreateCheckoutSession(noProgram, user)
	assert.Error(t, err)
}

func TestCheckoutSurfacesProviderErrorVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"Your card was declined."}`))
	}))
	defer server.Close()

	config.AppConfig = &config.Config{
		PaymentProvider: "http",
		CheckoutApiURL:  server.URL,
		FrontendBaseURL: "http://localhost:5173",
	}

	program, user := checkoutFixtures()
	session, err := CreateCheckoutSession(program, user)
	assert.Nil(t, session)
	assert.EqualError(t, err, "Your card was declined.")
}

func TestCheckoutReturnsProviderSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"checkout_url":"https://pay.example.com/cs_123","reference":"cs_123"}`))
	}))
	defer server.Close()

	config.AppConfig = &config.Config{
		PaymentProvider: "http",
		CheckoutApiURL:  server.URL,
		FrontendBaseURL: "http://localhost:5173",
	}

	program, user := checkoutFixtures()
	session, err := CreateCheckoutSession(program, user)
	assert.NoError(t, err)
	assert.Equal(t, "cs_123", session.Reference)
	assert.Equal(t, "https://pay.example.com/cs_123", session.CheckoutURL)
}
