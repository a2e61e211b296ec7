package utils

import (
	"fmt"
	"log"

	"reinvent/config"
	"reinvent/models"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// CheckoutRequest is the handoff payload sent to the checkout provider.
// All three identity fields are required.
type CheckoutRequest struct {
	ProgramID     uint   `json:"program_id"`
	UserID        uint   `json:"user_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
	ProgramName   string `json:"program_name"`
	AmountCents   int64  `json:"amount_cents"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
	Reference     string `json:"reference"`
}

// CheckoutSession is what the provider hands back: a reference to poll on and
// a URL to redirect the browser to.
type CheckoutSession struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkout_url"`
}

var snapClient snap.Client

// InitCheckout configures the checkout provider client. Call once at startup.
func InitCheckout() {
	if config.AppConfig.PaymentProvider == "midtrans" {
		snapClient.New(config.AppConfig.MidtransServerKey, midtrans.Sandbox)
	}
}

// CreateCheckoutSession asks the configured provider for a hosted checkout
// page. A provider error message is returned verbatim so the caller can show
// it to the user.
func CreateCheckoutSession(program models.Program, user models.User) (*CheckoutSession, error) {
	req := CheckoutRequest{
		ProgramID:     program.ID,
		UserID:        user.ID,
		CustomerEmail: user.Email,
		CustomerName:  user.FullName,
		ProgramName:   program.Name,
		AmountCents:   int64(program.Price * 100),
		SuccessURL:    config.AppConfig.FrontendBaseURL + "/dashboard?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     config.AppConfig.FrontendBaseURL + "/programs/" + program.Slug,
		Reference:     uuid.NewString(),
	}
	if req.ProgramID == 0 || req.UserID == 0 || req.CustomerEmail == "" {
		return nil, fmt.Errorf("checkout requires program id, user id and customer email")
	}

	if config.AppConfig.PaymentProvider == "midtrans" {
		return createSnapSession(req)
	}
	return createHTTPSession(req)
}

// createSnapSession builds a Midtrans Snap transaction and returns its
// redirect URL
func createSnapSession(req CheckoutRequest) (*CheckoutSession, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.Reference,
			GrossAmt: req.AmountCents,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    fmt.Sprintf("program-%d", req.ProgramID),
			Name:  req.ProgramName,
			Price: req.AmountCents,
			Qty:   1,
		}},
	}

	resp, err := snapClient.CreateTransaction(snapReq)
	if err != nil {
		log.Printf("[CHECKOUT] Midtrans error: %v", err.GetMessage())
		return nil, fmt.Errorf("%s", err.GetMessage())
	}

	return &CheckoutSession{Reference: req.Reference, CheckoutURL: resp.RedirectURL}, nil
}

// createHTTPSession posts the handoff payload to a generic checkout endpoint.
// The endpoint must return {"checkout_url": "...", "reference": "..."}.
func createHTTPSession(req CheckoutRequest) (*CheckoutSession, error) {
	var session CheckoutSession
	var apiErr struct {
		Error string `json:"error"`
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.CheckoutApiKey).
		SetBody(req).
		SetResult(&session).
		SetError(&apiErr).
		Post(config.AppConfig.CheckoutApiURL)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		message := apiErr.Error
		if message == "" {
			message = resp.String()
		}
		log.Printf("[CHECKOUT] Provider returned %d: %s", resp.StatusCode(), message)
		return nil, fmt.Errorf("%s", message)
	}

	if session.Reference == "" {
		session.Reference = req.Reference
	}
	return &session, nil
}
