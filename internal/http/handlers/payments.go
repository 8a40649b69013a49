package handlers

import (
	"encoding/json"
	"net"
	"net/http"
)

type createIntentRequest struct {
	IdeaID string `json:"ideaId"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	PaymentID    string `json:"paymentId"`
}

type confirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

// CreatePaymentIntent starts a payment for one of the caller's ideas.
func (a *App) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.IdeaID == "" {
		a.fail(w, http.StatusBadRequest, "ideaId is required")
		return
	}

	result, err := a.Payments.CreateIntent(r.Context(), a.actor(r), req.IdeaID, a.payerCountry(r))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, createIntentResponse{
		ClientSecret: result.ClientSecret,
		PaymentID:    result.PaymentID,
	})
}

// ConfirmPayment reconciles a gateway intent reported by the client.
func (a *App) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.PaymentIntentID == "" {
		a.fail(w, http.StatusBadRequest, "paymentIntentId is required")
		return
	}

	payment, err := a.Payments.Confirm(r.Context(), req.PaymentIntentID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toPaymentDTO(payment))
}

// PaymentHistory lists the caller's payments newest first.
func (a *App) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	items, err := a.Payments.History(r.Context(), a.actor(r))
	if err != nil {
		a.domainError(w, err)
		return
	}
	out := make([]paymentHistoryDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toPaymentHistoryDTO(it))
	}
	a.json(w, http.StatusOK, out)
}

// payerCountry resolves a best-effort country code for the request IP.
// A missing resolver or failed lookup yields an empty country.
func (a *App) payerCountry(r *http.Request) string {
	if a.Geo == nil {
		return ""
	}
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	code, err := a.Geo.CountryCode(ip)
	if err != nil {
		return ""
	}
	return code
}
