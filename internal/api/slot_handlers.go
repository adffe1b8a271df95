package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"smartparking/internal/auth"
	"smartparking/internal/entities"
	apperrors "smartparking/internal/errors"
	"smartparking/internal/service"
)

type SlotHandler struct {
	Service *service.SlotService
	Notify  *service.NotifyService
}

func NewSlotHandler(svc *service.SlotService, notify *service.NotifyService) *SlotHandler {
	return &SlotHandler{Service: svc, Notify: notify}
}

func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Service.Slots(time.Now()))
}

func (h *SlotHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	label := mux.Vars(r)["label"]
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	slot, err := h.Service.Book(r.Context(), label, session.Username, session.Email, req)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusCode(err))
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"slot":    slot.Label,
		"amount":  slot.Amount,
		"message": "Slot " + slot.Label + " booked successfully! Timer started.",
	})
}

func (h *SlotHandler) ReleaseSlot(w http.ResponseWriter, r *http.Request) {
	label := mux.Vars(r)["label"]
	if _, err := h.Service.Release(label); err != nil {
		http.Error(w, err.Error(), apperrors.StatusCode(err))
		return
	}
	json.NewEncoder(w).Encode(MessageResponse{Message: "Slot " + label + " released successfully!"})
}

func (h *SlotHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Service.Stats())
}

func (h *SlotHandler) ActiveBooking(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	booking, err := h.Service.ActiveBooking(session.Username, time.Now())
	if err != nil {
		http.Error(w, "Error looking up active booking", http.StatusInternalServerError)
		return
	}
	if booking == nil {
		http.Error(w, "No active booking", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(booking)
}

func (h *SlotHandler) RecentBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.Service.RecentBookings()
	if bookings == nil {
		bookings = []entities.SlotView{}
	}
	json.NewEncoder(w).Encode(bookings)
}

func (h *SlotHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Notify.Active())
}
