package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"wempy-orders/internal/domain"
	"wempy-orders/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
}

func NewHandler(orders service.OrderServiceInterface) *Handler {
	return &Handler{Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/submit_order", h.submitOrder).Methods("POST")
	r.HandleFunc("/print_order/{orderId:[0-9]+}", h.printOrder).Methods("GET")
	r.HandleFunc("/", h.root).Methods("GET")
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid order payload: "+err.Error())
		return
	}

	orderID, filePath, err := h.Orders.SubmitOrder(r.Context(), &order)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeDetail(w, http.StatusInternalServerError, "Error processing order: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"order_id":  orderID,
		"file_path": filePath,
	})
}

func (h *Handler) printOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	if err := h.Orders.ReprintOrder(r.Context(), orderID); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeDetail(w, http.StatusNotFound, fmt.Sprintf("Order %d not found.", orderID))
			return
		}
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Could not print order %d: %v", orderID, err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Order %d sent to printer.", orderID),
	})
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Wempy Order Service Ready"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}
