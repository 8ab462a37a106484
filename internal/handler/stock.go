package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// ListStockEntries returns a page of goods receipts.
// @Summary      List stock entries
// @Tags         stock
// @Produce      json
// @Param        page        query  int     false  "Page, from 1"
// @Param        limit       query  int     false  "Page size, up to 100"
// @Param        product_id  query  int     false  "Only receipts of this product"
// @Param        start_date  query  string  false  "From date, YYYY-MM-DD"
// @Param        end_date    query  string  false  "To date, YYYY-MM-DD"
// @Success      200  {object}  StockEntryPage
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      422  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /stock-entries [get]
func (h *HTTPHandler) ListStockEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := ListStockEntriesQuery{StartDate: q.Get("start_date"), EndDate: q.Get("end_date")}

	var err error
	if query.Page, err = queryInt(q.Get("page")); err != nil {
		utils.WriteError(w, "page must be a number", http.StatusBadRequest)
		return
	}
	if query.Limit, err = queryInt(q.Get("limit")); err != nil {
		utils.WriteError(w, "limit must be a number", http.StatusBadRequest)
		return
	}
	if raw := q.Get("product_id"); raw != "" {
		if query.ProductID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			utils.WriteError(w, "product_id must be a number", http.StatusBadRequest)
			return
		}
	}
	if err := h.validate.Struct(query); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	f := entities.StockEntryFilter{Page: query.Page, Limit: query.Limit, ProductID: query.ProductID}
	f.From, _ = time.Parse(dateLayout, query.StartDate)
	f.To, _ = time.Parse(dateLayout, query.EndDate)

	page, err := h.stock.ListEntries(r.Context(), f)
	if err != nil {
		h.writeError(w, r, "failed to list stock entries", err)
		return
	}
	utils.WriteJSON(w, StockEntryPageEntityToJSON(page), http.StatusOK)
}

// CreateStockEntry records goods received for a product.
// @Summary      Create a stock entry
// @Description  The backend adds the quantity to the product stock. Open order forms holding the product are marked stale.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        entry  body  CreateStockEntryRequest  true  "Goods receipt"
// @Success      201  {object}  StockEntry
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      422  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /stock-entries [post]
func (h *HTTPHandler) CreateStockEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateStockEntryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.UnitPrice.IsNegative() {
		utils.WriteError(w, "unit_price must not be negative", http.StatusBadRequest)
		return
	}

	entry, err := h.stock.CreateEntry(r.Context(), CreateStockEntryJSONToEntity(req))
	if err != nil {
		h.writeError(w, r, "failed to create stock entry", err)
		return
	}
	utils.WriteJSON(w, StockEntryEntityToJSON(entry), http.StatusCreated)
}

// DeleteStockEntry removes a goods receipt.
// @Summary      Delete a stock entry
// @Tags         stock
// @Param        entry_id  path  int  true  "Stock entry id"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /stock-entries/{entry_id} [delete]
func (h *HTTPHandler) DeleteStockEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "entry_id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "stock entry id must be a positive number", http.StatusBadRequest)
		return
	}

	if err := h.stock.DeleteEntry(r.Context(), id); err != nil {
		h.writeError(w, r, "failed to delete stock entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
