package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	recordapp "github.com/shopledger/backend/internal/application/record"
	"github.com/shopledger/backend/internal/domain/shared"
)

// RecordHandler exposes CRUD endpoints for the nine business record kinds
type RecordHandler struct {
	BaseHandler
	parties  *recordapp.PartyService
	products *recordapp.ProductService
	trades   *recordapp.TradeService
	finance  *recordapp.FinanceService
}

// NewRecordHandler creates a record handler
func NewRecordHandler(
	parties *recordapp.PartyService,
	products *recordapp.ProductService,
	trades *recordapp.TradeService,
	finance *recordapp.FinanceService,
) *RecordHandler {
	return &RecordHandler{
		parties:  parties,
		products: products,
		trades:   trades,
		finance:  finance,
	}
}

// ids pulls the authenticated user and workspace path parameter, writing the
// error response itself when either is missing.
func (h *RecordHandler) ids(c *gin.Context) (userID, workspaceID int64, ok bool) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, err.Error())
		return 0, 0, false
	}
	workspaceID, err = getWorkspaceID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return 0, 0, false
	}
	return userID, workspaceID, true
}

func (h *RecordHandler) listQuery(c *gin.Context) recordapp.ListQuery {
	var q recordapp.ListQuery
	_ = c.ShouldBindQuery(&q)
	return q
}

// sendPage writes a paginated response in the standard envelope
func sendPage[T any](h *RecordHandler, c *gin.Context, page *shared.Paginated[T], err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// CreateSupplier handles POST /api/v1/workspaces/:workspaceId/suppliers
func (h *RecordHandler) CreateSupplier(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	var req recordapp.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.parties.CreateSupplier(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListSuppliers handles GET /api/v1/workspaces/:workspaceId/suppliers
func (h *RecordHandler) ListSuppliers(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.parties.ListSuppliers(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// UpdateSupplier handles PUT /api/v1/workspaces/:workspaceId/suppliers/:id
func (h *RecordHandler) UpdateSupplier(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	id, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req recordapp.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.parties.UpdateSupplier(c.Request.Context(), userID, workspaceID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteSupplier handles DELETE /api/v1/workspaces/:workspaceId/suppliers/:id
func (h *RecordHandler) DeleteSupplier(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	id, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.parties.DeleteSupplier(c.Request.Context(), userID, workspaceID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateCustomer handles POST /api/v1/workspaces/:workspaceId/customers
func (h *RecordHandler) CreateCustomer(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	var req recordapp.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.parties.CreateCustomer(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListCustomers handles GET /api/v1/workspaces/:workspaceId/customers
func (h *RecordHandler) ListCustomers(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.parties.ListCustomers(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// DeleteCustomer handles DELETE /api/v1/workspaces/:workspaceId/customers/:id
func (h *RecordHandler) DeleteCustomer(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	id, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.parties.DeleteCustomer(c.Request.Context(), userID, workspaceID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateEmployee handles POST /api/v1/workspaces/:workspaceId/employees
func (h *RecordHandler) CreateEmployee(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	var req recordapp.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.parties.CreateEmployee(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListEmployees handles GET /api/v1/workspaces/:workspaceId/employees
func (h *RecordHandler) ListEmployees(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.parties.ListEmployees(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// DeleteEmployee handles DELETE /api/v1/workspaces/:workspaceId/employees/:id
func (h *RecordHandler) DeleteEmployee(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	id, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.parties.DeleteEmployee(c.Request.Context(), userID, workspaceID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateProduct handles POST /api/v1/workspaces/:workspaceId/products
func (h *RecordHandler) CreateProduct(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	var req recordapp.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.products.Create(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetProduct handles GET /api/v1/workspaces/:workspaceId/products/:id
func (h *RecordHandler) GetProduct(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	id, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.products.Get(c.Request.Context(), userID, workspaceID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListProducts handles GET /api/v1/workspaces/:workspaceId/products
func (h *RecordHandler) ListProducts(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.products.List(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// UpdateProduct handles PUT /api/v1/workspaces/:workspaceId/products/:id
func (h *RecordHandler) UpdateProduct(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	id, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req recordapp.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.products.Update(c.Request.Context(), userID, workspaceID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteProduct handles DELETE /api/v1/workspaces/:workspaceId/products/:id
func (h *RecordHandler) DeleteProduct(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	id, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.products.Delete(c.Request.Context(), userID, workspaceID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePurchase handles POST /api/v1/workspaces/:workspaceId/purchases
func (h *RecordHandler) CreatePurchase(c *gin.Context) {
	h.createTrade(c, h.trades.CreatePurchase)
}

// ListPurchases handles GET /api/v1/workspaces/:workspaceId/purchases
func (h *RecordHandler) ListPurchases(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.trades.ListPurchases(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// DeletePurchase handles DELETE /api/v1/workspaces/:workspaceId/purchases/:id
func (h *RecordHandler) DeletePurchase(c *gin.Context) {
	h.deleteByID(c, h.trades.DeletePurchase)
}

// CreateSale handles POST /api/v1/workspaces/:workspaceId/sales
func (h *RecordHandler) CreateSale(c *gin.Context) {
	h.createTrade(c, h.trades.CreateSale)
}

// ListSales handles GET /api/v1/workspaces/:workspaceId/sales
func (h *RecordHandler) ListSales(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.trades.ListSales(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// DeleteSale handles DELETE /api/v1/workspaces/:workspaceId/sales/:id
func (h *RecordHandler) DeleteSale(c *gin.Context) {
	h.deleteByID(c, h.trades.DeleteSale)
}

// CreateReturn handles POST /api/v1/workspaces/:workspaceId/returns
func (h *RecordHandler) CreateReturn(c *gin.Context) {
	h.createTrade(c, h.trades.CreateReturn)
}

// ListReturns handles GET /api/v1/workspaces/:workspaceId/returns
func (h *RecordHandler) ListReturns(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.trades.ListReturns(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// DeleteReturn handles DELETE /api/v1/workspaces/:workspaceId/returns/:id
func (h *RecordHandler) DeleteReturn(c *gin.Context) {
	h.deleteByID(c, h.trades.DeleteReturn)
}

// CreateIncome handles POST /api/v1/workspaces/:workspaceId/income
func (h *RecordHandler) CreateIncome(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	var req recordapp.IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.finance.CreateIncome(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListIncome handles GET /api/v1/workspaces/:workspaceId/income
func (h *RecordHandler) ListIncome(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.finance.ListIncome(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// DeleteIncome handles DELETE /api/v1/workspaces/:workspaceId/income/:id
func (h *RecordHandler) DeleteIncome(c *gin.Context) {
	h.deleteByID(c, h.finance.DeleteIncome)
}

// CreateRemittance handles POST /api/v1/workspaces/:workspaceId/remittance
func (h *RecordHandler) CreateRemittance(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	var req recordapp.RemittanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.finance.CreateRemittance(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListRemittance handles GET /api/v1/workspaces/:workspaceId/remittance
func (h *RecordHandler) ListRemittance(c *gin.Context) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	page, err := h.finance.ListRemittance(c.Request.Context(), userID, workspaceID, h.listQuery(c))
	sendPage(h, c, page, err)
}

// DeleteRemittance handles DELETE /api/v1/workspaces/:workspaceId/remittance/:id
func (h *RecordHandler) DeleteRemittance(c *gin.Context) {
	h.deleteByID(c, h.finance.DeleteRemittance)
}

type tradeCreateFn func(ctx context.Context, userID, workspaceID int64, req recordapp.TradeRequest) (*recordapp.TradeResponse, error)

func (h *RecordHandler) createTrade(c *gin.Context, create tradeCreateFn) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	var req recordapp.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := create(c.Request.Context(), userID, workspaceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *RecordHandler) deleteByID(c *gin.Context, del func(ctx context.Context, userID, workspaceID, id int64) error) {
	userID, workspaceID, ok := h.ids(c)
	if !ok {
		return
	}
	id, err := getPathID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := del(c.Request.Context(), userID, workspaceID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
