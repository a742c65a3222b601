package rest

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/conquerblocks/nft-marketplace/internal/api/middleware"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/constants"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/executor"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/providers/ipfs"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// CreateNonce creates a login challenge for a wallet
	// POST /api/v1/auth/nonce
	CreateNonce(c *gin.Context)

	// Login exchanges a signed challenge for a session token
	// POST /api/v1/auth/login
	Login(c *gin.Context)

	// GetContracts returns the deployed contract addresses and ABIs
	// GET /api/v1/contracts
	GetContracts(c *gin.Context)

	// ListItems returns every unsold item (home view)
	// GET /api/v1/items
	ListItems(c *gin.Context)

	// GetItem returns a single item
	// GET /api/v1/items/:id
	GetItem(c *gin.Context)

	// GetTotalPrice returns the price of an item including the marketplace fee
	// GET /api/v1/items/:id/total-price
	GetTotalPrice(c *gin.Context)

	// CreateItem lists a token owned by the session wallet (requires authentication)
	// POST /api/v1/items
	CreateItem(c *gin.Context)

	// PurchaseItem buys an item for the session wallet (requires authentication)
	// POST /api/v1/items/:id/purchase
	PurchaseItem(c *gin.Context)

	// Upload adds a file to IPFS (requires authentication)
	// POST /api/v1/uploads
	Upload(c *gin.Context)

	// MintToken mints a token to the session wallet (requires authentication)
	// POST /api/v1/tokens
	MintToken(c *gin.Context)

	// MintAndList mints, approves the marketplace and lists a token (requires authentication)
	// POST /api/v1/mint
	MintAndList(c *gin.Context)

	// GetToken returns a token of the token contract
	// GET /api/v1/tokens/:id
	GetToken(c *gin.Context)

	// SetApprovalForAll approves an operator for the session wallet (requires authentication)
	// POST /api/v1/tokens/approval-for-all
	SetApprovalForAll(c *gin.Context)

	// GetAccount returns the balance, nonce and token balance of an address
	// GET /api/v1/accounts/:address
	GetAccount(c *gin.Context)

	// ListListedItems returns the items an address listed (my listed items view)
	// GET /api/v1/accounts/:address/listed-items
	ListListedItems(c *gin.Context)

	// ListPurchases returns the items an address bought (my purchases view)
	// GET /api/v1/accounts/:address/purchases
	ListPurchases(c *gin.Context)

	// ListEvents returns contract event logs
	// GET /api/v1/events?contract=<kind>&event=<name>&from_block=<n>&to_block=<n>&limit=<limit>&order=<order>
	ListEvents(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// sender returns the session wallet set by the auth middleware
func sender(c *gin.Context) (common.Address, bool) {
	address, ok := middleware.GetAuthSubject(c)
	if !ok {
		respondUnauthorized(c, "Wallet session required")
	}
	return address, ok
}

func (h *handler) HealthCheck(c *gin.Context) {
	health, err := h.executor.GetHealth(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get health")
		return
	}

	c.JSON(http.StatusOK, health)
}

func (h *handler) CreateNonce(c *gin.Context) {
	var req dto.NonceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	nonce, err := h.executor.CreateNonce(c.Request.Context(), common.HexToAddress(req.Address))
	if err != nil {
		respondError(c, err, "Failed to create nonce")
		return
	}

	c.JSON(http.StatusCreated, nonce)
}

func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	session, err := h.executor.Login(c.Request.Context(), common.HexToAddress(req.Address), req.Signature)
	if err != nil {
		respondError(c, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *handler) GetContracts(c *gin.Context) {
	contracts, err := h.executor.GetContracts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get contracts")
		return
	}

	c.JSON(http.StatusOK, contracts)
}

func (h *handler) ListItems(c *gin.Context) {
	items, err := h.executor.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list items")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *handler) GetItem(c *gin.Context) {
	itemID, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.executor.GetItem(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err, "Failed to get item")
		return
	}

	if item == nil {
		respondNotFound(c, "Item not found")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *handler) GetTotalPrice(c *gin.Context) {
	itemID, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	price, err := h.executor.GetTotalPrice(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err, "Failed to get total price")
		return
	}

	c.JSON(http.StatusOK, price)
}

func (h *handler) CreateItem(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	price, err := domain.ParseEther(req.Price)
	if err != nil {
		respondError(c, err, "Invalid price")
		return
	}

	created, err := h.executor.CreateItem(c.Request.Context(), from, common.HexToAddress(req.NFT), req.TokenID, price)
	if err != nil {
		respondError(c, err, "Failed to create item")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *handler) PurchaseItem(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	itemID, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// The body is optional, the total price is paid by default
	var req dto.PurchaseRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
			return
		}
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	var value *big.Int
	if req.Value != nil {
		value, err = domain.ParseEther(*req.Value)
		if err != nil {
			respondError(c, err, "Invalid value")
			return
		}
	}

	purchase, err := h.executor.PurchaseItem(c.Request.Context(), from, itemID, value)
	if err != nil {
		respondError(c, err, "Failed to purchase item")
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (h *handler) Upload(c *gin.Context) {
	// Leave room for the multipart envelope around the file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MAX_UPLOAD_SIZE+1<<20)

	header, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(c, ipfs.ErrUploadTooLarge, "Invalid upload")
			return
		}
		respondBadRequest(c, "file is required", err.Error())
		return
	}
	if header.Size > constants.MAX_UPLOAD_SIZE {
		respondError(c, ipfs.ErrUploadTooLarge, "Invalid upload")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondBadRequest(c, "Failed to open file", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondBadRequest(c, "Failed to read file", err.Error())
		return
	}

	uploaded, err := h.executor.Upload(c.Request.Context(), data)
	if err != nil {
		respondError(c, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, uploaded)
}

func (h *handler) MintToken(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	minted, err := h.executor.MintToken(c.Request.Context(), from, req.TokenURI)
	if err != nil {
		respondError(c, err, "Failed to mint token")
		return
	}

	c.JSON(http.StatusCreated, minted)
}

func (h *handler) MintAndList(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req dto.MintAndListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	listed, err := h.executor.MintAndList(c.Request.Context(), from, req)
	if err != nil {
		respondError(c, err, "Failed to mint and list token")
		return
	}

	c.JSON(http.StatusCreated, listed)
}

func (h *handler) GetToken(c *gin.Context) {
	tokenID, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	token, err := h.executor.GetToken(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err, "Failed to get token")
		return
	}

	if token == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *handler) SetApprovalForAll(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req dto.ApprovalForAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	var operator *common.Address
	if req.Operator != "" {
		address := common.HexToAddress(req.Operator)
		operator = &address
	}

	approval, err := h.executor.SetApprovalForAll(c.Request.Context(), from, operator, req.Approved)
	if err != nil {
		respondError(c, err, "Failed to set approval")
		return
	}

	c.JSON(http.StatusOK, approval)
}

func (h *handler) GetAccount(c *gin.Context) {
	address, err := parseAddressParam(c, "address")
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	account, err := h.executor.GetAccount(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *handler) ListListedItems(c *gin.Context) {
	address, err := parseAddressParam(c, "address")
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	items, err := h.executor.ListListedItems(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to list listed items")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *handler) ListPurchases(c *gin.Context) {
	address, err := parseAddressParam(c, "address")
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	purchases, err := h.executor.ListPurchases(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, purchases)
}

func (h *handler) ListEvents(c *gin.Context) {
	queryParams, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter := executor.EventFilter{
		FromBlock: queryParams.FromBlock,
		ToBlock:   queryParams.ToBlock,
		Limit:     queryParams.Limit,
		Order:     queryParams.Order,
	}
	if queryParams.Contract != "" {
		kind := domain.ContractKind(queryParams.Contract)
		filter.Contract = &kind
	}
	if queryParams.Event != "" {
		filter.Event = &queryParams.Event
	}

	events, err := h.executor.ListEvents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, events)
}
