package executor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/marketplace"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/nft"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/uri"
)

func (e *executor) Upload(ctx context.Context, data []byte) (*dto.UploadResponse, error) {
	result, err := e.uploader.Upload(ctx, data)
	if err != nil {
		return nil, err
	}

	return &dto.UploadResponse{
		CID:        result.CID,
		URI:        result.URI,
		GatewayURL: uri.ToGatewayURL(result.URI),
		MimeType:   result.MimeType,
		Size:       result.Size,
	}, nil
}

func (e *executor) MintToken(ctx context.Context, from common.Address, tokenURI string) (*dto.MintResponse, error) {
	d, err := e.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	tokenID, receipt, err := nft.NewBinding(d.NFT, e.ledger).Mint(ctx, chain.TransactOpts{From: from}, tokenURI)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Token minted",
		zap.String("minter", from.Hex()),
		zap.String("tokenID", tokenID.String()),
		zap.String("uri", tokenURI))

	return &dto.MintResponse{
		TokenID:     tokenID.Uint64(),
		TokenURI:    tokenURI,
		Transaction: dto.MapReceiptToDTO(receipt),
	}, nil
}

// MintAndList runs the mint view: upload the metadata when no token URI is given,
// mint, approve the marketplace unless it already is, then list at the ether price
func (e *executor) MintAndList(ctx context.Context, from common.Address, req dto.MintAndListRequest) (*dto.MintAndListResponse, error) {
	price, err := domain.ParseEther(req.Price)
	if err != nil {
		return nil, err
	}

	d, err := e.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	token := nft.NewBinding(d.NFT, e.ledger)
	market := marketplace.NewBinding(d.Marketplace, e.ledger)
	opts := chain.TransactOpts{From: from}

	tokenURI := strings.TrimSpace(req.TokenURI)
	if tokenURI == "" {
		uploaded, err := e.uploader.UploadMetadata(ctx, domain.TokenMetadata{
			Name:        req.Name,
			Description: req.Description,
			Image:       req.Image,
		})
		if err != nil {
			return nil, err
		}
		tokenURI = uploaded.URI
	}

	var receipts []*chain.Receipt

	tokenID, receipt, err := token.Mint(ctx, opts, tokenURI)
	if err != nil {
		return nil, err
	}
	receipts = append(receipts, receipt)

	approved, err := token.IsApprovedForAll(ctx, from, d.Marketplace)
	if err != nil {
		return nil, fmt.Errorf("failed to check marketplace approval: %w", err)
	}
	if !approved {
		receipt, err = token.SetApprovalForAll(ctx, opts, d.Marketplace, true)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	itemID, receipt, err := market.CreateItem(ctx, opts, d.NFT, tokenID, price)
	if err != nil {
		return nil, err
	}
	receipts = append(receipts, receipt)

	logger.InfoCtx(ctx, "Token minted and listed",
		zap.String("seller", from.Hex()),
		zap.String("tokenID", tokenID.String()),
		zap.String("itemID", itemID.String()),
		zap.String("price", price.String()))

	item, err := e.readItem(ctx, market, itemID)
	if err != nil {
		return nil, err
	}

	transactions := make([]dto.TransactionResponse, len(receipts))
	for i, r := range receipts {
		transactions[i] = dto.MapReceiptToDTO(r)
	}

	return &dto.MintAndListResponse{
		TokenID:      tokenID.Uint64(),
		TokenURI:     tokenURI,
		Item:         *item,
		Transactions: transactions,
	}, nil
}

func (e *executor) GetToken(ctx context.Context, tokenID uint64) (*dto.TokenResponse, error) {
	d, err := e.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	token := nft.NewBinding(d.NFT, e.ledger)
	id := new(big.Int).SetUint64(tokenID)

	owner, err := token.OwnerOf(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTokenID) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner of token %d: %w", tokenID, err)
	}

	approved, err := token.GetApproved(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get approval of token %d: %w", tokenID, err)
	}

	details := e.tokenDetails(ctx, d.NFT, tokenID)

	response := &dto.TokenResponse{
		Contract: d.NFT.Hex(),
		TokenID:  tokenID,
		Owner:    owner.Hex(),
		TokenURI: details.URI,
		Metadata: dto.MapMetadataToDTO(details.Metadata),
	}
	if !domain.IsZeroAddress(approved) {
		address := approved.Hex()
		response.Approved = &address
	}

	return response, nil
}

func (e *executor) SetApprovalForAll(ctx context.Context, from common.Address, operator *common.Address, approved bool) (*dto.ApprovalForAllResponse, error) {
	d, err := e.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	target := d.Marketplace
	if operator != nil {
		target = *operator
	}

	receipt, err := nft.NewBinding(d.NFT, e.ledger).SetApprovalForAll(ctx, chain.TransactOpts{From: from}, target, approved)
	if err != nil {
		return nil, err
	}

	return &dto.ApprovalForAllResponse{
		Owner:       from.Hex(),
		Operator:    target.Hex(),
		Approved:    approved,
		Transaction: dto.MapReceiptToDTO(receipt),
	}, nil
}
