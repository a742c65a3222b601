package dto

import (
	"math/big"

	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
	"github.com/conquerblocks/nft-marketplace/internal/uri"
)

// MapItemToDTO maps a market item and its total price to ItemResponse
func MapItemToDTO(item *domain.MarketItem, totalPrice *big.Int) ItemResponse {
	return ItemResponse{
		ItemID:          item.ItemID,
		NFT:             item.NFT.Hex(),
		TokenID:         item.TokenID,
		Seller:          item.Seller.Hex(),
		Price:           weiString(item.Price),
		PriceEther:      domain.FormatEther(item.Price),
		TotalPrice:      weiString(totalPrice),
		TotalPriceEther: domain.FormatEther(totalPrice),
		Sold:            item.Sold,
	}
}

// MapMetadataToDTO maps resolved token metadata, nil stays nil
func MapMetadataToDTO(metadata *domain.TokenMetadata) *TokenMetadataResponse {
	if metadata == nil {
		return nil
	}

	response := &TokenMetadataResponse{
		Name:        metadata.Name,
		Description: metadata.Description,
		Image:       metadata.Image,
		MimeType:    metadata.MimeType,
	}
	if metadata.Image != "" && !uri.IsDataURI(metadata.Image) {
		response.ImageURL = uri.ToGatewayURL(metadata.Image)
	}
	return response
}

// MapReceiptToDTO maps a transaction receipt to TransactionResponse
func MapReceiptToDTO(receipt *chain.Receipt) TransactionResponse {
	response := TransactionResponse{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber,
		BlockHash:   receipt.BlockHash.Hex(),
		From:        receipt.From.Hex(),
		Method:      receipt.Method,
		Value:       weiString(receipt.Value),
		GasUsed:     receipt.GasUsed,
		GasPrice:    weiString(receipt.GasPrice),
		Fee:         receipt.Fee().String(),
		Timestamp:   receipt.Timestamp,
	}
	if receipt.To != nil {
		to := receipt.To.Hex()
		response.To = &to
	}
	if receipt.ContractAddress != nil {
		address := receipt.ContractAddress.Hex()
		response.ContractAddress = &address
	}
	return response
}

// MapEventLogToDTO maps a stored event log to EventResponse
func MapEventLogToDTO(row *schema.EventLog, kind domain.ContractKind, args map[string]string) EventResponse {
	if args == nil {
		args = map[string]string{}
	}
	return EventResponse{
		Contract:    string(kind),
		Address:     row.Address,
		Event:       row.Event,
		Args:        args,
		BlockNumber: row.BlockNumber,
		BlockHash:   row.BlockHash,
		TxHash:      row.TxHash,
		LogIndex:    row.LogIndex,
		Timestamp:   row.Timestamp,
	}
}

func weiString(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return wei.String()
}
