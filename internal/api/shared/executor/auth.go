package executor

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
)

func (e *executor) CreateNonce(ctx context.Context, address common.Address) (*dto.NonceResponse, error) {
	challenge, err := e.auth.Challenge(ctx, address)
	if err != nil {
		return nil, err
	}

	return &dto.NonceResponse{
		Address:   challenge.Address.Hex(),
		Nonce:     challenge.Nonce,
		Message:   challenge.Message,
		ExpiresAt: challenge.ExpiresAt,
	}, nil
}

func (e *executor) Login(ctx context.Context, address common.Address, signature string) (*dto.SessionResponse, error) {
	session, err := e.auth.Login(ctx, address, signature)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		Address:   session.Address.Hex(),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
