package uri

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

var errNoWorkingURL = errors.New("no working URL found")

// findWorkingURL probes every candidate with a HEAD request in parallel
// and returns the first one answering 200
func findWorkingURL(ctx context.Context, httpClient adapter.HTTPClient, candidates []string) (string, error) {
	logger.DebugCtx(ctx, "Probing gateways", zap.Strings("candidates", candidates))

	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(candidates))
	var wg sync.WaitGroup

	for _, candidate := range candidates {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			resp, err := httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(candidate)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		if res.err == nil {
			logger.DebugCtx(ctx, "Found working gateway", zap.String("url", res.url))
			return res.url, nil
		}
	}

	return "", errNoWorkingURL
}

// splitIPFSGatewayURL splits https://host/ipfs/<cid> into the gateway and the CID
func splitIPFSGatewayURL(url string) (string, string, bool) {
	gateway, cid, ok := strings.Cut(url, "/ipfs/")
	if !ok || cid == "" {
		return "", "", false
	}
	return gateway, cid, true
}

func containsGateway(gateways []string, gateway string) bool {
	for _, gw := range gateways {
		if strings.TrimSuffix(gw, "/") == gateway {
			return true
		}
	}
	return false
}

// ToGatewayURL rewrites ipfs:// and ar:// URIs onto the default public gateways
// without probing them. Other URIs are returned unchanged.
func ToGatewayURL(uri string) string {
	if after, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return fmt.Sprintf("%s/ipfs/%s", domain.DEFAULT_IPFS_GATEWAY, strings.TrimPrefix(after, "ipfs/"))
	}
	if after, ok := strings.CutPrefix(uri, "ar://"); ok {
		return fmt.Sprintf("%s/%s", domain.DEFAULT_ARWEAVE_GATEWAY, after)
	}
	return uri
}
