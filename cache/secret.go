// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cache

import (
	"fmt"

	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
)

const (
	SECRET_TTL = time.Minute * 30
)

// SecretCache holds revealed secrets until the withdrawals that consume
// them have gone through. Entries age out so an abandoned swap does not
// pin its secret in memory forever. Keys carry the partial-fill leaf
// index, 0 for single-fill orders.
type SecretCache struct {
	secrets *ttlcache.Cache[string, common.Hash]
}

func NewSecretCache() *SecretCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, common.Hash](SECRET_TTL),
	)
	go cache.Start()

	return &SecretCache{
		secrets: cache,
	}
}

func (c *SecretCache) Secret(orderHash common.Hash, index uint64) (common.Hash, error) {
	secret := c.secrets.Get(secretKey(orderHash, index))
	if secret == nil {
		return common.Hash{}, fmt.Errorf("no secret found for order %s index %d", orderHash, index)
	}

	return secret.Value(), nil
}

func (c *SecretCache) Set(orderHash common.Hash, index uint64, secret common.Hash) {
	c.secrets.Set(secretKey(orderHash, index), secret, ttlcache.DefaultTTL)
}

// Stop halts the background expiration loop.
func (c *SecretCache) Stop() {
	c.secrets.Stop()
}

func secretKey(orderHash common.Hash, index uint64) string {
	return fmt.Sprintf("%s-%d", orderHash.Hex(), index)
}
