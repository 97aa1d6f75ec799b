// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cache_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/hyphalabs/crosschain-resolver/cache"
)

type SecretCacheTestSuite struct {
	suite.Suite

	cache *cache.SecretCache
}

func TestRunSecretCacheTestSuite(t *testing.T) {
	suite.Run(t, new(SecretCacheTestSuite))
}

func (s *SecretCacheTestSuite) SetupTest() {
	s.cache = cache.NewSecretCache()
}

func (s *SecretCacheTestSuite) TearDownTest() {
	s.cache.Stop()
}

func (s *SecretCacheTestSuite) Test_Secret_NotFound() {
	_, err := s.cache.Secret(crypto.Keccak256Hash([]byte("order")), 0)

	s.NotNil(err)
}

func (s *SecretCacheTestSuite) Test_Secret_Stored() {
	orderHash := crypto.Keccak256Hash([]byte("order"))
	secret := crypto.Keccak256Hash([]byte("secret"))

	s.cache.Set(orderHash, 3, secret)

	stored, err := s.cache.Secret(orderHash, 3)
	s.Nil(err)
	s.Equal(secret, stored)

	// another index is a different entry
	_, err = s.cache.Secret(orderHash, 0)
	s.NotNil(err)
}

