// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/gas"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/monitored"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/transaction"
	"github.com/sygmaprotocol/sygma-core/crypto/secp256k1"
	"github.com/sygmaprotocol/sygma-core/observability"

	"github.com/hyphalabs/crosschain-resolver/api"
	"github.com/hyphalabs/crosschain-resolver/api/handlers"
	"github.com/hyphalabs/crosschain-resolver/cache"
	"github.com/hyphalabs/crosschain-resolver/chains/evm"
	"github.com/hyphalabs/crosschain-resolver/chains/evm/calls/contracts"
	"github.com/hyphalabs/crosschain-resolver/chains/evm/calls/events"
	"github.com/hyphalabs/crosschain-resolver/config"
	"github.com/hyphalabs/crosschain-resolver/health"
	"github.com/hyphalabs/crosschain-resolver/metrics"
	"github.com/hyphalabs/crosschain-resolver/price"
	"github.com/hyphalabs/crosschain-resolver/privacy"
	"github.com/hyphalabs/crosschain-resolver/protocol/escrow"
	"github.com/hyphalabs/crosschain-resolver/resolver"
)

var Version string

const (
	// how often a settle/abort retries a timelock window that has not
	// opened yet
	WINDOW_RETRY_INTERVAL = time.Second * 15
)

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(nil)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, nil)
		panicOnError(err)
	}
	resolverConfig := configuration.ResolverConfig

	logLevel, err := zerolog.ParseLevel(resolverConfig.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mp, err := observability.InitMetricProvider(context.Background(), resolverConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	swapMetrics, err := metrics.NewSwapMetrics(
		ctx, mp.Meter("resolver-metric-provider"), resolverConfig.Env, resolverConfig.Id, Version)
	panicOnError(err)

	go health.StartHealthEndpoint(resolverConfig.HealthPort)

	chains := make(map[uint64]resolver.Chain)
	resolverContracts := make(map[uint64]common.Address)
	confirmationClients := make(map[uint64]evm.ConfirmationClient)
	confirmationsPerChain := make(map[uint64]map[uint64]uint64)
	blocktimes := make(map[uint64]time.Duration)
	tokens := make(map[uint64]map[string]config.TokenConfig)

	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				config, err := evm.NewEVMConfig(chainConfig)
				panicOnError(err)
				chainID := *config.GeneralChainConfig.Id

				kp, err := secp256k1.NewKeypairFromString(config.GeneralChainConfig.Key)
				panicOnError(err)

				client, err := evmClient.NewEVMClient(config.GeneralChainConfig.Endpoint, kp)
				panicOnError(err)

				log.Info().Uint64("chain", chainID).Msgf("Registering EVM chain")

				gasPricer := gas.NewLondonGasPriceClient(client, nil)
				t := monitored.NewMonitoredTransactor(
					chainID,
					transaction.NewTransaction,
					gasPricer,
					swapMetrics,
					client,
					config.MaxGasPrice,
					config.GasIncreasePercentage)
				go t.Monitor(ctx, time.Minute*3, time.Minute*10, time.Minute)

				factoryContract := contracts.NewEscrowFactoryContract(client, config.EscrowFactory)
				srcProxyHash, err := factoryContract.SrcProxyBytecodeHash()
				panicOnError(err)
				dstProxyHash, err := factoryContract.DstProxyBytecodeHash()
				panicOnError(err)

				listener := events.NewListener(
					client,
					config.GeneralChainConfig.BlockConfirmations,
					config.BlockRetryInterval)

				chains[chainID] = resolver.Chain{
					ChainID:  new(big.Int).SetUint64(chainID),
					Client:   client,
					Listener: listener,
					Resolver: contracts.NewResolverContract(client, t, config.Resolver),
					NewEscrow: func(address common.Address) resolver.EscrowCaller {
						return contracts.NewEscrowContract(client, t, address)
					},
					Factory:        escrow.NewFactory(config.EscrowFactory),
					FactoryAddress: config.EscrowFactory,
					SrcProxyHash:   srcProxyHash,
					DstProxyHash:   dstProxyHash,
				}
				resolverContracts[chainID] = config.Resolver
				confirmationClients[chainID] = client
				confirmationsPerChain[chainID] = config.ConfirmationsByValue
				// nolint:gosec
				blocktimes[chainID] = time.Duration(config.GeneralChainConfig.Blocktime) * time.Second
				tokens[chainID] = config.Tokens
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	srcChain, ok := chains[resolverConfig.SrcChainId]
	if !ok {
		panic(fmt.Errorf("source chain %d not configured", resolverConfig.SrcChainId))
	}
	dstChain, ok := chains[resolverConfig.DstChainId]
	if !ok {
		panic(fmt.Errorf("destination chain %d not configured", resolverConfig.DstChainId))
	}
	// the taker recorded in the escrow immutables has to be able to act on
	// both chains
	if resolverContracts[resolverConfig.SrcChainId] != resolverContracts[resolverConfig.DstChainId] {
		panic(fmt.Errorf("resolver contract has to be deployed at the same address on both chains"))
	}

	coordinator := resolver.New(
		srcChain,
		dstChain,
		resolverContracts[resolverConfig.SrcChainId],
		resolver.NewSwapStore())

	priceAPI := price.NewCoinmarketcapAPI(
		resolverConfig.CoinmarketcapConfig.Url,
		resolverConfig.CoinmarketcapConfig.ApiKey)
	watcher := evm.NewWatcher(
		confirmationClients,
		priceAPI,
		config.TokenStore{Tokens: tokens},
		confirmationsPerChain,
		blocktimes[resolverConfig.SrcChainId])

	secretCache := cache.NewSecretCache()
	defer secretCache.Stop()

	swapService := resolver.NewSwapService(coordinator, watcher, secretCache, swapMetrics, WINDOW_RETRY_INTERVAL)

	privacyConfig := resolverConfig.PrivacyConfig
	privacyResolver := privacy.NewPrivacyResolver(
		coordinator,
		common.HexToAddress(resolverConfig.Address),
		new(big.Int).SetUint64(resolverConfig.SrcChainId),
		privacy.DelayBounds{
			MinReveal:     privacyConfig.MinReveal(),
			MaxReveal:     privacyConfig.MaxReveal(),
			MinExecute:    privacyConfig.MinExecute(),
			MaxExecute:    privacyConfig.MaxExecute(),
			CommitmentTTL: privacyConfig.TTL(),
		})
	defer privacyResolver.Stop()

	swapsHandler := handlers.NewSwapsHandler(swapService, secretCache)
	commitmentsHandler := handlers.NewCommitmentsHandler(privacyResolver)
	go api.Serve(ctx, resolverConfig.ApiAddr, swapsHandler, commitmentsHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started resolver: %s. Version: v%s", resolverConfig.Id, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
