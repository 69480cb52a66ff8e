package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/core-coin/go-core/v2/accounts/abi"
	"github.com/core-coin/go-core/v2/accounts/abi/bind"
	"github.com/core-coin/go-core/v2/common"
	"github.com/core-coin/go-core/v2/core/types"
	"github.com/core-coin/go-core/v2/crypto"
	"github.com/core-coin/go-core/v2/xcbclient"

	"github.com/sfy-labs/easychain/internal/config"
	"github.com/sfy-labs/easychain/internal/models"
	"github.com/sfy-labs/easychain/pkg/logger"
)

const (
	// ReadTimeout bounds a single contract view call
	ReadTimeout = 10 * time.Second
	// ConfirmTimeout bounds submit-and-wait for one write transaction
	ConfirmTimeout = 2 * time.Minute
)

type Gocore struct {
	logger *logger.Logger
	config *config.Config
	apiURL string
	client *xcbclient.Client

	contract   *bind.BoundContract
	transactor *bind.TransactOpts
}

// NewGocore creates a new Gocore instance.
func NewGocore(apiURL string, logger *logger.Logger, config *config.Config) *Gocore {
	return &Gocore{apiURL: apiURL, logger: logger, config: config}
}

func (g *Gocore) Run() error {
	err := g.ConnectToRPC()
	if err != nil {
		return fmt.Errorf("failed to connect to the core RPC server: %w", err)
	}
	err = g.BuildBindings()
	if err != nil {
		return fmt.Errorf("failed to build bindings: %w", err)
	}
	return nil
}

func (g *Gocore) ConnectToRPC() error {
	client, err := xcbclient.Dial(g.apiURL)
	if err != nil {
		return fmt.Errorf("failed to connect to the core RPC server: %w", err)
	}
	g.client = client
	return nil
}

func (g *Gocore) BuildBindings() error {
	contractAddress, err := common.HexToAddress(g.config.SmartContractAddress)
	if err != nil {
		return fmt.Errorf("failed to parse supply-chain contract address: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(SupplyChainABI))
	if err != nil {
		return fmt.Errorf("failed to parse supply-chain ABI: %w", err)
	}

	key, err := crypto.UnmarshalPrivateKeyHex(g.config.OperatorPrivateKey)
	if err != nil {
		return fmt.Errorf("failed to parse operator private key: %w", err)
	}
	transactor, err := bind.NewKeyedTransactorWithNetworkID(key, g.config.NetworkID)
	if err != nil {
		return fmt.Errorf("failed to create keyed transactor: %w", err)
	}
	g.transactor = transactor

	g.contract = bind.NewBoundContract(contractAddress, parsedABI, g.client, g.client, g.client)

	return nil
}

func (g *Gocore) Close() error {
	if g.client != nil {
		g.client.Close()
	}
	return nil
}

// call performs a single view call and returns the raw output tuple.
func (g *Gocore) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, ReadTimeout)
	defer cancel()

	results := []interface{}{}
	err := g.contract.Call(&bind.CallOpts{Context: ctx}, &results, method, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	return results, nil
}

// transact submits one write transaction and waits for its receipt. There
// is exactly one submission per call; a failed receipt is an error.
func (g *Gocore) transact(ctx context.Context, method string, params ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, ConfirmTimeout)
	defer cancel()

	opts := *g.transactor
	opts.Context = ctx

	tx, err := g.contract.Transact(&opts, method, params...)
	if err != nil {
		return fmt.Errorf("failed to submit %s: %w", method, err)
	}

	g.logger.Debug("Transaction submitted ", "method ", method, "tx ", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, g.client, tx)
	if err != nil {
		return fmt.Errorf("failed to confirm %s: %w", method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%s transaction reverted: %s", method, tx.Hash().Hex())
	}
	return nil
}

func (g *Gocore) SuperOwner(ctx context.Context) (string, error) {
	results, err := g.call(ctx, "superOwner")
	if err != nil {
		return "", err
	}
	return results[0].(common.Address).Hex(), nil
}

func (g *Gocore) Owner(ctx context.Context) (string, error) {
	results, err := g.call(ctx, "owner")
	if err != nil {
		return "", err
	}
	return results[0].(common.Address).Hex(), nil
}

func (g *Gocore) GetContributorInfo(ctx context.Context, wallet string) (*models.ContributorInfo, error) {
	addr, err := common.HexToAddress(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wallet address: %w", err)
	}
	results, err := g.call(ctx, "getContributorInfo", addr)
	if err != nil {
		return nil, err
	}
	return &models.ContributorInfo{
		Name:    results[0].(string),
		Credits: results[1].(*big.Int),
		Active:  results[2].(bool),
	}, nil
}

func (g *Gocore) GetBatchesByContributor(ctx context.Context, wallet string) ([]uint64, error) {
	addr, err := common.HexToAddress(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wallet address: %w", err)
	}
	results, err := g.call(ctx, "getBatchesByContributor", addr)
	if err != nil {
		return nil, err
	}
	raw := results[0].([]*big.Int)
	ids := make([]uint64, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, id.Uint64())
	}
	return ids, nil
}

func (g *Gocore) GetBatchInfo(ctx context.Context, batchID uint64) (*models.Batch, error) {
	results, err := g.call(ctx, "getBatchInfo", new(big.Int).SetUint64(batchID))
	if err != nil {
		return nil, err
	}
	return &models.Batch{
		BatchID:     results[batchFieldID].(*big.Int).Uint64(),
		Owner:       results[batchFieldOwner].(common.Address).Hex(),
		Name:        results[batchFieldName].(string),
		Description: results[batchFieldDescription].(string),
		Date:        results[batchFieldDate].(string),
		Location:    results[batchFieldLocation].(string),
		IsClosed:    results[batchFieldIsClosed].(bool),
	}, nil
}

func (g *Gocore) AddContributor(ctx context.Context, wallet, name string) error {
	addr, err := common.HexToAddress(wallet)
	if err != nil {
		return fmt.Errorf("failed to parse wallet address: %w", err)
	}
	return g.transact(ctx, "addContributor", addr, name)
}

func (g *Gocore) DeactivateContributor(ctx context.Context, wallet string) error {
	addr, err := common.HexToAddress(wallet)
	if err != nil {
		return fmt.Errorf("failed to parse wallet address: %w", err)
	}
	return g.transact(ctx, "deactivateContributor", addr)
}

func (g *Gocore) SetContributorCredits(ctx context.Context, wallet string, credits uint64) error {
	addr, err := common.HexToAddress(wallet)
	if err != nil {
		return fmt.Errorf("failed to parse wallet address: %w", err)
	}
	return g.transact(ctx, "setContributorCredits", addr, new(big.Int).SetUint64(credits))
}

func (g *Gocore) InitializeBatch(ctx context.Context, name, description, date, location, attachment string) error {
	return g.transact(ctx, "initializeBatch", name, description, date, location, attachment)
}
