package handlers

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/order"
	"github.com/hyphalabs/crosschain-resolver/protocol/timelock"
	"github.com/hyphalabs/crosschain-resolver/resolver"
)

type SwapService interface {
	Fill(ctx context.Context, o *order.Order, sig []byte, fillAmount *big.Int, partial *resolver.PartialFill) error
	Settle(ctx context.Context, orderHash common.Hash, partial *resolver.PartialFill) error
	Abort(ctx context.Context, orderHash common.Hash) error
	Swap(orderHash common.Hash) (resolver.Swap, error)
}

type SecretStore interface {
	Set(orderHash common.Hash, index uint64, secret common.Hash)
}

type TimelocksBody struct {
	SrcWithdrawal         uint32 `json:"srcWithdrawal"`
	SrcPublicWithdrawal   uint32 `json:"srcPublicWithdrawal"`
	SrcCancellation       uint32 `json:"srcCancellation"`
	SrcPublicCancellation uint32 `json:"srcPublicCancellation"`
	DstWithdrawal         uint32 `json:"dstWithdrawal"`
	DstPublicWithdrawal   uint32 `json:"dstPublicWithdrawal"`
	DstCancellation       uint32 `json:"dstCancellation"`
}

type AuctionPointBody struct {
	Delay       uint16 `json:"delay"`
	Coefficient uint32 `json:"coefficient"`
}

type AuctionBody struct {
	StartTime       uint64             `json:"startTime"`
	Duration        uint64             `json:"duration"`
	InitialRateBump uint32             `json:"initialRateBump"`
	Points          []AuctionPointBody `json:"points"`
}

type WhitelistEntryBody struct {
	Address   string `json:"address"`
	AllowFrom uint64 `json:"allowFrom"`
}

type PartialFillBody struct {
	Proof      []string `json:"proof"`
	Index      uint64   `json:"index"`
	SecretHash string   `json:"secretHash"`
}

type SwapBody struct {
	EscrowFactory string  `json:"escrowFactory"`
	Maker         string  `json:"maker"`
	Receiver      string  `json:"receiver"`
	MakerAsset    string  `json:"makerAsset"`
	TakerAsset    string  `json:"takerAsset"`
	MakingAmount  *BigInt `json:"makingAmount"`
	TakingAmount  *BigInt `json:"takingAmount"`
	Salt          *BigInt `json:"salt"`

	Hashlock         string        `json:"hashlock"`
	Timelocks        TimelocksBody `json:"timelocks"`
	SrcChainId       uint64        `json:"srcChainId"`
	DstChainId       uint64        `json:"dstChainId"`
	DstToken         string        `json:"dstToken"`
	SrcSafetyDeposit *BigInt       `json:"srcSafetyDeposit"`
	DstSafetyDeposit *BigInt       `json:"dstSafetyDeposit"`

	Auction   AuctionBody          `json:"auction"`
	Whitelist []WhitelistEntryBody `json:"whitelist"`

	AllowPartialFills  bool    `json:"allowPartialFills"`
	AllowMultipleFills bool    `json:"allowMultipleFills"`
	Nonce              *BigInt `json:"nonce"`

	Signature  string           `json:"signature"`
	FillAmount *BigInt          `json:"fillAmount"`
	Partial    *PartialFillBody `json:"partial"`
}

type SecretBody struct {
	Secret  string           `json:"secret"`
	Index   uint64           `json:"index"`
	Partial *PartialFillBody `json:"partial"`
}

type SwapResponse struct {
	OrderHash     string `json:"orderHash"`
	State         string `json:"state"`
	SrcEscrow     string `json:"srcEscrow,omitempty"`
	DstEscrow     string `json:"dstEscrow,omitempty"`
	SrcResolution string `json:"srcResolution"`
	DstResolution string `json:"dstResolution"`
	SrcDeployTx   string `json:"srcDeployTx,omitempty"`
	DstDeployTx   string `json:"dstDeployTx,omitempty"`
}

type SwapsHandler struct {
	service SwapService
	secrets SecretStore
}

func NewSwapsHandler(service SwapService, secrets SecretStore) *SwapsHandler {
	return &SwapsHandler{
		service: service,
		secrets: secrets,
	}
}

// HandleCreate accepts a signed order and starts the fill flow. The
// deployment spans two chains and multiple confirmation waits, so the
// request returns 202 with the order hash immediately; progress is read
// from the status endpoint.
func (h *SwapsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	b := &SwapBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	o, sig, partial, err := h.parseOrder(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	orderHash, err := o.Hash(new(big.Int).SetUint64(b.SrcChainId))
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	go func() {
		if err := h.service.Fill(context.Background(), o, sig, b.FillAmount.Int, partial); err != nil {
			log.Err(err).Msgf("Failed filling order %s", orderHash)
		}
	}()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"orderHash": orderHash.Hex()})
}

// HandleStatus returns the tracked state of one swap.
func (h *SwapsHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	orderHash, err := parseHash(mux.Vars(r)["orderHash"], "orderHash")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	swap, err := h.service.Swap(orderHash)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(swapResponse(swap))
}

// HandleSecret accepts the maker's revealed secret and starts settlement.
func (h *SwapsHandler) HandleSecret(w http.ResponseWriter, r *http.Request) {
	orderHash, err := parseHash(mux.Vars(r)["orderHash"], "orderHash")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	b := &SecretBody{}
	d := json.NewDecoder(r.Body)
	if err := d.Decode(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	secret, err := parseHash(b.Secret, "secret")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	partial, err := parsePartial(b.Partial)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	if _, err := h.service.Swap(orderHash); err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	// Settlement reads the secret back out of the store, so a retry after
	// a crash does not depend on the maker resubmitting it.
	h.secrets.Set(orderHash, b.Index, secret)

	go func() {
		if err := h.service.Settle(context.Background(), orderHash, partial); err != nil {
			log.Err(err).Msgf("Failed settling order %s", orderHash)
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}

// HandleCancel starts the abort flow, cancelling both escrows once their
// cancellation windows open.
func (h *SwapsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	orderHash, err := parseHash(mux.Vars(r)["orderHash"], "orderHash")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	if _, err := h.service.Swap(orderHash); err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	go func() {
		if err := h.service.Abort(context.Background(), orderHash); err != nil {
			log.Err(err).Msgf("Failed aborting order %s", orderHash)
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}

func (h *SwapsHandler) parseOrder(b *SwapBody) (*order.Order, []byte, *resolver.PartialFill, error) {
	if b.MakingAmount == nil || b.TakingAmount == nil || b.FillAmount == nil {
		return nil, nil, nil, fmt.Errorf("missing amount fields")
	}
	if b.Salt == nil || b.Nonce == nil {
		return nil, nil, nil, fmt.Errorf("missing field 'salt' or 'nonce'")
	}
	if b.SrcChainId == 0 || b.DstChainId == 0 {
		return nil, nil, nil, fmt.Errorf("missing chain id fields")
	}
	if b.SrcSafetyDeposit == nil || b.DstSafetyDeposit == nil {
		return nil, nil, nil, fmt.Errorf("missing safety deposit fields")
	}

	escrowFactory, err := parseAddress(b.EscrowFactory, "escrowFactory")
	if err != nil {
		return nil, nil, nil, err
	}
	maker, err := parseAddress(b.Maker, "maker")
	if err != nil {
		return nil, nil, nil, err
	}
	receiver, err := parseAddress(b.Receiver, "receiver")
	if err != nil {
		return nil, nil, nil, err
	}
	makerAsset, err := parseAddress(b.MakerAsset, "makerAsset")
	if err != nil {
		return nil, nil, nil, err
	}
	takerAsset, err := parseAddress(b.TakerAsset, "takerAsset")
	if err != nil {
		return nil, nil, nil, err
	}
	dstToken, err := parseAddress(b.DstToken, "dstToken")
	if err != nil {
		return nil, nil, nil, err
	}
	lock, err := parseHash(b.Hashlock, "hashlock")
	if err != nil {
		return nil, nil, nil, err
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(b.Signature, "0x"))
	if err != nil || len(sig) != 65 {
		return nil, nil, nil, fmt.Errorf("field 'signature' invalid")
	}

	points := make([]order.AuctionPoint, len(b.Auction.Points))
	for i, p := range b.Auction.Points {
		points[i] = order.AuctionPoint{Delay: p.Delay, Coefficient: p.Coefficient}
	}
	whitelist := make([]order.WhitelistEntry, len(b.Whitelist))
	for i, e := range b.Whitelist {
		addr, err := parseAddress(e.Address, "whitelist address")
		if err != nil {
			return nil, nil, nil, err
		}
		whitelist[i] = order.WhitelistEntry{Address: addr, AllowFrom: e.AllowFrom}
	}

	o, err := order.New(
		escrowFactory,
		order.Terms{
			Maker:        maker,
			Receiver:     receiver,
			MakerAsset:   makerAsset,
			TakerAsset:   takerAsset,
			MakingAmount: b.MakingAmount.Int,
			TakingAmount: b.TakingAmount.Int,
			Salt:         b.Salt.Int,
		},
		order.EscrowExtension{
			Hashlock:         hashlock.Lock(lock),
			Timelocks:        parseTimelocks(b.Timelocks),
			SrcChainID:       new(big.Int).SetUint64(b.SrcChainId),
			DstChainID:       new(big.Int).SetUint64(b.DstChainId),
			DstToken:         dstToken,
			SrcSafetyDeposit: b.SrcSafetyDeposit.Int,
			DstSafetyDeposit: b.DstSafetyDeposit.Int,
		},
		order.AuctionDetails{
			StartTime:       b.Auction.StartTime,
			Duration:        b.Auction.Duration,
			InitialRateBump: b.Auction.InitialRateBump,
			Points:          points,
		},
		whitelist,
		order.FillPolicy{
			AllowPartialFills:  b.AllowPartialFills,
			AllowMultipleFills: b.AllowMultipleFills,
			Nonce:              b.Nonce.Int,
		},
	)
	if err != nil {
		return nil, nil, nil, err
	}

	partial, err := parsePartial(b.Partial)
	if err != nil {
		return nil, nil, nil, err
	}

	return o, sig, partial, nil
}

func parseTimelocks(b TimelocksBody) timelock.Timelocks {
	return timelock.Timelocks{
		SrcWithdrawal:         b.SrcWithdrawal,
		SrcPublicWithdrawal:   b.SrcPublicWithdrawal,
		SrcCancellation:       b.SrcCancellation,
		SrcPublicCancellation: b.SrcPublicCancellation,
		DstWithdrawal:         b.DstWithdrawal,
		DstPublicWithdrawal:   b.DstPublicWithdrawal,
		DstCancellation:       b.DstCancellation,
	}
}

func parsePartial(b *PartialFillBody) (*resolver.PartialFill, error) {
	if b == nil {
		return nil, nil
	}

	secretHash, err := parseHash(b.SecretHash, "secretHash")
	if err != nil {
		return nil, err
	}
	proof := make([]common.Hash, len(b.Proof))
	for i, p := range b.Proof {
		proof[i], err = parseHash(p, "proof")
		if err != nil {
			return nil, err
		}
	}

	return &resolver.PartialFill{
		Proof:      proof,
		Index:      b.Index,
		SecretHash: secretHash,
	}, nil
}

func swapResponse(swap resolver.Swap) SwapResponse {
	resp := SwapResponse{
		OrderHash:     swap.OrderHash.Hex(),
		State:         string(swap.State()),
		SrcResolution: string(swap.SrcResolution),
		DstResolution: string(swap.DstResolution),
	}
	if swap.SrcEscrow != (common.Address{}) {
		resp.SrcEscrow = swap.SrcEscrow.Hex()
		resp.SrcDeployTx = swap.SrcDeployTx.Hex()
	}
	if swap.DstEscrow != (common.Address{}) {
		resp.DstEscrow = swap.DstEscrow.Hex()
		resp.DstDeployTx = swap.DstDeployTx.Hex()
	}

	return resp
}
